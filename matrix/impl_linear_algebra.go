// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels over *Dense built on top of
// the triangular-solve capability: matrix-vector product, Doolittle LU,
// general solve and inverse.
//
// Notes:
//   - Solve and Inverse never substitute by hand: every forward/back
//     substitution goes through SolveLower/SolveUpper and therefore through
//     the same square/layout/native guard sequence.

package matrix

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec  = "MatVec"
	opLU      = "LU"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// MatVec computes y = m·x.
// Implementation:
//   - Stage 1: validate non-nil and len(x) == Cols().
//   - Stage 2: contiguous storage goes through gonum gemv (blas64 / blas32);
//     Unclassified views use a strided i→j loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
//
// Complexity:
//   - Time O(r*c), Space O(r).
//
// AI-Hints:
//   - Handy for residual checks: r = MatVec(A, x) - b after a solve.
func MatVec[T Scalar](m *Dense[T], x Vector[T]) (Vector[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make(Vector[T], m.r)
	if m.r == 0 || m.c == 0 {
		return y, nil
	}

	if layout := m.Layout(); layout != Unclassified {
		n := m.r * m.c
		gemv(layout, m.r, m.c, m.data[m.off:m.off+n], x, y)

		return y, nil
	}

	// Strided fallback: fixed i→j order.
	var i, j int
	var sum T
	for i = 0; i < m.r; i++ {
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += m.data[m.index(i, j)] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// gemv computes y = A·x for a contiguous r×c buffer in the given layout.
// Column-major A read row-major is Aᵀ (c×r), hence the Trans flag.
func gemv[T Scalar](layout Layout, r, c int, a, x, y []T) {
	tA, m, n := blas.NoTrans, r, c
	if layout == ColMajor {
		tA, m, n = blas.Trans, c, r
	}
	switch av := any(a).(type) {
	case []float64:
		blas64.Implementation().Dgemv(tA, m, n, 1, av, n, any(x).([]float64), 1, 0, any(y).([]float64), 1)
	case []float32:
		blas32.Implementation().Sgemv(tA, m, n, 1, av, n, any(x).([]float32), 1, 0, any(y).([]float32), 1)
	}
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: validate m (not nil, square); allocate row-major L,U; set diag(L)=1.
//   - Stage 2: for i=0..n-1, build row i of U and column i of L in fixed order.
//
// Returns:
//   - L: unit lower triangular (row-major).
//   - U: upper triangular (row-major).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular (U[i,i]==0).
//   - A 0×0 input factors into two 0×0 matrices.
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Factor once and reuse L.SolveLower / U.SolveUpper for many right-hand sides.
//   - Works on strided inputs (views, transposes); outputs are always contiguous.
func LU[T Scalar](m *Dense[T]) (*Dense[T], *Dense[T], error) {
	if m == nil {
		return nil, nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if err := m.CheckSquare(); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n, policy := m.r, defaultOptions().validateNaNInf
	L := zeroDense[T](n, n, policy)
	U := zeroDense[T](n, n, policy)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1
	}

	var i, j, k int
	var sum, pivot T
	for i = 0; i < n; i++ {
		// Row i of U.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = m.data[m.index(i, j)] - sum
		}

		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}

		// Column i of L.
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (m.data[m.index(j, i)] - sum) / pivot
		}
	}

	return L, U, nil
}

// Solve solves the general system A·x = b via LU, then one forward
// (SolveLower on L) and one back substitution (SolveUpper on U).
//
// Errors:
//   - LU errors (ErrNilMatrix, ErrNotSquare, ErrSingular);
//   - triangular solve errors (ErrDimensionMismatch under the RHS check,
//     ErrSolverFailure otherwise).
//
// Complexity:
//   - Time O(n^3) for LU + O(n^2) per solve, Space O(n^2).
func Solve[T Scalar](m *Dense[T], b Vector[T], opts ...Option) (Vector[T], error) {
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	y, err := solveTriangular(opSolveLower, L, b, blas.Lower, o)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := solveTriangular(opSolveUpper, U, y, blas.Upper, o)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse computes A^{-1} column by column: LU once, then for each basis
// vector e_col a lower and an upper triangular solve.
//
// Implementation:
//   - Stage 1: LU (validation, singularity).
//   - Stage 2: solve the n column systems concurrently (errgroup, at most
//     GOMAXPROCS at a time); each writes only its own column of the result.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular, plus triangular solve errors.
//
// Determinism:
//   - Each column is computed by the same kernel sequence regardless of
//     scheduling, so the result is bitwise reproducible.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A^{-1}·b, call Solve; forming the inverse is a last resort.
func Inverse[T Scalar](m *Dense[T]) (*Dense[T], error) {
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := L.r
	inv := zeroDense[T](n, n, m.validateNaNInf)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for col := 0; col < n; col++ {
		col := col
		g.Go(func() error {
			e := make(Vector[T], n)
			e[col] = 1

			y, err := L.SolveLower(e)
			if err != nil {
				return err
			}
			x, err := U.SolveUpper(y)
			if err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				inv.data[i*n+col] = x[i]
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
