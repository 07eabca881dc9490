// SPDX-License-Identifier: MIT

// Package matrix - triangular solve dispatch.
//
// Purpose:
//   - Implement the TriangularMatrix capability on *Dense by forwarding to the
//     native primitive in internal/lapack.
//   - Own the guard sequence: square → layout → right-hand side → native call.
//
// Determinism:
//   - The native kernels are deterministic for identical inputs and layout.
//
// Concurrency:
//   - No shared state besides the logger. The matrix buffer is only read; the
//     solution is written into a fresh buffer, so independent solves (even over
//     the same matrix) can run in parallel.

package matrix

import (
	"errors"

	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/lvlinalg/internal/lapack"
)

const (
	opSolveUpper = "SolveUpper"
	opSolveLower = "SolveLower"
)

// onNativeSolve, when set, runs right before every native primitive call.
// Tests use it to prove which paths reach the solver.
var onNativeSolve func(op string)

// SolveUpper solves A·x = b using the upper triangle of A (diagonal included).
// Implementation:
//   - Stage 1: CheckSquare (propagated unchanged).
//   - Stage 2: ResolveLayout; Unclassified fails, no default is assumed.
//   - Stage 3: right-hand side length check (DefaultRHSCheck).
//   - Stage 4: native back substitution on the flat contiguous view.
//
// Inputs:
//   - b: right-hand side of length n; read only.
//
// Returns:
//   - Vector[T]: fresh solution x; never aliases b.
//
// Errors:
//   - ErrNilMatrix, then *LinalgError of kind NotSquare, InvalidLayout,
//     DimensionMismatch or SolverFailure (Code = native info; a positive code
//     i means A(i,i) is exactly zero).
//
// Complexity:
//   - Time O(n²), Space O(n).
//
// Notes:
//   - The strict lower triangle is never read.
//
// AI-Hints:
//   - Use SolveUpperTriangular for functional options (e.g. WithoutRHSCheck).
func (m *Dense[T]) SolveUpper(b Vector[T]) (Vector[T], error) {
	return solveTriangular(opSolveUpper, m, b, blas.Upper, defaultOptions())
}

// SolveLower solves A·x = b using the lower triangle of A (diagonal included).
// Same contract as SolveUpper with forward substitution; the strict upper
// triangle is never read.
func (m *Dense[T]) SolveLower(b Vector[T]) (Vector[T], error) {
	return solveTriangular(opSolveLower, m, b, blas.Lower, defaultOptions())
}

// SolveUpperTriangular is SolveUpper with functional options.
func SolveUpperTriangular[T Scalar](m *Dense[T], b Vector[T], opts ...Option) (Vector[T], error) {
	return solveTriangular(opSolveUpper, m, b, blas.Upper, gatherOptions(opts...))
}

// SolveLowerTriangular is SolveLower with functional options.
func SolveLowerTriangular[T Scalar](m *Dense[T], b Vector[T], opts ...Option) (Vector[T], error) {
	return solveTriangular(opSolveLower, m, b, blas.Lower, gatherOptions(opts...))
}

// solveTriangular is the shared dispatch behind both selectors.
func solveTriangular[T Scalar](op string, m *Dense[T], b Vector[T], uplo blas.Uplo, o Options) (Vector[T], error) {
	if m == nil {
		return nil, matrixErrorf(op, ErrNilMatrix)
	}
	if err := m.CheckSquare(); err != nil {
		return nil, err
	}
	n, _ := m.Size()

	layout, err := m.ResolveLayout()
	if err != nil {
		return nil, err
	}
	flat, err := m.Contiguous()
	if err != nil {
		return nil, err
	}

	if o.rhsCheck && len(b) != n {
		return nil, &LinalgError{Kind: KindDimensionMismatch, Op: op, Rows: n, Cols: len(b)}
	}

	log := Logger()
	log.Debug("matrix: triangular solve",
		"op", op, "n", n, "layout", layout.String(), "uplo", string(rune(uplo)))

	if onNativeSolve != nil {
		onNativeSolve(op)
	}
	x, err := lapack.SolveTriangle(nativeLayout(layout), uplo, n, flat, b.Raw())
	if err != nil {
		var code int
		var ne *lapack.Error
		if errors.As(err, &ne) {
			code = ne.Info
		}
		log.Debug("matrix: native solver failure", "op", op, "n", n, "code", code)

		return nil, &LinalgError{Kind: KindSolverFailure, Op: op, Rows: n, Cols: n, Code: code, Err: err}
	}

	return Vector[T](x), nil
}
