// SPDX-License-Identifier: MIT

package lapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/lapack/gonum"
)

// SolveTriangle solves A·x = b where A is the n×n triangle selected by uplo.
// Implementation:
//   - Stage 1: LAPACKE-style argument checks (negative info on failure).
//   - Stage 2: copy b into a private solution buffer.
//   - Stage 3: scan the diagonal for an exact zero (positive info).
//   - Stage 4: map the storage layout onto gonum's row-major kernels and solve.
//
// Inputs:
//   - layout: RowMajor or ColMajor; describes how a is stored.
//   - uplo  : blas.Upper or blas.Lower; only that triangle of a is referenced.
//   - n     : order of A (n ≥ 0).
//   - a     : flat n*n buffer in the given layout; never written.
//   - b     : right-hand side of length n; never written.
//
// Returns:
//   - []T: freshly allocated solution x.
//
// Errors:
//   - *Error with Info < 0 for illegal arguments, Info = i+1 for a zero at A(i,i).
//
// Complexity:
//   - Time O(n²), Space O(n).
//
// Notes:
//   - The diagonal is never assumed to be unit (blas.NonUnit).
func SolveTriangle[T Scalar](layout Layout, uplo blas.Uplo, n int, a, b []T) ([]T, error) {
	routine := routineFor[T]()
	if info := checkArgs(layout, uplo, n, len(a), len(b)); info != 0 {
		return nil, &Error{Routine: routine, Info: info}
	}

	x := make([]T, n)
	copy(x, b)
	if n == 0 {
		return x, nil
	}

	// The diagonal sits at i*n+i in either layout.
	if info := zeroDiagonal(a, n); info != 0 {
		return nil, &Error{Routine: routine, Info: info}
	}

	ul, tA := rowMajorProblem(layout, uplo)
	switch av := any(a).(type) {
	case []float64:
		xv := any(x).([]float64)
		if ok := (gonum.Implementation{}).Dtrtrs(ul, tA, blas.NonUnit, n, 1, av, n, xv, 1); !ok {
			return nil, &Error{Routine: routine, Info: zeroDiagonal(a, n)}
		}
	case []float32:
		xv := any(x).([]float32)
		blas32.Implementation().Strsv(ul, tA, blas.NonUnit, n, av, n, xv, 1)
	}

	return x, nil
}

// rowMajorProblem translates (layout, uplo) into the arguments of a row-major kernel.
// Column-major A read as row-major is Aᵀ, whose stored triangle is the opposite one.
func rowMajorProblem(layout Layout, uplo blas.Uplo) (blas.Uplo, blas.Transpose) {
	if layout == RowMajor {
		return uplo, blas.NoTrans
	}
	if uplo == blas.Upper {
		return blas.Lower, blas.Trans
	}

	return blas.Upper, blas.Trans
}

// zeroDiagonal returns i+1 for the first exactly-zero A(i,i), or 0.
func zeroDiagonal[T Scalar](a []T, n int) int {
	for i := 0; i < n; i++ {
		if a[i*n+i] == 0 {
			return i + 1
		}
	}

	return 0
}
