// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/structure checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Triangularity checks run O(n²) over the tested triangle only.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square via its CheckSquare.
//
// Errors: ErrNilMatrix; the CheckSquare error (errors.Is ErrNotSquare).
// Complexity: O(1).
// AI-Hints: Use before factorizations and triangular solves.
func ValidateSquare(m SquareMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if err := m.CheckSquare(); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Scalar](x Vector[T], n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// IsUpperTriangular reports whether every element strictly below the
// diagonal satisfies |a[i,j]| ≤ tol. Rectangular inputs are accepted.
//
// Errors: ErrNilMatrix; ErrNaNInf when tol is not finite.
// Complexity: O(r*c) worst case; stops at the first violation.
//
// AI-Hints:
//   - IsUpperTriangular(DropLower(A), 0) is always true.
func IsUpperTriangular[T Scalar](m Matrix[T], tol T) (bool, error) {
	return isTriangular("IsUpperTriangular", m, tol, func(i, j int) bool { return i > j })
}

// IsLowerTriangular reports whether every element strictly above the
// diagonal satisfies |a[i,j]| ≤ tol. Mirror of IsUpperTriangular.
func IsLowerTriangular[T Scalar](m Matrix[T], tol T) (bool, error) {
	return isTriangular("IsLowerTriangular", m, tol, func(i, j int) bool { return i < j })
}

// isTriangular scans the cells selected by outside and compares against tol.
func isTriangular[T Scalar](tag string, m Matrix[T], tol T, outside func(i, j int) bool) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, validatorErrorf(tag, err)
	}
	if isNonFinite(tol) {
		return false, validatorErrorf(tag, ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if !outside(i, j) {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return false, validatorErrorf(tag, err)
			}
			if v > tol || -v > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
