// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

const (
	opIdentityLike = "IdentityLike"
	opLowerPart    = "LowerPart"
	opUpperPart    = "UpperPart"
)

// NewZeros returns a new zero-initialized row-major *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere), row-major.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int, opts ...Option) (*Dense[T], error) {
	I, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero row-major matrix with the same shape and policy as m.
// A zero-area m (e.g. an empty View) gives a zero-area result.
func ZerosLike[T Scalar](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	return zeroDense[T](m.r, m.c, m.validateNaNInf), nil
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
// Errors: ErrNilMatrix, ErrNotSquare (wrapped with "IdentityLike").
func IdentityLike[T Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity[T](m.r)
}

// LowerPart returns a contiguous copy of m with the strict upper triangle
// zeroed; m is untouched. Composition: Clone → DropUpper.
func LowerPart[T Scalar](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opLowerPart, ErrNilMatrix)
	}

	return DropUpper(m.Clone()), nil
}

// UpperPart returns a contiguous copy of m with the strict lower triangle
// zeroed; m is untouched. Composition: Clone → DropLower.
func UpperPart[T Scalar](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opUpperPart, ErrNilMatrix)
	}

	return DropLower(m.Clone()), nil
}

// LUDecompose is an alias for LU.
func LUDecompose[T Scalar](m *Dense[T]) (*Dense[T], *Dense[T], error) { return LU(m) }

// InverseOf is an alias for Inverse.
func InverseOf[T Scalar](m *Dense[T]) (*Dense[T], error) { return Inverse(m) }

// MatVecMul is an alias for MatVec.
func MatVecMul[T Scalar](m *Dense[T], x Vector[T]) (Vector[T], error) { return MatVec(m, x) }
