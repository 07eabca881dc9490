// SPDX-License-Identifier: MIT
// Package matrix: products and comparisons used to verify factorizations and
// solves (Mul for A·B, AllClose / VecAllClose for tolerance checks).
//
// Determinism:
//   - Strided fallbacks use a fixed i→j→k order; the gemm fast path is the
//     gonum reference kernel, deterministic for identical inputs.

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

const (
	opMul         = "Mul"
	opAllClose    = "AllClose"
	opVecAllClose = "VecAllClose"
)

// ValidateSameShape ensures a and b have identical (rows, cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape[T Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// Mul returns the row-major product a·b.
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Execute): both operands contiguous → gonum gemm (a column-major
// operand is passed as its transpose); otherwise a strided i-k-j loop.
// An empty inner or outer dimension yields a zero-filled a.Rows()×b.Cols() result.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res := zeroDense[T](a.r, b.c, a.validateNaNInf)
	if a.r == 0 || a.c == 0 || b.c == 0 {
		return res, nil
	}

	la, lb := a.Layout(), b.Layout()
	if la != Unclassified && lb != Unclassified {
		fa, _ := a.Contiguous()
		fb, _ := b.Contiguous()
		tA, lda := gemmOperand(la, a.r, a.c)
		tB, ldb := gemmOperand(lb, b.r, b.c)
		gemm(tA, tB, a.r, b.c, a.c, fa, lda, fb, ldb, res.data, b.c)

		return res, nil
	}

	var i, j, k int
	var av T
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[a.index(i, k)]
			if av == 0 {
				continue // skip zero
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[b.index(k, j)]
			}
		}
	}

	return res, nil
}

// gemmOperand returns the transpose flag and leading dimension for a
// contiguous rows×cols operand read as a row-major buffer.
func gemmOperand(l Layout, rows, cols int) (blas.Transpose, int) {
	if l == ColMajor {
		return blas.Trans, rows
	}

	return blas.NoTrans, cols
}

// gemm computes c = a·b (row-major c) with the sealed scalar dispatch.
func gemm[T Scalar](tA, tB blas.Transpose, m, n, k int, a []T, lda int, b []T, ldb int, c []T, ldc int) {
	switch av := any(a).(type) {
	case []float64:
		blas64.Implementation().Dgemm(tA, tB, m, n, k, 1, av, lda, any(b).([]float64), ldb, 0, any(c).([]float64), ldc)
	case []float32:
		blas32.Implementation().Sgemm(tA, tB, m, n, k, 1, av, lda, any(b).([]float32), ldb, 0, any(c).([]float32), ldc)
	}
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes; layouts may differ.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances give ErrNaNInf.
func AllClose[T Scalar](a, b *Dense[T], rtol, atol T) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if err := ValidateSameShape[T](a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if !within(a.data[a.index(i, j)], b.data[b.index(i, j)], rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// VecAllClose is AllClose for vectors.
// Errors: ErrDimensionMismatch on length mismatch, ErrNaNInf for bad tolerances.
func VecAllClose[T Scalar](x, y Vector[T], rtol, atol T) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opVecAllClose, ErrNaNInf)
	}
	if err := ValidateVecLen(x, len(y)); err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}
	for k := range x {
		if !within(x[k], y[k], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// within reports |a-b| ≤ |atol| + |rtol|*|b|. NaN never compares close.
func within[T Scalar](a, b, rtol, atol T) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if b < 0 {
		b = -b
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	return diff <= atol+rtol*b
}
