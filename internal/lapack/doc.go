// SPDX-License-Identifier: MIT

// Package lapack is the native triangular-solve primitive behind lvlinalg/matrix.
//
// It speaks the LAPACK dialect: a layout tag (row-major 101, column-major 102,
// the LAPACKE values), an uplo selector ('U'/'L'), the order n, a flat n×n buffer
// and a right-hand side. Failures come back as *Error carrying the LAPACK info
// code unchanged:
//
//   - info < 0: argument -info had an illegal value (LAPACKE numbering
//     over SolveTriangle's parameters: layout=1, uplo=2, n=3, a=4, b=5).
//   - info > 0: A(info,info) is exactly zero; the system is singular.
//
// The arithmetic is delegated to gonum: float64 goes through
// lapack/gonum.Implementation.Dtrtrs, float32 through blas32 Strsv. Both are
// row-major kernels, so column-major storage is solved as the transposed
// problem (selector flipped, trans = blas.Trans).
//
// Complexity: O(n²) time, O(n) extra space (private copy of the right-hand side).
package lapack
