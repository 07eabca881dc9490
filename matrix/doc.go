// Package matrix offers a strided dense container and the structured-matrix
// capabilities built on it.
//
// The matrix package provides:
//
//   - Dense[T]: a generic (float32/float64) container over a flat buffer with
//     explicit strides, so row-major, column-major, windowed (View) and
//     transposed (T) matrices share one type.
//   - Layout classification (RowMajor, ColMajor, Unclassified) that never
//     guesses: a matrix whose strides describe neither contiguous arrangement
//     cannot be handed to the native solver.
//   - SquareMatrix: CheckSquare, Size, Trace.
//   - TriangularMatrix: SolveUpper / SolveLower, dispatched to a native
//     triangular-solve primitive (gonum LAPACK/BLAS) with the layout tag and
//     triangle selector resolved here.
//   - DropUpper / DropLower: in-place triangular masking, total on any shape.
//   - LU, Solve, Inverse, MatVec: helpers composed from the capabilities above.
//
// Failures are reported through sentinels (ErrNotSquare, ErrInvalidLayout,
// ErrSolverFailure, ...) and the structured *LinalgError, whose Code carries
// the native diagnostic of a solver failure.
//
// See the examples in this package for usage patterns.
package matrix
