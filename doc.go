// Package lvlinalg is a small structured-matrix layer: square and triangular
// capabilities over a strided dense container, with the triangular solve
// delegated to a native dense linear-algebra kernel.
//
// What is inside?
//
//	matrix/          : Dense[T] container, Layout resolution, SquareMatrix and
//	                   TriangularMatrix capabilities, DropUpper/DropLower masks,
//	                   LU/Solve/Inverse helpers, options, logging
//	internal/lapack/ : the native triangular-solve primitive (LAPACK info codes,
//	                   gonum dtrtrs/strsv underneath)
//
// Why the fuss about layout?
//
//	A triangular solve on a column-major buffer read as row-major silently
//	solves the transposed system. Every solve therefore proves squareness,
//	classifies the storage as row- or column-major (or refuses it), and only
//	then calls the kernel with the matching layout tag and triangle selector.
//
// Quick example:
//
//	A, _ := matrix.FromRows([][]float64{
//	    {2, 0, 0},
//	    {1, 3, 0},
//	    {4, 2, 5},
//	})
//	x, err := A.SolveLower(matrix.NewVector[float64](2, 4, 16)) // x ≈ [1 1 2]
//
// Errors are sentinels (errors.Is) plus *matrix.LinalgError (errors.As) for
// the native diagnostic code.
package lvlinalg
