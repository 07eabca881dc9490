// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container, the capabilities and
// the solver dispatch. Errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package matrix

// Scalar is the sealed set of element types supported by the native solver
// bindings. The set is closed on purpose: each member has a matching kernel in
// internal/lapack (float64 → dtrtrs, float32 → strsv).
type Scalar interface {
	float32 | float64
}

// Matrix is the minimal read/write surface of a two-dimensional container.
// Every method is O(1). At/Set never panic; they return ErrOutOfRange.
type Matrix[T Scalar] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	At(i, j int) (T, error)

	// Set assigns v at (i, j).
	Set(i, j int, v T) error
}

// SquareMatrix is the capability of reporting and validating a square shape.
//
// Contract:
//   - CheckSquare returns nil when Rows()==Cols(), otherwise a *LinalgError
//     of kind KindNotSquare carrying the observed (rows, cols).
//   - Size returns (rows, cols); for a square matrix that is (n, n).
//
// Every operation that assumes squareness calls CheckSquare first and
// propagates its failure unchanged.
type SquareMatrix interface {
	CheckSquare() error
	Size() (rows, cols int)
}

// TriangularMatrix is the capability of solving A·x = b when A is triangular.
//
// SolveUpper references only the upper triangle (diagonal included), SolveLower
// only the lower one; the opposite triangle is ignored, never validated.
// Both validate squareness, resolve the memory layout, and forward to the
// native triangular-solve primitive. The input vector is not mutated and the
// returned vector never aliases it.
type TriangularMatrix[T Scalar] interface {
	SquareMatrix

	SolveUpper(b Vector[T]) (Vector[T], error)
	SolveLower(b Vector[T]) (Vector[T], error)
}

// Vector is a 1-D dense container of the same scalar type as its matrix.
type Vector[T Scalar] []T

// NewVector copies vals into a fresh Vector.
// Complexity: O(n).
func NewVector[T Scalar](vals ...T) Vector[T] {
	v := make(Vector[T], len(vals))
	copy(v, vals)

	return v
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v) }

// Raw exposes the backing storage (no copy).
func (v Vector[T]) Raw() []T { return v }

// Clone returns an independent copy.
func (v Vector[T]) Clone() Vector[T] { return NewVector(v...) }

// Layout classifies how a Dense maps (i, j) onto its flat buffer.
type Layout uint8

// Layout values. Unclassified is the zero value so that a forgotten
// assignment can never pass for a valid layout.
const (
	Unclassified Layout = iota // strides match neither contiguous arrangement
	RowMajor                   // row elements contiguous, rows back to back
	ColMajor                   // column elements contiguous, columns back to back
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Unclassified"
	}
}
