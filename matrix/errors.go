// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the LinalgError taxonomy.
// Algorithms return these sentinels (optionally wrapped with an operation tag)
// and tests check them via errors.Is / errors.As. No algorithm panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Sentinels are
// returned wrapped with an operation tag ("SolveUpper: ...") via matrixErrorf;
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> not square -> invalid layout -> dimension mismatch -> solver failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. a right-hand side whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but rows != cols.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidLayout signals storage that is neither contiguous row-major
	// nor contiguous column-major.
	ErrInvalidLayout = errors.New("matrix: invalid memory layout")

	// ErrSolverFailure signals a non-zero status from the native solver.
	ErrSolverFailure = errors.New("matrix: native solver failure")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero pivot is encountered during LU
	// in the non-pivoting scheme.
	ErrSingular = errors.New("matrix: singular matrix")
)

// ErrorKind is the closed set of LinalgError classifications.
type ErrorKind uint8

// LinalgError kinds.
const (
	KindNotSquare         ErrorKind = iota + 1 // rows != cols
	KindInvalidLayout                          // storage not contiguous in either order
	KindDimensionMismatch                      // right-hand side length != order
	KindSolverFailure                          // native primitive returned info != 0
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindNotSquare:
		return "NotSquare"
	case KindInvalidLayout:
		return "InvalidLayout"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindSolverFailure:
		return "SolverFailure"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// sentinel maps a kind onto the package sentinel it unwraps to.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotSquare:
		return ErrNotSquare
	case KindInvalidLayout:
		return ErrInvalidLayout
	case KindDimensionMismatch:
		return ErrDimensionMismatch
	case KindSolverFailure:
		return ErrSolverFailure
	default:
		return nil
	}
}

// LinalgError is the structured failure of a square/triangular operation.
//
// Fields are populated per kind:
//   - KindNotSquare        : Rows, Cols of the offending matrix.
//   - KindInvalidLayout    : Rows, Cols of the offending matrix.
//   - KindDimensionMismatch: Rows = matrix order, Cols = right-hand side length.
//   - KindSolverFailure    : Code = native info code, Err = native error.
//
// errors.Is matches the kind sentinel (ErrNotSquare, ErrInvalidLayout, ...);
// errors.As can reach the native error through Err.
type LinalgError struct {
	Kind ErrorKind
	Op   string // operation tag, e.g. "SolveUpper"
	Rows int
	Cols int
	Code int   // native diagnostic code (KindSolverFailure only)
	Err  error // native cause (KindSolverFailure only)
}

// Error implements the error interface.
func (e *LinalgError) Error() string {
	switch e.Kind {
	case KindNotSquare, KindInvalidLayout:
		return fmt.Sprintf("%s: %v (%dx%d)", e.Op, e.Kind.sentinel(), e.Rows, e.Cols)
	case KindDimensionMismatch:
		return fmt.Sprintf("%s: %v (order %d, rhs length %d)", e.Op, e.Kind.sentinel(), e.Rows, e.Cols)
	case KindSolverFailure:
		return fmt.Sprintf("%s: %v (code %d): %v", e.Op, e.Kind.sentinel(), e.Code, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
}

// Unwrap exposes the kind sentinel and, for solver failures, the native cause.
func (e *LinalgError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
