// SPDX-License-Identifier: MIT

package lapack

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
)

// Scalar is the sealed set of element types the native kernels are bound for.
type Scalar interface {
	float32 | float64
}

// Layout is the LAPACKE matrix_layout tag.
type Layout int

// LAPACKE layout values.
const (
	RowMajor Layout = 101 // LAPACK_ROW_MAJOR
	ColMajor Layout = 102 // LAPACK_COL_MAJOR
)

// String renders the tag the way LAPACKE names it.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "LAPACK_ROW_MAJOR"
	case ColMajor:
		return "LAPACK_COL_MAJOR"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Argument positions reported through negative info codes.
const (
	argLayout = 1
	argUplo   = 2
	argN      = 3
	argA      = 4
	argB      = 5
)

// Routine names used in diagnostics.
const (
	routineD = "dtrtrs"
	routineS = "strtrs"
)

// Error is a non-zero LAPACK info code returned by a native routine.
type Error struct {
	Routine string // e.g. "dtrtrs"
	Info    int    // LAPACK info: <0 illegal argument, >0 zero diagonal (1-based)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Info < 0 {
		return fmt.Sprintf("lapack: %s: argument %d had an illegal value (info=%d)", e.Routine, -e.Info, e.Info)
	}

	return fmt.Sprintf("lapack: %s: A(%d,%d) is exactly zero, matrix is singular (info=%d)",
		e.Routine, e.Info, e.Info, e.Info)
}

// Singular reports whether the failure is a zero diagonal rather than a bad argument.
func (e *Error) Singular() bool { return e.Info > 0 }

// routineFor picks the LAPACK-style routine name for T.
func routineFor[T Scalar]() string {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return routineS
	}

	return routineD
}

// checkArgs mirrors the LAPACKE argument checks for a single right-hand side.
// Returns 0 when all arguments are legal, otherwise -position.
func checkArgs(layout Layout, uplo blas.Uplo, n, lenA, lenB int) int {
	if layout != RowMajor && layout != ColMajor {
		return -argLayout
	}
	if uplo != blas.Upper && uplo != blas.Lower {
		return -argUplo
	}
	if n < 0 {
		return -argN
	}
	if lenA != n*n {
		return -argA
	}
	if lenB != n {
		return -argB
	}

	return 0
}
