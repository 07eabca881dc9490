// SPDX-License-Identifier: MIT

// Package matrix - Dense strided storage & safe accessors.
//
// Purpose:
//   - Provide a flat buffer addressed through explicit strides:
//     offset(i,j) = off + i*rowStride + j*colStride.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy windows (View) and no-copy transposition (T); both share storage
//     and may produce strides that no longer describe a contiguous block.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Fresh matrices (NewDense, FromRows, NewIdentity) are contiguous row-major;
//     NewDenseColMajor and T() give column-major storage.
//   - A View narrower than its base is generally Unclassified; Clone it to get a
//     contiguous copy before solving.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View/T: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"    // method tag used in error wrappers
	ctxSet    = "Set"   // method tag used in error wrappers
	ctxApply  = "Apply" // method tag used in error wrappers
	ctxView   = "View"  // ctor tag for Dense.View
	ctxNew    = "NewDense"
	ctxFrom   = "NewDenseFrom"
	ctxRows   = "FromRows"
	ctxColMaj = "NewDenseColMajor"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports NaN or ±Inf for any supported scalar.
func isNonFinite[T Scalar](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Dense is a strided two-dimensional container over a flat buffer.
//   - r,c hold dimensions (rows, cols).
//   - rs,cs are the row and column strides; off is the position of (0,0).
//   - data may be shared with other Dense values (views, transposes).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply.
type Dense[T Scalar] struct {
	r, c           int
	rs, cs         int
	off            int
	data           []T
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64]           = (*Dense[float64])(nil)
	_ Matrix[float32]           = (*Dense[float32])(nil)
	_ TriangularMatrix[float64] = (*Dense[float64])(nil)
	_ TriangularMatrix[float32] = (*Dense[float32])(nil)
	_ fmt.Stringer              = (*Dense[float64])(nil)
)

// zeroDense allocates a rows×cols row-major result without the positive
// dimension check. Zero-area inputs to Mul/LU/Inverse produce zero-area results.
func zeroDense[T Scalar](rows, cols int, validateNaNInf bool) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		rs:             cols,
		cs:             1,
		data:           make([]T, rows*cols),
		validateNaNInf: validateNaNInf,
	}
}

// NewDense creates an r×c zero matrix with contiguous row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer, strides (cols, 1).
//   - Stage 3: apply numeric policy from options.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts      : WithValidateNaNInf / WithNoValidateNaNInf.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		rs:             cols,
		cs:             1,
		data:           make([]T, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseColMajor creates an r×c zero matrix with contiguous column-major storage.
// Same contract as NewDense; only the strides differ (1, rows).
func NewDenseColMajor[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxColMaj, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		rs:             1,
		cs:             rows,
		data:           make([]T, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom wraps an existing buffer without copying it.
// Implementation:
//   - Stage 1: validate dimensions, buffer length and layout.
//   - Stage 2: derive strides from the layout.
//   - Stage 3: when the policy is on, reject non-finite values already present.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - data      : len(data) == rows*cols; shared with the caller afterwards.
//   - layout    : RowMajor or ColMajor.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (buffer length),
//     ErrInvalidLayout (Unclassified), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c) for the finite scan, O(1) otherwise. No allocation of data.
//
// AI-Hints:
//   - Use this to hand over data already laid out for LAPACK-style consumers.
func NewDenseFrom[T Scalar](rows, cols int, data []T, layout Layout, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFrom, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	m := &Dense[T]{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}
	switch layout {
	case RowMajor:
		m.rs, m.cs = cols, 1
	case ColMajor:
		m.rs, m.cs = 1, rows
	default:
		return nil, matrixErrorf(ctxFrom, ErrInvalidLayout)
	}
	if o.validateNaNInf {
		for k, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s: element %d: %w", ctxFrom, k, ErrNaNInf)
			}
		}
	}

	return m, nil
}

// FromRows copies a rectangular [][]T into a new row-major Dense.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row),
//   - ErrDimensionMismatch (ragged rows),
//   - ErrNaNInf (policy on and a non-finite value present).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Scalar](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense[T](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w", ctxRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Strides returns the row and column strides of the backing buffer.
func (m *Dense[T]) Strides() (rowStride, colStride int) { return m.rs, m.cs }

// index computes the flat offset of (i, j) without bounds checks.
func (m *Dense[T]) index(i, j int) int { return m.off + i*m.rs + j*m.cs }

// indexOf bounds-checks (row, col) and returns the flat offset or ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.index(row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the policy.
//
// Notes:
//   - Writes through views and transposes land in the shared buffer.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep, contiguous copy with the same numeric policy.
// Implementation:
//   - Stage 1: keep column-major storage when the source is column-major,
//     otherwise compact into row-major (this includes Unclassified views).
//   - Stage 2: copy element by element through the source strides.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Clone is the way to turn an Unclassified view into something solvable.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := &Dense[T]{
		r:              m.r,
		c:              m.c,
		rs:             m.c,
		cs:             1,
		data:           make([]T, m.r*m.c),
		validateNaNInf: m.validateNaNInf,
	}
	if m.Layout() == ColMajor {
		cp.rs, cp.cs = 1, m.r
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			cp.data[cp.index(i, j)] = m.data[m.index(i, j)]
		}
	}

	return cp
}

// String renders rows as lines of comma-separated values. Not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[m.index(i, j)]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// Implementation:
//   - Stage 1: validate window bounds; zero-area windows are legal.
//   - Stage 2: return a Dense sharing data, strides and policy with the base.
//
// Errors:
//   - ErrOutOfRange when the window does not fit.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The window keeps the base strides, so it is contiguous only when it spans
//     full rows of a row-major base (or full columns of a column-major one).
//     Otherwise Layout() reports Unclassified and solves fail with ErrInvalidLayout.
func (m *Dense[T]) View(r0, c0, rows, cols int) (*Dense[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrOutOfRange)
	}

	return &Dense[T]{
		r:              rows,
		c:              cols,
		rs:             m.rs,
		cs:             m.cs,
		off:            m.index(r0, c0),
		data:           m.data,
		validateNaNInf: m.validateNaNInf,
	}, nil
}

// T returns the transpose as a no-copy view: strides are swapped, storage shared.
// A row-major matrix transposes into a column-major one and vice versa.
// Complexity: O(1).
func (m *Dense[T]) T() *Dense[T] {
	return &Dense[T]{
		r:              m.c,
		c:              m.r,
		rs:             m.cs,
		cs:             m.rs,
		off:            m.off,
		data:           m.data,
		validateNaNInf: m.validateNaNInf,
	}
}

// Do visits each element in logical row-major order; stops when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[m.index(i, j)]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, logical row-major order.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value under the policy; elements
//     written before the failure stay updated.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, off int
	var nv T
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = m.index(i, j)
			nv = f(i, j, m.data[off])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[off] = nv
		}
	}

	return nil
}
