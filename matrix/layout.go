// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlinalg/internal/lapack"

const (
	opResolveLayout = "ResolveLayout"
	opContiguous    = "Contiguous"
)

// ClassifyLayout maps a shape and its strides onto a Layout. Pure function.
//
// Rules:
//   - Zero-area shapes are RowMajor (nothing to address).
//   - RowMajor: column stride 1 (or a single column) and row stride == cols
//     (or a single row).
//   - ColMajor: row stride 1 (or a single row) and column stride == rows
//     (or a single column).
//   - RowMajor wins when both hold (1×1, single row, single column with
//     unit strides).
//   - Anything else is Unclassified. There is no default.
//
// Complexity: O(1).
func ClassifyLayout(rows, cols, rowStride, colStride int) Layout {
	if rows == 0 || cols == 0 {
		return RowMajor
	}
	if (cols == 1 || colStride == 1) && (rows == 1 || rowStride == cols) {
		return RowMajor
	}
	if (rows == 1 || rowStride == 1) && (cols == 1 || colStride == rows) {
		return ColMajor
	}

	return Unclassified
}

// Layout classifies the current memory arrangement of m.
func (m *Dense[T]) Layout() Layout {
	return ClassifyLayout(m.r, m.c, m.rs, m.cs)
}

// ResolveLayout returns the layout of m or fails when it is Unclassified.
//
// Errors:
//   - *LinalgError{Kind: KindInvalidLayout} (errors.Is ErrInvalidLayout).
//
// AI-Hints:
//   - Never substitute a default on failure: reading a column-major buffer as
//     row-major transposes the system and yields a plausible but wrong answer.
func (m *Dense[T]) ResolveLayout() (Layout, error) {
	l := m.Layout()
	if l == Unclassified {
		return Unclassified, &LinalgError{Kind: KindInvalidLayout, Op: opResolveLayout, Rows: m.r, Cols: m.c}
	}

	return l, nil
}

// Contiguous returns the flat slice of the backing buffer holding m, in the
// order given by ResolveLayout. The slice aliases m; it is not a copy.
//
// Errors:
//   - same as ResolveLayout.
//
// Complexity: O(1).
func (m *Dense[T]) Contiguous() ([]T, error) {
	if _, err := m.ResolveLayout(); err != nil {
		return nil, matrixErrorf(opContiguous, err)
	}
	n := m.r * m.c
	if n == 0 {
		// A zero-area view may sit past the end of its base buffer.
		return m.data[:0:0], nil
	}

	return m.data[m.off : m.off+n : m.off+n], nil
}

// nativeLayout maps a resolved layout onto the LAPACKE tag.
// Callers guarantee l != Unclassified.
func nativeLayout(l Layout) lapack.Layout {
	if l == ColMajor {
		return lapack.ColMajor
	}

	return lapack.RowMajor
}
