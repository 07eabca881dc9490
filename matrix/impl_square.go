// SPDX-License-Identifier: MIT

package matrix

const opCheckSquare = "CheckSquare"

// CheckSquare verifies Rows() == Cols().
//
// Returns:
//   - nil for a square matrix (n×n, including 0×0 views).
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - *LinalgError{Kind: KindNotSquare, Rows, Cols} (errors.Is ErrNotSquare).
//
// Complexity:
//   - Time O(1), Space O(1). Read-only.
//
// AI-Hints:
//   - Callers propagate this error unchanged; Rows/Cols carry the diagnostics.
func (m *Dense[T]) CheckSquare() error {
	if m == nil {
		return matrixErrorf(opCheckSquare, ErrNilMatrix)
	}
	if m.r != m.c {
		return &LinalgError{Kind: KindNotSquare, Op: opCheckSquare, Rows: m.r, Cols: m.c}
	}

	return nil
}

// Size returns (rows, cols); for a square matrix that is (n, n).
func (m *Dense[T]) Size() (rows, cols int) { return m.r, m.c }

// Trace returns the sum of the diagonal of a square matrix.
// Errors: the CheckSquare error, unchanged.
// Complexity: O(n).
func (m *Dense[T]) Trace() (T, error) {
	if err := m.CheckSquare(); err != nil {
		return 0, err
	}

	var sum T
	for i := 0; i < m.r; i++ {
		sum += m.data[m.index(i, i)]
	}

	return sum, nil
}
