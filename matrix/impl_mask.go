// SPDX-License-Identifier: MIT

package matrix

// DropUpper zeroes every element strictly above the main diagonal (i < j)
// and returns the same matrix.
// Implementation:
//   - Stage 1: nil passes through untouched.
//   - Stage 2: visit every (i, j) exactly once through the strides and write
//     the additive identity where i < j.
//
// Behavior highlights:
//   - Total: any shape (rectangular, views, transposes), never fails.
//   - In place: the argument is mutated and returned (move-in/move-out), so
//     views write through to their base.
//   - Idempotent: DropUpper(DropUpper(A)) == DropUpper(A).
//
// Complexity:
//   - Time O(r*c), Space O(1). No early exit.
//
// AI-Hints:
//   - Use LowerPart for a non-mutating variant.
func DropUpper[T Scalar](m *Dense[T]) *Dense[T] {
	if m == nil {
		return nil
	}
	dropTriangle(m, func(i, j int) bool { return i < j })

	return m
}

// DropLower zeroes every element strictly below the main diagonal (i > j)
// and returns the same matrix. Mirror of DropUpper.
func DropLower[T Scalar](m *Dense[T]) *Dense[T] {
	if m == nil {
		return nil
	}
	dropTriangle(m, func(i, j int) bool { return i > j })

	return m
}

// dropTriangle writes zero at every (i, j) selected by drop.
// Zero is finite, so the numeric policy can never reject these writes.
func dropTriangle[T Scalar](m *Dense[T], drop func(i, j int) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if drop(i, j) {
				m.data[m.index(i, j)] = 0
			}
		}
	}
}
