// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the container and the solvers.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

const (
	tol64 = 1e-9 // absolute tolerance for float64 comparisons
	tol32 = 1e-4 // absolute tolerance for float32 comparisons
	seed  = 42   // deterministic RNG seed
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide[T]{X} to force the generic At/Set paths in code under test.
type hide[T matrix.Scalar] struct{ matrix.Matrix[T] }

// mustDense allocates an r×c row-major *Dense or fails the test.
func mustDense[T matrix.Scalar](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// mustFromRows builds a row-major *Dense from literal rows or fails the test.
func mustFromRows[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// sequential returns an r×c row-major matrix holding 1..r*c in row order.
func sequential(t testing.TB, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m := mustDense[float64](t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float64(i*c+j+1)))
		}
	}

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt[T matrix.Scalar](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireRows compares m against literal rows element by element.
func requireRows(t testing.TB, want [][]float64, m *matrix.Dense[float64]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	var i, j int
	for i = range want {
		require.Equal(t, len(want[i]), m.Cols())
		for j = range want[i] {
			require.InDelta(t, want[i][j], mustAt(t, m, i, j), tol64, "(%d,%d)", i, j)
		}
	}
}

// randomTriangular returns an n×n well-conditioned triangular matrix:
// entries of the kept triangle in [-1,1), diagonal in [n, n+1).
// The opposite triangle is filled with noise that a solver must ignore.
func randomTriangular(t testing.TB, rng *rand.Rand, n int, lower bool) *matrix.Dense[float64] {
	t.Helper()
	m := mustDense[float64](t, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				require.NoError(t, m.Set(i, j, float64(n)+rng.Float64()))
			case (i > j) == lower:
				require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
			default:
				require.NoError(t, m.Set(i, j, 1e6*rng.Float64()))
			}
		}
	}

	return m
}

// randomVector returns n values in [-1,1).
func randomVector(rng *rand.Rand, n int) matrix.Vector[float64] {
	v := make(matrix.Vector[float64], n)
	for k := range v {
		v[k] = 2*rng.Float64() - 1
	}

	return v
}

// countNativeSolves installs a counting hook for the test duration.
func countNativeSolves(t *testing.T) *int {
	t.Helper()
	calls := 0
	restore := matrix.SetNativeSolveHook(func(string) { calls++ })
	t.Cleanup(restore)

	return &calls
}

// colMajorCopy returns a column-major copy of m holding the same logical values.
// Single-row and single-column copies are contiguous either way and classify
// as RowMajor.
func colMajorCopy(t testing.TB, m *matrix.Dense[float64]) *matrix.Dense[float64] {
	t.Helper()
	cp, err := matrix.NewDenseColMajor[float64](m.Rows(), m.Cols())
	require.NoError(t, err)
	m.Do(func(i, j int, v float64) bool {
		require.NoError(t, cp.Set(i, j, v))

		return true
	})
	if m.Rows() > 1 && m.Cols() > 1 {
		require.Equal(t, matrix.ColMajor, cp.Layout())
	} else {
		require.Equal(t, matrix.RowMajor, cp.Layout())
	}

	return cp
}
