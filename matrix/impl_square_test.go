// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestCheckSquare(t *testing.T) {
	require.NoError(t, mustDense[float64](t, 3, 3).CheckSquare())

	err := mustDense[float64](t, 2, 3).CheckSquare()
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	var le *matrix.LinalgError
	require.True(t, errors.As(err, &le))
	require.Equal(t, matrix.KindNotSquare, le.Kind)
	require.Equal(t, 2, le.Rows)
	require.Equal(t, 3, le.Cols)

	var nilM *matrix.Dense[float64]
	require.ErrorIs(t, nilM.CheckSquare(), matrix.ErrNilMatrix)
}

func TestCheckSquare_ZeroArea(t *testing.T) {
	base := sequential(t, 3, 3)
	empty, err := base.View(0, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, empty.CheckSquare())

	r, c := empty.Size()
	require.Zero(t, r)
	require.Zero(t, c)

	flat, err := base.View(0, 0, 0, 2)
	require.NoError(t, err)
	require.ErrorIs(t, flat.CheckSquare(), matrix.ErrNotSquare)
}

func TestSize(t *testing.T) {
	var sq matrix.SquareMatrix = mustDense[float32](t, 4, 4)
	r, c := sq.Size()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)

	r, c = mustDense[float64](t, 2, 5).Size()
	require.Equal(t, 2, r)
	require.Equal(t, 5, c)
}

func TestTrace(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})

	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, 16.0, tr)

	tr, err = m.T().Trace()
	require.NoError(t, err)
	require.Equal(t, 16.0, tr)

	_, err = sequential(t, 2, 3).Trace()
	require.ErrorIs(t, err, matrix.ErrNotSquare)
}
