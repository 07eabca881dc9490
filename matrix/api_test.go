// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity[float64](3)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity[float32](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestZerosAndLike(t *testing.T) {
	z, err := matrix.NewZeros[float64](2, 3)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	src, err := matrix.NewDense[float64](2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	like, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	require.Equal(t, 2, like.Rows())
	require.False(t, like.ValidatesNaNInf())

	_, err = matrix.ZerosLike[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	id, err := matrix.IdentityLike(src)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0}, {0, 1}}, id)

	_, err = matrix.IdentityLike(sequential(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = matrix.IdentityLike[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLowerUpperPart(t *testing.T) {
	a := sequential(t, 3, 3)

	lo, err := matrix.LowerPart(a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0, 0}, {4, 5, 0}, {7, 8, 9}}, lo)

	up, err := matrix.UpperPart(a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 2, 3}, {0, 5, 6}, {0, 0, 9}}, up)

	// The source is untouched.
	requireRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a)

	// Parts of a window are contiguous and therefore solvable.
	base := sequential(t, 5, 5)
	win, err := base.View(1, 1, 3, 3)
	require.NoError(t, err)
	lo, err = matrix.LowerPart(win)
	require.NoError(t, err)
	require.Equal(t, matrix.RowMajor, lo.Layout())
	_, err = lo.SolveLower(matrix.NewVector[float64](1, 1, 1))
	require.NoError(t, err)

	_, err = matrix.LowerPart[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.UpperPart[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAliases(t *testing.T) {
	a := mustFromRows(t, [][]float64{{4, 7}, {2, 6}})

	L, U, err := matrix.LUDecompose(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	eq, err := matrix.AllClose(prod, a, 0, tol64)
	require.NoError(t, err)
	require.True(t, eq)

	inv, err := matrix.InverseOf(a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv)

	y, err := matrix.MatVecMul(a, matrix.NewVector[float64](1, 1))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{11, 8}, y, tol64)
}
