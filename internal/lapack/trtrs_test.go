// SPDX-License-Identifier: MIT

package lapack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
)

// lower3 is [[2,0,0],[1,3,0],[4,2,5]] in row-major order.
var lower3 = []float64{
	2, 0, 0,
	1, 3, 0,
	4, 2, 5,
}

// transpose3 returns the 3×3 buffer re-read in the opposite layout.
func transpose3(a []float64) []float64 {
	out := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j*3+i] = a[i*3+j]
		}
	}

	return out
}

func TestSolveTriangle_LowerRowMajor(t *testing.T) {
	b := []float64{2, 4, 16}
	x, err := SolveTriangle(RowMajor, blas.Lower, 3, lower3, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 2}, x, 1e-12)
	require.Equal(t, []float64{2, 4, 16}, b, "right-hand side must not be written")
}

func TestSolveTriangle_LowerColMajor(t *testing.T) {
	// Same logical matrix stored column by column.
	x, err := SolveTriangle(ColMajor, blas.Lower, 3, transpose3(lower3), []float64{2, 4, 16})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 2}, x, 1e-12)
}

func TestSolveTriangle_UpperBothLayouts(t *testing.T) {
	// U = [[1,2,3],[0,4,5],[0,0,6]], x = [1,1,1] ⇒ b = [6,9,6].
	upper := []float64{
		1, 2, 3,
		0, 4, 5,
		0, 0, 6,
	}
	b := []float64{6, 9, 6}

	x, err := SolveTriangle(RowMajor, blas.Upper, 3, upper, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1}, x, 1e-12)

	x, err = SolveTriangle(ColMajor, blas.Upper, 3, transpose3(upper), b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1}, x, 1e-12)
}

func TestSolveTriangle_IgnoresOppositeTriangle(t *testing.T) {
	// Garbage above the diagonal must not influence a lower solve.
	full := []float64{
		2, 9, 9,
		1, 3, 9,
		4, 2, 5,
	}
	x, err := SolveTriangle(RowMajor, blas.Lower, 3, full, []float64{2, 4, 16})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 2}, x, 1e-12)
}

func TestSolveTriangle_Float32(t *testing.T) {
	a := []float32{
		2, 0, 0,
		1, 3, 0,
		4, 2, 5,
	}
	x, err := SolveTriangle(RowMajor, blas.Lower, 3, a, []float32{2, 4, 16})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float32{1, 1, 2}, x, 1e-5)
}

func TestSolveTriangle_ZeroDiagonal(t *testing.T) {
	a := []float64{
		2, 0, 0,
		1, 0, 0,
		4, 2, 5,
	}
	_, err := SolveTriangle(RowMajor, blas.Lower, 3, a, []float64{1, 1, 1})
	var le *Error
	require.True(t, errors.As(err, &le))
	require.Equal(t, 2, le.Info, "info is the 1-based index of the zero pivot")
	require.Equal(t, routineD, le.Routine)
	require.True(t, le.Singular())

	_, err = SolveTriangle(RowMajor, blas.Upper, 2, []float32{0, 1, 0, 1}, []float32{1, 1})
	require.True(t, errors.As(err, &le))
	require.Equal(t, 1, le.Info)
	require.Equal(t, routineS, le.Routine)
	require.Contains(t, le.Error(), "singular")
}

func TestSolveTriangle_IllegalArguments(t *testing.T) {
	a := make([]float64, 4)
	b := make([]float64, 2)
	for _, tc := range []struct {
		name   string
		layout Layout
		uplo   blas.Uplo
		n      int
		a, b   []float64
		info   int
	}{
		{"layout", Layout(7), blas.Upper, 2, a, b, -1},
		{"uplo", RowMajor, blas.All, 2, a, b, -2},
		{"negative n", RowMajor, blas.Upper, -1, a, b, -3},
		{"short a", RowMajor, blas.Upper, 2, a[:3], b, -4},
		{"long b", ColMajor, blas.Lower, 2, a, make([]float64, 3), -5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SolveTriangle(tc.layout, tc.uplo, tc.n, tc.a, tc.b)
			var le *Error
			require.True(t, errors.As(err, &le))
			require.Equal(t, tc.info, le.Info)
			require.False(t, le.Singular())
			require.Contains(t, le.Error(), "illegal value")
		})
	}
}

func TestSolveTriangle_Empty(t *testing.T) {
	x, err := SolveTriangle[float64](RowMajor, blas.Upper, 0, nil, nil)
	require.NoError(t, err)
	require.Empty(t, x)
}

func TestLayout_String(t *testing.T) {
	require.Equal(t, "LAPACK_ROW_MAJOR", RowMajor.String())
	require.Equal(t, "LAPACK_COL_MAJOR", ColMajor.String())
	require.Equal(t, "Layout(3)", Layout(3).String())
}
