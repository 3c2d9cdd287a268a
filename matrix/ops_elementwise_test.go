// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// --- AllClose -----------------------------------------------------------------

func TestAllClose_Tolerances(t *testing.T) {
	a := MustGrid(t, [][]float64{{1, 2}, {3, 4}})
	near := MustGrid(t, [][]float64{{1 + 1e-10, 2}, {3, 4 - 1e-10}})
	far := MustGrid(t, [][]float64{{1.1, 2}, {3, 4}})

	cases := []struct {
		name       string
		a, b       matrix.Matrix
		rtol, atol float64
		want       bool
	}{
		{"exact", a, a, 0, 0, true},
		{"near atol", a, near, 0, 1e-9, true},
		{"near rtol", a, near, 1e-9, 0, true},
		{"near strict", a, near, 0, 0, false},
		{"far", a, far, 1e-6, 1e-6, false},
		{"negative tolerances use abs", a, near, 0, -1e-9, true},
		{"fallback near", hide{a}, hide{near}, 0, 1e-9, true},
		{"fallback far", hide{a}, far, 0, 1e-3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := matrix.AllClose(tc.a, tc.b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

func TestAllClose_NonFinite(t *testing.T) {
	grid := [][]float64{{math.Inf(1), math.Inf(-1), math.NaN()}}
	a, err := matrix.FromGrid(grid, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	b, err := matrix.FromGrid(grid, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	// NaN never compares equal, even to itself.
	ok, err := matrix.AllClose(a, b, 0, 1)
	require.NoError(t, err)
	require.False(t, ok)

	inf, err := matrix.FromGrid([][]float64{{math.Inf(1), math.Inf(-1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.AllClose(inf, inf.Clone(), 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	a := MustFill(t, 1, 2, 2)

	_, err := matrix.AllClose(a, MustFill(t, 1, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// --- Equal --------------------------------------------------------------------

func TestEqual(t *testing.T) {
	a := MustGrid(t, [][]float64{{1, 2}, {3, 4}})

	eq, err := matrix.Equal(a, a.Clone())
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = matrix.Equal(a, hide{a})
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = matrix.Equal(a, MustGrid(t, [][]float64{{1, 2}, {3, 4.0000001}}))
	require.NoError(t, err)
	require.False(t, eq)

	// Different shapes are unequal, not an error.
	eq, err = matrix.Equal(a, MustFill(t, 1, 1, 4))
	require.NoError(t, err)
	require.False(t, eq)

	_, err = matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
