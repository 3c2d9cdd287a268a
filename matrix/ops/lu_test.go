// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix/ops"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestDecompose_PivotedScenario checks the factors, swap history and parity of a
// 3×3 system that needs one row swap.
func TestDecompose_PivotedScenario(t *testing.T) {
	src := []float64{
		2, 1, -3,
		-1, 3, 2,
		3, 1, -3,
	}
	lu, err := ops.Decompose(3, src)
	require.NoError(t, err)

	require.Equal(t, -1, lu.Parity)
	require.Equal(t, []int{2, 1, 2}, lu.Perm)

	l, u := ops.SplitLU(lu)
	wantL := []float64{
		1, 0, 0,
		-1.0 / 3, 1, 0,
		2.0 / 3, 0.1, 1,
	}
	wantU := []float64{
		3, 1, -3,
		0, 3 + 1.0/3, 1,
		0, 0, -1.1,
	}
	require.InDeltaSlice(t, wantL, l, tol)
	require.InDeltaSlice(t, wantU, u, tol)

	// src is read-only input.
	require.Equal(t, []float64{2, 1, -3, -1, 3, 2, 3, 1, -3}, src)
}

func TestDecompose_NoSwapKeepsIdentityPerm(t *testing.T) {
	lu, err := ops.Decompose(2, []float64{4, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1, lu.Parity)
	require.Equal(t, []int{0, 1}, lu.Perm)
	require.Equal(t, []int{0, 1}, lu.RowOrder())
	require.InDelta(t, 10.0, lu.Determinant(), tol)
}

// TestDecompose_ScaledPivotSearch uses rows of very different magnitude: by raw
// value row 0 would win, by scaled value row 1 wins.
func TestDecompose_ScaledPivotSearch(t *testing.T) {
	lu, err := ops.Decompose(2, []float64{
		2, 1000,
		1, 1,
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, lu.Perm)
	require.Equal(t, -1, lu.Parity)
	require.InDelta(t, 2.0-1000.0, lu.Determinant(), 1e-9)
}

// TestDecompose_SubnormalPivot keeps a finite, non-singular matrix finite even
// when its pivot is the smallest subnormal float64.
func TestDecompose_SubnormalPivot(t *testing.T) {
	const tiny = 5e-324
	lu, err := ops.Decompose(2, []float64{
		tiny, 0,
		0, 1,
	})
	require.NoError(t, err)
	require.Equal(t, []float64{tiny, 0, 0, 1}, lu.Data)
	require.Equal(t, tiny, lu.Determinant())

	x, err := ops.Solve(lu, []float64{tiny, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, x)
}

func TestDecompose_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		src  []float64
		want error
	}{
		{"zero order", 0, nil, ops.ErrNotSquare},
		{"short buffer", 2, []float64{1, 2, 3}, ops.ErrNotSquare},
		{"zero row", 2, []float64{1, 2, 0, 0}, ops.ErrSingular},
		{"zero pivot", 2, []float64{1, 2, 2, 4}, ops.ErrSingular},
		{"zero column", 3, []float64{0, 1, 2, 0, 3, 4, 0, 5, 7}, ops.ErrSingular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lu, err := ops.Decompose(tc.n, tc.src)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, lu)
		})
	}
}

func TestLU_CloneIsIndependent(t *testing.T) {
	lu, err := ops.Decompose(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	cp := lu.Clone()
	cp.Data[0] = 99
	cp.Perm[0] = 7
	require.NotEqual(t, 99.0, lu.Data[0])
	require.NotEqual(t, 7, lu.Perm[0])
	require.Equal(t, lu.Parity, cp.Parity)
}

// TestRowOrder_ReproducesPermutedInput verifies L·U == P·A using the final row order.
func TestRowOrder_ReproducesPermutedInput(t *testing.T) {
	const n = 4
	src := []float64{
		1, 2, 3, 4,
		8, 1, 0, 2,
		0, 5, 1, 1,
		3, 3, 9, 1,
	}
	lu, err := ops.Decompose(n, src)
	require.NoError(t, err)
	l, u := ops.SplitLU(lu)
	order := lu.RowOrder()

	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum := 0.0
			for k = 0; k < n; k++ {
				sum += l[i*n+k] * u[k*n+j]
			}
			require.InDelta(t, src[order[i]*n+j], sum, 1e-12, "cell (%d,%d)", i, j)
		}
	}
}
