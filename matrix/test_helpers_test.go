// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// tolSolve is the tolerance used for A·x ≈ b and A·A⁻¹ ≈ I checks.
const tolSolve = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustGrid builds a *Dense from a grid or fails the test.
func MustGrid(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromGrid(grid)
	require.NoError(t, err)

	return m
}

// MustFill builds an r×c *Dense filled with v or fails the test.
func MustFill(t testing.TB, v float64, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(v, r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return id
}

// RandGrid returns an r×c grid of values in [-10, 10) from a seeded source.
func RandGrid(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			grid[i][j] = rng.Float64()*20 - 10
		}
	}

	return grid
}

// DiagDominant returns a seeded random n×n grid made strictly diagonally
// dominant, hence non-singular.
func DiagDominant(n int, seed int64) [][]float64 {
	grid := RandGrid(n, n, seed)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if j != i {
				if grid[i][j] < 0 {
					sum -= grid[i][j]
				} else {
					sum += grid[i][j]
				}
			}
		}
		grid[i][i] = sum + 1
	}

	return grid
}

// RequireClose asserts AllClose(got, want) with absolute tolerance atol.
func RequireClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%v\ngot:\n%v", atol, want, got)
}
