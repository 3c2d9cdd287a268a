// SPDX-License-Identifier: MIT

package ops

// Invert returns A^{-1} as an n×n row-major buffer, where lu is the
// factorization of A. Column j of the result is the solution of A·x = e_j,
// all n solves reusing the same factorization.
//
// Implementation:
//   - Stage 1: allocate the result and one workspace column.
//   - Stage 2: for each j, load e_j into the workspace, SolveInto, and scatter
//     the workspace into column j.
//
// Complexity: O(n^3) time (n solves of O(n^2)), O(n^2) space.
func Invert(lu *LU) []float64 {
	n := lu.N
	inv := make([]float64, n*n)
	col := make([]float64, n)

	var i, j int
	for j = 0; j < n; j++ {
		for i = range col {
			col[i] = ZeroSum
		}
		col[j] = 1.0
		SolveInto(lu, col)
		for i = 0; i < n; i++ {
			inv[i*n+j] = col[i]
		}
	}

	return inv
}
