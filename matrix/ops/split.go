// SPDX-License-Identifier: MIT

package ops

// SplitLU separates a combined factorization into a unit lower-triangular L
// and an upper-triangular U, both n×n row-major. Note that L·U reproduces the
// ROW-PERMUTED input, not the input itself.
// Complexity: O(n^2).
func SplitLU(lu *LU) (l, u []float64) {
	n := lu.N
	l = make([]float64, n*n)
	u = make([]float64, n*n)

	var i, j, idx int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			idx = i*n + j
			switch {
			case i == j:
				l[idx] = 1.0
				u[idx] = lu.Data[idx]
			case i < j:
				u[idx] = lu.Data[idx]
			default:
				l[idx] = lu.Data[idx]
			}
		}
	}

	return l, u
}

// RowOrder replays the swap history and returns the final row mapping:
// row i of L·U equals row RowOrder()[i] of the original matrix.
// Complexity: O(n).
func (lu *LU) RowOrder() []int {
	order := make([]int, lu.N)
	for i := range order {
		order[i] = i
	}
	for i, p := range lu.Perm {
		order[i], order[p] = order[p], order[i]
	}

	return order
}
