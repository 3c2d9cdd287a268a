// SPDX-License-Identifier: MIT

package ops

import "fmt"

// ZeroSum is the initial accumulator for substitution dot products.
const ZeroSum = 0.0

// Solve returns x such that A·x = b, where lu is the factorization of A.
// Neither lu nor b is modified; the result is a fresh slice.
//
// Errors:
//   - ErrDimensionMismatch if len(b) != lu.N.
//
// Complexity: O(n^2) time, O(n) space.
func Solve(lu *LU, b []float64) ([]float64, error) {
	if len(b) != lu.N {
		return nil, fmt.Errorf("Solve: rhs length %d, order %d: %w", len(b), lu.N, ErrDimensionMismatch)
	}
	x := make([]float64, lu.N)
	copy(x, b)
	SolveInto(lu, x)

	return x, nil
}

// SolveInto overwrites x (the right-hand side, len == lu.N) with the solution.
// It performs no validation; callers own the length check.
//
// Implementation:
//   - Stage 1 (forward, row 0..n-1): replay the swap history, x[Perm[row]] ↔ x[row],
//     then subtract Σ L[row,col]·x[col]. Accumulation starts at the first row
//     whose permuted value is non-zero, since every earlier x is zero.
//   - Stage 2 (backward, row n-1..0): x[row] = (x[row] − Σ_{col>row} U[row,col]·x[col]) / U[row,row].
//
// Complexity: O(n^2) time, O(1) extra space.
func SolveInto(lu *LU, x []float64) {
	n := lu.N
	data := lu.Data
	var (
		row, col, base int
		sum            float64
	)

	first := -1 // first row with a non-zero permuted rhs value
	for row = 0; row < n; row++ {
		p := lu.Perm[row]
		sum = x[p]
		x[p] = x[row]
		if first >= 0 {
			base = row * n
			for col = first; col < row; col++ {
				sum -= data[base+col] * x[col]
			}
		} else if sum != ZeroSum {
			first = row
		}
		x[row] = sum
	}

	for row = n - 1; row >= 0; row-- {
		base = row * n
		sum = x[row]
		for col = row + 1; col < n; col++ {
			sum -= data[base+col] * x[col]
		}
		x[row] = sum / data[base+row]
	}
}
