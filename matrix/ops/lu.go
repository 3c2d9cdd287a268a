// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
)

// ZeroPivot is the sentinel for detecting a zero pivot or a zero row.
const ZeroPivot = 0.0

// LU is the result of a Crout factorization with partial pivoting.
//
// Data is an n×n row-major buffer: the upper triangle including the diagonal
// holds U, the strict lower triangle holds L (whose unit diagonal is implicit).
// Perm[i] is the row that was swapped into row i at elimination step i; it is
// a swap history, not a final row mapping, and Solve replays it in order.
// Parity is +1 or -1 and flips once per actual row swap.
type LU struct {
	N      int       // order of the factorized matrix
	Data   []float64 // combined L\U buffer, len == N*N
	Perm   []int     // elimination-order swap history, len == N
	Parity int       // +1 for an even number of swaps, -1 for odd
}

// Decompose factorizes the n×n row-major matrix src using Crout's method with
// implicit row scaling and partial pivoting. src is read-only; all work happens
// on a private copy.
//
// Implementation:
//   - Stage 1: validate len(src) == n*n and copy src into the working buffer.
//   - Stage 2: scaling[r] = 1 / max_j |A[r,j]|; a zero row fails with ErrSingular.
//   - Stage 3: for each column c:
//     rows r < c get the Crout upper update A[r,c] -= Σ_{k<r} A[r,k]·A[k,c];
//     rows r ≥ c get the same update and compete on scaling[r]·|A[r,c]|;
//     the winner is swapped into row c (buffer and scaling), parity flips,
//     Perm[c] records the winner; a zero pivot fails with ErrSingular;
//     entries below the pivot are divided by it.
//
// Behavior highlights:
//   - The pivot search compares SCALED magnitudes with a strict '>', so ties
//     keep the earliest row.
//   - A column whose candidates are all zero keeps row c as pivot and then
//     fails the zero-pivot check.
//
// Errors:
//   - ErrNotSquare (n < 1 or len(src) != n*n), ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy plus O(n) for scaling/perm.
func Decompose(n int, src []float64) (*LU, error) {
	if n < 1 || len(src) != n*n {
		return nil, fmt.Errorf("Decompose: %d values for order %d: %w", len(src), n, ErrNotSquare)
	}

	// Stage 1: private working copy.
	data := make([]float64, n*n)
	copy(data, src)

	// Stage 2: implicit scaling.
	var (
		r, c, k         int
		base            int
		biggest, v, sum float64
	)
	scaling := make([]float64, n)
	for r = 0; r < n; r++ {
		biggest = ZeroPivot
		base = r * n
		for c = 0; c < n; c++ {
			if v = math.Abs(data[base+c]); v > biggest {
				biggest = v
			}
		}
		if biggest == ZeroPivot {
			return nil, fmt.Errorf("Decompose: row %d is zero: %w", r, ErrSingular)
		}
		scaling[r] = 1.0 / biggest
	}

	// Stage 3: column sweep.
	perm := make([]int, n)
	parity := 1
	var pivotRow int
	for c = 0; c < n; c++ {
		// Upper part: rows above the diagonal.
		for r = 0; r < c; r++ {
			base = r * n
			sum = data[base+c]
			for k = 0; k < r; k++ {
				sum -= data[base+k] * data[k*n+c]
			}
			data[base+c] = sum
		}

		// Diagonal and below: finish the sums and search for the pivot.
		biggest = ZeroPivot
		pivotRow = c
		for r = c; r < n; r++ {
			base = r * n
			sum = data[base+c]
			for k = 0; k < c; k++ {
				sum -= data[base+k] * data[k*n+c]
			}
			data[base+c] = sum
			if v = scaling[r] * math.Abs(sum); v > biggest {
				biggest = v
				pivotRow = r
			}
		}

		if pivotRow != c {
			swapRows(data, n, pivotRow, c)
			scaling[pivotRow], scaling[c] = scaling[c], scaling[pivotRow]
			parity = -parity
		}
		perm[c] = pivotRow

		pivot := data[c*n+c]
		if pivot == ZeroPivot {
			return nil, fmt.Errorf("Decompose: zero pivot in column %d: %w", c, ErrSingular)
		}

		// Store the elimination factors of L below the pivot.
		for r = c + 1; r < n; r++ {
			data[r*n+c] /= pivot
		}
	}

	return &LU{N: n, Data: data, Perm: perm, Parity: parity}, nil
}

// swapRows exchanges rows i and j of the n-column row-major buffer.
func swapRows(data []float64, n, i, j int) {
	ri, rj := data[i*n:i*n+n], data[j*n:j*n+n]
	for k := 0; k < n; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Clone returns a deep copy of the factorization.
func (lu *LU) Clone() *LU {
	data := make([]float64, len(lu.Data))
	copy(data, lu.Data)
	perm := make([]int, len(lu.Perm))
	copy(perm, lu.Perm)

	return &LU{N: lu.N, Data: data, Perm: perm, Parity: lu.Parity}
}

// Determinant returns Parity × Π diag(U).
// Complexity: O(n).
func (lu *LU) Determinant() float64 {
	det := float64(lu.Parity)
	for i := 0; i < lu.N; i++ {
		det *= lu.Data[i*lu.N+i]
	}

	return det
}
