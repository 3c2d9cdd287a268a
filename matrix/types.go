// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface consumed by algebra kernels.
package matrix

// Matrix is a read-only two-dimensional array of float64 values.
//
// Algebra kernels accept any Matrix and take a flat-slice fast path when the
// operands are *Dense. Implementations must be immutable after construction:
// Dense caches its factorization, determinant and inverse, and those caches
// are only valid because the values can never change.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
