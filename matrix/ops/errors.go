// SPDX-License-Identifier: MIT

package ops

import "errors"

// Sentinels returned by ops kernels. The matrix package re-exports them so
// callers can match with errors.Is at either layer.
var (
	// ErrNotSquare is returned when a factorization is requested on a buffer
	// whose length is not n*n (or n < 1).
	ErrNotSquare = errors.New("ops: matrix is not square")

	// ErrSingular is returned when a row has no non-zero entry during scaling
	// setup, or when a pivot reduces to exactly zero.
	ErrSingular = errors.New("ops: matrix is singular")

	// ErrDimensionMismatch is returned when a right-hand side does not match
	// the order of the factorization.
	ErrDimensionMismatch = errors.New("ops: dimension mismatch")
)
