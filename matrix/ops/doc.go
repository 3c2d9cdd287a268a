// SPDX-License-Identifier: MIT

// Package ops holds the flat-buffer kernels behind matrix linear algebra:
// Crout LU factorization with implicit scaling and partial pivoting, the
// permutation-aware forward/backward substitution that consumes it, and small
// helpers (SplitLU, Determinant) derived from a factorization.
//
// Kernels operate on row-major []float64 buffers of length n*n and never alias
// their inputs: Decompose copies the source once, Solve copies the right-hand
// side once. The matrix package owns memoization; ops is stateless.
//
// Complexity quicksheet:
//   - Decompose: O(n^3) time, O(n^2) space.
//   - Solve:     O(n^2) time, O(n) space.
//   - SplitLU:   O(n^2) time and space.
package ops
