// SPDX-License-Identifier: MIT

// Package matrix offers an immutable dense real matrix with elementwise
// algebra and a memoized linear-system engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix built by uniform fill (New) or from a
//     rectangular grid (FromGrid). Values never change after construction.
//   - Algebra: Add, Sub, Scale/ScaleBy, Mul, Transpose, MatVec. Every operator
//     is pure and returns a fresh *Dense.
//   - Linear systems: Decomposition (Crout LU with implicit scaling and partial
//     pivoting), LU, Determinant, Inverse, Solve and SolveVec on *Dense.
//
// Each Dense computes its LU factorization at most once, lazily, on the first
// Decomposition/Determinant/Inverse/Solve call, even under concurrent first
// access. Determinant and Inverse are memoized as well. A failed factorization
// (ErrNonSquare, ErrSingular) is terminal for that instance: every later call
// reports the same error.
//
// The flat-buffer kernels live in the ops subpackage.
//
// Quick example:
//
//	a, _ := matrix.FromGrid([][]float64{{15, 2, -4}, {5, 1, -1}, {7, 5, 3}})
//	b, _ := matrix.FromGrid([][]float64{{3}, {5}, {1}})
//	x, _ := a.Solve(b) // ≈ [-26, 73.5, -61.5]ᵀ
package matrix
