// Package lvlalg is a small dense linear-algebra toolkit: an immutable
// float64 matrix, elementwise and product algebra, and an LU engine that
// factors each matrix at most once and serves determinant, inverse and
// linear solves from that single factorization.
//
// Everything is organized under these packages:
//
//	matrix/      - Dense type, algebra kernels, memoized LU/determinant/inverse/solve
//	matrix/ops/  - flat-buffer kernels: Crout decomposition, substitution, inversion
//	matrixio/    - YAML/JSON matrix documents (load, decode, encode)
//	cmd/lualg/   - command-line front end (mul, lu, det, inv, solve)
//	examples/    - runnable programs: nodal circuit analysis, polynomial fit
//
// Quick start:
//
//	a, _ := matrix.FromGrid([][]float64{{2, 1}, {1, 3}})
//	det, _ := a.Determinant()        // 5, factorization cached
//	x, _ := a.SolveVec([]float64{3, 5}) // reuses it: [0.8, 1.4]
package lvlalg
