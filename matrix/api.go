// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1.0
	}

	return newDense(n, n, buf, gatherOptions(opts...)), nil
}

// IdentityLike returns I with dimension = Rows(m); requires a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	buf := make([]float64, m.Rows()*m.Rows())
	for i := 0; i < m.Rows(); i++ {
		buf[i*m.Rows()+i] = 1.0
	}

	return newDense(m.Rows(), m.Rows(), buf, resultOptions(m)), nil
}

// ---------- Algebra aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ---------- Linear-system facades (delegate to the Dense cache) ----------

// Determinant returns det(m) via m's cached LU factorization.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func Determinant(m *Dense) (float64, error) { return m.Determinant() }

// InverseOf returns m^{-1} via m's cached LU factorization.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func InverseOf(m *Dense) (*Dense, error) { return m.Inverse() }

// SolveLinearSystem returns x with a·x = b for an n×1 column b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNonSquare, ErrSingular.
func SolveLinearSystem(a *Dense, b Matrix) (*Dense, error) { return a.Solve(b) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// Complexity: O(r*c) time, O(1) space.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports exact element-wise equality of two same-shaped matrices.
// Matrices of different shapes are simply not equal.
func Equal(a, b Matrix) (bool, error) {
	return ewEqual(a, b)
}
