// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag via matrixErrorf) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvlalg/matrix/ops"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." (or "ops: ..." for kernel
// sentinels re-exported below) for consistency and easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> square -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a grid is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates that a grid passed to FromGrid has rows of different lengths.
	ErrRagged = errors.New("matrix: grid rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side that is not an N×1 column.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Linear-system sentinels are owned by the ops kernels and aliased here so
// errors.Is matches regardless of which layer reported the failure.
var (
	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = ops.ErrNotSquare

	// ErrSingular is returned when a zero row is found during scaling setup or a
	// pivot reduces to exactly zero. Determinant of such a matrix is reported
	// as this failure, never as 0.
	ErrSingular = ops.ErrSingular
)
