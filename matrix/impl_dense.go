// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep values immutable after construction so the per-instance
//     derived-quantity cache (see cache.go) can never go stale.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) on ingestion.
//
// Complexity quicksheet:
//   - New/NewDense/FromGrid: O(r*c); At: O(1); Clone/Grid: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxNew      = "New"      // ctor tag for New/NewDense
	ctxFromGrid = "FromGrid" // ctor tag for FromGrid
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts carries the construction policy (numeric validation, logger).
//   - memo holds the lazily computed decomposition, determinant and inverse.
//
// A Dense is safe for concurrent use by multiple goroutines.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c), never mutated
	opts Options   // effective options fixed at construction
	memo *cache    // per-instance derived-quantity cache
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New returns a rows×cols matrix with every cell set to value.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options; reject a non-finite value under the numeric policy.
//   - Stage 3: allocate and fill the buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(value float64, rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf && isNonFinite(value) {
		return nil, matrixErrorf(ctxNew, ErrNaNInf)
	}

	buf := make([]float64, rows*cols)
	if value != 0 {
		for i := range buf {
			buf[i] = value
		}
	}

	return newDense(rows, cols, buf, o), nil
}

// NewDense creates an r×c zero matrix. It is New(0, rows, cols, opts...).
// Complexity: O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	return New(0, rows, cols, opts...)
}

// FromGrid builds a matrix from a rectangular grid of values; dimensions are
// read from the grid's own shape (len(grid) rows, len(grid[0]) columns).
//
// Implementation:
//   - Stage 1: reject an empty grid or empty first row (ErrInvalidDimensions).
//   - Stage 2: copy each row, rejecting rows of a different length (ErrRagged)
//     and non-finite values under the numeric policy (ErrNaNInf).
//
// Behavior highlights:
//   - The grid is COPIED. Mutating grid afterwards does not affect the matrix,
//     which is what keeps cached determinant/inverse consistent with the values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGrid(grid [][]float64, opts ...Option) (*Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, matrixErrorf(ctxFromGrid, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	rows, cols := len(grid), len(grid[0])
	buf := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, matrixErrorf(ctxFromGrid, fmt.Errorf("row %d has %d values, want %d: %w", i, len(grid[i]), cols, ErrRagged))
		}
		if o.validateNaNInf {
			for j = 0; j < cols; j++ {
				if isNonFinite(grid[i][j]) {
					return nil, denseErrorf(ctxFromGrid, i, j, ErrNaNInf)
				}
			}
		}
		copy(buf[i*cols:(i+1)*cols], grid[i])
	}

	return newDense(rows, cols, buf, o), nil
}

// newDense wraps buf (taking ownership) without validation. Internal kernels
// use it to publish freshly computed results.
func newDense(rows, cols int, buf []float64, o Options) *Dense {
	return &Dense{r: rows, c: cols, data: buf, opts: o, memo: newCache()}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Clone returns an independent copy with the same shape, values and options.
// The clone starts with an empty derived-quantity cache.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return newDense(m.r, m.c, cp, m.opts)
}

// Grid returns the values as a freshly allocated rows×cols grid.
// Complexity: O(r*c).
func (m *Dense) Grid() [][]float64 {
	grid := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		grid[i] = row
	}

	return grid
}

// Values returns a copy of the row-major backing buffer.
func (m *Dense) Values() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// String renders rows as "[v, v, ...]" lines using %g.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
