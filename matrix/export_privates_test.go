// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the derived-quantity cache.
//
// Purpose:
//   - Expose cache states and a decomposition call counter to matrix_test ONLY.
//   - The file name ends in _test.go, so none of this exists in production builds.

import (
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/matrix/ops"
)

// LUState returns the lifecycle state of m's cached factorization.
func LUState(m *Dense) string { return m.memo.lu.state.String() }

// DeterminantState returns the lifecycle state of m's cached determinant.
func DeterminantState(m *Dense) string { return m.memo.det.state.String() }

// InverseState returns the lifecycle state of m's cached inverse.
func InverseState(m *Dense) string { return m.memo.inv.state.String() }

// CountDecompositions swaps the factorization kernel for a counting wrapper
// and restores it when t finishes. Tests using it must not run in parallel.
func CountDecompositions(t testing.TB) *atomic.Int64 {
	t.Helper()
	var calls atomic.Int64
	prev := decompose
	decompose = func(n int, src []float64) (*ops.LU, error) {
		calls.Add(1)
		return prev(n, src)
	}
	t.Cleanup(func() { decompose = prev })

	return &calls
}

// ValidatesNaNInf reports the resolved numeric ingestion policy of o.
func ValidatesNaNInf(o Options) bool { return o.validateNaNInf }

// LoggerOf returns the resolved logger of o.
func LoggerOf(o Options) *zap.Logger { return o.logger }

// OptionsOf returns the options m was built with.
func OptionsOf(m *Dense) Options { return m.opts }
