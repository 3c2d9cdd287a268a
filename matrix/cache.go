// SPDX-License-Identifier: MIT

// Package matrix - per-instance derived-quantity cache.
//
// Every Dense owns one cache holding three memoized quantities: the LU
// factorization, the determinant and the inverse. Each quantity moves through
//
//	stateUncomputed → stateComputing → stateCached
//	                                 ↘ stateFailed (terminal)
//
// exactly once, guarded by its own sync.Once. Concurrent first callers block
// until the single computation finishes; later callers read the published
// value or error without further synchronization. A failure is never retried:
// the matrix is immutable, so a retry would reproduce the same error.
package matrix

import (
	"sync"

	"github.com/katalvlaran/lvlalg/matrix/ops"
)

// cacheState tags the lifecycle of one memoized quantity.
type cacheState uint8

const (
	stateUncomputed cacheState = iota
	stateComputing
	stateCached
	stateFailed
)

// String returns a short lowercase name, used in debug logs.
func (s cacheState) String() string {
	switch s {
	case stateUncomputed:
		return "uncomputed"
	case stateComputing:
		return "computing"
	case stateCached:
		return "cached"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// memoized is a compute-once slot holding either a value or an error.
type memoized[T any] struct {
	once  sync.Once
	state cacheState
	val   T
	err   error
}

// get runs compute on the first call and returns the stored outcome on every call.
func (e *memoized[T]) get(compute func() (T, error)) (T, error) {
	e.once.Do(func() {
		e.state = stateComputing
		v, err := compute()
		if err != nil {
			e.err = err
			e.state = stateFailed
			return
		}
		e.val = v
		e.state = stateCached
	})

	return e.val, e.err
}

// cache groups the memoized quantities of one Dense.
type cache struct {
	lu  memoized[*ops.LU]
	det memoized[float64]
	inv memoized[*Dense]
}

func newCache() *cache { return &cache{} }

// decompose is the factorization kernel used by the cache. Tests swap it to
// count invocations.
var decompose = ops.Decompose
