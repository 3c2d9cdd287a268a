// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state consulted at compute time.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options are fixed at construction; a Dense never changes policy later.
//
// Notes:
//   - Results of algebra (Add, Mul, Inverse, ...) inherit the options of their
//     left *Dense operand, so a logger injected once follows derived matrices.
//   - The numeric policy applies to ingestion only (New, FromGrid). Kernel
//     outputs are not re-validated: overflow to ±Inf is reported as data.
package matrix

import "go.uber.org/zap"

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
const DefaultValidateNaNInf = true

const panicNilLogger = "matrix: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve them
// via gatherOptions.
type Options struct {
	validateNaNInf bool        // DefaultValidateNaNInf
	logger         *zap.Logger // defaults to the package "matrix" logger
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// New and FromGrid then reject NaN/±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on ingestion (use with care).
//
// Notes:
//   - A NaN entry never wins the pivot search, so factorization of such a
//     matrix usually fails with ErrSingular or yields NaN results.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger routes debug events of the derived-quantity cache (decomposition
// computed or failed, inverse computed) to logger.
//
// Errors:
//   - Panics with a stable message when logger is nil (programmer error).
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// NewMatrixOptions resolves opts on top of the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		logger:         log.Desugar(),
	}
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
