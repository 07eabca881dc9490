// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and solve policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Apply
	// of matrices built by constructors that accept options.
	DefaultValidateNaNInf = true

	// DefaultRHSCheck enables the explicit right-hand-side length check in
	// triangular solves. When disabled, a length mismatch is left to the
	// native primitive, which reports it as a solver failure (info = -5).
	DefaultRHSCheck = true
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	rhsCheck       bool // DefaultRHSCheck
}

// WithValidateNaNInf enables strict finite-value validation on Set/Apply.
// This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
//
// Notes:
//   - The flag propagates on creation only; existing matrices keep their policy.
//
// AI-Hints:
//   - Useful when staging raw data that is sanitized before any solve.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRHSCheck enables the explicit right-hand-side length check (default).
// A mismatch is reported as KindDimensionMismatch before the native call.
func WithRHSCheck() Option {
	return func(o *Options) { o.rhsCheck = true }
}

// WithoutRHSCheck defers right-hand-side validation to the native primitive.
// A mismatch then surfaces as KindSolverFailure with Code == -5.
//
// AI-Hints:
//   - Only useful to reproduce LAPACK-level diagnostics; the default check
//     gives a clearer error.
func WithoutRHSCheck() Option {
	return func(o *Options) { o.rhsCheck = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		rhsCheck:       DefaultRHSCheck,
	}
}

// gatherOptions applies setters over the defaults; nil setters are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
