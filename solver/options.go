// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the iterative methods.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
package solver

import "math"

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the relative residual tolerance: iteration stops
	// once ‖r‖ ≤ tol·max(1, ‖b‖) for CG, or the eigenvalue estimate shifts
	// by less than tol·|λ| for power iteration.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps the number of iterations before the solver
	// gives up with ErrNotConverged.
	DefaultMaxIterations = 1000
)

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid = "solver: WithTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid   = "solver: WithMaxIterations: n must be > 0"
	panicNilInitialGuess  = "solver: WithInitialGuess: guess must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	tol     float64   // >= 0; DefaultTolerance
	maxIter int       // > 0; DefaultMaxIterations
	x0      []float64 // optional initial guess; nil ⇒ solver default
}

// WithTolerance sets the convergence tolerance.
// Panics when tol is NaN, ±Inf or negative. Complexity: O(1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration budget.
// Panics when n <= 0. Complexity: O(1).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithInitialGuess supplies a starting vector. The slice is copied, so later
// caller mutations do not leak into the iteration. Length is validated by the
// solver against the operator shape (ErrDimensionMismatch), not here.
// Panics when guess is nil. Complexity: O(n) for the defensive copy.
func WithInitialGuess(guess []float64) Option {
	if guess == nil {
		panic(panicNilInitialGuess)
	}
	x0 := make([]float64, len(guess))
	copy(x0, guess)

	return func(o *Options) { o.x0 = x0 }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins; stable for a given sequence. Complexity: O(k).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
