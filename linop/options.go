// SPDX-License-Identifier: MIT

// Package linop: functional configuration for function-backed operators.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Capability model: New requires a forward MatVec. Everything else is
//     optional. Batched forms (MatMat/RMatMat) default to column-wise
//     synthesis from the corresponding single-vector apply; the adjoint
//     single-vector apply (RMatVec) has no synthesis path and, when absent,
//     leaves the operator without an adjoint capability.
package linop

// Internal panic messages (no magic strings).
const (
	panicNilRMatVec = "linop: WithRMatVec: callback must be non-nil"
	panicNilMatMat  = "linop: WithMatMat: callback must be non-nil"
	panicNilRMatMat = "linop: WithRMatMat: callback must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; New accepts
// `...Option` and internally resolves them via gatherOptions.
type Options struct {
	rmatvec VecFunc // nil ⇒ no adjoint capability
	matmat  MatFunc // nil ⇒ synthesized column-wise from matvec
	rmatmat MatFunc // nil ⇒ synthesized column-wise from rmatvec (if any)
}

// WithRMatVec supplies the adjoint single-vector apply y = Aᵗ·x.
// Supplying it makes the operator adjointable (HasAdjoint() == true) and
// thereby transposable. Panics if f is nil (programmer error).
// Complexity: O(1).
func WithRMatVec(f VecFunc) Option {
	if f == nil {
		panic(panicNilRMatVec)
	}

	return func(o *Options) { o.rmatvec = f }
}

// WithMatMat supplies a batched forward apply Y = A·X. When omitted, the
// batched form is synthesized by applying MatVec to each column of X in a
// fixed left-to-right order. Supply a native implementation when the backing
// computation can amortize work across columns. Panics if f is nil.
// Complexity: O(1).
func WithMatMat(f MatFunc) Option {
	if f == nil {
		panic(panicNilMatMat)
	}

	return func(o *Options) { o.matmat = f }
}

// WithRMatMat supplies a batched adjoint apply Y = Aᵗ·X. When omitted it is
// synthesized column-wise from RMatVec; if RMatVec is also absent the
// capability stays undefined and calls return ErrUnsupportedOperation.
// Panics if f is nil. Complexity: O(1).
func WithRMatMat(f MatFunc) Option {
	if f == nil {
		panic(panicNilRMatMat)
	}

	return func(o *Options) { o.rmatmat = f }
}

// gatherOptions applies user-provided Option setters on top of the zero
// defaults (all capabilities unset). Last-writer-wins semantics; stable for a
// given setter sequence. Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
