// SPDX-License-Identifier: MIT
// Package linop: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linop
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package linop

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linop: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf("Tag", ErrX) — callers
// will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> invalid shape -> dimension mismatch -> unsupported capability.

var (
	// ErrBadShape is returned when a requested operator shape is invalid
	// (rows <= 0 or cols <= 0). Constructors must validate before wrapping.
	ErrBadShape = errors.New("linop: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between an
	// operator and its argument, or between two operands of a composition:
	// MatVec input length != Cols, Add with different shapes, Mul where
	// a.Cols != b.Rows, or a user callback returning a wrong-length result.
	// Dimensions are never silently coerced; there is no broadcasting.
	ErrDimensionMismatch = errors.New("linop: dimension mismatch")

	// ErrUnsupportedOperation marks a capability that has no definition and
	// cannot be synthesized — typically an adjoint apply (RMatVec/RMatMat) on
	// an operator constructed from a forward callback only, or Transpose of
	// such an operator. Surfaced at the point of the unsupported call so that
	// partially-capable operators remain constructible.
	ErrUnsupportedOperation = errors.New("linop: operation not supported")

	// ErrNilOperator indicates that a nil Operator was passed where a value
	// is required (composition, solving, materialization).
	ErrNilOperator = errors.New("linop: nil operator")

	// ErrNilVector indicates that a nil vector was passed to an apply.
	ErrNilVector = errors.New("linop: nil vector")

	// ErrNilMatrix indicates that a nil matrix (array to wrap, or batched
	// apply block) was passed where a value is required.
	ErrNilMatrix = errors.New("linop: nil matrix")

	// ErrNilFunc indicates that a nil apply callback was supplied to New.
	ErrNilFunc = errors.New("linop: nil apply function")
)
