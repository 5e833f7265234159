// SPDX-License-Identifier: MIT
// Package solver: sentinel error set (unified, consistent).
// All solvers MUST return these sentinels and tests MUST check them via
// errors.Is. No solver panics on user-triggered error conditions; panics are
// reserved for nonsensical option values (programmer error).

package solver

import "errors"

var (
	// ErrNilOperator indicates that a nil Operator was passed to a solver.
	ErrNilOperator = errors.New("solver: nil operator")

	// ErrNonSquare signals that a square operator was required but the input
	// has Rows() != Cols(). CG and power iteration both require square maps.
	ErrNonSquare = errors.New("solver: operator is not square")

	// ErrDimensionMismatch indicates a right-hand side or initial guess whose
	// length disagrees with the operator shape.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrNotConverged is returned when the iteration budget is exhausted (or
	// the recurrence breaks down) before the residual criterion is met.
	ErrNotConverged = errors.New("solver: failed to converge")

	// ErrZeroVector signals a degenerate vector where a nonzero one is
	// required (zero right-hand side norm guard, vanishing iterate).
	ErrZeroVector = errors.New("solver: zero or degenerate vector")
)
