// SPDX-License-Identifier: MIT
// Package: solver
//
// Purpose:
//   - Canonical validation checks shared by the iterative methods.
//   - Return plain sentinels; entry points wrap uniformly via solverErrorf.

package solver

import (
	"fmt"

	"github.com/katalvlaran/lazyop/linop"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opCG    = "CG"
	opPower = "PowerIteration"
)

// solverErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching the package sentinels.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSquareOperator — Composite: NotNil → Square.
// Returns ErrNilOperator / ErrNonSquare. Complexity: O(1).
func validateSquareOperator(a linop.Operator) error {
	if a == nil {
		return ErrNilOperator
	}
	if a.Rows() != a.Cols() {
		return ErrNonSquare
	}

	return nil
}

// validateVecLen ensures x is non-nil and has exactly length n.
// Returns ErrDimensionMismatch. Complexity: O(1).
func validateVecLen(x []float64, n int) error {
	if x == nil || len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
