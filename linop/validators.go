// SPDX-License-Identifier: MIT
// Package: linop
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep adapters/composites minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly via opErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package linop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec     = "MatVec"
	opRMatVec    = "RMatVec"
	opMatMat     = "MatMat"
	opRMatMat    = "RMatMat"
	opFromMatrix = "FromMatrix"
	opNew        = "New"
	opAdd        = "Add"
	opMul        = "Mul"
	opScale      = "Scale"
	opTranspose  = "Transpose"
	opIdentity   = "Identity"
	opToDense    = "ToDense"
)

// opErrorf wraps err with an operation tag, preserving the original error via
// %w so errors.Is/As keep matching the package sentinels. Call only with a
// non-nil err; wrapping nil would manufacture a non-nil error around nothing.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the operator reference is non-nil.
// Returns ErrNilOperator. Complexity: O(1).
func validateNotNil(a Operator) error {
	if a == nil {
		return ErrNilOperator
	}

	return nil
}

// validateShape ensures rows and cols are both positive.
// Returns ErrBadShape. Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}

	return nil
}

// validateVecLen ensures x is non-nil and has exactly length n.
// Returns ErrNilVector / ErrDimensionMismatch. Complexity: O(1).
func validateVecLen(x []float64, n int) error {
	if x == nil {
		return ErrNilVector
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateBlockRows ensures the column block x is non-nil and has exactly
// n rows (any positive column count is accepted).
// Returns ErrNilMatrix / ErrDimensionMismatch. Complexity: O(1).
func validateBlockRows(x *mat.Dense, n int) error {
	if x == nil {
		return ErrNilMatrix
	}
	if r, _ := x.Dims(); r != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSameShape ensures operators a and b have identical shapes.
// Assumes both are non-nil (composite validators enforce that first).
// Returns ErrDimensionMismatch. Complexity: O(1).
func validateSameShape(a, b Operator) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Composite: NotNil(a) → NotNil(b) → inner-dimension check.
// Returns ErrNilOperator / ErrDimensionMismatch. Complexity: O(1).
func validateMulCompatible(a, b Operator) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// validateBinarySameShape — Composite: NotNil(a) → NotNil(b) → SameShape.
// Returns ErrNilOperator / ErrDimensionMismatch. Complexity: O(1).
func validateBinarySameShape(a, b Operator) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return validateSameShape(a, b)
}
