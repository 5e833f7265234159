// SPDX-License-Identifier: MIT

// Package linop: domain types shared by adapters and composites.
// This file intentionally contains ONLY the Operator interface and the
// callback signatures consumed by constructors. Errors and options live in
// dedicated files (errors.go, options.go) per the global conventions.
package linop

import "gonum.org/v1/gonum/mat"

// VecFunc is a single-vector apply callback: it receives a read-only input
// vector and returns a freshly allocated result. Implementations must not
// retain or mutate the input. A returned error aborts the apply.
type VecFunc func(x []float64) ([]float64, error)

// MatFunc is a batched (multi-vector) apply callback operating on a column
// block: each column of the input is one vector. Same contract as VecFunc.
type MatFunc func(x *mat.Dense) (*mat.Dense, error)

// Operator represents an implicit linear map of fixed shape Rows×Cols,
// evaluated on demand. Implementations are immutable after construction:
// composition returns new operators and never mutates operands, so a built
// operator is a call graph, not a result.
//
// Concurrency: operators hold no mutable state, so concurrent applies on the
// same Operator (or its descendants) are safe if and only if the wrapped
// arrays and callbacks are themselves safe for concurrent read access. That
// requirement is documented here, not enforced.
//
// Complexity notes: Rows/Cols/HasAdjoint are O(1); apply cost is defined by
// the wrapped array or callback plus O(depth) delegation for composites.
type Operator interface {
	// Rows returns the output dimension of the forward apply.
	Rows() int

	// Cols returns the input dimension of the forward apply.
	Cols() int

	// MatVec computes y = A·x for a column vector x of length Cols().
	// Returns ErrDimensionMismatch unless len(x) == Cols() and the result
	// length equals Rows().
	MatVec(x []float64) ([]float64, error)

	// RMatVec computes y = Aᵗ·x for a column vector x of length Rows().
	// Returns ErrUnsupportedOperation when the operator carries no adjoint
	// definition and none can be synthesized.
	RMatVec(x []float64) ([]float64, error)

	// MatMat computes Y = A·X for a Cols()×k column block, producing Rows()×k.
	// When no batched form was supplied it is synthesized by column-wise
	// application of MatVec.
	MatMat(x *mat.Dense) (*mat.Dense, error)

	// RMatMat computes Y = Aᵗ·X for a Rows()×k column block. Same synthesis
	// and capability rules as RMatVec.
	RMatMat(x *mat.Dense) (*mat.Dense, error)

	// HasAdjoint reports whether the adjoint applies (RMatVec/RMatMat) are
	// defined for this operator. Composites are adjointable exactly when all
	// of their operands are.
	HasAdjoint() bool
}
