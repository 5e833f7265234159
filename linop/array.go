// SPDX-License-Identifier: MIT

// Package linop: array-backed operator adapter.
// FromMatrix lifts any gonum mat.Matrix — *mat.Dense, sparse formats such as
// james-bowman/sparse CSR/CSC, or any other implementation of the interface —
// into an Operator whose applies delegate to the array's multiply. The array
// is shared, never copied and never mutated.
package linop

import "gonum.org/v1/gonum/mat"

// arrayOperator wraps a 2-D array M of shape rows×cols with
// MatVec(x) = M·x, RMatVec(y) = Mᵗ·y and native batched forms.
// All four capabilities are always defined for array-backed operators.
type arrayOperator struct {
	m          mat.Matrix // shared backing array; read-only by contract
	rows, cols int        // cached M.Dims() — shape is fixed at construction
}

// FromMatrix wraps a dense or sparse 2-D array as an Operator.
//
// Implementation:
//   - Stage 1: validate m non-nil and both dimensions positive.
//   - Stage 2: cache the shape and share the array reference.
//
// Inputs:
//   - m: any gonum mat.Matrix; the caller keeps ownership and must not
//     mutate it while the operator (or any composite built from it) is live.
//
// Returns:
//   - Operator: array-backed operator with full forward/adjoint capability.
//
// Errors:
//   - ErrNilMatrix (nil array), ErrBadShape (non-positive dimension).
//
// Complexity:
//   - Time O(1), Space O(1) — no copy of the array is made.
func FromMatrix(m mat.Matrix) (Operator, error) {
	if m == nil {
		return nil, opErrorf(opFromMatrix, ErrNilMatrix)
	}
	rows, cols := m.Dims()
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opFromMatrix, err)
	}

	return &arrayOperator{m: m, rows: rows, cols: cols}, nil
}

// Rows returns the output dimension. Complexity: O(1).
func (o *arrayOperator) Rows() int { return o.rows }

// Cols returns the input dimension. Complexity: O(1).
func (o *arrayOperator) Cols() int { return o.cols }

// HasAdjoint always reports true: Mᵗ is available for any array.
// Complexity: O(1).
func (o *arrayOperator) HasAdjoint() bool { return true }

// MatVec computes y = M·x via gonum's vector multiply.
// Time O(rows*cols) for dense backings; sparse backings pay their own cost.
func (o *arrayOperator) MatVec(x []float64) ([]float64, error) {
	if err := validateVecLen(x, o.cols); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	return mulVec(o.m, x, o.rows, o.cols), nil
}

// RMatVec computes y = Mᵗ·x using the transpose view — no materialization.
// Time O(rows*cols) for dense backings.
func (o *arrayOperator) RMatVec(x []float64) ([]float64, error) {
	if err := validateVecLen(x, o.rows); err != nil {
		return nil, opErrorf(opRMatVec, err)
	}

	return mulVec(o.m.T(), x, o.cols, o.rows), nil
}

// MatMat computes Y = M·X natively via gonum's matrix multiply.
// Time O(rows*cols*k) for a cols×k block.
func (o *arrayOperator) MatMat(x *mat.Dense) (*mat.Dense, error) {
	if err := validateBlockRows(x, o.cols); err != nil {
		return nil, opErrorf(opMatMat, err)
	}
	var out mat.Dense
	out.Mul(o.m, x)

	return &out, nil
}

// RMatMat computes Y = Mᵗ·X natively via the transpose view.
// Time O(rows*cols*k) for a rows×k block.
func (o *arrayOperator) RMatMat(x *mat.Dense) (*mat.Dense, error) {
	if err := validateBlockRows(x, o.rows); err != nil {
		return nil, opErrorf(opRMatMat, err)
	}
	var out mat.Dense
	out.Mul(o.m.T(), x)

	return &out, nil
}

// mulVec multiplies m (outLen×inLen) by x and copies the product into a fresh
// slice, so the result never aliases gonum internals.
// Shape is validated by the caller. Complexity: O(outLen*inLen) dense.
func mulVec(m mat.Matrix, x []float64, outLen, inLen int) []float64 {
	var y mat.VecDense
	y.MulVec(m, mat.NewVecDense(inLen, x))

	out := make([]float64, outLen)
	for i := range out {
		out[i] = y.AtVec(i)
	}

	return out
}
