// SPDX-License-Identifier: MIT

// Package linop: function-backed operator and the column-wise synthesis
// fallback. New builds an Operator from a shape and a forward apply callback;
// every other capability is optional and supplied through functional options.
package linop

import "gonum.org/v1/gonum/mat"

// funcOperator is an operator defined by user callbacks. Absent optional
// capabilities are explicit nil fields (never probed at runtime by attribute
// lookup): batched forms fall back to column-wise synthesis, the adjoint
// single-vector apply has no fallback.
type funcOperator struct {
	rows, cols int
	matvec     VecFunc // required forward apply
	rmatvec    VecFunc // optional adjoint apply; nil ⇒ no adjoint
	matmat     MatFunc // optional batched forward; nil ⇒ synthesize
	rmatmat    MatFunc // optional batched adjoint; nil ⇒ synthesize from rmatvec
}

// New builds a function-backed Operator of the given shape.
//
// Implementation:
//   - Stage 1: validate shape positive and matvec non-nil.
//   - Stage 2: resolve options (WithRMatVec / WithMatMat / WithRMatMat) and
//     freeze them into an immutable operator record.
//
// Behavior highlights:
//   - Capability gaps surface at call time, not here: an operator built with
//     only matvec is valid, and RMatVec on it returns ErrUnsupportedOperation.
//   - Every apply validates the input length before invoking the callback and
//     the output length after, so a misbehaving callback cannot leak a
//     wrong-shaped vector to the caller.
//
// Inputs:
//   - rows, cols: fixed operator shape, both > 0.
//   - matvec: forward apply, maps length-cols input to length-rows output.
//   - opts: optional capabilities.
//
// Returns:
//   - Operator: immutable function-backed operator.
//
// Errors:
//   - ErrBadShape (non-positive dimension), ErrNilFunc (nil matvec).
//
// Complexity:
//   - Time O(k) for k options, Space O(1).
func New(rows, cols int, matvec VecFunc, opts ...Option) (Operator, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opNew, err)
	}
	if matvec == nil {
		return nil, opErrorf(opNew, ErrNilFunc)
	}
	o := gatherOptions(opts...)

	return &funcOperator{
		rows:    rows,
		cols:    cols,
		matvec:  matvec,
		rmatvec: o.rmatvec,
		matmat:  o.matmat,
		rmatmat: o.rmatmat,
	}, nil
}

// Rows returns the output dimension. Complexity: O(1).
func (o *funcOperator) Rows() int { return o.rows }

// Cols returns the input dimension. Complexity: O(1).
func (o *funcOperator) Cols() int { return o.cols }

// HasAdjoint reports whether an adjoint apply was supplied. Complexity: O(1).
func (o *funcOperator) HasAdjoint() bool { return o.rmatvec != nil }

// MatVec validates, invokes the forward callback, and validates the result
// length against Rows() before returning it.
func (o *funcOperator) MatVec(x []float64) ([]float64, error) {
	return invokeVec(opMatVec, o.matvec, x, o.cols, o.rows)
}

// RMatVec invokes the adjoint callback when present; otherwise the capability
// is undefined and ErrUnsupportedOperation is returned.
func (o *funcOperator) RMatVec(x []float64) ([]float64, error) {
	if o.rmatvec == nil {
		return nil, opErrorf(opRMatVec, ErrUnsupportedOperation)
	}

	return invokeVec(opRMatVec, o.rmatvec, x, o.rows, o.cols)
}

// MatMat prefers the native batched callback and falls back to column-wise
// synthesis from MatVec. Time O(k · cost(matvec)) in the synthesized path.
func (o *funcOperator) MatMat(x *mat.Dense) (*mat.Dense, error) {
	if o.matmat != nil {
		return invokeMat(opMatMat, o.matmat, x, o.cols, o.rows)
	}

	return applyColumnwise(opMatMat, o.MatVec, x, o.cols, o.rows)
}

// RMatMat prefers the native batched adjoint, then column-wise synthesis from
// RMatVec; with neither defined the capability is absent.
func (o *funcOperator) RMatMat(x *mat.Dense) (*mat.Dense, error) {
	if o.rmatmat != nil {
		return invokeMat(opRMatMat, o.rmatmat, x, o.rows, o.cols)
	}
	if o.rmatvec == nil {
		return nil, opErrorf(opRMatMat, ErrUnsupportedOperation)
	}

	return applyColumnwise(opRMatMat, o.RMatVec, x, o.rows, o.cols)
}

// invokeVec runs a single-vector callback under the full apply contract:
// input length == inLen, output length == outLen, callback errors wrapped
// with the operation tag. Complexity: O(cost(fn)).
func invokeVec(tag string, fn VecFunc, x []float64, inLen, outLen int) ([]float64, error) {
	if err := validateVecLen(x, inLen); err != nil {
		return nil, opErrorf(tag, err)
	}
	y, err := fn(x)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	// A wrong-length callback result is a contract violation, same sentinel
	// as a wrong-length input.
	if err = validateVecLen(y, outLen); err != nil {
		return nil, opErrorf(tag, err)
	}

	return y, nil
}

// invokeMat runs a batched callback under the block apply contract:
// input block has inLen rows, output block has outLen rows and the same
// column count as the input.
func invokeMat(tag string, fn MatFunc, x *mat.Dense, inLen, outLen int) (*mat.Dense, error) {
	if err := validateBlockRows(x, inLen); err != nil {
		return nil, opErrorf(tag, err)
	}
	y, err := fn(x)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	if y == nil {
		return nil, opErrorf(tag, ErrNilMatrix)
	}
	yr, yc := y.Dims()
	if _, xc := x.Dims(); yr != outLen || yc != xc {
		return nil, opErrorf(tag, ErrDimensionMismatch)
	}

	return y, nil
}

// applyColumnwise is the named synthesis fallback for batched applies: the
// single-vector apply is invoked independently on each column of x in fixed
// left-to-right order and the results are concatenated column by column.
//
// Determinism:
//   - Fixed j=0..k-1 column order; stable output for a given input.
//
// Complexity:
//   - Time O(k · cost(apply)), Space O(outLen·k) for the result block plus a
//     reused length-inLen column buffer.
func applyColumnwise(tag string, apply VecFunc, x *mat.Dense, inLen, outLen int) (*mat.Dense, error) {
	if err := validateBlockRows(x, inLen); err != nil {
		return nil, opErrorf(tag, err)
	}
	_, k := x.Dims()
	out := mat.NewDense(outLen, k, nil)
	col := make([]float64, inLen) // reused input column buffer

	var j int
	for j = 0; j < k; j++ { // fixed left-to-right column order
		mat.Col(col, j, x)
		y, err := apply(col)
		if err != nil {
			// apply already wraps with its own tag; keep the cause intact.
			return nil, err
		}
		out.SetCol(j, y)
	}

	return out, nil
}
