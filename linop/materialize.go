// SPDX-License-Identifier: MIT

// Package linop: identity operator and dense materialization.
// ToDense is the standard escape hatch for debugging and testing: it
// evaluates the operator column by column against the identity, which is the
// only place in the package where a full dense matrix is ever formed.
package linop

import "gonum.org/v1/gonum/mat"

// identityOp is the n×n unit operator: every apply copies its input.
type identityOp struct {
	n int
}

// Identity returns the n×n unit operator I with I·x = x.
// Useful as a neutral element in compositions (shifts α·I + A, products).
//
// Errors:
//   - ErrBadShape (n <= 0).
//
// Complexity:
//   - Time O(1) to construct; each apply copies its input, O(n) / O(n·k).
func Identity(n int) (Operator, error) {
	if err := validateShape(n, n); err != nil {
		return nil, opErrorf(opIdentity, err)
	}

	return &identityOp{n: n}, nil
}

func (o *identityOp) Rows() int        { return o.n }
func (o *identityOp) Cols() int        { return o.n }
func (o *identityOp) HasAdjoint() bool { return true }

// MatVec returns a fresh copy of x (results never alias caller data).
func (o *identityOp) MatVec(x []float64) ([]float64, error) {
	if err := validateVecLen(x, o.n); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	out := make([]float64, o.n)
	copy(out, x)

	return out, nil
}

// RMatVec: the identity is self-adjoint.
func (o *identityOp) RMatVec(x []float64) ([]float64, error) {
	if err := validateVecLen(x, o.n); err != nil {
		return nil, opErrorf(opRMatVec, err)
	}
	out := make([]float64, o.n)
	copy(out, x)

	return out, nil
}

// MatMat returns a fresh copy of the block.
func (o *identityOp) MatMat(x *mat.Dense) (*mat.Dense, error) {
	if err := validateBlockRows(x, o.n); err != nil {
		return nil, opErrorf(opMatMat, err)
	}

	return mat.DenseCopyOf(x), nil
}

// RMatMat: self-adjoint, same as MatMat.
func (o *identityOp) RMatMat(x *mat.Dense) (*mat.Dense, error) {
	if err := validateBlockRows(x, o.n); err != nil {
		return nil, opErrorf(opRMatMat, err)
	}

	return mat.DenseCopyOf(x), nil
}

// ToDense materializes an operator into an explicit rows×cols dense matrix by
// applying it to the identity block. This defeats the purpose of laziness and
// exists for debugging, testing and small-operator interop only.
//
// Implementation:
//   - Stage 1: validate a non-nil.
//   - Stage 2: build the cols×cols identity and evaluate one batched apply.
//
// Errors:
//   - ErrNilOperator; plus whatever the operator's MatMat surfaces.
//
// Complexity:
//   - Time O(cols · cost(matvec)) in the synthesized path, Space O(rows·cols).
func ToDense(a Operator) (*mat.Dense, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opToDense, err)
	}
	n := a.Cols()
	eye := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1.0)
	}

	out, err := a.MatMat(eye)
	if err != nil {
		return nil, opErrorf(opToDense, err)
	}

	return out, nil
}
