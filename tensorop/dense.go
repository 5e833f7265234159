// SPDX-License-Identifier: MIT

// Package tensorop: gorgonia *tensor.Dense adapter.
package tensorop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/katalvlaran/lazyop/linop"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opFromDense = "FromDense"
	opMatVec    = "MatVec"
	opRMatVec   = "RMatVec"
	opMatMat    = "MatMat"
	opRMatMat   = "RMatMat"
)

// tensoropErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching sentinels.
func tensoropErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOperator holds two private tensor clones: the forward matrix and its
// materialized transpose. Both are read-only after construction.
type denseOperator struct {
	fwd        *tensor.Dense // rows×cols clone of the wrapped tensor
	adj        *tensor.Dense // cols×rows materialized transpose clone
	rows, cols int
}

// FromDense wraps a 2-D float64 tensor as a linop.Operator.
//
// Implementation:
//   - Stage 1: validate non-nil, rank 2, dtype float64.
//   - Stage 2: clone the tensor for the forward path, clone again and
//     materialize the transpose for the adjoint path. Two clones cost
//     O(rows·cols) each but make the operator independent of later caller
//     mutations of t.
//
// Errors:
//   - ErrNilTensor, ErrNotMatrix, ErrUnsupportedDtype.
//
// Complexity:
//   - Time O(rows·cols) construction; applies delegate to gorgonia kernels.
func FromDense(t *tensor.Dense) (linop.Operator, error) {
	if t == nil {
		return nil, tensoropErrorf(opFromDense, ErrNilTensor)
	}
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, tensoropErrorf(opFromDense, ErrNotMatrix)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, tensoropErrorf(opFromDense, ErrUnsupportedDtype)
	}
	rows, cols := shape[0], shape[1]

	fwd, ok := t.Clone().(*tensor.Dense)
	if !ok {
		return nil, tensoropErrorf(opFromDense, ErrNotMatrix)
	}
	adj, ok := t.Clone().(*tensor.Dense)
	if !ok {
		return nil, tensoropErrorf(opFromDense, ErrNotMatrix)
	}
	// T marks the transpose view; Transpose moves the data so the adjoint
	// path multiplies against a plain row-major matrix.
	if err := adj.T(); err != nil {
		return nil, tensoropErrorf(opFromDense, err)
	}
	if err := adj.Transpose(); err != nil {
		return nil, tensoropErrorf(opFromDense, err)
	}

	return &denseOperator{fwd: fwd, adj: adj, rows: rows, cols: cols}, nil
}

// Rows returns the output dimension. Complexity: O(1).
func (o *denseOperator) Rows() int { return o.rows }

// Cols returns the input dimension. Complexity: O(1).
func (o *denseOperator) Cols() int { return o.cols }

// HasAdjoint always reports true: the transpose clone is built up front.
func (o *denseOperator) HasAdjoint() bool { return true }

// MatVec computes y = T·x through gorgonia's matrix-vector kernel.
func (o *denseOperator) MatVec(x []float64) ([]float64, error) {
	return tensorMatVec(opMatVec, o.fwd, x, o.cols, o.rows)
}

// RMatVec computes y = Tᵗ·x against the materialized transpose.
func (o *denseOperator) RMatVec(x []float64) ([]float64, error) {
	return tensorMatVec(opRMatVec, o.adj, x, o.rows, o.cols)
}

// MatMat computes Y = T·X through gorgonia's matrix-matrix kernel.
func (o *denseOperator) MatMat(x *mat.Dense) (*mat.Dense, error) {
	return tensorMatMat(opMatMat, o.fwd, x, o.cols, o.rows)
}

// RMatMat computes Y = Tᵗ·X against the materialized transpose.
func (o *denseOperator) RMatMat(x *mat.Dense) (*mat.Dense, error) {
	return tensorMatMat(opRMatMat, o.adj, x, o.rows, o.cols)
}

// tensorMatVec runs one matrix-vector product m·x for an inLen input and an
// outLen output. The input is copied into a fresh tensor backing so the
// caller's slice is never captured. Complexity: O(inLen·outLen).
func tensorMatVec(tag string, m *tensor.Dense, x []float64, inLen, outLen int) ([]float64, error) {
	if x == nil {
		return nil, tensoropErrorf(tag, linop.ErrNilVector)
	}
	if len(x) != inLen {
		return nil, tensoropErrorf(tag, linop.ErrDimensionMismatch)
	}
	backing := make([]float64, inLen)
	copy(backing, x)
	xt := tensor.New(tensor.WithShape(inLen), tensor.WithBacking(backing))

	res, err := tensor.MatVecMul(m, xt)
	if err != nil {
		return nil, tensoropErrorf(tag, err)
	}

	out, err := float64sOf(res, outLen)
	if err != nil {
		return nil, tensoropErrorf(tag, err)
	}

	return out, nil
}

// tensorMatMat runs one matrix-matrix product m·X for an inLen×k block,
// converting between gonum and gorgonia row-major layouts at the boundary.
// Complexity: O(inLen·outLen·k) plus O(inLen·k) conversion.
func tensorMatMat(tag string, m *tensor.Dense, x *mat.Dense, inLen, outLen int) (*mat.Dense, error) {
	if x == nil {
		return nil, tensoropErrorf(tag, linop.ErrNilMatrix)
	}
	r, k := x.Dims()
	if r != inLen {
		return nil, tensoropErrorf(tag, linop.ErrDimensionMismatch)
	}

	// gonum and gorgonia both store row-major; copy element-wise to stay
	// independent of gonum's internal stride.
	backing := make([]float64, r*k)
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			backing[i*k+j] = x.At(i, j)
		}
	}
	xt := tensor.New(tensor.WithShape(r, k), tensor.WithBacking(backing))

	res, err := tensor.MatMul(m, xt)
	if err != nil {
		return nil, tensoropErrorf(tag, err)
	}
	data, err := float64sOf(res, outLen*k)
	if err != nil {
		return nil, tensoropErrorf(tag, err)
	}

	return mat.NewDense(outLen, k, data), nil
}

// float64sOf extracts the float64 backing of a result tensor, normalizing the
// scalar edge case (1-element results may surface as a bare float64).
func float64sOf(t tensor.Tensor, n int) ([]float64, error) {
	switch d := t.Data().(type) {
	case []float64:
		if len(d) != n {
			return nil, linop.ErrDimensionMismatch
		}

		return d, nil
	case float64:
		if n != 1 {
			return nil, linop.ErrDimensionMismatch
		}

		return []float64{d}, nil
	default:
		return nil, ErrUnsupportedDtype
	}
}
