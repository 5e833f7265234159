// SPDX-License-Identifier: MIT

// Package linop: composite operators — sum, product, scalar multiple and
// transpose. Each composition returns a new Operator that owns references to
// its operands and delegates to their applies at evaluation time; operands
// are shared, never copied and never mutated. Building a composite is O(1):
// no numeric work happens until an apply is called.
package linop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lazyop/vecmath"
)

// ---------------------------------------------------------------- Sum ------

// sumOp is the lazy sum (A + B) of two same-shaped operators.
type sumOp struct {
	a, b Operator
}

// Add composes the lazy sum A + B.
//
// Implementation:
//   - Stage 1: validate operands non-nil with identical shapes.
//   - Stage 2: wrap both references; evaluation is deferred to apply time.
//
// Returns a new Operator with (A+B)·x = A·x + B·x; the adjoint distributes
// the same way and is defined iff both operands are adjointable.
//
// Errors:
//   - ErrNilOperator, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1) to compose; each apply costs cost(A) + cost(B) + O(rows).
func Add(a, b Operator) (Operator, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	return &sumOp{a: a, b: b}, nil
}

func (o *sumOp) Rows() int        { return o.a.Rows() }
func (o *sumOp) Cols() int        { return o.a.Cols() }
func (o *sumOp) HasAdjoint() bool { return o.a.HasAdjoint() && o.b.HasAdjoint() }

// MatVec evaluates A·x and B·x, then accumulates in place into the first
// result. Both operand applies validate their own contracts.
func (o *sumOp) MatVec(x []float64) ([]float64, error) {
	ya, err := o.a.MatVec(x)
	if err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	yb, err := o.b.MatVec(x)
	if err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	vecmath.Axpy(1.0, yb, ya) // ya += yb

	return ya, nil
}

// RMatVec distributes the adjoint over the sum: (A+B)ᵗ·x = Aᵗ·x + Bᵗ·x.
func (o *sumOp) RMatVec(x []float64) ([]float64, error) {
	ya, err := o.a.RMatVec(x)
	if err != nil {
		return nil, opErrorf(opRMatVec, err)
	}
	yb, err := o.b.RMatVec(x)
	if err != nil {
		return nil, opErrorf(opRMatVec, err)
	}
	vecmath.Axpy(1.0, yb, ya)

	return ya, nil
}

// MatMat evaluates both batched applies and adds the blocks.
func (o *sumOp) MatMat(x *mat.Dense) (*mat.Dense, error) {
	ya, err := o.a.MatMat(x)
	if err != nil {
		return nil, opErrorf(opMatMat, err)
	}
	yb, err := o.b.MatMat(x)
	if err != nil {
		return nil, opErrorf(opMatMat, err)
	}
	var out mat.Dense
	out.Add(ya, yb)

	return &out, nil
}

// RMatMat is the batched adjoint of the sum.
func (o *sumOp) RMatMat(x *mat.Dense) (*mat.Dense, error) {
	ya, err := o.a.RMatMat(x)
	if err != nil {
		return nil, opErrorf(opRMatMat, err)
	}
	yb, err := o.b.RMatMat(x)
	if err != nil {
		return nil, opErrorf(opRMatMat, err)
	}
	var out mat.Dense
	out.Add(ya, yb)

	return &out, nil
}

// ------------------------------------------------------------ Product ------

// productOp is the lazy product (A @ B): forward apply runs B first.
type productOp struct {
	a, b Operator // shapes (m×n) and (n×p); product shape (m×p)
}

// Mul composes the lazy operator product A @ B.
//
// Implementation:
//   - Stage 1: validate operands non-nil and a.Cols() == b.Rows().
//   - Stage 2: wrap both references; result shape is (a.Rows(), b.Cols()).
//
// Forward apply is (A@B)·x = A·(B·x) — the right operand applies first.
// Adjoint apply reverses the order: (A@B)ᵗ·x = Bᵗ·(Aᵗ·x).
//
// Errors:
//   - ErrNilOperator, ErrDimensionMismatch (inner dimensions differ).
//
// Complexity:
//   - Time O(1) to compose; each apply costs cost(B) + cost(A).
func Mul(a, b Operator) (Operator, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	return &productOp{a: a, b: b}, nil
}

func (o *productOp) Rows() int        { return o.a.Rows() }
func (o *productOp) Cols() int        { return o.b.Cols() }
func (o *productOp) HasAdjoint() bool { return o.a.HasAdjoint() && o.b.HasAdjoint() }

// MatVec applies the right operand first: y = A·(B·x).
func (o *productOp) MatVec(x []float64) ([]float64, error) {
	t, err := o.b.MatVec(x)
	if err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	y, err := o.a.MatVec(t)
	if err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	return y, nil
}

// RMatVec applies adjoints in reversed order: y = Bᵗ·(Aᵗ·x).
func (o *productOp) RMatVec(x []float64) ([]float64, error) {
	t, err := o.a.RMatVec(x)
	if err != nil {
		return nil, opErrorf(opRMatVec, err)
	}
	y, err := o.b.RMatVec(t)
	if err != nil {
		return nil, opErrorf(opRMatVec, err)
	}

	return y, nil
}

// MatMat chains the batched applies right-to-left.
func (o *productOp) MatMat(x *mat.Dense) (*mat.Dense, error) {
	t, err := o.b.MatMat(x)
	if err != nil {
		return nil, opErrorf(opMatMat, err)
	}
	y, err := o.a.MatMat(t)
	if err != nil {
		return nil, opErrorf(opMatMat, err)
	}

	return y, nil
}

// RMatMat chains the batched adjoints left-to-right.
func (o *productOp) RMatMat(x *mat.Dense) (*mat.Dense, error) {
	t, err := o.a.RMatMat(x)
	if err != nil {
		return nil, opErrorf(opRMatMat, err)
	}
	y, err := o.b.RMatMat(t)
	if err != nil {
		return nil, opErrorf(opRMatMat, err)
	}

	return y, nil
}

// -------------------------------------------------------------- Scale ------

// scaledOp is the lazy scalar multiple (α·A); shape is unchanged.
type scaledOp struct {
	a     Operator
	alpha float64
}

// Scale composes the lazy scalar multiple α·A.
//
// The scalar is applied to the operand's result at evaluation time:
// (α·A)·x = α·(A·x). NaN/±Inf scalars are accepted and propagate, matching
// ordinary floating-point semantics.
//
// Errors:
//   - ErrNilOperator.
//
// Complexity:
//   - Time O(1) to compose; each apply costs cost(A) + O(rows).
func Scale(alpha float64, a Operator) (Operator, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opScale, err)
	}

	return &scaledOp{a: a, alpha: alpha}, nil
}

func (o *scaledOp) Rows() int        { return o.a.Rows() }
func (o *scaledOp) Cols() int        { return o.a.Cols() }
func (o *scaledOp) HasAdjoint() bool { return o.a.HasAdjoint() }

// MatVec scales the operand's result in place (the slice is fresh by the
// Operator contract, so no caller data is touched).
func (o *scaledOp) MatVec(x []float64) ([]float64, error) {
	y, err := o.a.MatVec(x)
	if err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	vecmath.ScaleInPlace(o.alpha, y)

	return y, nil
}

// RMatVec: the adjoint of α·A is α·Aᵗ (real scalars — no conjugation).
func (o *scaledOp) RMatVec(x []float64) ([]float64, error) {
	y, err := o.a.RMatVec(x)
	if err != nil {
		return nil, opErrorf(opRMatVec, err)
	}
	vecmath.ScaleInPlace(o.alpha, y)

	return y, nil
}

// MatMat scales the operand's block result.
func (o *scaledOp) MatMat(x *mat.Dense) (*mat.Dense, error) {
	y, err := o.a.MatMat(x)
	if err != nil {
		return nil, opErrorf(opMatMat, err)
	}
	var out mat.Dense
	out.Scale(o.alpha, y)

	return &out, nil
}

// RMatMat scales the operand's batched adjoint result.
func (o *scaledOp) RMatMat(x *mat.Dense) (*mat.Dense, error) {
	y, err := o.a.RMatMat(x)
	if err != nil {
		return nil, opErrorf(opRMatMat, err)
	}
	var out mat.Dense
	out.Scale(o.alpha, y)

	return &out, nil
}

// ---------------------------------------------------------- Transpose ------

// transposeOp swaps the roles of the forward and adjoint applies of its
// operand; shape becomes (Cols, Rows).
type transposeOp struct {
	a Operator
}

// Transpose composes the lazy transpose Aᵗ.
//
// Implementation:
//   - Stage 1: validate a non-nil and adjointable; an operator without an
//     adjoint apply (and no way to synthesize one) cannot be transposed.
//   - Stage 2: transposing a transpose unwraps to the original operand —
//     Transpose(Transpose(A)) behaves identically to A by construction.
//
// Errors:
//   - ErrNilOperator, ErrUnsupportedOperation (operand not adjointable).
//
// Complexity:
//   - Time O(1); applies delegate directly with no extra numeric work.
func Transpose(a Operator) (Operator, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	if !a.HasAdjoint() {
		return nil, opErrorf(opTranspose, ErrUnsupportedOperation)
	}
	// Double transpose: unwrap instead of stacking delegation layers.
	if t, ok := a.(*transposeOp); ok {
		return t.a, nil
	}

	return &transposeOp{a: a}, nil
}

func (o *transposeOp) Rows() int        { return o.a.Cols() }
func (o *transposeOp) Cols() int        { return o.a.Rows() }
func (o *transposeOp) HasAdjoint() bool { return true }

// MatVec of the transpose is the operand's adjoint apply.
func (o *transposeOp) MatVec(x []float64) ([]float64, error) { return o.a.RMatVec(x) }

// RMatVec of the transpose is the operand's forward apply.
func (o *transposeOp) RMatVec(x []float64) ([]float64, error) { return o.a.MatVec(x) }

// MatMat of the transpose is the operand's batched adjoint apply.
func (o *transposeOp) MatMat(x *mat.Dense) (*mat.Dense, error) { return o.a.RMatMat(x) }

// RMatMat of the transpose is the operand's batched forward apply.
func (o *transposeOp) RMatMat(x *mat.Dense) (*mat.Dense, error) { return o.a.MatMat(x) }
