// SPDX-License-Identifier: MIT

// Package solver: conjugate gradients. The method is matrix-free by
// construction — the operator is touched exclusively through MatVec, which is
// exactly the access pattern lazy operators are built for.
package solver

import (
	"github.com/katalvlaran/lazyop/linop"
	"github.com/katalvlaran/lazyop/vecmath"
)

// CG solves A·x = b for a symmetric positive-definite operator A using the
// conjugate gradient method.
//
// Implementation:
//   - Stage 1: validate A non-nil and square, b matching the shape; resolve
//     options and the initial guess (zero vector when omitted).
//   - Stage 2: standard CG recurrence with a fixed update order — one MatVec
//     per iteration, residual tracked via the r·r recurrence.
//
// Behavior highlights:
//   - Deterministic: fixed accumulation order, no randomness, identical
//     inputs produce identical iterates.
//   - Convergence criterion: ‖r‖ ≤ tol·max(1, ‖b‖).
//   - Symmetry/definiteness of A is a caller contract; an indefinite operator
//     manifests as breakdown (ErrNotConverged), never as a panic.
//
// Inputs:
//   - a: square SPD operator (n×n).
//   - b: right-hand side of length n.
//   - opts: WithTolerance, WithMaxIterations, WithInitialGuess.
//
// Returns:
//   - []float64: the approximate solution x.
//
// Errors:
//   - ErrNilOperator, ErrNonSquare, ErrDimensionMismatch, ErrNotConverged;
//     apply-time errors from the operator propagate wrapped.
//
// Complexity:
//   - Time O(maxIter · cost(MatVec) + maxIter·n), Space O(n) in four work
//     vectors.
func CG(a linop.Operator, b []float64, opts ...Option) ([]float64, error) {
	if err := validateSquareOperator(a); err != nil {
		return nil, solverErrorf(opCG, err)
	}
	n := a.Rows()
	if err := validateVecLen(b, n); err != nil {
		return nil, solverErrorf(opCG, err)
	}
	o := gatherOptions(opts...)

	// Resolve the starting point and its residual r = b - A·x.
	x := make([]float64, n)
	r := vecmath.Clone(b)
	if o.x0 != nil {
		if err := validateVecLen(o.x0, n); err != nil {
			return nil, solverErrorf(opCG, err)
		}
		copy(x, o.x0)
		ax, err := a.MatVec(x)
		if err != nil {
			return nil, solverErrorf(opCG, err)
		}
		vecmath.Axpy(-1.0, ax, r) // r = b - A·x0
	}

	// Stop immediately when the start point already satisfies the criterion.
	bound := o.tol * maxOne(vecmath.Norm2(b))
	rs := vecmath.Dot(r, r)
	if vecmath.Norm2(r) <= bound {
		return x, nil
	}

	p := vecmath.Clone(r) // first search direction is the residual
	var (
		iter         int
		alpha, beta  float64
		rsNew, pdotq float64
	)
	for iter = 0; iter < o.maxIter; iter++ {
		q, err := a.MatVec(p) // the single operator touch per iteration
		if err != nil {
			return nil, solverErrorf(opCG, err)
		}
		pdotq = vecmath.Dot(p, q)
		if pdotq <= 0 {
			// Direction with non-positive curvature: A is not SPD (or the
			// recurrence degenerated numerically). Deterministic breakdown.
			return nil, solverErrorf(opCG, ErrNotConverged)
		}
		alpha = rs / pdotq
		vecmath.Axpy(alpha, p, x)  // x += α·p
		vecmath.Axpy(-alpha, q, r) // r -= α·q

		rsNew = vecmath.Dot(r, r)
		if vecmath.Norm2(r) <= bound {
			return x, nil
		}
		beta = rsNew / rs
		rs = rsNew
		// p = r + β·p, updated in place with a fixed order.
		vecmath.ScaleInPlace(beta, p)
		vecmath.Axpy(1.0, r, p)
	}

	return nil, solverErrorf(opCG, ErrNotConverged)
}

// maxOne returns max(1, v) — the relative-residual scaling guard.
func maxOne(v float64) float64 {
	if v > 1 {
		return v
	}

	return 1
}
