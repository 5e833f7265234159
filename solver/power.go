// SPDX-License-Identifier: MIT

// Package solver: power iteration for the dominant eigenpair.
package solver

import (
	"math"

	"github.com/katalvlaran/lazyop/linop"
	"github.com/katalvlaran/lazyop/vecmath"
)

// PowerIteration estimates the dominant eigenvalue (largest magnitude) and an
// associated unit eigenvector of a square operator.
//
// Implementation:
//   - Stage 1: validate A non-nil and square; resolve options; start from the
//     supplied guess or the deterministic all-ones vector, normalized.
//   - Stage 2: repeat w = A·v, λ = ⟨v, w⟩, v = w/‖w‖ until the eigenvalue
//     estimate stabilizes within tolerance.
//
// Behavior highlights:
//   - Deterministic: the default start vector is fixed (no randomness), so
//     repeated runs agree bit for bit.
//   - Convergence criterion: |λ_k − λ_{k−1}| ≤ tol·max(1, |λ_k|).
//   - Requires a dominant eigenvalue separated from the rest of the spectrum;
//     a start vector orthogonal to the dominant eigenvector stalls and
//     surfaces ErrNotConverged.
//
// Inputs:
//   - a: square operator (n×n).
//   - opts: WithTolerance, WithMaxIterations, WithInitialGuess.
//
// Returns:
//   - float64: the dominant eigenvalue estimate λ.
//   - []float64: the corresponding unit-norm eigenvector.
//
// Errors:
//   - ErrNilOperator, ErrNonSquare, ErrDimensionMismatch (bad guess length),
//     ErrZeroVector (vanishing iterate), ErrNotConverged.
//
// Complexity:
//   - Time O(maxIter · cost(MatVec) + maxIter·n), Space O(n).
func PowerIteration(a linop.Operator, opts ...Option) (float64, []float64, error) {
	if err := validateSquareOperator(a); err != nil {
		return 0, nil, solverErrorf(opPower, err)
	}
	n := a.Rows()
	o := gatherOptions(opts...)

	// Starting vector: caller guess or deterministic ones, then normalize.
	v := make([]float64, n)
	if o.x0 != nil {
		if err := validateVecLen(o.x0, n); err != nil {
			return 0, nil, solverErrorf(opPower, err)
		}
		copy(v, o.x0)
	} else {
		for i := range v {
			v[i] = 1.0
		}
	}
	norm := vecmath.Norm2(v)
	if norm == 0 {
		return 0, nil, solverErrorf(opPower, ErrZeroVector)
	}
	vecmath.ScaleInPlace(1/norm, v)

	var (
		iter          int
		lambda, prev  float64
		firstEstimate = true
		w             []float64
		err           error
	)
	for iter = 0; iter < o.maxIter; iter++ {
		w, err = a.MatVec(v)
		if err != nil {
			return 0, nil, solverErrorf(opPower, err)
		}
		lambda = vecmath.Dot(v, w) // Rayleigh quotient (v is unit norm)

		norm = vecmath.Norm2(w)
		if norm == 0 {
			// v landed in the null space; no dominant direction to follow.
			return 0, nil, solverErrorf(opPower, ErrZeroVector)
		}
		vecmath.ScaleInPlace(1/norm, w)
		v = w

		if !firstEstimate && math.Abs(lambda-prev) <= o.tol*maxOne(math.Abs(lambda)) {
			return lambda, v, nil
		}
		prev = lambda
		firstEstimate = false
	}

	return 0, nil, solverErrorf(opPower, ErrNotConverged)
}
