// Package solver provides matrix-free iterative methods over linop.Operator:
//
//   - CG — conjugate gradients for symmetric positive-definite systems,
//     one operator apply per iteration.
//   - PowerIteration — dominant eigenpair of a square operator.
//
// Solvers touch the operator only through MatVec, so any array-backed,
// function-backed or composite operator works unchanged, including operators
// whose matrix is never formed. Configuration uses functional options with
// documented defaults; all failures are sentinel errors matched via
// errors.Is, and iteration is fully deterministic (fixed start vectors and
// accumulation order, no randomness).
package solver
