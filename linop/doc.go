// Package linop provides lazily-evaluated linear operators: implicit linear
// maps exposed through forward/adjoint apply operations and a composable
// algebra (sum, product, scalar multiple, transpose) that never materializes
// a dense matrix.
//
// The package offers three operator families behind one Operator interface:
//
//   - Array-backed: FromMatrix wraps any gonum mat.Matrix — dense *mat.Dense
//     or sparse formats (e.g. james-bowman/sparse CSR) — with applies
//     delegating to the array's multiply.
//   - Function-backed: New builds an operator from a shape and a matvec
//     callback; adjoint and batched capabilities are optional functional
//     options, with batched forms synthesized column-wise when omitted.
//   - Composite: Add, Mul, Scale and Transpose return new operators whose
//     applies are defined in terms of their operands' applies.
//
// Composition builds a call graph, not a result: evaluation happens only when
// MatVec/RMatVec/MatMat/RMatMat is invoked. Operators are immutable after
// construction, so concurrent applies are safe whenever the wrapped arrays
// and callbacks tolerate concurrent reads.
//
// All failures are sentinel errors matched via errors.Is: shape violations
// surface ErrDimensionMismatch (never coerced, no broadcasting), and
// capability gaps surface ErrUnsupportedOperation at the point of the
// unsupported call.
package linop
