// Package lazyop is a toolkit for lazily-evaluated linear operators —
// linear maps you can apply, compose and solve against without ever
// materializing a dense matrix.
//
// 🚀 What is lazyop?
//
//	A small, composable library that brings together:
//		• linop/    — the Operator abstraction: array-backed, function-backed
//		              and composite (sum, product, scale, transpose) operators
//		• solver/   — matrix-free iterative methods (CG, power iteration)
//		• tensorop/ — adapter from gorgonia tensors to Operator
//		• vecmath/  — shared generic vector kernels (dot, axpy, norms)
//
// ✨ Why choose lazyop?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable operators, sentinel errors, no panics
//     on user input
//   - Plays well with the ecosystem – wraps any gonum mat.Matrix (dense or
//     sparse) and gorgonia tensors through the same Operator interface
//
// Quick example: an all-ones 3×4 matrix as a lazy operator
//
//	M := mat.NewDense(3, 4, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1})
//	A, _ := linop.FromMatrix(M)
//	y, _ := A.MatVec([]float64{1, 1, 1, 1}) // y == [4, 4, 4]
//
// Composition builds a call graph, not a result: evaluation happens only
// when an apply method is invoked.
//
//	go get github.com/katalvlaran/lazyop/linop
package lazyop
