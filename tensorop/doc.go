// Package tensorop adapts gorgonia tensors to the linop.Operator interface.
//
// FromDense wraps a 2-D float64 *tensor.Dense as a lazy operator: forward
// applies run through tensor.MatVecMul / tensor.MatMul on a private clone of
// the tensor, and adjoint applies use a materialized transpose clone built
// once at construction. The caller's tensor is never retained or mutated, so
// the resulting operator is immutable and safe for concurrent applies like
// every other operator family.
//
// Apply-contract violations surface the linop sentinels
// (linop.ErrDimensionMismatch and friends); tensor-specific construction
// problems (wrong rank, wrong dtype) use this package's own sentinels.
package tensorop
