// Package vecmath provides small generic vector kernels (dot product, norms,
// axpy, scaling) shared by the operator composites and the iterative solvers.
//
// Kernels are generic over any floating element type, deterministic (fixed
// left-to-right accumulation order) and allocation-free unless they return a
// fresh slice by contract. Length agreement between arguments is the caller's
// responsibility — these are inner-loop primitives, not a validating API.
package vecmath
