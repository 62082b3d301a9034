// Package dense offers generic dense matrices and the compact kernel set the
// stabilized-SVD layers are built on.
//
// The dense package provides:
//
//   - Matrix[T], a row-major dense matrix over float32, float64, complex64 or
//     complex128, with bounds-checked At/Set and flat Raw access for kernels.
//   - Value-returning kernels (Mul, Add, ConjTranspose, Inverse, Det) that
//     never mutate operands, plus Into/in-place siblings for workspace reuse.
//   - Diagonal kernels (ScaleRows, ScaleCols, DivRows, DivCols, DivOuter,
//     AddDiag) used by the scale-separation algorithms in package stable.
//   - Norms and comparisons (FrobNorm, MaxAbs, MaxAbsDiff, AllClose) for
//     tolerance-based verification.
//
// Inversion goes through LU with partial pivoting and is intended for small,
// well-conditioned intermediates; anything ill-conditioned should stay in
// factored form (see package stable).
//
// See the examples in this package and package svd for usage patterns.
package dense
