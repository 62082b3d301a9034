// Package stable implements numerically stabilized composition of SVD
// factorizations: multiplying factorized matrices, inverting I + M, and
// inverting A + B, all without ever forming the unstable dense intermediate.
//
// Determinant-weighted simulations (the motivating workload is
// determinant quantum Monte Carlo) iterate on matrices whose singular values
// span twenty decades and more. A dense product or sum of such matrices mixes
// scales in single additions and flushes the small singular values into
// rounding noise — and it is precisely those small values that carry the
// physics. The operations here restructure the arithmetic instead:
//
//   - orthonormal factors pass through untouched (they are norm-preserving);
//   - diagonal scales are split per index against the fixed threshold 1 into
//     s⁺ = max(s, 1) and s⁻ = min(s, 1), so additions only ever combine
//     quantities of scale at most 1;
//   - each operation re-decomposes one small, well-scaled core, re-isolating
//     the conditioning in a fresh diagonal.
//
// # Operations
//
//	Multiply       / MultiplyInto        — factorization of A·B
//	InverseOnePlus / InverseOnePlusInto  — factorization of (I + M)^{-1}
//	InverseSum     / InverseSumInto      — factorization of (A + B)^{-1}
//	Product                              — left-fold chain of Multiply
//
// InverseOnePlus selects between two formulations: VariantPlain (one
// re-decomposition, fine while the spectrum stays near 1) and VariantLoh
// (fully scale-separated, accurate to machine epsilon across extreme
// spreads). See the operation docs for the exact algorithms.
//
// Dense facades (MultiplyDense, InverseOnePlusDense, InverseSumDense and
// their ...Into forms) bundle the common "compose, then materialize exactly
// once" pattern.
//
// # Providers
//
// Every operation takes an svd.Provider as its first argument and calls it
// for the internal re-decompositions; there is no package default. The
// shipped svd.Gonum and svd.Jacobi providers cover float64 and the full
// generic element set respectively.
//
// # Options and the condition guard
//
// Intermediates that the algorithms must invert are guarded: an exactly
// singular intermediate always fails with ErrIllConditioned, and a spectral
// condition beyond the ceiling (default 1/(64·eps(T)), override with
// WithConditionCeil, disable with WithoutConditionCheck) fails the same way.
// The guard exists because a result computed past the ceiling would carry no
// trustworthy digits; callers who prefer to receive it anyway opt out
// explicitly.
//
// # Workspaces
//
// The ...Into forms take a *Workspace that absorbs every intermediate and a
// preallocated destination factorization, bringing steady-state allocation
// down to the provider's own. A Workspace is exclusively owned by one call
// for its duration and must not be shared across in-flight calls; nil is
// always a valid workspace. Destinations must not share storage with
// operands (dense.ErrAliased).
//
// # Errors
//
//	ErrNilProvider    - operation called without a provider.
//	ErrShapeMismatch  - operand shapes cannot be combined.
//	ErrRankMismatch   - same-shape operands with different rank budgets.
//	ErrNotSquare      - inverse of a non-square or rank-deficient operand.
//	ErrBufferSize     - preallocated destination has the wrong shape.
//	ErrBadVariant     - unknown InverseOnePlus variant.
//	ErrIllConditioned - intermediate is singular or beyond the ceiling.
//	svd.Err*, dense.Err* - propagated from the layers below.
//
// # Integration
//
//   - Builds on github.com/katalvlaran/stablesvd/dense (kernels) and
//     github.com/katalvlaran/stablesvd/svd (factorizations, providers).
//   - Materialize exactly once, at the end of a composition chain — that is
//     the single deliberately unstable step of the whole module.
package stable
