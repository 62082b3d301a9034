// Package stablesvd is your toolbox for combining badly conditioned
// matrices — products, inverses and sums that would shred double precision
// if computed densely — by working on SVD factorizations instead.
//
// 🚀 What is stablesvd?
//
//	A focused, numerically careful library for simulations (determinant
//	quantum Monte Carlo and friends) that must chain matrices whose
//	singular values span ten or more orders of magnitude:
//		• Factorizations: the (U, diag(S), Vt) triple as a first-class value
//		• Providers: pluggable SVD backends (gonum classical, generic Jacobi)
//		• Stabilized products: A·B without squaring the condition number
//		• Stabilized inverses: (I+M)⁻¹ and (A+B)⁻¹ via scale separation
//		• Materialize: collapse back to a dense matrix exactly once, at the end
//
// ✨ Why choose stablesvd?
//
//   - Accuracy first – scale separation keeps every intermediate O(1)-scaled
//   - Explicit everything – providers, workspaces and variants are parameters,
//     never globals
//   - Generic – one implementation for float32/float64/complex64/complex128
//   - Honest failure – sentinel errors for bad shapes, non-convergence and
//     ill-conditioned intermediates; nothing is silently swallowed
//
// Under the hood, everything is organized under three subpackages:
//
//	dense/  — generic dense matrices and the small kernel set the core needs
//	svd/    — the Factorization type, Materialize, and SVD providers
//	stable/ — the stabilized composition operators and their workspaces
//
// Quick sketch of a simulation step:
//
//	B₁ ── multiply ── B₂ ── multiply ── … ── Bₗ
//	                     │
//	              inverseOnePlus (Loh)
//	                     │
//	              materialize → G = (I + B₁⋯Bₗ)⁻¹
//
// Dive into the package docs of stable/ for the algorithmic details and into
// examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/stablesvd
package stablesvd
