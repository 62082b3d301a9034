// Package svd defines the thin singular value decomposition container used
// throughout stablesvd and the pluggable Provider contract that computes it,
// together with three ready-to-use providers.
//
// The providers differ in method and coverage:
//
//   - Jacobi[T]
//
//   - Method: one-sided (Hestenes) Jacobi rotations, complex128 internally.
//
//   - Types:  float32, float64, complex64, complex128.
//
//   - Time:   O(sweeps·m·n²); singular values come out UNSORTED.
//
//   - Gonum
//
//   - Method: Golub–Kahan bidiagonalization via gonum.org/v1/gonum/mat.
//
//   - Types:  float64 only.
//
//   - Time:   O(m·n²); singular values come out sorted descending.
//
//   - Promote(inner)
//
//   - Method: widen float32 → float64, delegate to inner, narrow back.
//
//   - Types:  float32 over any float64 provider.
//
// # Data Model
//
// Factorization[T] carries a thin SVD A = U·diag(S)·Vt:
//
//	type Factorization[T dense.Scalar] struct {
//	    U  *dense.Matrix[T] // m×k, orthonormal columns
//	    S  []float64        // k nonnegative singular values, order UNSPECIFIED
//	    Vt *dense.Matrix[T] // k×n, orthonormal rows (V conjugate-transposed)
//	}
//
// Singular values stay float64 for every element type; nothing in this module
// assumes they are sorted.
//
// # API
//
// The provider contract is a single method:
//
//	type Provider[T dense.Scalar] interface {
//	    Decompose(m *dense.Matrix[T]) (*Factorization[T], error)
//	}
//
// Factorization methods cover assembly (NewFactorization, FromParts), shape
// queries (Rows, Cols, Rank, Clone), the dense collapse (Materialize,
// MaterializeInto) and determinant bookkeeping (Condition, LogAbsDet,
// DetPhase) — log|det| is exact through the factorization, which is what
// determinant-weighted simulation loops accumulate.
//
// # Errors
//
//	ErrNilFactorization - nil factorization, or nil U/S/Vt part.
//	ErrBadFactorization - parts disagree on k, or a singular value is negative.
//	ErrNoConvergence    - the provider's iteration exhausted its budget.
//	ErrNilProvider      - adapter constructed around a nil inner provider.
//	dense.Err*          - propagated from the dense layer (nil input, shape).
//
// # Integration
//
//   - Builds on github.com/katalvlaran/stablesvd/dense for storage and kernels.
//   - Consumed by github.com/katalvlaran/stablesvd/stable, whose operations
//     accept any Provider and never compute a decomposition themselves.
package svd
