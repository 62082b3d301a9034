// SPDX-License-Identifier: MIT

package svd

import "github.com/katalvlaran/stablesvd/dense"

// Provider computes thin singular value decompositions. It is the single
// extension point of the module: the stabilized operations never compute an
// SVD themselves, they call whatever Provider the caller hands them.
//
// Contract for Decompose, given a constructed m×n matrix:
//
//   - returns (U, S, Vt) with U·diag(S)·Vt ≈ m to floating-point rounding;
//   - U is m×k, Vt is k×n, len(S) == k == min(m, n);
//   - U's columns and Vt's rows are orthonormal (unitary for complex T);
//   - S entries are nonnegative reals in UNSPECIFIED order — consumers must
//     not assume sorting;
//   - nil/empty input is rejected with dense.ErrNilMatrix before any work;
//   - a numerical method that fails to converge returns ErrNoConvergence
//     (possibly wrapped); it never returns a partial factorization;
//   - the returned factorization does not retain or alias the input's
//     storage — callers are free to overwrite the input immediately, which
//     is what workspace-reusing operations in package stable do.
//
// Implementations must be safe for concurrent use by independent calls; the
// shipped providers are stateless value types.
//
// AI-Hints:
//   - Gonum is the fastest shipped float64 backend; reach for Jacobi when the
//     element type is complex, or when long chains of graded products must
//     keep their small singular values to relative accuracy.
//   - Promote(Gonum{}) serves float32 pipelines without a second backend.
type Provider[T dense.Scalar] interface {
	Decompose(m *dense.Matrix[T]) (*Factorization[T], error)
}
