// SPDX-License-Identifier: MIT
// Package svd: the Factorization container and its dense-collapse helpers.
// Provider implementations live in their own files (jacobi.go, gonum.go,
// promote.go); validation helpers in validators.go.

package svd

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/stablesvd/dense"
)

// Operation names used in wrapped error contexts.
const (
	opNewFactorization = "NewFactorization"
	opFromParts        = "FromParts"
	opMaterialize      = "Materialize"
	opMaterializeInto  = "MaterializeInto"
	opCondition        = "Condition"
	opLogAbsDet        = "LogAbsDet"
	opDetPhase         = "DetPhase"
)

// svdErrorf wraps err with the operation tag, keeping sentinels matchable.
func svdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factorization is a thin singular value decomposition A = U·diag(S)·Vt.
//
// Shapes: for an m×n decomposed matrix of rank budget k, U is m×k with
// orthonormal (unitary for complex T) columns, S holds the k nonnegative
// singular values as float64 regardless of T, and Vt is k×n with orthonormal
// rows — Vt is the conjugate transpose of the usual V.
//
// S is NOT required to be sorted. Every consumer in this module compares
// singular values against the fixed threshold 1 and never reads an ordering;
// providers are free to emit any order (the gonum backend sorts, the Jacobi
// backend emits column order).
//
// Fields are exported for provider implementations and tests; treat a
// Factorization as immutable once produced. Operations that overwrite one do
// so only through explicit ...Into entry points.
type Factorization[T dense.Scalar] struct {
	U  *dense.Matrix[T]
	S  []float64
	Vt *dense.Matrix[T]
}

// NewFactorization allocates a zeroed factorization with U m×k, S of length
// k and Vt k×n — the shape a destination must have before being passed to an
// ...Into operation.
//
// Returns dense.ErrBadShape for non-positive dimensions.
func NewFactorization[T dense.Scalar](m, k, n int) (*Factorization[T], error) {
	u, err := dense.New[T](m, k)
	if err != nil {
		return nil, svdErrorf(opNewFactorization, err)
	}
	vt, err := dense.New[T](k, n)
	if err != nil {
		return nil, svdErrorf(opNewFactorization, err)
	}

	return &Factorization[T]{U: u, S: make([]float64, k), Vt: vt}, nil
}

// FromParts assembles a factorization from existing parts after validating
// their mutual consistency. The parts are referenced, not copied — the caller
// must not mutate them afterwards.
//
// Returns ErrNilFactorization or ErrBadFactorization.
func FromParts[T dense.Scalar](u *dense.Matrix[T], s []float64, vt *dense.Matrix[T]) (*Factorization[T], error) {
	f := &Factorization[T]{U: u, S: s, Vt: vt}
	if err := ValidateFactorization(f); err != nil {
		return nil, svdErrorf(opFromParts, err)
	}

	return f, nil
}

// Rows reports the row count of the decomposed matrix.
func (f *Factorization[T]) Rows() int { return f.U.Rows() }

// Cols reports the column count of the decomposed matrix.
func (f *Factorization[T]) Cols() int { return f.Vt.Cols() }

// Rank reports the number of retained singular values (the k of the thin
// decomposition, not the numerical rank).
func (f *Factorization[T]) Rank() int { return len(f.S) }

// Clone returns a deep copy of f.
func (f *Factorization[T]) Clone() *Factorization[T] {
	s := make([]float64, len(f.S))
	copy(s, f.S)

	return &Factorization[T]{U: f.U.Clone(), S: s, Vt: f.Vt.Clone()}
}

// Materialize collapses the factorization to its dense value U·diag(S)·Vt.
// This is the one deliberately unstable step of the package: callers compose
// factorizations with the stabilized operations and materialize exactly once,
// when a dense result is actually required.
//
// Returns validation sentinels; the multiply itself cannot fail after them.
func (f *Factorization[T]) Materialize() (*dense.Matrix[T], error) {
	if err := ValidateFactorization(f); err != nil {
		return nil, svdErrorf(opMaterialize, err)
	}
	us := f.U.Clone()
	if err := dense.ScaleCols(us, f.S); err != nil {
		return nil, svdErrorf(opMaterialize, err)
	}
	out, err := dense.Mul(us, f.Vt)
	if err != nil {
		return nil, svdErrorf(opMaterialize, err)
	}

	return out, nil
}

// MaterializeInto writes U·diag(S)·Vt into dst, which must be exactly
// Rows()×Cols(). One internal m×k scratch copy of U is still allocated; what
// the caller saves is the m×n result buffer across repeated materializations.
//
// Returns dense.ErrDimensionMismatch for a wrong-shaped dst and the usual
// validation sentinels.
func (f *Factorization[T]) MaterializeInto(dst *dense.Matrix[T]) error {
	if err := ValidateFactorization(f); err != nil {
		return svdErrorf(opMaterializeInto, err)
	}
	if err := dense.ValidateNotNil(dst); err != nil {
		return svdErrorf(opMaterializeInto, err)
	}
	if dst.Rows() != f.Rows() || dst.Cols() != f.Cols() {
		return svdErrorf(opMaterializeInto, fmt.Errorf("dst %dx%d, want %dx%d: %w",
			dst.Rows(), dst.Cols(), f.Rows(), f.Cols(), dense.ErrDimensionMismatch))
	}
	us := f.U.Clone()
	if err := dense.ScaleCols(us, f.S); err != nil {
		return svdErrorf(opMaterializeInto, err)
	}
	if err := dense.MulInto(dst, us, f.Vt); err != nil {
		return svdErrorf(opMaterializeInto, err)
	}

	return nil
}

// Condition estimates the spectral condition number max(S)/min(S).
// A zero singular value yields +Inf rather than an error.
func (f *Factorization[T]) Condition() (float64, error) {
	if err := ValidateFactorization(f); err != nil {
		return 0, svdErrorf(opCondition, err)
	}
	lo, hi := f.S[0], f.S[0]
	for _, s := range f.S[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if lo == 0 {
		return math.Inf(1), nil
	}

	return hi / lo, nil
}

// LogAbsDet returns log|det A| = Σ log sᵢ for a square factorization. The
// unitary parts contribute modulus one, so the sum is exact through the
// factorization — this is the quantity determinant-weighted simulations
// accumulate instead of the overflow-prone det itself. A zero singular value
// yields -Inf.
//
// Returns dense.ErrNonSquare for rectangular factorizations.
func (f *Factorization[T]) LogAbsDet() (float64, error) {
	if err := ValidateSquareFactorization(f); err != nil {
		return 0, svdErrorf(opLogAbsDet, err)
	}
	var sum float64
	for _, s := range f.S {
		sum += math.Log(s)
	}

	return sum, nil
}

// DetPhase returns the unit-modulus phase of det A: det(U)·det(Vt) normalized
// to modulus one (±1 for real T). Together with LogAbsDet it reconstructs the
// full determinant as phase·exp(logAbsDet) without ever forming it densely.
//
// Returns dense.ErrNonSquare for rectangular factorizations and
// ErrBadFactorization when a unitary part is numerically singular.
func (f *Factorization[T]) DetPhase() (complex128, error) {
	if err := ValidateSquareFactorization(f); err != nil {
		return 0, svdErrorf(opDetPhase, err)
	}
	du, err := dense.Det(f.U)
	if err != nil {
		return 0, svdErrorf(opDetPhase, err)
	}
	dvt, err := dense.Det(f.Vt)
	if err != nil {
		return 0, svdErrorf(opDetPhase, err)
	}
	phase := dense.ToComplex(du) * dense.ToComplex(dvt)
	mod := cmplx.Abs(phase)
	if mod == 0 {
		return 0, svdErrorf(opDetPhase, ErrBadFactorization)
	}

	return phase / complex(mod, 0), nil
}
