// SPDX-License-Identifier: MIT
// Package: svd
//
// Purpose:
//  - Single source of truth for factorization consistency checks.
//  - Providers and methods validate through these before any arithmetic.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - ValidateFactorization is O(k) (singular-value sign scan); the rest O(1).

package svd

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
)

// ValidateFactorization ensures f is structurally sound: non-nil parts and
// mutually consistent shapes (U m×k, len(S)==k, Vt k×n) with nonnegative
// singular values. It does NOT verify orthonormality or the reconstruction
// identity — those cost a matrix product and belong to tests.
//
// Returns ErrNilFactorization or ErrBadFactorization.
func ValidateFactorization[T dense.Scalar](f *Factorization[T]) error {
	if f == nil || f.S == nil {
		return ErrNilFactorization
	}
	if err := dense.ValidateNotNil(f.U); err != nil {
		return ErrNilFactorization
	}
	if err := dense.ValidateNotNil(f.Vt); err != nil {
		return ErrNilFactorization
	}
	k := len(f.S)
	if f.U.Cols() != k || f.Vt.Rows() != k {
		return fmt.Errorf("U %dx%d, len(S) %d, Vt %dx%d: %w",
			f.U.Rows(), f.U.Cols(), k, f.Vt.Rows(), f.Vt.Cols(), ErrBadFactorization)
	}
	for i, s := range f.S {
		if s < 0 {
			return fmt.Errorf("S[%d] = %g: %w", i, s, ErrBadFactorization)
		}
	}

	return nil
}

// ValidateSquareFactorization ensures f is sound and decomposes a square
// matrix with full rank budget (Rows == Cols == Rank), the shape class the
// inverse-style operations and determinant helpers require.
//
// Returns the ValidateFactorization sentinels or dense.ErrNonSquare.
func ValidateSquareFactorization[T dense.Scalar](f *Factorization[T]) error {
	if err := ValidateFactorization(f); err != nil {
		return err
	}
	if f.Rows() != f.Cols() || f.Rank() != f.Rows() {
		return fmt.Errorf("%dx%d rank %d: %w", f.Rows(), f.Cols(), f.Rank(), dense.ErrNonSquare)
	}

	return nil
}

// ValidateDecomposeInput ensures a Provider received a constructed matrix.
// Shared by every shipped provider so they reject bad input identically.
//
// Returns dense.ErrNilMatrix.
func ValidateDecomposeInput[T dense.Scalar](m *dense.Matrix[T]) error {
	return dense.ValidateNotNil(m)
}
