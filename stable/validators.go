// SPDX-License-Identifier: MIT
// Package: stable
//
// Purpose:
//  - Single source of truth for operand/destination checks of the stabilized
//    operations.
//  - Every entry point validates through these before any arithmetic, so a
//    failed call never leaves a half-written destination.
//
// Check order is part of the contract: structural soundness of each operand,
// then shape compatibility, then rank agreement, then the square full-rank
// requirement. Tests pin this order.
//
// AI-Hints:
//  - Call ValidateMultiplyPair/ValidateSumPair yourself before batching many
//    operations on the same operands; the per-call revalidation is cheap but
//    not free.
//  - validateDistinct catches aliased destinations by backing-array identity,
//    not by range overlap: slices re-sliced from the same allocation count as
//    shared.

package stable

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// ValidateProvider ensures a provider was actually supplied.
// Returns ErrNilProvider.
func ValidateProvider[T dense.Scalar](p svd.Provider[T]) error {
	if p == nil {
		return ErrNilProvider
	}

	return nil
}

// ValidateVariant ensures v is a declared inverse-one-plus variant.
// Returns ErrBadVariant.
func ValidateVariant(v Variant) error {
	switch v {
	case VariantPlain, VariantLoh:
		return nil
	default:
		return fmt.Errorf("%s: %w", v, ErrBadVariant)
	}
}

// ValidateMultiplyPair ensures a and b are sound factorizations whose product
// a·b is defined (a.Cols == b.Rows).
// Returns svd.ErrNilFactorization, svd.ErrBadFactorization or
// ErrShapeMismatch.
func ValidateMultiplyPair[T dense.Scalar](a, b *svd.Factorization[T]) error {
	if err := svd.ValidateFactorization(a); err != nil {
		return err
	}
	if err := svd.ValidateFactorization(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}

	return nil
}

// ValidateSumPair ensures a and b are sound factorizations the scale-separated
// sum inversion accepts: equal shape, equal rank, square with full rank
// budget. A same-shape pair with unequal ranks reports ErrRankMismatch before
// the square check so callers see the actual defect.
// Returns svd.ErrNilFactorization, svd.ErrBadFactorization, ErrShapeMismatch,
// ErrRankMismatch or ErrNotSquare.
func ValidateSumPair[T dense.Scalar](a, b *svd.Factorization[T]) error {
	if err := svd.ValidateFactorization(a); err != nil {
		return err
	}
	if err := svd.ValidateFactorization(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d + %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}
	if a.Rank() != b.Rank() {
		return fmt.Errorf("rank %d vs %d: %w", a.Rank(), b.Rank(), ErrRankMismatch)
	}

	// Shapes and ranks agree, so checking one operand covers both.
	return requireSquareFullRank(a)
}

// ValidateSquareOperand ensures f is a sound factorization of a square
// matrix with full rank budget, the input class of InverseOnePlus.
// Returns svd.ErrNilFactorization, svd.ErrBadFactorization or ErrNotSquare.
func ValidateSquareOperand[T dense.Scalar](f *svd.Factorization[T]) error {
	if err := svd.ValidateFactorization(f); err != nil {
		return err
	}

	return requireSquareFullRank(f)
}

func requireSquareFullRank[T dense.Scalar](f *svd.Factorization[T]) error {
	if f.Rows() != f.Cols() || f.Rank() != f.Rows() {
		return fmt.Errorf("%dx%d rank %d: %w", f.Rows(), f.Cols(), f.Rank(), ErrNotSquare)
	}

	return nil
}

// validateDst ensures a preallocated destination matches the result shape
// exactly (svd.NewFactorization with the same dimensions always passes).
func validateDst[T dense.Scalar](dst *svd.Factorization[T], rows, k, cols int) error {
	if err := svd.ValidateFactorization(dst); err != nil {
		return err
	}
	if dst.Rows() != rows || dst.Rank() != k || dst.Cols() != cols {
		return fmt.Errorf("dst %dx%d rank %d, want %dx%d rank %d: %w",
			dst.Rows(), dst.Cols(), dst.Rank(), rows, cols, k, ErrBufferSize)
	}

	return nil
}

// validateDistinct ensures dst shares no storage with any operand. The cores
// read operand parts after writing dst parts, so aliasing would corrupt the
// inputs mid-computation; the dense kernels only catch same-call aliasing.
func validateDistinct[T dense.Scalar](dst *svd.Factorization[T], operands ...*svd.Factorization[T]) error {
	for _, f := range operands {
		if sharesMatrix(dst.U, f.U) || sharesMatrix(dst.U, f.Vt) ||
			sharesMatrix(dst.Vt, f.U) || sharesMatrix(dst.Vt, f.Vt) ||
			sharesFloats(dst.S, f.S) {
			return fmt.Errorf("dst shares storage with an operand: %w", dense.ErrAliased)
		}
	}

	return nil
}

func sharesMatrix[T dense.Scalar](a, b *dense.Matrix[T]) bool {
	ra, rb := a.Raw(), b.Raw()

	return len(ra) > 0 && len(rb) > 0 && &ra[0] == &rb[0]
}

func sharesFloats(a, b []float64) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
