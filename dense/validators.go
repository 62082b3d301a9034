// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return sentinels bare or with minimal positional context; call sites add
//    the operation tag when wrapping.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//  - Every validator is O(1) except ValidateDivisors, which is O(len).

package dense

import "fmt"

// ValidateNotNil ensures m is a constructed matrix.
// Returns ErrNilMatrix otherwise.
func ValidateNotNil[T Scalar](m *Matrix[T]) error {
	if m == nil || m.data == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and share rows×cols.
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateSameShape[T Scalar](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateMulCompatible[T Scalar](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return fmt.Errorf("inner %d vs %d: %w", a.cols, b.rows, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
// Returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare[T Scalar](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n, for diagonal-scale vectors.
// Returns ErrBadLength otherwise. Assumes the matrix was checked separately.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("len %d, want %d: %w", len(x), n, ErrBadLength)
	}

	return nil
}

// ValidateDivisors ensures every entry of x is nonzero, guarding the Div*
// kernels against silent Inf/NaN propagation.
// Returns ErrZeroDivisor on the first zero entry.
func ValidateDivisors(x []float64) error {
	for i, v := range x {
		if v == 0 {
			return fmt.Errorf("entry %d: %w", i, ErrZeroDivisor)
		}
	}

	return nil
}
