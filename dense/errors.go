// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered conditions; panics are
// reserved for programmer errors in private helpers (if any).

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocating.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a constructed
	// matrix is required.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Inverse, Det, Identity-shaped destinations).
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrBadLength indicates a vector argument whose length does not match the
	// matrix dimension it scales or divides (ScaleRows/ScaleCols/Div*).
	ErrBadLength = errors.New("dense: vector length mismatch")

	// ErrZeroDivisor is returned by the Div* kernels when a divisor entry is
	// exactly zero; callers decide whether that means singularity upstream.
	ErrZeroDivisor = errors.New("dense: zero divisor entry")

	// ErrSingular is returned when inversion or determinant computation meets
	// a zero pivot column under partial pivoting — the matrix is numerically
	// singular to working precision.
	ErrSingular = errors.New("dense: matrix is singular")

	// ErrAliased is returned by Into-kernels whose algorithm cannot tolerate a
	// destination sharing storage with an operand (MulInto, ConjTransposeInto).
	// Elementwise Into-kernels (AddInto, CopyInto) document their own, laxer
	// aliasing rules instead.
	ErrAliased = errors.New("dense: destination aliases an operand")
)
