// SPDX-License-Identifier: MIT
// Package stable: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// stabilized operations. Operations MUST return these sentinels (or
// dense.Err*/svd.Err* from the layers below) and tests MUST check them via
// errors.Is.

package stable

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "stable: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at
// the outer boundary — callers still match via errors.Is.

var (
	// ErrNilProvider indicates a nil svd.Provider was passed to an operation
	// entry point. Every stabilized operation re-decomposes at least one
	// intermediate, so a provider is never optional.
	ErrNilProvider = errors.New("stable: nil SVD provider")

	// ErrShapeMismatch indicates operand factorizations whose shapes cannot
	// be combined: inner dimensions for a product, equal outer dimensions
	// for a sum.
	ErrShapeMismatch = errors.New("stable: operand shapes are incompatible")

	// ErrRankMismatch indicates two same-shaped operands carrying a
	// different number of singular values; the scale-separated sum pairs
	// the spectra index by index and cannot proceed.
	ErrRankMismatch = errors.New("stable: operand ranks differ")

	// ErrNotSquare indicates an inverse-style operation received a
	// factorization that is not square with a full rank budget
	// (Rows == Cols == Rank); only those have the unitary-inverse structure
	// the algorithms rely on.
	ErrNotSquare = errors.New("stable: operation requires a square full-rank factorization")

	// ErrBufferSize indicates a preallocated destination factorization whose
	// shape does not match the operation's result shape exactly.
	ErrBufferSize = errors.New("stable: destination buffer has the wrong shape")

	// ErrBadVariant indicates an inverse-one-plus call with a Variant value
	// outside the declared enum.
	ErrBadVariant = errors.New("stable: unknown inverse variant")

	// ErrIllConditioned indicates an intermediate the algorithm must invert
	// is singular, or its spectral condition exceeds the configured ceiling.
	// The result would carry no trustworthy digits, so the operation refuses
	// to produce one.
	ErrIllConditioned = errors.New("stable: ill-conditioned intermediate")
)
