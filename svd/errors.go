// SPDX-License-Identifier: MIT
// Package svd: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the svd
// package. Providers and factorization methods MUST return these sentinels
// (or dense.Err* from the layer below) and tests MUST check them via
// errors.Is.

package svd

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "svd: ..." for consistency and to allow easy
// grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at
// the outer boundary — callers still match via errors.Is.

var (
	// ErrNilFactorization indicates that a nil *Factorization, or one with a
	// nil U/S/Vt part, was passed where a constructed factorization is
	// required.
	ErrNilFactorization = errors.New("svd: nil factorization")

	// ErrBadFactorization indicates internally inconsistent parts: U is m×k,
	// S has length k and Vt is k×n — any disagreement on k, or a negative
	// singular value, trips this sentinel.
	ErrBadFactorization = errors.New("svd: inconsistent factorization parts")

	// ErrNoConvergence is returned by a Provider whose iteration failed to
	// reach the requested tolerance within its sweep/iteration budget. The
	// input may be pathological for that method; callers may retry with a
	// different Provider.
	ErrNoConvergence = errors.New("svd: decomposition did not converge")

	// ErrNilProvider is returned by adapter providers (Promote) constructed
	// around a nil inner provider.
	ErrNilProvider = errors.New("svd: nil inner provider")
)
