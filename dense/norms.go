// SPDX-License-Identifier: MIT
// Package dense: norms and elementwise comparisons.

package dense

import (
	"fmt"
	"math"
)

// FrobNorm returns the Frobenius norm of m: sqrt(Σ|m[i,j]|²).
// Accumulation happens in float64 regardless of T.
//
// Returns ErrNilMatrix.
func FrobNorm[T Scalar](m *Matrix[T]) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("FrobNorm: %w", err)
	}
	var sum float64
	for _, v := range m.data {
		a := Abs(v)
		sum += a * a
	}

	return math.Sqrt(sum), nil
}

// MaxAbs returns the largest entry modulus of m.
//
// Returns ErrNilMatrix.
func MaxAbs[T Scalar](m *Matrix[T]) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("MaxAbs: %w", err)
	}
	var best float64
	for _, v := range m.data {
		if a := Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}

// MaxAbsDiff returns max over entries of |a[i,j] - b[i,j]|, the workhorse of
// forward-error measurements in tests and examples.
//
// Returns ErrNilMatrix or ErrDimensionMismatch.
func MaxAbsDiff[T Scalar](a, b *Matrix[T]) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, fmt.Errorf("MaxAbsDiff: %w", err)
	}
	var best float64
	for i := range a.data {
		if d := Abs(a.data[i] - b.data[i]); d > best {
			best = d
		}
	}

	return best, nil
}

// AllClose checks elementwise |a-b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true, nil) when every element satisfies the relation and
// (false, nil) otherwise. NaN anywhere fails the check. Deterministic.
//
// Policy: rtol and atol are treated as |rtol|, |atol|.
func AllClose[T Scalar](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range a.data {
		diff := Abs(a.data[i] - b.data[i])
		if !(diff <= atol+rtol*Abs(b.data[i])) {
			return false, nil
		}
	}

	return true, nil
}
