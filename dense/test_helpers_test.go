// SPDX-License-Identifier: MIT
// Package dense_test: shared helpers for the dense kernel tests.
//
// Conventions:
//   - must* helpers fail the test immediately on error (fail-fast fixtures).
//   - randFill uses an explicit seeded source; tests stay reproducible.
//   - closeEnough wraps AllClose and fails with a diff-sized message.
package dense_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stablesvd/dense"
)

// fixedSeed keeps every randomized fixture reproducible across runs.
const fixedSeed = 0x5eed

// mustNew builds a zeroed matrix or fails the test.
func mustNew[T dense.Scalar](t *testing.T, r, c int) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.New[T](r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}
	return m
}

// mustFromSlice builds a matrix from row-major values or fails the test.
func mustFromSlice[T dense.Scalar](t *testing.T, r, c int, vals []T) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.FromSlice(r, c, vals)
	if err != nil {
		t.Fatalf("FromSlice(%d,%d): %v", r, c, err)
	}
	return m
}

// mustIdentity builds the n×n identity or fails the test.
func mustIdentity[T dense.Scalar](t *testing.T, n int) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.Identity[T](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}
	return m
}

// randFill overwrites m with uniform values in [-1, 1) (real and imaginary
// parts independently for complex element types).
func randFill[T dense.Scalar](m *dense.Matrix[T], rng *rand.Rand) {
	raw := m.Raw()
	for i := range raw {
		re := 2*rng.Float64() - 1
		im := 2*rng.Float64() - 1
		raw[i] = dense.FromComplex[T](complex(re, im))
	}
}

// closeEnough asserts a ≈ b elementwise under (rtol, atol).
func closeEnough[T dense.Scalar](t *testing.T, a, b *dense.Matrix[T], rtol, atol float64) {
	t.Helper()
	ok, err := dense.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		diff, _ := dense.MaxAbsDiff(a, b)
		t.Fatalf("matrices differ: max |a-b| = %g (rtol=%g atol=%g)\na=\n%v\nb=\n%v",
			diff, rtol, atol, a, b)
	}
}
