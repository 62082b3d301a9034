// SPDX-License-Identifier: MIT
// Package stable_test shared fixtures: controlled factorizations with
// prescribed spectra and the dense reference arithmetic the operation tests
// compare against.
package stable_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// fixedSeed keeps every test run on the same inputs.
const fixedSeed int64 = 0x57ab

// randMat returns an r×c matrix with entries uniform in [-1,1) (real and
// imaginary parts alike; real element types drop the imaginary draw).
func randMat[T dense.Scalar](t testing.TB, rng *rand.Rand, r, c int) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.New[T](r, c)
	require.NoError(t, err)
	raw := m.Raw()
	for i := range raw {
		raw[i] = dense.FromComplex[T](complex(rng.Float64()*2-1, rng.Float64()*2-1))
	}

	return m
}

// randFactorization decomposes a fresh random r×c matrix and returns both
// the factorization and its materialized dense value, the pair every
// consistency test needs.
func randFactorization[T dense.Scalar](t testing.TB, p svd.Provider[T], rng *rand.Rand, r, c int) (*svd.Factorization[T], *dense.Matrix[T]) {
	t.Helper()
	f, err := p.Decompose(randMat[T](t, rng, r, c))
	require.NoError(t, err)

	return f, mustMaterialize(t, f)
}

// spectrumFactorization builds an n×n factorization with orthonormal factors
// harvested from a random decomposition and the singular values replaced by
// the prescribed spectrum. The returned factorization is exact by
// construction — its conditioning is entirely under the test's control.
func spectrumFactorization[T dense.Scalar](t testing.TB, p svd.Provider[T], rng *rand.Rand, spectrum ...float64) *svd.Factorization[T] {
	t.Helper()
	n := len(spectrum)
	f, err := p.Decompose(randMat[T](t, rng, n, n))
	require.NoError(t, err)
	s := make([]float64, n)
	copy(s, spectrum)
	out, err := svd.FromParts(f.U, s, f.Vt)
	require.NoError(t, err)

	return out
}

// diagFactorization builds (I, s, I) — the identity-basis factorization of
// diag(s...), exact in every entry.
func diagFactorization[T dense.Scalar](t testing.TB, s ...float64) *svd.Factorization[T] {
	t.Helper()
	n := len(s)
	u, err := dense.Identity[T](n)
	require.NoError(t, err)
	vt, err := dense.Identity[T](n)
	require.NoError(t, err)
	vals := make([]float64, n)
	copy(vals, s)
	f, err := svd.FromParts(u, vals, vt)
	require.NoError(t, err)

	return f
}

func mustMaterialize[T dense.Scalar](t testing.TB, f *svd.Factorization[T]) *dense.Matrix[T] {
	t.Helper()
	m, err := f.Materialize()
	require.NoError(t, err)

	return m
}

func mustMul[T dense.Scalar](t testing.TB, a, b *dense.Matrix[T]) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.Mul(a, b)
	require.NoError(t, err)

	return m
}

func mustAdd[T dense.Scalar](t testing.TB, a, b *dense.Matrix[T]) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.Add(a, b)
	require.NoError(t, err)

	return m
}

func mustInverse[T dense.Scalar](t testing.TB, m *dense.Matrix[T]) *dense.Matrix[T] {
	t.Helper()
	inv, err := dense.Inverse(m)
	require.NoError(t, err)

	return inv
}

func mustConjTranspose[T dense.Scalar](t testing.TB, m *dense.Matrix[T]) *dense.Matrix[T] {
	t.Helper()
	h, err := dense.ConjTranspose(m)
	require.NoError(t, err)

	return h
}

func mustIdentity[T dense.Scalar](t testing.TB, n int) *dense.Matrix[T] {
	t.Helper()
	id, err := dense.Identity[T](n)
	require.NoError(t, err)

	return id
}

// negIdentity returns -I, the Vt of choice for building exact fixtures of
// the form M = -diag(s).
func negIdentity[T dense.Scalar](t testing.TB, n int) *dense.Matrix[T] {
	t.Helper()
	id := mustIdentity[T](t, n)
	raw := id.Raw()
	for i := range raw {
		raw[i] = -raw[i]
	}

	return id
}

// onePlus returns I + m.
func onePlus[T dense.Scalar](t testing.TB, m *dense.Matrix[T]) *dense.Matrix[T] {
	t.Helper()

	return mustAdd(t, mustIdentity[T](t, m.Rows()), m)
}

// relErr measures max|got-want| / (1 + max|want|), the scale-invariant
// distance the accuracy assertions use.
func relErr[T dense.Scalar](t testing.TB, got, want *dense.Matrix[T]) float64 {
	t.Helper()
	diff, err := dense.MaxAbsDiff(got, want)
	require.NoError(t, err)
	scale, err := dense.MaxAbs(want)
	require.NoError(t, err)

	return diff / (1 + scale)
}

// checkClose asserts relErr(got, want) ≤ tol.
func checkClose[T dense.Scalar](t testing.TB, got, want *dense.Matrix[T], tol float64) {
	t.Helper()
	if e := relErr(t, got, want); e > tol {
		t.Fatalf("result off by %g (tolerance %g)", e, tol)
	}
}
