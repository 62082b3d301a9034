// SPDX-License-Identifier: MIT
// Package svd_test shared fixtures: deterministic random matrices and the
// factorization quality checks every provider test reuses.
package svd_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// fixedSeed keeps every test run on the same inputs.
const fixedSeed int64 = 0xfac7

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

// mustDecompose fails the test on any provider error.
func mustDecompose[T dense.Scalar](t testing.TB, p svd.Provider[T], m *dense.Matrix[T]) *svd.Factorization[T] {
	t.Helper()
	f, err := p.Decompose(m)
	require.NoError(t, err)

	return f
}

// checkColsOrthonormal asserts ‖U^H·U - I‖_max ≤ tol.
func checkColsOrthonormal[T dense.Scalar](t testing.TB, u *dense.Matrix[T], tol float64) {
	t.Helper()
	uh, err := dense.ConjTranspose(u)
	require.NoError(t, err)
	gram, err := dense.Mul(uh, u)
	require.NoError(t, err)
	id, err := dense.Identity[T](u.Cols())
	require.NoError(t, err)
	diff, err := dense.MaxAbsDiff(gram, id)
	require.NoError(t, err)
	require.LessOrEqualf(t, diff, tol, "columns deviate from orthonormal by %g", diff)
}

// checkRowsOrthonormal asserts ‖Vt·Vt^H - I‖_max ≤ tol.
func checkRowsOrthonormal[T dense.Scalar](t testing.TB, vt *dense.Matrix[T], tol float64) {
	t.Helper()
	vh, err := dense.ConjTranspose(vt)
	require.NoError(t, err)
	gram, err := dense.Mul(vt, vh)
	require.NoError(t, err)
	id, err := dense.Identity[T](vt.Rows())
	require.NoError(t, err)
	diff, err := dense.MaxAbsDiff(gram, id)
	require.NoError(t, err)
	require.LessOrEqualf(t, diff, tol, "rows deviate from orthonormal by %g", diff)
}

// checkReconstruction asserts ‖Materialize(f) - a‖_max ≤ tol·(1 + max|a|).
func checkReconstruction[T dense.Scalar](t testing.TB, f *svd.Factorization[T], a *dense.Matrix[T], tol float64) {
	t.Helper()
	back, err := f.Materialize()
	require.NoError(t, err)
	diff, err := dense.MaxAbsDiff(back, a)
	require.NoError(t, err)
	scale, err := dense.MaxAbs(a)
	require.NoError(t, err)
	require.LessOrEqualf(t, diff, tol*(1+scale), "reconstruction off by %g", diff)
}
