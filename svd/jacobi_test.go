// SPDX-License-Identifier: MIT
// Jacobi-specific behavior: column-order singular values, complex phase
// handling, the wide-matrix transpose path, and the sweep budget.
package svd_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// TestJacobi_ColumnOrderPreserved pins the documented difference between the
// providers: Jacobi reports singular values in column order, Gonum sorts
// descending. Consumers may rely on neither.
func TestJacobi_ColumnOrderPreserved(t *testing.T) {
	t.Parallel()

	a, err := dense.FromSlice(2, 2, []float64{1, 0, 0, 5})
	require.NoError(t, err)

	fj := mustDecompose[float64](t, svd.Jacobi[float64]{}, a)
	// Orthogonal columns from the start: no rotations, norms stay exact.
	require.Equal(t, []float64{1, 5}, fj.S)

	fg := mustDecompose[float64](t, svd.Gonum{}, a)
	require.Equal(t, []float64{5, 1}, fg.S)
}

// TestJacobi_ComplexRotation drives the phase-folding path with a matrix
// whose column inner product is genuinely complex (γ = 1+i).
func TestJacobi_ComplexRotation(t *testing.T) {
	t.Parallel()

	a, err := dense.FromSlice(2, 2, []complex128{1, complex(0, 1), 1, 1})
	require.NoError(t, err)

	f := mustDecompose[complex128](t, svd.Jacobi[complex128]{}, a)
	checkColsOrthonormal(t, f.U, 1e-12)
	checkRowsOrthonormal(t, f.Vt, 1e-12)
	checkReconstruction(t, f, a, 1e-12)

	// Singular values of [[1, i], [1, 1]] are sqrt(2 ± √2).
	got := append([]float64(nil), f.S...)
	sort.Float64s(got)
	require.InDelta(t, math.Sqrt(2-math.Sqrt2), got[0], 1e-12)
	require.InDelta(t, math.Sqrt(2+math.Sqrt2), got[1], 1e-12)
}

// TestJacobi_WideMatrix covers the conjugate-transpose path (rows < cols)
// with an exactly decomposable fixture.
func TestJacobi_WideMatrix(t *testing.T) {
	t.Parallel()

	a, err := dense.FromSlice(2, 3, []float64{3, 0, 0, 0, 0, 4})
	require.NoError(t, err)

	f := mustDecompose[float64](t, svd.Jacobi[float64]{}, a)
	require.Equal(t, []float64{3, 4}, f.S)
	require.Equal(t, 2, f.U.Rows())
	require.Equal(t, 2, f.U.Cols())
	require.Equal(t, 2, f.Vt.Rows())
	require.Equal(t, 3, f.Vt.Cols())
	checkReconstruction(t, f, a, 1e-15)
}

// TestJacobi_NoConvergence exhausts a one-sweep budget: the verification
// sweep that observes zero rotations never runs.
func TestJacobi_NoConvergence(t *testing.T) {
	t.Parallel()

	a, err := dense.FromSlice(3, 2, []float64{1, 1, 1, 0, 0, 1})
	require.NoError(t, err)

	_, err = svd.Jacobi[float64]{MaxSweeps: 1}.Decompose(a)
	require.ErrorIs(t, err, svd.ErrNoConvergence)
}

// TestJacobi_LooseTolKeepsReconstruction documents what Tol trades away:
// a loose threshold degrades factor orthogonality, never the reconstruction
// identity (the working matrix remains A·V throughout).
func TestJacobi_LooseTolKeepsReconstruction(t *testing.T) {
	t.Parallel()

	a, err := dense.FromSlice(3, 2, []float64{1, 1, 1, 0, 0, 1})
	require.NoError(t, err)

	f, err := svd.Jacobi[float64]{Tol: 0.9}.Decompose(a)
	require.NoError(t, err)
	checkReconstruction(t, f, a, 1e-14)
}
