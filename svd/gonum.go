// SPDX-License-Identifier: MIT
// Package svd: classical float64 provider backed by gonum.

package svd

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stablesvd/dense"
)

const opGonum = "Gonum.Decompose"

// Gonum is the classical provider for T = float64, delegating to
// gonum.org/v1/gonum/mat's SVD (Golub–Kahan bidiagonalization, thin form).
// It is the fast path for double-precision real work; complex and
// single-precision element types go through Jacobi or Promote instead.
//
// Unlike Jacobi, gonum returns singular values sorted in descending order.
// Nothing downstream may rely on that — the Provider contract leaves the
// order unspecified.
//
// The zero value is ready to use.
type Gonum struct{}

var _ Provider[float64] = Gonum{}

// Decompose computes the thin SVD of m via mat.SVD.
//
// Returns dense.ErrNilMatrix for unusable input and ErrNoConvergence when
// gonum's iteration fails to factorize.
func (Gonum) Decompose(m *dense.Matrix[float64]) (*Factorization[float64], error) {
	if err := ValidateDecomposeInput(m); err != nil {
		return nil, svdErrorf(opGonum, err)
	}
	rows, cols := m.Rows(), m.Cols()

	// Read-only view over the caller's backing; Factorize does not mutate it.
	a := mat.NewDense(rows, cols, m.Raw())
	var s mat.SVD
	if ok := s.Factorize(a, mat.SVDThin); !ok {
		return nil, svdErrorf(opGonum, ErrNoConvergence)
	}

	var u, v mat.Dense
	s.UTo(&u)
	s.VTo(&v)
	vals := s.Values(nil)
	k := len(vals)

	uOut, err := dense.New[float64](rows, k)
	if err != nil {
		return nil, svdErrorf(opGonum, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			if err = uOut.Set(i, j, u.At(i, j)); err != nil {
				return nil, svdErrorf(opGonum, err)
			}
		}
	}

	// gonum hands back V with right singular vectors as columns; the
	// factorization stores Vt, so transpose while copying.
	vtOut, err := dense.New[float64](k, cols)
	if err != nil {
		return nil, svdErrorf(opGonum, err)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < cols; j++ {
			if err = vtOut.Set(i, j, v.At(j, i)); err != nil {
				return nil, svdErrorf(opGonum, err)
			}
		}
	}

	return &Factorization[float64]{U: uOut, S: vals, Vt: vtOut}, nil
}
