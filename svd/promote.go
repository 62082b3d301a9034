// SPDX-License-Identifier: MIT

package svd

import "github.com/katalvlaran/stablesvd/dense"

const opPromote = "Promote.Decompose"

// Promote adapts a float64 provider into a float32 one: the input matrix is
// widened to float64, decomposed by inner, and the factors are narrowed back.
// Accuracy is limited by the final rounding, exactly what a single-precision
// caller expects, while the heavy lifting reuses the double-precision backend
// (typically Gonum).
func Promote(inner Provider[float64]) Provider[float32] {
	return promoted{inner: inner}
}

type promoted struct {
	inner Provider[float64]
}

var _ Provider[float32] = promoted{}

// Decompose widens, delegates, narrows.
//
// Returns ErrNilProvider when Promote was handed nil, plus whatever the inner
// provider returns.
func (p promoted) Decompose(m *dense.Matrix[float32]) (*Factorization[float32], error) {
	if p.inner == nil {
		return nil, svdErrorf(opPromote, ErrNilProvider)
	}
	if err := ValidateDecomposeInput(m); err != nil {
		return nil, svdErrorf(opPromote, err)
	}

	wide, err := dense.New[float64](m.Rows(), m.Cols())
	if err != nil {
		return nil, svdErrorf(opPromote, err)
	}
	src, dst := m.Raw(), wide.Raw()
	for i := range src {
		dst[i] = float64(src[i])
	}

	f, err := p.inner.Decompose(wide)
	if err != nil {
		return nil, svdErrorf(opPromote, err)
	}

	return &Factorization[float32]{
		U:  narrowReal(f.U),
		S:  f.S,
		Vt: narrowReal(f.Vt),
	}, nil
}

// narrowReal rounds a float64 matrix down to float32.
func narrowReal(m *dense.Matrix[float64]) *dense.Matrix[float32] {
	out, _ := dense.New[float32](m.Rows(), m.Cols())
	src, dst := m.Raw(), out.Raw()
	for i := range src {
		dst[i] = float32(src[i])
	}

	return out
}
