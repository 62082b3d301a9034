// SPDX-License-Identifier: MIT
// Package stable: operation variants and the caller-owned scratch workspace.
// The stabilized operations themselves live in multiply.go,
// inverse_one_plus.go and inverse_sum.go; dense facades in api.go.

package stable

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
)

// Operation names used in wrapped error contexts.
const (
	opMultiply                = "Multiply"
	opMultiplyInto            = "MultiplyInto"
	opInverseOnePlus          = "InverseOnePlus"
	opInverseOnePlusInto      = "InverseOnePlusInto"
	opInverseSum              = "InverseSum"
	opInverseSumInto          = "InverseSumInto"
	opProduct                 = "Product"
	opMultiplyDense           = "MultiplyDense"
	opMultiplyDenseInto       = "MultiplyDenseInto"
	opInverseOnePlusDense     = "InverseOnePlusDense"
	opInverseOnePlusDenseInto = "InverseOnePlusDenseInto"
	opInverseSumDense         = "InverseSumDense"
	opInverseSumDenseInto     = "InverseSumDenseInto"
)

// stableErrorf wraps err with the operation tag, keeping sentinels matchable.
func stableErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Variant selects the inverse-one-plus formulation.
type Variant int

const (
	// VariantPlain is the direct formulation t = U^H·V + diag(S). One
	// re-decomposition and one small dense inverse; accurate while the
	// singular values stay within a few decades of 1.
	VariantPlain Variant = iota

	// VariantLoh is the scale-separated formulation: every singular value
	// is split against the threshold 1 so that no intermediate mixes large
	// and small scales in one addition. Two re-decompositions; accuracy
	// near machine epsilon even for spectra spanning many decades.
	VariantLoh
)

// String implements fmt.Stringer for error contexts and test names.
func (v Variant) String() string {
	switch v {
	case VariantPlain:
		return "plain"
	case VariantLoh:
		return "loh"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Workspace is an opaque scratch arena for the ...Into operations. The zero
// value is ready to use; buffers are created on first demand and grow to the
// largest shapes seen, so one Workspace reused across a simulation loop
// brings the per-step allocation count down to the provider's own.
//
// A Workspace is exclusively owned by one call for its duration: it is not
// safe for concurrent use, and its contents between calls are unspecified.
// Passing nil is always valid and falls back to per-call allocation.
type Workspace[T dense.Scalar] struct {
	splus, sminus   []float64
	splus2, sminus2 []float64

	l, r, mid, aux *dense.Matrix[T]
}

// orNew normalizes a possibly-nil workspace so cores can use one code path.
func (w *Workspace[T]) orNew() *Workspace[T] {
	if w == nil {
		return &Workspace[T]{}
	}

	return w
}

// matL, matR, matMid and matAux hand out the four matrix slots reshaped to
// the requested dimensions. Contents are unspecified; callers overwrite
// every entry before reading.

func (w *Workspace[T]) matL(rows, cols int) (*dense.Matrix[T], error) {
	return scratch(&w.l, rows, cols)
}

func (w *Workspace[T]) matR(rows, cols int) (*dense.Matrix[T], error) {
	return scratch(&w.r, rows, cols)
}

func (w *Workspace[T]) matMid(rows, cols int) (*dense.Matrix[T], error) {
	return scratch(&w.mid, rows, cols)
}

func (w *Workspace[T]) matAux(rows, cols int) (*dense.Matrix[T], error) {
	return scratch(&w.aux, rows, cols)
}

// splitA separates the primary operand's spectrum against the threshold 1
// into the workspace's first slice pair: plus[i] = max(s[i], 1),
// minus[i] = min(s[i], 1). The returned slices stay valid until the next
// splitA call on the same workspace.
func (w *Workspace[T]) splitA(s []float64) (plus, minus []float64) {
	w.splus, w.sminus = splitScales(s, w.splus, w.sminus)

	return w.splus, w.sminus
}

// splitB is splitA for the secondary operand, backed by the second pair.
func (w *Workspace[T]) splitB(s []float64) (plus, minus []float64) {
	w.splus2, w.sminus2 = splitScales(s, w.splus2, w.sminus2)

	return w.splus2, w.sminus2
}

// scratch reshapes the slot in place, allocating only when capacity is
// insufficient, and records the (possibly new) matrix back into the slot.
func scratch[T dense.Scalar](slot **dense.Matrix[T], rows, cols int) (*dense.Matrix[T], error) {
	m, err := dense.Reshape(*slot, rows, cols)
	if err != nil {
		return nil, err
	}
	*slot = m

	return m, nil
}

// splitScales fills plus/minus with the scale separation of s, growing the
// buffers as needed. max(s,1)·min(s,1) == s holds exactly per entry, which
// is what lets the separated factors recombine without a rounding step.
func splitScales(s, plus, minus []float64) ([]float64, []float64) {
	plus = growFloats(plus, len(s))
	minus = growFloats(minus, len(s))
	for i, v := range s {
		if v > 1 {
			plus[i], minus[i] = v, 1
		} else {
			plus[i], minus[i] = 1, v
		}
	}

	return plus, minus
}

func growFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}

	return buf[:n]
}
