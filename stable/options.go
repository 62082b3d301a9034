// SPDX-License-Identifier: MIT
// Package stable: functional options for the stabilized operations.
// Options tune the intermediate condition guard only; the algorithms
// themselves have no knobs.

package stable

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
)

// DefaultConditionCeilFactor sets the default intermediate condition ceiling
// to 1/(DefaultConditionCeilFactor · eps(T)). With float64 that is roughly
// 7.0e13, with float32 roughly 1.3e5 — the point past which an inverted
// intermediate retains fewer than ~6 trustworthy bits.
const DefaultConditionCeilFactor = 64.0

// options is the resolved option set; the zero value means "defaults".
type options struct {
	condCeil  float64
	skipCheck bool
}

// Option configures a stabilized inverse operation.
type Option func(*options)

// WithConditionCeil overrides the spectral condition ceiling applied to
// intermediates the algorithm must invert. Non-positive values are ignored
// and leave the per-type default in force.
//
// AI-Hints:
//   - Tighten (e.g. 1e6) when downstream consumes every digit, such as
//     accept/reject weights; loosen only with a provider of known relative
//     accuracy on graded matrices.
//   - The ceiling guards intermediates, not the operands: a well-separated
//     input with a terrible condition number is exactly the supported case.
func WithConditionCeil(ceil float64) Option {
	return func(o *options) {
		if ceil > 0 {
			o.condCeil = ceil
		}
	}
}

// WithoutConditionCheck disables the spectral condition guard for callers
// who prefer the documented-precondition stance and accept whatever digits
// survive. Exactly singular intermediates still fail: no finite result
// exists to hand back.
//
// AI-Hints:
//   - Pair with a residual check (‖result·(I+M) - I‖) when disabling; the
//     guard is the only other signal that an inverse lost its digits.
func WithoutConditionCheck() Option {
	return func(o *options) {
		o.skipCheck = true
	}
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// conditionCeil resolves the effective ceiling for element type T.
// A free function because methods cannot carry type parameters.
func conditionCeil[T dense.Scalar](o options) float64 {
	if o.condCeil > 0 {
		return o.condCeil
	}

	return 1 / (DefaultConditionCeilFactor * dense.Eps[T]())
}

// checkIntermediate guards an intermediate spectrum that the algorithm is
// about to invert: exact singularity always fails, a spread beyond the
// ceiling fails unless the guard was disabled.
func checkIntermediate[T dense.Scalar](s []float64, o options) error {
	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == 0 {
		return fmt.Errorf("singular intermediate: %w", ErrIllConditioned)
	}
	if o.skipCheck {
		return nil
	}
	if ceil := conditionCeil[T](o); hi/lo > ceil {
		return fmt.Errorf("intermediate condition %.3e exceeds ceiling %.3e: %w", hi/lo, ceil, ErrIllConditioned)
	}

	return nil
}

// checkInvertible is the singularity-only guard used by the plain
// inverse-one-plus variant, whose shifted core legitimately spans the full
// spread of the input spectrum.
func checkInvertible(s []float64) error {
	for _, v := range s {
		if v == 0 {
			return fmt.Errorf("singular intermediate: %w", ErrIllConditioned)
		}
	}

	return nil
}
