// SPDX-License-Identifier: MIT
// Package stable: dense facades and the chain-product helper.
// Each facade is "compose, then materialize exactly once" packaged as a
// single call for code that wants the dense result and nothing else; the
// factorization itself stays internal even in the ...Into forms.

package stable

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// MultiplyDense returns the dense product A·B computed through the
// stabilized composition, equivalent to Multiply followed by Materialize.
func MultiplyDense[T dense.Scalar](p svd.Provider[T], a, b *svd.Factorization[T]) (*dense.Matrix[T], error) {
	if err := ValidateProvider(p); err != nil {
		return nil, stableErrorf(opMultiplyDense, err)
	}
	if err := ValidateMultiplyPair(a, b); err != nil {
		return nil, stableErrorf(opMultiplyDense, err)
	}
	f, err := svd.NewFactorization[T](a.Rows(), min(a.Rank(), b.Rank()), b.Cols())
	if err != nil {
		return nil, stableErrorf(opMultiplyDense, err)
	}
	if err := multiplyCore(f, p, a, b, nil); err != nil {
		return nil, stableErrorf(opMultiplyDense, err)
	}
	out, err := f.Materialize()
	if err != nil {
		return nil, stableErrorf(opMultiplyDense, err)
	}

	return out, nil
}

// MultiplyDenseInto is MultiplyDense writing the dense result into dst,
// which must be exactly A.Rows×B.Cols (dense.ErrDimensionMismatch
// otherwise). The intermediate factorization is still allocated internally;
// what ws and dst save are the scratch core and the result buffer.
func MultiplyDenseInto[T dense.Scalar](dst *dense.Matrix[T], p svd.Provider[T], a, b *svd.Factorization[T], ws *Workspace[T]) error {
	if err := ValidateProvider(p); err != nil {
		return stableErrorf(opMultiplyDenseInto, err)
	}
	if err := ValidateMultiplyPair(a, b); err != nil {
		return stableErrorf(opMultiplyDenseInto, err)
	}
	f, err := svd.NewFactorization[T](a.Rows(), min(a.Rank(), b.Rank()), b.Cols())
	if err != nil {
		return stableErrorf(opMultiplyDenseInto, err)
	}
	if err := multiplyCore(f, p, a, b, ws); err != nil {
		return stableErrorf(opMultiplyDenseInto, err)
	}
	if err := f.MaterializeInto(dst); err != nil {
		return stableErrorf(opMultiplyDenseInto, err)
	}

	return nil
}

// InverseOnePlusDense returns the dense (I + M)^{-1} computed through the
// stabilized composition, equivalent to InverseOnePlus followed by
// Materialize.
func InverseOnePlusDense[T dense.Scalar](p svd.Provider[T], f *svd.Factorization[T], variant Variant, opts ...Option) (*dense.Matrix[T], error) {
	if err := ValidateProvider(p); err != nil {
		return nil, stableErrorf(opInverseOnePlusDense, err)
	}
	if err := ValidateSquareOperand(f); err != nil {
		return nil, stableErrorf(opInverseOnePlusDense, err)
	}
	if err := ValidateVariant(variant); err != nil {
		return nil, stableErrorf(opInverseOnePlusDense, err)
	}
	g, err := svd.NewFactorization[T](f.Rows(), f.Rank(), f.Cols())
	if err != nil {
		return nil, stableErrorf(opInverseOnePlusDense, err)
	}
	if err := inverseOnePlusCore(g, p, f, variant, nil, newOptions(opts...)); err != nil {
		return nil, stableErrorf(opInverseOnePlusDense, err)
	}
	out, err := g.Materialize()
	if err != nil {
		return nil, stableErrorf(opInverseOnePlusDense, err)
	}

	return out, nil
}

// InverseOnePlusDenseInto is InverseOnePlusDense writing the dense result
// into dst, which must be exactly k×k.
func InverseOnePlusDenseInto[T dense.Scalar](dst *dense.Matrix[T], p svd.Provider[T], f *svd.Factorization[T], variant Variant, ws *Workspace[T], opts ...Option) error {
	if err := ValidateProvider(p); err != nil {
		return stableErrorf(opInverseOnePlusDenseInto, err)
	}
	if err := ValidateSquareOperand(f); err != nil {
		return stableErrorf(opInverseOnePlusDenseInto, err)
	}
	if err := ValidateVariant(variant); err != nil {
		return stableErrorf(opInverseOnePlusDenseInto, err)
	}
	g, err := svd.NewFactorization[T](f.Rows(), f.Rank(), f.Cols())
	if err != nil {
		return stableErrorf(opInverseOnePlusDenseInto, err)
	}
	if err := inverseOnePlusCore(g, p, f, variant, ws, newOptions(opts...)); err != nil {
		return stableErrorf(opInverseOnePlusDenseInto, err)
	}
	if err := g.MaterializeInto(dst); err != nil {
		return stableErrorf(opInverseOnePlusDenseInto, err)
	}

	return nil
}

// InverseSumDense returns the dense (A + B)^{-1} computed through the
// stabilized composition, equivalent to InverseSum followed by Materialize.
func InverseSumDense[T dense.Scalar](p svd.Provider[T], a, b *svd.Factorization[T], opts ...Option) (*dense.Matrix[T], error) {
	if err := ValidateProvider(p); err != nil {
		return nil, stableErrorf(opInverseSumDense, err)
	}
	if err := ValidateSumPair(a, b); err != nil {
		return nil, stableErrorf(opInverseSumDense, err)
	}
	g, err := svd.NewFactorization[T](a.Rows(), a.Rank(), a.Cols())
	if err != nil {
		return nil, stableErrorf(opInverseSumDense, err)
	}
	if err := inverseSumCore(g, p, a, b, nil, newOptions(opts...)); err != nil {
		return nil, stableErrorf(opInverseSumDense, err)
	}
	out, err := g.Materialize()
	if err != nil {
		return nil, stableErrorf(opInverseSumDense, err)
	}

	return out, nil
}

// InverseSumDenseInto is InverseSumDense writing the dense result into dst,
// which must be exactly d×d.
func InverseSumDenseInto[T dense.Scalar](dst *dense.Matrix[T], p svd.Provider[T], a, b *svd.Factorization[T], ws *Workspace[T], opts ...Option) error {
	if err := ValidateProvider(p); err != nil {
		return stableErrorf(opInverseSumDenseInto, err)
	}
	if err := ValidateSumPair(a, b); err != nil {
		return stableErrorf(opInverseSumDenseInto, err)
	}
	g, err := svd.NewFactorization[T](a.Rows(), a.Rank(), a.Cols())
	if err != nil {
		return stableErrorf(opInverseSumDenseInto, err)
	}
	if err := inverseSumCore(g, p, a, b, ws, newOptions(opts...)); err != nil {
		return stableErrorf(opInverseSumDenseInto, err)
	}
	if err := g.MaterializeInto(dst); err != nil {
		return stableErrorf(opInverseSumDenseInto, err)
	}

	return nil
}

// Product left-folds a chain of factorizations into a factorization of
// fs[0]·fs[1]·…·fs[len-1] with one stabilized multiply per link. This is the
// propagator-stack primitive of determinant simulations: chains of hundreds
// of ill-conditioned factors compose without losing the small singular
// values a dense accumulation would flush away.
//
// A single-element chain returns a deep copy. One scratch workspace is
// shared across links, but each link still allocates its result; loops that
// need allocation-free steps use MultiplyInto with alternating destinations.
//
// Returns svd.ErrNilFactorization (wrapped) for an empty chain, and the
// Multiply sentinels — tagged with the failing link — otherwise.
func Product[T dense.Scalar](p svd.Provider[T], fs ...*svd.Factorization[T]) (*svd.Factorization[T], error) {
	if err := ValidateProvider(p); err != nil {
		return nil, stableErrorf(opProduct, err)
	}
	if len(fs) == 0 {
		return nil, stableErrorf(opProduct, fmt.Errorf("empty chain: %w", svd.ErrNilFactorization))
	}
	if err := svd.ValidateFactorization(fs[0]); err != nil {
		return nil, stableErrorf(opProduct, err)
	}
	if len(fs) == 1 {
		return fs[0].Clone(), nil
	}

	var ws Workspace[T]
	acc := fs[0]
	for i, f := range fs[1:] {
		if err := ValidateMultiplyPair(acc, f); err != nil {
			return nil, stableErrorf(opProduct, fmt.Errorf("link %d: %w", i+1, err))
		}
		next, err := svd.NewFactorization[T](acc.Rows(), min(acc.Rank(), f.Rank()), f.Cols())
		if err != nil {
			return nil, stableErrorf(opProduct, fmt.Errorf("link %d: %w", i+1, err))
		}
		if err := multiplyCore(next, p, acc, f, &ws); err != nil {
			return nil, stableErrorf(opProduct, fmt.Errorf("link %d: %w", i+1, err))
		}
		acc = next
	}

	return acc, nil
}
