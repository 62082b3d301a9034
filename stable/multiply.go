// SPDX-License-Identifier: MIT
// Package stable: stabilized multiplication of two SVD factorizations.

package stable

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// Multiply composes two factorizations into a factorization of their product
// A·B without ever forming the dense product.
//
// Implementation:
//  1. mid = Vta·Ub — a small ka×kb core between the orthonormal factors.
//  2. Scale mid's rows by Sa and columns by Sb, giving
//     mid = diag(Sa)·Vta·Ub·diag(Sb).
//  3. Decompose mid → (um, sm, vtm).
//  4. Result: (Ua·um, sm, vtm·Vtb).
//
// The orthonormal factors are norm-preserving, so all conditioning lives in
// the small core; one re-decomposition absorbs it instead of the squared
// condition number a dense product would accumulate. The result is exact up
// to provider rounding for any spectrum spread — no condition guard applies,
// which is why Multiply takes no options.
//
// Returns a fresh factorization of shape (A.Rows, min(A.Rank, B.Rank),
// B.Cols), or ErrNilProvider, operand validation sentinels (ErrShapeMismatch
// when A.Cols != B.Rows), or the provider's decomposition error.
//
// Determinism: inherited from the provider.
// Complexity: two dense multiplies at the outer shapes, one decomposition of
// the ka×kb core.
func Multiply[T dense.Scalar](p svd.Provider[T], a, b *svd.Factorization[T]) (*svd.Factorization[T], error) {
	if err := ValidateProvider(p); err != nil {
		return nil, stableErrorf(opMultiply, err)
	}
	if err := ValidateMultiplyPair(a, b); err != nil {
		return nil, stableErrorf(opMultiply, err)
	}
	dst, err := svd.NewFactorization[T](a.Rows(), min(a.Rank(), b.Rank()), b.Cols())
	if err != nil {
		return nil, stableErrorf(opMultiply, err)
	}
	if err := multiplyCore(dst, p, a, b, nil); err != nil {
		return nil, stableErrorf(opMultiply, err)
	}

	return dst, nil
}

// MultiplyInto is Multiply writing into a preallocated destination of shape
// (A.Rows, min(A.Rank, B.Rank), B.Cols); ws absorbs the scratch core (nil ⇒
// per-call allocation). dst must not share storage with either operand.
//
// Returns the Multiply sentinels plus ErrBufferSize for a wrong-shaped dst
// and dense.ErrAliased for operand-aliased dst.
func MultiplyInto[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], a, b *svd.Factorization[T], ws *Workspace[T]) error {
	if err := ValidateProvider(p); err != nil {
		return stableErrorf(opMultiplyInto, err)
	}
	if err := ValidateMultiplyPair(a, b); err != nil {
		return stableErrorf(opMultiplyInto, err)
	}
	if err := validateDst(dst, a.Rows(), min(a.Rank(), b.Rank()), b.Cols()); err != nil {
		return stableErrorf(opMultiplyInto, err)
	}
	if err := validateDistinct(dst, a, b); err != nil {
		return stableErrorf(opMultiplyInto, err)
	}
	if err := multiplyCore(dst, p, a, b, ws); err != nil {
		return stableErrorf(opMultiplyInto, err)
	}

	return nil
}

// multiplyCore runs the validated algorithm. dst has the exact result shape;
// errors come back untagged for the entry points to wrap.
func multiplyCore[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], a, b *svd.Factorization[T], ws *Workspace[T]) error {
	ws = ws.orNew()

	mid, err := ws.matMid(a.Rank(), b.Rank())
	if err != nil {
		return err
	}
	if err = dense.MulInto(mid, a.Vt, b.U); err != nil {
		return err
	}
	if err = dense.ScaleRows(mid, a.S); err != nil {
		return err
	}
	if err = dense.ScaleCols(mid, b.S); err != nil {
		return err
	}

	fm, err := p.Decompose(mid)
	if err != nil {
		return fmt.Errorf("decompose scaled core: %w", err)
	}

	if err = dense.MulInto(dst.U, a.U, fm.U); err != nil {
		return err
	}
	copy(dst.S, fm.S)

	return dense.MulInto(dst.Vt, fm.Vt, b.Vt)
}
