// SPDX-License-Identifier: MIT
// Package stable: stabilized inversion of I + M for a factorized M.

package stable

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// InverseOnePlus computes a factorization of (I + M)^{-1} from the
// factorization F = (U, S, Vt) of a square full-rank M, without forming
// I + M densely. Writing V = Vt^H:
//
// VariantPlain:
//  1. t = U^H·V + diag(S), from the identity I + M = U·(U^H·V + diag(S))·V^H.
//  2. Decompose t → (u, s, vt); any zero in s means I + M is numerically
//     singular (ErrIllConditioned).
//  3. Result: (V·vt^H, 1/s, (U·u)^{-1}). The last factor is the exact dense
//     inverse of the rotation product U·u, orthonormal to working precision
//     rather than by construction; a singular inverse reports
//     ErrIllConditioned.
//
// t spans the full spread of S, which is legitimate for this formulation, so
// the plain variant applies no condition ceiling — its accuracy simply
// degrades with the spread. Use it when S stays within a few decades of 1.
//
// VariantLoh:
//  1. Split each singular value against 1: s⁺ = max(S,1), s⁻ = min(S,1),
//     so that s⁺·s⁻ == S exactly.
//  2. l = V·diag(1/s⁺), r = U·diag(s⁻); both have columns of scale ≤ 1, and
//     I + M = (l + r)·diag(s⁺)·V^H.
//  3. Decompose l + r → (um, sm, vtm); guard sm (singular or spread beyond
//     the ceiling ⇒ ErrIllConditioned, see WithConditionCeil).
//  4. Invert through the factors and restore the split scale:
//     g = diag(1/s⁺)·vtm^H·diag(1/sm)·um^H.
//  5. Decompose g → (u, s, vt); result: (V·u, s, vt).
//
// No step of the Loh variant adds quantities differing by more than scale 1,
// which keeps accuracy near machine epsilon even when S spans many decades.
//
// Returns a fresh k×k factorization (k = F.Rank), or ErrNilProvider,
// ErrBadVariant, operand validation sentinels (ErrNotSquare for a
// rectangular or rank-deficient F), ErrIllConditioned, or the provider's
// decomposition error.
//
// Determinism: inherited from the provider.
// Complexity: O(k³) — a handful of k×k multiplies plus one decomposition
// (plain, plus one LU inverse) or two decompositions (Loh).
func InverseOnePlus[T dense.Scalar](p svd.Provider[T], f *svd.Factorization[T], variant Variant, opts ...Option) (*svd.Factorization[T], error) {
	if err := ValidateProvider(p); err != nil {
		return nil, stableErrorf(opInverseOnePlus, err)
	}
	if err := ValidateSquareOperand(f); err != nil {
		return nil, stableErrorf(opInverseOnePlus, err)
	}
	if err := ValidateVariant(variant); err != nil {
		return nil, stableErrorf(opInverseOnePlus, err)
	}
	dst, err := svd.NewFactorization[T](f.Rows(), f.Rank(), f.Cols())
	if err != nil {
		return nil, stableErrorf(opInverseOnePlus, err)
	}
	if err := inverseOnePlusCore(dst, p, f, variant, nil, newOptions(opts...)); err != nil {
		return nil, stableErrorf(opInverseOnePlus, err)
	}

	return dst, nil
}

// InverseOnePlusInto is InverseOnePlus writing into a preallocated k×k
// destination; ws absorbs every intermediate (nil ⇒ per-call allocation).
// dst must not share storage with F.
//
// Returns the InverseOnePlus sentinels plus ErrBufferSize for a wrong-shaped
// dst and dense.ErrAliased for an operand-aliased dst.
func InverseOnePlusInto[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], f *svd.Factorization[T], variant Variant, ws *Workspace[T], opts ...Option) error {
	if err := ValidateProvider(p); err != nil {
		return stableErrorf(opInverseOnePlusInto, err)
	}
	if err := ValidateSquareOperand(f); err != nil {
		return stableErrorf(opInverseOnePlusInto, err)
	}
	if err := ValidateVariant(variant); err != nil {
		return stableErrorf(opInverseOnePlusInto, err)
	}
	if err := validateDst(dst, f.Rows(), f.Rank(), f.Cols()); err != nil {
		return stableErrorf(opInverseOnePlusInto, err)
	}
	if err := validateDistinct(dst, f); err != nil {
		return stableErrorf(opInverseOnePlusInto, err)
	}
	if err := inverseOnePlusCore(dst, p, f, variant, ws, newOptions(opts...)); err != nil {
		return stableErrorf(opInverseOnePlusInto, err)
	}

	return nil
}

func inverseOnePlusCore[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], f *svd.Factorization[T], variant Variant, ws *Workspace[T], o options) error {
	ws = ws.orNew()
	switch variant {
	case VariantLoh:
		return inverseOnePlusLoh(dst, p, f, ws, o)
	case VariantPlain:
		return inverseOnePlusPlain(dst, p, f, ws)
	default:
		return fmt.Errorf("%s: %w", variant, ErrBadVariant)
	}
}

// inverseOnePlusPlain implements VariantPlain on a validated k×k operand.
func inverseOnePlusPlain[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], f *svd.Factorization[T], ws *Workspace[T]) error {
	k := f.Rank()

	v, err := ws.matAux(k, k) // V = Vt^H, reused for the final U
	if err != nil {
		return err
	}
	if err = dense.ConjTransposeInto(v, f.Vt); err != nil {
		return err
	}
	uh, err := ws.matMid(k, k)
	if err != nil {
		return err
	}
	if err = dense.ConjTransposeInto(uh, f.U); err != nil {
		return err
	}
	t, err := ws.matL(k, k)
	if err != nil {
		return err
	}
	if err = dense.MulInto(t, uh, v); err != nil {
		return err
	}
	if err = dense.AddDiag(t, f.S); err != nil {
		return err
	}

	ft, err := p.Decompose(t)
	if err != nil {
		return fmt.Errorf("decompose shifted core: %w", err)
	}
	if err = checkInvertible(ft.S); err != nil {
		return err
	}

	// t's slot is free after the decomposition; reuse it for vt^H.
	if err = dense.ConjTransposeInto(t, ft.Vt); err != nil {
		return err
	}
	if err = dense.MulInto(dst.U, v, t); err != nil {
		return err
	}
	for i, s := range ft.S {
		dst.S[i] = 1 / s
	}

	prod, err := ws.matR(k, k)
	if err != nil {
		return err
	}
	if err = dense.MulInto(prod, f.U, ft.U); err != nil {
		return err
	}
	inv, err := dense.Inverse(prod)
	if err != nil {
		if errors.Is(err, dense.ErrSingular) {
			return fmt.Errorf("invert rotation product: %w", ErrIllConditioned)
		}

		return err
	}

	return dense.CopyInto(dst.Vt, inv)
}

// inverseOnePlusLoh implements VariantLoh on a validated k×k operand.
func inverseOnePlusLoh[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], f *svd.Factorization[T], ws *Workspace[T], o options) error {
	k := f.Rank()
	splus, sminus := ws.splitA(f.S)

	v, err := ws.matAux(k, k) // V = Vt^H, reused for the final U
	if err != nil {
		return err
	}
	if err = dense.ConjTransposeInto(v, f.Vt); err != nil {
		return err
	}
	l, err := ws.matL(k, k)
	if err != nil {
		return err
	}
	if err = dense.CopyInto(l, v); err != nil {
		return err
	}
	if err = dense.DivCols(l, splus); err != nil {
		return err
	}
	r, err := ws.matR(k, k)
	if err != nil {
		return err
	}
	if err = dense.CopyInto(r, f.U); err != nil {
		return err
	}
	if err = dense.ScaleCols(r, sminus); err != nil {
		return err
	}
	if err = dense.AddInto(l, l, r); err != nil {
		return err
	}

	fm, err := p.Decompose(l)
	if err != nil {
		return fmt.Errorf("decompose balanced sum: %w", err)
	}
	if err = checkIntermediate[T](fm.S, o); err != nil {
		return err
	}

	// l and r are free after the decomposition; rebuild them as the inverse
	// factors vtm^H·diag(1/sm) and um^H.
	if err = dense.ConjTransposeInto(l, fm.Vt); err != nil {
		return err
	}
	if err = dense.DivCols(l, fm.S); err != nil {
		return err
	}
	if err = dense.ConjTransposeInto(r, fm.U); err != nil {
		return err
	}
	g, err := ws.matMid(k, k)
	if err != nil {
		return err
	}
	if err = dense.MulInto(g, l, r); err != nil {
		return err
	}
	if err = dense.DivRows(g, splus); err != nil {
		return err
	}

	f2, err := p.Decompose(g)
	if err != nil {
		return fmt.Errorf("decompose rescaled inverse: %w", err)
	}

	if err = dense.MulInto(dst.U, v, f2.U); err != nil {
		return err
	}
	copy(dst.S, f2.S)

	return dense.CopyInto(dst.Vt, f2.Vt)
}
