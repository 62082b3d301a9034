// SPDX-License-Identifier: MIT
// Package stable: stabilized inversion of A + B for two factorized operands.

package stable

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/svd"
)

// InverseSum computes a factorization of (A + B)^{-1} from two square
// full-rank factorizations A = (Ua, Sa, Vta) and B = (Ub, Sb, Vtb) of equal
// shape and rank, without forming the catastrophically cancelling dense sum.
// Writing Va = Vta^H, Vb = Vtb^H and the per-index splits s⁺ = max(s, 1),
// s⁻ = min(s, 1):
//
// Implementation:
//  1. core[j,k] = (Va^H·Vb)[j,k]·Sa⁻[j]/Sb⁺[k] + (Ua^H·Ub)[j,k]·Sb⁻[k]/Sa⁺[j].
//     Every summand has magnitude ≤ 1, so nothing large swallows anything
//     small; the identity A + B = Ua·diag(Sa⁺)·core·diag(Sb⁺)·Vtb holds
//     because Sa⁺·Sa⁻ == Sa and Sb⁺·Sb⁻ == Sb exactly.
//  2. Decompose core → (um, sm, vtm); guard sm (singular or spread beyond
//     the ceiling ⇒ ErrIllConditioned, see WithConditionCeil).
//  3. Invert through the factors and undo the split scales in one fused
//     rescale: g[j,k] = (vtm^H·diag(1/sm)·um^H)[j,k] / (Sb⁺[j]·Sa⁺[k]).
//  4. Decompose g → (u, s, vt); result: (Vb·u, s, vt·Ua^H).
//
// Returns a fresh d×d factorization (d = A.Rank), or ErrNilProvider, operand
// validation sentinels (ErrShapeMismatch, ErrRankMismatch, ErrNotSquare),
// ErrIllConditioned, or the provider's decomposition error.
//
// Determinism: inherited from the provider.
// Complexity: O(d³) — six d×d multiplies and two decompositions.
func InverseSum[T dense.Scalar](p svd.Provider[T], a, b *svd.Factorization[T], opts ...Option) (*svd.Factorization[T], error) {
	if err := ValidateProvider(p); err != nil {
		return nil, stableErrorf(opInverseSum, err)
	}
	if err := ValidateSumPair(a, b); err != nil {
		return nil, stableErrorf(opInverseSum, err)
	}
	dst, err := svd.NewFactorization[T](a.Rows(), a.Rank(), a.Cols())
	if err != nil {
		return nil, stableErrorf(opInverseSum, err)
	}
	if err := inverseSumCore(dst, p, a, b, nil, newOptions(opts...)); err != nil {
		return nil, stableErrorf(opInverseSum, err)
	}

	return dst, nil
}

// InverseSumInto is InverseSum writing into a preallocated d×d destination;
// ws absorbs every intermediate (nil ⇒ per-call allocation). dst must not
// share storage with either operand.
//
// Returns the InverseSum sentinels plus ErrBufferSize for a wrong-shaped dst
// and dense.ErrAliased for an operand-aliased dst.
func InverseSumInto[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], a, b *svd.Factorization[T], ws *Workspace[T], opts ...Option) error {
	if err := ValidateProvider(p); err != nil {
		return stableErrorf(opInverseSumInto, err)
	}
	if err := ValidateSumPair(a, b); err != nil {
		return stableErrorf(opInverseSumInto, err)
	}
	if err := validateDst(dst, a.Rows(), a.Rank(), a.Cols()); err != nil {
		return stableErrorf(opInverseSumInto, err)
	}
	if err := validateDistinct(dst, a, b); err != nil {
		return stableErrorf(opInverseSumInto, err)
	}
	if err := inverseSumCore(dst, p, a, b, ws, newOptions(opts...)); err != nil {
		return stableErrorf(opInverseSumInto, err)
	}

	return nil
}

func inverseSumCore[T dense.Scalar](dst *svd.Factorization[T], p svd.Provider[T], a, b *svd.Factorization[T], ws *Workspace[T], o options) error {
	ws = ws.orNew()
	d := a.Rank()
	saPlus, saMinus := ws.splitA(a.S)
	sbPlus, sbMinus := ws.splitB(b.S)

	vb, err := ws.matAux(d, d) // Vb = Vtb^H, reused for the final U
	if err != nil {
		return err
	}
	if err = dense.ConjTransposeInto(vb, b.Vt); err != nil {
		return err
	}

	// core = diag(Sa⁻)·Va^H·Vb·diag(1/Sb⁺) + diag(1/Sa⁺)·Ua^H·Ub·diag(Sb⁻).
	core, err := ws.matL(d, d)
	if err != nil {
		return err
	}
	if err = dense.MulInto(core, a.Vt, vb); err != nil {
		return err
	}
	if err = dense.ScaleRows(core, saMinus); err != nil {
		return err
	}
	if err = dense.DivCols(core, sbPlus); err != nil {
		return err
	}
	uah, err := ws.matMid(d, d)
	if err != nil {
		return err
	}
	if err = dense.ConjTransposeInto(uah, a.U); err != nil {
		return err
	}
	term, err := ws.matR(d, d)
	if err != nil {
		return err
	}
	if err = dense.MulInto(term, uah, b.U); err != nil {
		return err
	}
	if err = dense.ScaleCols(term, sbMinus); err != nil {
		return err
	}
	if err = dense.DivRows(term, saPlus); err != nil {
		return err
	}
	if err = dense.AddInto(core, core, term); err != nil {
		return err
	}

	fm, err := p.Decompose(core)
	if err != nil {
		return fmt.Errorf("decompose balanced sum: %w", err)
	}
	if err = checkIntermediate[T](fm.S, o); err != nil {
		return err
	}

	// All three slots are free after the decomposition; rebuild them as the
	// inverse factors vtm^H·diag(1/sm) and um^H, then their product.
	if err = dense.ConjTransposeInto(uah, fm.Vt); err != nil {
		return err
	}
	if err = dense.DivCols(uah, fm.S); err != nil {
		return err
	}
	if err = dense.ConjTransposeInto(term, fm.U); err != nil {
		return err
	}
	if err = dense.MulInto(core, uah, term); err != nil {
		return err
	}
	if err = dense.DivOuter(core, sbPlus, saPlus); err != nil {
		return err
	}

	f2, err := p.Decompose(core)
	if err != nil {
		return fmt.Errorf("decompose rescaled inverse: %w", err)
	}

	if err = dense.MulInto(dst.U, vb, f2.U); err != nil {
		return err
	}
	copy(dst.S, f2.S)
	if err = dense.ConjTransposeInto(uah, a.U); err != nil {
		return err
	}

	return dense.MulInto(dst.Vt, f2.Vt, uah)
}
