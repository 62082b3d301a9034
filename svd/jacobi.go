// SPDX-License-Identifier: MIT
// Package svd: one-sided Jacobi provider, generic over all element types.

package svd

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/stablesvd/dense"
)

const (
	// DefaultMaxSweeps bounds the number of full column-pair sweeps before a
	// Jacobi decomposition gives up with ErrNoConvergence. Convergence is
	// quadratic once rotations get small; well-posed inputs settle in well
	// under ten sweeps even at n=512.
	DefaultMaxSweeps = 40

	// DefaultTolFactor scales the element type's unit roundoff into the
	// orthogonality threshold: columns p,q count as orthogonal when
	// |⟨wp,wq⟩| ≤ tol·‖wp‖·‖wq‖ with tol = DefaultTolFactor·eps(T).
	DefaultTolFactor = 8
)

const opJacobi = "Jacobi.Decompose"

// Jacobi is the generic one-sided (Hestenes) Jacobi provider. It works for
// every Scalar element type and makes no shape assumptions beyond a
// constructed input; wide matrices are decomposed through their conjugate
// transpose.
//
// The zero value is ready to use. Exported fields follow the usual
// zero-value-means-default convention:
//
//	Tol       — orthogonality threshold; 0 ⇒ DefaultTolFactor·eps(T).
//	MaxSweeps — sweep budget; 0 ⇒ DefaultMaxSweeps.
//
// Internally all arithmetic runs in complex128: real inputs keep exactly
// zero imaginary parts through every rotation, so narrowing back to a real T
// is lossless, and float32/complex64 inputs get double-precision iteration
// for free before the final rounding.
type Jacobi[T dense.Scalar] struct {
	Tol       float64
	MaxSweeps int
}

var (
	_ Provider[float32]    = Jacobi[float32]{}
	_ Provider[float64]    = Jacobi[float64]{}
	_ Provider[complex64]  = Jacobi[complex64]{}
	_ Provider[complex128] = Jacobi[complex128]{}
)

// Decompose computes the thin SVD of m.
//
// Implementation:
//  1. Widen m (or its conjugate transpose, whichever is tall) to a complex128
//     working matrix W and set V = I.
//  2. Sweep all column pairs (p,q): fold the phase of ⟨wp,wq⟩ into column q,
//     then apply the classical real Jacobi rotation that orthogonalizes the
//     pair; mirror both right-multiplications onto V.
//  3. Repeat until a full sweep performs no rotation or the sweep budget is
//     exhausted (ErrNoConvergence).
//  4. Column norms of W become S, normalized columns become U, and Vt = V^H;
//     for wide inputs the roles of U and V swap back.
//
// Returns the factorization with S in column order — NOT sorted.
//
// Determinism: fixed sweep order, no randomness, no goroutines.
// Complexity: O(sweeps·m·n²) time, O(m·n + n²) extra space (complex128).
func (j Jacobi[T]) Decompose(m *dense.Matrix[T]) (*Factorization[T], error) {
	if err := ValidateDecomposeInput(m); err != nil {
		return nil, svdErrorf(opJacobi, err)
	}
	tol := j.Tol
	if tol <= 0 {
		tol = DefaultTolFactor * dense.Eps[T]()
	}
	sweeps := j.MaxSweeps
	if sweeps <= 0 {
		sweeps = DefaultMaxSweeps
	}

	if m.Rows() >= m.Cols() {
		w := widen(m, false)
		u, s, v, err := jacobiKernel(w, tol, sweeps)
		if err != nil {
			return nil, svdErrorf(opJacobi, err)
		}
		vh, err := dense.ConjTranspose(v)
		if err != nil {
			return nil, svdErrorf(opJacobi, err)
		}

		return &Factorization[T]{U: narrow[T](u), S: s, Vt: narrow[T](vh)}, nil
	}

	// Wide input: decompose m^H = U'·diag(S)·V'^H, so m = V'·diag(S)·U'^H.
	w := widen(m, true)
	u, s, v, err := jacobiKernel(w, tol, sweeps)
	if err != nil {
		return nil, svdErrorf(opJacobi, err)
	}
	uh, err := dense.ConjTranspose(u)
	if err != nil {
		return nil, svdErrorf(opJacobi, err)
	}

	return &Factorization[T]{U: narrow[T](v), S: s, Vt: narrow[T](uh)}, nil
}

// jacobiKernel runs one-sided Jacobi on a tall (rows ≥ cols) complex128
// working matrix w, overwriting it. It returns the normalized left factor
// (which is w itself), the column norms, and the accumulated right factor V
// (not yet conjugate-transposed).
func jacobiKernel(w *dense.Matrix[complex128], tol float64, maxSweeps int) (*dense.Matrix[complex128], []float64, *dense.Matrix[complex128], error) {
	rows, cols := w.Rows(), w.Cols()
	v, err := dense.Identity[complex128](cols)
	if err != nil {
		return nil, nil, nil, err
	}
	wraw, vraw := w.Raw(), v.Raw()

	converged := false
	for sweep := 0; sweep < maxSweeps && !converged; sweep++ {
		rotated := false
		for p := 0; p < cols-1; p++ {
			for q := p + 1; q < cols; q++ {
				var alpha, beta float64
				var gamma complex128
				for i := 0; i < rows; i++ {
					wp := wraw[i*cols+p]
					wq := wraw[i*cols+q]
					alpha += real(wp)*real(wp) + imag(wp)*imag(wp)
					beta += real(wq)*real(wq) + imag(wq)*imag(wq)
					gamma += cmplx.Conj(wp) * wq
				}
				off := cmplx.Abs(gamma)
				// sqrt(α)·sqrt(β), not sqrt(α·β): the product can overflow.
				if off <= tol*math.Sqrt(alpha)*math.Sqrt(beta) {
					continue
				}
				rotated = true

				// Fold the phase of γ into column q; the 2×2 Gram block
				// becomes real symmetric [[α, |γ|], [|γ|, β]].
				conjRho := cmplx.Conj(gamma / complex(off, 0))

				// Classical Jacobi angle for the folded block.
				tau := (beta - alpha) / (2 * off)
				t := math.Copysign(1, tau) / (math.Abs(tau) + math.Sqrt(1+tau*tau))
				c := 1 / math.Sqrt(1+t*t)
				cc := complex(c, 0)
				sc := complex(t*c, 0)

				rotatePair(wraw, rows, cols, p, q, conjRho, cc, sc)
				rotatePair(vraw, cols, cols, p, q, conjRho, cc, sc)
			}
		}
		converged = !rotated
	}
	if !converged {
		return nil, nil, nil, fmt.Errorf("after %d sweeps: %w", maxSweeps, ErrNoConvergence)
	}

	// Column norms become singular values; columns normalize into U.
	s := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			wj := wraw[i*cols+j]
			sum += real(wj)*real(wj) + imag(wj)*imag(wj)
		}
		s[j] = math.Sqrt(sum)
		if s[j] == 0 {
			// Zero column: the singular value is 0 and any unit vector keeps
			// U well-formed; use the canonical basis column.
			wraw[j*cols+j] = 1
			continue
		}
		inv := complex(1/s[j], 0)
		for i := 0; i < rows; i++ {
			wraw[i*cols+j] *= inv
		}
	}

	return w, s, v, nil
}

// rotatePair applies the phase fold and the (c, s) rotation to columns p and
// q of a row-major rows×cols buffer.
func rotatePair(raw []complex128, rows, cols, p, q int, conjRho, cc, sc complex128) {
	for i := 0; i < rows; i++ {
		xp := raw[i*cols+p]
		xq := raw[i*cols+q] * conjRho
		raw[i*cols+p] = cc*xp - sc*xq
		raw[i*cols+q] = sc*xp + cc*xq
	}
}

// widen copies m (conjugate-transposed when transpose is set) into a fresh
// complex128 matrix.
func widen[T dense.Scalar](m *dense.Matrix[T], transpose bool) *dense.Matrix[complex128] {
	rows, cols := m.Rows(), m.Cols()
	src := m.Raw()
	if !transpose {
		out, _ := dense.New[complex128](rows, cols)
		dst := out.Raw()
		for i := range src {
			dst[i] = dense.ToComplex(src[i])
		}

		return out
	}
	out, _ := dense.New[complex128](cols, rows)
	dst := out.Raw()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = cmplx.Conj(dense.ToComplex(src[i*cols+j]))
		}
	}

	return out
}

// narrow converts a complex128 matrix back to the caller's element type.
// For real T the imaginary parts are exact zeros by construction.
func narrow[T dense.Scalar](m *dense.Matrix[complex128]) *dense.Matrix[T] {
	out, _ := dense.New[T](m.Rows(), m.Cols())
	src, dst := m.Raw(), out.Raw()
	for i := range src {
		dst[i] = dense.FromComplex[T](src[i])
	}

	return out
}
