// SPDX-License-Identifier: MIT
// Package dense: square-matrix inversion and determinant via LU with partial
// pivoting. The stabilized operators only ever invert small, well-conditioned
// intermediates through this path; everything ill-conditioned stays factored.

package dense

import (
	"errors"
	"fmt"
)

// luFactor factors m in place with partial pivoting: P·A = L·U, L unit lower
// triangular stored below the diagonal, U on and above it. piv records the
// permuted row order (piv[i] = original index of the row now at position i)
// and sign the permutation parity (+1/-1).
//
// Returns ErrSingular when a pivot column is exactly zero.
func luFactor[T Scalar](m *Matrix[T]) (piv []int, sign int, err error) {
	n := m.rows
	piv = make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign = 1

	for col := 0; col < n; col++ {
		// Pivot search: largest modulus in the remaining column.
		p := col
		best := Abs(m.data[col*n+col])
		for r := col + 1; r < n; r++ {
			if a := Abs(m.data[r*n+col]); a > best {
				best, p = a, r
			}
		}
		if best == 0 {
			return nil, 0, fmt.Errorf("pivot column %d: %w", col, ErrSingular)
		}
		if p != col {
			swapRows(m, p, col)
			piv[p], piv[col] = piv[col], piv[p]
			sign = -sign
		}
		// Eliminate below the pivot, storing multipliers in the L slots.
		pivVal := m.data[col*n+col]
		for r := col + 1; r < n; r++ {
			m.data[r*n+col] /= pivVal
			f := m.data[r*n+col]
			if f == 0 {
				continue
			}
			urow := m.data[col*n : col*n+n]
			rrow := m.data[r*n : r*n+n]
			for c := col + 1; c < n; c++ {
				rrow[c] -= f * urow[c]
			}
		}
	}

	return piv, sign, nil
}

func swapRows[T Scalar](m *Matrix[T], a, b int) {
	ra := m.data[a*m.cols : (a+1)*m.cols]
	rb := m.data[b*m.cols : (b+1)*m.cols]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Inverse returns the inverse of the square matrix m.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Decompose): P·A = L·U with partial pivoting on a working copy.
//	Stage 3 (Solve): for each identity column eⱼ, solve L·y = P·eⱼ then
//	        U·x = y, scattering x into column j of the result.
//
// Inputs: m (n×n); not mutated.
// Returns: fresh n×n inverse, or ErrNilMatrix / ErrNonSquare / ErrSingular.
// Determinism: fixed pivot tie-breaking (first maximal row) and loop order.
// Complexity: O(n³) time, O(n²) memory.
//
// AI-Hints:
//   - Do not feed this a matrix whose singular values span many decades; keep
//     it factored and go through the stabilized inverses instead.
//   - ErrSingular means an exactly zero pivot column, not mere bad
//     conditioning; near-singular inputs return finite garbage like any LU.
func Inverse[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	// Stage 1: validate input shape.
	if err := ValidateSquare(m); err != nil {
		return nil, denseErrorf(opInverse, err)
	}
	n := m.rows

	// Stage 2: pivoted LU on a working copy.
	lu := m.Clone()
	piv, _, err := luFactor(lu)
	if err != nil {
		return nil, denseErrorf(opInverse, err)
	}

	// Stage 3: column-by-column triangular solves.
	inv, err := New[T](n, n)
	if err != nil {
		return nil, denseErrorf(opInverse, err)
	}
	var (
		y   = make([]T, n)
		x   = make([]T, n)
		one = FromReal[T](1)
	)
	for j := 0; j < n; j++ {
		// Forward: L·y = P·eⱼ (unit lower triangular).
		for i := 0; i < n; i++ {
			var v T
			if piv[i] == j {
				v = one
			}
			row := lu.data[i*n : i*n+n]
			for k := 0; k < i; k++ {
				v -= row[k] * y[k]
			}
			y[i] = v
		}
		// Backward: U·x = y.
		for i := n - 1; i >= 0; i-- {
			v := y[i]
			row := lu.data[i*n : i*n+n]
			for k := i + 1; k < n; k++ {
				v -= row[k] * x[k]
			}
			x[i] = v / row[i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+j] = x[i]
		}
	}

	return inv, nil
}

// Det returns the determinant of the square matrix m through the same pivoted
// LU factorization as Inverse: parity · ∏ diag(U). A matrix with an exactly
// zero pivot column yields determinant zero, not an error.
//
// Returns ErrNilMatrix or ErrNonSquare.
func Det[T Scalar](m *Matrix[T]) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, denseErrorf(opDet, err)
	}
	lu := m.Clone()
	_, sign, err := luFactor(lu)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return zero, nil
		}
		return zero, denseErrorf(opDet, err)
	}
	det := FromReal[T](float64(sign))
	n := m.rows
	for i := 0; i < n; i++ {
		det *= lu.data[i*n+i]
	}

	return det, nil
}
