// SPDX-License-Identifier: MIT
// Package dense: arithmetic kernels over Matrix[T].
// Allocation policy: value-returning kernels allocate a fresh result and never
// mutate operands; Into-kernels write into a caller-owned destination and state
// their aliasing rule explicitly. Diagonal scale/divide kernels mutate their
// single matrix argument in place — they exist for transient intermediates.

package dense

import "fmt"

// Operation tags used for error wrapping (see denseErrorf).
const (
	opMul           = "Mul"
	opMulInto       = "MulInto"
	opAdd           = "Add"
	opAddInto       = "AddInto"
	opAddDiag       = "AddDiag"
	opConjTranspose = "ConjTranspose"
	opScaleRows     = "ScaleRows"
	opScaleCols     = "ScaleCols"
	opDivRows       = "DivRows"
	opDivCols       = "DivCols"
	opDivOuter      = "DivOuter"
	opCopyInto      = "CopyInto"
	opInverse       = "Inverse"
	opDet           = "Det"
)

// denseErrorf wraps an underlying error with the given operation tag.
func denseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sameBacking reports whether two constructed matrices share backing storage.
// Used by Into-kernels whose loops would corrupt an aliased destination.
func sameBacking[T Scalar](a, b *Matrix[T]) bool {
	return len(a.data) > 0 && len(b.data) > 0 && &a.data[0] == &b.data[0]
}

// Mul computes the matrix product a·b into a fresh matrix.
//
// Implementation:
//  1. Validate operands (non-nil, a.Cols == b.Rows).
//  2. Allocate the rows(a)×cols(b) result.
//  3. Accumulate with the i-k-j loop order over the flat row-major slices, so
//     the inner loop walks both the result row and the b row contiguously.
//
// Inputs: a (m×k), b (k×n); neither is mutated.
// Returns: fresh m×n product, or ErrNilMatrix / ErrDimensionMismatch.
// Determinism: fixed loop order; bitwise-identical results across runs.
// Complexity: O(m·k·n) time, O(m·n) extra memory.
func Mul[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, denseErrorf(opMul, err)
	}
	dst, err := New[T](a.rows, b.cols)
	if err != nil {
		return nil, denseErrorf(opMul, err)
	}
	mulKernel(dst, a, b)

	return dst, nil
}

// MulInto computes dst = a·b into a caller-owned destination.
// dst must be rows(a)×cols(b) and must not share storage with a or b.
//
// Returns ErrNilMatrix, ErrDimensionMismatch, or ErrAliased.
func MulInto[T Scalar](dst, a, b *Matrix[T]) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return denseErrorf(opMulInto, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return denseErrorf(opMulInto, err)
	}
	if dst.rows != a.rows || dst.cols != b.cols {
		return denseErrorf(opMulInto,
			fmt.Errorf("dst %dx%d, want %dx%d: %w", dst.rows, dst.cols, a.rows, b.cols, ErrDimensionMismatch))
	}
	if sameBacking(dst, a) || sameBacking(dst, b) {
		return denseErrorf(opMulInto, ErrAliased)
	}
	mulKernel(dst, a, b)

	return nil
}

// mulKernel is the shared i-k-j product loop. Shapes are pre-validated.
func mulKernel[T Scalar](dst, a, b *Matrix[T]) {
	var (
		m = a.rows
		k = a.cols
		n = b.cols
	)
	for i := range dst.data {
		dst.data[i] = 0
	}
	for i := 0; i < m; i++ {
		arow := a.data[i*k : (i+1)*k]
		drow := dst.data[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			aip := arow[p]
			if aip == 0 {
				continue
			}
			brow := b.data[p*n : (p+1)*n]
			for j := 0; j < n; j++ {
				drow[j] += aip * brow[j]
			}
		}
	}
}

// Add computes the elementwise sum a + b into a fresh matrix.
//
// Returns ErrNilMatrix or ErrDimensionMismatch.
func Add[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, denseErrorf(opAdd, err)
	}
	dst, err := New[T](a.rows, a.cols)
	if err != nil {
		return nil, denseErrorf(opAdd, err)
	}
	for i := range a.data {
		dst.data[i] = a.data[i] + b.data[i]
	}

	return dst, nil
}

// AddInto computes dst = a + b elementwise. dst must match the operand shape;
// dst MAY alias a or b (the loop is purely elementwise), which is the basis of
// accumulate-in-place call sites such as AddInto(x, x, y).
//
// Returns ErrNilMatrix or ErrDimensionMismatch.
func AddInto[T Scalar](dst, a, b *Matrix[T]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return denseErrorf(opAddInto, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return denseErrorf(opAddInto, err)
	}
	if dst.rows != a.rows || dst.cols != a.cols {
		return denseErrorf(opAddInto,
			fmt.Errorf("dst %dx%d, want %dx%d: %w", dst.rows, dst.cols, a.rows, a.cols, ErrDimensionMismatch))
	}
	for i := range a.data {
		dst.data[i] = a.data[i] + b.data[i]
	}

	return nil
}

// AddDiag adds a real diagonal in place: m[i,i] += s[i] for square m.
//
// Returns ErrNilMatrix, ErrNonSquare, or ErrBadLength.
func AddDiag[T Scalar](m *Matrix[T], s []float64) error {
	if err := ValidateSquare(m); err != nil {
		return denseErrorf(opAddDiag, err)
	}
	if err := ValidateVecLen(s, m.rows); err != nil {
		return denseErrorf(opAddDiag, err)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+i] += FromReal[T](s[i])
	}

	return nil
}

// ConjTranspose computes the conjugate transpose mᴴ into a fresh matrix
// (plain transpose over real element types).
//
// Implementation:
//  1. Validate m.
//  2. Allocate the cols×rows result.
//  3. Walk m row-major, scattering conjugated entries column-major into the
//     result; the read side stays contiguous, which wins for row-major data.
//
// Returns ErrNilMatrix.
// Complexity: O(m·n) time, O(m·n) extra memory.
func ConjTranspose[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opConjTranspose, err)
	}
	dst, err := New[T](m.cols, m.rows)
	if err != nil {
		return nil, denseErrorf(opConjTranspose, err)
	}
	conjTransposeKernel(dst, m)

	return dst, nil
}

// ConjTransposeInto computes dst = mᴴ into a caller-owned destination.
// dst must be cols(m)×rows(m) and must not share storage with m.
//
// Returns ErrNilMatrix, ErrDimensionMismatch, or ErrAliased.
func ConjTransposeInto[T Scalar](dst, m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(opConjTranspose, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return denseErrorf(opConjTranspose, err)
	}
	if dst.rows != m.cols || dst.cols != m.rows {
		return denseErrorf(opConjTranspose,
			fmt.Errorf("dst %dx%d, want %dx%d: %w", dst.rows, dst.cols, m.cols, m.rows, ErrDimensionMismatch))
	}
	if sameBacking(dst, m) {
		return denseErrorf(opConjTranspose, ErrAliased)
	}
	conjTransposeKernel(dst, m)

	return nil
}

func conjTransposeKernel[T Scalar](dst, m *Matrix[T]) {
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, v := range row {
			dst.data[j*dst.cols+i] = Conj(v)
		}
	}
}

// ScaleRows rescales m in place: m[i,j] *= s[i] (left-multiplication by
// diag(s)). s carries real scale factors even over complex fields.
//
// Returns ErrNilMatrix or ErrBadLength.
func ScaleRows[T Scalar](m *Matrix[T], s []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(s, m.rows); err != nil {
		return denseErrorf(opScaleRows, err)
	}
	for i := 0; i < m.rows; i++ {
		si := FromReal[T](s[i])
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range row {
			row[j] *= si
		}
	}

	return nil
}

// ScaleCols rescales m in place: m[i,j] *= s[j] (right-multiplication by
// diag(s)).
//
// Returns ErrNilMatrix or ErrBadLength.
func ScaleCols[T Scalar](m *Matrix[T], s []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(s, m.cols); err != nil {
		return denseErrorf(opScaleCols, err)
	}
	var sj T
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range row {
			sj = FromReal[T](s[j])
			row[j] *= sj
		}
	}

	return nil
}

// DivRows divides m in place: m[i,j] /= s[i]. The divide is performed
// directly (not by multiplying with a reciprocal) to avoid a second rounding.
//
// Returns ErrNilMatrix, ErrBadLength, or ErrZeroDivisor.
func DivRows[T Scalar](m *Matrix[T], s []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(opDivRows, err)
	}
	if err := ValidateVecLen(s, m.rows); err != nil {
		return denseErrorf(opDivRows, err)
	}
	if err := ValidateDivisors(s); err != nil {
		return denseErrorf(opDivRows, err)
	}
	for i := 0; i < m.rows; i++ {
		si := FromReal[T](s[i])
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range row {
			row[j] /= si
		}
	}

	return nil
}

// DivCols divides m in place: m[i,j] /= s[j].
//
// Returns ErrNilMatrix, ErrBadLength, or ErrZeroDivisor.
func DivCols[T Scalar](m *Matrix[T], s []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(opDivCols, err)
	}
	if err := ValidateVecLen(s, m.cols); err != nil {
		return denseErrorf(opDivCols, err)
	}
	if err := ValidateDivisors(s); err != nil {
		return denseErrorf(opDivCols, err)
	}
	var sj T
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range row {
			sj = FromReal[T](s[j])
			row[j] /= sj
		}
	}

	return nil
}

// DivOuter divides m in place by the outer product of two positive scale
// vectors: m[i,j] /= (rdiv[i] · cdiv[j]). This is the single fused rescale
// step of the scale-separated sum inversion; the denominator is formed in
// float64 before one conversion and one division in T.
//
// Returns ErrNilMatrix, ErrBadLength, or ErrZeroDivisor.
func DivOuter[T Scalar](m *Matrix[T], rdiv, cdiv []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(opDivOuter, err)
	}
	if err := ValidateVecLen(rdiv, m.rows); err != nil {
		return denseErrorf(opDivOuter, err)
	}
	if err := ValidateVecLen(cdiv, m.cols); err != nil {
		return denseErrorf(opDivOuter, err)
	}
	if err := ValidateDivisors(rdiv); err != nil {
		return denseErrorf(opDivOuter, err)
	}
	if err := ValidateDivisors(cdiv); err != nil {
		return denseErrorf(opDivOuter, err)
	}
	var d T
	for i := 0; i < m.rows; i++ {
		ri := rdiv[i]
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range row {
			d = FromReal[T](ri * cdiv[j])
			row[j] /= d
		}
	}

	return nil
}

// CopyInto copies src into dst. Shapes must match exactly; dst MAY alias src
// (the copy then degenerates to a no-op over shared storage).
//
// Returns ErrNilMatrix or ErrDimensionMismatch.
func CopyInto[T Scalar](dst, src *Matrix[T]) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return denseErrorf(opCopyInto, err)
	}
	copy(dst.data, src.data)

	return nil
}
