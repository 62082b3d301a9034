// SPDX-License-Identifier: MIT
// Package dense: generic dense matrix value and element-type helpers.
// This file defines ONLY the Matrix container, its constructors/accessors,
// and the Scalar helper functions shared by every kernel. Arithmetic kernels
// live in impl_kernels.go / impl_inverse.go; norms and comparisons in norms.go.

package dense

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Scalar enumerates the element types the dense layer (and everything built
// on top of it) supports: the four machine-precision real/complex fields.
// Singular values and tolerances are always expressed as float64 regardless
// of T; Eps reports the unit roundoff of T's underlying real field.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Matrix is a dense, row-major matrix over a Scalar element type.
//
// The zero value is not usable; construct via New, FromSlice, Identity or
// Reshape. Shape is immutable after construction (Reshape returns a possibly
// new value). Element access goes through At/Set (bounds-checked, error
// returning) or through Raw for kernel-grade flat access.
type Matrix[T Scalar] struct {
	rows, cols int // shape; both strictly positive for a constructed Matrix
	data       []T // row-major backing, len == rows*cols
}

// New allocates a zeroed rows×cols matrix.
//
// Returns ErrBadShape when rows <= 0 or cols <= 0.
func New[T Scalar](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New %dx%d: %w", rows, cols, ErrBadShape)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// FromSlice builds a rows×cols matrix from a row-major value slice.
// The slice is copied; the caller keeps ownership of values.
//
// Returns ErrBadShape for non-positive dimensions and ErrBadLength when
// len(values) != rows*cols.
func FromSlice[T Scalar](rows, cols int, values []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("FromSlice %dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("FromSlice: got %d values for %dx%d: %w", len(values), rows, cols, ErrBadLength)
	}
	out := &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	copy(out.data, values)

	return out, nil
}

// Identity allocates the n×n identity matrix.
//
// Returns ErrBadShape when n <= 0.
func Identity[T Scalar](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	one := FromReal[T](1)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Reshape returns a rows×cols matrix reusing m's backing storage when its
// capacity suffices, allocating otherwise. Contents after Reshape are
// unspecified; callers are expected to overwrite every entry. m may be nil,
// in which case Reshape is equivalent to New.
//
// This is the preallocation hook used by workspace-carrying callers to avoid
// per-step allocations across long simulation loops.
func Reshape[T Scalar](m *Matrix[T], rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Reshape %dx%d: %w", rows, cols, ErrBadShape)
	}
	if m == nil || cap(m.data) < rows*cols {
		return New[T](rows, cols)
	}
	m.rows, m.cols = rows, cols
	m.data = m.data[:rows*cols]

	return m, nil
}

// Rows reports the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns the element at (i, j).
//
// Returns ErrOutOfRange when the index falls outside the matrix.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, fmt.Errorf("At(%d,%d) of %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return m.data[m.idx(i, j)], nil
}

// Set stores v at (i, j).
//
// Returns ErrOutOfRange when the index falls outside the matrix.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d) of %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	m.data[m.idx(i, j)] = v

	return nil
}

// Raw exposes the row-major backing slice. Mutations through the slice are
// visible in the matrix; the slice must not be resized. Kernels and provider
// bridges use Raw to avoid per-element indirection — everyday callers should
// prefer At/Set.
func (m *Matrix[T]) Raw() []T { return m.data }

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)

	return out
}

// String renders the matrix row by row, one line per row. Intended for
// debugging and examples, not for serialization.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", m.data[m.idx(i, j)])
		}
		b.WriteByte(']')
	}

	return b.String()
}

// idx maps (i, j) to the flat row-major offset. Callers guarantee bounds.
func (m *Matrix[T]) idx(i, j int) int { return i*m.cols + j }

// FromReal converts a float64 into T. For complex T the value becomes the
// real part with zero imaginary part. The Go spec forbids direct float→complex
// conversion of non-constants across a union, hence this helper.
func FromReal[T Scalar](v float64) T {
	return FromComplex[T](complex(v, 0))
}

// FromComplex converts a complex128 into T. For real T the imaginary part is
// discarded — callers use this only where that part is structurally zero
// (e.g. rotation phases over a real field).
func FromComplex[T Scalar](v complex128) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(real(v))
	case *float64:
		*p = real(v)
	case *complex64:
		*p = complex64(v)
	case *complex128:
		*p = v
	}

	return out
}

// Conj returns the complex conjugate of x; for real T it returns x unchanged.
func Conj[T Scalar](x T) T {
	switch v := any(x).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(cmplx.Conj(v)).(T)
	default:
		return x
	}
}

// Abs returns the modulus of x as a float64.
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float32:
		return math.Abs(float64(v))
	case float64:
		return math.Abs(v)
	case complex64:
		return cmplx.Abs(complex128(v))
	case complex128:
		return cmplx.Abs(v)
	}

	return 0
}

// ToComplex widens x to complex128, the common accumulator type for
// phase-sensitive reductions.
func ToComplex[T Scalar](x T) complex128 {
	switch v := any(x).(type) {
	case float32:
		return complex(float64(v), 0)
	case float64:
		return complex(v, 0)
	case complex64:
		return complex128(v)
	case complex128:
		return v
	}

	return 0
}

// Eps reports the unit roundoff of T's underlying real field:
// 2⁻²³ for float32/complex64, 2⁻⁵² for float64/complex128.
func Eps[T Scalar]() float64 {
	var zero T
	switch any(zero).(type) {
	case float32, complex64:
		return 0x1p-23
	default:
		return 0x1p-52
	}
}
