package dense_test

import (
	"fmt"

	"github.com/katalvlaran/stablesvd/dense"
)

////////////////////////////////////////////////////////////////////////////////
// Kernel Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleMul multiplies two 2×2 integer-valued matrices.
//
//	| 1 2 |   | 5 6 |   | 19 22 |
//	| 3 4 | · | 7 8 | = | 43 50 |
func ExampleMul() {
	a, _ := dense.FromSlice(2, 2, []float64{1, 2, 3, 4})
	b, _ := dense.FromSlice(2, 2, []float64{5, 6, 7, 8})

	c, _ := dense.Mul(a, b)
	fmt.Println(c)
	// Output:
	// [19 22]
	// [43 50]
}

// ExampleConjTranspose conjugate-transposes a 1×2 complex matrix.
func ExampleConjTranspose() {
	m, _ := dense.FromSlice(1, 2, []complex128{complex(1, 2), complex(3, -1)})

	h, _ := dense.ConjTranspose(m)
	fmt.Println(h)
	// Output:
	// [(1-2i)]
	// [(3+1i)]
}

// ExampleDivOuter rescales every entry by the outer product of two vectors:
// m[i,j] ← m[i,j] / (rdiv[i]·cdiv[j]). Powers of two keep the output exact.
func ExampleDivOuter() {
	m, _ := dense.FromSlice(2, 2, []float64{8, 16, 32, 64})

	_ = dense.DivOuter(m, []float64{2, 4}, []float64{1, 2})
	fmt.Println(m)
	// Output:
	// [4 4]
	// [8 8]
}

////////////////////////////////////////////////////////////////////////////////
// Inverse & Comparison Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleInverse inverts a unit upper-triangular matrix; the result is exact.
func ExampleInverse() {
	m, _ := dense.FromSlice(2, 2, []float64{1, 1, 0, 1})

	inv, _ := dense.Inverse(m)
	fmt.Println(inv)
	// Output:
	// [1 -1]
	// [0 1]
}

// ExampleAllClose compares two matrices under an absolute tolerance.
func ExampleAllClose() {
	a, _ := dense.FromSlice(1, 2, []float64{1, 2})
	b, _ := dense.FromSlice(1, 2, []float64{1, 2.25})

	loose, _ := dense.AllClose(a, b, 0, 0.5)
	tight, _ := dense.AllClose(a, b, 0, 0.1)
	fmt.Println(loose, tight)
	// Output:
	// true false
}
