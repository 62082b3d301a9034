// Benchmarks for the stabilized operations. Every op is dominated by its
// provider decompositions, so sizes stay small enough for CI while still
// showing the allocating-vs-Into difference.
package stable_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/stablesvd/dense"
	"github.com/katalvlaran/stablesvd/stable"
	"github.com/katalvlaran/stablesvd/svd"
)

// sinks to defeat dead-code elimination
var (
	sinkFact  *svd.Factorization[float64]
	sinkDense *dense.Matrix[float64]
)

// benchSpectrum returns n singular values decaying harmonically from
// floor+top to the floor — well-conditioned enough that no inverse
// benchmark can trip the guard.
func benchSpectrum(floor, top float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = floor + top/float64(i+1)
	}

	return s
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	p := svd.Gonum{}
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(fixedSeed))
			fa, _ := randFactorization[float64](b, p, rng, n, n)
			fb, _ := randFactorization[float64](b, p, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := stable.Multiply(p, fa, fb)
				if err != nil {
					b.Fatal(err)
				}
				sinkFact = f
			}
		})
	}
}

func BenchmarkMultiplyInto(b *testing.B) {
	b.ReportAllocs()
	p := svd.Gonum{}
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(fixedSeed))
			fa, _ := randFactorization[float64](b, p, rng, n, n)
			fb, _ := randFactorization[float64](b, p, rng, n, n)
			dst, err := svd.NewFactorization[float64](n, n, n)
			if err != nil {
				b.Fatal(err)
			}
			ws := &stable.Workspace[float64]{}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := stable.MultiplyInto(dst, p, fa, fb, ws); err != nil {
					b.Fatal(err)
				}
			}
			sinkFact = dst
		})
	}
}

func BenchmarkInverseOnePlus(b *testing.B) {
	b.ReportAllocs()
	p := svd.Gonum{}
	for _, variant := range []stable.Variant{stable.VariantPlain, stable.VariantLoh} {
		for _, n := range []int{32, 64} {
			b.Run(fmt.Sprintf("%s_n=%d", variant, n), func(b *testing.B) {
				rng := rand.New(rand.NewSource(fixedSeed))
				f := spectrumFactorization[float64](b, p, rng, benchSpectrum(0, 0.9, n)...)
				dst, err := svd.NewFactorization[float64](n, n, n)
				if err != nil {
					b.Fatal(err)
				}
				ws := &stable.Workspace[float64]{}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := stable.InverseOnePlusInto(dst, p, f, variant, ws); err != nil {
						b.Fatal(err)
					}
				}
				sinkFact = dst
			})
		}
	}
}

func BenchmarkInverseSum(b *testing.B) {
	b.ReportAllocs()
	p := svd.Gonum{}
	for _, n := range []int{32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(fixedSeed))
			// Every singular value of A exceeds all of B, so A+B stays
			// invertible whatever bases the seeds produce.
			fa := spectrumFactorization[float64](b, p, rng, benchSpectrum(2, 6, n)...)
			fb := spectrumFactorization[float64](b, p, rng, benchSpectrum(0, 0.5, n)...)
			dst, err := svd.NewFactorization[float64](n, n, n)
			if err != nil {
				b.Fatal(err)
			}
			ws := &stable.Workspace[float64]{}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := stable.InverseSumInto(dst, p, fa, fb, ws); err != nil {
					b.Fatal(err)
				}
			}
			sinkFact = dst
		})
	}
}

func BenchmarkProduct(b *testing.B) {
	b.ReportAllocs()
	p := svd.Gonum{}
	const n, links = 64, 5
	rng := rand.New(rand.NewSource(fixedSeed))
	fs := make([]*svd.Factorization[float64], links)
	for i := range fs {
		fs[i], _ = randFactorization[float64](b, p, rng, n, n)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, err := stable.Product(p, fs...)
		if err != nil {
			b.Fatal(err)
		}
		sinkFact = f
	}
}

func BenchmarkMultiplyDense(b *testing.B) {
	b.ReportAllocs()
	p := svd.Gonum{}
	const n = 64
	rng := rand.New(rand.NewSource(fixedSeed))
	fa, _ := randFactorization[float64](b, p, rng, n, n)
	fb, _ := randFactorization[float64](b, p, rng, n, n)
	dst, err := dense.New[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	ws := &stable.Workspace[float64]{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := stable.MultiplyDenseInto(dst, p, fa, fb, ws); err != nil {
			b.Fatal(err)
		}
	}
	sinkDense = dst
}
