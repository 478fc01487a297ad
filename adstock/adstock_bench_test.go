//go:build go1.22

package adstock

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// benchmarkSeries builds a bursty spend series: flights of activity with
// silent periods in between, which is what real media plans look like.
func benchmarkSeries(n int) []float64 {
	rng := rand.New(rand.NewPCG(42, 0))
	x := make([]float64, n)
	for i := range x {
		if rng.Float64() < 0.4 {
			x[i] = rng.Float64() * 1000
		}
	}

	return x
}

func BenchmarkGeometric(b *testing.B) {
	for _, size := range []int{52, 365, 1040} {
		x := benchmarkSeries(size)
		b.Run(fmt.Sprintf("Periods_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Geometric(x, 0.7); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWeibullCDF(b *testing.B) {
	for _, size := range []int{52, 365, 1040} {
		x := benchmarkSeries(size)
		b.Run(fmt.Sprintf("Periods_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Weibull(x, 1.5, 0.05); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWeibullPDF(b *testing.B) {
	for _, size := range []int{52, 365, 1040} {
		x := benchmarkSeries(size)
		b.Run(fmt.Sprintf("Periods_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Weibull(x, 2, 0.1, WithKernelType(KernelPDF)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
