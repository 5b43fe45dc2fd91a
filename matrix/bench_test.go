// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for SmallMatrix kernels at the
// sizes the type is meant for.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/smallmat/matrix"
)

// benchSizes are the square extents benchmarked.
var benchSizes = []int{3, 6, 12}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.SmallMatrix[float64]
	sinkF float64
)

func randMatrix(b *testing.B, n int, seed int64, opts ...matrix.Option) *matrix.SmallMatrix[float64] {
	b.Helper()
	m, err := matrix.New[float64](matrix.MustLayout(n, n, opts...))
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	_ = m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() })

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randMatrix(b, n, 1337)
			y := randMatrix(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Mul(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randMatrix(b, n, 7, matrix.WithRowMajor())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Transpose()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkToHostCopy(b *testing.B) {
	b.ReportAllocs()
	x := randMatrix(b, 6, 99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := x.ToHost(true, matrix.ColMajor)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v.Sum()
	}
}
