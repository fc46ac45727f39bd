// Package matrix_test provides benchmarks for the kernels used by the
// covariance pipeline, on deterministic diagonally dominant inputs.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hesscov/matrix"
)

// benchSizes are Hessian dimensions typical for small parametric models.
var benchSizes = []int{4, 16, 64}

// sink defeats dead-code elimination.
var sinkM matrix.Matrix

// dominantDense builds an n×n matrix with |A[i,i]| > Σ|A[i,j]|, which keeps
// the non-pivoting LU away from zero pivots.
func dominantDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vals[i*n+j] = rng.Float64() - 0.5
		}
		vals[i*n+i] = float64(n)
	}
	m, err := matrix.NewDenseFrom(n, n, vals)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := dominantDense(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := dominantDense(b, n, 11)
			B := dominantDense(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
