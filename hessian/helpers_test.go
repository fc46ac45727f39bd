package hessian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hesscov/hessian"
)

// covTrue and xMean are the 3-D Gaussian used across the packages' tests.
var (
	covTrue = [][]float64{
		{400, 0.2, 0.1},
		{0.2, 2, 0.2},
		{0.1, 0.2, 1},
	}
	xMean = []float64{1, 2, 3}
)

// gaussianLogDensity returns ln p(x) + const = −½ (x−μ)ᵀ Σ⁻¹ (x−μ).
func gaussianLogDensity(t *testing.T, mean []float64, cov [][]float64) (hessian.Func, *mat.Dense) {
	t.Helper()

	n := len(mean)
	sigma := mat.NewDense(n, n, nil)
	for i := range cov {
		sigma.SetRow(i, cov[i])
	}
	var prec mat.Dense
	require.NoError(t, prec.Inverse(sigma))

	f := hessian.Pure(func(x []float64) float64 {
		d := make([]float64, n)
		for i := range d {
			d[i] = x[i] - mean[i]
		}
		dv := mat.NewVecDense(n, d)

		return -0.5 * mat.Inner(dv, &prec, dv)
	})

	return f, &prec
}

// counted wraps f and counts every call into it.
func counted(f hessian.Func, calls *int) hessian.Func {
	return func(x []float64) (float64, error) {
		*calls++

		return f(x)
	}
}

// smooth is a non-quadratic function with non-zero mixed partials.
func smooth(x []float64) float64 {
	return math.Sin(x[0])*math.Exp(x[1]) + x[0]*x[2]*x[2]*x[2] + math.Cos(x[1]*x[2])
}

func expectedEvaluations(n int) int { return 3*n + 2*n*(n-1) }
