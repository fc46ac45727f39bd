// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for kernels (finite data only).
//   • A wrapper that hides *Dense so the generic At/Set paths get exercised.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hesscov/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels onto their generic fallback.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// RandFilledDense returns an r×c *Dense with entries in [-1,1) from a fixed seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// SPDDense returns MᵀM + n·I for a random M: symmetric positive definite and
// well conditioned, so the non-pivoting kernels never meet a zero pivot.
func SPDDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	M := RandFilledDense(t, n, n, seed)
	vals := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc float64
			for k := 0; k < n; k++ {
				acc += MustAt(t, M, k, i) * MustAt(t, M, k, j)
			}
			if i == j {
				acc += float64(n)
			}
			vals[i*n+j] = acc
		}
	}

	return NewFilledDense(t, n, n, vals)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireIdentity asserts m ≈ I within atol.
func RequireIdentity(t *testing.T, m matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDeltaf(t, want, MustAt(t, m, i, j), atol, "entry (%d,%d)", i, j)
		}
	}
}
