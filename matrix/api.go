// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points over the canonical kernels.
//   - No loop duplication: each facade composes or forwards.

package matrix

// NewIdentity returns I_n. Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Negate returns -m. It is Scale(m, -1) under an intention-revealing name;
// zeros stay +0.
// Complexity: O(r*c).
func Negate(m Matrix) (*Dense, error) { return Scale(m, -1) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (false,nil) on the first violation; NaN never compares close.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// FracDiff returns the element-wise fractional difference (got-want)/want.
// Zero entries in want produce ±Inf/NaN in the result rather than an error.
func FracDiff(got, want Matrix) (*Dense, error) {
	return ewFracDiff(got, want)
}

// MaxAbs returns the largest |m[i,j]|, or NaN when any entry is NaN.
func MaxAbs(m Matrix) (float64, error) {
	v, err := ewMaxAbs(m)
	if err != nil {
		return 0, matrixErrorf("MaxAbs", err)
	}

	return v, nil
}

// ToRows copies m into a slice of rows, the shape serialisers expect.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j], _ = m.At(i, j)
		}
	}

	return out, nil
}
