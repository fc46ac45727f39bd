// SPDX-License-Identifier: MIT
// Package matrix: statistics derived from a covariance matrix.
//
// Exposed API:
//   - Correlation(C) -> (R, stds) // R[i,j] = C[i,j] / (σᵢ σⱼ), σᵢ = √C[i,i]
//
// Determinism:
//   - Fixed i→j traversal; *Dense input takes the flat-slice path.

package matrix

import "math"

const opCorrelation = "Correlation"

// Correlation converts a covariance matrix into Pearson correlations and the
// per-axis standard deviations.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(C).
//   - Stage 2: σᵢ = √C[i,i]; invσᵢ = 1/σᵢ for σᵢ > 0, else 0.
//   - Stage 3: R[i,j] = C[i,j]·invσᵢ·invσⱼ.
//
// Behavior highlights:
//   - Degenerate axes (C[i,i] ≤ 0) become zero rows/columns in R; their σ is
//     reported as 0 (C[i,i] == 0) or NaN (C[i,i] < 0).
//   - The diagonal of R is exactly 1 on non-degenerate axes.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²), Space O(n²).
func Correlation(C Matrix) (*Dense, []float64, error) {
	if err := ValidateSquareNonNil(C); err != nil {
		return nil, nil, matrixErrorf(opCorrelation, err)
	}
	n := C.Rows()
	src := make([]float64, n*n)
	var i, j int
	if d, ok := C.(*Dense); ok {
		copy(src, d.data)
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				src[i*n+j], _ = C.At(i, j)
			}
		}
	}

	stds := make([]float64, n)
	invStd := make([]float64, n)
	for i = 0; i < n; i++ {
		stds[i] = math.Sqrt(src[i*n+i])
		if stds[i] > 0 {
			invStd[i] = 1.0 / stds[i]
		}
	}

	R, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opCorrelation, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j && invStd[i] != 0 {
				R.data[i*n+j] = 1
				continue
			}
			R.data[i*n+j] = src[i*n+j] * invStd[i] * invStd[j]
		}
	}

	return R, stds, nil
}
