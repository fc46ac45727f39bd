package covariance

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/hesscov/matrix"
)

// ErrNotPositiveDefinite reports a covariance with an eigenvalue ≤ 0, i.e.
// a Hessian that was not taken at a strict local maximum of ln p.
var ErrNotPositiveDefinite = errors.New("covariance: not positive definite")

const (
	eigenRelTol  = 1e-10
	eigenMaxIter = 10000
)

// Eigenvalues returns the eigenvalues of the symmetric matrix cov in
// ascending order. Asymmetry up to a relative 1e-10 of the largest entry is
// tolerated.
func Eigenvalues(cov matrix.Matrix) ([]float64, error) {
	scale, err := matrix.MaxAbs(cov)
	if err != nil {
		return nil, fmt.Errorf("covariance: eigenvalues: %w", err)
	}
	if math.IsNaN(scale) {
		return nil, fmt.Errorf("covariance: eigenvalues: %w", matrix.ErrNaNInf)
	}
	tol := eigenRelTol * math.Max(scale, 1)

	vals, _, err := matrix.Eigen(cov, tol, eigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("covariance: eigenvalues: %w", err)
	}
	slices.Sort(vals)

	return vals, nil
}

// CheckPositiveDefinite returns the eigenvalues of cov, and
// ErrNotPositiveDefinite alongside them when the smallest is ≤ 0.
func CheckPositiveDefinite(cov matrix.Matrix) ([]float64, error) {
	vals, err := Eigenvalues(cov)
	if err != nil {
		return nil, err
	}
	if vals[0] <= 0 {
		return vals, fmt.Errorf("%w: smallest eigenvalue %g", ErrNotPositiveDefinite, vals[0])
	}

	return vals, nil
}

