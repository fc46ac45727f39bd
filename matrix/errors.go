// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every error surfaced by this package is one of the sentinels below, possibly
// wrapped with an operation tag ("Inverse: ...", "Dense.Set(1,2): ...").
// Callers MUST match with errors.Is; message text is not part of the contract.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Kernels return sentinels wrapped once with their op tag via matrixErrorf.
//
// ERROR PRIORITY (checked in this order by kernels):
// nil -> shape -> NaN/Inf policy -> numerical (singular pivot).

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes (e.g. Mul with
	// a.Cols != b.Rows, or a row-major buffer of the wrong length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that |A[i,j]-A[j,i]| exceeded the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set under validation, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a zero pivot is met during LU/Inverse.
	// The Doolittle kernels do not pivot, so this is exact-zero detection only.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed is returned when Jacobi sweeps do not drive the largest
	// off-diagonal entry below tol within maxIter rotations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)
