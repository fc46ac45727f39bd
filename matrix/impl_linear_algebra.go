// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the covariance pipeline.
//
// Purpose:
//   - Scale (negation of an inverse), Mul (residual checks such as A·A⁻¹ ≈ I),
//     MatVec (quadratic forms), LU and Inverse (Doolittle, no
//     pivoting), Eigen (Jacobi, symmetric input; definiteness checks).
//   - Every kernel validates through validators.go and wraps failures exactly
//     once with its op tag via matrixErrorf.
//
// Determinism:
//   - Fixed loop orders; *Dense operands take a flat-slice fast path, any other
//     Matrix goes through At/Set in the same order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of substitution accumulators.
const ZeroSum = 0.0

// ZeroPivot is the sentinel compared against U[i,i] in LU/Inverse.
const ZeroPivot = 0.0

// Operation name constants for error wrapping.
const (
	opScale     = "Scale"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opEigen     = "Eigen"
	opLU        = "LU"
	opInverse   = "Inverse"
	opFrac      = "FracDiff"
	opClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns alpha*m as a fresh Dense; m is not mutated.
// Zero entries stay +0 whatever the sign of alpha, so Scale(m, -1) never
// prints a "-0".
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense.
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		for idx, v := range dm.data {
			res.data[idx] = v*alpha + 0 // −0 + 0 = +0
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v*alpha + 0
		}
	}

	return res, nil
}

// Mul returns the matrix product a×b as a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  float64
		acc     float64
	)
	// Fast-path: i-k-j order over flat slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: i-j-k through At.
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// LU computes the Doolittle factorization A = L*U, unit diagonal on L, no pivoting.
// Stage 1: validate (non-nil, square); allocate L,U; diag(L)=1.
// Stage 2: for i=0..n-1 build row i of U, check the pivot, then column i of L.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (U[i,i] == 0).
// Complexity: Time O(n^3), Space O(n^2).
//
// Notes:
//   - No pivoting: a matrix with a zero leading minor is reported singular even
//     when it is invertible. Use a pivoting inverter upstream if that matters.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// A is read through aAt so *Dense and wrapped inputs share one loop body.
	aAt := func(i, j int) (float64, error) { return m.At(i, j) }
	if dm, ok := m.(*Dense); ok {
		aAt = func(i, j int) (float64, error) { return dm.data[i*n+j], nil }
	}

	var (
		i, j, k int
		sum, a  float64
		pivot   float64
	)
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0

		// U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			if a, err = aAt(i, j); err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			U.data[i*n+j] = a - sum
		}

		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			if a, err = aAt(j, i); err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			L.data[j*n+i] = (a - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse computes A⁻¹ from the Doolittle factors, one basis column at a time:
// forward-solve L·y = e_col, back-solve U·x = y, write x into column col.
// The input is never mutated.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n^3), Space O(n^2).
//
// Notes:
//   - Singularity is exact zero-pivot detection; nearly singular inputs yield
//     huge but finite entries. Callers needing a conditioning check should
//     use a pivoting LAPACK-backed routine.
func Inverse(m Matrix) (*Dense, error) {
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// L*y = e_col (top-down).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// U*x = y (bottom-up).
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			pivot = U.data[i*n+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// MatVec computes y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if len(x) != cols {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), cols, ErrDimensionMismatch))
	}
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc, base = ZeroSum, i*cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix by
// classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy m into a working Dense A and
//     start Q = I.
//   - Stage 2: pick (p,q) with the largest |A[p,q]| (i→j scan), rotate it to
//     zero, accumulate the rotation into Q. Stop when max|A[p,q]| < tol.
//
// Returns the diagonal of the rotated A (unsorted) and Q whose columns are
// the matching eigenvectors.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed.
// Complexity: Time O(maxIter·n²), Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.Rows()
	a, err := NewDenseWithOptions(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a.data[i*n+j], _ = m.At(i, j)
		}
	}

	maxOffDiag := func() (float64, int, int) {
		var best float64
		var bp, bq int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.data[i*n+j]); off > best {
					best, bp, bq = off, i, j
				}
			}
		}

		return best, bp, bq
	}

	var (
		p, r               int
		maxOff             float64
		app, arr, apr      float64
		aip, air, qip, qir float64
		theta, t, c, s     float64
	)
	for iter := 0; iter < maxIter; iter++ {
		if maxOff, p, r = maxOffDiag(); maxOff < tol {
			break
		}
		app, arr, apr = a.data[p*n+p], a.data[r*n+r], a.data[p*n+r]

		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a.data[i*n+p], a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qir = q.data[i*n+p], q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}
	if maxOff, _, _ = maxOffDiag(); maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
