// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels (unexported; see api.go).
//
// Both kernels require identical shapes and walk elements in fixed i→j order
// (flat order on the *Dense fast path).

package matrix

import "math"

// ewAllClose checks |a-b| ≤ atol + rtol*|b| for every element.
// Returns (true,nil) when all elements pass, (false,nil) on the first violation.
// NaN never passes; equal infinities pass.
//
// Policy: rtol/atol are used as |rtol|/|atol|; NaN/Inf tolerances → ErrNaNInf.
// Complexity: Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opClose, err)
	}

	near := func(av, bv float64) bool {
		if av == bv { // covers equal infinities
			return true
		}

		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !near(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !near(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewFracDiff returns out[i,j] = (a[i,j] - b[i,j]) / b[i,j].
// A zero reference entry yields ±Inf or NaN in out, so out is allocated with
// the finite-only policy switched off.
// Complexity: Time O(r*c), Space O(r*c).
func ewFracDiff(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opFrac, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDenseWithOptions(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opFrac, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				out.data[idx] = (da.data[idx] - db.data[idx]) / db.data[idx]
			}

			return out, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opFrac, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opFrac, err)
			}
			out.data[i*c+j] = (av - bv) / bv
		}
	}

	return out, nil
}

// ewMaxAbs returns max |m[i,j]|, NaN if any entry is NaN.
func ewMaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	r, c := m.Rows(), m.Cols()
	best := 0.0
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = m.At(i, j)
			if math.IsNaN(v) {
				return math.NaN(), nil
			}
			if av := math.Abs(v); av > best {
				best = av
			}
		}
	}

	return best, nil
}
