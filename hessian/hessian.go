package hessian

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hesscov/matrix"
)

// Estimate returns the N×N Hessian of f at x using central differences
// with the step sizes in h.
//
// Algorithm:
//  1. Normalize (x, h) into a private point and N step sizes.
//  2. For each i: H[i,i] = (f(x+hᵢeᵢ) − 2f(x) + f(x−hᵢeᵢ)) / hᵢ².
//  3. For each i < j: H[i,j] = H[j,i] =
//     (f(+hᵢ,+hⱼ) − f(+hᵢ,−hⱼ) − f(−hᵢ,+hⱼ) + f(−hᵢ,−hⱼ)) / (4·hᵢ·hⱼ).
//
// Rows are filled in order; within row i the diagonal comes first, then
// j = i+1 … N−1. The first objective error stops the walk and is returned
// unchanged, with a nil matrix.
//
// By default a NaN or ±Inf entry fails with ErrNonFinite (also matching
// matrix.ErrNaNInf); WithAllowNonFinite stores it instead.
//
// Complexity: 3N + 2N(N−1) evaluations, O(N²) memory.
func Estimate(f Func, x []float64, h Step, opts ...Option) (*matrix.Dense, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	xs, hs, err := Normalize(x, h)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	ev := newEvaluator(f, xs, o.memo)
	if o.stats != nil {
		defer func() { *o.stats = ev.stats }()
	}

	n := len(xs)
	var hess *matrix.Dense
	if o.allowNonFinite {
		hess, err = matrix.NewDenseWithOptions(n, n, matrix.WithNoValidateNaNInf())
	} else {
		hess, err = matrix.NewDense(n, n)
	}
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		v, err := partialII(ev, i, hs[i])
		if err != nil {
			o.logger.Debug("objective failed",
				zap.Int("row", i), zap.Int("col", i), zap.Error(err))

			return nil, err
		}
		if err = store(hess, i, i, v); err != nil {
			return nil, err
		}

		for j := i + 1; j < n; j++ {
			v, err = partialIJ(ev, i, j, hs[i], hs[j])
			if err != nil {
				o.logger.Debug("objective failed",
					zap.Int("row", i), zap.Int("col", j), zap.Error(err))

				return nil, err
			}
			if err = store(hess, i, j, v); err != nil {
				return nil, err
			}
			if err = store(hess, j, i, v); err != nil {
				return nil, err
			}
		}
	}

	o.logger.Debug("hessian estimated",
		zap.Int("dim", n),
		zap.Int("evaluations", ev.stats.Evaluations),
		zap.Int("cache_hits", ev.stats.CacheHits),
		zap.Bool("memo", o.memo),
	)

	return hess, nil
}

// SecondDerivative is the one-dimensional case: f''(x) with step h.
func SecondDerivative(f Func, x, h float64, opts ...Option) (float64, error) {
	hess, err := Estimate(f, ScalarPoint(x), Uniform(h), opts...)
	if err != nil {
		return 0, err
	}

	return hess.At(0, 0)
}

// partialII evaluates the three-point diagonal stencil on axis i.
// Evaluation order: x+h, x, x−h.
func partialII(ev *evaluator, i int, h float64) (float64, error) {
	fp, err := ev.at(i, +h, -1, 0)
	if err != nil {
		return 0, err
	}
	f0, err := ev.at(i, 0, -1, 0)
	if err != nil {
		return 0, err
	}
	fm, err := ev.at(i, -h, -1, 0)
	if err != nil {
		return 0, err
	}

	return (fp - 2*f0 + fm) / (h * h), nil
}

// partialIJ evaluates the four-point mixed stencil on axes i, j.
// Evaluation order: (+,+), (+,−), (−,+), (−,−).
func partialIJ(ev *evaluator, i, j int, hi, hj float64) (float64, error) {
	fpp, err := ev.at(i, +hi, j, +hj)
	if err != nil {
		return 0, err
	}
	fpm, err := ev.at(i, +hi, j, -hj)
	if err != nil {
		return 0, err
	}
	fmp, err := ev.at(i, -hi, j, +hj)
	if err != nil {
		return 0, err
	}
	fmm, err := ev.at(i, -hi, j, -hj)
	if err != nil {
		return 0, err
	}

	return (fpp - fpm - fmp + fmm) / (4 * hi * hj), nil
}

// store writes v into H[i,j], translating the matrix NaN/Inf rejection.
func store(hess *matrix.Dense, i, j int, v float64) error {
	err := hess.Set(i, j, v)
	if err == nil {
		return nil
	}
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%w: H[%d,%d] = %v: %w", ErrNonFinite, i, j, v, err)
	}

	return err
}
