package covariance

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hesscov/hessian"
	"github.com/katalvlaran/hesscov/matrix"
)

// Estimate returns −H⁻¹ where H is the finite-difference Hessian of f at x
// with steps h.
//
// Errors are returned as produced: hessian input errors, the objective's own
// error verbatim, or ErrSingular from the inverter.
func Estimate(f hessian.Func, x []float64, h hessian.Step, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	hopts := make([]hessian.Option, 0, len(o.hessianOpts)+1)
	hopts = append(hopts, hessian.WithLogger(o.logger))
	hopts = append(hopts, o.hessianOpts...)

	hess, err := hessian.Estimate(f, x, h, hopts...)
	if err != nil {
		return nil, err
	}

	return derive(hess, o)
}

// FromHessian returns −inv(H) for an already computed Hessian.
// A nil inv selects GonumInverter.
func FromHessian(hess matrix.Matrix, inv Inverter, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if inv != nil {
		o.inverter = inv
	}

	return derive(hess, o)
}

func derive(hess matrix.Matrix, o options) (*matrix.Dense, error) {
	inv, err := o.inverter.Invert(hess)
	if err != nil {
		o.logger.Debug("hessian inversion failed",
			zap.String("inverter", fmt.Sprintf("%T", o.inverter)), zap.Error(err))

		return nil, err
	}
	cov, err := matrix.Negate(inv)
	if err != nil {
		return nil, err
	}
	if o.requirePD {
		if _, err = CheckPositiveDefinite(cov); err != nil {
			o.logger.Debug("covariance rejected", zap.Error(err))

			return nil, err
		}
	}
	o.logger.Debug("covariance derived",
		zap.String("inverter", fmt.Sprintf("%T", o.inverter)),
		zap.Int("dim", cov.Rows()),
	)

	return cov, nil
}
