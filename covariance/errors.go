package covariance

import (
	"errors"

	"github.com/katalvlaran/hesscov/matrix"
)

var (
	// ErrSingular reports a Hessian that could not be inverted. It is the
	// same sentinel as matrix.ErrSingular.
	ErrSingular = matrix.ErrSingular

	// ErrUnknownInverter is returned by InverterByName.
	ErrUnknownInverter = errors.New("covariance: unknown inverter")
)
