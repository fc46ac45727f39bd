package hessian

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates that per-axis step sizes and the point
	// differ in length. The concrete error is a *DimensionError.
	ErrInvalidDimension = errors.New("hessian: step sizes and point have different dimensions")

	// ErrEmptyPoint indicates a zero-dimensional point.
	ErrEmptyPoint = errors.New("hessian: point must have at least one coordinate")

	// ErrNoStep indicates a zero-value Step (neither Uniform nor PerAxis).
	ErrNoStep = errors.New("hessian: step sizes not set; use Uniform or PerAxis")

	// ErrNilFunc indicates a nil objective.
	ErrNilFunc = errors.New("hessian: objective function is nil")

	// ErrNonFinite indicates that a stencil produced NaN or ±Inf while the
	// finite-only policy was active. It also matches matrix.ErrNaNInf.
	ErrNonFinite = errors.New("hessian: non-finite second derivative")
)

// DimensionError reports both lengths of a mismatched PerAxis step.
type DimensionError struct {
	PointLen int // N, the dimension of the point
	StepLen  int // number of per-axis step sizes supplied
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("hessian: h and x have different dimensions: %d %d", e.StepLen, e.PointLen)
}

// Unwrap lets errors.Is(err, ErrInvalidDimension) match.
func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }
