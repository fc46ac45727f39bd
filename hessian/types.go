package hessian

// Func is the objective: it maps a point to a single real value, typically
// ln p(x) up to an additive constant. The slice it receives is a private
// scratch copy; f may read it freely but must not retain it.
//
// A non-nil error aborts the estimate and is returned to the caller as is.
type Func func(x []float64) (float64, error)

// Pure adapts an objective that cannot fail.
func Pure(f func(x []float64) float64) Func {
	return func(x []float64) (float64, error) { return f(x), nil }
}

// ScalarPoint lifts a bare scalar to a 1-dimensional point.
func ScalarPoint(x float64) []float64 { return []float64{x} }

type stepKind uint8

const (
	stepUnset stepKind = iota
	stepUniform
	stepPerAxis
)

// Step holds the finite-difference step sizes. Build it with Uniform or
// PerAxis; the zero value is rejected with ErrNoStep.
type Step struct {
	kind   stepKind
	scalar float64
	axes   []float64
}

// Uniform uses the same step h on every axis.
func Uniform(h float64) Step {
	return Step{kind: stepUniform, scalar: h}
}

// PerAxis uses h[i] on axis i. The slice is copied.
func PerAxis(h ...float64) Step {
	axes := make([]float64, len(h))
	copy(axes, h)

	return Step{kind: stepPerAxis, axes: axes}
}

// IsUniform reports whether s broadcasts a single step.
func (s Step) IsUniform() bool { return s.kind == stepUniform }

// Sizes expands s to exactly n per-axis step sizes.
//
// Errors: ErrNoStep, *DimensionError (matches ErrInvalidDimension).
func (s Step) Sizes(n int) ([]float64, error) {
	switch s.kind {
	case stepUniform:
		hs := make([]float64, n)
		for i := range hs {
			hs[i] = s.scalar
		}

		return hs, nil
	case stepPerAxis:
		if len(s.axes) != n {
			return nil, &DimensionError{PointLen: n, StepLen: len(s.axes)}
		}
		hs := make([]float64, n)
		copy(hs, s.axes)

		return hs, nil
	default:
		return nil, ErrNoStep
	}
}

// Stats describes the work done by one Estimate call.
type Stats struct {
	Dim         int // N
	Evaluations int // calls into the objective
	CacheHits   int // evaluations answered by the memo (WithMemo only)
}
