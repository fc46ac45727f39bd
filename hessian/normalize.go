package hessian

// Normalize turns (x, h) into a private copy of the point and exactly
// len(x) per-axis step sizes. The caller's slices are never aliased.
//
// Errors:
//   - ErrEmptyPoint if len(x) == 0.
//   - ErrNoStep if h is the zero Step.
//   - *DimensionError (matches ErrInvalidDimension) if h is PerAxis with a
//     length other than len(x).
func Normalize(x []float64, h Step) (xs, hs []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyPoint
	}
	if hs, err = h.Sizes(len(x)); err != nil {
		return nil, nil, err
	}
	xs = make([]float64, len(x))
	copy(xs, x)

	return xs, hs, nil
}
