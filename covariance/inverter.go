package covariance

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hesscov/matrix"
)

// Inverter computes the inverse of a square matrix.
// Implementations must not modify m and must report a singular or
// ill-conditioned m with an error matching ErrSingular.
type Inverter interface {
	Invert(m matrix.Matrix) (*matrix.Dense, error)
}

// GonumInverter inverts through gonum.org/v1/gonum/mat.
type GonumInverter struct{}

// Invert implements Inverter.
func (GonumInverter) Invert(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("covariance: gonum inverse: %w", err)
	}
	src, err := toGonum(m)
	if err != nil {
		return nil, fmt.Errorf("covariance: gonum inverse: %w", err)
	}
	n := m.Rows()

	var inv mat.Dense
	if err = inv.Inverse(src); err != nil {
		// err is a mat.Condition; keep it in the chain next to the sentinel.
		return nil, fmt.Errorf("covariance: gonum inverse: %w: %w", ErrSingular, err)
	}

	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data = append(data, inv.At(i, j))
		}
	}

	return matrix.NewDenseFrom(n, n, data)
}

// toGonum copies m into a gonum Dense; *matrix.Dense hands over its buffer
// in one copy, any other Matrix is read through At.
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if dm, ok := m.(*matrix.Dense); ok {
		return mat.NewDense(r, c, dm.RowMajor()), nil
	}

	dst := mat.NewDense(r, c, nil)
	var (
		v   float64
		err error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			dst.Set(i, j, v)
		}
	}

	return dst, nil
}

// DoolittleInverter inverts through matrix.Inverse (LU without pivoting).
type DoolittleInverter struct{}

// Invert implements Inverter.
func (DoolittleInverter) Invert(m matrix.Matrix) (*matrix.Dense, error) {
	return matrix.Inverse(m)
}

// Inverter names accepted by InverterByName.
const (
	InverterGonum     = "gonum"
	InverterDoolittle = "doolittle"
)

// InverterByName maps a configuration string to an Inverter.
// Matching is case-insensitive; the empty string selects the default.
func InverterByName(name string) (Inverter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", InverterGonum:
		return GonumInverter{}, nil
	case InverterDoolittle:
		return DoolittleInverter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInverter, name)
	}
}
