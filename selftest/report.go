package selftest

import (
	"fmt"
	"io"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/hesscov/hessian"
	"github.com/katalvlaran/hesscov/matrix"
)

// Report is the outcome of Run.
type Report struct {
	Step     float64
	Inverter string
	True     *matrix.Dense // Σ
	Hessian  *matrix.Dense // H at the mode
	Measured *matrix.Dense // −H⁻¹
	FracDiff *matrix.Dense // (Measured − True) / True
	// Residual is max |H·Measured + I|; see InverseResidual.
	Residual float64
	// Eigenvalues of Measured, ascending; all > 0 for a proper covariance.
	Eigenvalues []float64
	// StdDev and Correlation restate Measured as σᵢ and Pearson ρᵢⱼ.
	StdDev      []float64
	Correlation *matrix.Dense
	Stats       hessian.Stats
}

// Summary aggregates |FracDiff| over all entries.
type Summary struct {
	Max    float64 `json:"max" yaml:"max" toml:"max"`
	Mean   float64 `json:"mean" yaml:"mean" toml:"mean"`
	Median float64 `json:"median" yaml:"median" toml:"median"`
}

// MaxFracDiff returns the largest |FracDiff| entry (NaN if any is NaN).
func (r *Report) MaxFracDiff() (float64, error) {
	return matrix.MaxAbs(r.FracDiff)
}

// Within reports whether every |FracDiff| entry is ≤ tol.
func (r *Report) Within(tol float64) bool {
	worst, err := r.MaxFracDiff()
	if err != nil || math.IsNaN(worst) {
		return false
	}

	return worst <= tol
}

// Summary computes max, mean and median of |FracDiff|.
func (r *Report) Summary() (Summary, error) {
	raw := r.FracDiff.RowMajor()
	abs := make(stats.Float64Data, len(raw))
	for i, v := range raw {
		abs[i] = math.Abs(v)
	}

	var (
		s   Summary
		err error
	)
	if s.Max, err = stats.Max(abs); err != nil {
		return Summary{}, fmt.Errorf("selftest: summary: %w", err)
	}
	if s.Mean, err = stats.Mean(abs); err != nil {
		return Summary{}, fmt.Errorf("selftest: summary: %w", err)
	}
	if s.Median, err = stats.Median(abs); err != nil {
		return Summary{}, fmt.Errorf("selftest: summary: %w", err)
	}

	return s, nil
}

// WriteTo prints the three labelled matrices in the classic layout:
//
//	true cov:
//	[400, 0.2, 0.1]
//	...
//	meas cov:
//	...
//	frac diff:
//	...
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, sec := range r.sections() {
		n, err := fmt.Fprintf(w, "%s:\n%s", sec.title, sec.m.StringWith("%.6g"))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

type section struct {
	title string
	sheet string
	m     *matrix.Dense
}

func (r *Report) sections() []section {
	return []section{
		{title: "true cov", sheet: "true_cov", m: r.True},
		{title: "meas cov", sheet: "meas_cov", m: r.Measured},
		{title: "frac diff", sheet: "frac_diff", m: r.FracDiff},
	}
}
