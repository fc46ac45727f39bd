package selftest

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/hesscov/covariance"
	"github.com/katalvlaran/hesscov/hessian"
	"github.com/katalvlaran/hesscov/matrix"
)

// DefaultStep is the finite-difference step of the worked example.
const DefaultStep = 1e-3

// symmetryTol bounds |cov[i,j] − cov[j,i]| of the measured covariance.
const symmetryTol = 1e-6

// ErrInvalidConfig reports an unusable Config.
var ErrInvalidConfig = errors.New("selftest: invalid config")

// Config selects how the example is run.
type Config struct {
	Step         float64             // uniform step; must be finite and > 0
	Inverter     covariance.Inverter // nil selects covariance.GonumInverter
	InverterName string              // label for reports; derived from Inverter when empty
	Memo         bool                // forward hessian.WithMemo
	Logger       *zap.Logger         // nil selects a no-op logger
}

// DefaultConfig returns the parameters of the worked example.
func DefaultConfig() Config {
	return Config{
		Step:         DefaultStep,
		Inverter:     covariance.GonumInverter{},
		InverterName: covariance.InverterGonum,
	}
}

// TrueCovariance returns a fresh copy of the example's Σ.
func TrueCovariance() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows([][]float64{
		{400, 0.2, 0.1},
		{0.2, 2, 0.2},
		{0.1, 0.2, 1},
	})
}

// Mode returns the example's mean μ, which is also the mode of f.
func Mode() []float64 { return []float64{1, 2, 3} }

// Objective returns f(x) = exp(−½ χ²(x)) for the Gaussian N(mode, cov).
func Objective(mode []float64, cov matrix.Matrix) (hessian.Func, error) {
	prec, err := covariance.GonumInverter{}.Invert(cov)
	if err != nil {
		return nil, fmt.Errorf("selftest: precision matrix: %w", err)
	}
	n := len(mode)
	if prec.Rows() != n {
		return nil, fmt.Errorf("%w: mode has %d coordinates, covariance is %dx%d",
			ErrInvalidConfig, n, prec.Rows(), prec.Cols())
	}
	mu := append([]float64(nil), mode...)

	return func(x []float64) (float64, error) {
		d := make([]float64, n)
		for i := range d {
			d[i] = x[i] - mu[i]
		}
		pd, err := matrix.MatVec(prec, d)
		if err != nil {
			return 0, err
		}
		chi2 := 0.0
		for i := range d {
			chi2 += d[i] * pd[i]
		}

		return math.Exp(-0.5 * chi2), nil
	}, nil
}

// Run executes the worked example.
func Run(cfg Config) (*Report, error) {
	if math.IsNaN(cfg.Step) || math.IsInf(cfg.Step, 0) || cfg.Step <= 0 {
		return nil, fmt.Errorf("%w: step must be a positive finite number, got %v", ErrInvalidConfig, cfg.Step)
	}
	if cfg.Inverter == nil {
		cfg.Inverter = covariance.GonumInverter{}
	}
	if cfg.InverterName == "" {
		cfg.InverterName = fmt.Sprintf("%T", cfg.Inverter)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	truth, err := TrueCovariance()
	if err != nil {
		return nil, err
	}
	f, err := Objective(Mode(), truth)
	if err != nil {
		return nil, err
	}

	var st hessian.Stats
	hopts := []hessian.Option{hessian.WithStats(&st), hessian.WithLogger(cfg.Logger)}
	if cfg.Memo {
		hopts = append(hopts, hessian.WithMemo())
	}
	hess, err := hessian.Estimate(f, Mode(), hessian.Uniform(cfg.Step), hopts...)
	if err != nil {
		return nil, fmt.Errorf("selftest: estimate: %w", err)
	}
	meas, err := covariance.FromHessian(hess, cfg.Inverter, covariance.WithLogger(cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("selftest: estimate: %w", err)
	}
	residual, err := InverseResidual(hess, meas)
	if err != nil {
		return nil, fmt.Errorf("selftest: residual: %w", err)
	}
	if err = matrix.ValidateSymmetric(meas, symmetryTol); err != nil {
		return nil, fmt.Errorf("selftest: measured covariance: %w", err)
	}

	eigs, err := covariance.Eigenvalues(meas)
	if err != nil {
		return nil, fmt.Errorf("selftest: measured covariance: %w", err)
	}

	corr, sd, err := matrix.Correlation(meas)
	if err != nil {
		return nil, fmt.Errorf("selftest: correlation: %w", err)
	}

	frac, err := matrix.FracDiff(meas, truth)
	if err != nil {
		return nil, fmt.Errorf("selftest: frac diff: %w", err)
	}

	r := &Report{
		Step:        cfg.Step,
		Inverter:    cfg.InverterName,
		True:        truth,
		Hessian:     hess,
		Measured:    meas,
		Residual:    residual,
		FracDiff:    frac,
		Eigenvalues: eigs,
		StdDev:      sd,
		Correlation: corr,
		Stats:       st,
	}
	worst, _ := r.MaxFracDiff()
	cfg.Logger.Info("self-test finished",
		zap.Float64("step", cfg.Step),
		zap.String("inverter", cfg.InverterName),
		zap.Int("evaluations", st.Evaluations),
		zap.Int("cache_hits", st.CacheHits),
		zap.Float64("max_frac_diff", worst),
		zap.Float64("inverse_residual", residual),
	)

	return r, nil
}

// InverseResidual returns max |(H·cov + I)ᵢⱼ|, how far cov is from −H⁻¹.
// The inverters promise an inverse, not its accuracy; this measures it.
func InverseResidual(hess, cov matrix.Matrix) (float64, error) {
	p, err := matrix.Mul(hess, cov)
	if err != nil {
		return 0, err
	}

	worst := 0.0
	n := p.Rows()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < p.Cols(); j++ {
			if v, err = p.At(i, j); err != nil {
				return 0, err
			}
			if i == j {
				v++
			}
			worst = math.Max(worst, math.Abs(v))
		}
	}

	return worst, nil
}
