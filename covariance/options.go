package covariance

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/hesscov/hessian"
)

// Option configures Estimate and FromHessian.
type Option func(*options)

type options struct {
	inverter    Inverter
	hessianOpts []hessian.Option
	logger      *zap.Logger
	requirePD   bool
}

// WithInverter replaces the default GonumInverter. nil is ignored.
func WithInverter(inv Inverter) Option {
	return func(o *options) {
		if inv != nil {
			o.inverter = inv
		}
	}
}

// WithHessianOptions forwards options to hessian.Estimate.
func WithHessianOptions(opts ...hessian.Option) Option {
	return func(o *options) { o.hessianOpts = append(o.hessianOpts, opts...) }
}

// WithLogger sets the debug logger, also handed down to the estimator.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPositiveDefiniteCheck makes Estimate and FromHessian fail with
// ErrNotPositiveDefinite when the result has an eigenvalue ≤ 0.
func WithPositiveDefiniteCheck() Option {
	return func(o *options) { o.requirePD = true }
}

func gatherOptions(opts ...Option) options {
	o := options{
		inverter: GonumInverter{},
		logger:   zap.NewNop(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
