package hessian

import "go.uber.org/zap"

// Option configures a single Estimate call.
type Option func(*Options)

// Options is the resolved configuration of an Estimate call.
type Options struct {
	memo           bool
	allowNonFinite bool
	stats          *Stats
	logger         *zap.Logger
}

// WithMemo caches objective values by the exact coordinate vector, so the
// repeated f(x) of the diagonal stencil is evaluated once. The result is
// bit-identical to an un-memoized run.
func WithMemo() Option {
	return func(o *Options) { o.memo = true }
}

// WithStats stores evaluation counters into s when Estimate returns,
// including on error. A nil s is ignored.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.stats = s }
}

// WithLogger attaches a debug logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAllowNonFinite lets NaN and ±Inf entries through into the result
// instead of failing with ErrNonFinite.
func WithAllowNonFinite() Option {
	return func(o *Options) { o.allowNonFinite = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
