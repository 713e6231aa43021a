package network

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/regnet/metrics"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	model       Model
	logger      *zap.Logger
	metrics     *metrics.Registry
	parallelism int
}

func defaultOptions() options {
	return options{
		model:       ModelOriginal,
		logger:      zap.NewNop(),
		parallelism: 1,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithModel selects the grammar variant. Default ModelOriginal.
func WithModel(m Model) Option {
	return func(o *options) {
		o.model = m
	}
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records parse outcomes into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) {
		o.metrics = r
	}
}

// WithParallelism bounds the number of node logics parsed concurrently.
// n <= 0 selects GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}
