package phase

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/regnet/metrics"
)

// Option configures domain graph construction.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	metrics   *metrics.Registry
	strict    bool
	baseSpace bool
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger sets the logger for build summaries and labelling warnings.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records construction statistics into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) {
		o.metrics = r
	}
}

// WithStrictLabelling turns labelling inconsistencies around sliver domains
// into ErrInconsistentLabelling instead of warnings.
func WithStrictLabelling() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithBaseSpace ignores self repression and builds the graph over the base
// phase space only.
func WithBaseSpace() Option {
	return func(o *options) {
		o.baseSpace = true
	}
}
