package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initParseMetrics() {
	r.NetworksParsed = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "regnet_networks_parsed_total",
			Help: "Total number of network specifications parsed successfully",
		},
	)

	r.NodesParsed = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "regnet_nodes_parsed_total",
			Help: "Total number of nodes read from parsed specifications",
		},
	)

	r.ParseErrors = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "regnet_parse_errors_total",
			Help: "Total number of rejected network specifications by error kind",
		},
		[]string{"kind"},
	)

	r.BuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "regnet_build_duration_seconds",
			Help:    "Time spent parsing networks and building domain graphs",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"stage"},
	)
}
