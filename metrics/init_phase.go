package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPhaseMetrics() {
	r.DomainGraphsBuilt = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "regnet_domain_graphs_built_total",
			Help: "Total number of domain graphs built, by phase space",
		},
		[]string{"space"},
	)

	r.Domains = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "regnet_domains_total",
			Help: "Total number of domains across all built domain graphs",
		},
	)

	r.NonRegularDomains = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "regnet_nonregular_domains_total",
			Help: "Total number of sliver domains across all built domain graphs",
		},
	)

	r.LabelInconsistencies = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "regnet_label_inconsistencies_total",
			Help: "Sliver domains whose neighbours disagreed on an orthogonal wall",
		},
	)
}
