package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordParse records one parse attempt. An empty errKind marks a success.
func (r *Registry) RecordParse(nodes int, errKind string, duration time.Duration) {
	if r == nil {
		return
	}
	r.BuildDuration.WithLabelValues(StageParse).Observe(duration.Seconds())
	if errKind != "" {
		r.ParseErrors.WithLabelValues(errKind).Inc()
		return
	}
	r.NetworksParsed.Inc()
	r.NodesParsed.Add(float64(nodes))
}

// RecordDomainGraph records one domain graph construction.
func (r *Registry) RecordDomainGraph(extended bool, domains, nonRegular, inconsistencies int, duration time.Duration) {
	if r == nil {
		return
	}
	space := SpaceBase
	if extended {
		space = SpaceExtended
	}
	r.DomainGraphsBuilt.WithLabelValues(space).Inc()
	r.Domains.Add(float64(domains))
	r.NonRegularDomains.Add(float64(nonRegular))
	r.LabelInconsistencies.Add(float64(inconsistencies))
	r.BuildDuration.WithLabelValues(StageDomainGraph).Observe(duration.Seconds())
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (r *Registry) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
