package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Stage labels used by BuildDuration.
const (
	StageParse       = "parse"
	StageDomainGraph = "domain_graph"
)

// Space labels used by DomainGraphsBuilt.
const (
	SpaceBase     = "base"
	SpaceExtended = "extended"
)

// Registry holds the collectors for network parsing and domain graph
// construction. All Record methods are safe on a nil *Registry, so callers
// that do not care about metrics can pass nil around.
type Registry struct {
	// Parsing
	NetworksParsed prometheus.Counter
	NodesParsed    prometheus.Counter
	ParseErrors    *prometheus.CounterVec

	// Phase space
	DomainGraphsBuilt    *prometheus.CounterVec
	Domains              prometheus.Counter
	NonRegularDomains    prometheus.Counter
	LabelInconsistencies prometheus.Counter

	BuildDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a Registry backed by its own prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initParseMetrics()
	r.initPhaseMetrics()
	return r
}

// Gatherer exposes the underlying prometheus registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
