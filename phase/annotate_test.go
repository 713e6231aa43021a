package phase_test

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regnet/metrics"
	"github.com/katalvlaran/regnet/phase"
)

func (s *selfRepressorSuite) TestAnnotate() {
	cases := []struct {
		region []int
		want   string
	}{
		{[]int{9}, "FP { 4, 1 }"},
		{[]int{0, 1}, "XC {x}"},
		{[]int{0, 5}, "XC {y}"},
		{[]int{0, 6}, "FC"},
	}
	for _, tc := range cases {
		a, err := s.dg.Annotate(tc.region)
		s.Require().NoError(err)
		s.Equal(tc.want, a.String(), "region %v", tc.region)
	}

	a, err := s.dg.Annotate([]int{1, 6})
	s.Require().NoError(err)
	s.Equal(phase.CrossComponent, a.Kind)
	s.Equal([]int{1}, a.Dimensions)

	_, err = s.dg.Annotate(nil)
	s.ErrorIs(err, phase.ErrEmptyRegion)
	_, err = s.dg.Annotate([]int{3, 10})
	s.ErrorIs(err, phase.ErrDomainOutOfRange)
}

// TestAnnotationKind_String covers the short codes.
func TestAnnotationKind_String(t *testing.T) {
	assert.Equal(t, "FP", phase.FixedPoint.String())
	assert.Equal(t, "FC", phase.FullCycle.String())
	assert.Equal(t, "XC", phase.CrossComponent.String())
	assert.Equal(t, "AnnotationKind(7)", phase.AnnotationKind(7).String())
}

// TestNew_Metrics records the space and the sliver count.
func TestNew_Metrics(t *testing.T) {
	reg := metrics.NewRegistry()
	p := fixed(t, "x : ~x", []uint64{2, 1, 1}, nil)

	_, err := phase.New(p, phase.WithMetrics(reg))
	require.NoError(t, err)
	_, err = phase.New(p, phase.WithMetrics(reg), phase.WithBaseSpace())
	require.NoError(t, err)

	for space, want := range map[string]float64{metrics.SpaceBase: 1, metrics.SpaceExtended: 1} {
		counter, err := reg.DomainGraphsBuilt.GetMetricWithLabelValues(space)
		require.NoError(t, err)
		var m dto.Metric
		require.NoError(t, counter.Write(&m))
		assert.Equal(t, want, m.Counter.GetValue(), space)
	}

	var m dto.Metric
	require.NoError(t, reg.Domains.Write(&m))
	assert.Equal(t, 7.0, m.Counter.GetValue())
	m.Reset()
	require.NoError(t, reg.NonRegularDomains.Write(&m))
	assert.Equal(t, 1.0, m.Counter.GetValue())
}
