package phase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/regnet/digraph"
	"github.com/katalvlaran/regnet/network"
	"github.com/katalvlaran/regnet/parameter"
	"github.com/katalvlaran/regnet/phase"
)

func fixed(t *testing.T, spec string, labelling []uint64, orders []parameter.Order) *parameter.Fixed {
	t.Helper()
	net, err := network.Parse(spec)
	require.NoError(t, err)
	p, err := parameter.New(net, labelling, orders)
	require.NoError(t, err)

	return p
}

func adjacency(t *testing.T, g *digraph.Digraph) [][]int {
	t.Helper()
	out := make([][]int, g.Size())
	for v := range out {
		adj, err := g.Adjacencies(v)
		require.NoError(t, err)
		out[v] = append([]int{}, adj...)
	}

	return out
}

// TestNew_NilParameter rejects missing collaborators.
func TestNew_NilParameter(t *testing.T) {
	_, err := phase.New(nil)
	assert.ErrorIs(t, err, phase.ErrNilParameter)

	_, err = phase.New((*parameter.Fixed)(nil))
	assert.ErrorIs(t, err, phase.ErrNilParameter)
}

// TestNew_BaseSpace covers a network without self repression.
func TestNew_BaseSpace(t *testing.T) {
	p := fixed(t, "x : x", []uint64{2, 2, 0}, nil)
	dg, err := phase.New(p)
	require.NoError(t, err)

	assert.False(t, dg.Extended())
	assert.Equal(t, 3, dg.Size())
	assert.Equal(t, 3, dg.BaseSize())
	assert.Equal(t, 0, dg.NonRegular())
	assert.Empty(t, dg.SelfRepressors())
	assert.Equal(t, [][]int{{1}, {2}, {2}}, adjacency(t, dg.Digraph()))
	assert.True(t, dg.Attracting(2))
	assert.Equal(t, uint64(2), dg.Label(0))

	left, right := dg.Walls(0)
	assert.Equal(t, []bool{false}, left)
	assert.Equal(t, []bool{true}, right)
}

// TestNew_SelfRepressorSliver resolves the sliver between the doubled threshold.
func TestNew_SelfRepressorSliver(t *testing.T) {
	p := fixed(t, "x : ~x", []uint64{2, 1, 1}, []parameter.Order{{0, 1}})

	dg, err := phase.New(p)
	require.NoError(t, err)
	assert.True(t, dg.Extended())
	assert.Equal(t, 4, dg.Size())
	assert.Equal(t, 3, dg.BaseSize())
	assert.Equal(t, []int{0}, dg.SelfRepressors())
	pos, ok := dg.SelfThreshold(0)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	assert.Equal(t, [][]int{{1}, {1}, {1}, {2}}, adjacency(t, dg.Digraph()))
	assert.True(t, dg.Attracting(1))
	assert.Equal(t, 1, dg.NonRegular())

	_, ok = dg.RegularDomain(1)
	assert.False(t, ok)
	reg, ok := dg.RegularDomain(3)
	assert.True(t, ok)
	assert.Equal(t, 2, reg)
	d, ok := dg.FirstSelfThreshold(1)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
	_, ok = dg.FirstSelfThreshold(0)
	assert.False(t, ok)

	base, err := phase.New(p, phase.WithBaseSpace())
	require.NoError(t, err)
	assert.False(t, base.Extended())
	out, err := base.Digraph().OutDegree(0)
	require.NoError(t, err)
	assert.Zero(t, out, "both sides of the self threshold absorb")
}

// TestNew_SelfThresholdFollowsOrder moves the sliver with the order.
func TestNew_SelfThresholdFollowsOrder(t *testing.T) {
	p := fixed(t, "x : ~x", []uint64{2, 1, 1}, []parameter.Order{{1, 0}})

	dg, err := phase.New(p)
	require.NoError(t, err)
	pos, _ := dg.SelfThreshold(0)
	assert.Equal(t, 1, pos)
	d, ok := dg.FirstSelfThreshold(2)
	assert.True(t, ok)
	assert.Equal(t, 0, d)

	left, right := dg.Walls(2)
	assert.Equal(t, []bool{true}, left)
	assert.Equal(t, []bool{false}, right)
	assert.Equal(t, [][]int{{}, {}, {1}, {2}}, adjacency(t, dg.Digraph()))
}

// TestNew_LabellingSize guards against a parameter for another network.
func TestNew_LabellingSize(t *testing.T) {
	_, err := phase.New(stub{fixed(t, "x : ~x", []uint64{2, 1, 1}, nil)})
	assert.ErrorIs(t, err, phase.ErrLabellingSize)
}

// stub drops the last label of an otherwise valid parameter.
type stub struct{ *parameter.Fixed }

func (s stub) Labelling() []uint64 {
	l := s.Fixed.Labelling()
	return l[:len(l)-1]
}

// selfRepressorSuite shares the two-node network x : ~x, y : x.
type selfRepressorSuite struct {
	suite.Suite
	dg *phase.DomainGraph
}

func (s *selfRepressorSuite) SetupTest() {
	// x flows right below its top threshold; y flows up from row 0 only
	labelling := []uint64{12, 12, 12, 8, 4, 4, 4, 0}
	p := fixed(s.T(), "x : ~x\ny : x", labelling, nil)
	dg, err := phase.New(p)
	s.Require().NoError(err)
	s.dg = dg
}

func TestSelfRepressorSuite(t *testing.T) {
	suite.Run(t, new(selfRepressorSuite))
}

func (s *selfRepressorSuite) TestShape() {
	s.Equal(2, s.dg.Dimension())
	s.Equal(8, s.dg.BaseSize())
	s.Equal(10, s.dg.Size(), "5/4 of the base domains")
	s.Equal(2, s.dg.NonRegular())
	s.Equal(0, s.dg.Inconsistencies())
	s.Equal([]int{1, 1}, s.dg.Coordinates(6))
	s.Nil(s.dg.Coordinates(10))
}

func (s *selfRepressorSuite) TestTransitions() {
	want := [][]int{
		{1, 5}, {2, 6}, {3, 7}, {4, 8}, {9},
		{6}, {7}, {8}, {9}, {9},
	}
	s.Equal(want, adjacency(s.T(), s.dg.Digraph()))
	s.Equal(14, s.dg.Digraph().EdgeCount())
}

func (s *selfRepressorSuite) TestSliverWalls() {
	left, right := s.dg.Walls(1)
	s.Equal([]bool{false, false}, left)
	s.Equal([]bool{true, true}, right)
	s.Equal(uint64(12), s.dg.Label(1))
	s.Equal(uint64(4), s.dg.Label(6))
}

func (s *selfRepressorSuite) TestDirectionAndRegulator() {
	dim := s.dg.Dimension()
	s.Equal(0, s.dg.Direction(2, 3))
	s.Equal(1, s.dg.Direction(2, 7))
	s.Equal(0, s.dg.Direction(0, 2), "regular projections are adjacent")
	s.Equal(dim, s.dg.Direction(0, 1), "sliver")
	s.Equal(dim, s.dg.Direction(0, 3), "not adjacent")
	s.Equal(dim, s.dg.Direction(4, 4))

	s.Equal(1, s.dg.Regulator(2, 3))
	s.Equal(0, s.dg.Regulator(0, 2))
	s.Equal(1, s.dg.Regulator(2, 7))
	s.Equal(dim, s.dg.Regulator(0, 1))
}

func (s *selfRepressorSuite) TestEdgeLabel() {
	s.Equal(uint64(8), s.dg.EdgeLabel(2, 3), "increasing across an activating edge")
	s.Equal(uint64(2), s.dg.EdgeLabel(3, 2))
	s.Zero(s.dg.EdgeLabel(0, 2), "self regulation")
	s.Zero(s.dg.EdgeLabel(2, 7), "regulator is the crossing dimension")
	s.Zero(s.dg.EdgeLabel(0, 1))
}

func (s *selfRepressorSuite) TestProjectionPreservesTransitions() {
	base, err := phase.New(fixed(s.T(), "x : ~x\ny : x", []uint64{12, 12, 12, 8, 4, 4, 4, 0}, nil), phase.WithBaseSpace())
	s.Require().NoError(err)
	s.Equal(8, base.Size())

	// ext index of each base domain
	lift := make(map[int]int)
	for dom := 0; dom < s.dg.Size(); dom++ {
		if reg, ok := s.dg.RegularDomain(dom); ok {
			lift[reg] = dom
		}
	}
	s.Len(lift, 8)

	g := base.Digraph()
	for u := 0; u < g.Size(); u++ {
		adj, err := g.Adjacencies(u)
		s.Require().NoError(err)
		for _, v := range adj {
			if d := base.Direction(u, v); d == 0 && min(u, v)%4 == 0 {
				continue // crosses the doubled self threshold
			}
			s.True(s.dg.Digraph().HasEdge(lift[u], lift[v]), "base edge %d -> %d", u, v)
		}
	}
}

// TestNew_InconsistentLabelling warns by default and fails when strict.
func TestNew_InconsistentLabelling(t *testing.T) {
	// row 0 of x disagrees on the y wall across the self threshold
	labelling := []uint64{12, 4, 4, 0, 4, 4, 4, 0}
	p := fixed(t, "x : ~x\ny : x", labelling, nil)

	core, logs := observer.New(zap.WarnLevel)
	dg, err := phase.New(p, phase.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 1, dg.Inconsistencies())
	assert.Equal(t, 1, logs.FilterMessage("inconsistent labelling around sliver domain").Len())

	_, err = phase.New(p, phase.WithStrictLabelling())
	assert.ErrorIs(t, err, phase.ErrInconsistentLabelling)
}
