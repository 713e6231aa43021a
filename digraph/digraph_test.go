package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regnet/digraph"
)

// TestNew_NegativeSize verifies that a negative size yields an empty graph.
func TestNew_NegativeSize(t *testing.T) {
	g := digraph.New(-3)
	assert.Equal(t, 0, g.Size())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_Validation covers endpoint and loop checks.
func TestAddEdge_Validation(t *testing.T) {
	g := digraph.New(2)
	assert.ErrorIs(t, g.AddEdge(0, 2), digraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 0), digraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(1, 1), digraph.ErrLoopNotAllowed)
	require.NoError(t, g.AddEdge(0, 1))

	loopy := digraph.New(1, digraph.WithLoops())
	assert.True(t, loopy.Loops())
	require.NoError(t, loopy.AddEdge(0, 0))
	assert.True(t, loopy.HasEdge(0, 0))
}

// TestFinalize_SortsAndDeduplicates checks adjacency normalization.
func TestFinalize_SortsAndDeduplicates(t *testing.T) {
	g := digraph.New(4)
	for _, w := range []int{3, 1, 3, 2, 1} {
		require.NoError(t, g.AddEdge(0, w))
	}
	assert.Equal(t, 5, g.EdgeCount())
	assert.False(t, g.Finalized())

	g.Finalize()
	g.Finalize()
	assert.True(t, g.Finalized())
	adj, err := g.Adjacencies(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, adj)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 0))
	assert.False(t, g.HasEdge(9, 0))
}

// TestFinalize_FreezesGraph ensures mutations fail after Finalize.
func TestFinalize_FreezesGraph(t *testing.T) {
	g := digraph.New(2)
	g.Finalize()
	assert.ErrorIs(t, g.AddEdge(0, 1), digraph.ErrFinalized)
	_, err := g.AddVertex()
	assert.ErrorIs(t, err, digraph.ErrFinalized)
	assert.ErrorIs(t, g.Resize(5), digraph.ErrFinalized)
}

// TestResize grows the vertex set and rejects shrinking.
func TestResize(t *testing.T) {
	g := digraph.New(1)
	require.NoError(t, g.Resize(3))
	assert.Equal(t, 3, g.Size())
	assert.ErrorIs(t, g.Resize(2), digraph.ErrBadSize)

	v, err := g.AddVertex()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 4, g.Size())
}

// TestAdjacencies_ReturnsCopy verifies callers cannot alter the graph.
func TestAdjacencies_ReturnsCopy(t *testing.T) {
	g := digraph.New(2)
	require.NoError(t, g.AddEdge(0, 1))
	g.Finalize()

	adj, err := g.Adjacencies(0)
	require.NoError(t, err)
	adj[0] = 0
	assert.True(t, g.HasEdge(0, 1))

	_, err = g.Adjacencies(7)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
	_, err = g.OutDegree(-1)
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

// TestTranspose reverses edges and keeps the finalized flag.
func TestTranspose(t *testing.T) {
	g := digraph.New(3, digraph.WithLoops())
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddEdge(2, 2))
	g.Finalize()

	tr := g.Transpose()
	assert.True(t, tr.Finalized())
	adj, err := tr.Adjacencies(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, adj)
	assert.True(t, tr.HasEdge(2, 2))
	assert.Equal(t, g.EdgeCount(), tr.EdgeCount())
}

// TestStats counts sinks and loops.
func TestStats(t *testing.T) {
	g := digraph.New(3, digraph.WithLoops())
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 1))
	g.Finalize()

	assert.Equal(t, digraph.Stats{
		Vertices:  3,
		Edges:     2,
		SelfLoops: 1,
		Sinks:     1,
		Finalized: true,
	}, g.Stats())
}

// TestFormatting covers DOT and JSON-like renderings.
func TestFormatting(t *testing.T) {
	g := digraph.New(2)
	require.NoError(t, g.AddEdge(1, 0))
	g.Finalize()

	assert.Equal(t, "digraph {\n  0;\n  1;\n  1 -> 0;\n}\n", g.Graphviz())
	assert.Equal(t, "[[],[0]]", g.String())
}
