package digraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regnet/digraph"
)

func build(t *testing.T, n int, edges [][2]int) *digraph.Digraph {
	t.Helper()
	g := digraph.New(n, digraph.WithLoops())
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.Finalize()

	return g
}

// TestSCC_Empty returns no components for an empty graph.
func TestSCC_Empty(t *testing.T) {
	assert.Empty(t, digraph.StronglyConnectedComponents(digraph.New(0)))
}

// TestSCC_ReverseTopologicalOrder checks grouping and emission order.
func TestSCC_ReverseTopologicalOrder(t *testing.T) {
	// 0 -> 1 <-> 2 -> 3 <-> 4, and 5 isolated
	g := build(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 1}, {2, 3}, {3, 4}, {4, 3}})

	got := digraph.StronglyConnectedComponents(g)
	want := [][]int{{3, 4}, {1, 2}, {0}, {5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

// TestSCC_LongChain exercises the explicit stack on a deep path.
func TestSCC_LongChain(t *testing.T) {
	const n = 100000
	g := digraph.New(n)
	for v := 0; v+1 < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}
	require.NoError(t, g.AddEdge(n-1, 0))
	g.Finalize()

	comps := digraph.StronglyConnectedComponents(g)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], n)
}

// TestRecurrent keeps cycles and self-loops only.
func TestRecurrent(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {1, 0}, {1, 2}, {3, 3}, {2, 4}})

	got := digraph.Recurrent(g)
	want := [][]int{{0, 1}, {3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recurrent mismatch (-want +got):\n%s", diff)
	}
}
