package network_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regnet/network"
)

// TestCanonical renders canonical order and parses back to itself.
func TestCanonical(t *testing.T) {
	net, err := network.Parse(mixedSpec + "f : (e) (~a) : yes\n")
	require.NoError(t, err)

	want := "a :\nb :\nc :\nd :\ne : <-d> + [b, ~c] + c + e + a b\nf : ~a e : E\n"
	assert.Equal(t, want, net.Canonical())

	again, err := network.Parse(net.Canonical())
	require.NoError(t, err)
	assert.Equal(t, want, again.Canonical())
	if diff := cmp.Diff(net.Edges(), again.Edges()); diff != "" {
		t.Errorf("edges mismatch (-first +second):\n%s", diff)
	}
}

// TestCanonical_Ecology keeps negative terms and signs after a decay scope.
func TestCanonical_Ecology(t *testing.T) {
	eco := network.WithModel(network.ModelEcology)
	net, err := network.Parse("a :\nb :\nc :\nd : d + <a - b> - c", eco)
	require.Error(t, err, "decay scope must lead")

	net, err = network.Parse("a :\nb :\nc :\nd : <-b + a> - c + d", eco)
	require.NoError(t, err)

	want := "a :\nb :\nc :\nd : <-b + a> - c + d\n"
	assert.Equal(t, want, net.Canonical())

	again, err := network.Parse(want, eco)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, again.TermSigns(3))
	assert.Equal(t, net.TermSigns(3), again.TermSigns(3))
	assert.Equal(t, net.DecaySign(3), again.DecaySign(3))
}

// TestMarshalJSON mirrors the nested name/logic/outputs layout.
func TestMarshalJSON(t *testing.T) {
	net, err := network.Parse("a : ~b\nb : a")
	require.NoError(t, err)

	data, err := json.Marshal(net)
	require.NoError(t, err)
	assert.JSONEq(t, `[["a",[["~b"]],["b"]],["b",[["a"]],["a"]]]`, string(data))
	assert.Equal(t, string(data), net.String())
}

// TestText_RoundTrip restores a network from its specification text.
func TestText_RoundTrip(t *testing.T) {
	net, err := network.Parse(mixedSpec)
	require.NoError(t, err)

	text, err := net.MarshalText()
	require.NoError(t, err)

	var restored network.Network
	require.NoError(t, restored.UnmarshalText(text))
	assert.Equal(t, net.Canonical(), restored.Canonical())
	assert.Equal(t, net.Specification(), restored.Specification())

	assert.Error(t, restored.UnmarshalText([]byte("a : zz")))
}

// TestGraphviz checks arrowheads, dashed PTM edges and theme fallback.
func TestGraphviz(t *testing.T) {
	net, err := network.Parse("a :\nb : ~a")
	require.NoError(t, err)

	want := "digraph {\n" +
		"bgcolor = aliceblue;\n" +
		"\"a\" [style=filled fillcolor=beige];\n" +
		"\"b\" [style=filled fillcolor=beige];\n" +
		"\"a\" -> \"b\" [color=black arrowhead=tee style=solid];\n" +
		"}\n"
	assert.Equal(t, want, net.Graphviz())
	assert.Equal(t, want, net.Graphviz("white"))

	net, err = network.Parse("a :\nb :\nc : [a, b] + a")
	require.NoError(t, err)
	dot := net.Graphviz("white", "grey", "red", "green")
	assert.Contains(t, dot, "\"a\" -> \"c\" [color=green arrowhead=normal style=dashed];")
	assert.Contains(t, dot, "\"b\" -> \"c\" [color=green arrowhead=normal style=dashed];")
	assert.Contains(t, dot, "\"a\" -> \"c\" [color=red arrowhead=normal style=solid];")
}
