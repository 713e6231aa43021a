package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regnet/digraph"
	"github.com/katalvlaran/regnet/network"
)

const selfRepressorDoc = `network: |
  x : ~x
  y : x
labelling: [12, 12, 12, 8, 4, 4, 4, 0]
`

// run executes a fresh command tree and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestParseCmd_Canonical(t *testing.T) {
	out, err := run(t, "parse", "x : c + ~x\ny : <-y> + [x, ~y]\nc : x")
	require.NoError(t, err)
	assert.Equal(t, "x : ~x + c\ny : <-y> + [x, ~y]\nc : x\n", out)

	path := writeFile(t, "net.txt", "a : ~b\nb : a\n")
	out, err = run(t, "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "a : ~b\nb : a\n", out)
}

func TestParseCmd_JSON(t *testing.T) {
	out, err := run(t, "parse", "--json", "a : ~b\nb : a")
	require.NoError(t, err)
	assert.JSONEq(t, `[["a",[["~b"]],["b"]],["b",[["a"]],["a"]]]`, out)
}

func TestParseCmd_Errors(t *testing.T) {
	_, err := run(t, "parse", "a : b")
	assert.ErrorIs(t, err, network.ErrUnknownNode)

	_, err = run(t, "parse", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, network.ErrUnreadableFile)

	_, err = run(t, "parse")
	assert.Error(t, err)
}

func TestParseCmd_Model(t *testing.T) {
	const spec = "a :\nb : a - b"
	_, err := run(t, "parse", spec)
	assert.ErrorIs(t, err, network.ErrNegativeTerm)

	out, err := run(t, "--model", "ecology", "parse", spec)
	require.NoError(t, err)
	assert.Equal(t, "a :\nb : a - b\n", out)

	cfg := writeFile(t, "regnet.yaml", "model: ecology\n")
	out, err = run(t, "--config", cfg, "parse", spec)
	require.NoError(t, err)
	assert.Equal(t, "a :\nb : a - b\n", out)

	out, err = run(t, "--model", "Ecology", "parse", spec)
	require.NoError(t, err)
	assert.Equal(t, "a :\nb : a - b\n", out)

	_, err = run(t, "--model", "default", "parse", spec)
	assert.ErrorIs(t, err, network.ErrNegativeTerm)
	out, err = run(t, "--model", "default", "parse", "a : ~b\nb : a")
	require.NoError(t, err)
	assert.Equal(t, "a : ~b\nb : a\n", out)

	_, err = run(t, "--model", "boolean", "parse", spec)
	assert.Error(t, err)
}

func TestGraphvizCmd_Theme(t *testing.T) {
	out, err := run(t, "graphviz", "a :\nb : ~a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph {\nbgcolor = aliceblue;\n"), out)

	cfg := writeFile(t, "regnet.yaml", "graphviz:\n  theme: [white, grey, red]\n")
	out, err = run(t, "--config", cfg, "graphviz", "a :\nb : ~a")
	require.NoError(t, err)
	assert.Contains(t, out, "bgcolor = white;")
	assert.Contains(t, out, "\"a\" -> \"b\" [color=red arrowhead=tee style=solid];")
}

func TestDomainGraphCmd_Summary(t *testing.T) {
	doc := writeFile(t, "param.yaml", selfRepressorDoc)

	out, err := run(t, "domaingraph", doc, "--annotate")
	require.NoError(t, err)
	want := "domains: 10 (base 8)\n" +
		"extended: true\n" +
		"self repressors: [x]\n" +
		"non-regular: 2\n" +
		"inconsistencies: 0\n" +
		"edges: 14\n" +
		"[9] FP { 4, 1 }\n"
	assert.Equal(t, want, out)

	out, err = run(t, "domaingraph", doc, "--base-space")
	require.NoError(t, err)
	assert.Contains(t, out, "domains: 8 (base 8)\nextended: false\nself repressors: []\n")
	assert.Contains(t, out, "edges: 11\n")
}

func TestDomainGraphCmd_Formats(t *testing.T) {
	doc := writeFile(t, "param.yaml", selfRepressorDoc)

	out, err := run(t, "domaingraph", doc, "--format", "adjacency")
	require.NoError(t, err)
	assert.Equal(t, "[[1,5],[2,6],[3,7],[4,8],[9],[6],[7],[8],[9],[9]]\n", out)

	out, err = run(t, "domaingraph", doc, "-f", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "4 -> 9;")

	_, err = run(t, "domaingraph", doc, "--format", "svg")
	assert.ErrorContains(t, err, `unknown format "svg"`)
}

func TestDomainGraphCmd_From(t *testing.T) {
	doc := writeFile(t, "param.yaml", selfRepressorDoc)

	out, err := run(t, "domaingraph", doc, "--from", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "reachable from 2: 6 domains\n  [9] via [2 3 4 9]\n"), out)

	_, err = run(t, "domaingraph", doc, "--from", "10")
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

func TestDomainGraphCmd_Strict(t *testing.T) {
	doc := writeFile(t, "param.yaml", strings.Replace(selfRepressorDoc, "[12, 12, 12, 8,", "[12, 4, 4, 0,", 1))
	cfg := writeFile(t, "regnet.yaml", "strict_labelling: true\n")

	out, err := run(t, "domaingraph", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "inconsistencies: 1\n")

	_, err = run(t, "--config", cfg, "domaingraph", doc)
	assert.ErrorContains(t, err, "inconsistent labelling")
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regnet.prom")
	doc := writeFile(t, "param.yaml", selfRepressorDoc)

	_, err := run(t, "--metrics-file", path, "domaingraph", doc)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "regnet_networks_parsed_total 1")
	assert.Contains(t, text, `regnet_domain_graphs_built_total{space="extended"} 1`)
	assert.Contains(t, text, "regnet_domains_total 10")
}

func TestConfig_Missing(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "parse", "a :")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
