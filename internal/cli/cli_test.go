// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/collector"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/output"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

const demoYAML = `name: demo
matrix:
  - [0, 10, 6, 5]
  - [10, 0, 0, 15]
  - [6, 0, 0, 4]
  - [5, 15, 4, 0]
`

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompute_Pretty(t *testing.T) {
	path := writeFile(t, "demo.yaml", demoYAML)
	out, err := execute(t, "compute", path)
	require.NoError(t, err)
	assert.Equal(t, "Total Weight: 19\nEdges:\n2 -- 3 (weight: 4)\n0 -- 3 (weight: 5)\n0 -- 1 (weight: 10)\n", out)
}

func TestCompute_PrimRootEdges(t *testing.T) {
	path := writeFile(t, "demo.yaml", demoYAML)
	out, err := execute(t, "compute", "--method", "prim", "--root", "1", "--format", "edges", path)
	require.NoError(t, err)
	assert.Equal(t, "[(1, 0), (0, 3), (3, 2)]\n", out)
}

func TestCompute_JSON(t *testing.T) {
	path := writeFile(t, "demo.yaml", demoYAML)
	out, err := execute(t, "compute", "--format", "weight-and-edges", "--json", path)
	require.NoError(t, err)

	var got collector.Totals
	require.NoError(t, jsonAPI.Unmarshal([]byte(out), &got))
	assert.Equal(t, collector.Totals{
		Weight: 19,
		Edges:  []core.Pair{{U: 2, V: 3}, {U: 0, V: 3}, {U: 0, V: 1}},
	}, got)
}

func TestCompute_Errors(t *testing.T) {
	path := writeFile(t, "demo.yaml", demoYAML)

	_, err := execute(t, "compute", "--method", "boruvka", path)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, err = execute(t, "compute", "--format", "xml", path)
	assert.ErrorIs(t, err, output.ErrUnknownFormat)

	_, err = execute(t, "compute", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	asym := writeFile(t, "asym.yaml", "matrix:\n  - [0, 1]\n  - [2, 0]\n")
	_, err = execute(t, "compute", asym)
	assert.NoError(t, err)
	_, err = execute(t, "compute", "--check-symmetry", asym)
	assert.Error(t, err)
}

func TestSweep_Demo(t *testing.T) {
	out, err := execute(t, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "demo-adjacency")
	assert.Contains(t, out, "demo-matrix")
	assert.Contains(t, out, "kruskal/weight 19")
	assert.Contains(t, out, "prim/weights [5, 4, 10] (tree)")
	assert.Contains(t, out, "Total Weight: 19")
	assert.NotContains(t, out, "differ")
}

func TestSweep_ConfigAndFlags(t *testing.T) {
	cfg := writeFile(t, "sweep.toml", "methods = [\"prim\"]\nformats = [\"weight\"]\nparallel = 2\n")

	out, err := execute(t, "sweep", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "prim/weight 19")
	assert.NotContains(t, out, "kruskal/")

	out, err = execute(t, "sweep", "--config", cfg, "--methods", "kruskal")
	require.NoError(t, err)
	assert.Contains(t, out, "kruskal/weight 19")
	assert.NotContains(t, out, "prim/")

	bad := writeFile(t, "bad.toml", "colour = \"blue\"\n")
	_, err = execute(t, "sweep", "--config", bad)
	assert.ErrorContains(t, err, "unknown keys")

	badMethod := writeFile(t, "bad-method.toml", "methods = [\"boruvka\"]\n")
	_, err = execute(t, "sweep", "--config", badMethod)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestSweep_SameGraphNameKeepsBothGraphs(t *testing.T) {
	first := writeFile(t, "g.yaml", demoYAML)
	second := writeFile(t, "g.yaml", "name: demo\nmatrix:\n  - [0, 7]\n  - [7, 0]\n")

	out, err := execute(t, "sweep", "--methods", "kruskal", "--formats", "weight", first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "kruskal/weight 19")
	assert.Contains(t, out, "kruskal/weight 7")
	assert.Contains(t, out, second)
}

func TestUniqueName(t *testing.T) {
	seen := map[string]bool{}
	assert.Equal(t, "demo", uniqueName("demo", "a/g.json", seen))
	assert.Equal(t, "b/g.json", uniqueName("demo", "b/g.json", seen))
	assert.Equal(t, "b/g.json#2", uniqueName("demo", "b/g.json", seen))
	assert.Equal(t, "b/g.json#3", uniqueName("b/g.json", "b/g.json", seen))
}

func TestSweep_JSON(t *testing.T) {
	out, err := execute(t, "sweep", "--json", "--formats", "weight")
	require.NoError(t, err)

	var rep jsonReport
	require.NoError(t, jsonAPI.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Cases, 4)
	for _, c := range rep.Cases {
		assert.Equal(t, "weight", c.Format)
		assert.Equal(t, 19.0, c.Value)
		assert.Empty(t, c.Error)
	}
	assert.Empty(t, rep.Mismatches)
}

func TestGenerate_ThenSweep(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "forest.toml")

	out, err := execute(t, "generate", "--topology", "cycle", "-n", "4", "--components", "2",
		"--integer", "--min-weight", "1", "--max-weight", "9", "--seed", "3", "-o", graph)
	require.NoError(t, err)
	assert.Contains(t, out, "8 nodes, 8 edges")

	out, err = execute(t, "sweep", "--formats", "edges", graph)
	require.NoError(t, err)
	assert.Contains(t, out, "cycle-4")
	assert.Contains(t, out, "(forest)")

	out, err = execute(t, "sweep", "--formats", "edges", "--methods", "prim", "--span-forest", graph)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "(forest)"))

	_, err = execute(t, "generate", "--topology", "hexagon", "-o", graph)
	assert.Error(t, err)
	_, err = execute(t, "generate", "--topology", "cycle", "-n", "2", "-o", graph)
	assert.Error(t, err)
	_, err = execute(t, "generate", "--min-weight", "0", "-o", graph)
	assert.Error(t, err)

	_, err = execute(t, "generate", "--integer", "--max-weight", "1e19", "-o", graph)
	assert.ErrorContains(t, err, "max-weight")
	_, err = execute(t, "generate", "--integer", "--max-weight", "2147483648", "-o", graph)
	assert.ErrorContains(t, err, "max-weight")
	_, err = execute(t, "generate", "--integer", "--max-weight", "2147483647", "-n", "3", "-o", graph)
	assert.NoError(t, err)
}

func TestRender_DOT(t *testing.T) {
	path := writeFile(t, "demo.yaml", demoYAML)

	out, err := execute(t, "render", "--weights", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph \"demo\" {"))
	assert.Contains(t, out, "2 -- 3 [penwidth=3, color=black, label=\"4\"];")

	dotPath := filepath.Join(t.TempDir(), "demo.dot")
	_, err = execute(t, "render", "--all-edges", "-o", dotPath, path)
	require.NoError(t, err)
	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "style=dashed")

	_, err = execute(t, "render", "-o", filepath.Join(t.TempDir(), "demo.png"), path)
	assert.Error(t, err)

	huge := writeFile(t, "huge.yaml", "matrix:\n  - [0, 1e21]\n  - [1e21, 0]\n")
	out, err = execute(t, "render", "-o", filepath.Join(t.TempDir(), "huge.dot"), huge)
	require.NoError(t, err)
	assert.Contains(t, out, "total weight 1000000000000000000000")
	assert.NotContains(t, out, "e+21")
}

func TestWriteResult(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{19.0, "19\n"},
		{2.5, "2.5\n"},
		{[]core.Pair{{U: 0, V: 1}}, "[(0, 1)]\n"},
		{[]core.Pair{}, "[]\n"},
		{collector.Totals{Weight: 3, Edges: []core.Pair{{U: 0, V: 1}, {U: 1, V: 2}}}, "3 [(0, 1), (1, 2)]\n"},
		{collector.Summary{}, "Total Weight: 0\nEdges:\n\n"},
		{[]float64{1, 2.5}, "[1, 2.5]\n"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		require.NoError(t, writeResult(&buf, tc.v))
		assert.Equal(t, tc.want, buf.String())
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b,"))
	assert.Nil(t, splitList(""))
}
