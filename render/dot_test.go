// SPDX-License-Identifier: MIT

package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
	"github.com/katalvlaran/mstkit/render"
)

func triangle(t *testing.T) input.Source {
	t.Helper()
	src, err := input.NewWeightMatrix([][]float64{
		{0, 1, 3, 0},
		{1, 0, 2, 0},
		{3, 2, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	return src
}

var triangleTree = []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}}

func TestToDOT_TreeOnly(t *testing.T) {
	dot := render.ToDOT(triangle(t), triangleTree, render.Options{})

	assert.True(t, strings.HasPrefix(dot, "graph \"G\" {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	for _, n := range []string{"  0;", "  1;", "  2;", "  3;"} {
		assert.Contains(t, dot, n)
	}
	assert.Contains(t, dot, "  0 -- 1 [penwidth=3, color=black];")
	assert.Contains(t, dot, "  1 -- 2 [penwidth=3, color=black];")
	assert.NotContains(t, dot, "0 -- 2")
	assert.NotContains(t, dot, "label=")
}

func TestToDOT_NonTreeAndWeights(t *testing.T) {
	tree := []core.Edge{{U: 1, V: 0, Weight: 1}, {U: 2, V: 1, Weight: 2}}
	dot := render.ToDOT(triangle(t), tree, render.Options{Name: "demo", ShowNonTree: true, Weights: true})

	assert.True(t, strings.HasPrefix(dot, "graph \"demo\" {\n"))
	assert.Contains(t, dot, "  1 -- 0 [penwidth=3, color=black, label=\"1\"];")
	assert.Contains(t, dot, "  0 -- 2 [penwidth=1, style=dashed, color=grey, label=\"3\"];")
	assert.NotContains(t, dot, "  0 -- 1 [")
	assert.Equal(t, 3, strings.Count(dot, " -- "))
}

func TestToDOT_ParallelEdgeBesideTreeEdge(t *testing.T) {
	src, err := input.NewAdjacencyList(map[core.NodeID][]input.Neighbor{
		0: {{Node: 1, Weight: 1}, {Node: 1, Weight: 5}},
		1: {},
	})
	require.NoError(t, err)
	require.Len(t, src.Edges(), 2)

	tree := []core.Edge{{U: 1, V: 0, Weight: 1}}
	dot := render.ToDOT(src, tree, render.Options{ShowNonTree: true, Weights: true})

	assert.Contains(t, dot, "  1 -- 0 [penwidth=3, color=black, label=\"1\"];")
	assert.Contains(t, dot, "  0 -- 1 [penwidth=1, style=dashed, color=grey, label=\"5\"];")
	assert.NotContains(t, dot, "  0 -- 1 [penwidth=1, style=dashed, color=grey, label=\"1\"];")
	assert.Equal(t, 2, strings.Count(dot, " -- "))
}

func TestRenderSVG(t *testing.T) {
	dot := render.ToDOT(triangle(t), triangleTree, render.Options{Weights: true})
	svg, err := render.RenderSVG(context.Background(), dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := render.RenderSVG(context.Background(), `not valid DOT {{{`)
	assert.Error(t, err)
}
