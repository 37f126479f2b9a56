// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/mstkit/collector"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
)

// Options configures DOT output.
type Options struct {
	// Name is the graph identifier; "G" when empty.
	Name string
	// ShowNonTree also draws graph edges that are not in the tree, parallel
	// edges included.
	ShowNonTree bool
	// Weights labels edges with their weight.
	Weights bool
}

// ToDOT converts src and its tree edges to an undirected DOT graph.
// tree is typically the Edges of a collector.Summary.
func ToDOT(src input.Source, tree []core.Edge, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", name)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range src.Nodes() {
		fmt.Fprintf(&buf, "  %d;\n", n)
	}

	// Each tree edge hides exactly one graph edge with the same endpoints and
	// weight, so parallel edges beside a tree edge stay visible.
	pending := make(map[edgeKey]int, len(tree))
	buf.WriteString("\n")
	for _, e := range tree {
		pending[keyOf(e)]++
		fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.U, e.V, edgeAttrs(e, opts, true))
	}

	if opts.ShowNonTree {
		for _, e := range src.Edges() {
			if k := keyOf(e); pending[k] > 0 {
				pending[k]--
				continue
			}
			fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.U, e.V, edgeAttrs(e, opts, false))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// edgeKey identifies an undirected weighted edge regardless of orientation.
type edgeKey struct {
	lo, hi core.NodeID
	weight float64
}

func keyOf(e core.Edge) edgeKey {
	if e.U > e.V {
		return edgeKey{lo: e.V, hi: e.U, weight: e.Weight}
	}
	return edgeKey{lo: e.U, hi: e.V, weight: e.Weight}
}

func edgeAttrs(e core.Edge, opts Options, tree bool) string {
	attrs := "penwidth=1, style=dashed, color=grey"
	if tree {
		attrs = "penwidth=3, color=black"
	}
	if opts.Weights {
		attrs += fmt.Sprintf(", label=%q", collector.FormatWeight(e.Weight))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
