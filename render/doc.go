// SPDX-License-Identifier: MIT

// Package render draws a graph and its minimum spanning tree as Graphviz DOT
// and, through go-graphviz, as SVG.
//
// Tree edges are drawn bold. Non-tree edges are drawn dashed and grey when
// Options.ShowNonTree is set and omitted otherwise. Every node of the Source
// is emitted, isolated ones included, so a spanning forest is visible as
// separate components.
//
//	dot := render.ToDOT(src, tree, render.Options{ShowNonTree: true})
//	svg, err := render.RenderSVG(ctx, dot)
package render
