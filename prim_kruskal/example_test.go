// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a triangle graph.
// The MST is {0–1, 1–2} with total weight 3; edges arrive cheapest first.
func ExampleKruskal() {
	edges := []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 4},
	}

	var total float64
	prim_kruskal.Kruskal(edges, core.SinkFunc(func(u, v core.NodeID, w float64) {
		total += w
		fmt.Printf("%d-%d ", u, v)
	}))
	fmt.Println("total:", total)
	// Output: 0-1 1-2 total: 3
}

// ExamplePrim demonstrates Prim’s algorithm on a 5‐node pentagon graph.
// Edges: 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
// The MST is {0–1, 1–2, 2–3, 3–4} with total weight 11, discovered in that order.
func ExamplePrim() {
	edges := []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 4, Weight: 12},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
		{U: 3, V: 4, Weight: 5},
	}

	var total float64
	prim_kruskal.Prim(edges, core.SinkFunc(func(u, v core.NodeID, w float64) {
		total += w
		fmt.Printf("%d-%d ", u, v)
	}), prim_kruskal.WithRoot(0))
	fmt.Println("total:", total)
	// Output: 0-1 1-2 2-3 3-4 total: 11
}

// ExamplePrim_disconnected shows that Prim only covers the start component
// unless WithSpanForest is set.
func ExamplePrim_disconnected() {
	edges := []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 2, V: 3, Weight: 1}}

	count := 0
	sink := core.SinkFunc(func(core.NodeID, core.NodeID, float64) { count++ })
	prim_kruskal.Prim(edges, sink)
	fmt.Println("default:", count)

	count = 0
	prim_kruskal.Prim(edges, sink, prim_kruskal.WithSpanForest())
	fmt.Println("forest:", count)
	// Output:
	// default: 1
	// forest: 2
}
