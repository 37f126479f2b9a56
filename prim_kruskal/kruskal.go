// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It consumes a canonical edge list and pushes the accepted edges into a core.EdgeSink.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstkit/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// given as a canonical edge list, emitting every accepted edge into sink.
// It uses a disjoint-set (union-find) data structure with path halving and union by rank.
//
// Disconnected input is not an error: the result is a spanning forest with
// one tree per component that has at least one edge. A nil sink discards output.
//
// Steps:
//  1. Copy edges and sort them by ascending Weight (sort.SliceStable, so equal
//     weights keep their input order).
//  2. Initialize DSU maps parent[] and rank[] for every edge endpoint.
//  3. Loop over sorted edges, skipping self-loops: for each edge (u,v), if
//     find(u) != find(v), then union(u,v) and emit (u, v, w).
//  4. Once |V|-1 edges have been emitted, break.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(edges []core.Edge, sink core.EdgeSink) {
	if sink == nil {
		sink = discard
	}

	// 1. Sort a private copy so the caller's slice is left untouched.
	sorted := append(make([]core.Edge, 0, len(edges)), edges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 2. Initialize disjoint-set structures over every endpoint.
	//    Isolated nodes never appear in an edge and need no set.
	nodes := core.EdgeNodes(edges)
	if len(nodes) < 2 {
		return
	}
	parent := make(map[core.NodeID]core.NodeID, len(nodes))
	rank := make(map[core.NodeID]int, len(nodes))
	for _, id := range nodes {
		parent[id] = id
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			// Point u at its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint roots.
	union := func(rootU, rootV core.NodeID) {
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}
	}

	// 3. Scan edges cheapest first.
	accepted := 0
	for _, e := range sorted {
		if e.U == e.V {
			continue
		}
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		union(ru, rv)
		sink.AddEdge(e.U, e.V, e.Weight)
		accepted++

		// 4. A spanning tree of the endpoint set is complete.
		if accepted == len(nodes)-1 {
			break
		}
	}
}
