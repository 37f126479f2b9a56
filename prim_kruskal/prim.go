// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a start node over a canonical edge list using a lazy min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/mstkit/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a start node using a min‐heap, emitting every
// accepted edge into sink as (from, to, weight).
//
// Start node:
//   - WithRoot(id) if given;
//   - otherwise the lowest node id touching any edge.
//
// A root that touches no edge yields no output. Only the start node's
// component is explored unless WithSpanForest() is given, in which case Prim
// restarts from the lowest unvisited node until every endpoint is covered.
// Options other than WithRoot and WithSpanForest are ignored. A nil sink
// discards output.
//
// Steps:
//  1. Build an adjacency map from edges (each edge contributes both directions,
//     edge order preserved).
//  2. Mark the start node visited and push all its edges into pq.
//  3. While pq not empty and not every node is visited:
//     a. Pop the smallest (weight, from, to) candidate.
//     b. If `to` is already visited, skip (this edge would form a cycle).
//     c. Otherwise mark `to` visited and emit (from, to, weight).
//     d. Push all edges from `to` towards unvisited neighbors.
//  4. With SpanForest, repeat 2–3 from every still-unvisited node in ascending order.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(edges []core.Edge, sink core.EdgeSink, opts ...Option) {
	if sink == nil {
		sink = discard
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Adjacency in edge order, both directions; self-loops are skipped.
	adj := make(map[core.NodeID][]candidate)
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		adj[e.U] = append(adj[e.U], candidate{weight: e.Weight, from: e.U, to: e.V})
		adj[e.V] = append(adj[e.V], candidate{weight: e.Weight, from: e.V, to: e.U})
	}
	nodes := core.EdgeNodes(edges)
	if len(nodes) == 0 {
		return
	}

	start := nodes[0]
	if o.HasRoot {
		start = o.Root
	}

	visited := make(map[core.NodeID]bool, len(nodes))
	pq := &candidatePQ{}

	// grow expands one tree from root until the heap drains or every node is in.
	grow := func(root core.NodeID) {
		if _, ok := adj[root]; !ok {
			return
		}
		// 2. Seed the heap with the root's edges.
		visited[root] = true
		for _, c := range adj[root] {
			heap.Push(pq, c)
		}

		// 3. Main loop.
		for pq.Len() > 0 && len(visited) < len(adj) {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue
			}
			visited[c.to] = true
			sink.AddEdge(c.from, c.to, c.weight)

			for _, next := range adj[c.to] {
				if !visited[next.to] {
					heap.Push(pq, next)
				}
			}
		}
		*pq = (*pq)[:0]
	}

	grow(start)

	// 4. Optional restart in every untouched component.
	if o.SpanForest {
		for _, id := range nodes {
			if !visited[id] {
				grow(id)
			}
		}
	}
}

// candidate is a heap entry: an edge leaving the tree at `from` towards `to`.
type candidate struct {
	weight float64
	from   core.NodeID
	to     core.NodeID
}

// candidatePQ implements heap.Interface for a min‐heap of candidates,
// ordered by (weight, from, to) so ties resolve deterministically.
type candidatePQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders by weight, then from-node, then to-node.
func (pq candidatePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Swap swaps elements at indices i and j.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate to the heap. Called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element after heap adjustments. Called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
