// SPDX-License-Identifier: MIT

package input

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// AdjacencyList is a Source backed by a node → neighbors mapping.
//
// The canonical edge list is derived once at construction, so Edges is a
// plain copy and the result does not depend on Go's map iteration order.
type AdjacencyList struct {
	nodes []core.NodeID
	adj   map[core.NodeID][]Neighbor
	edges []core.Edge
}

// NewAdjacencyList validates data and returns an immutable AdjacencyList.
//
// Steps:
//  1. Reject negative keys (ErrNegativeNode).
//  2. For every entry: reject unknown neighbors (ErrUnknownNeighbor),
//     self-loops (ErrSelfLoop) and invalid weights (ErrNaNInf, ErrNegativeWeight).
//  3. Deep-copy data.
//  4. Derive canonical edges: keys ascending, entries in given order,
//     (u,v) dropped when (v,u) was already taken.
//
// A nil or empty map yields an empty graph.
// Complexity: O(V log V + E) time, O(V + E) memory.
func NewAdjacencyList(data map[core.NodeID][]Neighbor) (*AdjacencyList, error) {
	keys := make(map[core.NodeID]struct{}, len(data))
	for u := range data {
		if u < 0 {
			return nil, validatorErrorf(fmt.Sprintf("NewAdjacencyList: node %d", u), ErrNegativeNode)
		}
		keys[u] = struct{}{}
	}
	nodes := core.SortedNodes(keys)

	adj := make(map[core.NodeID][]Neighbor, len(data))
	for _, u := range nodes {
		list := data[u]
		for i, nb := range list {
			tag := fmt.Sprintf("NewAdjacencyList: node %d entry %d", u, i)
			if _, ok := keys[nb.Node]; !ok {
				return nil, validatorErrorf(tag, ErrUnknownNeighbor)
			}
			if nb.Node == u {
				return nil, validatorErrorf(tag, ErrSelfLoop)
			}
			if err := validateWeight(tag, nb.Weight); err != nil {
				return nil, err
			}
		}
		adj[u] = append([]Neighbor(nil), list...)
	}

	return &AdjacencyList{
		nodes: nodes,
		adj:   adj,
		edges: dedupEdges(nodes, adj),
	}, nil
}

// dedupEdges walks adj in node order and keeps one orientation per listed edge.
func dedupEdges(nodes []core.NodeID, adj map[core.NodeID][]Neighbor) []core.Edge {
	var (
		edges []core.Edge
		seen  = make(map[core.Pair]struct{})
	)
	for _, u := range nodes {
		for _, nb := range adj[u] {
			if _, mirrored := seen[core.Pair{U: nb.Node, V: u}]; mirrored {
				continue
			}
			edges = append(edges, core.Edge{U: u, V: nb.Node, Weight: nb.Weight})
			seen[core.Pair{U: u, V: nb.Node}] = struct{}{}
		}
	}

	return edges
}

// Edges returns a copy of the canonical edge list. Never nil.
// Complexity: O(E).
func (a *AdjacencyList) Edges() []core.Edge {
	return append(make([]core.Edge, 0, len(a.edges)), a.edges...)
}

// Nodes returns every key of the adjacency map in ascending order,
// isolated nodes included. Never nil.
// Complexity: O(V).
func (a *AdjacencyList) Nodes() []core.NodeID {
	return append(make([]core.NodeID, 0, len(a.nodes)), a.nodes...)
}

// Neighbors returns a copy of the raw entries recorded for u, in input order.
// Unknown nodes yield nil.
func (a *AdjacencyList) Neighbors(u core.NodeID) []Neighbor {
	list, ok := a.adj[u]
	if !ok {
		return nil
	}

	return append([]Neighbor(nil), list...)
}

// Raw returns a deep copy of the validated mapping.
func (a *AdjacencyList) Raw() map[core.NodeID][]Neighbor {
	out := make(map[core.NodeID][]Neighbor, len(a.adj))
	for u, list := range a.adj {
		out[u] = append([]Neighbor(nil), list...)
	}

	return out
}
