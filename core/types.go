// SPDX-License-Identifier: MIT

package core

import (
	"math"
	"sort"
)

// NodeID identifies a vertex. Valid identifiers are non-negative.
type NodeID = int

// Edge is an undirected, weighted connection between U and V.
//
// The orientation (U first) carries no meaning for the graph itself, but
// algorithms preserve it when they emit the edge, so it shows up in results.
type Edge struct {
	// U is the first endpoint.
	U NodeID `json:"u"`

	// V is the second endpoint.
	V NodeID `json:"v"`

	// Weight is the non-negative, finite cost of the edge.
	Weight float64 `json:"weight"`
}

// Pair is an emitted MST edge without its weight, in emission orientation.
type Pair struct {
	U NodeID `json:"u"`
	V NodeID `json:"v"`
}

// Pair drops the weight of e.
func (e Edge) Pair() Pair { return Pair{U: e.U, V: e.V} }

// Reversed returns e with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U, Weight: e.Weight} }

// EdgeSink receives MST edges as an algorithm accepts them.
//
// Algorithms call AddEdge exactly once per accepted edge, in the order the
// algorithm defines; the sink decides what to keep. A sink is owned by one
// computation and must not be shared between concurrent ones.
type EdgeSink interface {
	AddEdge(u, v NodeID, weight float64)
}

// SinkFunc adapts a plain function to EdgeSink.
type SinkFunc func(u, v NodeID, weight float64)

// AddEdge calls f(u, v, weight).
func (f SinkFunc) AddEdge(u, v NodeID, weight float64) { f(u, v, weight) }

// ValidWeight reports whether w is finite and non-negative.
// Complexity: O(1).
func ValidWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// EdgeNodes returns the distinct endpoints of edges in ascending order.
// Isolated nodes cannot be discovered from an edge list and are absent.
// Complexity: O(E + V log V).
func EdgeNodes(edges []Edge) []NodeID {
	seen := make(map[NodeID]struct{}, 2*len(edges))
	for _, e := range edges {
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}

	return SortedNodes(seen)
}

// SortedNodes flattens a node set into an ascending slice.
// The result is never nil.
func SortedNodes(set map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
