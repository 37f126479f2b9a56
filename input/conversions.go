// SPDX-License-Identifier: MIT

package input

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// AdjacencyData mirrors a Source into raw adjacency form: every node becomes
// a key and every edge is listed under both endpoints, in edge order.
// Feeding the result to NewAdjacencyList reproduces the same edge list.
// Complexity: O(V + E).
func AdjacencyData(src Source) map[core.NodeID][]Neighbor {
	out := make(map[core.NodeID][]Neighbor)
	for _, u := range src.Nodes() {
		out[u] = nil
	}
	for _, e := range src.Edges() {
		out[e.U] = append(out[e.U], Neighbor{Node: e.V, Weight: e.Weight})
		out[e.V] = append(out[e.V], Neighbor{Node: e.U, Weight: e.Weight})
	}

	return out
}

// MatrixData mirrors a Source into a symmetric n×n weight matrix where
// n = max node id + 1. Zero-weight and parallel edges cannot be expressed in
// matrix form; the former are dropped, the latter keep the lightest weight.
// Complexity: O(n² + E).
func MatrixData(src Source) ([][]float64, error) {
	nodes := src.Nodes()
	n := 0
	if len(nodes) > 0 {
		n = nodes[len(nodes)-1] + 1
	}
	for _, id := range nodes {
		if id < 0 {
			return nil, validatorErrorf(fmt.Sprintf("MatrixData: node %d", id), ErrNegativeNode)
		}
	}

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for _, e := range src.Edges() {
		if e.Weight <= 0 {
			continue
		}
		if cur := m[e.U][e.V]; cur == 0 || e.Weight < cur {
			m[e.U][e.V] = e.Weight
			m[e.V][e.U] = e.Weight
		}
	}

	return m, nil
}
