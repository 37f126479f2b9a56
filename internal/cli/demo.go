// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
	"github.com/katalvlaran/mstkit/internal/sweep"
)

// demoInputs returns the four-node demo graph in both encodings.
// Its minimum spanning tree is {2-3, 0-3, 0-1} with total weight 19.
func demoInputs() ([]sweep.Input, error) {
	adj, err := input.NewAdjacencyList(map[core.NodeID][]input.Neighbor{
		0: {{Node: 1, Weight: 10}, {Node: 2, Weight: 6}, {Node: 3, Weight: 5}},
		1: {{Node: 0, Weight: 10}, {Node: 3, Weight: 15}},
		2: {{Node: 0, Weight: 6}, {Node: 3, Weight: 4}},
		3: {{Node: 0, Weight: 5}, {Node: 1, Weight: 15}, {Node: 2, Weight: 4}},
	})
	if err != nil {
		return nil, err
	}
	m, err := input.NewWeightMatrix([][]float64{
		{0, 10, 6, 5},
		{10, 0, 0, 15},
		{6, 0, 0, 4},
		{5, 15, 4, 0},
	})
	if err != nil {
		return nil, err
	}
	return []sweep.Input{
		{Name: "demo-adjacency", Source: adj},
		{Name: "demo-matrix", Source: m},
	}, nil
}
