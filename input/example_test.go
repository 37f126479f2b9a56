// SPDX-License-Identifier: MIT

package input_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
)

// ExampleNewAdjacencyList shows that an edge listed under both endpoints is emitted once.
func ExampleNewAdjacencyList() {
	src, err := input.NewAdjacencyList(map[core.NodeID][]input.Neighbor{
		0: {{Node: 1, Weight: 2}},
		1: {{Node: 0, Weight: 2}, {Node: 2, Weight: 3}},
		2: {{Node: 1, Weight: 3}},
		3: nil, // isolated, still a node
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(src.Edges())
	fmt.Println(src.Nodes())
	// Output:
	// [{0 1 2} {1 2 3}]
	// [0 1 2 3]
}

// ExampleNewWeightMatrix shows that zero entries mean "no edge".
func ExampleNewWeightMatrix() {
	src, err := input.NewWeightMatrix([][]float64{
		{0, 2, 0},
		{2, 0, 3},
		{0, 3, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(src.Edges())
	// Output: [{0 1 2} {1 2 3}]
}

// ExampleNewWeightMatrix_nonSquare shows a malformed matrix surfacing as a sentinel error.
func ExampleNewWeightMatrix_nonSquare() {
	_, err := input.NewWeightMatrix([][]float64{{0, 1}, {1}})
	fmt.Println(errors.Is(err, input.ErrNonSquare))
	// Output: true
}
