// SPDX-License-Identifier: MIT

package input_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
)

// demoAdjacency is the four-node demo graph in adjacency form.
func demoAdjacency() map[core.NodeID][]input.Neighbor {
	return map[core.NodeID][]input.Neighbor{
		0: {{Node: 1, Weight: 10}, {Node: 2, Weight: 6}, {Node: 3, Weight: 5}},
		1: {{Node: 0, Weight: 10}, {Node: 3, Weight: 15}},
		2: {{Node: 0, Weight: 6}, {Node: 3, Weight: 4}},
		3: {{Node: 0, Weight: 5}, {Node: 1, Weight: 15}, {Node: 2, Weight: 4}},
	}
}

// demoMatrix is the same graph as demoAdjacency in weight-matrix form.
func demoMatrix() [][]float64 {
	return [][]float64{
		{0, 10, 6, 5},
		{10, 0, 0, 15},
		{6, 0, 0, 4},
		{5, 15, 4, 0},
	}
}

var demoEdges = []core.Edge{
	{U: 0, V: 1, Weight: 10},
	{U: 0, V: 2, Weight: 6},
	{U: 0, V: 3, Weight: 5},
	{U: 1, V: 3, Weight: 15},
	{U: 2, V: 3, Weight: 4},
}

func TestAdjacencyList_EdgesDeduplicated(t *testing.T) {
	src, err := input.NewAdjacencyList(demoAdjacency())
	require.NoError(t, err)

	assert.Equal(t, demoEdges, src.Edges())
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, src.Nodes())
}

func TestAdjacencyList_OneSidedListing(t *testing.T) {
	// Each edge listed under one endpoint only still yields exactly one copy.
	src, err := input.NewAdjacencyList(map[core.NodeID][]input.Neighbor{
		0: {{Node: 1, Weight: 1}},
		1: nil,
		2: {{Node: 1, Weight: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 1}, {U: 2, V: 1, Weight: 2}}, src.Edges())
}

func TestAdjacencyList_IsolatedNodesKept(t *testing.T) {
	src, err := input.NewAdjacencyList(map[core.NodeID][]input.Neighbor{
		5: nil,
		0: {{Node: 1, Weight: 3}},
		1: {{Node: 0, Weight: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 5}, src.Nodes())
	assert.Len(t, src.Edges(), 1)
}

func TestAdjacencyList_ZeroWeightIsAnEdge(t *testing.T) {
	src, err := input.NewAdjacencyList(map[core.NodeID][]input.Neighbor{
		0: {{Node: 1, Weight: 0}},
		1: {{Node: 0, Weight: 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 0}}, src.Edges())
}

func TestAdjacencyList_Validation(t *testing.T) {
	cases := []struct {
		name string
		data map[core.NodeID][]input.Neighbor
		want error
	}{
		{"negative key", map[core.NodeID][]input.Neighbor{-1: nil}, input.ErrNegativeNode},
		{"unknown neighbor", map[core.NodeID][]input.Neighbor{0: {{Node: 9, Weight: 1}}}, input.ErrUnknownNeighbor},
		{"self loop", map[core.NodeID][]input.Neighbor{0: {{Node: 0, Weight: 1}}}, input.ErrSelfLoop},
		{"negative weight", map[core.NodeID][]input.Neighbor{0: {{Node: 1, Weight: -2}}, 1: nil}, input.ErrNegativeWeight},
		{"nan weight", map[core.NodeID][]input.Neighbor{0: {{Node: 1, Weight: math.NaN()}}, 1: nil}, input.ErrNaNInf},
		{"inf weight", map[core.NodeID][]input.Neighbor{0: {{Node: 1, Weight: math.Inf(1)}}, 1: nil}, input.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, err := input.NewAdjacencyList(tc.data)
			assert.Nil(t, src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAdjacencyList_Immutable(t *testing.T) {
	data := demoAdjacency()
	src, err := input.NewAdjacencyList(data)
	require.NoError(t, err)

	// Mutating the caller's map or a returned slice must not leak into src.
	data[0][0].Weight = 999
	data[7] = nil
	edges := src.Edges()
	edges[0].Weight = 999
	nodes := src.Nodes()
	nodes[0] = 42

	assert.Equal(t, demoEdges, src.Edges())
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, src.Nodes())
	assert.Equal(t, []input.Neighbor{{Node: 0, Weight: 6}, {Node: 3, Weight: 4}}, src.Neighbors(2))
	assert.Nil(t, src.Neighbors(42))
}

func TestAdjacencyList_Empty(t *testing.T) {
	src, err := input.NewAdjacencyList(nil)
	require.NoError(t, err)
	assert.Empty(t, src.Edges())
	assert.Empty(t, src.Nodes())
}

func TestWeightMatrix_UpperTriangle(t *testing.T) {
	src, err := input.NewWeightMatrix(demoMatrix())
	require.NoError(t, err)

	assert.Equal(t, demoEdges, src.Edges())
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, src.Nodes())
	assert.Equal(t, 4, src.Size())

	w, ok := src.At(1, 3)
	assert.True(t, ok)
	assert.Equal(t, 15.0, w)
	_, ok = src.At(4, 0)
	assert.False(t, ok)
}

func TestWeightMatrix_AsymmetryIgnoredByDefault(t *testing.T) {
	// Only the upper triangle is read; the lower one is never consulted.
	src, err := input.NewWeightMatrix([][]float64{
		{0, 2},
		{7, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 1, Weight: 2}}, src.Edges())

	_, err = input.NewWeightMatrix([][]float64{{0, 2}, {7, 0}}, input.WithSymmetryCheck(0.5))
	assert.ErrorIs(t, err, input.ErrAsymmetry)

	_, err = input.NewWeightMatrix([][]float64{{0, 2}, {2.25, 0}}, input.WithSymmetryCheck(-0.5))
	assert.NoError(t, err)
}

func TestWeightMatrix_Validation(t *testing.T) {
	cases := []struct {
		name string
		m    [][]float64
		want error
	}{
		{"ragged", [][]float64{{0, 1}, {1}}, input.ErrNonSquare},
		{"wide", [][]float64{{0, 1, 2}, {1, 0, 3}}, input.ErrNonSquare},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, input.ErrNegativeWeight},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, input.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := input.NewWeightMatrix(tc.m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWeightMatrix_EmptyAndSingle(t *testing.T) {
	empty, err := input.NewWeightMatrix(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Edges())
	assert.Empty(t, empty.Nodes())

	single, err := input.NewWeightMatrix([][]float64{{0}})
	require.NoError(t, err)
	assert.Empty(t, single.Edges())
	assert.Equal(t, []core.NodeID{0}, single.Nodes())
}

func TestWeightMatrix_Immutable(t *testing.T) {
	m := demoMatrix()
	src, err := input.NewWeightMatrix(m)
	require.NoError(t, err)

	m[0][1] = 100
	rows := src.Rows()
	rows[0][2] = 100

	assert.Equal(t, demoMatrix(), src.Rows())
	assert.Equal(t, demoEdges, src.Edges())
}

func TestConversions_RoundTrip(t *testing.T) {
	fromMatrix, err := input.NewWeightMatrix(demoMatrix())
	require.NoError(t, err)

	adj, err := input.NewAdjacencyList(input.AdjacencyData(fromMatrix))
	require.NoError(t, err)
	assert.Equal(t, fromMatrix.Edges(), adj.Edges())
	assert.Equal(t, fromMatrix.Nodes(), adj.Nodes())

	m, err := input.MatrixData(adj)
	require.NoError(t, err)
	assert.Equal(t, demoMatrix(), m)
}

func TestMatrixData_ParallelEdgesKeepLightest(t *testing.T) {
	adj, err := input.NewAdjacencyList(map[core.NodeID][]input.Neighbor{
		0: {{Node: 1, Weight: 5}, {Node: 1, Weight: 2}},
		1: nil,
	})
	require.NoError(t, err)
	assert.Len(t, adj.Edges(), 2)

	m, err := input.MatrixData(adj)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, m)
}
