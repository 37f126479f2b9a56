// SPDX-License-Identifier: MIT

// Package input normalizes heterogeneous raw graph representations into the
// canonical edge list and node set defined by package core.
//
// Two representations are supported, both behind the Source interface:
//
//   - AdjacencyList: map[node][]Neighbor. Every key is a node (isolated keys
//     included). Each undirected edge is emitted once: keys are visited in
//     ascending order, neighbor lists in their given order, and (u,v) is
//     skipped when (v,u) was already emitted.
//
//   - WeightMatrix: square [][]float64 where 0 means "no edge". Only the
//     strict upper triangle is read; symmetry is assumed, and verified only
//     when WithSymmetryCheck is passed.
//
// Both constructors validate eagerly and return sentinel errors wrapped with
// position context, so a Source that exists is always well-formed:
//
//	ErrNegativeNode   : node id < 0.
//	ErrUnknownNeighbor: neighbor id is not a key of the adjacency map.
//	ErrSelfLoop       : neighbor equals its own key.
//	ErrNonSquare      : matrix row length differs from the row count.
//	ErrNaNInf         : NaN or ±Inf weight.
//	ErrNegativeWeight : weight < 0.
//	ErrAsymmetry      : matrix[i][j] ≠ matrix[j][i] beyond eps (opt-in).
//
// Sources copy their input and are immutable afterwards: they can be shared
// freely across goroutines and reused for any number of computations.
//
// Example:
//
//	src, err := input.NewWeightMatrix([][]float64{
//	    {0, 2, 0},
//	    {2, 0, 3},
//	    {0, 3, 0},
//	})
//	if err != nil {
//	    return err
//	}
//	edges := src.Edges() // [{0 1 2} {1 2 3}]
package input
