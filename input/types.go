// SPDX-License-Identifier: MIT

package input

import (
	"errors"

	"github.com/katalvlaran/mstkit/core"
)

// Sentinel errors for malformed raw graph data.
var (
	// ErrNegativeNode indicates a node identifier below zero.
	ErrNegativeNode = errors.New("input: negative node id")

	// ErrUnknownNeighbor indicates an adjacency entry pointing at a node that is not a key.
	ErrUnknownNeighbor = errors.New("input: neighbor references undeclared node")

	// ErrSelfLoop indicates an adjacency entry pointing back at its own key.
	ErrSelfLoop = errors.New("input: self-loop not allowed")

	// ErrNonSquare indicates a weight matrix whose rows are not all of length n.
	ErrNonSquare = errors.New("input: weight matrix is not square")

	// ErrNaNInf indicates a NaN or ±Inf weight.
	ErrNaNInf = errors.New("input: NaN or Inf weight")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("input: negative weight")

	// ErrAsymmetry indicates matrix[i][j] and matrix[j][i] disagree beyond eps.
	ErrAsymmetry = errors.New("input: weight matrix is not symmetric")
)

// Source is a read-only, order-insensitive view of one undirected graph.
//
// Edges returns the canonical edge list (see package core for invariants);
// Nodes returns the node set in ascending order. Both return fresh slices,
// so callers may modify them.
type Source interface {
	Edges() []core.Edge
	Nodes() []core.NodeID
}

// Neighbor is one entry of an adjacency list: the far endpoint and the edge weight.
type Neighbor struct {
	Node   core.NodeID `json:"node" yaml:"node" toml:"node"`
	Weight float64     `json:"weight" yaml:"weight" toml:"weight"`
}

// Options configures validation performed by the constructors.
type Options struct {
	// SymmetryCheck enables the matrix[i][j] == matrix[j][i] check.
	SymmetryCheck bool

	// SymmetryEps is the absolute tolerance used by the symmetry check.
	SymmetryEps float64
}

// Option mutates Options.
type Option func(*Options)

// WithSymmetryCheck makes NewWeightMatrix reject matrices where
// |m[i][j] - m[j][i]| > eps. A negative eps is treated as its absolute value.
func WithSymmetryCheck(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			eps = -eps
		}
		o.SymmetryCheck = true
		o.SymmetryEps = eps
	}
}

// DefaultOptions returns Options with every optional check disabled.
func DefaultOptions() Options {
	return Options{}
}
