// SPDX-License-Identifier: MIT

package input

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// WeightMatrix is a Source backed by a dense n×n weight matrix.
// A zero (or, defensively, any non-positive) entry means "no edge".
type WeightMatrix struct {
	m     [][]float64
	edges []core.Edge
}

// NewWeightMatrix validates m and returns an immutable WeightMatrix.
//
// Steps:
//  1. Every row must have len(m) columns (ErrNonSquare).
//  2. Every entry must be finite (ErrNaNInf) and ≥ 0 (ErrNegativeWeight).
//  3. With WithSymmetryCheck(eps): |m[i][j]-m[j][i]| ≤ eps (ErrAsymmetry).
//  4. Deep-copy m and derive edges from the strict upper triangle,
//     row-major, keeping entries > 0.
//
// A nil or 0×0 matrix yields an empty graph.
// Complexity: O(n²) time and memory.
func NewWeightMatrix(m [][]float64, opts ...Option) (*WeightMatrix, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateSquare(m); err != nil {
		return nil, fmt.Errorf("NewWeightMatrix: %w", err)
	}
	for i, row := range m {
		for j, w := range row {
			if err := validateWeight(fmt.Sprintf("NewWeightMatrix: [%d][%d]", i, j), w); err != nil {
				return nil, err
			}
		}
	}
	if o.SymmetryCheck {
		if err := validateSymmetric(m, o.SymmetryEps); err != nil {
			return nil, fmt.Errorf("NewWeightMatrix: %w", err)
		}
	}

	cp := make([][]float64, len(m))
	for i, row := range m {
		cp[i] = append([]float64(nil), row...)
	}

	var edges []core.Edge
	for i := range cp {
		for j := i + 1; j < len(cp); j++ {
			if w := cp[i][j]; w > 0 {
				edges = append(edges, core.Edge{U: i, V: j, Weight: w})
			}
		}
	}

	return &WeightMatrix{m: cp, edges: edges}, nil
}

// Size returns n, the number of nodes.
func (w *WeightMatrix) Size() int { return len(w.m) }

// At returns m[i][j], or 0 with ok == false when out of range.
func (w *WeightMatrix) At(i, j int) (weight float64, ok bool) {
	if i < 0 || j < 0 || i >= len(w.m) || j >= len(w.m) {
		return 0, false
	}

	return w.m[i][j], true
}

// Edges returns a copy of the canonical edge list. Never nil.
// Complexity: O(E).
func (w *WeightMatrix) Edges() []core.Edge {
	return append(make([]core.Edge, 0, len(w.edges)), w.edges...)
}

// Nodes returns 0..n-1. Never nil.
// Complexity: O(n).
func (w *WeightMatrix) Nodes() []core.NodeID {
	out := make([]core.NodeID, len(w.m))
	for i := range out {
		out[i] = i
	}

	return out
}

// Rows returns a deep copy of the validated matrix.
func (w *WeightMatrix) Rows() [][]float64 {
	out := make([][]float64, len(w.m))
	for i, row := range w.m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
