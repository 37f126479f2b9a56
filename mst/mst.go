// SPDX-License-Identifier: MIT

package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstkit/input"
	"github.com/katalvlaran/mstkit/output"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// Sentinel errors for missing collaborators.
var (
	// ErrNilAlgorithm indicates a nil prim_kruskal.Algorithm.
	ErrNilAlgorithm = errors.New("mst: algorithm is nil")

	// ErrNilSource indicates a nil input.Source.
	ErrNilSource = errors.New("mst: graph source is nil")

	// ErrNilFormat indicates a nil output.Format.
	ErrNilFormat = errors.New("mst: output format is nil")
)

// ComputeMST runs alg over src and shapes the emitted edges with f.
//
// Steps:
//  1. edges = src.Edges()
//  2. c = f.NewCollector()
//  3. alg.Compute(edges, c)
//  4. return f.Extract(c.Result())
//
// Complexity: that of alg plus O(E) for the edge copy.
func ComputeMST[R any](alg prim_kruskal.Algorithm, src input.Source, f output.Format[R]) (R, error) {
	var zero R
	if alg == nil {
		return zero, ErrNilAlgorithm
	}
	if src == nil {
		return zero, ErrNilSource
	}
	if f == nil {
		return zero, ErrNilFormat
	}

	edges := src.Edges()
	c := f.NewCollector()
	alg.Compute(edges, c)

	return f.Extract(c.Result()), nil
}

// Run is ComputeMST with the format picked by kind at runtime.
// The dynamic type of the result is the R of the matching output format.
func Run(alg prim_kruskal.Algorithm, src input.Source, kind output.Kind) (any, error) {
	switch kind {
	case output.KindWeight:
		return ComputeMST(alg, src, output.Weight)
	case output.KindEdges:
		return ComputeMST(alg, src, output.Edges)
	case output.KindWeightAndEdges:
		return ComputeMST(alg, src, output.WeightAndEdges)
	case output.KindPretty:
		return ComputeMST(alg, src, output.PrettyStruct)
	case output.KindWeightsList:
		return ComputeMST(alg, src, output.WeightsList)
	default:
		return nil, fmt.Errorf("%q: %w", kind, output.ErrUnknownFormat)
	}
}

// RunNamed resolves method and format by name, then calls Run.
// opts are applied after WithMethod(method), so WithRoot and WithSpanForest
// can be passed through for Prim.
func RunNamed(method string, src input.Source, format string, opts ...prim_kruskal.Option) (any, error) {
	alg, err := prim_kruskal.New(append([]prim_kruskal.Option{prim_kruskal.WithMethod(method)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("RunNamed: %w", err)
	}
	kind, err := output.ParseKind(format)
	if err != nil {
		return nil, fmt.Errorf("RunNamed: %w", err)
	}

	return Run(alg, src, kind)
}

// Spans reports whether edgeCount edges can form a spanning tree of src,
// i.e. edgeCount == |V|-1. An empty graph is spanned by zero edges.
func Spans(src input.Source, edgeCount int) bool {
	n := len(src.Nodes())
	if n == 0 {
		return edgeCount == 0
	}

	return edgeCount == n-1
}
