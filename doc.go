// SPDX-License-Identifier: MIT

// Package mstkit computes minimum spanning trees of weighted undirected
// graphs, with every combination of graph encoding, algorithm and result
// shape available through one call.
//
// The library is split by role:
//
//	core/         : Edge, Pair, NodeID and the EdgeSink capability
//	input/        : graph sources: AdjacencyList and WeightMatrix (validated, immutable)
//	prim_kruskal/ : Kruskal (sort + union-find) and Prim (lazy min-heap)
//	collector/    : sinks that fold emitted edges into one result shape
//	output/       : formats pairing a collector with its result type
//	mst/          : ComputeMST / Run / RunNamed orchestration
//	builder/      : seeded fixture graphs (complete, cycle, path, star, G(n,p))
//	graphfile/    : JSON, YAML and TOML graph files
//	render/       : DOT and SVG drawings of a graph and its tree
//
// Algorithms never build a result themselves: they push each accepted edge
// into a sink, and the sink decides what to keep. Any algorithm therefore
// works with any output format.
//
//	src, _ := input.NewWeightMatrix(rows)
//	alg, _ := prim_kruskal.New(prim_kruskal.WithMethod("prim"))
//	sum, _ := mst.ComputeMST(alg, src, output.PrettyStruct)
//	fmt.Println(sum)
//
// On a disconnected graph Kruskal returns a minimum spanning forest, while
// Prim covers only the component of its start node unless
// prim_kruskal.WithSpanForest is given. mst.Spans tells the two apart.
//
// The mstkit command (cmd/mstkit) wraps the library: compute, sweep, render
// and generate.
package mstkit
