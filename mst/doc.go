// SPDX-License-Identifier: MIT

// Package mst wires a graph Source, an MST Algorithm and an output Format
// together for one computation.
//
//	edges := src.Edges()
//	c     := format.NewCollector()
//	alg.Compute(edges, c)
//	return format.Extract(c.Result())
//
// ComputeMST is the typed entry point: the result type follows the Format.
// Run and RunNamed are the type-erased variants used when the format is only
// known at runtime (CLIs, config files, batch sweeps); they select from the
// closed set of formats in package output and fail with
// output.ErrUnknownFormat / prim_kruskal.ErrUnknownMethod otherwise.
//
// There is no retry and no partial result: any failure is returned to the
// caller immediately. A disconnected graph is not a failure; use Spans to
// check whether the result is a tree.
//
// Every call allocates its own collector, so a single Source and Algorithm
// may be shared by concurrent calls.
package mst
