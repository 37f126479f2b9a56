// SPDX-License-Identifier: MIT

// Package collector accumulates the edge stream emitted by an MST algorithm
// into one aggregate shape.
//
// Every collector implements core.EdgeSink (so algorithms can push into it)
// and Collector[R] (so the orchestrator can read the finished aggregate):
//
//	WeightOnly     → float64        running sum of weights
//	EdgesOnly      → []core.Pair    edges in emission order
//	WeightAndEdges → Totals         sum + edges
//	Pretty         → Summary        sum + weighted edges, with a String() rendering
//	WeightsList    → []float64      weights in emission order
//
// With zero emitted edges each collector yields its identity aggregate:
// 0 weight and empty, non-nil slices.
//
// Collectors are single-use accumulators owned by one computation; they are
// not safe for concurrent use.
package collector
