// SPDX-License-Identifier: MIT

// Package core defines the canonical, representation-independent types that
// every other mstkit package speaks: node identifiers, weighted undirected
// edges, emitted edge pairs, and the EdgeSink callback through which MST
// algorithms push their results.
//
// Why a separate leaf package?
//
//   - input/ normalizes raw graphs INTO these types.
//   - prim_kruskal/ consumes []Edge and emits INTO an EdgeSink.
//   - collector/ implements EdgeSink and shapes the emitted stream.
//
// Keeping the vocabulary here lets each of those packages depend on core
// alone, so no algorithm ever imports a collector and no collector ever
// imports an algorithm.
//
// Invariants of a canonical edge list (as produced by input.Source):
//
//   - U != V (no self-loops).
//   - Weight is finite and ≥ 0.
//   - An undirected edge never appears in both orientations.
//
// Determinism:
//
//	SortedNodes and EdgeNodes always return ascending node IDs, so callers
//	that need a "first" node get the same answer on every run.
package core
