// SPDX-License-Identifier: MIT

// Package prim_kruskal provides two battle-tested algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted graph given as a canonical []core.Edge: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V (i.e., spans the graph) and the sum of weights of edges in T is minimized.
//
//   - Inversion of control:
//     Neither algorithm returns a slice. Both push every accepted edge into a core.EdgeSink, so one
//     algorithm body serves every result shape (see packages collector and output).
//
// Algorithms Provided
//
//   - Kruskal(edges []core.Edge, sink core.EdgeSink)
//
//   - Strategy: Stable-sort all edges by weight, then iterate from smallest to largest. Use a Disjoint-Set
//     (Union-Find, path halving + union by rank) to merge components, skipping edges whose endpoints are
//     already connected. Stop once |V|−1 edges have been emitted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: ties keep input order (sort.SliceStable).
//
//   - Prim(edges []core.Edge, sink core.EdgeSink, opts ...Option)
//
//   - Strategy: Grow a single tree from a start node. Maintain a lazy min-heap of (weight, from, to)
//     candidates; at each step extract the smallest one that reaches a new node.
//
//   - Start node: WithRoot(id), otherwise the lowest node id touching an edge.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Determinism: heap ties break on from-node, then to-node.
//
// Disconnected graphs
//
//	Neither algorithm fails on a disconnected graph. Kruskal returns a global spanning forest.
//	Prim returns the tree of the start node's component only; WithSpanForest() makes it restart
//	in every remaining component (lowest node id first), matching Kruskal's total weight.
//	Callers that need a spanning TREE compare the emitted edge count with |V|−1.
//
// Selecting by name
//
//	New(WithMethod(MethodPrim), WithRoot(3)) returns an Algorithm value;
//	unknown names fail with ErrUnknownMethod. Compute(edges, sink, opts) is the
//	same dispatch without the intermediate value.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
