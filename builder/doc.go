// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures for tests,
// benchmarks and the mstkit CLI.
//
// Design contract:
//   - One orchestrator pair: BuildMatrix / BuildAdjacency(bopts, cons...).
//     Both resolve options into an immutable builderConfig and run the
//     constructors in order over a shared, growing canvas of node indices.
//   - Constructors (Complete, Cycle, Path, Star, RandomSparse, Isolated) and
//     the Offset combinator live in impl_*.go.
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Safety: constructors never panic and return sentinel errors; option
//     constructors (WithX) panic on meaningless arguments.
//
// Canvas semantics:
//
//	Constructors write into an n×n weight matrix that grows as needed.
//	Writing an edge that already exists keeps the lighter weight, so
//	overlaying topologies never produces parallel edges or self-loops.
//	Offset(k, c) shifts c's node indices by k, which is how disjoint
//	components (disconnected fixtures) are assembled.
//
// Example:
//
//	// Two disjoint 4-cycles, weights uniform in [1,10), seed 7.
//	src, err := builder.BuildMatrix(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.Cycle(4),
//	    builder.Offset(4, builder.Cycle(4)),
//	)
package builder
