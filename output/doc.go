// SPDX-License-Identifier: MIT

// Package output selects the result shape of an MST computation.
//
// A Format[R] pairs a collector factory with an Extract step that turns the
// collector's finished aggregate into the caller-visible R. All five formats
// shipped here use the identity Extract, because their collectors already
// build the final shape; the indirection lets a future format post-process
// without touching algorithms or collectors.
//
//	Kind               Format          R
//	"weight"           Weight          float64
//	"edges"            Edges           []core.Pair
//	"weight-and-edges" WeightAndEdges  collector.Totals
//	"pretty"           PrettyStruct    collector.Summary
//	"weights"          WeightsList     []float64
//
// Kind is the string name used by CLIs and config files; ParseKind rejects
// anything else with ErrUnknownFormat.
package output
