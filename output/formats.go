// SPDX-License-Identifier: MIT

package output

import (
	"github.com/katalvlaran/mstkit/collector"
	"github.com/katalvlaran/mstkit/core"
)

// The five built-in formats.
var (
	// Weight yields only the total MST weight.
	Weight Format[float64] = weightFormat{}

	// Edges yields only the MST edges, without weights.
	Edges Format[[]core.Pair] = edgesFormat{}

	// WeightAndEdges yields the total weight together with the edges.
	WeightAndEdges Format[collector.Totals] = weightAndEdgesFormat{}

	// PrettyStruct yields a Summary whose String method renders the tree.
	PrettyStruct Format[collector.Summary] = prettyFormat{}

	// WeightsList yields the edge weights in emission order.
	WeightsList Format[[]float64] = weightsListFormat{}
)

type weightFormat struct{}

func (weightFormat) Kind() Kind                                 { return KindWeight }
func (weightFormat) NewCollector() collector.Collector[float64] { return collector.NewWeightOnly() }
func (weightFormat) Extract(total float64) float64              { return total }

type edgesFormat struct{}

func (edgesFormat) Kind() Kind                                     { return KindEdges }
func (edgesFormat) NewCollector() collector.Collector[[]core.Pair] { return collector.NewEdgesOnly() }
func (edgesFormat) Extract(edges []core.Pair) []core.Pair          { return edges }

type weightAndEdgesFormat struct{}

func (weightAndEdgesFormat) Kind() Kind { return KindWeightAndEdges }
func (weightAndEdgesFormat) NewCollector() collector.Collector[collector.Totals] {
	return collector.NewWeightAndEdges()
}
func (weightAndEdgesFormat) Extract(t collector.Totals) collector.Totals { return t }

type prettyFormat struct{}

func (prettyFormat) Kind() Kind { return KindPretty }
func (prettyFormat) NewCollector() collector.Collector[collector.Summary] {
	return collector.NewPretty()
}
func (prettyFormat) Extract(s collector.Summary) collector.Summary { return s }

type weightsListFormat struct{}

func (weightsListFormat) Kind() Kind { return KindWeightsList }
func (weightsListFormat) NewCollector() collector.Collector[[]float64] {
	return collector.NewWeightsList()
}
func (weightsListFormat) Extract(ws []float64) []float64 { return ws }
