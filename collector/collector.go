// SPDX-License-Identifier: MIT

package collector

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/mstkit/core"
)

// Collector is an EdgeSink that can report what it accumulated as R.
// Result may be called more than once; it returns an independent copy.
type Collector[R any] interface {
	core.EdgeSink
	Result() R
}

// Totals is the (total weight, edge list) aggregate.
type Totals struct {
	Weight float64     `json:"weight"`
	Edges  []core.Pair `json:"edges"`
}

// Summary is the pretty-printable aggregate: total weight and weighted edges.
type Summary struct {
	Weight float64     `json:"weight"`
	Edges  []core.Edge `json:"edges"`
}

// String renders s as
//
//	Total Weight: {w}
//	Edges:
//	{u} -- {v} (weight: {w})
//
// with one line per edge and no trailing newline after the last edge.
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("Total Weight: ")
	b.WriteString(FormatWeight(s.Weight))
	b.WriteString("\nEdges:\n")
	for i, e := range s.Edges {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(e.U))
		b.WriteString(" -- ")
		b.WriteString(strconv.Itoa(e.V))
		b.WriteString(" (weight: ")
		b.WriteString(FormatWeight(e.Weight))
		b.WriteByte(')')
	}

	return b.String()
}

// FormatWeight renders w in the shortest decimal form that round-trips
// (16 → "16", 2.5 → "2.5").
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// WeightOnly keeps the running total weight.
type WeightOnly struct {
	total float64
}

// NewWeightOnly returns an empty WeightOnly collector.
func NewWeightOnly() *WeightOnly { return &WeightOnly{} }

func (c *WeightOnly) AddEdge(_, _ core.NodeID, weight float64) { c.total += weight }

// Result returns the total weight.
func (c *WeightOnly) Result() float64 { return c.total }

// EdgesOnly keeps the emitted edges without weights.
type EdgesOnly struct {
	edges []core.Pair
}

// NewEdgesOnly returns an empty EdgesOnly collector.
func NewEdgesOnly() *EdgesOnly { return &EdgesOnly{edges: []core.Pair{}} }

func (c *EdgesOnly) AddEdge(u, v core.NodeID, _ float64) {
	c.edges = append(c.edges, core.Pair{U: u, V: v})
}

// Result returns the edges in emission order.
func (c *EdgesOnly) Result() []core.Pair { return clonePairs(c.edges) }

// WeightAndEdges keeps both the running total and the edges.
type WeightAndEdges struct {
	total float64
	edges []core.Pair
}

// NewWeightAndEdges returns an empty WeightAndEdges collector.
func NewWeightAndEdges() *WeightAndEdges { return &WeightAndEdges{edges: []core.Pair{}} }

func (c *WeightAndEdges) AddEdge(u, v core.NodeID, weight float64) {
	c.total += weight
	c.edges = append(c.edges, core.Pair{U: u, V: v})
}

// Result returns the total weight together with the edges.
func (c *WeightAndEdges) Result() Totals {
	return Totals{Weight: c.total, Edges: clonePairs(c.edges)}
}

// Pretty keeps the total and the weighted edges for human-readable output.
type Pretty struct {
	total float64
	edges []core.Edge
}

// NewPretty returns an empty Pretty collector.
func NewPretty() *Pretty { return &Pretty{edges: []core.Edge{}} }

func (c *Pretty) AddEdge(u, v core.NodeID, weight float64) {
	c.total += weight
	c.edges = append(c.edges, core.Edge{U: u, V: v, Weight: weight})
}

// Result returns a Summary whose String method renders the tree.
func (c *Pretty) Result() Summary {
	return Summary{Weight: c.total, Edges: append(make([]core.Edge, 0, len(c.edges)), c.edges...)}
}

// WeightsList keeps only the weights, in emission order.
type WeightsList struct {
	weights []float64
}

// NewWeightsList returns an empty WeightsList collector.
func NewWeightsList() *WeightsList { return &WeightsList{weights: []float64{}} }

func (c *WeightsList) AddEdge(_, _ core.NodeID, weight float64) {
	c.weights = append(c.weights, weight)
}

// Result returns the weights in emission order.
func (c *WeightsList) Result() []float64 {
	return append(make([]float64, 0, len(c.weights)), c.weights...)
}

func clonePairs(in []core.Pair) []core.Pair {
	return append(make([]core.Pair, 0, len(in)), in...)
}

// Compile-time interface checks.
var (
	_ Collector[float64]     = (*WeightOnly)(nil)
	_ Collector[[]core.Pair] = (*EdgesOnly)(nil)
	_ Collector[Totals]      = (*WeightAndEdges)(nil)
	_ Collector[Summary]     = (*Pretty)(nil)
	_ Collector[[]float64]   = (*WeightsList)(nil)
)
