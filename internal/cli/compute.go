// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstkit/collector"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/mst"
	"github.com/katalvlaran/mstkit/output"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

type computeOptions struct {
	graph      graphOptions
	method     string
	format     string
	root       int
	spanForest bool
	json       bool
}

func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute [graph-file]",
		Short: "Compute the minimum spanning tree of one graph",
		Long: `Compute runs one MST method over a graph file and prints one output format.

Formats: weight, edges, weight-and-edges, pretty, weights.`,
		Example: `  mstkit compute demo.yaml
  mstkit compute --method prim --root 2 --format edges demo.json
  mstkit compute --format weight-and-edges --json demo.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd, args[0], opts)
		},
	}

	opts.graph.register(cmd)
	cmd.Flags().StringVarP(&opts.method, "method", "m", prim_kruskal.MethodKruskal, "MST method: kruskal or prim")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(output.KindPretty), "output format")
	cmd.Flags().IntVar(&opts.root, "root", 0, "start node for prim")
	cmd.Flags().BoolVar(&opts.spanForest, "span-forest", false, "make prim cover every component")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

func (c *CLI) runCompute(cmd *cobra.Command, path string, opts computeOptions) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	name, src, err := loadGraph(path, opts.graph)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "name", name, "nodes", len(src.Nodes()), "edges", len(src.Edges()))

	var popts []prim_kruskal.Option
	if cmd.Flags().Changed("root") {
		popts = append(popts, prim_kruskal.WithRoot(opts.root))
	}
	if opts.spanForest {
		popts = append(popts, prim_kruskal.WithSpanForest())
	}

	res, err := mst.RunNamed(opts.method, src, opts.format, popts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed %s tree of %s", opts.method, name))

	out := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(out, res)
	}
	return writeResult(out, res)
}

// writeResult prints res in its plain-text form:
//
//	weight            19
//	edges             [(2, 3), (0, 3), (0, 1)]
//	weight-and-edges  19 [(2, 3), (0, 3), (0, 1)]
//	pretty            collector.Summary.String
//	weights           [4, 5, 10]
func writeResult(w io.Writer, res any) error {
	var text string
	switch v := res.(type) {
	case float64:
		text = collector.FormatWeight(v)
	case []core.Pair:
		text = formatPairs(v)
	case collector.Totals:
		text = collector.FormatWeight(v.Weight) + " " + formatPairs(v.Edges)
	case collector.Summary:
		text = v.String()
	case []float64:
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = collector.FormatWeight(x)
		}
		text = "[" + strings.Join(parts, ", ") + "]"
	default:
		text = fmt.Sprint(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func formatPairs(ps []core.Pair) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = "(" + strconv.Itoa(p.U) + ", " + strconv.Itoa(p.V) + ")"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
