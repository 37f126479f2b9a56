// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstkit/collector"
	"github.com/katalvlaran/mstkit/internal/sweep"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

type sweepOptions struct {
	graph      graphOptions
	config     string
	methods    string
	formats    string
	parallel   int
	spanForest bool
	json       bool
}

func (c *CLI) sweepCommand() *cobra.Command {
	opts := sweepOptions{}

	cmd := &cobra.Command{
		Use:   "sweep [graph-file...]",
		Short: "Run every method and output format over graph files",
		Long: `Sweep runs each selected MST method with each selected output format over
every graph file and cross-checks that the methods agree on the weight of
spanning trees. Without arguments it sweeps the built-in demo graph in both
adjacency and matrix form.

Defaults can be read from a TOML file with --config; flags override it.`,
		Example: `  mstkit sweep
  mstkit sweep --methods prim --formats weight,pretty a.json b.yaml
  mstkit sweep --config sweep.toml --parallel 8 graphs/*.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSweep(cmd, args, opts)
		},
	}

	opts.graph.register(cmd)
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML file with sweep defaults")
	cmd.Flags().StringVar(&opts.methods, "methods", "", "comma-separated methods (default all)")
	cmd.Flags().StringVar(&opts.formats, "formats", "", "comma-separated output formats (default all)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", sweep.DefaultParallel, "maximum concurrent cases")
	cmd.Flags().BoolVar(&opts.spanForest, "span-forest", false, "make prim cover every component")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")

	return cmd
}

// resolveSweepConfig merges the config file (if any) with explicitly set flags.
func (c *CLI) resolveSweepConfig(cmd *cobra.Command, opts sweepOptions) (sweep.Config, error) {
	var fc fileConfig
	if opts.config != "" {
		var err error
		if fc, err = loadConfig(opts.config); err != nil {
			return sweep.Config{}, err
		}
		if fc.Verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("methods") || fc.Methods == nil {
		fc.Methods = splitList(opts.methods)
	}
	if flags.Changed("formats") || fc.Formats == nil {
		fc.Formats = splitList(opts.formats)
	}
	if flags.Changed("parallel") || fc.Parallel == 0 {
		fc.Parallel = opts.parallel
	}
	if flags.Changed("span-forest") {
		fc.SpanForest = opts.spanForest
	}

	methods, err := parseMethods(fc.Methods)
	if err != nil {
		return sweep.Config{}, err
	}
	kinds, err := parseKinds(fc.Formats)
	if err != nil {
		return sweep.Config{}, err
	}

	cfg := sweep.Config{
		Methods:  methods,
		Formats:  kinds,
		Parallel: fc.Parallel,
		Logger:   loggerFromContext(cmd.Context()),
	}
	if fc.SpanForest {
		cfg.Options = append(cfg.Options, prim_kruskal.WithSpanForest())
	}
	return cfg, nil
}

func (c *CLI) runSweep(cmd *cobra.Command, paths []string, opts sweepOptions) error {
	cfg, err := c.resolveSweepConfig(cmd, opts)
	if err != nil {
		return err
	}

	var inputs []sweep.Input
	if len(paths) == 0 {
		if inputs, err = demoInputs(); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		name, src, err := loadGraph(p, opts.graph)
		if err != nil {
			return err
		}
		name = uniqueName(name, p, seen)
		cfg.Logger.Debug("graph loaded", "path", p, "name", name, "nodes", len(src.Nodes()))
		inputs = append(inputs, sweep.Input{Name: name, Source: src})
	}

	results, err := sweep.Run(cmd.Context(), inputs, cfg)
	if err != nil {
		return err
	}
	mismatches := sweep.Mismatches(results)

	out := cmd.OutOrStdout()
	if opts.json {
		if err := writeJSON(out, sweepReport(results, mismatches)); err != nil {
			return err
		}
	} else {
		printSweep(out, results, mismatches)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	switch {
	case failed > 0:
		return fmt.Errorf("sweep: %d of %d cases failed", failed, len(results))
	case len(mismatches) > 0:
		return fmt.Errorf("sweep: %d weight mismatches between methods", len(mismatches))
	default:
		return nil
	}
}

// uniqueName returns name, or the file path, or the path with a "#n" suffix,
// whichever is not yet in seen, and records it.
func uniqueName(name, path string, seen map[string]bool) string {
	candidate := name
	if seen[candidate] {
		candidate = path
	}
	for n := 2; seen[candidate]; n++ {
		candidate = fmt.Sprintf("%s#%d", path, n)
	}
	seen[candidate] = true
	return candidate
}

type jsonCase struct {
	Input     string `json:"input"`
	Method    string `json:"method"`
	Format    string `json:"format"`
	Value     any    `json:"value,omitempty"`
	EdgeCount int    `json:"edge_count"`
	Spans     bool   `json:"spans"`
	Error     string `json:"error,omitempty"`
	ElapsedNS int64  `json:"elapsed_ns"`
}

type jsonReport struct {
	Cases      []jsonCase `json:"cases"`
	Mismatches []string   `json:"mismatches"`
}

func sweepReport(results []sweep.Result, mismatches []sweep.Mismatch) jsonReport {
	rep := jsonReport{Cases: make([]jsonCase, len(results)), Mismatches: []string{}}
	for i, r := range results {
		jc := jsonCase{
			Input:     r.Input,
			Method:    r.Method,
			Format:    string(r.Format),
			Value:     r.Value,
			EdgeCount: r.EdgeCount,
			Spans:     r.Spans,
			ElapsedNS: r.Elapsed.Nanoseconds(),
		}
		if r.Err != nil {
			jc.Error = r.Err.Error()
		}
		rep.Cases[i] = jc
	}
	for _, m := range mismatches {
		rep.Mismatches = append(rep.Mismatches, m.String())
	}
	return rep
}

func printSweep(w io.Writer, results []sweep.Result, mismatches []sweep.Mismatch) {
	current := ""
	for _, r := range results {
		if r.Input != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			current = r.Input
			printTitle(w, "%s", current)
		}
		label := fmt.Sprintf("%s/%s", r.Method, r.Format)
		if r.Err != nil {
			printError(w, "%s: %v", label, r.Err)
			continue
		}

		shape := ""
		switch {
		case r.EdgeCount < 0:
		case r.Spans:
			shape = styleDim.Render(" (tree)")
		default:
			shape = styleDim.Render(" (forest)")
		}

		if s, ok := r.Value.(collector.Summary); ok {
			printSuccess(w, "%s%s", label, shape)
			for _, line := range strings.Split(s.String(), "\n") {
				printDetail(w, "%s", line)
			}
			continue
		}
		var buf strings.Builder
		_ = writeResult(&buf, r.Value)
		printSuccess(w, "%s %s%s", label, styleNumber.Render(strings.TrimSuffix(buf.String(), "\n")), shape)
	}

	for _, m := range mismatches {
		printWarning(w, "%s", m.String())
	}
}
