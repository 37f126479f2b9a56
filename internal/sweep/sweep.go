// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstkit/collector"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
	"github.com/katalvlaran/mstkit/mst"
	"github.com/katalvlaran/mstkit/output"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// ErrNoInputs indicates a sweep without any graph.
var ErrNoInputs = errors.New("sweep: no inputs")

// ErrDuplicateInput indicates two inputs sharing a name; cases and
// mismatches are keyed by name, so names must be unique.
var ErrDuplicateInput = errors.New("sweep: duplicate input name")

// DefaultParallel is the worker count used when Config.Parallel ≤ 0.
const DefaultParallel = 4

// weightTolerance bounds the relative difference accepted between methods.
const weightTolerance = 1e-9

// Input is one named graph.
type Input struct {
	Name   string
	Source input.Source
}

// Config selects what to sweep. Empty lists mean "all".
type Config struct {
	Methods  []string
	Formats  []output.Kind
	Parallel int
	// Options are appended after the method for every case (WithRoot, WithSpanForest).
	Options []prim_kruskal.Option
	// Logger receives per-case debug lines and a final summary; nil means log.Default().
	Logger *log.Logger
}

// Case identifies one computation.
type Case struct {
	Input  string
	Method string
	Format output.Kind
}

func (c Case) String() string {
	return fmt.Sprintf("%s/%s/%s", c.Input, c.Method, c.Format)
}

// Result is the outcome of one Case.
type Result struct {
	Case
	// Value is the format-specific result, nil on error.
	Value any
	// Weight is the total weight when the format carries one.
	Weight    float64
	HasWeight bool
	// EdgeCount is the number of tree edges, or -1 when the format carries none.
	EdgeCount int
	// Spans reports whether the edges form a spanning tree; false when EdgeCount < 0.
	Spans   bool
	Err     error
	Elapsed time.Duration
}

// Mismatch reports methods that disagree on the weight of a spanning tree.
type Mismatch struct {
	Input   string
	Format  output.Kind
	Weights map[string]float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s/%s: weights differ across methods %v", m.Input, m.Format, m.Weights)
}

func (cfg Config) withDefaults() Config {
	if len(cfg.Methods) == 0 {
		cfg.Methods = prim_kruskal.Methods()
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = output.Kinds()
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = DefaultParallel
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return cfg
}

// Cases enumerates input × method × format in sweep order.
func Cases(inputs []Input, cfg Config) []Case {
	cfg = cfg.withDefaults()
	out := make([]Case, 0, len(inputs)*len(cfg.Methods)*len(cfg.Formats))
	for _, in := range inputs {
		for _, m := range cfg.Methods {
			for _, f := range cfg.Formats {
				out = append(out, Case{Input: in.Name, Method: m, Format: f})
			}
		}
	}
	return out
}

// Run executes every case with at most cfg.Parallel workers.
// The returned error is ErrNoInputs, ErrDuplicateInput or the context's error; per-case
// failures live in Result.Err.
func Run(ctx context.Context, inputs []Input, cfg Config) ([]Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	cfg = cfg.withDefaults()
	logger := cfg.Logger

	sources := make(map[string]input.Source, len(inputs))
	for _, in := range inputs {
		if _, dup := sources[in.Name]; dup {
			return nil, fmt.Errorf("%q: %w", in.Name, ErrDuplicateInput)
		}
		sources[in.Name] = in.Source
	}

	cases := Cases(inputs, cfg)
	results := make([]Result, len(cases))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runCase(c, sources[c.Input], cfg.Options)
			logger.Debug("case done", "case", c.String(), "elapsed", results[i].Elapsed, "error", results[i].Err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Info("sweep finished", "cases", len(results), "failed", failed, "workers", cfg.Parallel,
		"elapsed", time.Since(start).Round(time.Millisecond))

	return results, nil
}

func runCase(c Case, src input.Source, opts []prim_kruskal.Option) Result {
	r := Result{Case: c, EdgeCount: -1}
	start := time.Now()
	v, err := mst.RunNamed(c.Method, src, string(c.Format), opts...)
	r.Elapsed = time.Since(start)
	if err != nil {
		r.Err = err
		return r
	}
	r.Value = v
	r.Weight, r.HasWeight, r.EdgeCount = Describe(v)
	if r.EdgeCount >= 0 && src != nil {
		r.Spans = mst.Spans(src, r.EdgeCount)
	}
	return r
}

// Describe extracts the total weight and the edge count from a value
// returned by mst.Run. EdgeCount is -1 for the weight-only format.
func Describe(v any) (weight float64, hasWeight bool, edgeCount int) {
	switch x := v.(type) {
	case float64:
		return x, true, -1
	case []core.Pair:
		return 0, false, len(x)
	case collector.Totals:
		return x.Weight, true, len(x.Edges)
	case collector.Summary:
		return x.Weight, true, len(x.Edges)
	case []float64:
		var sum float64
		for _, w := range x {
			sum += w
		}
		return sum, true, len(x)
	default:
		return 0, false, -1
	}
}

// Mismatches compares total weights across methods for every input and
// format. Only results that carry a weight and are known to span are
// compared; the weight-only format is compared when some other format of the
// same input and method spans.
func Mismatches(results []Result) []Mismatch {
	type key struct {
		input  string
		format output.Kind
	}
	spanning := make(map[[2]string]bool)
	for _, r := range results {
		if r.Err == nil && r.Spans {
			spanning[[2]string{r.Input, r.Method}] = true
		}
	}

	var order []key
	weights := make(map[key]map[string]float64)
	for _, r := range results {
		if r.Err != nil || !r.HasWeight || !spanning[[2]string{r.Input, r.Method}] {
			continue
		}
		k := key{r.Input, r.Format}
		if weights[k] == nil {
			weights[k] = make(map[string]float64)
			order = append(order, k)
		}
		weights[k][r.Method] = r.Weight
	}

	var out []Mismatch
	for _, k := range order {
		if !agree(weights[k]) {
			out = append(out, Mismatch{Input: k.input, Format: k.format, Weights: weights[k]})
		}
	}
	return out
}

func agree(ws map[string]float64) bool {
	first, set := 0.0, false
	for _, w := range ws {
		if !set {
			first, set = w, true
			continue
		}
		scale := math.Max(1, math.Max(math.Abs(first), math.Abs(w)))
		if math.Abs(first-w) > weightTolerance*scale {
			return false
		}
	}
	return true
}
