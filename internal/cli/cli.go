// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstkit/graphfile"
	"github.com/katalvlaran/mstkit/input"
)

const appName = "mstkit"

// Version is the reported version; set via -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "mstkit computes minimum spanning trees of weighted graphs",
		Long:         `mstkit reads weighted undirected graphs (adjacency lists or weight matrices in JSON, YAML or TOML), computes their minimum spanning tree with Kruskal or Prim, and prints the result in one of several shapes.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\n", Version))

	root.AddCommand(c.computeCommand())
	root.AddCommand(c.sweepCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// graphOptions are flags shared by commands that read graph files.
type graphOptions struct {
	symmetryEps float64
	checkSym    bool
}

func (o *graphOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.checkSym, "check-symmetry", false, "reject asymmetric weight matrices")
	cmd.Flags().Float64Var(&o.symmetryEps, "symmetry-eps", 0, "tolerance for --check-symmetry")
}

func (o graphOptions) inputOptions() []input.Option {
	if !o.checkSym {
		return nil
	}
	return []input.Option{input.WithSymmetryCheck(o.symmetryEps)}
}

// loadGraph reads path and returns its display name and Source.
// The name falls back to the file name without extension.
func loadGraph(path string, opts graphOptions) (string, input.Source, error) {
	f, err := graphfile.Load(path)
	if err != nil {
		return "", nil, err
	}
	src, err := f.Source(opts.inputOptions()...)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return name, src, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
