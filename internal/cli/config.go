// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mstkit/output"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// fileConfig holds sweep defaults read from a TOML file:
//
//	methods     = ["kruskal", "prim"]
//	formats     = ["weight", "pretty"]
//	parallel    = 8
//	span_forest = true
//	verbose     = false
//
// Flags set on the command line override these values.
type fileConfig struct {
	Methods    []string `toml:"methods"`
	Formats    []string `toml:"formats"`
	Parallel   int      `toml:"parallel"`
	SpanForest bool     `toml:"span_forest"`
	Verbose    bool     `toml:"verbose"`
}

// loadConfig decodes path and rejects unknown keys, methods and formats.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if _, err := parseMethods(cfg.Methods); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := parseKinds(cfg.Formats); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// parseMethods validates names by resolving each through prim_kruskal.New.
func parseMethods(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, n := range names {
		alg, err := prim_kruskal.New(prim_kruskal.WithMethod(n))
		if err != nil {
			return nil, err
		}
		out = append(out, alg.Method())
	}
	return out, nil
}

func parseKinds(names []string) ([]output.Kind, error) {
	out := make([]output.Kind, 0, len(names))
	for _, n := range names {
		k, err := output.ParseKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
