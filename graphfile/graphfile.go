// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
)

// Sentinel errors for graph files.
var (
	// ErrAmbiguousGraph indicates a file that sets both adjacency and matrix.
	ErrAmbiguousGraph = errors.New("graphfile: both adjacency and matrix are set")

	// ErrEmptyGraphFile indicates a file that sets neither adjacency nor matrix.
	ErrEmptyGraphFile = errors.New("graphfile: neither adjacency nor matrix is set")

	// ErrUnsupportedFormat indicates an unknown codec or file extension.
	ErrUnsupportedFormat = errors.New("graphfile: unsupported file format")

	// ErrInvalidNodeKey indicates an adjacency key that is not a decimal integer.
	ErrInvalidNodeKey = errors.New("graphfile: adjacency key is not a node id")

	// ErrDuplicateNodeKey indicates two adjacency keys naming the same node ("1" and "01").
	ErrDuplicateNodeKey = errors.New("graphfile: adjacency keys name the same node")
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec names a serialization format.
type Codec string

// Supported codecs.
const (
	JSON Codec = "json"
	YAML Codec = "yaml"
	TOML Codec = "toml"
)

// File is the on-disk shape of a graph.
type File struct {
	Name      string                      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Adjacency map[string][]input.Neighbor `json:"adjacency,omitempty" yaml:"adjacency,omitempty" toml:"adjacency,omitempty"`
	Matrix    [][]float64                 `json:"matrix,omitempty" yaml:"matrix,omitempty" toml:"matrix,omitempty"`
}

// CodecFor picks the codec from path's extension, case-insensitively.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Decode parses data with codec c. The result is not validated; see Validate.
func Decode(data []byte, c Codec) (*File, error) {
	var (
		f   File
		err error
	)
	switch c {
	case JSON:
		err = jsonAPI.Unmarshal(data, &f)
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case TOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("Decode: %q: %w", c, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("Decode %s: %w", c, err)
	}

	return &f, nil
}

// Encode serializes f with codec c.
func Encode(f *File, c Codec) ([]byte, error) {
	switch c {
	case JSON:
		data, err := jsonAPI.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("Encode json: %w", err)
		}
		return append(data, '\n'), nil
	case YAML:
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("Encode yaml: %w", err)
		}
		return data, nil
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, fmt.Errorf("Encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("Encode: %q: %w", c, ErrUnsupportedFormat)
	}
}

// Load reads and decodes the file at path, picking the codec by extension.
func Load(path string) (*File, error) {
	c, err := CodecFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Save encodes f by path's extension and writes it with mode 0o644.
func Save(path string, f *File) error {
	c, err := CodecFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks that exactly one encoding is present.
func (f *File) Validate() error {
	hasAdj, hasMatrix := len(f.Adjacency) > 0, len(f.Matrix) > 0
	switch {
	case hasAdj && hasMatrix:
		return ErrAmbiguousGraph
	case !hasAdj && !hasMatrix:
		return ErrEmptyGraphFile
	default:
		return nil
	}
}

// Source validates f and builds the matching input.Source.
// opts apply only to matrix files.
func (f *File) Source(opts ...input.Option) (input.Source, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if len(f.Matrix) > 0 {
		return input.NewWeightMatrix(f.Matrix, opts...)
	}

	keys := make([]string, 0, len(f.Adjacency))
	for key := range f.Adjacency {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	data := make(map[core.NodeID][]input.Neighbor, len(f.Adjacency))
	owner := make(map[core.NodeID]string, len(f.Adjacency))
	for _, key := range keys {
		u, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("adjacency key %q: %w", key, ErrInvalidNodeKey)
		}
		if prev, dup := owner[u]; dup {
			return nil, fmt.Errorf("adjacency keys %q and %q: %w", prev, key, ErrDuplicateNodeKey)
		}
		owner[u] = key
		data[u] = f.Adjacency[key]
	}

	return input.NewAdjacencyList(data)
}

// FromSource captures src as a File. asMatrix selects the matrix encoding;
// otherwise the adjacency encoding lists every edge in both directions.
func FromSource(name string, src input.Source, asMatrix bool) (*File, error) {
	f := &File{Name: name}
	if asMatrix {
		m, err := input.MatrixData(src)
		if err != nil {
			return nil, fmt.Errorf("FromSource: %w", err)
		}
		f.Matrix = m
		return f, nil
	}

	adj := input.AdjacencyData(src)
	f.Adjacency = make(map[string][]input.Neighbor, len(adj))
	for u, list := range adj {
		if list == nil {
			list = []input.Neighbor{}
		}
		f.Adjacency[strconv.Itoa(u)] = list
	}

	return f, nil
}
