// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options, the Algorithm
// capability and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mstkit/core"
)

// ErrUnknownMethod indicates that MSTOptions.Method names no supported algorithm.
// It is a programming error and is never retried.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Algorithm computes a minimum spanning tree (or forest) over a canonical
// edge list and pushes every accepted edge into sink, in algorithm order.
//
// Compute returns nothing: the whole result lives in the sink, so one
// implementation serves every output shape. Implementations hold no state
// between calls and perform no I/O; a single Algorithm value may be used
// from many goroutines as long as each call gets its own sink.
type Algorithm interface {
	// Method returns MethodKruskal or MethodPrim.
	Method() string

	// Compute runs to completion, calling sink.AddEdge once per MST edge.
	Compute(edges []core.Edge, sink core.EdgeSink)
}

// MSTOptions configures which MST algorithm to run and, for Prim, where to start.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method     string     : one of MethodPrim or MethodKruskal.
//	Root       core.NodeID: start node for Prim; used only when HasRoot.
//	HasRoot    bool       : false means "lowest node id touching an edge".
//	SpanForest bool       : Prim restarts in every unvisited component.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root core.NodeID

	// HasRoot records whether Root was set explicitly.
	HasRoot bool

	// SpanForest makes Prim cover every component instead of only the root's.
	SpanForest bool
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal; matching ignores case and
// surrounding whitespace.
func WithMethod(m string) Option {
	m = strings.ToLower(strings.TrimSpace(m))
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm; ignored by Kruskal.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.HasRoot = true
	}
}

// WithSpanForest returns an Option that makes Prim restart from the lowest
// unvisited node until every component is covered, so its output has the same
// shape as Kruskal's on disconnected graphs. Ignored by Kruskal.
func WithSpanForest() Option {
	return func(opts *MSTOptions) {
		opts.SpanForest = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method     = MethodKruskal
//	– HasRoot    = false (Prim starts at the lowest node id)
//	– SpanForest = false (Prim explores only the start component).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// Methods lists the supported method names in a stable order.
func Methods() []string {
	return []string{MethodKruskal, MethodPrim}
}

// New resolves opts over DefaultOptions and returns the selected Algorithm.
//
// Returns ErrUnknownMethod (wrapped with the offending name) when
// opts.Method is neither MethodKruskal nor MethodPrim.
func New(opts ...Option) (Algorithm, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal, MethodPrim:
		return algorithm{opts: o}, nil
	default:
		return nil, fmt.Errorf("%q: %w", o.Method, ErrUnknownMethod)
	}
}

// algorithm binds resolved options to the Algorithm interface.
type algorithm struct {
	opts MSTOptions
}

func (a algorithm) Method() string { return a.opts.Method }

func (a algorithm) Compute(edges []core.Edge, sink core.EdgeSink) {
	// New rejected every other method, so the error is unreachable here.
	_ = Compute(edges, sink, a.opts)
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(edges, sink).
//	– If opts.Method == MethodPrim:    calls Prim(edges, sink, ...) with opts' root/forest settings.
//	– Otherwise:                        returns ErrUnknownMethod and emits nothing.
//
// Prim and Kruskal can also be called directly.
func Compute(edges []core.Edge, sink core.EdgeSink, opts MSTOptions) error {
	switch opts.Method {
	case MethodKruskal:
		Kruskal(edges, sink)
	case MethodPrim:
		var popts []Option
		if opts.HasRoot {
			popts = append(popts, WithRoot(opts.Root))
		}
		if opts.SpanForest {
			popts = append(popts, WithSpanForest())
		}
		Prim(edges, sink, popts...)
	default:
		return fmt.Errorf("%q: %w", opts.Method, ErrUnknownMethod)
	}

	return nil
}

// discard is the sink used when callers pass nil.
var discard = core.SinkFunc(func(core.NodeID, core.NodeID, float64) {})
