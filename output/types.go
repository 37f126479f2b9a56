// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mstkit/collector"
)

// ErrUnknownFormat indicates a format name outside Kinds(). It is a
// programming error and is never retried.
var ErrUnknownFormat = errors.New("output: unknown output format")

// Kind names one output format.
type Kind string

// Supported kinds.
const (
	KindWeight         Kind = "weight"
	KindEdges          Kind = "edges"
	KindWeightAndEdges Kind = "weight-and-edges"
	KindPretty         Kind = "pretty"
	KindWeightsList    Kind = "weights"
)

// Kinds lists every supported Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindWeight, KindEdges, KindWeightAndEdges, KindPretty, KindWeightsList}
}

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Format creates the collector for one computation and extracts the final result from it.
type Format[R any] interface {
	// Kind returns the format's name.
	Kind() Kind

	// NewCollector returns a fresh, empty collector owned by one computation.
	NewCollector() collector.Collector[R]

	// Extract converts the collector's aggregate into the caller-visible result.
	Extract(aggregate R) R
}
