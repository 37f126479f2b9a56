// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodIsolated     = "Isolated"
	methodRandomSparse = "RandomSparse"
	methodOffset       = "Offset"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minIsolatedNodes = 1
	minRandomNodes   = 1
)

// Complete returns a Constructor for K_n: every pair {i,j}, i<j, once.
// Edges are emitted in (i asc, j asc) order so weights are reproducible.
func Complete(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		c.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				c.setEdge(i, j, cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for C_n: 0-1-…-(n-1)-0.
func Cycle(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		c.grow(n)
		for i := 0; i < n; i++ {
			c.setEdge(i, (i+1)%n, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Path returns a Constructor for P_n: 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		c.grow(n)
		for i := 0; i+1 < n; i++ {
			c.setEdge(i, i+1, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Star returns a Constructor for a star on n nodes: hub 0, leaves 1..n-1.
func Star(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		c.grow(n)
		for leaf := 1; leaf < n; leaf++ {
			c.setEdge(0, leaf, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Isolated returns a Constructor that only reserves n nodes without edges.
func Isolated(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		c.grow(n)

		return nil
	}
}

// RandomSparse returns a Constructor for an Erdős–Rényi G(n,p) graph.
// Each pair {i,j}, i<j, is kept with probability p, scanned in (i asc, j asc)
// order. p=0 and p=1 are deterministic; any other p needs WithSeed/WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || p != p {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrNeedRandSource)
		}
		c.grow(n)
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				c.setEdge(i, j, cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}

// Offset returns a Constructor that runs inner with node indices shifted by k.
// Combined with other constructors it yields disjoint components.
func Offset(k int, inner Constructor) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if k < 0 || inner == nil {
			return fmt.Errorf("%s: k=%d: %w", methodOffset, k, ErrConstructFailed)
		}
		sub := &canvas{}
		if err := inner(sub, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodOffset, err)
		}
		c.grow(k + sub.size())
		for i, row := range sub.m {
			for j := i + 1; j < len(row); j++ {
				if w := row[j]; w > 0 {
					c.setEdge(i+k, j+k, w)
				}
			}
		}

		return nil
	}
}
