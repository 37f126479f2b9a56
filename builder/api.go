// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/input"
)

// Constructor writes a topology onto the canvas using cfg for weights and
// randomness. It must not panic; failures are reported as sentinel errors.
type Constructor func(c *canvas, cfg builderConfig) error

// canvas is a growable symmetric weight matrix. Index 0 means "no edge".
type canvas struct {
	m [][]float64
}

// grow ensures the canvas holds at least n nodes.
func (c *canvas) grow(n int) {
	for len(c.m) < n {
		c.m = append(c.m, nil)
	}
	for i := range c.m {
		for len(c.m[i]) < len(c.m) {
			c.m[i] = append(c.m[i], 0)
		}
	}
}

// setEdge records {u,v} with weight w, keeping the lighter weight when the
// edge is already present. Self-loops and non-positive weights are ignored.
func (c *canvas) setEdge(u, v int, w float64) {
	if u == v || !(w > 0) {
		return
	}
	hi := u
	if v > hi {
		hi = v
	}
	c.grow(hi + 1)
	if cur := c.m[u][v]; cur > 0 && cur <= w {
		return
	}
	c.m[u][v] = w
	c.m[v][u] = w
}

// size returns the current node count.
func (c *canvas) size() int { return len(c.m) }

// build runs cons in order over a fresh canvas.
func build(tag string, bopts []BuilderOption, cons []Constructor) (*canvas, error) {
	cfg := newBuilderConfig(bopts...)
	c := &canvas{}
	for i, con := range cons {
		if con == nil {
			return nil, fmt.Errorf("%s: constructor %d is nil: %w", tag, i, ErrConstructFailed)
		}
		if err := con(c, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
	}

	return c, nil
}

// BuildMatrix runs cons and returns the result as an *input.WeightMatrix.
// Nodes never touched by any edge but within the canvas size stay isolated.
func BuildMatrix(bopts []BuilderOption, cons ...Constructor) (*input.WeightMatrix, error) {
	c, err := build("BuildMatrix", bopts, cons)
	if err != nil {
		return nil, err
	}

	return input.NewWeightMatrix(c.m)
}

// BuildAdjacency runs cons and returns the result as an *input.AdjacencyList
// listing every edge in both directions, neighbors ascending.
func BuildAdjacency(bopts []BuilderOption, cons ...Constructor) (*input.AdjacencyList, error) {
	c, err := build("BuildAdjacency", bopts, cons)
	if err != nil {
		return nil, err
	}

	data := make(map[core.NodeID][]input.Neighbor, c.size())
	for u, row := range c.m {
		list := []input.Neighbor{}
		for v, w := range row {
			if w > 0 {
				list = append(list, input.Neighbor{Node: v, Weight: w})
			}
		}
		data[u] = list
	}

	return input.NewAdjacencyList(data)
}
