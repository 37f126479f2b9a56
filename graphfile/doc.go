// SPDX-License-Identifier: MIT

// Package graphfile reads and writes graphs stored as JSON, YAML or TOML.
//
// A file names the graph and carries exactly one encoding:
//
//	name: demo
//	adjacency:
//	  "0": [{node: 1, weight: 10}, {node: 3, weight: 5}]
//	  "1": [{node: 0, weight: 10}]
//	  "3": [{node: 0, weight: 5}]
//
// or
//
//	name = "demo"
//	matrix = [[0.0, 10.0], [10.0, 0.0]]
//
// Adjacency keys are decimal node ids; they are strings because JSON and
// TOML only allow string keys. Validation beyond the file shape is done by
// package input when the File is turned into a Source.
//
// The codec is picked from the file extension: .json, .yaml/.yml, .toml.
package graphfile
