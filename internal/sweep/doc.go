// SPDX-License-Identifier: MIT

// Package sweep runs every combination of graph input, MST method and output
// format, the way the demo program exercises the library, but concurrently
// and over any number of inputs.
//
// Cases are enumerated input-major, then method, then format. Results come
// back in that order whatever the worker count. A failing case records its
// error in Result.Err and does not stop the others; only context
// cancellation aborts a sweep.
//
// Mismatches cross-checks the methods: for every input and format whose
// result is a spanning tree, all methods must report the same total weight.
package sweep
