// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel with where it was found.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateWeight checks that w is finite and non-negative.
// Complexity: O(1).
func validateWeight(tag string, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return validatorErrorf(tag, ErrNaNInf)
	}
	if w < 0 {
		return validatorErrorf(tag, ErrNegativeWeight)
	}

	return nil
}

// validateSquare checks that every row of m has len(m) columns.
// Complexity: O(n).
func validateSquare(m [][]float64) error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d has %d columns, want %d", i, len(row), n), ErrNonSquare)
		}
	}

	return nil
}

// validateSymmetric checks |m[i][j] - m[j][i]| ≤ eps over the strict upper triangle.
// Assumes m is square.
// Complexity: O(n²).
func validateSymmetric(m [][]float64, eps float64) error {
	n := len(m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m[i][j]-m[j][i]) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: [%d][%d]=%g vs [%d][%d]=%g", i, j, m[i][j], j, i, m[j][i]), ErrAsymmetry)
			}
		}
	}

	return nil
}
