// SPDX-License-Identifier: MIT
// Package: gaussian
//
// Purpose:
//   - Single place for the shape checks both passes run before touching the buffers.
//   - Return plain sentinels wrapped with positional context; the facade adds the op tag.

package gaussian

import "fmt"

// validateSystem checks that matrix is rectangular and that result has one
// entry per row.
//
// A matrix with no rows, or whose rows are all empty, is the empty system:
// it has no unknowns, so result is not inspected.
//
// Errors:
//   - ErrDimensionMismatch on a ragged row or a result length mismatch.
//
// Complexity: O(m).
func validateSystem[T any](matrix [][]T, result []T) error {
	m, n := dims(matrix)
	for i := 1; i < m; i++ {
		if len(matrix[i]) != n {
			return fmt.Errorf("row %d has %d columns, row 0 has %d: %w", i, len(matrix[i]), n, ErrDimensionMismatch)
		}
	}
	if n == 0 {
		return nil
	}
	if len(result) != m {
		return fmt.Errorf("result has %d entries for %d rows: %w", len(result), m, ErrDimensionMismatch)
	}

	return nil
}
