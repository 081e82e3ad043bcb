// SPDX-License-Identifier: MIT

package gaussian

// forwardElimination reduces matrix and result in place to row-echelon form
// (or to packed LU form when multiplier capture is on).
//
// Implementation:
//   - Stage 1: Build the System; the transformation vector exists only under PivotComplete.
//   - Stage 2: For k = 0 .. min(m,n)-2: pivot, skip a column whose pivot is still
//     zero, otherwise subtract multiplier × pivot row from every row below.
//   - Stage 3: Move rows that are zero at the last pivot column to the bottom.
//
// Behavior highlights:
//   - A zero pivot after pivoting is a free column, not an error.
//   - Only PivotNone can fail (ErrZeroPivot); the buffers keep whatever was
//     already reduced when it does.
//
// Complexity:
//   - Time O(min(m,n)·m·n) Field calls, Space O(n) for the transformation vector.
func (s *Solver[T]) forwardElimination(matrix [][]T, result []T) (*System[T], error) {
	m, n := dims(matrix)
	end := min(m, n)

	sys := &System[T]{Matrix: matrix, Result: result}
	if s.opts.pivoting == PivotComplete {
		sys.TransformationVector = identityPermutation(n)
	}
	phase := PhaseEvent[T]{Phase: PhaseForward, System: sys}

	s.hooks.eliminationStart(phase)

	for k := 0; k < end-1; k++ {
		if err := s.pivot(sys, k); err != nil {
			return nil, err
		}

		pivot := matrix[k][k]
		if s.field.IsZero(pivot) {
			continue
		}
		s.reduceColumn(sys, k, pivot)
	}

	reorderRows(s.field, matrix, result, end)

	s.hooks.eliminationEnd(phase)

	return sys, nil
}

// reduceColumn eliminates column k below the pivot row k.
func (s *Solver[T]) reduceColumn(sys *System[T], k int, pivot T) {
	matrix, result := sys.Matrix, sys.Result
	m, n := dims(matrix)
	pivotRow := matrix[k]

	column := ColumnEvent[T]{Step: k, Pivot: pivot}
	s.hooks.reduceColumnStart(column)

	for i := k + 1; i < m; i++ {
		row := matrix[i]
		multiplier := s.field.Div(row[k], pivot)
		ev := RowEvent[T]{Row: i, Step: k, Multiplier: multiplier, Pivot: pivot}

		s.hooks.reduceRowStart(ev)

		if s.opts.lu {
			row[k] = multiplier
		} else {
			row[k] = s.opts.zero
		}
		for j := k + 1; j < n; j++ {
			row[j] = s.field.Sub(row[j], s.field.Mul(multiplier, pivotRow[j]))
		}
		result[i] = s.field.Sub(result[i], s.field.Mul(multiplier, result[k]))

		s.hooks.reduceRowEnd(ev)
	}

	s.hooks.reduceColumnEnd(column)
}

// reorderRows moves every row at or below the last pivot row whose entry in
// the last pivot column is zero to the bottom of the system, swapping the
// result entries along. Rows above the last pivot row are never touched.
//
// Implementation:
//   - Walk i from the last pivot row while i is above the shrinking tail.
//   - A zero row is exchanged with the tail row and the tail shrinks by one;
//     the row swapped into i is examined again before i advances.
//
// These swaps are bookkeeping, not pivoting, so they are not reported.
func reorderRows[T any](field Field[T], matrix [][]T, result []T, end int) {
	if end <= 0 {
		return
	}
	j := end - 1
	last := len(matrix) - 1
	for i := j; i < last; {
		if field.IsZero(matrix[i][j]) {
			swapPlaces(matrix, i, last)
			swapPlaces(result, i, last)
			last--

			continue
		}
		i++
	}
}
