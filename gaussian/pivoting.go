// SPDX-License-Identifier: MIT

package gaussian

import "fmt"

// pivotFunc relocates rows (and, for PivotComplete, columns) of sys so that
// the chosen pivot for step k sits at (k,k).
type pivotFunc[T any] func(sys *System[T], k int) error

// selectPivoting returns the strategy implementation bound to s.
// Called once from New; p has already been validated.
func (s *Solver[T]) selectPivoting(p Pivoting) pivotFunc[T] {
	switch p {
	case PivotNone:
		return s.pivotNone
	case PivotAvoidZero:
		return s.pivotAvoidZero
	case PivotScaled:
		return s.pivotScaled
	case PivotComplete:
		return s.pivotComplete
	default:
		return s.pivotPartial
	}
}

// pivotNone requires a non-zero diagonal entry; there is no search.
func (s *Solver[T]) pivotNone(sys *System[T], k int) error {
	if s.field.IsZero(sys.Matrix[k][k]) {
		return fmt.Errorf("pivot %d: %w", k, ErrZeroPivot)
	}

	return nil
}

// pivotAvoidZero keeps a non-zero diagonal entry and otherwise behaves like
// partial pivoting.
func (s *Solver[T]) pivotAvoidZero(sys *System[T], k int) error {
	if s.field.IsZero(sys.Matrix[k][k]) {
		return s.pivotPartial(sys, k)
	}

	return nil
}

// pivotPartial swaps in the row r ≥ k with the strictly largest |matrix[r][k]|.
// Ties keep the earliest row.
func (s *Solver[T]) pivotPartial(sys *System[T], k int) error {
	s.swapRows(sys, k, s.maxAbsRowInColumn(sys.Matrix, k))

	return nil
}

// pivotScaled swaps in the row r ≥ k with the largest
// |matrix[r][k]| / max_j≥k |matrix[r][j]|. Ties keep the earliest row.
func (s *Solver[T]) pivotScaled(sys *System[T], k int) error {
	s.swapRows(sys, k, s.bestScaledRow(sys.Matrix, k))

	return nil
}

// pivotComplete moves the largest magnitude of the trailing sub-matrix
// [k,m)×[k,n) to (k,k) with at most one row swap and one column swap.
func (s *Solver[T]) pivotComplete(sys *System[T], k int) error {
	i, j := s.maxAbsInSubmatrix(sys.Matrix, k)
	s.swapRows(sys, k, i)
	s.swapColumns(sys, k, j)

	return nil
}

// maxAbsRowInColumn scans column k over rows [k,m).
// Complexity: O(m-k) Abs/Cmp calls.
func (s *Solver[T]) maxAbsRowInColumn(matrix [][]T, k int) int {
	best := s.field.Abs(matrix[k][k])
	bestRow := k
	for r := k + 1; r < len(matrix); r++ {
		v := s.field.Abs(matrix[r][k])
		if s.field.Cmp(v, best) > 0 {
			best, bestRow = v, r
		}
	}

	return bestRow
}

// bestScaledRow scans rows [k,m) by scaled magnitude of column k.
func (s *Solver[T]) bestScaledRow(matrix [][]T, k int) int {
	best := s.scaledValue(matrix[k], k)
	bestRow := k
	for r := k + 1; r < len(matrix); r++ {
		v := s.scaledValue(matrix[r], k)
		if s.field.Cmp(v, best) > 0 {
			best, bestRow = v, r
		}
	}

	return bestRow
}

// scaledValue returns |row[k]| / max_j≥k |row[j]|, or the row maximum itself
// (which is zero) when the trailing part of the row is all zeros.
func (s *Solver[T]) scaledValue(row []T, k int) T {
	rowMax := s.maxAbsInRow(row, k)
	if s.field.IsZero(rowMax) {
		return rowMax
	}

	return s.field.Div(s.field.Abs(row[k]), rowMax)
}

// maxAbsInRow returns max_j≥k |row[j]|.
func (s *Solver[T]) maxAbsInRow(row []T, k int) T {
	best := s.field.Abs(row[k])
	for j := k + 1; j < len(row); j++ {
		v := s.field.Abs(row[j])
		if s.field.Cmp(v, best) > 0 {
			best = v
		}
	}

	return best
}

// maxAbsInSubmatrix locates the largest magnitude in [k,m)×[k,n).
// Scan order: column k downward first, then rows k.. over columns k+1.. in
// row-major order. Only a strictly greater value replaces the candidate, so a
// row swap is preferred over a column swap on ties.
// Complexity: O((m-k)(n-k)) Abs/Cmp calls.
func (s *Solver[T]) maxAbsInSubmatrix(matrix [][]T, k int) (int, int) {
	m, n := dims(matrix)
	best := s.field.Abs(matrix[k][k])
	bi, bj := k, k

	for i := k + 1; i < m; i++ {
		v := s.field.Abs(matrix[i][k])
		if s.field.Cmp(v, best) > 0 {
			best, bi, bj = v, i, k
		}
	}
	for i := k; i < m; i++ {
		for j := k + 1; j < n; j++ {
			v := s.field.Abs(matrix[i][j])
			if s.field.Cmp(v, best) > 0 {
				best, bi, bj = v, i, j
			}
		}
	}

	return bi, bj
}

// swapRows exchanges rows i and j of the matrix and the result and reports
// the swap. It is a no-op when i == j.
func (s *Solver[T]) swapRows(sys *System[T], i, j int) {
	if i == j {
		return
	}
	swapPlaces(sys.Matrix, i, j)
	swapPlaces(sys.Result, i, j)
	s.hooks.rowSwap(RowSwapEvent{I: i, J: j})
}

// swapColumns exchanges columns i and j in every row and in the
// transformation vector, then reports the swap with the updated vector.
// It is a no-op when i == j.
func (s *Solver[T]) swapColumns(sys *System[T], i, j int) {
	if i == j {
		return
	}
	for _, row := range sys.Matrix {
		swapPlaces(row, i, j)
	}
	swapPlaces(sys.TransformationVector, i, j)
	s.hooks.columnSwap(ColumnSwapEvent{I: i, J: j, TransformationVector: sys.TransformationVector})
}
