// SPDX-License-Identifier: MIT

package gaussian

import "fmt"

// backSubstitution solves the reduced system from the last unknown to the
// first, writing each unknown over result[i].
//
// Implementation:
//   - Stage 1: n := min(rows, rowLength) is the solvable core; rows at index ≥ n
//     are extra equations, columns at index ≥ n are free unknowns fixed at zero.
//   - Stage 2: For i = n-1 .. 0 compute result[i] from the upper triangle.
//   - Stage 3: Check every extra equation against the last unknown.
//
// Behavior highlights:
//   - 0·x = 0 rows yield the configured zero and set InfiniteSolutions.
//   - 0·x = c with c ≠ 0 fails with ErrNoSolution.
//   - An extra row with a zero coefficient is consistent only when its right
//     hand side is zero; a non-zero coefficient is consistent only when
//     rhs/coefficient equals the last unknown under Field.Cmp.
//
// Complexity:
//   - Time O(n² + rows) Field calls, Space O(1); the solution aliases result.
func (s *Solver[T]) backSubstitution(matrix [][]T, result []T) (*SolutionSystem[T], error) {
	rows, rowLength := dims(matrix)
	n := min(rows, rowLength)

	s.hooks.substitutionStart(PhaseEvent[T]{
		Phase:  PhaseBack,
		System: &System[T]{Matrix: matrix, Result: result},
	})

	out := &SolutionSystem[T]{Matrix: matrix}
	for i := n - 1; i >= 0; i-- {
		s.hooks.substitutionStepStart(SubstitutionEvent[T]{Index: i})

		value, free, err := s.solveUnknown(matrix[i], result, i, n)
		if err != nil {
			return nil, err
		}
		if free {
			out.InfiniteSolutions = true
		}
		result[i] = value

		s.hooks.substitutionStepEnd(SubstitutionEvent[T]{Index: i, Value: value})
	}

	if rowLength > 0 && rows > n {
		if err := s.checkExtraRows(matrix, result, n, rowLength); err != nil {
			return nil, err
		}
	}
	if rowLength > rows {
		out.InfiniteSolutions = true
	}

	out.Solution = result[:n]
	s.hooks.substitutionEnd(PhaseEvent[T]{Phase: PhaseBack, Solution: out})

	return out, nil
}

// solveUnknown computes unknown i from row, given the unknowns already stored
// in result[i+1:n]. free reports that the unknown is not determined by row.
func (s *Solver[T]) solveUnknown(row, result []T, i, n int) (value T, free bool, err error) {
	rhs, diag := result[i], row[i]
	if s.field.IsZero(rhs) && s.field.IsZero(diag) {
		return s.opts.zero, true, nil
	}

	adjusted := rhs
	for j := i + 1; j < n; j++ {
		adjusted = s.field.Sub(adjusted, s.field.Mul(row[j], result[j]))
	}
	if !s.field.IsZero(diag) {
		return s.field.Div(adjusted, diag), false, nil
	}
	// 0·x = adjusted
	if s.field.IsZero(adjusted) {
		return adjusted, true, nil
	}

	return value, false, fmt.Errorf("index %d: a number multiplied by zero cannot be non-zero: %w", i, ErrNoSolution)
}

// checkExtraRows validates rows [n, rows) of an over-determined system
// against the last computed unknown result[n-1].
func (s *Solver[T]) checkExtraRows(matrix [][]T, result []T, n, rowLength int) error {
	last := result[n-1]
	for i := n; i < len(matrix); i++ {
		coef, rhs := matrix[i][rowLength-1], result[i]
		if s.field.IsZero(coef) {
			if s.field.IsZero(rhs) {
				continue
			}

			return fmt.Errorf("row %d: a number multiplied by zero cannot be non-zero: %w", i, ErrNoSolution)
		}
		if s.field.Cmp(s.field.Div(rhs, coef), last) != 0 {
			return fmt.Errorf("row %d: extra equation disagrees with unknown %d: %w", i, n-1, ErrNoSolution)
		}
	}

	return nil
}
