// SPDX-License-Identifier: MIT

package gaussian

// Solver runs Gaussian elimination over values of T through a Field.
//
// A Solver is configured once by New and is read-only afterwards, so one
// instance may be shared. The buffers passed to its methods are mutated in
// place without locking: concurrent calls must use disjoint buffers.
type Solver[T any] struct {
	field Field[T]
	opts  Options[T]
	hooks observers[T]
	pivot pivotFunc[T]
}

// New builds a Solver for field with the given options.
// Defaults: PivotPartial, no LU capture, zero = the Go zero value of T, no hooks.
//
// Errors:
//   - ErrNilField when field is nil.
//   - ErrUnknownPivoting when WithPivoting / WithPivotingName name no known strategy.
//
// Both wrap ErrConfiguration.
func New[T any](field Field[T], opts ...Option[T]) (*Solver[T], error) {
	if field == nil {
		return nil, gaussianErrorf(OpNew, ErrNilField)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, gaussianErrorf(OpNew, err)
	}

	s := &Solver[T]{
		field: field,
		opts:  o,
		hooks: observers[T](o.hooks),
	}
	s.pivot = s.selectPivoting(o.pivoting)

	return s, nil
}

// Pivoting returns the configured strategy.
func (s *Solver[T]) Pivoting() Pivoting { return s.opts.pivoting }

// LU reports whether multipliers are kept below the diagonal.
func (s *Solver[T]) LU() bool { return s.opts.lu }

// Zero returns the configured additive identity.
func (s *Solver[T]) Zero() T { return s.opts.zero }

// ForwardElimination reduces matrix and result in place and returns the
// System, including the transformation vector under PivotComplete.
//
// The caller's buffers are overwritten; copy them first if the originals are
// needed. On failure they are left partially reduced.
//
// Errors (reported to OnError before being returned):
//   - ErrDimensionMismatch for a ragged matrix or a wrong result length.
//   - ErrZeroPivot under PivotNone.
func (s *Solver[T]) ForwardElimination(matrix [][]T, result []T) (*System[T], error) {
	if err := validateSystem(matrix, result); err != nil {
		return nil, s.fail(OpForwardElimination, err)
	}
	sys, err := s.forwardElimination(matrix, result)
	if err != nil {
		return nil, s.fail(OpForwardElimination, err)
	}

	return sys, nil
}

// BackSubstitution solves a system already reduced by ForwardElimination,
// writing the unknowns over result. The returned Solution is result[:n] with
// n = min(rows, columns).
//
// Solution is in the current column order: after PivotComplete elimination
// it is permuted by the transformation vector. Solve undoes that.
//
// Errors (reported to OnError before being returned):
//   - ErrDimensionMismatch for a ragged matrix or a wrong result length.
//   - ErrNoSolution when the system is contradictory.
func (s *Solver[T]) BackSubstitution(matrix [][]T, result []T) (*SolutionSystem[T], error) {
	if err := validateSystem(matrix, result); err != nil {
		return nil, s.fail(OpBackSubstitution, err)
	}
	out, err := s.backSubstitution(matrix, result)
	if err != nil {
		return nil, s.fail(OpBackSubstitution, err)
	}

	return out, nil
}

// Solve runs forward elimination and back substitution on the same buffers
// and returns the solution in the caller's original column order.
//
// Solve never returns an error: any failure is delivered to the OnError hooks
// and Solve returns nil. Use ForwardElimination and BackSubstitution directly
// to receive errors as values.
//
// Under PivotComplete on a system with more columns than rows the solution is
// widened to one entry per column (free unknowns hold the configured zero) and
// no longer aliases result.
func (s *Solver[T]) Solve(matrix [][]T, result []T) *SolutionSystem[T] {
	out, err := s.solve(matrix, result)
	if err != nil {
		s.hooks.failure(gaussianErrorf(OpSolve, err))

		return nil
	}

	return out
}

func (s *Solver[T]) solve(matrix [][]T, result []T) (*SolutionSystem[T], error) {
	s.hooks.solveStart(SolveStartEvent[T]{Matrix: matrix, Result: result})

	if err := validateSystem(matrix, result); err != nil {
		return nil, err
	}
	sys, err := s.forwardElimination(matrix, result)
	if err != nil {
		return nil, err
	}
	out, err := s.backSubstitution(matrix, result)
	if err != nil {
		return nil, err
	}
	if sys.TransformationVector != nil {
		out.Solution = restoreColumnOrder(out.Solution, sys.TransformationVector, s.opts.zero)
	}

	s.hooks.solveEnd(out)

	return out, nil
}

// fail tags err with op, reports it and returns it.
func (s *Solver[T]) fail(op string, err error) error {
	err = gaussianErrorf(op, err)
	s.hooks.failure(err)

	return err
}

// restoreColumnOrder undoes the column permutation recorded in tv so that
// solution[c] is the value of original column c. Both slices are permuted in
// place by following each cycle of tv until every position is fixed; tv ends
// as the identity.
//
// When solution is shorter than tv (more columns than rows) a widened copy is
// permuted instead, with the missing free unknowns set to zero.
//
// Complexity: O(n) swaps.
func restoreColumnOrder[T any](solution []T, tv []int, zero T) []T {
	if len(solution) < len(tv) {
		wide := make([]T, len(tv))
		copy(wide, solution)
		for i := len(solution); i < len(wide); i++ {
			wide[i] = zero
		}
		solution = wide
	}
	for i := range tv {
		for tv[i] != i {
			t := tv[i]
			swapPlaces(solution, i, t)
			swapPlaces(tv, i, t)
		}
	}

	return solution
}
