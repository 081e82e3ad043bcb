// Package gaussian solves linear systems A·x = b by Gaussian elimination over
// any numeric type the caller can describe with a Field.
//
// Overview:
//
//   - The solver never does arithmetic itself. Every subtraction, product,
//     quotient, zero test, magnitude and comparison is a Field call, so the
//     same engine runs over float64, *big.Rat, fixed-point decimals or any
//     other field-like representation.
//   - Rectangular systems are supported. Extra rows of an over-determined
//     system are checked for consistency; extra columns of an
//     under-determined one are free unknowns.
//   - Five pivot strategies: PivotNone, PivotAvoidZero, PivotPartial
//     (default), PivotScaled and PivotComplete. Complete pivoting records its
//     column swaps in a transformation vector and Solve restores the caller's
//     column order at the end.
//   - Optional LU capture (WithLU) keeps the row multipliers below the
//     diagonal instead of clearing them.
//   - Hooks fire at every phase, column, row, substitution step and swap.
//
// Buffers:
//
//	The matrix and the result vector are mutated in place and never
//	copied. The returned Solution aliases the result slice. Copy the inputs
//	first when the originals must survive.
//
// Operations:
//
//	s, err := gaussian.New(field, gaussian.WithPivoting[T](gaussian.PivotComplete))
//	sys, err := s.ForwardElimination(matrix, result)   // row-echelon / LU form
//	sol, err := s.BackSubstitution(matrix, result)     // unknowns, current column order
//	sol := s.Solve(matrix, result)                     // both + column restore; nil on failure
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrConfiguration, ErrUnknownPivoting, ErrNilField: New rejected the configuration.
//   - ErrZeroPivot: PivotNone met a zero pivot.
//   - ErrNoSolution: the reduced system is contradictory.
//   - ErrDimensionMismatch: ragged matrix or result length ≠ row count.
//
// ForwardElimination and BackSubstitution return the error after handing it to
// every OnError hook. Solve only reports it to the hooks and returns nil.
//
// Concurrency:
//
//	A Solver is immutable after New and safe to share. Calls that touch the
//	same buffers must be serialized by the caller.
//
// Complexity:
//
//	Forward elimination costs O(min(m,n)·m·n) Field calls, back substitution
//	O(min(m,n)² + m). Complete pivoting adds O((m-k)(n-k)) comparisons per step.
package gaussian
