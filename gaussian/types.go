// SPDX-License-Identifier: MIT

// Package gaussian: domain types shared by the elimination and substitution
// engines. Options live in options.go, hook payloads in hooks.go.

package gaussian

// Field is the numeric capability the solver is generic over.
// The solver never does arithmetic on T directly; every step is one call here,
// so T may be float64, *big.Rat, a decimal type or any field-like value.
//
// Contract:
//   - Sub, Mul and Div return the result as a value the solver may store back
//     into the caller's matrix. Implementations over pointer types should
//     allocate a fresh value rather than mutate an operand.
//   - Abs returns a non-negative value of the same type.
//   - Cmp returns a negative number, zero or a positive number when a is less
//     than, equal to or greater than b.
//   - Div is never called with a divisor for which IsZero reports true.
type Field[T any] interface {
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	IsZero(a T) bool
	Abs(a T) T
	Cmp(a, b T) int
}

// System is the working state passed from forward elimination to back
// substitution. Matrix and Result are the caller's buffers, not copies.
//
// TransformationVector maps a current column position to the original column
// index. It is populated only under PivotComplete and is nil otherwise; when
// present it is always a permutation of [0, n).
type System[T any] struct {
	Matrix               [][]T
	Result               []T
	TransformationVector []int
}

// SolutionSystem is the output of back substitution and Solve.
// Solution aliases the caller's result slice, trimmed to the solvable core
// (the smaller of the row count and the row length).
type SolutionSystem[T any] struct {
	Matrix            [][]T
	Solution          []T
	InfiniteSolutions bool
}

// dims returns the row count m and row length n of a matrix.
// A matrix with no rows has n == 0.
func dims[T any](matrix [][]T) (m, n int) {
	m = len(matrix)
	if m == 0 {
		return 0, 0
	}

	return m, len(matrix[0])
}

// swapPlaces exchanges s[i] and s[j].
func swapPlaces[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// identityPermutation returns [0, 1, ..., n-1].
func identityPermutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
