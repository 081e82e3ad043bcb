// SPDX-License-Identifier: MIT

package gaussian

// Test bridge (white-box) for private kernels and the options snapshot.
// Compiled only with the package tests; production builds never see it.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot[T any] struct {
	Pivoting Pivoting
	LU       bool
	Zero     T
	Hooks    int
}

// GatherOptionsSnapshot resolves opts exactly as New does.
func GatherOptionsSnapshot[T any](opts ...Option[T]) (OptionsSnapshot[T], error) {
	o, err := gatherOptions(opts...)

	return OptionsSnapshot[T]{Pivoting: o.pivoting, LU: o.lu, Zero: o.zero, Hooks: len(o.hooks)}, err
}

// ReorderRows exposes the final zero-row reorder of forward elimination.
func ReorderRows[T any](field Field[T], matrix [][]T, result []T, end int) {
	reorderRows(field, matrix, result, end)
}

// RestoreColumnOrder exposes the column-order restore performed by Solve.
func RestoreColumnOrder[T any](solution []T, tv []int, zero T) []T {
	return restoreColumnOrder(solution, tv, zero)
}

// ValidateSystem exposes the shape checks shared by both passes.
func ValidateSystem[T any](matrix [][]T, result []T) error {
	return validateSystem(matrix, result)
}
