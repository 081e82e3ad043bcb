// SPDX-License-Identifier: MIT

package observe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/gaussian"
)

// floatField is float64 arithmetic with an exact zero test.
type floatField struct{}

func (floatField) Sub(a, b float64) float64 { return a - b }
func (floatField) Mul(a, b float64) float64 { return a * b }
func (floatField) Div(a, b float64) float64 { return a / b }
func (floatField) IsZero(a float64) bool    { return a == 0 }
func (floatField) Abs(a float64) float64    { return math.Abs(a) }
func (floatField) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// newSolver builds a float64 solver with hooks and fails the test on error.
func newSolver(t *testing.T, p gaussian.Pivoting, hooks ...gaussian.Hooks[float64]) *gaussian.Solver[float64] {
	t.Helper()
	opts := []gaussian.Option[float64]{gaussian.WithPivoting[float64](p)}
	for _, h := range hooks {
		opts = append(opts, gaussian.WithHooks(h))
	}
	s, err := gaussian.New[float64](floatField{}, opts...)
	require.NoError(t, err)

	return s
}

// swapSystem needs one row swap under partial pivoting and solves to (-4, 4.5).
func swapSystem() ([][]float64, []float64) {
	return [][]float64{{1, 2}, {3, 4}}, []float64{5, 6}
}

// columnSwapSystem needs one column swap under complete pivoting.
func columnSwapSystem() ([][]float64, []float64) {
	return [][]float64{{3, 4}, {1, 2}}, []float64{6, 5}
}
