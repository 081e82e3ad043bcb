// SPDX-License-Identifier: MIT
// Package gaussian_test contains test helpers
//
// Purpose:
//   - Provide exact (*big.Rat) and floating (float64) Field implementations.
//   - Build matrices and result vectors from short literals.
//   - Compare rational buffers by value, never by pointer.

package gaussian_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/gaussian"
)

// ratField is exact rational arithmetic. Every operation allocates, so values
// stored into a matrix never alias an operand.
type ratField struct{}

func (ratField) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (ratField) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (ratField) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (ratField) IsZero(a *big.Rat) bool     { return a.Sign() == 0 }
func (ratField) Abs(a *big.Rat) *big.Rat    { return new(big.Rat).Abs(a) }
func (ratField) Cmp(a, b *big.Rat) int      { return a.Cmp(b) }

// floatField is plain float64 arithmetic with an exact zero test.
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

// rat parses a decimal or fractional literal ("4.5", "-1/3"). Panics on bad input.
func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal " + s)
	}

	return r
}

// vec builds a rational vector from float literals. Every literal used in
// tests is a short binary fraction, so SetFloat64 is exact.
func vec(values ...float64) []*big.Rat {
	out := make([]*big.Rat, len(values))
	for i, v := range values {
		out[i] = new(big.Rat).SetFloat64(v)
	}

	return out
}

// mat builds a rational matrix from float rows.
func mat(rows ...[]float64) [][]*big.Rat {
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = vec(row...)
	}

	return out
}

// row is shorthand for a literal float row.
func row(values ...float64) []float64 { return values }

// newRatSolver builds a rational solver with zero preset and fails the test on error.
func newRatSolver(tb testing.TB, opts ...gaussian.Option[*big.Rat]) *gaussian.Solver[*big.Rat] {
	tb.Helper()
	all := append([]gaussian.Option[*big.Rat]{gaussian.WithZero(new(big.Rat))}, opts...)
	s, err := gaussian.New[*big.Rat](ratField{}, all...)
	require.NoError(tb, err)

	return s
}

// withPivoting is WithPivoting instantiated for rationals.
func withPivoting(p gaussian.Pivoting) gaussian.Option[*big.Rat] {
	return gaussian.WithPivoting[*big.Rat](p)
}

// requireVec asserts element-wise rational equality.
func requireVec(tb testing.TB, want, got []*big.Rat, msgAndArgs ...any) {
	tb.Helper()
	require.Len(tb, got, len(want), msgAndArgs...)
	for i := range want {
		require.Zerof(tb, want[i].Cmp(got[i]), "index %d: want %s, got %s", i, want[i].RatString(), got[i].RatString())
	}
}

// requireMat asserts element-wise rational equality of two matrices.
func requireMat(tb testing.TB, want, got [][]*big.Rat) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for i := range want {
		requireVec(tb, want[i], got[i], "row %d", i)
	}
}

// cloneMat deep-copies a rational matrix.
func cloneMat(m [][]*big.Rat) [][]*big.Rat {
	out := make([][]*big.Rat, len(m))
	for i, r := range m {
		out[i] = cloneVec(r)
	}

	return out
}

// cloneVec deep-copies a rational vector.
func cloneVec(v []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

// residual returns A·x - b for the original system, exactly.
func residual(a [][]*big.Rat, x, b []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(a))
	for i, r := range a {
		acc := new(big.Rat)
		for j := range r {
			acc.Add(acc, new(big.Rat).Mul(r[j], x[j]))
		}
		out[i] = acc.Sub(acc, b[i])
	}

	return out
}
