// SPDX-License-Identifier: MIT

package observe_test

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gauss/gaussian"
	"github.com/katalvlaran/gauss/observe"
)

func newTestMetrics(t *testing.T) *observe.Metrics {
	t.Helper()
	m, err := observe.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	return m
}

func TestMetrics_Solved(t *testing.T) {
	m := newTestMetrics(t)
	s := newSolver(t, gaussian.PivotPartial, observe.MetricsHooks[float64](m))

	mat, r := swapSystem()
	require.NotNil(t, s.Solve(mat, r))

	require.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(observe.OutcomeSolved)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RowSwapsTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RowReductionsTotal))
	require.Zero(t, testutil.ToFloat64(m.ColumnSwapsTotal))
	require.Equal(t, 2, testutil.CollectAndCount(m.SystemSize))
}

func TestMetrics_Infinite(t *testing.T) {
	m := newTestMetrics(t)
	s := newSolver(t, gaussian.PivotPartial, observe.MetricsHooks[float64](m))

	require.NotNil(t, s.Solve([][]float64{{8, 6}, {4, 3}}, []float64{2, 1}))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(observe.OutcomeInfinite)))
	require.Zero(t, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(observe.OutcomeSolved)))
}

func TestMetrics_ColumnSwaps(t *testing.T) {
	m := newTestMetrics(t)
	s := newSolver(t, gaussian.PivotComplete, observe.MetricsHooks[float64](m))

	mat, r := columnSwapSystem()
	require.NotNil(t, s.Solve(mat, r))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ColumnSwapsTotal))
}

func TestMetrics_Failures(t *testing.T) {
	m := newTestMetrics(t)
	s := newSolver(t, gaussian.PivotNone, observe.MetricsHooks[float64](m))

	// Solve failure counts as a failed solve.
	require.Nil(t, s.Solve([][]float64{{0, 2}, {3, 4}}, []float64{5, 6}))
	// A phase call failure is a failure but not a solve.
	_, err := s.BackSubstitution([][]float64{{1, 1}, {0, 0}}, []float64{2, 3})
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(observe.OutcomeFailed)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues(observe.KindZeroPivot)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues(observe.KindNoSolution)))
}

func TestMetrics_PhaseFailureDuringSolve(t *testing.T) {
	m := newTestMetrics(t)
	phases := newSolver(t, gaussian.PivotNone, observe.MetricsHooks[float64](m))

	var phaseErr error
	start := gaussian.Hooks[float64]{OnSolveStart: func(gaussian.SolveStartEvent[float64]) {
		_, phaseErr = phases.ForwardElimination([][]float64{{0, 2}, {3, 4}}, []float64{5, 6})
	}}
	s := newSolver(t, gaussian.PivotPartial, observe.MetricsHooks[float64](m), start)

	mat, r := swapSystem()
	require.NotNil(t, s.Solve(mat, r))
	require.ErrorIs(t, phaseErr, gaussian.ErrZeroPivot)

	require.Zero(t, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(observe.OutcomeFailed)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(observe.OutcomeSolved)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues(observe.KindZeroPivot)))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observe.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observe.NewMetrics(reg)
	require.Error(t, err)

	m, err := observe.NewMetrics(nil)
	require.NoError(t, err)
	require.NotNil(t, m.SolvesTotal)
}

func TestErrorKind(t *testing.T) {
	cases := map[error]string{
		gaussian.ErrUnknownPivoting:   observe.KindConfiguration,
		gaussian.ErrNilField:          observe.KindConfiguration,
		gaussian.ErrZeroPivot:         observe.KindZeroPivot,
		gaussian.ErrNoSolution:        observe.KindNoSolution,
		gaussian.ErrDimensionMismatch: observe.KindDimensionMismatch,
		fmt.Errorf("other"):           observe.KindUnknown,
	}
	for err, want := range cases {
		require.Equal(t, want, observe.ErrorKind(fmt.Errorf("Solve: %w", err)), err.Error())
	}
}
