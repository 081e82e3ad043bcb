// SPDX-License-Identifier: MIT

package observe

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gauss/gaussian"
)

// Namespace and subsystem of every solver metric.
const (
	metricsNamespace = "gauss"
	metricsSubsystem = "solver"
)

// Solve outcomes, the values of the "outcome" label.
const (
	OutcomeSolved   = "solved"
	OutcomeInfinite = "infinite"
	OutcomeFailed   = "failed"
)

// Metrics holds the Prometheus collectors fed by MetricsHooks.
//
// Labels:
//   - SolvesTotal: outcome (solved, infinite, failed)
//   - FailuresTotal: kind (see ErrorKind)
//   - SystemSize: dimension (rows, columns)
type Metrics struct {
	SolvesTotal        *prometheus.CounterVec
	FailuresTotal      *prometheus.CounterVec
	RowSwapsTotal      prometheus.Counter
	ColumnSwapsTotal   prometheus.Counter
	RowReductionsTotal prometheus.Counter
	SystemSize         *prometheus.HistogramVec
}

// NewMetrics creates the solver collectors and registers them with reg.
// A nil reg skips registration, which is handy for tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "solves_total",
			Help:      "Solve calls by outcome",
		}, []string{"outcome"}),
		FailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "failures_total",
			Help:      "Errors reported by any solver operation, by kind",
		}, []string{"kind"}),
		RowSwapsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "row_swaps_total",
			Help:      "Row swaps performed by pivoting",
		}),
		ColumnSwapsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "column_swaps_total",
			Help:      "Column swaps performed by complete pivoting",
		}),
		RowReductionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "row_reductions_total",
			Help:      "Rows reduced during forward elimination",
		}),
		SystemSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "system_size",
			Help:      "Rows and columns of solved systems",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"dimension"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.SolvesTotal, m.FailuresTotal, m.RowSwapsTotal,
		m.ColumnSwapsTotal, m.RowReductionsTotal, m.SystemSize,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("observe: register solver metrics: %w", err)
		}
	}

	return m, nil
}

// MetricsHooks returns hooks that feed m. Only failures tagged with
// gaussian.OpSolve count as failed solves, so one Metrics can be shared by
// solvers running on several goroutines.
func MetricsHooks[T any](m *Metrics) gaussian.Hooks[T] {
	return gaussian.Hooks[T]{
		OnSolveStart: func(e gaussian.SolveStartEvent[T]) {
			rows, cols := shape(e.Matrix)
			m.SystemSize.WithLabelValues("rows").Observe(float64(rows))
			m.SystemSize.WithLabelValues("columns").Observe(float64(cols))
		},
		OnSolveEnd: func(s *gaussian.SolutionSystem[T]) {
			if s.InfiniteSolutions {
				m.SolvesTotal.WithLabelValues(OutcomeInfinite).Inc()
				return
			}
			m.SolvesTotal.WithLabelValues(OutcomeSolved).Inc()
		},
		OnReduceRowEnd: func(gaussian.RowEvent[T]) { m.RowReductionsTotal.Inc() },
		OnRowSwap:      func(gaussian.RowSwapEvent) { m.RowSwapsTotal.Inc() },
		OnColumnSwap:   func(gaussian.ColumnSwapEvent) { m.ColumnSwapsTotal.Inc() },
		OnError: func(err error) {
			m.FailuresTotal.WithLabelValues(ErrorKind(err)).Inc()
			if failedSolve(err) {
				m.SolvesTotal.WithLabelValues(OutcomeFailed).Inc()
			}
		},
	}
}

// failedSolve reports whether err was raised by Solve rather than by a direct
// phase call.
func failedSolve(err error) bool {
	var opErr *gaussian.OpError

	return errors.As(err, &opErr) && opErr.Op == gaussian.OpSolve
}
