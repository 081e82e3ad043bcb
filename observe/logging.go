// SPDX-License-Identifier: MIT

package observe

import (
	"log/slog"

	"github.com/katalvlaran/gauss/gaussian"
)

// Logging returns hooks that write every solver event to logger.
// A nil logger falls back to slog.Default().
//
// Numeric payloads are logged with slog.Any, so types implementing
// encoding.TextMarshaler (such as *big.Rat) render as their text form.
func Logging[T any](logger *slog.Logger) gaussian.Hooks[T] {
	if logger == nil {
		logger = slog.Default()
	}

	return gaussian.Hooks[T]{
		OnSolveStart: func(e gaussian.SolveStartEvent[T]) {
			rows, cols := shape(e.Matrix)
			logger.Info("solve started", slog.Int("rows", rows), slog.Int("columns", cols))
		},
		OnSolveEnd: func(s *gaussian.SolutionSystem[T]) {
			logger.Info("solve finished",
				slog.Int("unknowns", len(s.Solution)),
				slog.Bool("infinite_solutions", s.InfiniteSolutions),
			)
		},
		OnEliminationStart: func(e gaussian.PhaseEvent[T]) {
			rows, cols := shape(e.System.Matrix)
			logger.Info("phase started", slog.String("phase", string(e.Phase)), slog.Int("rows", rows), slog.Int("columns", cols))
		},
		OnEliminationEnd: func(e gaussian.PhaseEvent[T]) {
			attrs := []any{slog.String("phase", string(e.Phase))}
			if tv := e.System.TransformationVector; tv != nil {
				attrs = append(attrs, slog.Any("transformation_vector", tv))
			}
			logger.Info("phase finished", attrs...)
		},
		OnReduceColumnStart: func(e gaussian.ColumnEvent[T]) {
			logger.Debug("reducing column", slog.Int("step", e.Step), slog.Any("pivot", e.Pivot))
		},
		OnReduceColumnEnd: func(e gaussian.ColumnEvent[T]) {
			logger.Debug("column reduced", slog.Int("step", e.Step))
		},
		OnReduceRowStart: func(e gaussian.RowEvent[T]) {
			logger.Debug("reducing row",
				slog.Int("row", e.Row),
				slog.Int("step", e.Step),
				slog.Any("multiplier", e.Multiplier),
			)
		},
		OnSubstitutionStart: func(e gaussian.PhaseEvent[T]) {
			logger.Info("phase started", slog.String("phase", string(e.Phase)))
		},
		OnSubstitutionEnd: func(e gaussian.PhaseEvent[T]) {
			logger.Info("phase finished",
				slog.String("phase", string(e.Phase)),
				slog.Bool("infinite_solutions", e.Solution.InfiniteSolutions),
			)
		},
		OnSubstitutionStepEnd: func(e gaussian.SubstitutionEvent[T]) {
			logger.Debug("unknown solved", slog.Int("index", e.Index), slog.Any("value", e.Value))
		},
		OnRowSwap: func(e gaussian.RowSwapEvent) {
			logger.Debug("rows swapped", slog.Int("i", e.I), slog.Int("j", e.J))
		},
		OnColumnSwap: func(e gaussian.ColumnSwapEvent) {
			logger.Debug("columns swapped",
				slog.Int("i", e.I),
				slog.Int("j", e.J),
				slog.Any("transformation_vector", e.TransformationVector),
			)
		},
		OnError: func(err error) {
			logger.Error("solver failed", slog.String("kind", ErrorKind(err)), slog.Any("error", err))
		},
	}
}

// shape returns the row count and row length of matrix.
func shape[T any](matrix [][]T) (rows, cols int) {
	rows = len(matrix)
	if rows > 0 {
		cols = len(matrix[0])
	}

	return rows, cols
}
