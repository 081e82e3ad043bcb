// SPDX-License-Identifier: MIT

package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gauss/gaussian"
)

// TracerName is the instrumentation scope used when no tracer is supplied.
const TracerName = "github.com/katalvlaran/gauss/observe"

// Span names.
const (
	SpanSolve              = "gaussian.Solve"
	SpanForwardElimination = "gaussian.ForwardElimination"
	SpanBackSubstitution   = "gaussian.BackSubstitution"
	SpanFailure            = "gaussian.Failure"
)

// Attribute keys.
const (
	attrRows      = attribute.Key("gaussian.rows")
	attrColumns   = attribute.Key("gaussian.columns")
	attrUnknowns  = attribute.Key("gaussian.unknowns")
	attrInfinite  = attribute.Key("gaussian.infinite_solutions")
	attrStep      = attribute.Key("gaussian.step")
	attrI         = attribute.Key("gaussian.i")
	attrJ         = attribute.Key("gaussian.j")
	attrTransform = attribute.Key("gaussian.transformation_vector")
	attrErrorKind = attribute.Key("gaussian.error.kind")
)

// spanState tracks the spans of the operation currently observed.
type spanState struct {
	mu     sync.Mutex
	tracer trace.Tracer
	parent context.Context

	solveCtx context.Context
	solve    trace.Span
	phase    trace.Span
}

// Tracing returns hooks that record solver activity as OpenTelemetry spans
// under parent. A nil tracer uses the global provider's TracerName tracer;
// a nil parent is context.Background().
//
// Span layout:
//
//	gaussian.Solve
//	  gaussian.ForwardElimination   events: reduce column, row swap, column swap
//	  gaussian.BackSubstitution
//
// Calling ForwardElimination or BackSubstitution directly opens only the phase
// span. A failure ends every open span with an error status; a failure raised
// before any span was opened is recorded on a short gaussian.Failure span.
func Tracing[T any](parent context.Context, tracer trace.Tracer) gaussian.Hooks[T] {
	if parent == nil {
		parent = context.Background()
	}
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	st := &spanState{tracer: tracer, parent: parent}

	return gaussian.Hooks[T]{
		OnSolveStart: func(e gaussian.SolveStartEvent[T]) {
			rows, cols := shape(e.Matrix)
			st.startSolve(rows, cols)
		},
		OnSolveEnd: func(s *gaussian.SolutionSystem[T]) {
			st.endSolve(len(s.Solution), s.InfiniteSolutions)
		},
		OnEliminationStart: func(e gaussian.PhaseEvent[T]) {
			rows, cols := shape(e.System.Matrix)
			st.startPhase(SpanForwardElimination, attrRows.Int(rows), attrColumns.Int(cols))
		},
		OnEliminationEnd: func(e gaussian.PhaseEvent[T]) {
			var attrs []attribute.KeyValue
			if tv := e.System.TransformationVector; tv != nil {
				attrs = append(attrs, attrTransform.IntSlice(tv))
			}
			st.endPhase(attrs...)
		},
		OnReduceColumnStart: func(e gaussian.ColumnEvent[T]) {
			st.event("reduce column", attrStep.Int(e.Step))
		},
		OnSubstitutionStart: func(e gaussian.PhaseEvent[T]) {
			rows, cols := shape(e.System.Matrix)
			st.startPhase(SpanBackSubstitution, attrRows.Int(rows), attrColumns.Int(cols))
		},
		OnSubstitutionEnd: func(e gaussian.PhaseEvent[T]) {
			st.endPhase(
				attrUnknowns.Int(len(e.Solution.Solution)),
				attrInfinite.Bool(e.Solution.InfiniteSolutions),
			)
		},
		OnRowSwap: func(e gaussian.RowSwapEvent) {
			st.event("row swap", attrI.Int(e.I), attrJ.Int(e.J))
		},
		OnColumnSwap: func(e gaussian.ColumnSwapEvent) {
			st.event("column swap", attrI.Int(e.I), attrJ.Int(e.J), attrTransform.IntSlice(e.TransformationVector))
		},
		OnError: st.fail,
	}
}

func (st *spanState) startSolve(rows, cols int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.solveCtx, st.solve = st.tracer.Start(st.parent, SpanSolve,
		trace.WithAttributes(attrRows.Int(rows), attrColumns.Int(cols)),
	)
}

func (st *spanState) endSolve(unknowns int, infinite bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.solve == nil {
		return
	}
	st.solve.SetAttributes(attrUnknowns.Int(unknowns), attrInfinite.Bool(infinite))
	st.solve.SetStatus(codes.Ok, "")
	st.solve.End()
	st.solve, st.solveCtx = nil, nil
}

func (st *spanState) startPhase(name string, attrs ...attribute.KeyValue) {
	st.mu.Lock()
	defer st.mu.Unlock()

	ctx := st.parent
	if st.solveCtx != nil {
		ctx = st.solveCtx
	}
	_, st.phase = st.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (st *spanState) endPhase(attrs ...attribute.KeyValue) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.phase == nil {
		return
	}
	st.phase.SetAttributes(attrs...)
	st.phase.End()
	st.phase = nil
}

func (st *spanState) event(name string, attrs ...attribute.KeyValue) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.phase != nil {
		st.phase.AddEvent(name, trace.WithAttributes(attrs...))
	}
}

// fail records err on the open phase and solve spans and ends them.
func (st *spanState) fail(err error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	kind := attrErrorKind.String(ErrorKind(err))
	open := []trace.Span{st.phase, st.solve}
	if st.phase == nil && st.solve == nil {
		_, span := st.tracer.Start(st.parent, SpanFailure)
		open = []trace.Span{span}
	}
	for _, span := range open {
		if span == nil {
			continue
		}
		span.RecordError(err)
		span.SetAttributes(kind)
		span.SetStatus(codes.Error, err.Error())
		span.End()
	}
	st.phase, st.solve, st.solveCtx = nil, nil, nil
}
