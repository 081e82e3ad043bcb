// SPDX-License-Identifier: MIT

package gaussian

// Phase names the pass a PhaseEvent belongs to.
type Phase string

const (
	// PhaseForward is forward elimination.
	PhaseForward Phase = "forward"
	// PhaseBack is back substitution.
	PhaseBack Phase = "back"
)

// SolveStartEvent is delivered to OnSolveStart with the caller's buffers.
type SolveStartEvent[T any] struct {
	Matrix [][]T
	Result []T
}

// PhaseEvent is delivered at the start and end of each pass.
// System is set for forward elimination and for the start of back
// substitution; Solution is set only on OnSubstitutionEnd.
type PhaseEvent[T any] struct {
	Phase    Phase
	System   *System[T]
	Solution *SolutionSystem[T]
}

// ColumnEvent brackets the reduction of every row below pivot (Step, Step).
type ColumnEvent[T any] struct {
	Step  int
	Pivot T
}

// RowEvent brackets the reduction of Row by the pivot row Step.
type RowEvent[T any] struct {
	Row        int
	Step       int
	Multiplier T
	Pivot      T
}

// SubstitutionEvent brackets the computation of unknown Index.
// Value holds the computed unknown and is set only on OnSubstitutionStepEnd.
type SubstitutionEvent[T any] struct {
	Index int
	Value T
}

// RowSwapEvent reports that rows I and J (and their result entries) were exchanged.
type RowSwapEvent struct {
	I, J int
}

// ColumnSwapEvent reports that columns I and J were exchanged in every row.
// TransformationVector is the live vector after the swap.
type ColumnSwapEvent struct {
	I, J                 int
	TransformationVector []int
}

// Hooks is a set of optional callbacks fired at the solver's phase, column,
// row and swap boundaries. Nil fields are skipped. Payload slices are live
// views of the buffers being solved; callbacks must not modify them.
//
// Firing order for one Solve call:
//
//	OnSolveStart
//	  OnEliminationStart
//	    per step k: [OnRowSwap] [OnColumnSwap]
//	      OnReduceColumnStart, per row (OnReduceRowStart, OnReduceRowEnd), OnReduceColumnEnd
//	  OnEliminationEnd
//	  OnSubstitutionStart
//	    per index i (last to first): OnSubstitutionStepStart, OnSubstitutionStepEnd
//	  OnSubstitutionEnd
//	OnSolveEnd
//
// Columns whose pivot is still zero after pivoting skip the column and row
// hooks. On failure the sequence stops and OnError receives the error.
type Hooks[T any] struct {
	OnSolveStart func(SolveStartEvent[T])
	OnSolveEnd   func(*SolutionSystem[T])

	OnEliminationStart  func(PhaseEvent[T])
	OnEliminationEnd    func(PhaseEvent[T])
	OnReduceColumnStart func(ColumnEvent[T])
	OnReduceColumnEnd   func(ColumnEvent[T])
	OnReduceRowStart    func(RowEvent[T])
	OnReduceRowEnd      func(RowEvent[T])

	OnSubstitutionStart     func(PhaseEvent[T])
	OnSubstitutionEnd       func(PhaseEvent[T])
	OnSubstitutionStepStart func(SubstitutionEvent[T])
	OnSubstitutionStepEnd   func(SubstitutionEvent[T])

	OnRowSwap    func(RowSwapEvent)
	OnColumnSwap func(ColumnSwapEvent)

	OnError func(error)
}

// observers fans one notification out to every registered Hooks value.
type observers[T any] []Hooks[T]

func (o observers[T]) solveStart(e SolveStartEvent[T]) {
	for i := range o {
		if o[i].OnSolveStart != nil {
			o[i].OnSolveStart(e)
		}
	}
}

func (o observers[T]) solveEnd(s *SolutionSystem[T]) {
	for i := range o {
		if o[i].OnSolveEnd != nil {
			o[i].OnSolveEnd(s)
		}
	}
}

func (o observers[T]) eliminationStart(e PhaseEvent[T]) {
	for i := range o {
		if o[i].OnEliminationStart != nil {
			o[i].OnEliminationStart(e)
		}
	}
}

func (o observers[T]) eliminationEnd(e PhaseEvent[T]) {
	for i := range o {
		if o[i].OnEliminationEnd != nil {
			o[i].OnEliminationEnd(e)
		}
	}
}

func (o observers[T]) reduceColumnStart(e ColumnEvent[T]) {
	for i := range o {
		if o[i].OnReduceColumnStart != nil {
			o[i].OnReduceColumnStart(e)
		}
	}
}

func (o observers[T]) reduceColumnEnd(e ColumnEvent[T]) {
	for i := range o {
		if o[i].OnReduceColumnEnd != nil {
			o[i].OnReduceColumnEnd(e)
		}
	}
}

func (o observers[T]) reduceRowStart(e RowEvent[T]) {
	for i := range o {
		if o[i].OnReduceRowStart != nil {
			o[i].OnReduceRowStart(e)
		}
	}
}

func (o observers[T]) reduceRowEnd(e RowEvent[T]) {
	for i := range o {
		if o[i].OnReduceRowEnd != nil {
			o[i].OnReduceRowEnd(e)
		}
	}
}

func (o observers[T]) substitutionStart(e PhaseEvent[T]) {
	for i := range o {
		if o[i].OnSubstitutionStart != nil {
			o[i].OnSubstitutionStart(e)
		}
	}
}

func (o observers[T]) substitutionEnd(e PhaseEvent[T]) {
	for i := range o {
		if o[i].OnSubstitutionEnd != nil {
			o[i].OnSubstitutionEnd(e)
		}
	}
}

func (o observers[T]) substitutionStepStart(e SubstitutionEvent[T]) {
	for i := range o {
		if o[i].OnSubstitutionStepStart != nil {
			o[i].OnSubstitutionStepStart(e)
		}
	}
}

func (o observers[T]) substitutionStepEnd(e SubstitutionEvent[T]) {
	for i := range o {
		if o[i].OnSubstitutionStepEnd != nil {
			o[i].OnSubstitutionStepEnd(e)
		}
	}
}

func (o observers[T]) rowSwap(e RowSwapEvent) {
	for i := range o {
		if o[i].OnRowSwap != nil {
			o[i].OnRowSwap(e)
		}
	}
}

func (o observers[T]) columnSwap(e ColumnSwapEvent) {
	for i := range o {
		if o[i].OnColumnSwap != nil {
			o[i].OnColumnSwap(e)
		}
	}
}

func (o observers[T]) failure(err error) {
	for i := range o {
		if o[i].OnError != nil {
			o[i].OnError(err)
		}
	}
}
