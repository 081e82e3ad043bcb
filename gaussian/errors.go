// SPDX-License-Identifier: MIT
// Package gaussian: sentinel error set.
// This file defines the package-level sentinel errors and the OpError
// wrapper that tags them with an operation. Every failure returned
// by the solver matches exactly one of them via errors.Is; callers must not
// compare error strings.

package gaussian

import (
	"errors"
	"fmt"
)

// NOTE ON WRAPPING
// ----------------
// Messages are prefixed with "gaussian: ...". Kernels return the sentinels
// wrapped once with positional context (step, row) through fmt.Errorf("%w"),
// and the public facade adds the operation tag on top as an *OpError.
// errors.Is keeps working through both layers.

var (
	// ErrConfiguration is the umbrella for every construction-time failure
	// (the ConfigurationError category). More specific sentinels wrap it.
	ErrConfiguration = errors.New("gaussian: invalid configuration")

	// ErrUnknownPivoting is returned when the pivoting mode is not one of the
	// recognized strategies. It wraps ErrConfiguration.
	ErrUnknownPivoting = fmt.Errorf("%w: unknown pivoting method", ErrConfiguration)

	// ErrNilField is returned by New when no numeric capability was supplied.
	// It wraps ErrConfiguration.
	ErrNilField = fmt.Errorf("%w: numeric field is nil", ErrConfiguration)

	// ErrZeroPivot signals that PivotNone met a zero diagonal entry
	// (the PivotError category). Other strategies never produce it.
	ErrZeroPivot = errors.New("gaussian: pivot is zero")

	// ErrNoSolution signals that the reduced system is contradictory
	// (the SolutionError category): either a zero row with a non-zero right
	// hand side, or an extra equation that disagrees with the solution.
	ErrNoSolution = errors.New("gaussian: there is no solution for the system")

	// ErrDimensionMismatch indicates a ragged matrix or a result vector whose
	// length differs from the number of rows.
	ErrDimensionMismatch = errors.New("gaussian: dimension mismatch")
)

// Operation tags carried by OpError.
const (
	OpNew                = "New"
	OpForwardElimination = "ForwardElimination"
	OpBackSubstitution   = "BackSubstitution"
	OpSolve              = "Solve"
	OpParsePivoting      = "ParsePivoting"
)

// OpError records the public operation that reported a failure. Its message
// keeps the "Op: underlying" shape and it unwraps to the underlying error, so
// errors.Is against the sentinels is unaffected. Use errors.As to tell a
// failed Solve from a failed phase call.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

// gaussianErrorf wraps err with an operation tag. err must be non-nil.
func gaussianErrorf(tag string, err error) error {
	return &OpError{Op: tag, Err: err}
}
