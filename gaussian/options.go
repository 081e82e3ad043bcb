// SPDX-License-Identifier: MIT

// Package gaussian: functional configuration of a Solver. This file defines:
//   - Pivoting, the closed set of pivot selection strategies,
//   - documented defaults (constants),
//   - Option / Options and the WithX constructors,
//   - gatherOptions, the single place where defaults and setters meet.
//
// Design goals:
//   - Configuration is fixed at New; a Solver never changes strategy afterwards.
//   - Unknown strategy names surface as ErrUnknownPivoting from New, not as a panic,
//     because they usually come from configuration files.
//   - Last-writer-wins for scalar settings; hooks accumulate.

package gaussian

import (
	"fmt"
	"strings"
)

// Pivoting selects how the pivot is chosen at every elimination step.
type Pivoting int

const (
	// PivotNone uses matrix[k][k] as is and fails with ErrZeroPivot when it is zero.
	PivotNone Pivoting = iota
	// PivotAvoidZero keeps matrix[k][k] unless it is zero, then falls back to PivotPartial.
	PivotAvoidZero
	// PivotPartial swaps in the row with the largest magnitude in column k.
	PivotPartial
	// PivotScaled swaps in the row whose entry in column k is largest relative
	// to the largest magnitude of that row.
	PivotScaled
	// PivotComplete searches the whole trailing sub-matrix and swaps both the
	// row and the column of the largest magnitude into (k,k).
	PivotComplete
)

// Recognized pivoting names, as accepted by ParsePivoting.
const (
	PivotingNameNone      = "none"
	PivotingNameAvoidZero = "avoid zero"
	PivotingNamePartial   = "partial"
	PivotingNameScaled    = "scaled"
	PivotingNameComplete  = "complete"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPivoting is the strategy used when no WithPivoting option is given.
	DefaultPivoting = PivotPartial

	// DefaultLU controls multiplier capture. false ⇒ the lower triangle is
	// cleared to the configured zero during elimination.
	DefaultLU = false
)

var pivotingNames = map[Pivoting]string{
	PivotNone:      PivotingNameNone,
	PivotAvoidZero: PivotingNameAvoidZero,
	PivotPartial:   PivotingNamePartial,
	PivotScaled:    PivotingNameScaled,
	PivotComplete:  PivotingNameComplete,
}

// String returns the recognized name of the strategy.
func (p Pivoting) String() string {
	if name, ok := pivotingNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Pivoting(%d)", int(p))
}

// Valid reports whether p is one of the declared strategies.
func (p Pivoting) Valid() bool {
	_, ok := pivotingNames[p]

	return ok
}

// ParsePivoting maps a recognized name ("none", "partial", "scaled",
// "avoid zero", "complete") to its Pivoting value. Matching is exact except
// for surrounding whitespace, mirroring the option values callers write in
// configuration files.
//
// Errors:
//   - ErrUnknownPivoting for any other name.
func ParsePivoting(name string) (Pivoting, error) {
	trimmed := strings.TrimSpace(name)
	for p, n := range pivotingNames {
		if n == trimmed {
			return p, nil
		}
	}

	return 0, gaussianErrorf(OpParsePivoting, fmt.Errorf("%w: %q", ErrUnknownPivoting, name))
}

// Options stores the effective configuration of a Solver after applying
// Option setters. Fields are unexported; New resolves them via gatherOptions.
type Options[T any] struct {
	pivoting Pivoting
	lu       bool
	zero     T
	hooks    []Hooks[T]

	// err records the first setter failure so New can report it.
	err error
}

// Option mutates Options. Setters are applied in order.
type Option[T any] func(*Options[T])

// WithPivoting selects the pivot strategy. An undeclared value makes New fail
// with ErrUnknownPivoting.
func WithPivoting[T any](p Pivoting) Option[T] {
	return func(o *Options[T]) {
		if !p.Valid() && o.err == nil {
			o.err = fmt.Errorf("%w: %v", ErrUnknownPivoting, p)
		}
		o.pivoting = p
	}
}

// WithPivotingName selects the pivot strategy by its recognized name, the
// form used by configuration files. An unknown name makes New fail with
// ErrUnknownPivoting.
func WithPivotingName[T any](name string) Option[T] {
	return func(o *Options[T]) {
		p, err := ParsePivoting(name)
		if err != nil {
			if o.err == nil {
				o.err = err
			}

			return
		}
		o.pivoting = p
	}
}

// WithLU enables or disables multiplier capture. When enabled, forward
// elimination stores each row multiplier at matrix[i][k] instead of clearing
// it, leaving the unit lower factor L below the diagonal and U on and above it.
func WithLU[T any](enabled bool) Option[T] {
	return func(o *Options[T]) { o.lu = enabled }
}

// WithZero sets the additive identity of T. It is written into cleared lower
// triangle slots and used as the placeholder value of free unknowns.
// Default: the Go zero value of T, which is only correct for value types
// such as float64. Pointer types like *big.Rat must set it explicitly.
func WithZero[T any](zero T) Option[T] {
	return func(o *Options[T]) { o.zero = zero }
}

// WithHooks registers a set of observability callbacks. Repeated calls
// accumulate; hooks fire in registration order.
func WithHooks[T any](h Hooks[T]) Option[T] {
	return func(o *Options[T]) { o.hooks = append(o.hooks, h) }
}

// gatherOptions applies user setters on top of the documented defaults.
// The returned error is the first setter failure, if any.
//
// Complexity: O(k) for k setters.
func gatherOptions[T any](user ...Option[T]) (Options[T], error) {
	o := Options[T]{
		pivoting: DefaultPivoting,
		lu:       DefaultLU,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o, o.err
}
