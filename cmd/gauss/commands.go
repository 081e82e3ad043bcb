// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"
)

// runner is the body of a subcommand once its system is loaded and the
// session is wired.
type runner func(cmd *cobra.Command, s *session, f *systemFile, matrix [][]*big.Rat, result []*big.Rat) error

// withSession loads the system named on the command line, builds the session
// and always flushes it, joining a flush failure to the command's error.
func withSession(opts *cliOptions, run runner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		f, matrix, result, err := loadSystem(cmd, args)
		if err != nil {
			return err
		}
		s, err := newSession(cmd, opts)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, s.close(context.WithoutCancel(cmd.Context()), cmd.ErrOrStderr()))
		}()

		return run(cmd, s, f, matrix, result)
	}
}

func newSolveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file|->",
		Short: "Solve a system and print one line per unknown",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, _ *systemFile, matrix [][]*big.Rat, result []*big.Rat) error {
			out := s.solver.Solve(matrix, result)
			if out == nil {
				return s.failure
			}
			printSolution(cmd.OutOrStdout(), out.Solution, nil, out.InfiniteSolutions, opts.decimals)

			return nil
		}),
	}
}

func newEliminateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eliminate <file|->",
		Short: "Run forward elimination and print the reduced system as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, _ *systemFile, matrix [][]*big.Rat, result []*big.Rat) error {
			sys, err := s.solver.ForwardElimination(matrix, result)
			if err != nil {
				return err
			}

			return writeSystem(cmd.OutOrStdout(), sys.Matrix, sys.Result, sys.TransformationVector)
		}),
	}
}

func newSubstituteCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "substitute <file|->",
		Short: "Run back substitution on a system already in row-echelon form",
		Long: `substitute solves a reduced system such as the output of "gauss eliminate".
When the file carries a transformation_vector, unknowns are reported under
their original column index.`,
		Args: cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, f *systemFile, matrix [][]*big.Rat, result []*big.Rat) error {
			if err := checkTransformation(f.TransformationVector, matrix); err != nil {
				return err
			}
			out, err := s.solver.BackSubstitution(matrix, result)
			if err != nil {
				return err
			}
			printSolution(cmd.OutOrStdout(), out.Solution, f.TransformationVector, out.InfiniteSolutions, opts.decimals)

			return nil
		}),
	}
}

// printSolution writes "x<i> = <value>" lines ordered by original column.
// Position p of solution belongs to column tv[p] when tv is given; columns
// past the solution are free and printed as 0.
func printSolution(w io.Writer, solution []*big.Rat, tv []int, infinite bool, decimals int) {
	values := solution
	if tv != nil {
		values = make([]*big.Rat, len(tv))
		for p, col := range tv {
			if p < len(solution) {
				values[col] = solution[p]
			} else {
				values[col] = new(big.Rat)
			}
		}
	}
	for i, v := range values {
		fmt.Fprintf(w, "x%d = %s\n", i, formatRat(v, decimals))
	}
	if infinite {
		fmt.Fprintln(w, "infinite solutions: free unknowns were set to 0")
	}
}
