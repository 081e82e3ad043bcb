// Package gauss solves linear systems A·x = b by Gaussian elimination over
// any numeric field you can describe with a handful of operations.
//
// What is gauss?
//
//	A small, generic, dependency-light library that brings together:
//		• Forward elimination to row-echelon form (optionally keeping LU multipliers)
//		• Back substitution with free unknowns set to zero
//		• Five pivoting strategies: none, avoid zero, partial, scaled, complete
//		• Step hooks (OnRowSwap, OnReduceColumnStart…) for visualisation and tracing
//
// Why choose gauss?
//
//   - Exact when you want it: plug in *big.Rat and get exact fractions
//   - Fast when you need it: plug in float64 with partial pivoting
//   - Observable: slog logging, OpenTelemetry spans and Prometheus counters
//     are ready-made hook sets in observe/
//
// Everything is organized under a few subpackages:
//
//	gaussian/   Field, Solver, pivoting, elimination, substitution & hooks
//	observe/    logging, tracing and metrics hooks
//	config/     YAML / environment configuration of a Solver
//	cmd/gauss/  command line front end working over rational numbers
//
// Quick example:
//
//	    | 1 2 |       | 5 |             | -4  |
//	    | 3 4 | · x = | 6 |   gives x = | 9/2 |
//
//	go get github.com/katalvlaran/gauss/gaussian
package gauss
