// SPDX-License-Identifier: MIT

// Command gauss solves linear systems exactly over rational numbers.
//
// A system file is YAML with decimal or fractional literals:
//
//	matrix:
//	  - [1, 2]
//	  - [3, 4]
//	result: [5, 6]
//
// Usage:
//
//	gauss solve system.yaml                     # x0 = -4, x1 = 9/2
//	gauss solve --pivoting complete -           # read the system from stdin
//	gauss eliminate system.yaml > reduced.yaml  # row-echelon form, same format
//	gauss substitute reduced.yaml               # back substitution only
//
// Settings are layered: GAUSS_PIVOTING / GAUSS_LU first, then the keys set in
// the --config file, then flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
