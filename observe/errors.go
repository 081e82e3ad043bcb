// SPDX-License-Identifier: MIT

package observe

import (
	"errors"

	"github.com/katalvlaran/gauss/gaussian"
)

// Failure kinds reported by ErrorKind, used as log attributes and metric labels.
const (
	KindConfiguration     = "configuration"
	KindZeroPivot         = "zero_pivot"
	KindNoSolution        = "no_solution"
	KindDimensionMismatch = "dimension_mismatch"
	KindUnknown           = "unknown"
)

// ErrorKind classifies a solver error by the sentinel it wraps.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, gaussian.ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, gaussian.ErrZeroPivot):
		return KindZeroPivot
	case errors.Is(err, gaussian.ErrNoSolution):
		return KindNoSolution
	case errors.Is(err, gaussian.ErrDimensionMismatch):
		return KindDimensionMismatch
	default:
		return KindUnknown
	}
}
