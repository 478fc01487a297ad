package adstock

import (
	"fmt"

	"github.com/mktmix/transform/errs"
)

// Geometric applies fixed-rate exponential decay to x.
//
// Each period keeps its own input and adds theta times the previous
// period's accumulated effect:
//
//	decayed[0] = x[0]
//	decayed[t] = x[t] + theta*decayed[t-1]
//
// The returned kernel is the geometric weight sequence theta, theta^2,
// theta^3, ... describing how much of an impulse survives at each lag. It
// is independent of x and intended for diagnostics.
//
// Parameters:
//   - x: The spend or exposure series, at least one observation.
//   - theta: The per-period retention rate, in [0, 1). 0 means no
//     carry-over; values near 1 decay very slowly.
//
// Returns:
//   - *Result: The decayed series and the decay kernel.
//   - error: An error if x is empty or theta is outside [0, 1).
func Geometric(x []float64, theta float64) (*Result, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: geometric adstock needs at least one observation", errs.ErrEmptySeries)
	}
	if theta < 0 || theta >= 1 {
		return nil, fmt.Errorf("%w: theta %g, must be in [0, 1)", errs.ErrInvalidTheta, theta)
	}

	decayed := make([]float64, len(x))
	kernel := make([]float64, len(x))

	decayed[0] = x[0]
	kernel[0] = theta
	for t := 1; t < len(x); t++ {
		decayed[t] = x[t] + theta*decayed[t-1]
		kernel[t] = kernel[t-1] * theta
	}

	return &Result{Decayed: decayed, Kernel: kernel}, nil
}
