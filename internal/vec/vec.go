// Package vec provides the small numeric helpers shared by the transform
// engines: quantile lookup over synthetic uniform grids, decimal rounding,
// and min-max normalization.
package vec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// UniformQuantile returns the p-quantile of a uniform grid of n points
// spanning [lo, hi], using linear interpolation between adjacent grid
// points (Hyndman & Fan type 7). The grid itself is never materialized.
//
// p must be in [0, 1]. A grid of a single point (n <= 1) collapses to lo.
func UniformQuantile(lo, hi float64, n int, p float64) float64 {
	if n <= 1 {
		return lo
	}

	h := p * float64(n-1)
	if h <= 0 {
		return lo
	}
	if h >= float64(n-1) {
		return hi
	}

	step := (hi - lo) / float64(n-1)
	i := math.Floor(h)

	return lo + i*step + (h-i)*step
}

// RoundTo rounds v to the given number of decimal places, ties to even.
func RoundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))

	return math.RoundToEven(v*pow) / pow
}

// Range returns the minimum and maximum of values.
// It panics on an empty slice; callers validate input length first.
func Range(values []float64) (lo, hi float64) {
	return floats.Min(values), floats.Max(values)
}

// MinMaxScale rescales values in place so the smallest becomes 0 and the
// largest becomes 1. A flat slice has no range to scale by and collapses
// to a unit impulse at position 0, which keeps downstream convolutions
// well defined.
func MinMaxScale(values []float64) {
	if len(values) == 0 {
		return
	}

	lo, hi := Range(values)
	if lo == hi {
		for i := range values {
			values[i] = 0
		}
		values[0] = 1

		return
	}

	span := hi - lo
	for i, v := range values {
		values[i] = (v - lo) / span
	}
}
