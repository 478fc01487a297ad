// Package transform provides the media transformation functions used in
// marketing-mix modeling: adstock (time decay of advertising effect) and
// saturation (diminishing returns at higher spend).
//
// The transforms are pure functions over numeric series and scalar
// hyperparameters. They hold no state, perform no I/O, and are safe to
// call concurrently, which matters because fitting loops evaluate them
// thousands of times while searching the hyperparameter space.
//
// # Core Transforms
//
//   - Geometric adstock: fixed-rate exponential decay, one parameter
//     (theta). The classic carry-over model.
//   - Weibull adstock: two-parameter (shape, scale) decay with a choice
//     of survival-function (CDF) or density (PDF) kernel. The PDF kernel
//     can peak after the spend period, modeling lagged response.
//   - Hill saturation: two-parameter (alpha, gamma) S/C-shaped response
//     curve mapping spend onto [0, 1).
//
// # Basic Usage
//
// Decay a spend series and saturate the result:
//
//	import "github.com/mktmix/transform"
//
//	spend := []float64{100, 0, 0, 80, 0, 0}
//
//	// Carry 70% of each period's effect into the next.
//	decayed, _ := transform.GeometricAdstock(spend, 0.7)
//
//	// Saturate the decayed series with an inflexion at the median
//	// of its range.
//	saturated, _ := transform.HillSaturation(decayed.Decayed, 2.0, 0.5)
//
//	for i, v := range saturated {
//	    fmt.Printf("period %d: %.4f\n", i, v)
//	}
//
// Hyperparameters often arrive as data (e.g. from a search loop); the
// Adstock dispatcher selects the engine from a Params value:
//
//	params := adstock.Params{Method: adstock.MethodWeibullPDF, Shape: 2, Scale: 0.5}
//	res, _ := transform.Adstock(spend, params)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the concern
// packages, simplifying the most common use cases. For fine-grained
// control, use the underlying packages directly:
//
//   - adstock: the decay engines, kernel types and the Params dispatcher
//   - saturation: Hill and Michaelis-Menten curves
//   - curves: per-channel evaluation and concurrent hyperparameter grids
package transform

import (
	"github.com/mktmix/transform/adstock"
	"github.com/mktmix/transform/curves"
	"github.com/mktmix/transform/saturation"
)

// GeometricAdstock applies fixed-rate exponential decay to a spend series.
//
// Each period keeps a fraction theta of the previous period's accumulated
// effect, so a single burst of spend fades geometrically over the
// following periods.
//
// Parameters:
//   - x: The spend or exposure series, at least one observation.
//   - theta: The per-period retention rate, in [0, 1).
//
// Returns:
//   - *adstock.Result: The decayed series and the decay kernel.
//   - error: An error if x is empty or theta is outside [0, 1).
//
// Example:
//
//	res, err := transform.GeometricAdstock([]float64{100, 0, 0, 0}, 0.7)
//	// res.Decayed == [100, 70, 49, 34.3]
func GeometricAdstock(x []float64, theta float64) (*adstock.Result, error) {
	return adstock.Geometric(x, theta)
}

// WeibullAdstock applies shape/scale-parameterized decay to a spend
// series.
//
// The scale fraction is translated onto the series' own time axis before
// the kernel is built, so the same hyperparameter range works for weekly
// and daily data alike. By default the survival (CDF) kernel is used;
// pass adstock.WithKernelType(adstock.KernelPDF) for the lagged density
// kernel, and adstock.WithWindow to pin the scale translation to a fixed
// window length.
//
// Parameters:
//   - x: The spend or exposure series, at least one observation.
//   - shape: The Weibull shape parameter, >= 0 (0 disables carry-over
//     entirely).
//   - scale: The Weibull scale as a quantile fraction, in [0, 1].
//   - opts: Optional settings (adstock.WithWindow, adstock.WithKernelType).
//
// Returns:
//   - *adstock.Result: The decayed series and the decay kernel.
//   - error: An error if x is empty or a parameter is out of range.
func WeibullAdstock(x []float64, shape, scale float64, opts ...adstock.WeibullOption) (*adstock.Result, error) {
	return adstock.Weibull(x, shape, scale, opts...)
}

// Adstock applies the decay family selected by params.Method, for callers
// whose hyperparameters arrive as data rather than as code.
//
// Returns:
//   - *adstock.Result: The decayed series and the decay kernel.
//   - error: An error if the method is unknown or its parameters are
//     invalid.
func Adstock(x []float64, params adstock.Params) (*adstock.Result, error) {
	return adstock.Transform(x, params)
}

// HillSaturation maps a series onto the two-parameter Hill
// diminishing-returns curve.
//
// gamma is a quantile fraction of the input range; it is translated into
// an absolute inflexion point so the hyperparameter is comparable across
// channels with different spend scales. Pass
// saturation.WithMarginal(xm) to evaluate the fitted curve on new values.
//
// Parameters:
//   - x: The input series on its natural scale, at least one observation.
//   - alpha: The curve shape, > 0.
//   - gamma: The inflexion quantile fraction, in [0, 1].
//   - opts: Optional settings (saturation.WithMarginal).
//
// Returns:
//   - []float64: The saturated values, each in [0, 1).
//   - error: An error if x is empty or a parameter is out of range.
func HillSaturation(x []float64, alpha, gamma float64, opts ...saturation.HillOption) ([]float64, error) {
	return saturation.Hill(x, alpha, gamma, opts...)
}

// ChannelID computes the xxHash64 of the given channel name.
//
// IDs are deterministic and stable across runs and platforms, so channel
// responses can be keyed, joined and compared without carrying name
// strings through downstream pipelines.
//
// Example:
//
//	tvID := transform.ChannelID("tv_spend")
//	searchID := transform.ChannelID("search_brand")
func ChannelID(name string) uint64 {
	return curves.ChannelID(name)
}
