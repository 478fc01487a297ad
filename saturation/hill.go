package saturation

import (
	"fmt"
	"math"

	"github.com/mktmix/transform/errs"
	"github.com/mktmix/transform/internal/options"
	"github.com/mktmix/transform/internal/vec"
)

// inflexionGridSize is the number of grid points used to translate gamma
// into an absolute inflexion value on the input's own scale.
const inflexionGridSize = 100

type hillConfig struct {
	marginal []float64
}

// HillOption configures the Hill transform.
type HillOption = options.Option[*hillConfig]

// WithMarginal evaluates the fitted curve on xm instead of the training
// series. The inflexion point is still derived from the training series,
// so the curve itself does not move.
func WithMarginal(xm []float64) HillOption {
	return func(cfg *hillConfig) error {
		if len(xm) == 0 {
			return fmt.Errorf("%w: marginal evaluation needs at least one value", errs.ErrEmptyMarginal)
		}
		cfg.marginal = xm

		return nil
	}
}

// Hill applies the two-parameter Hill saturation curve to x.
//
// gamma is first translated into an absolute inflexion point: the
// gamma-quantile of an evenly spaced 100-point grid over
// [min(x), max(x)], rounded to 4 decimal places. Each value v is then
// mapped to
//
//	y = v^alpha / (v^alpha + inflexion^alpha)
//
// which is 0.5 exactly at the inflexion and approaches 1 as v grows.
//
// Parameters:
//   - x: The input series on its natural scale (e.g. currency), at least
//     one observation, values non-negative.
//   - alpha: The curve shape, > 0. Values above 1 give an S-shape, at or
//     below 1 a C-shape.
//   - gamma: The inflexion as a quantile fraction of the input range,
//     in [0, 1].
//   - opts: Optional settings (WithMarginal).
//
// Returns:
//   - []float64: The saturated values, one per input (or per marginal
//     value when WithMarginal is used), each in [0, 1).
//   - error: An error if x is empty, alpha is not positive, gamma is
//     outside [0, 1], or an option rejects its value.
//
// A series with zero range has no quantile grid to speak of; the
// inflexion falls back to the series value itself. The 0/0 case (zero
// input with a zero inflexion) is defined as 0.
func Hill(x []float64, alpha, gamma float64, opts ...HillOption) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: hill saturation needs at least one observation", errs.ErrEmptySeries)
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("%w: alpha %g, must be > 0", errs.ErrInvalidAlpha, alpha)
	}
	if gamma < 0 || gamma > 1 {
		return nil, fmt.Errorf("%w: gamma %g, must be in [0, 1]", errs.ErrInvalidGamma, gamma)
	}

	var cfg hillConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	inflexion := inflexionOf(x, gamma)

	values := x
	if cfg.marginal != nil {
		values = cfg.marginal
	}

	saturated := make([]float64, len(values))
	for i, v := range values {
		saturated[i] = hillValue(v, alpha, inflexion)
	}

	return saturated, nil
}

// Inflexion returns the absolute inflexion point the Hill transform
// derives from x and gamma, for diagnostics and curve labeling.
func Inflexion(x []float64, gamma float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("%w: inflexion needs at least one observation", errs.ErrEmptySeries)
	}
	if gamma < 0 || gamma > 1 {
		return 0, fmt.Errorf("%w: gamma %g, must be in [0, 1]", errs.ErrInvalidGamma, gamma)
	}

	return inflexionOf(x, gamma), nil
}

func inflexionOf(x []float64, gamma float64) float64 {
	lo, hi := vec.Range(x)
	if lo == hi {
		// Zero-range series: the grid is degenerate, fall back to the
		// series value itself.
		return x[0]
	}

	return vec.RoundTo(vec.UniformQuantile(lo, hi, inflexionGridSize, gamma), 4)
}

// hillValue evaluates v^alpha / (v^alpha + inflexion^alpha), with the 0/0
// indeterminate defined as 0.
func hillValue(v, alpha, inflexion float64) float64 {
	va := math.Pow(v, alpha)
	ia := math.Pow(inflexion, alpha)
	denom := va + ia
	if denom == 0 {
		return 0
	}

	return va / denom
}
