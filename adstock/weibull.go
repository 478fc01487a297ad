package adstock

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mktmix/transform/errs"
	"github.com/mktmix/transform/internal/options"
	"github.com/mktmix/transform/internal/vec"
)

// KernelType selects the Weibull kernel family.
type KernelType uint8

const (
	// KernelCDF builds the kernel from the Weibull survival function.
	// Weight starts at 1 in the spend period and never increases.
	KernelCDF KernelType = iota + 1
	// KernelPDF builds the kernel from the min-max normalized Weibull
	// density. Weight can peak after the spend period, producing lag.
	KernelPDF
)

// String returns the string representation of the kernel type.
func (kt KernelType) String() string {
	switch kt {
	case KernelCDF:
		return "cdf"
	case KernelPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

type weibullConfig struct {
	window int
	kernel KernelType
}

// WeibullOption configures the Weibull engine.
type WeibullOption = options.Option[*weibullConfig]

// WithWindow sets the window length used to translate the scale fraction
// onto the time axis. It affects only the scale translation, never the
// output length. Defaults to the series length.
func WithWindow(n int) WeibullOption {
	return func(cfg *weibullConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: window %d, must be >= 1", errs.ErrInvalidWindow, n)
		}
		cfg.window = n

		return nil
	}
}

// WithKernelType selects the kernel family. Defaults to KernelCDF.
func WithKernelType(kt KernelType) WeibullOption {
	return func(cfg *weibullConfig) error {
		if kt != KernelCDF && kt != KernelPDF {
			return fmt.Errorf("%w: %d", errs.ErrInvalidKernelType, uint8(kt))
		}
		cfg.kernel = kt

		return nil
	}
}

// Weibull applies shape/scale-parameterized decay to x.
//
// The scale fraction is first translated to an absolute period count: the
// scale-quantile of the periods 1..window, rounded to the nearest integer.
// A Weibull decay kernel with the given shape and the translated scale is
// then built over the series length and convolved with x, so every input
// period contributes its kernel-weighted effect to all later periods.
//
// shape == 0 is the degenerate no-carry-over setting: both the kernel and
// the decayed series are all zeros, whatever x contains.
//
// Parameters:
//   - x: The spend or exposure series, at least one observation.
//   - shape: The Weibull shape parameter, >= 0. Values below 1 decay
//     fastest immediately; values above 1 hold strength before dropping.
//   - scale: The Weibull scale as a quantile fraction of the window,
//     in [0, 1]. Small values decay quickly in practice; a useful range
//     is (0, 0.1].
//   - opts: Optional settings (WithWindow, WithKernelType).
//
// Returns:
//   - *Result: The decayed series and the decay kernel.
//   - error: An error if x is empty, shape is negative, scale is outside
//     [0, 1], or an option rejects its value.
func Weibull(x []float64, shape, scale float64, opts ...WeibullOption) (*Result, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: weibull adstock needs at least one observation", errs.ErrEmptySeries)
	}
	if shape < 0 {
		return nil, fmt.Errorf("%w: shape %g, must be >= 0", errs.ErrInvalidShape, shape)
	}
	if scale < 0 || scale > 1 {
		return nil, fmt.Errorf("%w: scale %g, must be in [0, 1]", errs.ErrInvalidScale, scale)
	}

	cfg := weibullConfig{window: len(x), kernel: KernelCDF}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if shape == 0 {
		// Degenerate setting: zero kernel, zero carry-over.
		return &Result{
			Decayed: make([]float64, len(x)),
			Kernel:  make([]float64, len(x)),
		}, nil
	}

	scaleTrans := translateScale(scale, cfg.window)

	var kernel []float64
	switch cfg.kernel {
	case KernelCDF:
		kernel = cdfKernel(len(x), shape, scaleTrans)
	case KernelPDF:
		kernel = pdfKernel(len(x), shape, scaleTrans)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidKernelType, uint8(cfg.kernel))
	}

	return &Result{Decayed: convolve(x, kernel), Kernel: kernel}, nil
}

// translateScale maps the scale fraction onto the time axis: the
// scale-quantile of the periods 1..window, rounded to the nearest integer
// (ties to even). The result is always >= 1, so the Weibull distribution
// below is well defined.
func translateScale(scale float64, window int) float64 {
	return vec.RoundTo(vec.UniformQuantile(1, float64(window), window, scale), 0)
}

// cdfKernel is the Weibull survival function sampled at each lag. Lag 0 is
// pinned at 1: the spend period always contributes its full value.
func cdfKernel(n int, shape, scaleTrans float64) []float64 {
	dist := distuv.Weibull{K: shape, Lambda: scaleTrans}

	kernel := make([]float64, n)
	kernel[0] = 1
	for t := 1; t < n; t++ {
		kernel[t] = dist.Survival(float64(t))
	}

	return kernel
}

// pdfKernel is the Weibull density sampled at periods 1..n and min-max
// normalized so the strongest lag has weight 1. A flat density collapses
// to a unit impulse at lag 0.
func pdfKernel(n int, shape, scaleTrans float64) []float64 {
	dist := distuv.Weibull{K: shape, Lambda: scaleTrans}

	kernel := make([]float64, n)
	for t := range kernel {
		kernel[t] = dist.Prob(float64(t + 1))
	}
	vec.MinMaxScale(kernel)

	return kernel
}

// convolve computes the causal convolution of x with kernel: each input
// period p contributes x[p]*kernel[t-p] to every later period t. Direct
// O(N^2) form; series in this domain are a few hundred periods at most.
func convolve(x, kernel []float64) []float64 {
	decayed := make([]float64, len(x))
	for p, v := range x {
		if v == 0 {
			continue
		}
		for t := p; t < len(x); t++ {
			decayed[t] += v * kernel[t-p]
		}
	}

	return decayed
}
