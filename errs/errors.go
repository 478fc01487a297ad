// Package errs defines the sentinel errors shared across the transform
// packages. Call sites wrap them with fmt.Errorf("%w: ...") to add
// parameter values, so callers can classify failures with errors.Is while
// still getting a precise message.
package errs

import "errors"

// Input series errors.
var (
	// ErrEmptySeries is returned when an input series has no observations.
	ErrEmptySeries = errors.New("input series is empty")
	// ErrEmptyMarginal is returned when a marginal evaluation series has no values.
	ErrEmptyMarginal = errors.New("marginal series is empty")
)

// Adstock parameter errors.
var (
	// ErrInvalidTheta is returned when the geometric decay rate is outside [0, 1).
	ErrInvalidTheta = errors.New("invalid theta")
	// ErrInvalidShape is returned when the Weibull shape parameter is negative.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrInvalidScale is returned when the Weibull scale fraction is outside [0, 1].
	ErrInvalidScale = errors.New("invalid scale")
	// ErrInvalidWindow is returned when a window or period count is not positive.
	ErrInvalidWindow = errors.New("invalid window length")
	// ErrInvalidKernelType is returned when a kernel selector is not cdf or pdf.
	ErrInvalidKernelType = errors.New("invalid kernel type")
	// ErrInvalidMethod is returned when an adstock method selector is unknown.
	ErrInvalidMethod = errors.New("invalid adstock method")
)

// Saturation parameter errors.
var (
	// ErrInvalidAlpha is returned when the Hill shape parameter is not positive.
	ErrInvalidAlpha = errors.New("invalid alpha")
	// ErrInvalidGamma is returned when the Hill inflexion fraction is outside [0, 1].
	ErrInvalidGamma = errors.New("invalid gamma")
	// ErrInvalidVmax is returned when the Michaelis-Menten capacity is not positive.
	ErrInvalidVmax = errors.New("invalid vmax")
	// ErrInvalidKm is returned when the Michaelis-Menten half-rate constant is not positive.
	ErrInvalidKm = errors.New("invalid km")
	// ErrResponseOutOfRange is returned when a reverse Michaelis-Menten input
	// is at or above the vmax asymptote.
	ErrResponseOutOfRange = errors.New("response out of range")
)

// Grid evaluation errors.
var (
	// ErrInvalidParallelism is returned when a concurrency limit is not positive.
	ErrInvalidParallelism = errors.New("invalid parallelism")
)
