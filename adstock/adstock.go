package adstock

import (
	"fmt"
	"strings"

	"github.com/mktmix/transform/errs"
)

// Result holds the output of an adstock transform.
type Result struct {
	// Decayed is the transformed series: each period's input plus the
	// carried-over effect of all earlier periods. Same length as the input.
	Decayed []float64
	// Kernel is the decay kernel the transform applied: the weight an
	// impulse contributes at each lag. Same length as the input.
	Kernel []float64
}

// Method identifies the decay family applied to a series.
type Method int

const (
	// MethodGeometric is the fixed-rate exponential decay engine.
	MethodGeometric Method = iota
	// MethodWeibullCDF is the Weibull engine with the survival kernel (no lag).
	MethodWeibullCDF
	// MethodWeibullPDF is the Weibull engine with the density kernel (lag allowed).
	MethodWeibullPDF
)

// methodNames maps Method to their string representations.
var methodNames = map[Method]string{
	MethodGeometric:  "geometric",
	MethodWeibullCDF: "weibull_cdf",
	MethodWeibullPDF: "weibull_pdf",
}

// String returns the string representation of the method.
func (m Method) String() string {
	if name, exists := methodNames[m]; exists {
		return name
	}

	return "unknown"
}

// methodFromString maps string names to Method.
var methodFromString = map[string]Method{
	"geometric":   MethodGeometric,
	"weibull_cdf": MethodWeibullCDF,
	"weibull_pdf": MethodWeibullPDF,
}

// MethodFromString returns the Method for a given string name.
// Returns Method(-1) for unknown names.
func MethodFromString(name string) Method {
	if method, exists := methodFromString[strings.ToLower(name)]; exists {
		return method
	}

	return Method(-1) // Invalid Method
}

// Params bundles the hyperparameters of one adstock transform so a full
// parameterization can be passed around, and swept, as a single value.
//
// Only the fields of the selected Method are read: Theta for
// MethodGeometric; Shape, Scale and Window for the Weibull methods.
type Params struct {
	// Method selects the decay family.
	Method Method
	// Theta is the geometric decay rate, in [0, 1).
	Theta float64
	// Shape is the Weibull shape parameter, >= 0.
	Shape float64
	// Scale is the Weibull scale as a quantile fraction, in [0, 1].
	Scale float64
	// Window overrides the scale-translation window for the Weibull
	// methods. Zero means the series length.
	Window int
}

// Transform applies the decay family selected by p.Method to x.
//
// It is equivalent to calling Geometric or Weibull directly with the
// corresponding fields of p, and shares their validation rules.
//
// Returns:
//   - *Result: The decayed series and the decay kernel.
//   - error: An error if p.Method is unknown or its parameters are invalid.
func Transform(x []float64, p Params) (*Result, error) {
	switch p.Method {
	case MethodGeometric:
		return Geometric(x, p.Theta)
	case MethodWeibullCDF, MethodWeibullPDF:
		opts := make([]WeibullOption, 0, 2)
		if p.Window > 0 {
			opts = append(opts, WithWindow(p.Window))
		}
		if p.Method == MethodWeibullPDF {
			opts = append(opts, WithKernelType(KernelPDF))
		}

		return Weibull(x, p.Shape, p.Scale, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidMethod, int(p.Method))
	}
}
