package saturation

import (
	"fmt"

	"github.com/mktmix/transform/errs"
)

// MichaelisMenten maps each spend value onto the saturation curve
//
//	y = vmax*x / (km + x)
//
// vmax is the response ceiling and km the spend at which the response
// reaches half of vmax. Both must be positive.
func MichaelisMenten(x []float64, vmax, km float64) ([]float64, error) {
	if err := validateMichaelisMenten(len(x), vmax, km); err != nil {
		return nil, err
	}

	response := make([]float64, len(x))
	for i, v := range x {
		response[i] = vmax * v / (km + v)
	}

	return response, nil
}

// MichaelisMentenReverse maps response values back onto the spend axis,
// inverting MichaelisMenten with the same vmax and km:
//
//	x = y*km / (vmax - y)
//
// Every response must lie below the vmax asymptote; values at or above it
// have no finite spend equivalent.
func MichaelisMentenReverse(response []float64, vmax, km float64) ([]float64, error) {
	if err := validateMichaelisMenten(len(response), vmax, km); err != nil {
		return nil, err
	}

	spend := make([]float64, len(response))
	for i, y := range response {
		if y >= vmax {
			return nil, fmt.Errorf("%w: response %g at index %d, must be below vmax %g",
				errs.ErrResponseOutOfRange, y, i, vmax)
		}
		spend[i] = y * km / (vmax - y)
	}

	return spend, nil
}

func validateMichaelisMenten(n int, vmax, km float64) error {
	if n == 0 {
		return fmt.Errorf("%w: michaelis-menten needs at least one value", errs.ErrEmptySeries)
	}
	if vmax <= 0 {
		return fmt.Errorf("%w: vmax %g, must be > 0", errs.ErrInvalidVmax, vmax)
	}
	if km <= 0 {
		return fmt.Errorf("%w: km %g, must be > 0", errs.ErrInvalidKm, km)
	}

	return nil
}
