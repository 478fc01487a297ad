package curves

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/mktmix/transform/adstock"
	"github.com/mktmix/transform/saturation"
)

// Channel is one media channel's spend series.
type Channel struct {
	// Name identifies the channel, e.g. "tv_spend".
	Name string
	// Spend is the per-period spend or exposure series.
	Spend []float64
}

// ChannelID computes the xxHash64 of the given channel name.
func ChannelID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// TransformSpec is one complete response-curve parameterization: the
// adstock hyperparameters plus the Hill pair applied to the decayed
// series.
type TransformSpec struct {
	// Adstock selects and parameterizes the decay transform.
	Adstock adstock.Params
	// Alpha is the Hill shape parameter, > 0.
	Alpha float64
	// Gamma is the Hill inflexion as a quantile fraction, in [0, 1].
	Gamma float64
}

// Response is the evaluated transform of one channel under one spec.
type Response struct {
	// ChannelID is the xxHash64 of the channel name.
	ChannelID uint64
	// Channel is the channel name.
	Channel string
	// Spec echoes the parameterization that produced this response.
	Spec TransformSpec
	// Decayed is the adstocked spend series.
	Decayed []float64
	// Kernel is the decay kernel the adstock engine applied.
	Kernel []float64
	// Saturated is the Hill transform of the decayed series, in [0, 1).
	Saturated []float64
}

// Evaluate applies spec to one channel: adstock on the spend series, then
// Hill saturation on the decayed output.
//
// Returns:
//   - *Response: The decayed series, decay kernel and saturated values.
//   - error: An error if the channel's series or any spec parameter is
//     invalid; the channel name is included for attribution.
func Evaluate(ch Channel, spec TransformSpec) (*Response, error) {
	decayed, err := adstock.Transform(ch.Spend, spec.Adstock)
	if err != nil {
		return nil, fmt.Errorf("channel %q: %w", ch.Name, err)
	}

	saturated, err := saturation.Hill(decayed.Decayed, spec.Alpha, spec.Gamma)
	if err != nil {
		return nil, fmt.Errorf("channel %q: %w", ch.Name, err)
	}

	return &Response{
		ChannelID: ChannelID(ch.Name),
		Channel:   ch.Name,
		Spec:      spec,
		Decayed:   decayed.Decayed,
		Kernel:    decayed.Kernel,
		Saturated: saturated,
	}, nil
}
