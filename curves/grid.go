package curves

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mktmix/transform/adstock"
	"github.com/mktmix/transform/errs"
	"github.com/mktmix/transform/internal/options"
	"github.com/mktmix/transform/saturation"
)

type gridConfig struct {
	parallelism int
}

// GridOption configures EvaluateGrid.
type GridOption = options.Option[*gridConfig]

// WithParallelism caps the number of concurrent evaluations.
// Defaults to GOMAXPROCS.
func WithParallelism(n int) GridOption {
	return func(cfg *gridConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: %d, must be >= 1", errs.ErrInvalidParallelism, n)
		}
		cfg.parallelism = n

		return nil
	}
}

// EvaluateGrid evaluates every channel under every spec concurrently.
//
// Results are channel-major regardless of scheduling:
// results[c*len(specs)+s] holds channel c under spec s. The first failing
// evaluation cancels the remaining work and is returned; no partial
// results are exposed.
//
// Parameters:
//   - ctx: Cancels outstanding evaluations when done.
//   - channels: The channel spend series to transform.
//   - specs: The parameterizations to evaluate each channel under.
//   - opts: Optional settings (WithParallelism).
//
// Returns:
//   - []*Response: One response per channel x spec combination.
//   - error: The first evaluation error, or the context error if ctx was
//     cancelled first.
func EvaluateGrid(ctx context.Context, channels []Channel, specs []TransformSpec, opts ...GridOption) ([]*Response, error) {
	cfg := gridConfig{parallelism: runtime.GOMAXPROCS(0)}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	results := make([]*Response, len(channels)*len(specs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)

	for c, ch := range channels {
		for s, spec := range specs {
			ch, spec := ch, spec
			idx := c*len(specs) + s
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}

				resp, err := Evaluate(ch, spec)
				if err != nil {
					return err
				}
				results[idx] = resp

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// KernelEntry pairs one adstock parameterization with the decay kernel it
// produces on a synthetic window.
type KernelEntry struct {
	// Params is the parameterization the kernel was built from.
	Params adstock.Params
	// Kernel is the decay weight at each lag, periods long.
	Kernel []float64
}

// KernelGrid builds the decay kernel of each parameterization over a
// synthetic window of periods, the data behind adstock comparison charts.
// Entries come back in paramSets order.
func KernelGrid(paramSets []adstock.Params, periods int) ([]KernelEntry, error) {
	if periods < 1 {
		return nil, fmt.Errorf("%w: periods %d, must be >= 1", errs.ErrInvalidWindow, periods)
	}

	// A unit impulse makes the engines return the kernel as-is.
	impulse := make([]float64, periods)
	impulse[0] = 1

	entries := make([]KernelEntry, 0, len(paramSets))
	for _, p := range paramSets {
		res, err := adstock.Transform(impulse, p)
		if err != nil {
			return nil, fmt.Errorf("params %s: %w", p.Method, err)
		}
		entries = append(entries, KernelEntry{Params: p, Kernel: res.Kernel})
	}

	return entries, nil
}

// HillCurve is one saturation curve of a parameter sweep.
type HillCurve struct {
	// Alpha is the Hill shape parameter of this curve.
	Alpha float64
	// Gamma is the inflexion quantile fraction of this curve.
	Gamma float64
	// Inflexion is gamma translated onto the input's own scale.
	Inflexion float64
	// Values is the saturated series, one value per input.
	Values []float64
}

// HillGrid evaluates the Hill curve on x for every (alpha, gamma) pair,
// the data behind saturation comparison charts. Curves come back
// alpha-major: all gammas of alphas[0] first, then alphas[1], and so on.
func HillGrid(x []float64, alphas, gammas []float64) ([]HillCurve, error) {
	grid := make([]HillCurve, 0, len(alphas)*len(gammas))
	for _, alpha := range alphas {
		for _, gamma := range gammas {
			values, err := saturation.Hill(x, alpha, gamma)
			if err != nil {
				return nil, err
			}
			inflexion, err := saturation.Inflexion(x, gamma)
			if err != nil {
				return nil, err
			}
			grid = append(grid, HillCurve{
				Alpha:     alpha,
				Gamma:     gamma,
				Inflexion: inflexion,
				Values:    values,
			})
		}
	}

	return grid, nil
}
