package curves

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mktmix/transform/adstock"
	"github.com/mktmix/transform/errs"
	"github.com/mktmix/transform/saturation"
)

func gridChannels() []Channel {
	return []Channel{
		{Name: "tv_spend", Spend: []float64{500, 0, 0, 250, 0, 125}},
		{Name: "search_spend", Spend: []float64{80, 95, 70, 110, 60, 90}},
		{Name: "ooh_spend", Spend: []float64{0, 300, 0, 0, 150, 0}},
	}
}

func gridSpecs() []TransformSpec {
	return []TransformSpec{
		{Adstock: adstock.Params{Method: adstock.MethodGeometric, Theta: 0.3}, Alpha: 2, Gamma: 0.4},
		{Adstock: adstock.Params{Method: adstock.MethodWeibullCDF, Shape: 1.5, Scale: 0.1}, Alpha: 1, Gamma: 0.6},
		{Adstock: adstock.Params{Method: adstock.MethodWeibullPDF, Shape: 2, Scale: 0.5}, Alpha: 3, Gamma: 0.5},
	}
}

func TestEvaluateGridDeterministicOrder(t *testing.T) {
	channels := gridChannels()
	specs := gridSpecs()

	got, err := EvaluateGrid(context.Background(), channels, specs)
	require.NoError(t, err)
	require.Len(t, got, len(channels)*len(specs))

	for c, ch := range channels {
		for s, spec := range specs {
			resp := got[c*len(specs)+s]
			require.NotNil(t, resp)
			require.Equal(t, ch.Name, resp.Channel)
			require.Equal(t, spec, resp.Spec)

			want, err := Evaluate(ch, spec)
			require.NoError(t, err)
			require.Equal(t, want, resp)
		}
	}
}

func TestEvaluateGridParallelismInvariant(t *testing.T) {
	channels := gridChannels()
	specs := gridSpecs()

	sequential, err := EvaluateGrid(context.Background(), channels, specs, WithParallelism(1))
	require.NoError(t, err)

	parallel, err := EvaluateGrid(context.Background(), channels, specs, WithParallelism(8))
	require.NoError(t, err)
	require.Equal(t, sequential, parallel)
}

func TestEvaluateGridStopsOnFirstError(t *testing.T) {
	specs := gridSpecs()
	specs[1].Alpha = -1

	got, err := EvaluateGrid(context.Background(), gridChannels(), specs)
	require.ErrorIs(t, err, errs.ErrInvalidAlpha)
	require.Nil(t, got)
}

func TestEvaluateGridCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := EvaluateGrid(ctx, gridChannels(), gridSpecs())
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)
}

func TestEvaluateGridEmptyInputs(t *testing.T) {
	got, err := EvaluateGrid(context.Background(), nil, gridSpecs())
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = EvaluateGrid(context.Background(), gridChannels(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEvaluateGridInvalidParallelism(t *testing.T) {
	_, err := EvaluateGrid(context.Background(), gridChannels(), gridSpecs(), WithParallelism(0))
	require.ErrorIs(t, err, errs.ErrInvalidParallelism)
}

func TestKernelGridMatchesEngines(t *testing.T) {
	paramSets := []adstock.Params{
		{Method: adstock.MethodGeometric, Theta: 0.7},
		{Method: adstock.MethodWeibullCDF, Shape: 1, Scale: 0.1},
		{Method: adstock.MethodWeibullPDF, Shape: 2, Scale: 0.5},
	}

	entries, err := KernelGrid(paramSets, 12)
	require.NoError(t, err)
	require.Len(t, entries, len(paramSets))

	impulse := make([]float64, 12)
	impulse[0] = 1

	for i, p := range paramSets {
		require.Equal(t, p, entries[i].Params)
		require.Len(t, entries[i].Kernel, 12)

		want, err := adstock.Transform(impulse, p)
		require.NoError(t, err)
		require.Equal(t, want.Kernel, entries[i].Kernel)
	}
}

func TestKernelGridInvalidInputs(t *testing.T) {
	params := []adstock.Params{{Method: adstock.MethodGeometric, Theta: 0.5}}

	_, err := KernelGrid(params, 0)
	require.ErrorIs(t, err, errs.ErrInvalidWindow)

	_, err = KernelGrid([]adstock.Params{{Method: adstock.Method(9)}}, 10)
	require.ErrorIs(t, err, errs.ErrInvalidMethod)
}

func TestHillGridSweepsAllPairs(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = float64(i + 1)
	}
	alphas := []float64{0.5, 1, 3}
	gammas := []float64{0.3, 0.7}

	grid, err := HillGrid(x, alphas, gammas)
	require.NoError(t, err)
	require.Len(t, grid, len(alphas)*len(gammas))

	i := 0
	for _, alpha := range alphas {
		for _, gamma := range gammas {
			curve := grid[i]
			i++

			require.Equal(t, alpha, curve.Alpha)
			require.Equal(t, gamma, curve.Gamma)

			wantValues, err := saturation.Hill(x, alpha, gamma)
			require.NoError(t, err)
			require.Equal(t, wantValues, curve.Values)

			wantInflexion, err := saturation.Inflexion(x, gamma)
			require.NoError(t, err)
			require.Equal(t, wantInflexion, curve.Inflexion)
		}
	}
}

func TestHillGridPropagatesErrors(t *testing.T) {
	_, err := HillGrid([]float64{1, 2, 3}, []float64{-1}, []float64{0.5})
	require.ErrorIs(t, err, errs.ErrInvalidAlpha)
}
