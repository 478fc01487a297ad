package adstock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mktmix/transform/errs"
)

func TestTransformMatchesDirectCalls(t *testing.T) {
	x := []float64{120, 80, 0, 40, 95, 0, 0, 60}

	t.Run("geometric", func(t *testing.T) {
		want, err := Geometric(x, 0.6)
		require.NoError(t, err)
		got, err := Transform(x, Params{Method: MethodGeometric, Theta: 0.6})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("weibull cdf", func(t *testing.T) {
		want, err := Weibull(x, 1.5, 0.2)
		require.NoError(t, err)
		got, err := Transform(x, Params{Method: MethodWeibullCDF, Shape: 1.5, Scale: 0.2})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("weibull pdf", func(t *testing.T) {
		want, err := Weibull(x, 2.5, 0.4, WithKernelType(KernelPDF))
		require.NoError(t, err)
		got, err := Transform(x, Params{Method: MethodWeibullPDF, Shape: 2.5, Scale: 0.4})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("weibull window override", func(t *testing.T) {
		want, err := Weibull(x, 1.5, 0.2, WithWindow(52))
		require.NoError(t, err)
		got, err := Transform(x, Params{Method: MethodWeibullCDF, Shape: 1.5, Scale: 0.2, Window: 52})
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}

func TestTransformUnknownMethod(t *testing.T) {
	res, err := Transform([]float64{1, 2}, Params{Method: Method(42)})
	require.ErrorIs(t, err, errs.ErrInvalidMethod)
	require.Nil(t, res)
}

func TestTransformPropagatesEngineErrors(t *testing.T) {
	_, err := Transform(nil, Params{Method: MethodGeometric, Theta: 0.5})
	require.ErrorIs(t, err, errs.ErrEmptySeries)

	_, err = Transform([]float64{1, 2}, Params{Method: MethodWeibullCDF, Shape: -1, Scale: 0.5})
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}

func TestMethodString(t *testing.T) {
	require.Equal(t, "geometric", MethodGeometric.String())
	require.Equal(t, "weibull_cdf", MethodWeibullCDF.String())
	require.Equal(t, "weibull_pdf", MethodWeibullPDF.String())
	require.Equal(t, "unknown", Method(99).String())
}

func TestMethodFromString(t *testing.T) {
	require.Equal(t, MethodGeometric, MethodFromString("geometric"))
	require.Equal(t, MethodWeibullCDF, MethodFromString("WEIBULL_CDF"))
	require.Equal(t, MethodWeibullPDF, MethodFromString("Weibull_PDF"))
	require.Equal(t, Method(-1), MethodFromString("bogus"))
}

func TestKernelTypeString(t *testing.T) {
	require.Equal(t, "cdf", KernelCDF.String())
	require.Equal(t, "pdf", KernelPDF.String())
	require.Equal(t, "unknown", KernelType(0).String())
}
