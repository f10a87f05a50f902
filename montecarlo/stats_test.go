package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricci/montecarlo"
)

func TestPValue(t *testing.T) {
	null := []float64{-0.3, -0.1, 0.05, 0.2, 0.4}
	// |null| ≥ 0.2: -0.3, 0.2, 0.4
	require.InDelta(t, 4.0/6, montecarlo.PValue(0.2, null), 1e-12)
	require.InDelta(t, 1.0/6, montecarlo.PValue(-0.9, null), 1e-12)
	require.InDelta(t, 1.0, montecarlo.PValue(0, null), 1e-12)
	require.InDelta(t, 1.0, montecarlo.PValue(0.5, nil), 1e-12)
}

func TestCliffsDelta(t *testing.T) {
	null := []float64{1, 2, 3, 4}
	require.InDelta(t, 0.0, montecarlo.CliffsDelta(2.5, null), 1e-12)
	require.InDelta(t, 1.0, montecarlo.CliffsDelta(0, null), 1e-12)
	require.InDelta(t, -1.0, montecarlo.CliffsDelta(5, null), 1e-12)
	// ties count on neither side
	require.InDelta(t, 0.25, montecarlo.CliffsDelta(2, null), 1e-12)
	require.Zero(t, montecarlo.CliffsDelta(1, nil))
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	s := []float64{1, 2, 3, 4}
	require.InDelta(t, 1.075, montecarlo.Percentile(s, 2.5), 1e-12)
	require.InDelta(t, 3.925, montecarlo.Percentile(s, 97.5), 1e-12)
	require.InDelta(t, 2.5, montecarlo.Percentile(s, 50), 1e-12)
	require.Equal(t, 1.0, montecarlo.Percentile(s, 0))
	require.Equal(t, 4.0, montecarlo.Percentile(s, 100))
	require.Equal(t, 7.0, montecarlo.Percentile([]float64{7}, 2.5))
	require.True(t, math.IsNaN(montecarlo.Percentile(nil, 50)))
}

func TestMeanStd_Population(t *testing.T) {
	m, s := montecarlo.MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.InDelta(t, 5.0, m, 1e-12)
	require.InDelta(t, 2.0, s, 1e-12)

	m, s = montecarlo.MeanStd(nil)
	require.True(t, math.IsNaN(m))
	require.True(t, math.IsNaN(s))
}

func TestLabels(t *testing.T) {
	cases := []struct {
		delta float64
		want  string
	}{
		{0, montecarlo.MagnitudeNegligible},
		{-0.146, montecarlo.MagnitudeNegligible},
		{0.147, montecarlo.MagnitudeSmall},
		{-0.33, montecarlo.MagnitudeMedium},
		{0.474, montecarlo.MagnitudeLarge},
		{-1, montecarlo.MagnitudeLarge},
	}
	for _, c := range cases {
		require.Equal(t, c.want, montecarlo.EffectMagnitude(c.delta), "δ=%g", c.delta)
	}

	require.Equal(t, montecarlo.GeometryHyperbolic, montecarlo.Geometry(-0.2))
	require.Equal(t, montecarlo.GeometryFlat, montecarlo.Geometry(0.05))
	require.Equal(t, montecarlo.GeometryFlat, montecarlo.Geometry(-0.05))
	require.Equal(t, montecarlo.GeometrySpherical, montecarlo.Geometry(0.3))

	require.InDelta(t, 2.0, montecarlo.ZScore(0.5, 0.25), 1e-12)
	require.Zero(t, montecarlo.ZScore(0.5, 0))
}
