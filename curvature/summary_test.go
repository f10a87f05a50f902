package curvature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricci/curvature"
)

func TestSummarize(t *testing.T) {
	s := curvature.Summarize([]float64{0.5, -1, 0.25, 1})
	require.Equal(t, 4, s.Count)
	require.InDelta(t, 0.1875, s.Mean, 1e-12)
	require.InDelta(t, 0.375, s.Median, 1e-12)
	require.Equal(t, -1.0, s.Min)
	require.Equal(t, 1.0, s.Max)
	// Population variance: mean of squared deviations.
	want := math.Sqrt((0.3125*0.3125 + 1.1875*1.1875 + 0.0625*0.0625 + 0.8125*0.8125) / 4)
	require.InDelta(t, want, s.Std, 1e-12)

	odd := curvature.Summarize([]float64{3, 1, 2})
	require.Equal(t, 2.0, odd.Median)

	empty := curvature.Summarize(nil)
	require.Zero(t, empty.Count)
	require.True(t, math.IsNaN(empty.Mean))
}
