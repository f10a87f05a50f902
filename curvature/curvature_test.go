package curvature_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricci/builder"
	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/curvature"
	"github.com/katalvlaran/ricci/errors"
)

const eps = 1e-9

func mustGraph(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	return g
}

func requireAllKappa(t *testing.T, res *curvature.Result, want float64) {
	t.Helper()
	require.NotEmpty(t, res.Edges)
	for _, e := range res.Edges {
		require.InDelta(t, want, e.Kappa, eps, "edge %s-%s", e.From, e.To)
	}
}

func TestCompute_Triangle(t *testing.T) {
	ctx := context.Background()
	k3 := mustGraph(t, nil, builder.Complete(3))

	// α = 1/3 makes μ uniform on the closed neighborhood: the measures coincide.
	res, err := curvature.Compute(ctx, k3, curvature.WithAlpha(1.0/3))
	require.NoError(t, err)
	requireAllKappa(t, res, 1.0)

	res, err = curvature.Compute(ctx, k3)
	require.NoError(t, err)
	requireAllKappa(t, res, 0.75)
	require.Equal(t, 0.5, res.Alpha)
	for _, e := range res.Edges {
		require.InDelta(t, 1.0, e.Distance, eps)
		require.InDelta(t, 0.25, e.W1, eps)
		require.Equal(t, 1, e.Triangles)
	}
}

func TestCompute_ClassicTopologies(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		ctor  builder.Constructor
		alpha float64
		want  float64
	}{
		{"C4", builder.Cycle(4), 0.5, 0.5},
		{"C6", builder.Cycle(6), 0.5, 0},
		{"C7/lazy0", builder.Cycle(7), 0, 0},
		{"K4", builder.Complete(4), 0.5, 2.0 / 3},
		{"Star4", builder.Star(4), 0.5, 0.25},
		{"Wheel5", builder.Wheel(5), 0.5, 0.5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := curvature.Compute(ctx, mustGraph(t, nil, tc.ctor), curvature.WithAlpha(tc.alpha))
			require.NoError(t, err)
			requireAllKappa(t, res, tc.want)
			require.Empty(t, res.Excluded)
			require.Zero(t, res.Clamped)
		})
	}
}

func TestCompute_CompleteGraphsArePositive(t *testing.T) {
	for n := 3; n <= 7; n++ {
		mean, err := curvature.Mean(context.Background(), mustGraph(t, nil, builder.Complete(n)))
		require.NoError(t, err)
		require.Greater(t, mean, 0.0, "K%d", n)
	}
}

func TestCompute_TreeIsNegativeWithoutLaziness(t *testing.T) {
	ctx := context.Background()
	g := mustGraph(t, nil, builder.DoubleStar(2, 3))

	res, err := curvature.Compute(ctx, g, curvature.WithAlpha(0))
	require.NoError(t, err)
	s := res.Summary()
	require.Less(t, s.Mean, 0.0)
	require.InDelta(t, -5.0/6, s.Min, eps)
	require.InDelta(t, 0, s.Max, eps)

	// With α = 1/2 each tree edge has κ = 1/deg(x) + 1/deg(y) − 1, so Σκ = V − E = 1.
	res, err = curvature.Compute(ctx, g)
	require.NoError(t, err)
	sum := 0.0
	for _, e := range res.Edges {
		sum += e.Kappa
	}
	require.InDelta(t, 1.0, sum, eps)
}

func TestCompute_ClampsBelowMinusOne(t *testing.T) {
	// Bridge of a (5,5) double star at α = 0: W₁ = 14/6 > 2·d.
	g := mustGraph(t, nil, builder.DoubleStar(5, 5))
	res, err := curvature.Compute(context.Background(), g, curvature.WithAlpha(0))
	require.NoError(t, err)
	require.Equal(t, 1, res.Clamped)
	require.Equal(t, "0", res.Edges[0].From)
	require.Equal(t, "1", res.Edges[0].To)
	require.True(t, res.Edges[0].Clamped)
	require.Equal(t, -1.0, res.Edges[0].Kappa)
	require.InDelta(t, 14.0/6, res.Edges[0].W1, eps)
	for _, e := range res.Edges {
		require.GreaterOrEqual(t, e.Kappa, -1.0)
		require.LessOrEqual(t, e.Kappa, 1.0)
	}
}

func TestCompute_WeightSemantics(t *testing.T) {
	specs := []core.EdgeSpec{
		{Source: "0", Target: "1", Weight: 2},
		{Source: "1", Target: "2", Weight: 1},
		{Source: "0", Target: "2", Weight: 1},
		{Source: "2", Target: "3", Weight: 3},
	}
	ctx := context.Background()

	// Canonical edge order: 0-1, 0-2, 1-2, 2-3.
	cases := []struct {
		sem  core.Semantics
		want []float64
	}{
		{core.Affinity, []float64{5.0 / 6, 4.0 / 15, 4.0 / 15, 1.0 / 5}},
		{core.Length, []float64{2.0 / 3, 19.0 / 42, 19.0 / 42, 3.0 / 7}},
	}
	for _, tc := range cases {
		g, err := core.Build(specs, core.WithSemantics(tc.sem))
		require.NoError(t, err)
		res, err := curvature.Compute(ctx, g)
		require.NoError(t, err)
		got := res.Kappas()
		require.Len(t, got, len(tc.want))
		for i := range got {
			require.InDelta(t, tc.want[i], got[i], eps, "%s edge %d", tc.sem, i)
		}
	}
}

func TestCompute_BoundsAndDeterminismOnRandomGraphs(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 5; seed++ {
		g := mustGraph(t,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0.1, 5))},
			builder.RandomSparse(25, 0.2))

		serial, err := curvature.Compute(ctx, g)
		require.NoError(t, err)
		parallel, err := curvature.Compute(ctx, g, curvature.WithWorkers(4))
		require.NoError(t, err)
		require.Equal(t, serial, parallel, "seed %d", seed)

		for _, e := range serial.Edges {
			require.GreaterOrEqual(t, e.Kappa, -1.0)
			require.LessOrEqual(t, e.Kappa, 1.0)
			require.Greater(t, e.Distance, 0.0)
			// d(u,v) never exceeds the direct edge length.
			require.LessOrEqual(t, e.Distance, g.LengthOf(e.Weight)+eps)
		}
		require.Len(t, serial.Edges, g.EdgeCount())
	}
}

func TestCompute_LargeDoubleStar(t *testing.T) {
	// Hub-leaf edges reduce to one demand point and the bridge to a
	// (k+1)×(k+1) instance; the whole graph stays well inside the deadline.
	const k = 150
	g := mustGraph(t, nil, builder.DoubleStar(k, k))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	res, err := curvature.Compute(ctx, g, curvature.WithWorkers(2))
	require.NoError(t, err)
	require.Empty(t, res.Excluded)
	require.Zero(t, res.Clamped)
	require.Len(t, res.Edges, 2*k+1)

	total := 0.0
	for _, e := range res.Edges {
		total += e.Kappa
		if (e.From == "0" && e.To == "1") || (e.From == "1" && e.To == "0") {
			require.InDelta(t, float64(1-k)/float64(k+1), e.Kappa, eps)
			continue
		}
		require.InDelta(t, 1/float64(k+1), e.Kappa, eps)
	}
	// A unit tree at α = 0.5 sums to V − E = 1.
	require.InDelta(t, 1.0, total, 1e-6)
}

func TestCompute_SinkhornMatchesExact(t *testing.T) {
	ctx := context.Background()
	g := mustGraph(t,
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithWeightFn(builder.UniformWeightFn(0.5, 2.5))},
		builder.RandomSparse(12, 0.35))

	exact, err := curvature.Compute(ctx, g)
	require.NoError(t, err)
	approx, err := curvature.Compute(ctx, g, curvature.WithSinkhorn(0.01), curvature.WithMaxIterations(100000))
	require.NoError(t, err)
	require.Len(t, approx.Edges, len(exact.Edges))
	for i := range exact.Edges {
		require.InDelta(t, exact.Edges[i].Kappa, approx.Edges[i].Kappa, 0.01)
	}
}

func TestCompute_SolverFailuresAreExcluded(t *testing.T) {
	// Each C4 edge leaves a 2×2 instance after the shared endpoints cancel,
	// which needs two augmentations.
	g := mustGraph(t, nil, builder.Cycle(4))
	res, err := curvature.Compute(context.Background(), g, curvature.WithMaxAugmentations(1))
	require.NoError(t, err)
	require.Empty(t, res.Edges)
	require.Len(t, res.Excluded, 4)
	for _, x := range res.Excluded {
		require.ErrorIs(t, x.Reason, errors.ErrTransportSolver)
	}
	require.Zero(t, res.Summary().Count)

	_, err = curvature.Mean(context.Background(), g, curvature.WithMaxAugmentations(1))
	require.ErrorIs(t, err, errors.ErrTransportSolver)

	// The Sinkhorn sweep budget does not cap the exact solver.
	res, err = curvature.Compute(context.Background(), g, curvature.WithMaxIterations(1))
	require.NoError(t, err)
	require.Len(t, res.Edges, 4)
	require.Empty(t, res.Excluded)
}

func TestCompute_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := curvature.Compute(ctx, nil)
	require.ErrorIs(t, err, errors.ErrEmptyGraph)

	empty, err := core.Build(nil)
	require.NoError(t, err)
	_, err = curvature.Compute(ctx, empty)
	require.ErrorIs(t, err, errors.ErrEmptyGraph)

	k3 := mustGraph(t, nil, builder.Complete(3))
	_, err = curvature.Compute(ctx, k3, curvature.WithAlpha(1.5))
	require.ErrorIs(t, err, errors.ErrInvalidConfig)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = curvature.Compute(cctx, k3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNodeCurvature(t *testing.T) {
	res, err := curvature.Compute(context.Background(), mustGraph(t, nil, builder.Star(4)))
	require.NoError(t, err)
	nc := res.NodeCurvature()
	require.Len(t, nc, 5)
	for id, k := range nc {
		require.InDelta(t, 0.25, k, eps, id)
	}
}
