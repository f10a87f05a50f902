package montecarlo_test

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricci/builder"
	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/metrics"
	"github.com/katalvlaran/ricci/montecarlo"
	"github.com/katalvlaran/ricci/nullmodel"
)

// flakyGen wraps a generator. Calls are numbered from 0; every failEvery-th
// call fails with err, and onCall sees each call number first.
type flakyGen struct {
	inner     nullmodel.Generator
	calls     atomic.Int64
	failEvery int64
	err       error
	onCall    func(n int64)
}

func (f *flakyGen) Kind() nullmodel.Kind { return f.inner.Kind() }

func (f *flakyGen) Generate(ctx context.Context, ref *core.Graph, rng *rand.Rand) (*nullmodel.Replicate, error) {
	n := f.calls.Add(1) - 1
	if f.onCall != nil {
		f.onCall(n)
	}
	if f.failEvery > 0 && n%f.failEvery == 0 {
		return nil, f.err
	}
	return f.inner.Generate(ctx, ref, rng)
}

func realGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(0.5, 2)),
		builder.WithIDScheme(builder.PaddedIDFn(2)),
	}, builder.RandomSparse(16, 0.35))
	require.NoError(t, err)
	return g
}

func gen(t *testing.T, k nullmodel.Kind) nullmodel.Generator {
	t.Helper()
	g, err := nullmodel.New(k)
	require.NoError(t, err)
	return g
}

func config(g nullmodel.Generator, m, workers int) montecarlo.Config {
	cfg := montecarlo.DefaultConfig()
	cfg.Null = g
	cfg.Replicates = m
	cfg.Workers = workers
	return cfg
}

func requireSane(t *testing.T, res *montecarlo.Result) {
	t.Helper()
	require.Greater(t, res.PValue, 0.0)
	require.LessOrEqual(t, res.PValue, 1.0)
	require.GreaterOrEqual(t, res.CliffsDelta, -1.0)
	require.LessOrEqual(t, res.CliffsDelta, 1.0)
	require.LessOrEqual(t, res.CI95[0], res.CI95[1])
	require.Len(t, res.NullDistribution, res.Valid)
	require.Equal(t, res.Launched, res.Valid+res.Failed)
	require.InDelta(t, res.KappaReal-res.NullMean, res.DeltaKappa, 1e-12)
	for _, k := range res.NullDistribution {
		require.GreaterOrEqual(t, k, -1.0)
		require.LessOrEqual(t, k, 1.0)
	}
}

func TestRun_ConfigurationModel(t *testing.T) {
	g := realGraph(t)
	res, err := montecarlo.Run(context.Background(), g, config(gen(t, nullmodel.KindConfiguration), 30, 2))
	require.NoError(t, err)
	requireSane(t, res)

	require.Equal(t, "configuration", res.Variant)
	require.Equal(t, 30, res.Requested)
	require.Equal(t, 30, res.Valid)
	require.Equal(t, 0.5, res.Alpha)
	require.EqualValues(t, montecarlo.DefaultSeed, res.Seed)
	require.False(t, res.Cancelled)

	lcc, err := g.LargestComponent()
	require.NoError(t, err)
	require.Equal(t, lcc.NodeCount(), res.RealNodes)
	require.Equal(t, lcc.EdgeCount(), res.RealEdges)
	require.Equal(t, res.Real.Mean, res.KappaReal)
	require.Equal(t, montecarlo.Geometry(res.KappaReal), res.Geometry)
	require.Equal(t, montecarlo.EffectMagnitude(res.CliffsDelta), res.EffectMagnitude)

	for i, e := range res.Ensemble.Entries {
		require.Equal(t, i, e.Index)
		require.Equal(t, nullmodel.DeriveSeed(montecarlo.DefaultSeed, uint64(i)), e.Seed)
		require.Equal(t, res.RealEdges, e.EdgesBefore)
		require.Nil(t, e.Graph)
	}
	require.LessOrEqual(t, res.NullEdgesMean, float64(res.RealEdges))
}

func TestRun_TriadicRewire(t *testing.T) {
	res, err := montecarlo.Run(context.Background(), realGraph(t), config(gen(t, nullmodel.KindTriadicRewire), 10, 3))
	require.NoError(t, err)
	requireSane(t, res)
	require.Equal(t, "triadic_rewire", res.Variant)
	require.Greater(t, res.SwapRatioMean, 0.0)
	require.LessOrEqual(t, res.SwapRatioMean, 1.0)
}

func TestRun_ReproducibleAcrossWorkers(t *testing.T) {
	g := realGraph(t)
	var results []*montecarlo.Result
	for _, w := range []int{1, 4} {
		cfg := config(gen(t, nullmodel.KindConfiguration), 24, w)
		cfg.Curvature.Workers = w
		res, err := montecarlo.Run(context.Background(), g, cfg)
		require.NoError(t, err)
		results = append(results, res)
	}
	a, b := results[0], results[1]
	require.Equal(t, a.NullDistribution, b.NullDistribution)
	require.Equal(t, a.KappaReal, b.KappaReal)
	require.Equal(t, a.PValue, b.PValue)
	require.Equal(t, a.CliffsDelta, b.CliffsDelta)
	require.Equal(t, a.CI95, b.CI95)
	require.Equal(t, a.NullMean, b.NullMean)
	require.Equal(t, a.NullStd, b.NullStd)

	// A different seed draws a different ensemble.
	cfg := config(gen(t, nullmodel.KindConfiguration), 24, 2)
	cfg.Seed = 7
	c, err := montecarlo.Run(context.Background(), g, cfg)
	require.NoError(t, err)
	require.NotEqual(t, a.NullDistribution, c.NullDistribution)
}

func TestRun_SkipAndTopUp(t *testing.T) {
	g := realGraph(t)
	skip := errors.Wrap(errors.ErrNullGeneration, "flaky")

	// One worker keeps call numbers equal to launch order.
	fg := &flakyGen{inner: gen(t, nullmodel.KindConfiguration), failEvery: 4, err: skip}
	cfg := config(fg, 20, 1)
	cfg.MaxSkipFraction = 0.5
	res, err := montecarlo.Run(context.Background(), g, cfg)
	require.NoError(t, err)
	require.Equal(t, 15, res.Valid)
	require.Equal(t, 5, res.Failed)
	require.Equal(t, 20, res.Launched)
	for k, f := range res.Ensemble.Failures {
		require.Equal(t, 4*k, f.Index)
		require.True(t, errors.Is(f.Err, errors.ErrNullGeneration))
	}

	// Top-up: calls 20..24 refill five slots but 20 and 24 fail, so a third
	// batch (calls 25, 26) supplies the last two.
	fg = &flakyGen{inner: gen(t, nullmodel.KindConfiguration), failEvery: 4, err: skip}
	cfg = config(fg, 20, 1)
	cfg.MaxSkipFraction = 0.5
	cfg.TopUp = true
	res, err = montecarlo.Run(context.Background(), g, cfg)
	require.NoError(t, err)
	require.Equal(t, 20, res.Valid)
	require.Equal(t, 7, res.Failed)
	require.Equal(t, 27, res.Launched)
	failed := make([]int, 0, len(res.Ensemble.Failures))
	for _, f := range res.Ensemble.Failures {
		failed = append(failed, f.Index)
	}
	require.Equal(t, []int{0, 4, 8, 12, 16, 20, 24}, failed)
	requireSane(t, res)
}

func TestRun_InsufficientValidReplicates(t *testing.T) {
	g := realGraph(t)
	fg := &flakyGen{
		inner:     gen(t, nullmodel.KindConfiguration),
		failEvery: 4,
		err:       errors.Wrap(errors.ErrNullGeneration, "flaky"),
	}
	cfg := config(fg, 20, 1)
	cfg.MaxSkipFraction = 0.2 // budget 4 < 5 failures
	_, err := montecarlo.Run(context.Background(), g, cfg)
	require.True(t, errors.Is(err, errors.ErrInsufficientValidReplicates), "got %v", err)

	// A triadic rewire of K5 never finds an admissible swap.
	k5, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)
	_, err = montecarlo.Run(context.Background(), k5, config(gen(t, nullmodel.KindTriadicRewire), 5, 2))
	require.True(t, errors.Is(err, errors.ErrInsufficientValidReplicates), "got %v", err)
}

func TestRun_FatalReplicateError(t *testing.T) {
	fg := &flakyGen{
		inner:     gen(t, nullmodel.KindConfiguration),
		failEvery: 3,
		err:       errors.Wrap(errors.ErrInvalidConfig, "broken"),
	}
	_, err := montecarlo.Run(context.Background(), realGraph(t), config(fg, 6, 1))
	require.True(t, errors.Is(err, errors.ErrInvalidConfig))
	require.False(t, errors.Is(err, errors.ErrInsufficientValidReplicates))
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fg := &flakyGen{
		inner: gen(t, nullmodel.KindConfiguration),
		onCall: func(n int64) {
			if n == 2 {
				cancel()
			}
		},
	}
	res, err := montecarlo.Run(ctx, realGraph(t), config(fg, 50, 1))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	require.True(t, res.Cancelled)
	require.Equal(t, 2, res.Valid)
	require.Zero(t, res.Failed)
	require.Len(t, res.NullDistribution, 2)
	require.Greater(t, res.PValue, 0.0)
}

func TestRun_InputErrors(t *testing.T) {
	ctx := context.Background()
	g := realGraph(t)
	cg := gen(t, nullmodel.KindConfiguration)

	_, err := montecarlo.Run(ctx, g, config(nil, 10, 1))
	require.True(t, errors.Is(err, errors.ErrInvalidConfig))

	_, err = montecarlo.Run(ctx, g, config(cg, 0, 1))
	require.True(t, errors.Is(err, errors.ErrInvalidConfig))

	cfg := config(cg, 10, 1)
	cfg.MaxSkipFraction = 1
	_, err = montecarlo.Run(ctx, g, cfg)
	require.True(t, errors.Is(err, errors.ErrInvalidConfig))

	cfg = config(cg, 10, 1)
	cfg.Curvature.Alpha = 1.5
	_, err = montecarlo.Run(ctx, g, cfg)
	require.True(t, errors.Is(err, errors.ErrInvalidConfig))

	_, err = montecarlo.Run(ctx, nil, config(cg, 10, 1))
	require.True(t, errors.Is(err, errors.ErrEmptyGraph))

	empty, err := core.Build(nil)
	require.NoError(t, err)
	_, err = montecarlo.Run(ctx, empty, config(cg, 10, 1))
	require.True(t, errors.Is(err, errors.ErrEmptyGraph))
}

func TestRun_MetricsAndKeepGraphs(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	cfg := config(gen(t, nullmodel.KindConfiguration), 8, 2)
	cfg.Metrics = col
	cfg.KeepGraphs = true
	res, err := montecarlo.Run(context.Background(), realGraph(t), cfg)
	require.NoError(t, err)

	require.Equal(t, 1, testutil.CollectAndCount(reg, "ricci_replicates_total"))
	require.Equal(t, 1, testutil.CollectAndCount(reg, "ricci_replicate_duration_seconds"))
	for _, e := range res.Ensemble.Entries {
		require.NotNil(t, e.Graph)
		require.True(t, e.Graph.IsConnected())
		require.Equal(t, e.Edges, e.Graph.EdgeCount())
	}
}
