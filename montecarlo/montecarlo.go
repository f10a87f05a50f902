package montecarlo

import (
	"context"
	"time"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/curvature"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/logger"
	"github.com/katalvlaran/ricci/metrics"
)

// Result is the outcome of one significance test.
type Result struct {
	Variant string
	Alpha   float64
	Seed    int64

	Requested int // M
	Valid     int // M_valid
	Failed    int
	Launched  int // replicate indices started, > M only with TopUp

	RealNodes, RealEdges int // after reduction to the largest component
	Real                 curvature.Summary
	KappaReal            float64

	NullMean, NullStd float64
	DeltaKappa        float64 // KappaReal − NullMean
	PValue            float64
	CliffsDelta       float64
	CI95              [2]float64
	ZScore            float64
	EffectMagnitude   string
	Geometry          string // of KappaReal

	// NullDistribution lists replicate means in replicate-index order.
	NullDistribution []float64

	ExcludedReal, ExcludedNull int
	ClampedReal, ClampedNull   int
	NullNodesMean              float64
	NullEdgesMean              float64
	SwapRatioMean              float64

	Cancelled bool
	Duration  time.Duration
	Ensemble  *Ensemble
}

// Run executes the test described by cfg against g.
//
// Implementation:
//   - Stage 1: Validate cfg; reduce g to its largest component.
//   - Stage 2: κ̄_real over the reduced graph. Failures here are structural
//     and propagate.
//   - Stage 3: Run the replicate ensemble in parallel.
//   - Stage 4: Aggregate over the sorted null distribution.
//
// Errors:
//   - errors.ErrInvalidConfig, errors.ErrEmptyGraph, errors.ErrDisconnectedNeighborhood.
//   - errors.ErrTransportSolver when every real edge was excluded.
//   - errors.ErrInsufficientValidReplicates when too many replicates failed.
//   - ctx.Err() on cancellation; the partial Result (Cancelled = true) built
//     from the completed replicates is returned alongside it.
func Run(ctx context.Context, g *core.Graph, cfg Config) (*Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.Wrap(errors.ErrEmptyGraph, "montecarlo: real graph is nil")
	}
	variant := cfg.Null.Kind().String()
	log := logger.Named(cfg.Logger, "montecarlo").With(
		logger.FieldVariant, variant,
		logger.FieldSeed, cfg.Seed)

	lcc, err := g.LargestComponent()
	if err != nil {
		return nil, err
	}
	realRes, err := curvature.Compute(ctx, lcc, cfg.curvatureOptions(true)...)
	if err != nil {
		return nil, err
	}
	realSum := realRes.Summary()
	if realSum.Count == 0 {
		return nil, errors.Wrapf(errors.ErrTransportSolver,
			"montecarlo: all %d real edges excluded", len(realRes.Excluded))
	}
	cfg.Metrics.AddExcluded(metrics.ScopeReal, len(realRes.Excluded))
	cfg.Metrics.AddClamped(metrics.ScopeReal, realRes.Clamped)
	log.Infow("real graph",
		logger.FieldNodes, lcc.NodeCount(),
		logger.FieldEdges, lcc.EdgeCount(),
		logger.FieldAlpha, cfg.Curvature.Alpha,
		"kappa", realSum.Mean,
		logger.FieldExcluded, len(realRes.Excluded))

	res := &Result{
		Variant:      variant,
		Alpha:        cfg.Curvature.Alpha,
		Seed:         cfg.Seed,
		Requested:    cfg.Replicates,
		RealNodes:    lcc.NodeCount(),
		RealEdges:    lcc.EdgeCount(),
		Real:         realSum,
		KappaReal:    realSum.Mean,
		ExcludedReal: len(realRes.Excluded),
		ClampedReal:  realRes.Clamped,
	}

	r := &runner{ref: lcc, cfg: cfg, log: log, variant: variant}
	ens, err := r.run(ctx)
	res.aggregate(ens)
	res.Duration = time.Since(start)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			res.Cancelled = true
			log.Warnw("test cancelled",
				logger.FieldCount, res.Valid,
				logger.FieldDurationMS, res.Duration.Milliseconds())
			return res, ctxErr
		}
		log.Errorw("test failed",
			logger.FieldCount, res.Valid,
			logger.FieldError, err.Error())
		return nil, err
	}

	log.Infow("test done",
		logger.FieldCount, res.Valid,
		"failed", res.Failed,
		"delta_kappa", res.DeltaKappa,
		"p_mc", res.PValue,
		"cliffs_delta", res.CliffsDelta,
		logger.FieldDurationMS, res.Duration.Milliseconds())
	return res, nil
}

// aggregate derives the statistics from the ensemble. With no valid
// replicate the null statistics stay zero.
func (r *Result) aggregate(ens *Ensemble) {
	r.Ensemble = ens
	r.Valid = len(ens.Entries)
	r.Failed = len(ens.Failures)
	r.Launched = ens.Launched
	r.NullDistribution = ens.Kappas()
	r.Geometry = Geometry(r.KappaReal)
	if r.Valid == 0 {
		r.NullDistribution = []float64{}
		r.PValue = 1
		r.EffectMagnitude = EffectMagnitude(0)
		return
	}

	sorted := sortedCopy(r.NullDistribution)
	r.NullMean, r.NullStd = MeanStd(sorted)
	r.DeltaKappa = r.KappaReal - r.NullMean
	r.PValue = PValue(r.KappaReal, sorted)
	r.CliffsDelta = CliffsDelta(r.KappaReal, sorted)
	r.CI95 = [2]float64{Percentile(sorted, 2.5), Percentile(sorted, 97.5)}
	r.ZScore = ZScore(r.DeltaKappa, r.NullStd)
	r.EffectMagnitude = EffectMagnitude(r.CliffsDelta)

	// Entries are in index order, which is fixed for a seed and M.
	var nodes, edges, ratio float64
	for _, e := range ens.Entries {
		r.ExcludedNull += e.Excluded
		r.ClampedNull += e.Clamped
		nodes += float64(e.Nodes)
		edges += float64(e.Edges)
		ratio += e.SwapRatio
	}
	n := float64(r.Valid)
	r.NullNodesMean = nodes / n
	r.NullEdgesMean = edges / n
	r.SwapRatioMean = ratio / n
}
