package ricci

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/ricci/config"
	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/curvature"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/flow"
	"github.com/katalvlaran/ricci/logger"
	"github.com/katalvlaran/ricci/metrics"
	"github.com/katalvlaran/ricci/montecarlo"
	"github.com/katalvlaran/ricci/nullmodel"
	"github.com/katalvlaran/ricci/report"
)

// RunOption configures RunTest beyond what config.Config holds.
type RunOption func(*runOptions)

type runOptions struct {
	log     *zap.SugaredLogger
	metrics *metrics.Collector
	store   *report.Store
}

// WithLogger injects a logger; the default is built from cfg.Log.
func WithLogger(l *zap.SugaredLogger) RunOption { return func(o *runOptions) { o.log = l } }

// WithMetrics records replicate metrics on c.
func WithMetrics(c *metrics.Collector) RunOption { return func(o *runOptions) { o.metrics = c } }

// WithStore saves the record in s instead of opening cfg.Store.Path.
func WithStore(s *report.Store) RunOption { return func(o *runOptions) { o.store = s } }

// BuildGraph builds a graph from edge triples with the weight semantics of cfg.
func BuildGraph(specs []core.EdgeSpec, cfg config.Config) (*core.Graph, error) {
	sem, err := core.ParseSemantics(cfg.Weights.Semantics)
	if err != nil {
		return nil, err
	}
	return core.Build(specs, core.WithSemantics(sem))
}

// RunTest runs one significance test of g against the null model of cfg
// and returns its record. The graph keeps the semantics it was built with.
//
// When cfg.Store.Path is set (or WithStore is given) the record is also
// persisted. On cancellation the partial record (Cancelled = true) is
// returned together with the context error.
func RunTest(ctx context.Context, g *core.Graph, cfg config.Config, opts ...RunOption) (*report.Record, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if o.log == nil {
		l, err := configLogger(cfg)
		if err != nil {
			return nil, err
		}
		defer func() { _ = l.Sync() }()
		o.log = l
	}
	log := logger.Named(o.log, "ricci").With(logger.FieldLabel, cfg.Label)

	mc, err := testerConfig(cfg, o)
	if err != nil {
		return nil, err
	}

	res, runErr := montecarlo.Run(ctx, g, mc)
	if res == nil {
		return nil, runErr
	}
	rec := report.FromResult(cfg.Label, res)

	if err := save(ctx, cfg, o, rec, log); err != nil {
		return &rec, err
	}
	return &rec, runErr
}

// configLogger builds the logger described by cfg.Log.
func configLogger(cfg config.Config) (*zap.SugaredLogger, error) {
	l, err := logger.New(cfg.Log.JSON, cfg.Log.Level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "ricci: log.level %q: %v", cfg.Log.Level, err)
	}
	return l, nil
}

// testerConfig translates a validated cfg into the generator and tester
// settings.
func testerConfig(cfg config.Config, o runOptions) (montecarlo.Config, error) {
	// Both names were checked by Validate.
	kind, _ := nullmodel.ParseKind(cfg.NullModel)
	method, _ := flow.ParseMethod(cfg.Curvature.Solver)

	gen, err := nullmodel.New(kind, nullmodel.WithOptions(nullmodel.Options{
		MaxAttempts:       cfg.Configuration.MaxAttempts,
		RepairSwaps:       cfg.Configuration.RepairSwaps,
		SwapMultiple:      cfg.Triadic.SwapMultiple,
		AttemptMultiple:   cfg.Triadic.AttemptMultiple,
		TriangleTolerance: cfg.Triadic.TriangleTolerance,
		Logger:            o.log,
	}))
	if err != nil {
		return montecarlo.Config{}, err
	}

	return montecarlo.Config{
		Null:            gen,
		Replicates:      cfg.Replicates,
		Seed:            cfg.Seed,
		Workers:         cfg.Workers,
		MaxSkipFraction: cfg.MaxSkipFraction,
		TopUp:           cfg.TopUp,
		Curvature: curvature.Options{
			Alpha:            cfg.Alpha,
			Method:           method,
			Regularization:   cfg.Curvature.SinkhornEpsilon,
			MaxIterations:    cfg.Curvature.MaxIterations,
			MaxAugmentations: cfg.Curvature.MaxAugmentations,
			Tolerance:        cfg.Curvature.Tolerance,
			Workers:          cfg.Curvature.Workers,
		},
		Logger:  o.log,
		Metrics: o.metrics,
	}, nil
}

func save(ctx context.Context, cfg config.Config, o runOptions, rec report.Record, log *zap.SugaredLogger) error {
	st := o.store
	if st == nil {
		if cfg.Store.Path == "" {
			return nil
		}
		// Persist even when ctx was cancelled: the partial record is the output.
		opened, err := report.OpenStore(context.WithoutCancel(ctx), cfg.Store.Path, o.log)
		if err != nil {
			return err
		}
		defer opened.Close()
		st = opened
	}
	id, err := st.Save(context.WithoutCancel(ctx), rec)
	if err != nil {
		return err
	}
	log.Debugw("record persisted", "id", id.String())
	return nil
}
