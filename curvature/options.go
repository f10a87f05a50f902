package curvature

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/ricci/flow"
	"github.com/katalvlaran/ricci/logger"
)

// Default parameters.
const (
	DefaultAlpha         = 0.5
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 10000
	DefaultSinkhornEps   = 0.01
	DefaultWorkers       = 1
)

// Options configures Compute.
type Options struct {
	Alpha            float64     // laziness α ∈ [0,1]
	Method           flow.Method // transport solver
	Regularization   float64     // Sinkhorn ε
	MaxIterations    int         // Sinkhorn sweep budget per edge
	MaxAugmentations int         // exact augmentation budget per edge; 0 sizes it from the neighborhood
	Tolerance        float64     // solver tolerance
	Workers          int         // concurrent edge workers (≥ 1)
	Logger           *zap.SugaredLogger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns α = 0.5, the exact solver and one worker.
func DefaultOptions() Options {
	return Options{
		Alpha:          DefaultAlpha,
		Method:         flow.MethodExact,
		Regularization: DefaultSinkhornEps,
		MaxIterations:  DefaultMaxIterations,
		Tolerance:      DefaultTolerance,
		Workers:        DefaultWorkers,
	}
}

// WithAlpha sets the laziness parameter α.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithMethod selects the transport solver.
func WithMethod(m flow.Method) Option { return func(o *Options) { o.Method = m } }

// WithSinkhorn selects the Sinkhorn solver with regularization eps.
func WithSinkhorn(eps float64) Option {
	return func(o *Options) {
		o.Method = flow.MethodSinkhorn
		o.Regularization = eps
	}
}

// WithMaxIterations sets the per-edge Sinkhorn sweep budget. The exact
// solver sizes its budget from each neighborhood.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithMaxAugmentations caps the exact solver per edge; 0 restores the
// size-based default.
func WithMaxAugmentations(n int) Option { return func(o *Options) { o.MaxAugmentations = n } }

// WithTolerance sets the solver tolerance.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithWorkers sets the number of concurrent edge workers; values < 1 mean 1.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithLogger injects a logger; nil keeps the no-op logger.
func WithLogger(l *zap.SugaredLogger) Option { return func(o *Options) { o.Logger = l } }

// WithOptions replaces the whole option set, for callers that resolve
// configuration elsewhere.
func WithOptions(src Options) Option { return func(o *Options) { *o = src } }

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	o.Logger = logger.Named(o.Logger, "curvature")
	return o
}

func (o Options) flowOptions() flow.FlowOptions {
	f := flow.DefaultOptions()
	f.Method = o.Method
	f.Regularization = o.Regularization
	f.MaxIterations = o.MaxIterations
	f.MaxAugmentations = o.MaxAugmentations
	f.Tolerance = o.Tolerance
	f.Metric = true
	return f
}
