package montecarlo

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/ricci/curvature"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/metrics"
	"github.com/katalvlaran/ricci/nullmodel"
)

// Default parameters.
const (
	DefaultReplicates      = 1000
	DefaultSeed            = 123
	DefaultMaxSkipFraction = 0.10
)

// Config drives one significance test.
type Config struct {
	Null            nullmodel.Generator // required
	Replicates      int                 // M
	Seed            int64               // global seed of the replicate streams
	Workers         int                 // concurrent replicates (≥ 1)
	MaxSkipFraction float64             // tolerated failed/M ratio, in [0, 1)
	TopUp           bool                // replace failed replicates with new indices
	KeepGraphs      bool                // retain replicate graphs on the Ensemble

	// Curvature is applied to the real graph and to every replicate. Its
	// Workers field only affects the real graph; replicates run single
	// threaded since parallelism is spent across replicates.
	Curvature curvature.Options

	Logger  *zap.SugaredLogger
	Metrics *metrics.Collector // nil disables metrics
}

// DefaultConfig returns M = 1000, seed 123, one worker and the default
// curvature options. Null must still be set.
func DefaultConfig() Config {
	return Config{
		Replicates:      DefaultReplicates,
		Seed:            DefaultSeed,
		Workers:         1,
		MaxSkipFraction: DefaultMaxSkipFraction,
		Curvature:       curvature.DefaultOptions(),
	}
}

// Validate reports the first invalid field as errors.ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Null == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "montecarlo: null model generator is nil")
	case c.Replicates < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "montecarlo: replicates %d < 1", c.Replicates)
	case !(c.MaxSkipFraction >= 0 && c.MaxSkipFraction < 1):
		return errors.Wrapf(errors.ErrInvalidConfig, "montecarlo: max skip fraction %g not in [0,1)", c.MaxSkipFraction)
	case !(c.Curvature.Alpha >= 0 && c.Curvature.Alpha <= 1):
		return errors.Wrapf(errors.ErrInvalidConfig, "montecarlo: alpha %g not in [0,1]", c.Curvature.Alpha)
	}
	return nil
}

// skipBudget is the largest tolerated number of failed replicates.
func (c Config) skipBudget() int {
	return int(c.MaxSkipFraction * float64(c.Replicates))
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}

// curvatureOptions returns the curvature options; parallel keeps the
// configured edge workers, otherwise one worker is used.
func (c Config) curvatureOptions(parallel bool) []curvature.Option {
	o := c.Curvature
	o.Logger = c.Logger
	if !parallel {
		o.Workers = 1
	}
	return []curvature.Option{curvature.WithOptions(o)}
}
