package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/flow"
	"github.com/katalvlaran/ricci/nullmodel"
)

// Validate checks every field and returns errors.ErrInvalidConfig wrapped
// with the offending key.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return errors.Wrapf(errors.ErrInvalidConfig, "config: "+format, args...)
	}

	if _, err := nullmodel.ParseKind(c.NullModel); err != nil {
		return invalid("null_model %q is not configuration or triadic_rewire", c.NullModel)
	}
	if c.Replicates < 1 {
		return invalid("replicates must be >= 1, got %d", c.Replicates)
	}
	if !(c.Alpha >= 0 && c.Alpha <= 1) {
		return invalid("alpha must be in [0,1], got %g", c.Alpha)
	}
	if c.Workers < 1 {
		return invalid("workers must be >= 1, got %d", c.Workers)
	}
	if !(c.MaxSkipFraction >= 0 && c.MaxSkipFraction < 1) {
		return invalid("max_skip_fraction must be in [0,1), got %g", c.MaxSkipFraction)
	}

	if _, err := flow.ParseMethod(c.Curvature.Solver); err != nil {
		return invalid("curvature.solver %q is not exact or sinkhorn", c.Curvature.Solver)
	}
	if !(c.Curvature.SinkhornEpsilon > 0) {
		return invalid("curvature.sinkhorn_epsilon must be > 0, got %g", c.Curvature.SinkhornEpsilon)
	}
	if c.Curvature.MaxIterations < 1 {
		return invalid("curvature.max_iterations must be >= 1, got %d", c.Curvature.MaxIterations)
	}
	if c.Curvature.MaxAugmentations < 0 {
		return invalid("curvature.max_augmentations must be >= 0, got %d", c.Curvature.MaxAugmentations)
	}
	if !(c.Curvature.Tolerance > 0) {
		return invalid("curvature.tolerance must be > 0, got %g", c.Curvature.Tolerance)
	}
	if c.Curvature.Workers < 1 {
		return invalid("curvature.workers must be >= 1, got %d", c.Curvature.Workers)
	}

	if c.Configuration.MaxAttempts < 1 {
		return invalid("configuration.max_attempts must be >= 1, got %d", c.Configuration.MaxAttempts)
	}
	if c.Configuration.RepairSwaps < 0 {
		return invalid("configuration.repair_swaps must be >= 0, got %d", c.Configuration.RepairSwaps)
	}
	if !(c.Triadic.SwapMultiple > 0) {
		return invalid("triadic.swap_multiple must be > 0, got %g", c.Triadic.SwapMultiple)
	}
	if c.Triadic.AttemptMultiple < 1 {
		return invalid("triadic.attempt_multiple must be >= 1, got %d", c.Triadic.AttemptMultiple)
	}
	if c.Triadic.TriangleTolerance < 0 {
		return invalid("triadic.triangle_tolerance must be >= 0, got %d", c.Triadic.TriangleTolerance)
	}

	if _, err := core.ParseSemantics(c.Weights.Semantics); err != nil {
		return invalid("weights.semantics %q is not affinity or length", c.Weights.Semantics)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level %q is not a zap level", c.Log.Level)
	}
	return nil
}
