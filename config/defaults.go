package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultLabel             = "graph"
	DefaultNullModel         = "configuration"
	DefaultReplicates        = 1000
	DefaultAlpha             = 0.5
	DefaultSeed              = 123
	DefaultMaxSkipFraction   = 0.10
	DefaultSolver            = "exact"
	DefaultSinkhornEpsilon   = 0.01
	DefaultMaxIterations     = 10000
	DefaultTolerance         = 1e-6
	DefaultMaxAttempts       = 100
	DefaultRepairSwaps       = 50
	DefaultSwapMultiple      = 10.0
	DefaultAttemptMultiple   = 100
	DefaultTriangleTolerance = 2
	DefaultSemantics         = "affinity"
	DefaultLogLevel          = "info"
)

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("label", DefaultLabel)
	v.SetDefault("null_model", DefaultNullModel)
	v.SetDefault("replicates", DefaultReplicates)
	v.SetDefault("alpha", DefaultAlpha)
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("max_skip_fraction", DefaultMaxSkipFraction)
	v.SetDefault("top_up", false)

	v.SetDefault("curvature.solver", DefaultSolver)
	v.SetDefault("curvature.sinkhorn_epsilon", DefaultSinkhornEpsilon)
	v.SetDefault("curvature.max_iterations", DefaultMaxIterations)
	v.SetDefault("curvature.max_augmentations", 0)
	v.SetDefault("curvature.tolerance", DefaultTolerance)
	v.SetDefault("curvature.workers", 1)

	v.SetDefault("configuration.max_attempts", DefaultMaxAttempts)
	v.SetDefault("configuration.repair_swaps", DefaultRepairSwaps)

	v.SetDefault("triadic.swap_multiple", DefaultSwapMultiple)
	v.SetDefault("triadic.attempt_multiple", DefaultAttemptMultiple)
	v.SetDefault("triadic.triangle_tolerance", DefaultTriangleTolerance)

	v.SetDefault("weights.semantics", DefaultSemantics)
	v.SetDefault("store.path", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", false)
}

// Default returns the configuration built from the defaults alone.
func Default() Config {
	return Config{
		Label:           DefaultLabel,
		NullModel:       DefaultNullModel,
		Replicates:      DefaultReplicates,
		Alpha:           DefaultAlpha,
		Seed:            DefaultSeed,
		Workers:         runtime.NumCPU(),
		MaxSkipFraction: DefaultMaxSkipFraction,
		Curvature: CurvatureConfig{
			Solver:          DefaultSolver,
			SinkhornEpsilon: DefaultSinkhornEpsilon,
			MaxIterations:   DefaultMaxIterations,
			Tolerance:       DefaultTolerance,
			Workers:         1,
		},
		Configuration: ConfigurationConfig{
			MaxAttempts: DefaultMaxAttempts,
			RepairSwaps: DefaultRepairSwaps,
		},
		Triadic: TriadicConfig{
			SwapMultiple:      DefaultSwapMultiple,
			AttemptMultiple:   DefaultAttemptMultiple,
			TriangleTolerance: DefaultTriangleTolerance,
		},
		Weights: WeightsConfig{Semantics: DefaultSemantics},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}
