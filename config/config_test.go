package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricci/config"
	"github.com/katalvlaran/ricci/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, want, *cfg)
	assert.Equal(t, 1000, cfg.Replicates)
	assert.Equal(t, 0.5, cfg.Alpha)
	assert.EqualValues(t, 123, cfg.Seed)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "configuration", cfg.NullModel)
	assert.Equal(t, "exact", cfg.Curvature.Solver)
	assert.Equal(t, 1e-6, cfg.Curvature.Tolerance)
	assert.Equal(t, 0.10, cfg.MaxSkipFraction)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RICCI_REPLICATES", "50")
	t.Setenv("RICCI_NULL_MODEL", "triadic_rewire")
	t.Setenv("RICCI_CURVATURE_SOLVER", "sinkhorn")
	t.Setenv("RICCI_TRIADIC_SWAP_MULTIPLE", "2.5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Replicates)
	assert.Equal(t, "triadic_rewire", cfg.NullModel)
	assert.Equal(t, "sinkhorn", cfg.Curvature.Solver)
	assert.Equal(t, 2.5, cfg.Triadic.SwapMultiple)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadFromFile_TOML(t *testing.T) {
	p := writeFile(t, "ricci.toml", `
label = "es"
replicates = 200
alpha = 0.25
seed = 7

[curvature]
solver = "sinkhorn"
sinkhorn_epsilon = 0.05

[weights]
semantics = "length"

[store]
path = "results.db"
`)
	cfg, err := config.LoadFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Label)
	assert.Equal(t, 200, cfg.Replicates)
	assert.Equal(t, 0.25, cfg.Alpha)
	assert.EqualValues(t, 7, cfg.Seed)
	assert.Equal(t, "sinkhorn", cfg.Curvature.Solver)
	assert.Equal(t, 0.05, cfg.Curvature.SinkhornEpsilon)
	assert.Equal(t, "length", cfg.Weights.Semantics)
	assert.Equal(t, "results.db", cfg.Store.Path)
	// untouched keys keep their defaults
	assert.Equal(t, config.DefaultMaxIterations, cfg.Curvature.MaxIterations)
	assert.Equal(t, config.DefaultTriangleTolerance, cfg.Triadic.TriangleTolerance)
}

func TestLoadFromFile_YAML(t *testing.T) {
	p := writeFile(t, "ricci.yaml", `
label: en
null_model: triadic_rewire
top_up: true
triadic:
  swap_multiple: 3
  triangle_tolerance: 0
log:
  level: debug
  json: true
`)
	cfg, err := config.LoadFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Label)
	assert.Equal(t, "triadic_rewire", cfg.NullModel)
	assert.True(t, cfg.TopUp)
	assert.Equal(t, 3.0, cfg.Triadic.SwapMultiple)
	assert.Equal(t, 0, cfg.Triadic.TriangleTolerance)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	p := writeFile(t, "bad.toml", "alpha = 2.0\n")
	_, err = config.LoadFromFile(p)
	require.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "alpha")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"null_model":                  func(c *config.Config) { c.NullModel = "erdos" },
		"replicates":                  func(c *config.Config) { c.Replicates = 0 },
		"alpha":                       func(c *config.Config) { c.Alpha = -0.1 },
		"workers":                     func(c *config.Config) { c.Workers = 0 },
		"max_skip_fraction":           func(c *config.Config) { c.MaxSkipFraction = 1 },
		"curvature.solver":            func(c *config.Config) { c.Curvature.Solver = "simplex" },
		"curvature.sinkhorn_epsilon":  func(c *config.Config) { c.Curvature.SinkhornEpsilon = 0 },
		"curvature.max_iterations":    func(c *config.Config) { c.Curvature.MaxIterations = 0 },
		"curvature.max_augmentations": func(c *config.Config) { c.Curvature.MaxAugmentations = -1 },
		"curvature.tolerance":         func(c *config.Config) { c.Curvature.Tolerance = 0 },
		"curvature.workers":           func(c *config.Config) { c.Curvature.Workers = 0 },
		"configuration.max_attempts":  func(c *config.Config) { c.Configuration.MaxAttempts = 0 },
		"configuration.repair_swaps":  func(c *config.Config) { c.Configuration.RepairSwaps = -1 },
		"triadic.swap_multiple":       func(c *config.Config) { c.Triadic.SwapMultiple = 0 },
		"triadic.attempt_multiple":    func(c *config.Config) { c.Triadic.AttemptMultiple = 0 },
		"triadic.triangle_tolerance":  func(c *config.Config) { c.Triadic.TriangleTolerance = -1 },
		"log.level":                   func(c *config.Config) { c.Log.Level = "loud" },
		"weights.semantics":           func(c *config.Config) { c.Weights.Semantics = "similarity" },
	}
	for key, mutate := range cases {
		c := config.Default()
		mutate(&c)
		err := c.Validate()
		require.True(t, errors.Is(err, errors.ErrInvalidConfig), key)
		assert.Contains(t, err.Error(), key)
	}

	c := config.Default()
	require.NoError(t, c.Validate())
}
