// Package config loads the settings of a significance run with viper.
//
// Sources, lowest precedence first: built-in defaults (SetDefaults), an
// optional config file (TOML, YAML or JSON, chosen by extension) and
// environment variables prefixed RICCI_ with "." replaced by "_", e.g.
// RICCI_CURVATURE_SOLVER=sinkhorn.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/ricci/errors"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "RICCI"

// Config is the complete run configuration.
type Config struct {
	Label           string  `mapstructure:"label"`
	NullModel       string  `mapstructure:"null_model"`
	Replicates      int     `mapstructure:"replicates"`
	Alpha           float64 `mapstructure:"alpha"`
	Seed            int64   `mapstructure:"seed"`
	Workers         int     `mapstructure:"workers"`
	MaxSkipFraction float64 `mapstructure:"max_skip_fraction"`
	TopUp           bool    `mapstructure:"top_up"`

	Curvature     CurvatureConfig     `mapstructure:"curvature"`
	Configuration ConfigurationConfig `mapstructure:"configuration"`
	Triadic       TriadicConfig       `mapstructure:"triadic"`
	Weights       WeightsConfig       `mapstructure:"weights"`
	Store         StoreConfig         `mapstructure:"store"`
	Log           LogConfig           `mapstructure:"log"`
}

// CurvatureConfig configures the transport solver.
type CurvatureConfig struct {
	Solver           string  `mapstructure:"solver"` // "exact" or "sinkhorn"
	SinkhornEpsilon  float64 `mapstructure:"sinkhorn_epsilon"`
	MaxIterations    int     `mapstructure:"max_iterations"`    // Sinkhorn sweeps per edge
	MaxAugmentations int     `mapstructure:"max_augmentations"` // exact solver per edge; 0 = size-based
	Tolerance        float64 `mapstructure:"tolerance"`
	Workers          int     `mapstructure:"workers"` // edge workers for the real graph
}

// ConfigurationConfig configures the configuration-model null.
type ConfigurationConfig struct {
	MaxAttempts int `mapstructure:"max_attempts"`
	RepairSwaps int `mapstructure:"repair_swaps"`
}

// TriadicConfig configures the triadic-rewire null.
type TriadicConfig struct {
	SwapMultiple      float64 `mapstructure:"swap_multiple"`
	AttemptMultiple   int     `mapstructure:"attempt_multiple"`
	TriangleTolerance int     `mapstructure:"triangle_tolerance"`
}

// WeightsConfig declares how input weights are read.
type WeightsConfig struct {
	Semantics string `mapstructure:"semantics"` // "affinity" or "length"
}

// StoreConfig enables SQLite persistence when Path is set.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// NewViper returns a viper instance with defaults and RICCI_ environment
// binding, without reading any file.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load returns the defaults overlaid with environment variables.
func Load() (*Config, error) {
	return LoadWithViper(NewViper())
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads path over the defaults; environment variables still
// take precedence. The format follows the file extension.
func LoadFromFile(path string) (*Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v.SetConfigType("yaml")
	case ".json":
		v.SetConfigType("json")
	default:
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}
