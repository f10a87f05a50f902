// File: config.go
// Role: Builder configuration, defaults and functional options.
// Deterministic defaults:
//   - idFn      = DefaultIDFn   ("0","1","2",...)
//   - rng       = nil           (deterministic unless seeded)
//   - weightFn  = DefaultWeightFn
//   - semantics = core.Affinity
//   - left/right prefixes = "L" / "R"
//   - idOffset  = 0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/ricci/core"
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	weightFn  WeightFn
	semantics core.Semantics

	leftPrefix  string
	rightPrefix string

	// idOffset shifts vertex indices so several constructors can emit
	// disjoint components into one assembly.
	idOffset int
}

// BuilderOption mutates a builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		semantics:   core.Affinity,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	return cfg
}

// id returns the vertex ID for local index i, after the configured offset.
func (c builderConfig) id(i int) string {
	return c.idFn(c.idOffset + i)
}

// WithIDScheme sets the vertex naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("WithIDScheme: fn must not be nil")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand installs an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("WithRand: rng must not be nil")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge-weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("WithWeightFn: fn must not be nil")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithSemantics declares how the built graph's weights are read.
func WithSemantics(s core.Semantics) BuilderOption {
	return func(c *builderConfig) { c.semantics = s }
}

// WithPartitionPrefix sets the ID prefixes of CompleteBipartite sides.
// Empty strings fall back to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix = left
		c.rightPrefix = right
	}
}
