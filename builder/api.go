// File: api.go
// Role: Public entry point of the builder package.
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves the config,
//     runs constructors in order, then validates everything through core.Build.
//   - Constructors only append edge triples; they never see a core.Graph.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.

package builder

import (
	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/errors"
)

// Constructor appends the edges of one topology to the assembly a, using
// the resolved configuration. Constructors validate parameters early and
// return sentinel errors; they never panic.
type Constructor func(a *Assembly, cfg builderConfig) error

// Assembly collects undirected edge triples emitted by constructors.
type Assembly struct {
	specs []core.EdgeSpec
}

// Add appends the edge {u, v} with weight w.
func (a *Assembly) Add(u, v string, w float64) {
	a.specs = append(a.specs, core.EdgeSpec{Source: u, Target: v, Weight: w})
}

// Len returns the number of collected edges.
func (a *Assembly) Len() int { return len(a.specs) }

// Specs returns a copy of the collected triples.
func (a *Assembly) Specs() []core.EdgeSpec {
	out := make([]core.EdgeSpec, len(a.specs))
	copy(out, a.specs)
	return out
}

// BuildGraph resolves bopts, applies all constructors in order and builds the
// resulting core.Graph.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - errors.ErrMalformedEdge from core.Build, e.g. when two constructors
//     emit the same pair.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	specs, cfg, err := assemble(bopts, cons)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(specs, core.WithSemantics(cfg.semantics))
	if err != nil {
		return nil, errors.Wrap(err, "BuildGraph")
	}
	return g, nil
}

// BuildSpecs is BuildGraph without the final core.Build step; it returns the
// raw triples, useful for feeding the top-level RunTest or a file encoder.
func BuildSpecs(bopts []BuilderOption, cons ...Constructor) ([]core.EdgeSpec, error) {
	specs, _, err := assemble(bopts, cons)
	return specs, err
}

func assemble(bopts []BuilderOption, cons []Constructor) ([]core.EdgeSpec, builderConfig, error) {
	cfg := newBuilderConfig(bopts...)
	a := &Assembly{}
	for i, fn := range cons {
		if fn == nil {
			return nil, cfg, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(a, cfg); err != nil {
			return nil, cfg, errors.Wrap(err, "BuildGraph")
		}
	}
	return a.specs, cfg, nil
}

// Shifted runs c with every vertex index moved up by off, so several
// constructors can emit disjoint components into one assembly.
func Shifted(off int, c Constructor) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if c == nil {
			return errors.Wrap(ErrConstructFailed, "Shifted: nil constructor")
		}
		if off < 0 {
			return wrapf("Shifted", ErrTooFewVertices, "offset %d < 0", off)
		}
		cfg.idOffset += off
		return c(a, cfg)
	}
}

// weight draws one edge weight from the configured WeightFn.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
