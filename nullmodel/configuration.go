// File: configuration.go
// Role: weighted configuration model by stub matching.
// Algorithm:
//   1) Stub list: node i appears deg(i) times.
//   2) Shuffle and pair consecutive stubs; valid pairs become edges.
//   3) Each self-loop or repeated pair (a, b) is repaired by a swap with a
//      random existing edge (c, d): remove {c,d}, add {a,c} and {b,d}. This
//      keeps every degree. A pair that finds no valid swap within
//      RepairSwaps proposals rejects the whole pairing.
//   4) Up to MaxAttempts pairings are tried before ErrNullGeneration.
// Weights are drawn with replacement from the reference weights.

package nullmodel

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/logger"
)

type configuration struct {
	opts Options
}

func (c *configuration) Kind() Kind { return KindConfiguration }

// Generate builds one configuration-model replicate of ref.
//
// Errors:
//   - errors.ErrEmptyGraph / errors.ErrInvalidConfig for bad input.
//   - errors.ErrNullGeneration when every pairing is rejected.
//   - ctx.Err() when cancelled between pairings.
func (c *configuration) Generate(ctx context.Context, ref *core.Graph, rng *rand.Rand) (*Replicate, error) {
	if err := checkInput(ref, rng); err != nil {
		return nil, err
	}

	deg := ref.DegreeSequence()
	weights := ref.Weights()
	stubs := make([]int, 0, 2*ref.EdgeCount())
	for i, d := range deg {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}

	for attempt := 0; attempt < c.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		shuffleInts(stubs, rng)
		m, ok := c.pair(ref, stubs, weights, rng)
		if !ok {
			continue
		}
		return finish(m, &Replicate{Rejected: attempt})
	}

	c.opts.Logger.Debugw("configuration model exhausted",
		logger.FieldAttempts, c.opts.MaxAttempts,
		logger.FieldNodes, ref.NodeCount(),
		logger.FieldEdges, ref.EdgeCount())
	return nil, errors.Wrapf(errors.ErrNullGeneration,
		"nullmodel: configuration model rejected %d pairings", c.opts.MaxAttempts)
}

// pair turns one shuffled stub list into a simple graph, or reports false
// when some invalid pair could not be repaired.
func (c *configuration) pair(ref *core.Graph, stubs []int, weights []float64, rng *rand.Rand) (*core.Mutable, bool) {
	m := core.NewMutable(ref.Nodes(), ref.Semantics())
	sample := func() float64 { return weights[rng.Intn(len(weights))] }

	var bad [][2]int
	for k := 0; k+1 < len(stubs); k += 2 {
		a, b := stubs[k], stubs[k+1]
		if a == b || m.HasEdge(a, b) {
			bad = append(bad, [2]int{a, b})
			continue
		}
		_ = m.AddEdge(a, b, sample())
	}

	for _, p := range bad {
		if !c.repair(m, p[0], p[1], sample, rng) {
			return nil, false
		}
	}
	return m, true
}

// repair places the stub pair (a, b) by swapping it with an existing edge.
func (c *configuration) repair(m *core.Mutable, a, b int, sample func() float64, rng *rand.Rand) bool {
	for try := 0; try < c.opts.RepairSwaps; try++ {
		n := m.EdgeCount()
		if n == 0 {
			return false
		}
		k := rng.Intn(n)
		u, v, _ := m.EdgeAt(k)
		if rng.Intn(2) == 1 {
			u, v = v, u
		}
		// {a,u} and {b,v} must be new, distinct and loop-free.
		if a == u || b == v || (a == v && b == u) {
			continue
		}
		if m.HasEdge(a, u) || m.HasEdge(b, v) {
			continue
		}
		if err := m.Rewire(k, a, u); err != nil {
			continue
		}
		if err := m.AddEdge(b, v, sample()); err != nil {
			_ = m.Rewire(k, u, v)
			continue
		}
		return true
	}
	return false
}
