// File: triadic.go
// Role: triangle-preserving double-edge swap rewiring.
// Algorithm:
//   - Pick two distinct edge slots (u1,v1), (u2,v2); orient the second at
//     random; require four distinct endpoints and absent {u1,v2}, {u2,v1}.
//   - Apply (u1,v1),(u2,v2) → (u1,v2),(u2,v1). Weights stay in their slots,
//     so they move with the edges.
//   - Keep the swap only if the triangle count summed over the four
//     endpoints and the global triangle count (relative to the reference)
//     both move by at most TriangleTolerance; otherwise revert.
//   - Stop after ceil(SwapMultiple·|E|) swaps or AttemptMultiple times as
//     many proposals.
// Degrees are preserved by every swap.

package nullmodel

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/logger"
)

// ctxPollEvery is the number of proposals between cancellation checks.
const ctxPollEvery = 1024

type triadic struct {
	opts Options
}

func (t *triadic) Kind() Kind { return KindTriadicRewire }

// Generate rewires a private copy of ref.
//
// The result may fall short of the target; SwapRatio reports
// achieved/target.
//
// Errors:
//   - errors.ErrEmptyGraph / errors.ErrInvalidConfig for bad input.
//   - errors.ErrNullGeneration when not a single swap was accepted, since
//     the replicate would equal the reference.
//   - ctx.Err() when cancelled.
func (t *triadic) Generate(ctx context.Context, ref *core.Graph, rng *rand.Rand) (*Replicate, error) {
	if err := checkInput(ref, rng); err != nil {
		return nil, err
	}

	m := ref.Mutable()
	n := m.EdgeCount()
	target := int(math.Ceil(t.opts.SwapMultiple * float64(n)))
	budget := t.opts.AttemptMultiple * target
	refTri := m.TotalTriangles()
	cur := refTri
	tol := t.opts.TriangleTolerance

	rep := &Replicate{TargetSwaps: target}
	for n >= 2 && rep.Swaps < target && rep.Attempts < budget {
		if rep.Attempts%ctxPollEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rep.Attempts++

		k1 := rng.Intn(n)
		k2 := rng.Intn(n - 1)
		if k2 >= k1 {
			k2++
		}
		u1, v1, _ := m.EdgeAt(k1)
		u2, v2, _ := m.EdgeAt(k2)
		if rng.Intn(2) == 1 {
			u2, v2 = v2, u2
		}
		if u1 == u2 || u1 == v2 || v1 == u2 || v1 == v2 {
			continue
		}
		if m.HasEdge(u1, v2) || m.HasEdge(u2, v1) {
			continue
		}

		localBefore := m.Triangles(u1) + m.Triangles(v1) + m.Triangles(u2) + m.Triangles(v2)
		delta := -m.CommonNeighbors(u1, v1)
		if err := m.Rewire(k1, u1, v2); err != nil {
			continue
		}
		delta += m.CommonNeighbors(u1, v2) - m.CommonNeighbors(u2, v2)
		if err := m.Rewire(k2, u2, v1); err != nil {
			_ = m.Rewire(k1, u1, v1)
			continue
		}
		delta += m.CommonNeighbors(u2, v1)
		localAfter := m.Triangles(u1) + m.Triangles(v1) + m.Triangles(u2) + m.Triangles(v2)

		if abs(localAfter-localBefore) > tol || abs(cur+delta-refTri) > tol {
			_ = m.Rewire(k2, u2, v2)
			_ = m.Rewire(k1, u1, v1)
			continue
		}
		cur += delta
		rep.Swaps++
	}

	if target > 0 {
		rep.SwapRatio = float64(rep.Swaps) / float64(target)
	}
	if rep.Swaps == 0 {
		t.opts.Logger.Debugw("triadic rewire found no admissible swap",
			logger.FieldAttempts, rep.Attempts,
			logger.FieldEdges, n)
		return nil, errors.Wrapf(errors.ErrNullGeneration,
			"nullmodel: no admissible swap in %d attempts over %d edges", rep.Attempts, n)
	}
	if rep.Swaps < target {
		t.opts.Logger.Debugw("triadic rewire fell short of target",
			logger.FieldCount, rep.Swaps,
			logger.FieldAttempts, rep.Attempts,
			"target", target)
	}
	return finish(m, rep)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
