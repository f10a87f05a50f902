package curvature

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/dijkstra"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/flow"
	"github.com/katalvlaran/ricci/logger"
)

// EdgeCurvature is the curvature record of one edge.
type EdgeCurvature struct {
	core.Edge
	Kappa     float64 // clamped to [−1, 1]
	W1        float64 // transport cost between the two measures
	Distance  float64 // shortest-path distance d(u, v)
	Triangles int     // common neighbors of the endpoints
	Clamped   bool    // raw κ fell outside [−1, 1]
}

// Exclusion records an edge left out of the statistic and why.
type Exclusion struct {
	core.Edge
	Reason error
}

// Result holds the per-edge curvatures of one graph in canonical edge order.
type Result struct {
	Alpha    float64
	Edges    []EdgeCurvature
	Excluded []Exclusion
	Clamped  int
}

// outcome is the per-index slot filled by workers.
type outcome struct {
	ec       EdgeCurvature
	excluded error
}

// Compute returns the Ollivier–Ricci curvature of every edge of g.
//
// Implementation:
//   - Stage 1: Validate the graph (non-empty) and α ∈ [0, 1].
//   - Stage 2: Partition edge indices across Workers goroutines (errgroup);
//     each worker owns its scratch buffers and writes only its own slots.
//   - Stage 3: Per edge: build μ_u and μ_v on the closed neighborhoods,
//     run bounded Dijkstra from every support point of μ_u, solve the
//     transport, derive and clamp κ.
//   - Stage 4: Collect slots in edge order; excluded edges are listed.
//
// Errors:
//   - errors.ErrEmptyGraph for a nil or edgeless graph.
//   - errors.ErrInvalidConfig for α outside [0, 1].
//   - errors.ErrDisconnectedNeighborhood if a neighborhood distance is undefined.
//   - ctx.Err() on cancellation.
//
// Per-edge errors.ErrTransportSolver failures are recovered and recorded.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	o := resolve(opts)
	if g == nil || g.EdgeCount() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyGraph, "curvature: graph has no edges")
	}
	if !(o.Alpha >= 0 && o.Alpha <= 1) {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "curvature: alpha %g not in [0,1]", o.Alpha)
	}

	m := g.EdgeCount()
	slots := make([]outcome, m)
	workers := o.Workers
	if workers > m {
		workers = m
	}

	eg, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			wk := &worker{g: g, opts: o, search: dijkstra.NewSearcher(g)}
			for i := w; i < m; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				ec, err := wk.edge(gctx, i)
				if err != nil {
					if errors.Is(err, errors.ErrTransportSolver) {
						slots[i] = outcome{ec: ec, excluded: err}
						continue
					}
					return err
				}
				slots[i] = outcome{ec: ec}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Alpha: o.Alpha, Edges: make([]EdgeCurvature, 0, m)}
	for _, s := range slots {
		if s.excluded != nil {
			res.Excluded = append(res.Excluded, Exclusion{Edge: s.ec.Edge, Reason: s.excluded})
			o.Logger.Debugw("edge excluded",
				logger.FieldEdge, s.ec.From+"-"+s.ec.To,
				logger.FieldError, s.excluded.Error())
			continue
		}
		if s.ec.Clamped {
			res.Clamped++
		}
		res.Edges = append(res.Edges, s.ec)
	}
	return res, nil
}

// Mean returns the mean κ over the valid edges of g.
//
// Errors: those of Compute, plus errors.ErrTransportSolver when every edge
// was excluded.
func Mean(ctx context.Context, g *core.Graph, opts ...Option) (float64, error) {
	res, err := Compute(ctx, g, opts...)
	if err != nil {
		return 0, err
	}
	s := res.Summary()
	if s.Count == 0 {
		return 0, errors.Wrapf(errors.ErrTransportSolver, "curvature: all %d edges excluded", len(res.Excluded))
	}
	return s.Mean, nil
}

// Kappas returns κ of the valid edges in edge order.
func (r *Result) Kappas() []float64 {
	out := make([]float64, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = e.Kappa
	}
	return out
}

// Summary aggregates the valid edge curvatures.
func (r *Result) Summary() Summary {
	return Summarize(r.Kappas())
}

// NodeCurvature returns, for every node touched by a valid edge, the mean κ
// of its valid incident edges.
func (r *Result) NodeCurvature() map[string]float64 {
	sum := make(map[string]float64)
	cnt := make(map[string]int)
	for _, e := range r.Edges {
		sum[e.From] += e.Kappa
		sum[e.To] += e.Kappa
		cnt[e.From]++
		cnt[e.To]++
	}
	for id, s := range sum {
		sum[id] = s / float64(cnt[id])
	}
	return sum
}

// worker owns the scratch state of one edge goroutine.
type worker struct {
	g      *core.Graph
	opts   Options
	search *dijkstra.Searcher
}

// edge computes the curvature of canonical edge i.
func (wk *worker) edge(ctx context.Context, i int) (EdgeCurvature, error) {
	g := wk.g
	u, v, w := g.EdgeAt(i)
	ec := EdgeCurvature{Edge: core.Edge{From: g.ID(u), To: g.ID(v), Weight: w}}

	xs, mu := measure(g, u, wk.opts.Alpha)
	ys, nu := measure(g, v, wk.opts.Alpha)

	cost := make([][]float64, len(xs))
	for a, x := range xs {
		dist, _, err := wk.search.Distances(x, dijkstra.WithTargets(ys...))
		if err != nil {
			return ec, errors.Wrapf(err, "curvature: distances from %q", g.ID(x))
		}
		cost[a] = make([]float64, len(ys))
		for b, y := range ys {
			d := dist[y]
			if math.IsInf(d, 1) {
				return ec, errors.Wrapf(errors.ErrDisconnectedNeighborhood,
					"curvature: no path %q-%q for edge %q-%q", g.ID(x), g.ID(y), ec.From, ec.To)
			}
			cost[a][b] = d
		}
	}
	// xs[0] = u and ys[0] = v.
	ec.Distance = cost[0][0]
	if !(ec.Distance > 0) {
		return ec, errors.Wrapf(errors.ErrDisconnectedNeighborhood,
			"curvature: d(%q,%q)=%g", ec.From, ec.To, ec.Distance)
	}

	fo := wk.opts.flowOptions()
	fo.Ctx = ctx
	plan, err := flow.Transport(mu, nu, cost, fo)
	if err != nil {
		if errors.Is(err, errors.ErrTransportSolver) {
			return ec, err
		}
		return ec, errors.Wrapf(err, "curvature: edge %q-%q", ec.From, ec.To)
	}

	ec.W1 = plan.Cost
	kappa := 1 - plan.Cost/ec.Distance
	switch {
	case kappa > 1:
		kappa, ec.Clamped = 1, true
	case kappa < -1:
		kappa, ec.Clamped = -1, true
	}
	ec.Kappa = kappa
	ec.Triangles = commonNeighbors(g, u, v)
	return ec, nil
}

// measure returns the support [x, neighbors...] of μ_x and its masses:
// α on x, and (1−α)·affinity/Σaffinity on each neighbor.
func measure(g *core.Graph, x int, alpha float64) ([]int, []float64) {
	nb, wts := g.Adjacent(x)
	support := make([]int, 0, len(nb)+1)
	mass := make([]float64, 0, len(nb)+1)
	support = append(support, x)
	mass = append(mass, alpha)

	total := 0.0
	for _, w := range wts {
		total += g.AffinityOf(w)
	}
	for k, y := range nb {
		support = append(support, y)
		mass = append(mass, (1-alpha)*g.AffinityOf(wts[k])/total)
	}
	return support, mass
}

// commonNeighbors merges the two sorted adjacency lists.
func commonNeighbors(g *core.Graph, u, v int) int {
	a, _ := g.Adjacent(u)
	b, _ := g.Adjacent(v)
	c, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			c++
			i++
			j++
		}
	}
	return c
}
