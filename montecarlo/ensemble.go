// File: ensemble.go
// Role: parallel replicate execution and the NullEnsemble record.
// Concurrency:
//   - Workers run under an errgroup limited to Config.Workers; each writes
//     only its own slot, so no locks are needed.
//   - The reference graph is shared read-only; every replicate owns its RNG.
// Cancellation:
//   - Checked before launching each replicate. A replicate interrupted
//     midway is discarded, never merged.

package montecarlo

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/curvature"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/logger"
	"github.com/katalvlaran/ricci/metrics"
	"github.com/katalvlaran/ricci/nullmodel"
)

// Entry is one valid replicate.
type Entry struct {
	Index int   // replicate index i
	Seed  int64 // DeriveSeed(Seed, i)

	Kappa   float64           // mean κ over valid edges
	Summary curvature.Summary // full curvature aggregate

	Nodes, Edges             int // after reduction to the largest component
	NodesBefore, EdgesBefore int
	Excluded, Clamped        int
	Rejected                 int     // configuration model pairings rejected
	SwapRatio                float64 // triadic rewire achieved/target

	Graph *core.Graph // set only with Config.KeepGraphs
}

// Failure is one skipped replicate.
type Failure struct {
	Index int
	Err   error
}

// Ensemble is the ordered collection of valid replicates.
type Ensemble struct {
	Entries  []Entry   // ascending Index
	Failures []Failure // ascending Index
	Launched int       // replicate indices started
}

// Kappas returns the replicate means in index order.
func (e *Ensemble) Kappas() []float64 {
	out := make([]float64, len(e.Entries))
	for i, en := range e.Entries {
		out[i] = en.Kappa
	}
	return out
}

type slotState int

const (
	slotPending slotState = iota // not launched or interrupted
	slotOK
	slotFailed
	slotFatal
)

type slot struct {
	state slotState
	entry Entry
	err   error
}

// runner executes replicates against one reference graph.
type runner struct {
	ref     *core.Graph
	cfg     Config
	log     *zap.SugaredLogger
	variant string
}

// run fills the ensemble, topping up when configured.
//
// Errors:
//   - errors.ErrInsufficientValidReplicates when failures exceed the budget.
//   - a non-recoverable replicate error.
//   - ctx.Err() on cancellation, together with the partial ensemble.
func (r *runner) run(ctx context.Context) (*Ensemble, error) {
	ens := &Ensemble{}
	budget := r.cfg.skipBudget()
	need := r.cfg.Replicates

	for need > 0 {
		from := ens.Launched
		slots := r.batch(ctx, from, from+need)
		ens.Launched += need

		interrupted := false
		for k, s := range slots {
			switch s.state {
			case slotOK:
				ens.Entries = append(ens.Entries, s.entry)
			case slotFailed:
				ens.Failures = append(ens.Failures, Failure{Index: from + k, Err: s.err})
			case slotFatal:
				return ens, s.err
			default:
				interrupted = true
			}
		}
		if interrupted || ctx.Err() != nil {
			if err := ctx.Err(); err != nil {
				return ens, err
			}
			return ens, context.Canceled
		}
		if len(ens.Failures) > budget {
			return ens, errors.Wrapf(errors.ErrInsufficientValidReplicates,
				"montecarlo: %d of %d replicates failed, budget %d",
				len(ens.Failures), ens.Launched, budget)
		}
		if !r.cfg.TopUp {
			break
		}
		need = r.cfg.Replicates - len(ens.Entries)
	}
	return ens, nil
}

// batch runs replicate indices [from, to) and returns their slots.
func (r *runner) batch(ctx context.Context, from, to int) []slot {
	slots := make([]slot, to-from)
	eg := new(errgroup.Group)
	eg.SetLimit(r.cfg.workers())
	for i := from; i < to; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			slots[i-from] = r.replicate(ctx, i)
			return nil
		})
	}
	_ = eg.Wait()
	return slots
}

// replicate generates and scores replicate i.
func (r *runner) replicate(ctx context.Context, i int) slot {
	if ctx.Err() != nil {
		return slot{}
	}
	start := time.Now()
	seed := nullmodel.DeriveSeed(r.cfg.Seed, uint64(i))

	rep, err := r.cfg.Null.Generate(ctx, r.ref, nullmodel.NewRNG(seed))
	if err != nil {
		return r.fail(ctx, i, err, start)
	}
	res, err := curvature.Compute(ctx, rep.Graph, r.cfg.curvatureOptions(false)...)
	if err != nil {
		return r.fail(ctx, i, err, start)
	}
	sum := res.Summary()
	if sum.Count == 0 {
		err = errors.Wrapf(errors.ErrTransportSolver, "montecarlo: replicate %d: all %d edges excluded", i, len(res.Excluded))
		return r.fail(ctx, i, err, start)
	}

	e := Entry{
		Index:       i,
		Seed:        seed,
		Kappa:       sum.Mean,
		Summary:     sum,
		Nodes:       rep.Nodes,
		Edges:       rep.Edges,
		NodesBefore: rep.NodesBefore,
		EdgesBefore: rep.EdgesBefore,
		Excluded:    len(res.Excluded),
		Clamped:     res.Clamped,
		Rejected:    rep.Rejected,
		SwapRatio:   rep.SwapRatio,
	}
	if r.cfg.KeepGraphs {
		e.Graph = rep.Graph
	}
	r.cfg.Metrics.ObserveReplicate(r.variant, metrics.StatusOK, time.Since(start))
	r.cfg.Metrics.AddExcluded(metrics.ScopeNull, e.Excluded)
	r.cfg.Metrics.AddClamped(metrics.ScopeNull, e.Clamped)
	r.log.Debugw("replicate done",
		logger.FieldReplicate, i,
		"kappa", e.Kappa,
		logger.FieldNodes, e.Nodes,
		logger.FieldEdges, e.Edges,
		logger.FieldExcluded, e.Excluded,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return slot{state: slotOK, entry: e}
}

// fail classifies a replicate error. Interrupted replicates stay pending.
func (r *runner) fail(ctx context.Context, i int, err error, start time.Time) slot {
	if ctx.Err() != nil {
		r.cfg.Metrics.ObserveReplicate(r.variant, metrics.StatusCancelled, time.Since(start))
		return slot{}
	}
	if !errors.IsRecoverable(err) {
		return slot{state: slotFatal, err: errors.Wrapf(err, "montecarlo: replicate %d", i)}
	}
	r.cfg.Metrics.ObserveReplicate(r.variant, metrics.StatusFailed, time.Since(start))
	r.log.Warnw("replicate skipped",
		logger.FieldReplicate, i,
		logger.FieldError, err.Error())
	return slot{state: slotFailed, err: err}
}
