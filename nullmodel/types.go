// File: types.go
// Role: Kind, Generator, Replicate, Options and the New factory.

package nullmodel

import (
	"context"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/errors"
	"github.com/katalvlaran/ricci/logger"
)

// Kind selects a null-model variant.
type Kind int

const (
	// KindConfiguration is the weighted configuration model.
	KindConfiguration Kind = iota
	// KindTriadicRewire is triangle-preserving double-edge swapping.
	KindTriadicRewire
)

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTriadicRewire:
		return "triadic_rewire"
	default:
		return "unknown"
	}
}

// ParseKind maps a variant name to a Kind. Matching ignores case and accepts
// "-" for "_".
func ParseKind(name string) (Kind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "configuration", "config", "":
		return KindConfiguration, nil
	case "triadic_rewire", "triadic":
		return KindTriadicRewire, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidConfig, "nullmodel: unknown variant %q", name)
	}
}

// Default parameters.
const (
	DefaultMaxAttempts       = 100
	DefaultRepairSwaps       = 50
	DefaultSwapMultiple      = 10.0
	DefaultAttemptMultiple   = 100
	DefaultTriangleTolerance = 2
)

// Options configures both generators. Fields a variant does not use are
// ignored by it.
type Options struct {
	// Configuration model.
	MaxAttempts int // pairings tried before ErrNullGeneration
	RepairSwaps int // swap proposals per invalid stub pair

	// Triadic rewire.
	SwapMultiple      float64 // target swaps = ceil(SwapMultiple·|E|)
	AttemptMultiple   int     // attempt budget = AttemptMultiple·target
	TriangleTolerance int     // max |Δ| of local and global triangle counts

	Logger *zap.SugaredLogger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:       DefaultMaxAttempts,
		RepairSwaps:       DefaultRepairSwaps,
		SwapMultiple:      DefaultSwapMultiple,
		AttemptMultiple:   DefaultAttemptMultiple,
		TriangleTolerance: DefaultTriangleTolerance,
	}
}

// WithMaxAttempts sets the configuration-model pairing budget.
func WithMaxAttempts(n int) Option { return func(o *Options) { o.MaxAttempts = n } }

// WithRepairSwaps sets the swap proposals tried per invalid stub pair.
func WithRepairSwaps(n int) Option { return func(o *Options) { o.RepairSwaps = n } }

// WithSwapMultiple sets the target number of swaps per edge.
// Values in [1, 10] are typical; any positive value is accepted.
func WithSwapMultiple(x float64) Option { return func(o *Options) { o.SwapMultiple = x } }

// WithAttemptMultiple sets the attempt budget per target swap.
func WithAttemptMultiple(n int) Option { return func(o *Options) { o.AttemptMultiple = n } }

// WithTriangleTolerance sets the allowed triangle-count drift.
func WithTriangleTolerance(n int) Option { return func(o *Options) { o.TriangleTolerance = n } }

// WithLogger injects a logger; nil keeps the no-op logger.
func WithLogger(l *zap.SugaredLogger) Option { return func(o *Options) { o.Logger = l } }

// WithOptions replaces the whole option set.
func WithOptions(src Options) Option { return func(o *Options) { *o = src } }

// Validate reports the first out-of-range field as errors.ErrInvalidConfig.
func (o Options) Validate() error {
	switch {
	case o.MaxAttempts < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "nullmodel: MaxAttempts %d < 1", o.MaxAttempts)
	case o.RepairSwaps < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "nullmodel: RepairSwaps %d < 0", o.RepairSwaps)
	case !(o.SwapMultiple > 0):
		return errors.Wrapf(errors.ErrInvalidConfig, "nullmodel: SwapMultiple %g must be > 0", o.SwapMultiple)
	case o.AttemptMultiple < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "nullmodel: AttemptMultiple %d < 1", o.AttemptMultiple)
	case o.TriangleTolerance < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "nullmodel: TriangleTolerance %d < 0", o.TriangleTolerance)
	}
	return nil
}

// Replicate is one null graph together with its bookkeeping.
type Replicate struct {
	Graph *core.Graph // largest connected component of the null graph
	Full  *core.Graph // null graph before reduction

	NodesBefore, EdgesBefore int
	Nodes, Edges             int

	// Configuration model: pairings rejected before success.
	Rejected int

	// Triadic rewire: achieved and targeted swaps, proposals tried.
	Swaps, TargetSwaps, Attempts int
	SwapRatio                    float64
}

// Generator produces null replicates of a reference graph. Implementations
// are stateless; all randomness comes from rng, so one Generator may serve
// many goroutines as long as each passes its own rng.
type Generator interface {
	Kind() Kind
	Generate(ctx context.Context, ref *core.Graph, rng *rand.Rand) (*Replicate, error)
}

// New returns the generator for kind.
//
// Errors:
//   - errors.ErrInvalidConfig for an unknown kind or out-of-range options.
func New(kind Kind, opts ...Option) (Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o.Logger = logger.Named(o.Logger, "nullmodel").With(logger.FieldVariant, kind.String())

	switch kind {
	case KindConfiguration:
		return &configuration{opts: o}, nil
	case KindTriadicRewire:
		return &triadic{opts: o}, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "nullmodel: unknown kind %d", int(kind))
	}
}

// checkInput validates the arguments shared by both generators.
func checkInput(ref *core.Graph, rng *rand.Rand) error {
	if ref == nil || ref.EdgeCount() == 0 {
		return errors.Wrap(errors.ErrEmptyGraph, "nullmodel: reference graph has no edges")
	}
	if rng == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "nullmodel: rng must not be nil")
	}
	return nil
}

// finish freezes m, reduces it to its largest component and fills the
// size fields of rep.
func finish(m *core.Mutable, rep *Replicate) (*Replicate, error) {
	full := m.Freeze()
	lcc, err := full.LargestComponent()
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrNullGeneration), "nullmodel: reduce")
	}
	rep.Full = full
	rep.Graph = lcc
	rep.NodesBefore, rep.EdgesBefore = full.NodeCount(), full.EdgeCount()
	rep.Nodes, rep.Edges = lcc.NodeCount(), lcc.EdgeCount()
	return rep, nil
}
