package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ricci/errors"
)

// Input validation sentinels. Solver failures use errors.ErrTransportSolver.
var (
	// ErrDimensionMismatch is returned when cost is not len(supply)×len(demand).
	ErrDimensionMismatch = errors.New("flow: cost matrix dimension mismatch")

	// ErrInvalidMass is returned for a negative or non-finite mass, or an empty side.
	ErrInvalidMass = errors.New("flow: invalid mass")

	// ErrInvalidCost is returned for a negative or non-finite cost entry.
	ErrInvalidCost = errors.New("flow: invalid cost")

	// ErrMassImbalance is returned when the total masses differ beyond Tolerance.
	ErrMassImbalance = errors.New("flow: supply and demand totals differ")
)

// Method selects the transport solver.
type Method int

const (
	// MethodExact is the successive-shortest-path min-cost flow.
	MethodExact Method = iota
	// MethodSinkhorn is the entropic-regularized approximation.
	MethodSinkhorn
)

// String returns the configuration name of the method.
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodSinkhorn:
		return "sinkhorn"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps "exact"/"sinkhorn" to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "exact", "", "emd", "otd":
		return MethodExact, nil
	case "sinkhorn":
		return MethodSinkhorn, nil
	default:
		return 0, errors.Newf("flow: unknown transport method %q", name)
	}
}

// FlowOptions configures both solvers.
//   - Ctx: cancellation, polled once per augmentation or sweep.
//   - Epsilon: masses and residual capacities ≤ Epsilon count as zero.
//   - Tolerance: allowed |Σsupply − Σdemand| and Sinkhorn marginal error.
//   - MaxIterations: Sinkhorn sweep budget.
//   - MaxAugmentations: exact-solver budget; 0 means augmentFactor·(rows+cols)
//     of the reduced instance.
//   - Regularization: Sinkhorn entropic ε, in cost units.
//   - Metric: cost is a (pseudo)metric over one ground set indexed by both
//     sides, so cost[i][j] == 0 marks the same point. Mass shared by such
//     pairs stays in place before solving, which is optimal on a metric.
type FlowOptions struct {
	Ctx              context.Context
	Method           Method
	Epsilon          float64
	Tolerance        float64
	MaxIterations    int
	MaxAugmentations int
	Regularization   float64
	Metric           bool
}

const (
	defaultEpsilon        = 1e-12
	defaultTolerance      = 1e-6
	defaultMaxIterations  = 10000
	defaultRegularization = 0.01

	// augmentFactor scales the default exact budget with the instance size.
	augmentFactor = 8
)

// DefaultOptions returns production-safe defaults for the exact solver.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:            context.Background(),
		Method:         MethodExact,
		Epsilon:        defaultEpsilon,
		Tolerance:      defaultTolerance,
		MaxIterations:  defaultMaxIterations,
		Regularization: defaultRegularization,
	}
}

// normalize fills zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
	if o.Tolerance <= 0 {
		o.Tolerance = defaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = defaultMaxIterations
	}
	if o.Regularization <= 0 {
		o.Regularization = defaultRegularization
	}
}

// Plan is a solved transport problem.
//   - Cost: Σ Flow[i][j]·cost[i][j].
//   - Flow: len(supply)×len(demand) transported masses (zero rows/columns
//     for zero-mass entries).
//   - Iterations: augmentations (exact) or sweeps (Sinkhorn) performed.
type Plan struct {
	Cost       float64
	Flow       [][]float64
	Iterations int
	Method     Method
}
