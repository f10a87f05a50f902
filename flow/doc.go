// Package flow solves the discrete optimal-transport problem between two
// finite measures (a "supply" and a "demand" vector) under a non-negative
// cost matrix. Its optimal value is the Wasserstein-1 distance W₁ when the
// costs are metric distances.
//
// Two solvers are offered:
//
//   - Exact (MethodExact, default)
//
//   - Method: successive shortest paths on the bipartite network
//     s → supply_i → demand_j → t, with heap Dijkstra over reduced costs
//     (Johnson potentials).
//
//   - Time:   O(A · W log V) for A augmentations, V = n+m+2 nodes,
//     W = n·m transport arcs. A is about n+m; the default budget is
//     8·(n+m) augmentations.
//
//   - Memory: O(n·m) for arcs and the plan.
//
//   - Use for exact W₁ on 1-hop neighborhoods.
//
//   - Sinkhorn (MethodSinkhorn)
//
//   - Method: entropic regularization, log-domain Sinkhorn iterations.
//
//   - Time:   O(I · n·m) for I iterations.
//
//   - Convergence: max marginal violation ≤ Tolerance, else the solver
//     fails with errors.ErrTransportSolver.
//
//   - The returned Cost is ⟨P, C⟩ of the entropic plan, an upper bound
//     of the exact optimum that tightens as Regularization → 0.
//
// # API
//
//	plan, err := flow.Transport(supply, demand, cost, flow.DefaultOptions())
//
// FlowOptions:
//
//	type FlowOptions struct {
//	    Ctx              context.Context // cancellation, checked once per iteration
//	    Method           Method          // MethodExact or MethodSinkhorn
//	    Epsilon          float64         // masses/capacities ≤ Epsilon are zero (1e-12)
//	    Tolerance        float64         // mass balance and Sinkhorn marginals (1e-6)
//	    MaxIterations    int             // Sinkhorn sweeps (10000)
//	    MaxAugmentations int             // exact augmentations (0: 8·(n+m))
//	    Regularization   float64         // Sinkhorn entropic ε (0.01)
//	    Metric           bool            // cancel mass on zero-cost pairs first
//	}
//
// Instances with a single supply or demand point have one feasible plan and
// skip the solvers. With Metric, mass that both measures put on the same
// point stays there; on a 1-hop neighborhood this removes the shared
// endpoints and usually leaves a small instance.
//
// # Errors
//
//	ErrDimensionMismatch - cost is not len(supply)×len(demand).
//	ErrInvalidMass       - a mass is negative, NaN or Inf, or a side is empty.
//	ErrInvalidCost       - a cost is negative, NaN or Inf.
//	ErrMassImbalance     - Σsupply and Σdemand differ by more than Tolerance.
//	errors.ErrTransportSolver - iteration budget exhausted or numerical breakdown.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package flow
