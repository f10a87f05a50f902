package flow

import (
	"math"

	"github.com/katalvlaran/ricci/errors"
)

// Transport computes an optimal (MethodExact) or entropic (MethodSinkhorn)
// transport plan moving supply onto demand at cost[i][j] per unit of mass.
//
// Steps:
//  1. Normalize options; poll the context.
//  2. Validate dimensions, masses and costs.
//  3. Compress away zero-mass entries; rescale demand onto the supply total
//     (the totals already agree within Tolerance). With Metric, leave shared
//     mass in place and drop the emptied entries.
//  4. Solve single-row or single-column instances directly, otherwise
//     dispatch to the selected solver; expand the plan to full size.
//
// Errors: see the package documentation.
func Transport(supply, demand []float64, cost [][]float64, opts FlowOptions) (*Plan, error) {
	opts.normalize()
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Method != MethodExact && opts.Method != MethodSinkhorn {
		return nil, errors.Newf("flow: unknown method %v", opts.Method)
	}

	p, err := newProblem(supply, demand, cost, opts)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Flow: make([][]float64, len(supply)), Method: opts.Method}
	for i := range plan.Flow {
		plan.Flow[i] = make([]float64, len(demand))
	}
	for _, st := range p.stay {
		plan.Flow[st.row][st.col] += st.mass
		plan.Cost += st.mass * cost[st.row][st.col]
	}
	if len(p.rows) == 0 {
		return plan, nil
	}

	var (
		sub   [][]float64
		iters int
	)
	switch {
	case len(p.rows) == 1 || len(p.cols) == 1:
		sub = forcedPlan(p)
	case opts.Method == MethodExact:
		sub, iters, err = solveExact(p, opts)
	default:
		sub, iters, err = solveSinkhorn(p, opts)
	}
	if err != nil {
		return nil, err
	}

	plan.Iterations = iters
	for i, ri := range p.rows {
		for j, cj := range p.cols {
			plan.Flow[ri][cj] += sub[i][j]
			plan.Cost += sub[i][j] * cost[ri][cj]
		}
	}
	return plan, nil
}

// problem is the compressed instance: only entries with mass > Epsilon.
type problem struct {
	rows, cols []int     // original indices
	a, b       []float64 // masses, Σb == Σa after rescaling
	c          [][]float64
	total      float64
	stay       []stay // mass left in place on zero-cost pairs
}

// stay is mass kept on a zero-cost pair, in original indices.
type stay struct {
	row, col int
	mass     float64
}

func newProblem(supply, demand []float64, cost [][]float64, opts FlowOptions) (*problem, error) {
	if len(supply) == 0 || len(demand) == 0 {
		return nil, errors.Wrapf(ErrInvalidMass, "empty side (supply %d, demand %d)", len(supply), len(demand))
	}
	if len(cost) != len(supply) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "cost has %d rows, want %d", len(cost), len(supply))
	}

	p := &problem{}
	var sa, sb float64
	for i, m := range supply {
		if err := checkMass(m); err != nil {
			return nil, errors.Wrapf(err, "supply[%d]", i)
		}
		if len(cost[i]) != len(demand) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "cost row %d has %d columns, want %d", i, len(cost[i]), len(demand))
		}
		for j, c := range cost[i] {
			if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, errors.Wrapf(ErrInvalidCost, "cost[%d][%d]=%g", i, j, c)
			}
		}
		sa += m
		if m > opts.Epsilon {
			p.rows = append(p.rows, i)
			p.a = append(p.a, m)
		}
	}
	for j, m := range demand {
		if err := checkMass(m); err != nil {
			return nil, errors.Wrapf(err, "demand[%d]", j)
		}
		sb += m
		if m > opts.Epsilon {
			p.cols = append(p.cols, j)
			p.b = append(p.b, m)
		}
	}
	if math.Abs(sa-sb) > opts.Tolerance {
		return nil, errors.Wrapf(ErrMassImbalance, "Σsupply=%g Σdemand=%g", sa, sb)
	}
	if len(p.rows) == 0 || len(p.cols) == 0 {
		p.rows, p.cols = nil, nil
		return p, nil
	}

	var ka, kb float64
	for _, m := range p.a {
		ka += m
	}
	for _, m := range p.b {
		kb += m
	}
	scale := ka / kb
	for j := range p.b {
		p.b[j] *= scale
	}
	p.total = ka

	p.c = make([][]float64, len(p.rows))
	for i, ri := range p.rows {
		p.c[i] = make([]float64, len(p.cols))
		for j, cj := range p.cols {
			p.c[i][j] = cost[ri][cj]
		}
	}
	if opts.Metric {
		p.cancelShared(opts.Epsilon)
	}
	return p, nil
}

// cancelShared moves min(a_i, b_j) onto every zero-cost pair, then drops
// rows and columns left with mass ≤ eps and rebalances the rest.
func (p *problem) cancelShared(eps float64) {
	for i := range p.a {
		for j := range p.b {
			if p.c[i][j] != 0 || p.a[i] <= eps || p.b[j] <= eps {
				continue
			}
			m := math.Min(p.a[i], p.b[j])
			p.a[i] -= m
			p.b[j] -= m
			p.stay = append(p.stay, stay{row: p.rows[i], col: p.cols[j], mass: m})
		}
	}
	if len(p.stay) == 0 {
		return
	}

	var keepR, keepC []int
	var ka, kb float64
	for i, m := range p.a {
		if m > eps {
			keepR = append(keepR, i)
			ka += m
		}
	}
	for j, m := range p.b {
		if m > eps {
			keepC = append(keepC, j)
			kb += m
		}
	}
	if len(keepR) == 0 || len(keepC) == 0 {
		p.rows, p.cols, p.a, p.b, p.c, p.total = nil, nil, nil, nil, nil, 0
		return
	}

	rows := make([]int, len(keepR))
	a := make([]float64, len(keepR))
	c := make([][]float64, len(keepR))
	for x, i := range keepR {
		rows[x] = p.rows[i]
		a[x] = p.a[i]
		c[x] = make([]float64, len(keepC))
		for y, j := range keepC {
			c[x][y] = p.c[i][j]
		}
	}
	cols := make([]int, len(keepC))
	b := make([]float64, len(keepC))
	scale := ka / kb
	for y, j := range keepC {
		cols[y] = p.cols[j]
		b[y] = p.b[j] * scale
	}
	p.rows, p.cols, p.a, p.b, p.c, p.total = rows, cols, a, b, c, ka
}

func checkMass(m float64) error {
	if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return errors.Wrapf(ErrInvalidMass, "mass %g", m)
	}
	return nil
}
