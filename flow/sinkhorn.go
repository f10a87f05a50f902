package flow

import (
	"math"

	"github.com/katalvlaran/ricci/errors"
)

// solveSinkhorn runs log-domain Sinkhorn iterations with regularization ε.
//
// Dual potentials f, g define the plan P_ij = exp((f_i + g_j − C_ij)/ε).
// Each sweep fits the row marginals, then the column marginals; the sweep
// loop stops once Σ|rowsum_i − a_i| ≤ Tolerance·total.
func solveSinkhorn(p *problem, opts FlowOptions) ([][]float64, int, error) {
	R, C := len(p.rows), len(p.cols)
	reg := opts.Regularization

	logA := make([]float64, R)
	for i, m := range p.a {
		logA[i] = math.Log(m)
	}
	logB := make([]float64, C)
	for j, m := range p.b {
		logB[j] = math.Log(m)
	}
	f := make([]float64, R)
	g := make([]float64, C)
	buf := make([]float64, max(R, C))

	for it := 1; it <= opts.MaxIterations; it++ {
		if err := opts.Ctx.Err(); err != nil {
			return nil, it, err
		}

		for i := 0; i < R; i++ {
			for j := 0; j < C; j++ {
				buf[j] = (g[j] - p.c[i][j]) / reg
			}
			f[i] = reg * (logA[i] - logSumExp(buf[:C]))
		}
		for j := 0; j < C; j++ {
			for i := 0; i < R; i++ {
				buf[i] = (f[i] - p.c[i][j]) / reg
			}
			g[j] = reg * (logB[j] - logSumExp(buf[:R]))
		}

		// Columns are exact after the g-update; measure the row violation.
		violation := 0.0
		for i := 0; i < R; i++ {
			row := 0.0
			for j := 0; j < C; j++ {
				row += math.Exp((f[i] + g[j] - p.c[i][j]) / reg)
			}
			violation += math.Abs(row - p.a[i])
		}
		if math.IsNaN(violation) || math.IsInf(violation, 0) {
			return nil, it, errors.Wrapf(errors.ErrTransportSolver,
				"flow: sinkhorn diverged at sweep %d (ε=%g)", it, reg)
		}
		if violation <= opts.Tolerance*p.total {
			out := make([][]float64, R)
			for i := 0; i < R; i++ {
				out[i] = make([]float64, C)
				for j := 0; j < C; j++ {
					out[i][j] = math.Exp((f[i] + g[j] - p.c[i][j]) / reg)
				}
			}
			return out, it, nil
		}
	}
	return nil, opts.MaxIterations, errors.Wrapf(errors.ErrTransportSolver,
		"flow: sinkhorn did not converge in %d sweeps (ε=%g)", opts.MaxIterations, reg)
}

// logSumExp returns log Σ exp(x_k) without overflow.
func logSumExp(x []float64) float64 {
	m := math.Inf(-1)
	for _, v := range x {
		if v > m {
			m = v
		}
	}
	if math.IsInf(m, -1) {
		return m
	}
	s := 0.0
	for _, v := range x {
		s += math.Exp(v - m)
	}
	return m + math.Log(s)
}
