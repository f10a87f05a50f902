package flow

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/ricci/errors"
)

// arc is one residual arc; rev indexes its partner in the arc slice.
type arc struct {
	to   int
	cap  float64
	cost float64
	rev  int
}

// network is a residual graph with adjacency lists of arc indices.
type network struct {
	arcs []arc
	out  [][]int
}

func newNetwork(n int) *network {
	return &network{out: make([][]int, n)}
}

// addArc inserts u→v with capacity and cost plus its zero-capacity reverse,
// returning the index of the forward arc.
func (nw *network) addArc(u, v int, capacity, cost float64) int {
	k := len(nw.arcs)
	nw.arcs = append(nw.arcs,
		arc{to: v, cap: capacity, cost: cost, rev: k + 1},
		arc{to: u, cap: 0, cost: -cost, rev: k},
	)
	nw.out[u] = append(nw.out[u], k)
	nw.out[v] = append(nw.out[v], k+1)
	return k
}

// solveExact runs successive shortest paths on s → rows → cols → t.
//
// Implementation:
//   - Stage 1: Build the network; transport arcs are effectively uncapacitated.
//   - Stage 2: Repeat: heap Dijkstra on reduced costs c + π(u) − π(v) from s,
//     update potentials, push the bottleneck along the s→t path.
//   - Stage 3: Read the plan from the reverse capacities of transport arcs.
//
// Reduced costs are ≥ 0 in exact arithmetic; round-off below zero is clamped.
// The augmentation budget is opts.MaxAugmentations, or augmentFactor·(R+C)
// when unset, so it follows the instance size.
func solveExact(p *problem, opts FlowOptions) ([][]float64, int, error) {
	R, C := len(p.rows), len(p.cols)
	s, t := 0, R+C+1
	n := R + C + 2
	nw := newNetwork(n)

	for i := 0; i < R; i++ {
		nw.addArc(s, 1+i, p.a[i], 0)
	}
	unlimited := p.total + 1
	mid := make([][]int, R)
	for i := 0; i < R; i++ {
		mid[i] = make([]int, C)
		for j := 0; j < C; j++ {
			mid[i][j] = nw.addArc(1+i, 1+R+j, unlimited, p.c[i][j])
		}
	}
	for j := 0; j < C; j++ {
		nw.addArc(1+R+j, t, p.b[j], 0)
	}

	budget := opts.MaxAugmentations
	if budget <= 0 {
		budget = augmentFactor * (R + C)
	}

	pot := make([]float64, n)
	dist := make([]float64, n)
	via := make([]int, n)
	done := make([]bool, n)
	pq := make(distPQ, 0, n)
	eps := opts.Epsilon

	remaining := p.total
	iters := 0
	for remaining > eps {
		if err := opts.Ctx.Err(); err != nil {
			return nil, iters, err
		}
		if iters >= budget {
			return nil, iters, errors.Wrapf(errors.ErrTransportSolver,
				"flow: exact solver hit %d augmentations with %g mass left", budget, remaining)
		}
		iters++

		for v := range dist {
			dist[v] = math.Inf(1)
			via[v] = -1
			done[v] = false
		}
		dist[s] = 0
		pq = pq[:0]
		heap.Push(&pq, distItem{node: s})
		for pq.Len() > 0 {
			it := heap.Pop(&pq).(distItem)
			u := it.node
			if done[u] || it.dist > dist[u] {
				continue
			}
			done[u] = true
			for _, k := range nw.out[u] {
				a := &nw.arcs[k]
				if a.cap <= eps || done[a.to] {
					continue
				}
				rc := a.cost + pot[u] - pot[a.to]
				if rc < 0 {
					rc = 0
				}
				if nd := it.dist + rc; nd < dist[a.to] {
					dist[a.to] = nd
					via[a.to] = k
					heap.Push(&pq, distItem{node: a.to, dist: nd})
				}
			}
		}

		if math.IsInf(dist[t], 1) {
			if remaining <= opts.Tolerance {
				break
			}
			return nil, iters, errors.Wrapf(errors.ErrTransportSolver,
				"flow: no augmenting path with %g mass left", remaining)
		}
		for v := 0; v < n; v++ {
			if !math.IsInf(dist[v], 1) {
				pot[v] += dist[v]
			}
		}

		push := remaining
		for v := t; v != s; v = nw.arcs[nw.arcs[via[v]].rev].to {
			if c := nw.arcs[via[v]].cap; c < push {
				push = c
			}
		}
		for v := t; v != s; v = nw.arcs[nw.arcs[via[v]].rev].to {
			k := via[v]
			nw.arcs[k].cap -= push
			nw.arcs[nw.arcs[k].rev].cap += push
		}
		remaining -= push
	}

	out := make([][]float64, R)
	for i := 0; i < R; i++ {
		out[i] = make([]float64, C)
		for j := 0; j < C; j++ {
			out[i][j] = nw.arcs[nw.arcs[mid[i][j]].rev].cap
		}
	}
	return out, iters, nil
}

// forcedPlan solves an instance with a single row or a single column, where
// the marginals leave exactly one feasible plan.
func forcedPlan(p *problem) [][]float64 {
	R, C := len(p.rows), len(p.cols)
	out := make([][]float64, R)
	for i := range out {
		out[i] = make([]float64, C)
	}
	switch {
	case R == 1:
		copy(out[0], p.b)
	default:
		for i := range out {
			out[i][0] = p.a[i]
		}
	}
	return out
}

// distItem is a heap entry of the residual-network search.
type distItem struct {
	node int
	dist float64
}

// distPQ is a min-heap of distItem ordered by dist, then by node.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }
func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
