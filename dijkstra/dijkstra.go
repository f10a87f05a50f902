// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// metric lengths of a core.Graph.
//
// Edge lengths are read through the graph's weight semantics
// (core.Graph.LengthOf), so an affinity-weighted graph is searched on
// 1/affinity and a length-weighted graph on the raw weights. Every stored
// weight is finite and > 0, so no negative-weight scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E) worst case for heap entries.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/errors"
)

// Dijkstra computes shortest distances from Options.Source to every vertex.
//
// Returns:
//
//   - dist: vertex ID → distance (Unreachable when not settled).
//   - prev: vertex ID → predecessor on one shortest path, "" for the source
//     and unreached vertices; nil unless WithReturnPath was given.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	src, ok := g.Index(cfg.Source)
	if !ok {
		return nil, nil, errors.Wrapf(ErrVertexNotFound, "dijkstra: source %q", cfg.Source)
	}

	r := newRunner(g)
	r.start(src, cfg)
	r.process()

	n := g.NodeCount()
	dist := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		dist[g.ID(i)] = r.dist[i]
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, n)
	for i := 0; i < n; i++ {
		if p := r.prev[i]; p >= 0 {
			prev[g.ID(i)] = g.ID(p)
		} else {
			prev[g.ID(i)] = ""
		}
	}
	return dist, prev, nil
}

// Distances is the index-level entry point: it returns dist[i] for every
// node index i (Unreachable when not settled) and, with WithReturnPath,
// prev[i] (−1 for the source and unreached vertices). Options.Source is
// ignored. Hot loops should reuse a Searcher instead.
//
// Errors: ErrNilGraph, ErrVertexNotFound for an out-of-range src.
func Distances(g *core.Graph, src int, opts ...Option) ([]float64, []int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	return NewSearcher(g).Distances(src, opts...)
}

// Searcher runs repeated index-level searches over one graph and reuses
// its O(V) buffers between them; each search only resets the vertices the
// previous one reached. A Searcher is not safe for concurrent use.
type Searcher struct {
	r *runner
}

// NewSearcher allocates the buffers for g. g must be non-nil.
func NewSearcher(g *core.Graph) *Searcher {
	return &Searcher{r: newRunner(g)}
}

// Distances behaves like the package-level Distances. The returned slices
// are owned by the Searcher and valid until its next call.
func (s *Searcher) Distances(src int, opts ...Option) ([]float64, []int, error) {
	r := s.r
	if src < 0 || src >= r.g.NodeCount() {
		return nil, nil, errors.Wrapf(ErrVertexNotFound, "dijkstra: source index %d", src)
	}
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	r.start(src, cfg)
	r.process()
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// runner holds the mutable state of a search; start resets it for reuse.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64
	prev    []int
	visited []bool
	target  []bool
	pending int   // targets not yet settled; −1 when no targets were given
	touched []int // vertices whose dist left Unreachable
	pq      nodePQ
}

func newRunner(g *core.Graph) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		target:  make([]bool, n),
		pending: -1,
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = -1
	}
	return r
}

// start clears what the previous search wrote and seeds src.
func (r *runner) start(src int, cfg Options) {
	for _, v := range r.touched {
		r.dist[v] = Unreachable
		r.prev[v] = -1
		r.visited[v] = false
	}
	r.touched = r.touched[:0]
	for _, t := range r.options.Targets {
		if t >= 0 && t < len(r.target) {
			r.target[t] = false
		}
	}
	r.pq = r.pq[:0]
	r.options = cfg

	r.pending = -1
	if len(cfg.Targets) > 0 {
		r.pending = 0
		for _, t := range cfg.Targets {
			if t >= 0 && t < len(r.target) && !r.target[t] {
				r.target[t] = true
				r.pending++
			}
		}
		if r.pending == 0 {
			r.pending = -1
		}
	}

	r.dist[src] = 0
	r.touched = append(r.touched, src)
	heap.Push(&r.pq, nodeItem{id: src, dist: 0})
}

// process repeatedly settles the closest vertex and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - The minimum distance in the heap exceeds MaxDistance.
//   - Every target has been settled.
func (r *runner) process() {
	for r.pq.Len() > 0 && r.pending != 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if r.pending > 0 && r.target[u] {
			r.pending--
		}
		r.relax(u)
	}

	// Tentative distances of unsettled vertices are not final; hide them.
	for _, v := range r.touched {
		if !r.visited[v] {
			r.dist[v] = Unreachable
			r.prev[v] = -1
		}
	}
}

// relax improves tentative distances of u's neighbors. Equal distances are
// not re-pushed, so the first-found predecessor wins ties.
func (r *runner) relax(u int) {
	nb, wts := r.g.Adjacent(u)
	du := r.dist[u]
	for k, v := range nb {
		if r.visited[v] {
			continue
		}
		nd := du + r.g.LengthOf(wts[k])
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		if r.dist[v] == Unreachable {
			r.touched = append(r.touched, v)
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry: a vertex index and its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by index so that
// equal-distance pops are deterministic.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
