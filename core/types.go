// File: types.go
// Role: Graph, Edge, EdgeSpec, Option declarations and the Build constructor.
// Determinism:
//   - Node IDs are sorted lexicographically; node index i is the rank of its ID.
//   - Edges are stored canonically (From < To) and sorted by (From, To).
// Concurrency:
//   - A built Graph is never mutated, so concurrent reads need no locks.

package core

import (
	"math"
	"sort"

	"github.com/katalvlaran/ricci/errors"
)

// ErrNodeNotFound indicates a lookup referenced a node absent from the graph.
var ErrNodeNotFound = errors.New("core: node not found")

// EdgeSpec is one input triple (source, target, weight) of an undirected edge.
type EdgeSpec struct {
	Source string
	Target string
	Weight float64
}

// Edge is a stored undirected edge in canonical orientation (From < To).
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	semantics Semantics
}

// WithSemantics declares how the edge weights are to be read.
// Default is Affinity.
func WithSemantics(s Semantics) Option {
	return func(c *buildConfig) { c.semantics = s }
}

// Graph is an immutable weighted undirected simple graph.
//
// Storage is index based: ids[i] is the ID of node i, adj[i] lists the
// neighbor indices of i in ascending order and wts[i][k] is the weight of the
// edge (i, adj[i][k]). pair maps a canonical pair key to its weight for O(1)
// Weight lookups.
type Graph struct {
	semantics Semantics

	ids   []string       // node index → ID (sorted)
	index map[string]int // ID → node index
	adj   [][]int        // node index → sorted neighbor indices
	wts   [][]float64    // parallel to adj
	pair  map[uint64]float64
	edges []indexEdge // canonical, sorted by (u, v)
}

// indexEdge is an edge between node indices with u < v.
type indexEdge struct {
	u, v int
	w    float64
}

// pairKey packs an unordered index pair into one map key.
func pairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(uint32(b))
}

// Build constructs a Graph from (source, target, weight) triples.
//
// Implementation:
//   - Stage 1: Validate every triple (non-empty IDs, no self-loop, finite weight > 0).
//   - Stage 2: Collect and sort node IDs; assign indices by rank.
//   - Stage 3: Reject repeated unordered pairs; assemble canonical edges.
//   - Stage 4: Delegate to newGraph for adjacency construction.
//
// Errors:
//   - errors.ErrMalformedEdge (wrapped with the offending triple).
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func Build(specs []EdgeSpec, opts ...Option) (*Graph, error) {
	cfg := buildConfig{semantics: Affinity}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: validate triples before touching any storage.
	seen := make(map[string]struct{}, 2*len(specs))
	for i, s := range specs {
		if err := validateSpec(i, s); err != nil {
			return nil, err
		}
		seen[s.Source] = struct{}{}
		seen[s.Target] = struct{}{}
	}

	// Stage 2: sorted IDs give deterministic indices.
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Stage 3: canonical edges, duplicates rejected.
	edges := make([]indexEdge, 0, len(specs))
	dup := make(map[uint64]struct{}, len(specs))
	for i, s := range specs {
		u, v := index[s.Source], index[s.Target]
		if u > v {
			u, v = v, u
		}
		k := pairKey(u, v)
		if _, ok := dup[k]; ok {
			return nil, errors.Wrapf(errors.ErrMalformedEdge,
				"core: edge %d (%q-%q) repeats an existing pair", i, s.Source, s.Target)
		}
		dup[k] = struct{}{}
		edges = append(edges, indexEdge{u: u, v: v, w: s.Weight})
	}

	return newGraph(cfg.semantics, ids, edges), nil
}

func validateSpec(i int, s EdgeSpec) error {
	if s.Source == "" || s.Target == "" {
		return errors.Wrapf(errors.ErrMalformedEdge, "core: edge %d has an empty endpoint", i)
	}
	if s.Source == s.Target {
		return errors.Wrapf(errors.ErrMalformedEdge, "core: edge %d is a self-loop on %q", i, s.Source)
	}
	if !(s.Weight > 0) || math.IsInf(s.Weight, 0) {
		return errors.Wrapf(errors.ErrMalformedEdge,
			"core: edge %d (%q-%q) has weight %g, want finite > 0", i, s.Source, s.Target, s.Weight)
	}
	return nil
}

// newGraph assembles adjacency for already-validated canonical edges.
// ids must be sorted; edges must satisfy u < v and be unique.
func newGraph(sem Semantics, ids []string, edges []indexEdge) *Graph {
	n := len(ids)
	g := &Graph{
		semantics: sem,
		ids:       ids,
		index:     make(map[string]int, n),
		adj:       make([][]int, n),
		wts:       make([][]float64, n),
		pair:      make(map[uint64]float64, len(edges)),
		edges:     edges,
	}
	for i, id := range ids {
		g.index[id] = i
	}

	sort.Slice(g.edges, func(a, b int) bool {
		if g.edges[a].u != g.edges[b].u {
			return g.edges[a].u < g.edges[b].u
		}
		return g.edges[a].v < g.edges[b].v
	})

	// Degree pass sizes every adjacency slice exactly once.
	deg := make([]int, n)
	for _, e := range g.edges {
		deg[e.u]++
		deg[e.v]++
	}
	for i := range g.adj {
		g.adj[i] = make([]int, 0, deg[i])
		g.wts[i] = make([]float64, 0, deg[i])
	}
	for _, e := range g.edges {
		g.adj[e.u] = append(g.adj[e.u], e.v)
		g.wts[e.u] = append(g.wts[e.u], e.w)
		g.adj[e.v] = append(g.adj[e.v], e.u)
		g.wts[e.v] = append(g.wts[e.v], e.w)
		g.pair[pairKey(e.u, e.v)] = e.w
	}
	for i := range g.adj {
		sortAdjacency(g.adj[i], g.wts[i])
	}

	return g
}

// sortAdjacency sorts neighbor indices ascending, keeping weights aligned.
func sortAdjacency(nb []int, w []float64) {
	sort.Sort(adjSorter{nb: nb, w: w})
}

type adjSorter struct {
	nb []int
	w  []float64
}

func (s adjSorter) Len() int           { return len(s.nb) }
func (s adjSorter) Less(i, j int) bool { return s.nb[i] < s.nb[j] }
func (s adjSorter) Swap(i, j int) {
	s.nb[i], s.nb[j] = s.nb[j], s.nb[i]
	s.w[i], s.w[j] = s.w[j], s.w[i]
}
