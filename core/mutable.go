// File: mutable.go
// Role: Mutable, the single-owner rewiring workspace used by null models.
// Concurrency:
//   - NOT goroutine-safe. A Mutable belongs to exactly one replicate worker.
// Determinism:
//   - Edge slots are addressed by position; removal swaps the last slot into
//     the hole, so slot order depends only on the sequence of operations.

package core

import (
	"sort"

	"github.com/katalvlaran/ricci/errors"
)

// Mutable is a simple undirected graph under construction or rewiring.
// Nodes are fixed at creation; edges can be added, removed and rewired.
// Call Freeze to obtain an immutable Graph.
type Mutable struct {
	semantics Semantics
	ids       []string
	index     map[string]int
	nbr       []map[int]float64 // node → neighbor → weight
	edges     []indexEdge       // slot → edge (u < v)
	slot      map[uint64]int    // pair key → slot
}

// NewMutable creates an edgeless workspace over the given node IDs.
// IDs are de-duplicated and sorted so indices match a later Freeze.
func NewMutable(ids []string, s Semantics) *Mutable {
	set := make(map[string]struct{}, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := set[id]; ok || id == "" {
			continue
		}
		set[id] = struct{}{}
		uniq = append(uniq, id)
	}
	sort.Strings(uniq)

	return newMutable(s, uniq)
}

func newMutable(s Semantics, ids []string) *Mutable {
	m := &Mutable{
		semantics: s,
		ids:       ids,
		index:     make(map[string]int, len(ids)),
		nbr:       make([]map[int]float64, len(ids)),
		slot:      make(map[uint64]int),
	}
	for i, id := range ids {
		m.index[id] = i
		m.nbr[i] = make(map[int]float64)
	}
	return m
}

// NodeCount returns the number of nodes.
func (m *Mutable) NodeCount() int { return len(m.ids) }

// EdgeCount returns the number of edges.
func (m *Mutable) EdgeCount() int { return len(m.edges) }

// Index returns the index of id.
func (m *Mutable) Index(id string) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// ID returns the node ID at index i.
func (m *Mutable) ID(i int) string { return m.ids[i] }

// Degree returns the degree of node i.
func (m *Mutable) Degree(i int) int { return len(m.nbr[i]) }

// HasEdge reports whether {u, v} is an edge.
func (m *Mutable) HasEdge(u, v int) bool {
	_, ok := m.nbr[u][v]
	return ok
}

// EdgeAt returns the edge stored in slot k.
func (m *Mutable) EdgeAt(k int) (u, v int, w float64) {
	e := m.edges[k]
	return e.u, e.v, e.w
}

// AddEdge inserts {u, v} with weight w.
//
// Errors:
//   - errors.ErrMalformedEdge for a self-loop, a repeated pair or weight ≤ 0.
func (m *Mutable) AddEdge(u, v int, w float64) error {
	if err := m.checkNew(u, v); err != nil {
		return err
	}
	if !(w > 0) {
		return errors.Wrapf(errors.ErrMalformedEdge, "core: weight %g on %q-%q", w, m.ids[u], m.ids[v])
	}
	m.insert(u, v, w)
	return nil
}

// RemoveEdge deletes {u, v} and returns its weight.
func (m *Mutable) RemoveEdge(u, v int) (float64, bool) {
	k, ok := m.slot[pairKey(u, v)]
	if !ok {
		return 0, false
	}
	e := m.edges[k]
	m.unlink(e)

	last := len(m.edges) - 1
	if k != last {
		m.edges[k] = m.edges[last]
		m.slot[pairKey(m.edges[k].u, m.edges[k].v)] = k
	}
	m.edges = m.edges[:last]
	return e.w, true
}

// Rewire replaces the edge in slot k by {u, v}, keeping its weight and slot.
//
// Errors:
//   - errors.ErrMalformedEdge if {u, v} is a self-loop or already present.
func (m *Mutable) Rewire(k, u, v int) error {
	if err := m.checkNew(u, v); err != nil {
		return err
	}
	old := m.edges[k]
	m.unlink(old)
	if u > v {
		u, v = v, u
	}
	e := indexEdge{u: u, v: v, w: old.w}
	m.edges[k] = e
	m.link(e, k)
	return nil
}

// CommonNeighbors returns |N(u) ∩ N(v)|. Complexity: O(min(deg u, deg v)).
func (m *Mutable) CommonNeighbors(u, v int) int {
	a, b := m.nbr[u], m.nbr[v]
	if len(a) > len(b) {
		a, b = b, a
	}
	c := 0
	for x := range a {
		if _, ok := b[x]; ok {
			c++
		}
	}
	return c
}

// Triangles returns the number of triangles through node i.
// Complexity: O(Σ_{j∈N(i)} min(deg i, deg j)).
func (m *Mutable) Triangles(i int) int {
	t := 0
	for j := range m.nbr[i] {
		t += m.CommonNeighbors(i, j)
	}
	return t / 2
}

// TotalTriangles returns the number of triangles in the workspace.
func (m *Mutable) TotalTriangles() int {
	t := 0
	for _, e := range m.edges {
		t += m.CommonNeighbors(e.u, e.v)
	}
	return t / 3
}

// Freeze returns an immutable Graph with the current nodes and edges.
// The workspace stays usable; the Graph shares nothing with it.
// Complexity: O(V + E log E).
func (m *Mutable) Freeze() *Graph {
	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	edges := make([]indexEdge, len(m.edges))
	copy(edges, m.edges)

	return newGraph(m.semantics, ids, edges)
}

func (m *Mutable) checkNew(u, v int) error {
	if u == v {
		return errors.Wrapf(errors.ErrMalformedEdge, "core: self-loop on %q", m.ids[u])
	}
	if m.HasEdge(u, v) {
		return errors.Wrapf(errors.ErrMalformedEdge, "core: pair %q-%q already present", m.ids[u], m.ids[v])
	}
	return nil
}

// insert appends a validated edge.
func (m *Mutable) insert(u, v int, w float64) {
	if u > v {
		u, v = v, u
	}
	e := indexEdge{u: u, v: v, w: w}
	m.edges = append(m.edges, e)
	m.link(e, len(m.edges)-1)
}

func (m *Mutable) link(e indexEdge, k int) {
	m.nbr[e.u][e.v] = e.w
	m.nbr[e.v][e.u] = e.w
	m.slot[pairKey(e.u, e.v)] = k
}

func (m *Mutable) unlink(e indexEdge) {
	delete(m.nbr[e.u], e.v)
	delete(m.nbr[e.v], e.u)
	delete(m.slot, pairKey(e.u, e.v))
}
