// File: methods_clone.go
// Role: Owned copies of a Graph and the private mutable workspace.
// Determinism:
//   - Clone preserves node indices and canonical edge order exactly.
//   - Mutable starts from the same indices; Freeze re-canonicalizes edges.

package core

// Clone returns a deep copy of g. Nothing is shared with the source.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	ids := make([]string, len(g.ids))
	copy(ids, g.ids)
	edges := make([]indexEdge, len(g.edges))
	copy(edges, g.edges)

	return newGraph(g.semantics, ids, edges)
}

// Mutable returns a private mutable copy of g for rewiring. The source
// graph is not affected by any operation on the returned workspace.
// Complexity: O(V + E).
func (g *Graph) Mutable() *Mutable {
	m := newMutable(g.semantics, append([]string(nil), g.ids...))
	for _, e := range g.edges {
		m.insert(e.u, e.v, e.w)
	}
	return m
}
