// File: methods.go
// Role: Read-only lookups on Graph (ID level and index level).
// Determinism:
//   - Nodes(), Edges() and Neighbors() return lexicographically sorted results.
// Concurrency:
//   - Lock-free; a Graph is immutable after construction.

package core

// Semantics reports how this graph's weights are to be read.
func (g *Graph) Semantics() Semantics { return g.semantics }

// NodeCount returns |V|. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns |E|. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Nodes returns a copy of all node IDs in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// Edges returns all edges in canonical orientation, sorted by (From, To).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{From: g.ids[e.u], To: g.ids[e.v], Weight: e.w}
	}
	return out
}

// EdgeAt returns the endpoint indices and weight of the i-th canonical edge
// (same order as Edges). Panics if i is out of range.
func (g *Graph) EdgeAt(i int) (u, v int, w float64) {
	e := g.edges[i]
	return e.u, e.v, e.w
}

// Degree returns the number of neighbors of id, or 0 for an unknown node.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	return len(g.adj[i])
}

// Neighbors returns the neighbor IDs of id in ascending order.
//
// Errors:
//   - ErrNodeNotFound if id is not a node.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.ids[j]
	}
	return out, nil
}

// HasEdge reports whether the unordered pair {u, v} is an edge.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.Weight(u, v)
	return ok
}

// Weight returns the stored weight of {u, v}.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, bool) {
	i, ok := g.index[u]
	if !ok {
		return 0, false
	}
	j, ok := g.index[v]
	if !ok || i == j {
		return 0, false
	}
	w, ok := g.pair[pairKey(i, j)]
	return w, ok
}

// Affinity returns the weight of {u, v} read as a bond strength under the
// graph's Semantics.
func (g *Graph) Affinity(u, v string) (float64, bool) {
	w, ok := g.Weight(u, v)
	if !ok {
		return 0, false
	}
	return affinityOf(g.semantics, w), true
}

// Length returns the weight of {u, v} read as a metric length under the
// graph's Semantics.
func (g *Graph) Length(u, v string) (float64, bool) {
	w, ok := g.Weight(u, v)
	if !ok {
		return 0, false
	}
	return lengthOf(g.semantics, w), true
}

// AffinityOf converts a raw stored weight of this graph to an affinity.
func (g *Graph) AffinityOf(w float64) float64 { return affinityOf(g.semantics, w) }

// LengthOf converts a raw stored weight of this graph to a length.
func (g *Graph) LengthOf(w float64) float64 { return lengthOf(g.semantics, w) }

// Index returns the dense index of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// ID returns the node ID at index i. Panics if i is out of range.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Adjacent returns the neighbor indices of node i and the aligned raw
// weights. The slices are the graph's own storage and must not be modified.
func (g *Graph) Adjacent(i int) ([]int, []float64) {
	return g.adj[i], g.wts[i]
}

// DegreeSequence returns the degrees in node-index order.
// Complexity: O(V).
func (g *Graph) DegreeSequence() []int {
	out := make([]int, len(g.adj))
	for i := range g.adj {
		out[i] = len(g.adj[i])
	}
	return out
}

// Weights returns the raw edge weights in canonical edge order.
// It is the empirical weight distribution sampled by null models.
func (g *Graph) Weights() []float64 {
	out := make([]float64, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.w
	}
	return out
}

// Equal reports whether g and other have the same nodes, edges, weights and
// semantics.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.semantics != other.semantics || len(g.ids) != len(other.ids) || len(g.edges) != len(other.edges) {
		return false
	}
	for i := range g.ids {
		if g.ids[i] != other.ids[i] {
			return false
		}
	}
	for i := range g.edges {
		if g.edges[i] != other.edges[i] {
			return false
		}
	}
	return true
}
