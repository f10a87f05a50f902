// File: methods_components.go
// Role: Connected components and largest-component reduction.
// Determinism:
//   - Components are discovered by BFS from nodes in ascending index order;
//     ties on size keep the component found first (smallest member ID).

package core

import "github.com/katalvlaran/ricci/errors"

// componentLabels returns comp[i] = component number of node i, and the
// number of nodes in each component, numbered in discovery order.
func (g *Graph) componentLabels() ([]int, []int) {
	n := len(g.ids)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	var sizes []int
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if comp[s] >= 0 {
			continue
		}
		label := len(sizes)
		comp[s] = label
		size := 0
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			x := queue[head]
			size++
			for _, y := range g.adj[x] {
				if comp[y] < 0 {
					comp[y] = label
					queue = append(queue, y)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return comp, sizes
}

// Components returns the node IDs of every connected component, each sorted,
// in discovery order. Isolated nodes form singleton components.
// Complexity: O(V + E).
func (g *Graph) Components() [][]string {
	comp, sizes := g.componentLabels()
	out := make([][]string, len(sizes))
	for c, sz := range sizes {
		out[c] = make([]string, 0, sz)
	}
	for i, c := range comp {
		out[c] = append(out[c], g.ids[i])
	}
	return out
}

// IsConnected reports whether g has exactly one component and no isolated node.
func (g *Graph) IsConnected() bool {
	if len(g.edges) == 0 {
		return false
	}
	_, sizes := g.componentLabels()
	return len(sizes) == 1
}

// LargestComponent returns a new Graph restricted to the largest connected
// component of g. Node IDs, weights and semantics are preserved.
//
// Implementation:
//   - Stage 1: Reject edgeless graphs (ErrEmptyGraph).
//   - Stage 2: Label components by BFS; a connected graph is cloned as is.
//   - Stage 3: Pick the largest (first on ties), re-index surviving nodes
//     (ascending order is kept) and copy edges.
//
// Behavior highlights:
//   - Idempotent: LargestComponent of a connected graph equals the graph.
//   - Always returns an owned copy, never g itself.
//
// Errors:
//   - errors.ErrEmptyGraph if g has zero edges.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph) LargestComponent() (*Graph, error) {
	if len(g.edges) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyGraph, "core: largest component of a graph with %d nodes and no edges", len(g.ids))
	}

	comp, sizes := g.componentLabels()
	if len(sizes) == 1 {
		return g.Clone(), nil
	}
	best := 0
	for c, sz := range sizes {
		if sz > sizes[best] {
			best = c
		}
	}

	// Surviving nodes keep their relative order, so the new ID slice stays sorted.
	remap := make([]int, len(g.ids))
	ids := make([]string, 0, sizes[best])
	for i, c := range comp {
		if c == best {
			remap[i] = len(ids)
			ids = append(ids, g.ids[i])
		} else {
			remap[i] = -1
		}
	}

	edges := make([]indexEdge, 0, len(g.edges))
	for _, e := range g.edges {
		if remap[e.u] >= 0 {
			edges = append(edges, indexEdge{u: remap[e.u], v: remap[e.v], w: e.w})
		}
	}

	return newGraph(g.semantics, ids, edges), nil
}
