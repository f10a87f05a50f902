// File: methods_triangles.go
// Role: Triangle counts and clustering coefficients.
// Notes:
//   - Topological (unweighted) definitions; weights do not enter.
//   - AverageClustering counts nodes of degree < 2 as 0, like the usual
//     network-science convention.

package core

// commonSorted counts |a ∩ b| for two ascending index slices.
func commonSorted(a, b []int) int {
	c, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			c++
			i++
			j++
		}
	}
	return c
}

// trianglesAt returns the triangle count through node index i.
func (g *Graph) trianglesAt(i int) int {
	t := 0
	for _, j := range g.adj[i] {
		t += commonSorted(g.adj[i], g.adj[j])
	}
	return t / 2
}

// Triangles returns the number of triangles through node id (0 if unknown).
// Complexity: O(Σ_{j∈N(id)} (deg id + deg j)).
func (g *Graph) Triangles(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	return g.trianglesAt(i)
}

// TotalTriangles returns the number of distinct triangles in g.
// Complexity: O(Σ_{(u,v)∈E} (deg u + deg v)).
func (g *Graph) TotalTriangles() int {
	t := 0
	for _, e := range g.edges {
		t += commonSorted(g.adj[e.u], g.adj[e.v])
	}
	return t / 3
}

// Transitivity returns the global clustering coefficient
// 3·triangles / connected-triples, or 0 when there are no triples.
func (g *Graph) Transitivity() float64 {
	triples := 0
	for i := range g.adj {
		d := len(g.adj[i])
		triples += d * (d - 1) / 2
	}
	if triples == 0 {
		return 0
	}
	return 3 * float64(g.TotalTriangles()) / float64(triples)
}

// AverageClustering returns the mean local clustering coefficient over all nodes.
func (g *Graph) AverageClustering() float64 {
	if len(g.adj) == 0 {
		return 0
	}
	sum := 0.0
	for i := range g.adj {
		d := len(g.adj[i])
		if d < 2 {
			continue
		}
		sum += float64(g.trianglesAt(i)) / float64(d*(d-1)/2)
	}
	return sum / float64(len(g.adj))
}
