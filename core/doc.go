// Package core provides the immutable, weighted, undirected simple graph that
// every ricci computation reads from.
//
// The Graph G = (V,E) holds:
//
//   - Nodes identified by opaque string IDs, stored sorted so that every
//     enumeration (Nodes, Edges, Neighbors) is deterministic.
//   - Undirected edges with a strictly positive float64 weight, no self-loops
//     and at most one edge per unordered pair.
//   - An explicit weight Semantics (Affinity or Length) chosen at Build time.
//
// Why immutable?
//
//   - The reference graph is shared read-only by every Monte Carlo worker, so
//     reads are lock-free and never observe a half-applied mutation.
//   - Every transform (LargestComponent, Clone, Mutable→Freeze) returns a new
//     owned instance; nothing aliases the source's adjacency.
//
// Construction:
//
//	g, err := core.Build([]core.EdgeSpec{
//	    {Source: "a", Target: "b", Weight: 1},
//	    {Source: "b", Target: "c", Weight: 2},
//	}, core.WithSemantics(core.Affinity))
//
// Build rejects non-positive or non-finite weights, empty IDs, self-loops and
// repeated pairs with errors.ErrMalformedEdge.
//
// Core Methods:
//
//	// Lookups, O(1) amortized
//	Degree(id) int
//	Neighbors(id) []string
//	Weight(u, v) (float64, bool)
//	Affinity(u, v) / Length(u, v)   // explicit semantic conversions
//
//	// Index-level access for algorithms
//	Index(id) (int, bool)
//	ID(i) string
//	Adjacent(i) ([]int, []float64)  // read-only views
//
//	// Transforms
//	LargestComponent() (*Graph, error)
//	Clone() *Graph
//	Mutable() *Mutable              // private rewiring workspace
//
//	// Structure
//	Triangles(id) int
//	TotalTriangles() int
//	Transitivity() float64
//	AverageClustering() float64
//
// Weight semantics:
//
//	Affinity: higher weight = stronger bond. Random-walk mass is proportional
//	          to w; lengths are AffinityToLength(w) = 1/w.
//	Length:   higher weight = farther apart. Lengths are w; random-walk mass
//	          is proportional to LengthToAffinity(w) = 1/w.
//
// A computation never mixes the two: algorithms ask the graph for Affinity or
// Length and the conversion is applied in exactly one named place.
package core
