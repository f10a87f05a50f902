// Package builder assembles deterministic fixture graphs for curvature
// experiments: classic topologies (complete, cycle, path, star, wheel,
// double star, complete bipartite, grid) and seeded random families
// (sparse Erdős–Rényi, random regular).
//
// Every constructor emits undirected edges into a shared assembly; BuildGraph
// hands the collected triples to core.Build, so the result obeys the same
// validation as any user-supplied graph. Options select vertex naming,
// edge weights, the RNG and the weight semantics of the resulting graph.
//
// Determinism:
//   - Same options, same seed and same constructor order give the same graph.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 3))},
//		builder.RandomSparse(50, 0.1),
//	)
package builder
