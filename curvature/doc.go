// Package curvature computes the Ollivier–Ricci curvature of every edge of a
// core.Graph.
//
// For an edge (u, v) the lazy random-walk measure μ_u keeps mass α on u and
// spreads 1−α over u's neighbors in proportion to their affinity. With
// d the shortest-path distance under edge lengths,
//
//	κ(u, v) = 1 − W₁(μ_u, μ_v) / d(u, v)
//
// where W₁ is the optimal transport cost between the two measures, solved by
// package flow on the closed neighborhoods of u and v.
//
// Behavior highlights:
//   - κ is clamped to [−1, 1]; every clamp is counted in Result.Clamped.
//   - An edge whose transport fails (errors.ErrTransportSolver) is excluded
//     and listed in Result.Excluded; it never contributes a default value.
//   - Edges are processed by a bounded worker pool; results are stored by
//     edge index, so the output does not depend on scheduling.
//
// Weights are read through the graph's Semantics: affinities drive the
// measures, lengths drive the distances.
package curvature
