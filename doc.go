// Package ricci tests whether the Ollivier–Ricci curvature of a weighted
// undirected graph differs from what a null model predicts.
//
// The pipeline:
//
//	edge triples ─▶ core.Build ─▶ largest component
//	                                  │
//	            curvature.Compute ◀───┤  κ̄_real
//	                                  │
//	nullmodel.Generator × M ─▶ curvature.Compute  κ̄_null_i
//	                                  │
//	            montecarlo statistics ─▶ report.Record (JSON / YAML / SQLite)
//
// RunTest is the single entry point tying these together from a
// config.Config. Subpackages:
//
//	core/        immutable weighted graph, component reduction, rewiring workspace
//	dijkstra/    float64 shortest paths over edge lengths
//	flow/        optimal transport: exact min-cost flow and Sinkhorn
//	curvature/   per-edge Ollivier–Ricci curvature with clamping and exclusions
//	nullmodel/   configuration model and triadic rewire, seeded RNG streams
//	montecarlo/  parallel replicate ensemble, p-value, Cliff's δ, CI
//	report/      output record, encoders and the SQLite store
//	config/      viper configuration with RICCI_ environment overrides
//	builder/     deterministic graph fixtures (complete, cycle, star, random, ...)
//	metrics/     Prometheus instruments
//	logger/, errors/  zap and cockroachdb/errors conventions
//
// Weights are read as affinities by default: a heavier edge is a stronger
// bond, so it is shorter (length 1/w) and carries more neighbor mass. Pass
// core.WithSemantics(core.Length) to read weights as metric lengths instead.
package ricci
