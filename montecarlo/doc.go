// Package montecarlo compares the mean Ollivier–Ricci curvature of a real
// graph against an ensemble of null-model replicates.
//
// Run reduces the real graph to its largest component, computes κ̄_real,
// then generates and scores M replicates in parallel. Replicate i always
// draws from nullmodel.StreamRNG(Seed, i), and every statistic is computed
// from the sorted null distribution, so a Result is bit-identical for a
// fixed seed and M whatever the worker count.
//
// Replicates that fail with errors.ErrNullGeneration, or whose edges were
// all excluded by the transport solver, are skipped and counted. More than
// MaxSkipFraction·M skips fail the whole test with
// errors.ErrInsufficientValidReplicates. With TopUp set, skipped replicates
// are replaced by fresh indices M, M+1, ... until M valid replicates exist.
package montecarlo
