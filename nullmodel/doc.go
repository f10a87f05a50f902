// Package nullmodel generates randomized replicates of a reference graph.
//
// Two variants exist, selected by Kind:
//
//   - KindConfiguration rebuilds the graph by random stub matching. The
//     degree sequence is reproduced exactly and weights are resampled with
//     replacement from the reference's empirical weights.
//   - KindTriadicRewire starts from the reference and applies double-edge
//     swaps that keep both the local triangle counts around the touched
//     vertices and the global triangle count within a tolerance.
//
// Every replicate is reduced to its largest connected component before it is
// returned; the pre- and post-reduction sizes are reported on Replicate.
//
// Randomness is always injected. A Generator holds no RNG of its own, so a
// caller deriving one stream per replicate (StreamRNG) gets bit-identical
// replicates regardless of how work is scheduled.
package nullmodel
