// File: rng.go
// Role: deterministic RNG streams for replicates.
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derive one stream per replicate
//     and never share it across goroutines.

package nullmodel

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand. seed == 0 maps to a fixed
// non-zero default.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a global seed and a stream index into a new seed using the
// SplitMix64 finalizer. Neighbouring indices yield uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(global int64, index uint64) int64 {
	x := uint64(global) ^ (index + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// StreamRNG returns the RNG of replicate index under the global seed.
// It depends only on (global, index), never on a shared parent stream.
func StreamRNG(global int64, index int) *rand.Rand {
	return NewRNG(DeriveSeed(global, uint64(index)))
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
