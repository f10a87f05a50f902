// File: impl_random.go
// Role: Seeded random families: RandomSparse(n, p) and RandomRegular(n, d).
// Contract:
//   - Both need an RNG (WithSeed or WithRand) unless the outcome is fixed
//     (p ∈ {0,1} for RandomSparse).
//   - Vertices that end up without edges do not appear in the built graph,
//     because a graph is defined by its edge list.
// Determinism:
//   - Trials run in a fixed order (i asc, j asc), so a seed pins the graph.

package builder

import "math"

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	minRandomNodes          = 2
	probMin, probMax        = 0.0, 1.0
	maxStubMatchingAttempts = 100
)

// RandomSparse returns a Constructor for the Erdős–Rényi graph G(n, p):
// each unordered pair {i, j} is kept independently with probability p.
//
// Errors:
//   - ErrTooFewVertices if n < 2.
//   - ErrInvalidProbability if p ∉ [0,1].
//   - ErrNeedRandSource if 0 < p < 1 and no RNG is configured.
func RandomSparse(n int, p float64) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minRandomNodes {
			return wrapf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minRandomNodes)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return wrapf(methodRandomSparse, ErrInvalidProbability, "p=%.6f not in [0,1]", p)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return wrapf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				a.Add(cfg.id(i), cfg.id(j), cfg.weight())
			}
		}
		return nil
	}
}

// RandomRegular returns a Constructor for a simple d-regular graph on n
// vertices via stub matching with bounded reshuffles.
//
// Errors:
//   - ErrTooFewVertices if n < 2, d ∉ [1, n) or n·d is odd.
//   - ErrNeedRandSource without an RNG.
//   - ErrConstructFailed if no simple pairing was found within the budget.
func RandomRegular(n, d int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minRandomNodes {
			return wrapf(methodRandomRegular, ErrTooFewVertices, "n=%d < min=%d", n, minRandomNodes)
		}
		if d < 1 || d >= n {
			return wrapf(methodRandomRegular, ErrTooFewVertices, "degree must be in [1,%d), got %d", n, d)
		}
		if (n*d)%2 != 0 {
			return wrapf(methodRandomRegular, ErrTooFewVertices, "n*d must be even (n=%d, d=%d)", n, d)
		}
		if cfg.rng == nil {
			return wrapf(methodRandomRegular, ErrNeedRandSource, "n=%d d=%d", n, d)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				a.Add(cfg.id(stubs[i]), cfg.id(stubs[i+1]), cfg.weight())
			}
			return nil
		}
		return wrapf(methodRandomRegular, ErrConstructFailed, "no simple pairing after %d attempts", maxStubMatchingAttempts)
	}
}

// simplePairing reports whether consecutive stub pairs contain no loop and no
// repeated pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		k := [2]int{u, v}
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}
