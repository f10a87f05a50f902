// File: impl_complete.go
// Role: Complete(n) and CompleteBipartite(m, n) constructors.
// Determinism:
//   - Pairs are emitted in lexicographic index order (i<j); weights are drawn
//     in that order from the configured WeightFn.

package builder

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 2
	minBipartiteSide        = 1
)

// Complete returns a Constructor for the complete simple graph K_n.
// Errors: ErrTooFewVertices if n < 2.
func Complete(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minCompleteNodes {
			return wrapf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.id(i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a.Add(ids[i], ids[j], cfg.weight())
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{m,n}. Left vertices are
// named leftPrefix+id(i), right ones rightPrefix+id(j).
// Errors: ErrTooFewVertices if m < 1 or n < 1.
func CompleteBipartite(m, n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if m < minBipartiteSide || n < minBipartiteSide {
			return wrapf(methodCompleteBipartite, ErrTooFewVertices,
				"sides m=%d n=%d, both must be ≥ %d", m, n, minBipartiteSide)
		}
		for i := 0; i < m; i++ {
			u := cfg.leftPrefix + cfg.id(i)
			for j := 0; j < n; j++ {
				a.Add(u, cfg.rightPrefix+cfg.id(j), cfg.weight())
			}
		}
		return nil
	}
}
