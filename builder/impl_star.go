// File: impl_star.go
// Role: Star(k) and DoubleStar(a, b) trees.
// Notes:
//   - Trees are the canonical negatively curved fixtures: with laziness α=0
//     the bridge of a double star has curvature well below zero.

package builder

const (
	methodStar       = "Star"
	methodDoubleStar = "DoubleStar"
	minStarLeaves    = 1
)

// Star returns a Constructor for the star with center 0 and leaves 1..k.
// Errors: ErrTooFewVertices if k < 1.
func Star(k int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if k < minStarLeaves {
			return wrapf(methodStar, ErrTooFewVertices, "leaves=%d < min=%d", k, minStarLeaves)
		}
		center := cfg.id(0)
		for i := 1; i <= k; i++ {
			a.Add(center, cfg.id(i), cfg.weight())
		}
		return nil
	}
}

// DoubleStar returns a Constructor for two hubs 0 and 1 joined by a bridge,
// with hub 0 carrying leaves 2..p+1 and hub 1 carrying the next q leaves.
// Errors: ErrTooFewVertices if p < 1 or q < 1.
func DoubleStar(p, q int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if p < minStarLeaves || q < minStarLeaves {
			return wrapf(methodDoubleStar, ErrTooFewVertices, "leaves p=%d q=%d, both must be ≥ %d", p, q, minStarLeaves)
		}
		h0, h1 := cfg.id(0), cfg.id(1)
		a.Add(h0, h1, cfg.weight())
		next := 2
		for i := 0; i < p; i++ {
			a.Add(h0, cfg.id(next), cfg.weight())
			next++
		}
		for i := 0; i < q; i++ {
			a.Add(h1, cfg.id(next), cfg.weight())
			next++
		}
		return nil
	}
}
