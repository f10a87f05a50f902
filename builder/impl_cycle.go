// File: impl_cycle.go
// Role: Cycle(n), Path(n) and Wheel(n) constructors.

package builder

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	methodWheel   = "Wheel"
	minCycleNodes = 3
	minPathNodes  = 2
	minWheelNodes = 4
)

// Cycle returns a Constructor for the ring C_n: edges (i, i+1 mod n).
// Errors: ErrTooFewVertices if n < 3.
func Cycle(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minCycleNodes {
			return wrapf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
		}
		for i := 0; i < n; i++ {
			a.Add(cfg.id(i), cfg.id((i+1)%n), cfg.weight())
		}
		return nil
	}
}

// Path returns a Constructor for the path P_n: edges (i, i+1), i < n-1.
// Errors: ErrTooFewVertices if n < 2.
func Path(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minPathNodes {
			return wrapf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}
		for i := 0; i+1 < n; i++ {
			a.Add(cfg.id(i), cfg.id(i+1), cfg.weight())
		}
		return nil
	}
}

// Wheel returns a Constructor for W_n: hub 0 joined to a rim cycle 1..n-1.
// Rim edges are emitted first, then spokes.
// Errors: ErrTooFewVertices if n < 4.
func Wheel(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minWheelNodes {
			return wrapf(methodWheel, ErrTooFewVertices, "n=%d < min=%d", n, minWheelNodes)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			a.Add(cfg.id(1+i), cfg.id(1+(i+1)%rim), cfg.weight())
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			a.Add(hub, cfg.id(i), cfg.weight())
		}
		return nil
	}
}
