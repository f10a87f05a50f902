// File: impl_grid.go
// Role: Grid(rows, cols) lattice constructor.
// Contract:
//   - Vertex (r, c) has index r*cols + c; edges go right then down.

package builder

const (
	methodGrid  = "Grid"
	minGridSide = 1
	minGridSize = 2
)

// Grid returns a Constructor for the rows×cols 4-neighbor lattice.
// Errors: ErrTooFewVertices if a side < 1 or the lattice has < 2 vertices.
func Grid(rows, cols int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide || rows*cols < minGridSize {
			return wrapf(methodGrid, ErrTooFewVertices, "rows=%d cols=%d", rows, cols)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					a.Add(cfg.id(i), cfg.id(i+1), cfg.weight())
				}
				if r+1 < rows {
					a.Add(cfg.id(i), cfg.id(i+cols), cfg.weight())
				}
			}
		}
		return nil
	}
}
