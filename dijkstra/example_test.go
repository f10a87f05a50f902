package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/dijkstra"
)

// ExampleDijkstra computes distances on a length-weighted triangle.
func ExampleDijkstra() {
	g, _ := core.Build([]core.EdgeSpec{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "C", Weight: 2},
		{Source: "A", Target: "C", Weight: 5},
	}, core.WithSemantics(core.Length))

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	fmt.Println(dist["C"], prev["C"])

	// Output:
	// 3 B
}
