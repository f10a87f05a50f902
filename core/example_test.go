package core_test

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

// ExampleBuild shows construction from triples and the largest-component reduction.
func ExampleBuild() {
	g, err := core.Build([]core.EdgeSpec{
		{Source: "a", Target: "b", Weight: 2},
		{Source: "b", Target: "c", Weight: 1},
		{Source: "x", Target: "y", Weight: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	lcc, _ := g.LargestComponent()
	fmt.Println(g.NodeCount(), g.EdgeCount(), lcc.Nodes())

	l, _ := g.Length("a", "b")
	fmt.Println(l)

	// Output:
	// 5 3 [a b c]
	// 0.5
}
