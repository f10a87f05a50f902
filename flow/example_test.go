package flow_test

import (
	"fmt"

	"github.com/katalvlaran/ricci/flow"
)

// ExampleTransport moves uniform mass on {0,1} to uniform mass on {1,2}.
func ExampleTransport() {
	cost := [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	plan, err := flow.Transport([]float64{0.5, 0.5, 0}, []float64{0, 0.5, 0.5}, cost, flow.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", plan.Cost)

	// Output:
	// 1.00
}
