package hypergraph_test

import (
	"fmt"

	"github.com/katalvlaran/erdos888/hypergraph"
)

// ExampleBuild shows the first bad quadruples over V(21).
func ExampleBuild() {
	h, _ := hypergraph.Build(21)
	fmt.Println(h.Order(), h.Dedup().Edges)
	// Output: 14 [[1 6 10 15] [1 6 14 21]]
}
