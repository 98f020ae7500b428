package admissible_test

import (
	"fmt"

	"github.com/katalvlaran/erdos888/admissible"
)

// ExampleCheckFixingOpportunity repairs the Theorem-3 kernel set.
func ExampleCheckFixingOpportunity() {
	bad, _ := admissible.CheckAdmissible([]int64{3, 5, 14, 210})
	ok, fixed, _ := admissible.CheckFixingOpportunity(210, []int64{3, 5, 14, 210})
	good, _ := admissible.CheckAdmissible(fixed)
	fmt.Println(bad, ok, fixed, good)
	// Output: false true [3 5 126 210] true
}
