package netzwerk_test

import (
	"fmt"

	"github.com/stoianmihail/netzwerk"
)

// Optimise a triangle of tensors: edges (0,1), (1,2) and (0,2) with
// dimensions 4, 5 and 3, the path 0-1-2 as the spanning-tree hint.
func ExampleLinDP() {
	res, err := netzwerk.LinDP(3,
		[][2]int{{0, 1}, {1, 2}, {0, 2}},
		[][2]int{{0, 1}, {1, 2}},
		[]float64{4, 5, 3},
		[]float64{4, 5},
		nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("cost=%.0f steps=%d\n", res.Cost, len(res.Sequence))
	// Output:
	// cost=72 steps=2
}
