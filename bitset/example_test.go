package bitset_test

import (
	"fmt"

	"github.com/stoianmihail/netzwerk/bitset"
)

// Demonstrates the numeral view of a Set: Increment carries like binary
// addition, which drives the subset enumeration.
func ExampleSet_Increment() {
	s := bitset.Of(64, 0, 1)
	fmt.Println(s.Increment())
	// Output:
	// {2}
}

// Enumerates every non-empty subset of a three-element set.
func ExampleSet_Subsets() {
	s := bitset.Of(64, 0, 2, 3)
	it := s.Subsets()
	for sub, ok := it.Next(); ok; sub, ok = it.Next() {
		fmt.Println(sub)
	}
	// Output:
	// {0}
	// {2}
	// {0, 2}
	// {3}
	// {0, 3}
	// {2, 3}
	// {0, 2, 3}
}
