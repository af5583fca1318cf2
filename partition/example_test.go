package partition_test

import (
	"errors"
	"fmt"

	"github.com/zeusvoltaire/invpart/partition"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCount
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Count the partitions of 5:
//	  5, 4+1, 3+2, 3+1+1, 2+2+1, 2+1+1+1, 1+1+1+1+1
//
// Complexity: O(n²) time, O(n) memory
func ExampleCount() {
	p, err := partition.Count(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	// Output:
	// 7
}

// ExampleTable prints the first row of the partition table.
func ExampleTable() {
	row, _ := partition.Table(10, partition.DefaultOptions())
	fmt.Println(row)
	// Output:
	// [1 1 2 3 5 7 11 15 22 30 42]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCountWithOptions_pentagonal
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Cross-check a large value with Euler's pentagonal recurrence.
//
// Complexity: O(n·√n) time, O(n) memory
func ExampleCountWithOptions_pentagonal() {
	opts := partition.DefaultOptions()
	opts.Method = partition.Pentagonal

	p, _ := partition.CountWithOptions(100, opts)
	fmt.Println(p)
	// Output:
	// 190569292
}

// ExampleParseInput shows how malformed numerals are reported.
func ExampleParseInput() {
	for _, in := range []string{"10", "-3", "abc"} {
		n, err := partition.ParseInput(in)
		if errors.Is(err, partition.ErrInvalidInput) {
			fmt.Printf("%s: rejected\n", in)
			continue
		}
		fmt.Printf("%s: n=%d\n", in, n)
	}
	// Output:
	// 10: n=10
	// -3: rejected
	// abc: rejected
}
