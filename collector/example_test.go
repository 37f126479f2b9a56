// SPDX-License-Identifier: MIT

package collector_test

import (
	"fmt"

	"github.com/katalvlaran/mstkit/collector"
)

func ExampleSummary_String() {
	c := collector.NewPretty()
	c.AddEdge(0, 1, 2)
	c.AddEdge(1, 2, 3.5)
	fmt.Println(c.Result())
	// Output:
	// Total Weight: 5.5
	// Edges:
	// 0 -- 1 (weight: 2)
	// 1 -- 2 (weight: 3.5)
}
