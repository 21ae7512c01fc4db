// SPDX-License-Identifier: MIT
package hashindex_test

import (
	"fmt"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/hashindex"
)

// ExampleBuild shows building a hash index once and reusing it across
// multiple equality probes.
func ExampleBuild() {
	col := column.NewColumn([]int32{7, 3, 7, 1, 7}, 0)

	idx, err := hashindex.Build(col)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(idx.Probe(7))
	fmt.Println(idx.Probe(1))
	fmt.Println(idx.Probe(42))
	// Output:
	// [0 2 4]
	// [3]
	// []
}
