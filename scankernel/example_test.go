// SPDX-License-Identifier: MIT
package scankernel_test

import (
	"fmt"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/predicate"
	"github.com/colkit/rangeselect/scankernel"
)

// ExampleScan shows a plain scan (no candidates, no imprint) over a closed
// range predicate.
func ExampleScan() {
	col := column.NewColumn([]int32{30, 10, 50, 20, 40}, 0)

	tl, th := int32(15), int32(45)
	p := predicate.Predicate[int32]{TL: &tl, TH: &th, LI: true, HI: true}
	pred, err := predicate.Normalize(p, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ids, err := scankernel.Scan[int32](col, nil, pred, nil, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ids)
	// Output:
	// [0 3 4]
}
