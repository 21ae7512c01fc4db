// SPDX-License-Identifier: MIT
package kernel_test

import (
	"fmt"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/kernel"
	"github.com/colkit/rangeselect/predicate"
)

func ExampleSelect() {
	col := column.NewColumn([]int64{30, 10, 50, 20, 40}, 0)
	tl, th := int64(15), int64(45)
	pred := predicate.Predicate[int64]{TL: &tl, TH: &th, LI: true, HI: true}

	res, _ := kernel.Select(col, nil, pred)
	fmt.Println(res.Ids())
	// Output:
	// [0 3 4]
}

func ExampleThetaSelect() {
	col := column.NewColumn([]int64{5, 1, 9, 3}, 0)

	res, _ := kernel.ThetaSelect(col, nil, int64(5), ">=")
	fmt.Println(res.Ids())
	// Output:
	// [0 2]
}
