// SPDX-License-Identifier: MIT
package result_test

import (
	"fmt"

	"github.com/colkit/rangeselect/result"
)

// ExampleFinalize_virtualizesATwoRangeResult shows an anti-predicate's
// two-range output collapsing to a single dense run because its interior
// gap happens to be empty.
func ExampleFinalize_virtualizesATwoRangeResult() {
	r := result.NewTwoRange(
		result.Range{Base: 0, Count: 10},
		result.Range{Base: 10, Count: 5},
	)
	result.Finalize(r)

	fmt.Println(r.Kind == result.KindDense, r.Base, r.Count)
	// Output:
	// true 0 15
}
