// SPDX-License-Identifier: MIT
package dispatch

import (
	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/predicate"
)

// Choose picks a Strategy for pred against col, in the specification's
// fixed priority order: dense positional first, then sorted binary
// search, then hash (only for a non-anti equality predicate, and only if
// hashAvailable — see ShouldUseHash), and scan as the fallback that
// always applies. An anti-equi predicate ("<>") is excluded from the hash
// path: a hash probe answers "which rows equal v" cheaply, but its
// complement is nearly the whole column, which a probe cannot produce any
// faster than a scan would.
func Choose[T column.Numeric](col *column.Column[T], pred predicate.Canonical[T], hashAvailable bool) Strategy {
	switch {
	case col.Dense && col.NonNil:
		return StrategyDense
	case col.Sorted || col.RevSorted:
		return StrategySorted
	case pred.Equi && !pred.Anti && hashAvailable:
		return StrategyHash
	default:
		return StrategyScan
	}
}
