// SPDX-License-Identifier: MIT
package scankernel

import (
	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/predicate"
)

// buildMatcher resolves pred (and whether the column is known non-nil)
// into a single closure, once, ahead of any scan loop. Which of the six
// predicate forms from the specification's test table applies never
// changes mid-scan, so the branch belongs here, not inside the loop.
func buildMatcher[T column.Numeric](pred predicate.Canonical[T], columnNonNil bool) func(T) bool {
	tl, th := pred.TL, pred.TH

	switch {
	case pred.Anti && pred.Equi:
		if columnNonNil {
			return func(v T) bool { return v != tl }
		}
		nilV := column.NilOf[T]()
		return func(v T) bool { return v != tl && v != nilV }

	case pred.Equi:
		return func(v T) bool { return v == tl }

	case pred.Anti && !columnNonNil:
		nilV := column.NilOf[T]()
		return func(v T) bool { return (v <= tl || v >= th) && v != nilV }

	case pred.Anti:
		return func(v T) bool { return v <= tl || v >= th }

	case columnNonNil && tl == predicate.MinNonNil[T]():
		return func(v T) bool { return v <= th }

	case th == predicate.MaxNonNil[T]():
		return func(v T) bool { return v >= tl }

	default:
		return func(v T) bool { return tl <= v && v <= th }
	}
}
