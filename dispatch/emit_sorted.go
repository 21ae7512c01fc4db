// SPDX-License-Identifier: MIT
package dispatch

import (
	"sort"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/predicate"
	"github.com/colkit/rangeselect/result"
)

// EmitSorted answers pred against a sorted or reverse-sorted column via
// binary search instead of a linear scan. It locates the physical interval
// [loIdx, hiIdx) bounded by tl/th with inclusivity taken from LI/HI — the
// match set itself for a non-anti predicate (LI==HI==true), or its open
// complement for an anti one (LI==HI==false) — then intersects the
// corresponding row-id interval(s) with cands.
//
// A column's NIL entries (column.NilOf[T]()) sort to the low end in
// ascending order and the high end in descending order; since Canonical's
// tl/th already default to the type's non-NIL min/max (predicate.MinNonNil,
// predicate.MaxNonNil) whenever a bound is unconstrained, the binary search
// naturally excludes that NIL prefix or suffix without any extra check. An
// anti predicate's complement intervals would reach into it, so on a column
// not marked NonNil they are clipped to the non-NIL positions explicitly.
//
// An anti-equi predicate (Equi && Anti, "<>") excludes the equal-range of
// tl rather than a [tl,th] core, so it is located and complemented
// separately below.
func EmitSorted[T column.Numeric](col *column.Column[T], cands *column.Candidates, pred predicate.Canonical[T]) (*result.Result, error) {
	if col == nil {
		return nil, ErrColumnNil
	}
	if pred.Empty {
		res := result.NewDense(0, 0)
		result.Finalize(res)
		return res, nil
	}

	h0, n := col.H0, col.N
	data := col.Data

	// An anti predicate never selects NIL: its complement stops short of
	// the NIL prefix (ascending) or suffix (descending).
	validLo, validHi := int64(0), n
	if pred.Anti && !col.NonNil && col.RevSorted {
		validHi = int64(sort.Search(int(n), func(p int) bool { return column.IsNil(data[p]) }))
	} else if pred.Anti && !col.NonNil {
		validLo = int64(sort.Search(int(n), func(p int) bool { return !column.IsNil(data[p]) }))
	}

	if pred.Equi && pred.Anti {
		// Equal-range of pred.TL: [startEq, endEq). Everything outside it
		// matches; the equal block itself is the single excluded value.
		var startEq, endEq int64
		if col.RevSorted {
			startEq = int64(sort.Search(int(n), func(p int) bool { return data[p] <= pred.TL }))
			endEq = int64(sort.Search(int(n), func(p int) bool { return data[p] < pred.TL }))
		} else {
			startEq = int64(sort.Search(int(n), func(p int) bool { return data[p] >= pred.TL }))
			endEq = int64(sort.Search(int(n), func(p int) bool { return data[p] > pred.TL }))
		}
		before := intersectRowRange(h0+validLo, h0+startEq, cands)
		after := intersectRowRange(h0+endEq, h0+validHi, cands)
		res := combineDisjointBefore(before, after)
		result.Finalize(res)
		return res, nil
	}

	// core is the region satisfying "tl (< or <=) v (< or <=) th" per LI/HI:
	// the canonical invariant LI==HI==!Anti makes this the match set itself
	// for a non-anti predicate, or exactly the complement of the anti match
	// set (so a closed tl/th becomes the open core an anti predicate needs).
	var loIdx, hiIdx int64
	if col.RevSorted {
		loIdx = int64(sort.Search(int(n), func(p int) bool {
			if pred.HI {
				return data[p] <= pred.TH
			}
			return data[p] < pred.TH
		}))
		hiIdx = int64(sort.Search(int(n), func(p int) bool {
			if pred.LI {
				return data[p] < pred.TL
			}
			return data[p] <= pred.TL
		}))
	} else {
		loIdx = int64(sort.Search(int(n), func(p int) bool {
			if pred.LI {
				return data[p] >= pred.TL
			}
			return data[p] > pred.TL
		}))
		hiIdx = int64(sort.Search(int(n), func(p int) bool {
			if pred.HI {
				return data[p] > pred.TH
			}
			return data[p] >= pred.TH
		}))
	}
	if hiIdx < loIdx {
		hiIdx = loIdx
	}

	var res *result.Result
	if pred.Anti {
		before := intersectRowRange(h0+validLo, h0+loIdx, cands)
		after := intersectRowRange(h0+hiIdx, h0+validHi, cands)
		res = combineDisjointBefore(before, after)
	} else {
		res = intersectRowRange(h0+loIdx, h0+hiIdx, cands)
	}

	result.Finalize(res)
	return res, nil
}
