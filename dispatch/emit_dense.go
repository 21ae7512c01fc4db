// SPDX-License-Identifier: MIT
package dispatch

import (
	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/predicate"
	"github.com/colkit/rangeselect/result"
)

// EmitDense answers pred against a dense, non-nil column without reading a
// single value: because the value at physical position p is always H0+p,
// the matching row-id interval is pure arithmetic on pred's bounds.
//
// low = max(0, tl-H0 + (li ? 0 : 1)), high = min(N, th-H0 + (hi ? 1 : 0))
// emits [low, high) for a normal predicate, or [0, low) ∪ [high, N) for an
// anti one; either is then intersected with cands via binary search.
//
// An anti-equi predicate (Equi && Anti, "<>") is the single position tl-H0
// excluded from the column, handled separately since it carries no usable
// [tl,th] core for the arithmetic above.
func EmitDense[T column.Numeric](col *column.Column[T], cands *column.Candidates, pred predicate.Canonical[T]) (*result.Result, error) {
	if col == nil {
		return nil, ErrColumnNil
	}
	if pred.Empty {
		res := result.NewDense(0, 0)
		result.Finalize(res)
		return res, nil
	}

	h0, n := col.H0, col.N

	if pred.Equi && pred.Anti {
		pos := int64(pred.TL) - h0
		if pos < 0 || pos >= n {
			res := intersectRowRange(h0, h0+n, cands)
			result.Finalize(res)
			return res, nil
		}
		before := intersectRowRange(h0, h0+pos, cands)
		after := intersectRowRange(h0+pos+1, h0+n, cands)
		res := combineDisjointBefore(before, after)
		result.Finalize(res)
		return res, nil
	}

	liOff := int64(1)
	if pred.LI {
		liOff = 0
	}
	hiOff := int64(0)
	if pred.HI {
		hiOff = 1
	}

	// An unconstrained bound (the type's non-NIL min/max, substituted by
	// Normalize when the caller gave none) maps to position 0 or N
	// directly: going through the tl/th arithmetic below for these would
	// risk overflow converting a type-extremal T to int64, particularly
	// for wide unsigned kinds. The same holds for an anti predicate whose
	// low bound is NIL (no value lies at or below it): low is 0.
	var low, high int64
	if pred.LI && pred.TL == predicate.MinNonNil[T]() {
		low = 0
	} else if pred.Anti && column.IsNil(pred.TL) {
		low = 0 // an anti predicate's absent low bound: nothing matches below
	} else {
		low = int64(pred.TL) - h0 + liOff
	}
	if pred.HI && pred.TH == predicate.MaxNonNil[T]() {
		high = n
	} else {
		high = int64(pred.TH) - h0 + hiOff
	}
	if low < 0 {
		low = 0
	}
	if low > n {
		low = n
	}
	if high < 0 {
		high = 0
	}
	if high > n {
		high = n
	}

	var res *result.Result
	if pred.Anti {
		if high < low {
			high = low
		}
		before := intersectRowRange(h0, h0+low, cands)
		after := intersectRowRange(h0+high, h0+n, cands)
		res = combineDisjointBefore(before, after)
	} else {
		if high < low {
			high = low
		}
		res = intersectRowRange(h0+low, h0+high, cands)
	}

	result.Finalize(res)
	return res, nil
}
