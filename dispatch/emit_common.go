// SPDX-License-Identifier: MIT
package dispatch

import (
	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/result"
)

// intersectRowRange answers the half-open row-identifier interval [lo, hi)
// restricted to cands, without ever testing a column value: a nil cands
// passes the interval through untouched, a dense cands collapses to
// arithmetic, and a materialized cands is sliced out via binary search on
// its sorted identifier list.
func intersectRowRange(lo, hi int64, cands *column.Candidates) *result.Result {
	if hi < lo {
		hi = lo
	}
	if cands == nil {
		return result.NewDense(lo, hi-lo)
	}
	if cands.Dense {
		base, count := cands.Base, cands.Count
		rlo, rhi := lo, hi
		if base > rlo {
			rlo = base
		}
		if base+count < rhi {
			rhi = base + count
		}
		if rhi < rlo {
			rhi = rlo
		}
		return result.NewDense(rlo, rhi-rlo)
	}
	idxLo := cands.LowerBound(lo)
	idxHi := cands.LowerBound(hi)
	return result.NewMaterialized(cands.Slice(idxLo, idxHi))
}

// combineDisjointBefore merges two results that answer disjoint row-id
// sub-ranges of an anti predicate, a entirely preceding b. When both sides
// are dense it yields a two-range result; otherwise it concatenates their
// materialized identifier lists, which remain ascending because a's ids all
// precede b's.
func combineDisjointBefore(a, b *result.Result) *result.Result {
	if a.Kind == result.KindDense && b.Kind == result.KindDense {
		return result.NewTwoRange(
			result.Range{Base: a.Base, Count: a.Count},
			result.Range{Base: b.Base, Count: b.Count},
		)
	}
	ids := make([]int64, 0, len(a.Ids())+len(b.Ids()))
	ids = append(ids, a.Ids()...)
	ids = append(ids, b.Ids()...)
	return result.NewMaterialized(ids)
}
