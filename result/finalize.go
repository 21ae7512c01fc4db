// SPDX-License-Identifier: MIT
package result

// Finalize sets r's invariant flags (sorted, key, and dense iff the final
// Kind is KindDense) and
// virtualizes its representation: a materialized array that happens to be
// contiguous is rewritten to KindDense; a two-range result whose interior
// gap has zero length collapses to KindDense the same way. Every kernel
// strategy is required to hand Finalize identifiers already in ascending,
// duplicate-free order — Finalize trusts that invariant, it does not
// re-sort or de-duplicate.
func Finalize(r *Result) {
	switch r.Kind {
	case KindTwoRange:
		collapseTwoRange(r)
	case KindMaterialized:
		collapseMaterialized(r)
	}

	r.Sorted = true
	r.Key = true
	r.Dense = r.Kind == KindDense
}

// collapseTwoRange rewrites r to KindDense when either range is empty or
// the two ranges are contiguous.
func collapseTwoRange(r *Result) {
	r0, r1 := r.Ranges[0], r.Ranges[1]
	switch {
	case r0.Count == 0 && r1.Count == 0:
		r.Kind = KindDense
		r.Base, r.Count = 0, 0
	case r0.Count == 0:
		r.Kind = KindDense
		r.Base, r.Count = r1.Base, r1.Count
	case r1.Count == 0:
		r.Kind = KindDense
		r.Base, r.Count = r0.Base, r0.Count
	case r1.Base == r0.Base+r0.Count:
		r.Kind = KindDense
		r.Base, r.Count = r0.Base, r0.Count+r1.Count
	}
}

// collapseMaterialized rewrites r to KindDense when Extra forms a
// contiguous ascending run, discarding the backing array.
func collapseMaterialized(r *Result) {
	n := len(r.Extra)
	if n == 0 {
		r.Kind = KindDense
		r.Base, r.Count = 0, 0
		return
	}
	first, last := r.Extra[0], r.Extra[n-1]
	if last-first+1 == int64(n) {
		r.Kind = KindDense
		r.Base, r.Count = first, int64(n)
		r.Extra = nil
	}
}
