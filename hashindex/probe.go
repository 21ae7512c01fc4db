// SPDX-License-Identifier: MIT
package hashindex

import (
	"sort"

	"github.com/colkit/rangeselect/column"
)

// Probe returns every physical position whose value equals v, in ascending
// order. The slice is owned by the index; callers must not mutate it.
//
// Probe does not offset positions into row identifiers (H0 + p) — that
// composition is the caller's job, matching the (H0, physical_base) pair
// convention used throughout the kernel rather than raw pointer arithmetic.
func (idx *Index[T]) Probe(v T) []int64 {
	if idx == nil {
		return nil
	}
	return idx.buckets[v]
}

// ProbeNil returns every physical position holding the NIL sentinel for T,
// in ascending order. For integer kinds this is an ordinary Probe of the
// NIL value. For floating-point kinds NIL is NaN, which never equals
// itself as a map key, so every NaN row sits in a bucket of its own that
// Probe cannot reach; ProbeNil collects those buckets instead.
func (idx *Index[T]) ProbeNil() []int64 {
	nilV := column.NilOf[T]()
	if nilV == nilV || idx == nil {
		return idx.Probe(nilV)
	}
	var out []int64
	for k, ps := range idx.buckets {
		if k != k {
			out = append(out, ps...)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
