// SPDX-License-Identifier: MIT
package imprint

import "github.com/colkit/rangeselect/column"

// Mask maps the closed range [tl, th] to an (outer, inner) pair of K-bit
// masks: outer covers every bin the range might touch, inner covers only
// the bins every value of which is certain to lie in [tl, th]. The
// boundary bins drop out of inner whenever tl/th lands strictly inside a
// bin rather than exactly on its observed minimum/maximum.
//
// When anti is true the masks describe the complementary predicate
// (v <= tl || v >= th): the result is the normal pair complemented and
// swapped, since a page the normal predicate certainly matches in full
// certainly contributes nothing to its negation, and vice versa. Because
// that predicate also matches tl and th themselves, the bins holding them
// are first dropped from the normal inner mask, so a page of boundary
// values is never skipped.
func (idx *Index[T]) Mask(tl, th T, anti bool) (outer, inner uint64) {
	if len(idx.Bins) == 0 {
		return 0, 0
	}
	bl := idx.bin(tl)
	bh := idx.bin(th)

	outer = onesRange(bl, bh, idx.K)
	inner = outer
	if idx.Stats[bl].Min != tl {
		inner &^= uint64(1) << uint(bl)
	}
	if idx.Stats[bh].Max != th {
		inner &^= uint64(1) << uint(bh)
	}

	if anti {
		inner &^= uint64(1)<<uint(bl) | uint64(1)<<uint(bh)
		return (^inner) & fullMask(idx.K), (^outer) & fullMask(idx.K)
	}
	return outer, inner
}

// Overlaps reports whether the predicate's range can possibly intersect
// this index's observed value domain at all, using only the per-bin
// min/max stats — the preliminary whole-column rejection test.
func (idx *Index[T]) Overlaps(tl, th T) bool {
	if len(idx.Stats) == 0 {
		return false
	}
	lo := column.NilOf[T]()
	hi := column.NilOf[T]()
	found := false
	for _, s := range idx.Stats {
		if s.Count == 0 {
			continue
		}
		if !found {
			lo, hi = s.Min, s.Max
			found = true
			continue
		}
		if s.Min < lo {
			lo = s.Min
		}
		if s.Max > hi {
			hi = s.Max
		}
	}
	if !found {
		return false
	}
	return tl <= hi && th >= lo
}
