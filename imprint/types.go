// SPDX-License-Identifier: MIT
package imprint

import "github.com/colkit/rangeselect/column"

// DictEntry is one run-length entry in an Index's mask dictionary. A
// Repeat entry spans Count consecutive pages sharing a single stored mask;
// a non-repeat entry spans Count consecutive pages each with its own
// stored mask.
type DictEntry struct {
	Repeat bool
	Count  uint32
}

// BinStats holds the observed minimum, maximum, and population of one bin.
type BinStats[T column.Numeric] struct {
	Min   T
	Max   T
	Count int64
}

// Index is a K-bit-per-page histogram over a column's values, partitioned
// by quantile boundaries (Bins) of the column's sorted value domain.
type Index[T column.Numeric] struct {
	// Bins holds K ascending representative values; Bins[i] is the lower
	// boundary of bin i.
	Bins []T
	// Imps holds the stored masks: a Repeat entry contributes exactly one
	// mask regardless of its run length; a non-repeat entry contributes one
	// mask per page in its run.
	Imps []uint64
	// Dict is the run-length-compressed sequence of per-page masks.
	Dict []DictEntry
	// Stats holds the observed min/max/count of each bin.
	Stats []BinStats[T]

	K       int
	PageLen int64
	N       int64
}

// bin returns the index of the rightmost bin whose representative value is
// <= v, clamped to [0, K-1]. Values below Bins[0] are clamped to bin 0.
func (idx *Index[T]) bin(v T) int {
	return binOf(idx.Bins, v)
}

func fullMask(k int) uint64 {
	if k >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(k)) - 1
}

func onesRange(lo, hi, k int) uint64 {
	if lo > hi {
		return 0
	}
	width := hi - lo + 1
	var run uint64
	if width >= 64 {
		run = ^uint64(0)
	} else {
		run = (uint64(1) << uint(width)) - 1
	}
	m := run << uint(lo)
	return m & fullMask(k)
}
