// SPDX-License-Identifier: MIT
package imprint

import (
	"sort"

	"github.com/colkit/rangeselect/column"
)

// Build materializes an imprint index over col's values and caches it on
// col.ImprintIndex. A second call against the same column, with the same
// or no options, returns the cached index without rescanning.
//
// The caller holds whatever write lock protects col; Build itself performs
// no synchronization of its own.
func Build[T column.Numeric](col *column.Column[T], opts ...Option) (*Index[T], error) {
	if col == nil {
		return nil, ErrColumnNil
	}
	if cached, ok := col.ImprintIndex.(*Index[T]); ok && cached != nil {
		return cached, nil
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if !validK(cfg.k) {
		return nil, ErrInvalidK
	}

	pageLen := pageLenFor[T](cfg.pageBytes)
	n := col.N
	if n == 0 {
		idx := &Index[T]{K: cfg.k, PageLen: pageLen, N: 0}
		col.ImprintIndex = idx
		return idx, nil
	}

	sortedVals := make([]T, n)
	for p := int64(0); p < n; p++ {
		sortedVals[p] = col.At(p)
	}
	sort.Slice(sortedVals, func(i, j int) bool { return sortedVals[i] < sortedVals[j] })

	bins := quantileBins(sortedVals, cfg.k)
	stats := make([]BinStats[T], cfg.k)

	totalPages := (n + pageLen - 1) / pageLen
	rawMasks := make([]uint64, totalPages)

	for page := int64(0); page < totalPages; page++ {
		start := page * pageLen
		end := start + pageLen
		if end > n {
			end = n
		}
		var m uint64
		for p := start; p < end; p++ {
			v := col.At(p)
			b := binOf(bins, v)
			if stats[b].Count == 0 {
				stats[b].Min = v
				stats[b].Max = v
			} else {
				if v < stats[b].Min {
					stats[b].Min = v
				}
				if v > stats[b].Max {
					stats[b].Max = v
				}
			}
			stats[b].Count++
			m |= uint64(1) << uint(b)
		}
		rawMasks[page] = m
	}

	dict, imps := rleEncode(rawMasks)

	idx := &Index[T]{
		Bins:    bins,
		Imps:    imps,
		Dict:    dict,
		Stats:   stats,
		K:       cfg.k,
		PageLen: pageLen,
		N:       n,
	}
	col.ImprintIndex = idx
	return idx, nil
}

// quantileBins picks k ascending representative values from sortedVals,
// evenly spaced by rank. With fewer distinct ranks than k, later bins
// repeat the last value; repeated bin boundaries are harmless since bin
// lookup only needs a non-decreasing sequence.
func quantileBins[T column.Numeric](sortedVals []T, k int) []T {
	bins := make([]T, k)
	m := len(sortedVals)
	if k == 1 {
		bins[0] = sortedVals[0]
		return bins
	}
	for i := 0; i < k; i++ {
		rank := i * (m - 1) / (k - 1)
		bins[i] = sortedVals[rank]
	}
	return bins
}

// binOf finds the bin index of v against an already-built Bins slice,
// shared by Build (no Index yet exists) and Index.bin (after it does).
func binOf[T column.Numeric](bins []T, v T) int {
	lo, hi := 0, len(bins)-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if bins[mid] <= v {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

// rleEncode compresses a sequence of per-page masks into a run-length
// dictionary: maximal runs of length > 1 with an identical mask become one
// Repeat entry storing that single mask; maximal runs of pairwise-distinct
// adjacent masks become one non-repeat entry storing each page's mask.
func rleEncode(masks []uint64) ([]DictEntry, []uint64) {
	var dict []DictEntry
	var imps []uint64

	i := 0
	for i < len(masks) {
		j := i + 1
		for j < len(masks) && masks[j] == masks[i] {
			j++
		}
		if j-i > 1 {
			dict = append(dict, DictEntry{Repeat: true, Count: uint32(j - i)})
			imps = append(imps, masks[i])
			i = j
			continue
		}

		k := i
		for k < len(masks) {
			if k+1 < len(masks) && masks[k] == masks[k+1] {
				break
			}
			k++
		}
		dict = append(dict, DictEntry{Repeat: false, Count: uint32(k - i)})
		imps = append(imps, masks[i:k]...)
		i = k
	}

	return dict, imps
}

// pageLenFor returns the number of T-typed elements per imprint page for
// the given page size in bytes, floored at 1 element.
func pageLenFor[T column.Numeric](pageBytes int) int64 {
	n := pageBytes / column.ElemSize[T]()
	if n < 1 {
		n = 1
	}
	return int64(n)
}
