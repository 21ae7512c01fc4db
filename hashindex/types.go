// SPDX-License-Identifier: MIT
package hashindex

import "github.com/colkit/rangeselect/column"

// Index is a value -> physical-position multimap over a single column's
// values. It answers Probe in O(1)-amortized time regardless of the
// selectivity of the probed value.
type Index[T column.Numeric] struct {
	buckets map[T][]int64
	n       int64
}

// Len returns the number of physical positions the index was built over.
func (idx *Index[T]) Len() int64 { return idx.n }

// Buckets returns the number of distinct values indexed. Exposed for the
// dispatcher's cost model and for tests; not part of the probe path.
func (idx *Index[T]) Buckets() int { return len(idx.buckets) }
