// SPDX-License-Identifier: MIT
package hashindex

import "github.com/colkit/rangeselect/column"

// Build materializes a hash index over col's values and caches it on
// col.HashIndex. A second call against the same column returns the cached
// index without rescanning (idempotent, per the collaborator contract the
// kernel specification places on B's index fields).
//
// The caller holds whatever write lock protects col; Build itself performs
// no synchronization of its own.
func Build[T column.Numeric](col *column.Column[T]) (*Index[T], error) {
	if col == nil {
		return nil, ErrColumnNil
	}
	if cached, ok := col.HashIndex.(*Index[T]); ok && cached != nil {
		return cached, nil
	}

	buckets := make(map[T][]int64, estimateBucketCount(col.N))
	for p := int64(0); p < col.N; p++ {
		v := col.At(p)
		buckets[v] = append(buckets[v], p)
	}

	idx := &Index[T]{buckets: buckets, n: col.N}
	col.HashIndex = idx
	return idx, nil
}

// estimateBucketCount sizes the bucket map's initial allocation. Columns
// are frequently keys (all-distinct), so sizing for one bucket per row
// avoids rehashing in the common case without materially over-allocating
// when they are not.
func estimateBucketCount(n int64) int {
	if n <= 0 {
		return 0
	}
	if n > 1<<20 {
		return 1 << 20
	}
	return int(n)
}
