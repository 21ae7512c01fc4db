// SPDX-License-Identifier: MIT
package column

import "sort"

// Candidates is an optional, sorted-ascending row-identifier list. It is
// represented either densely (a contiguous run, Base..Base+Count) or
// materialized (an explicit slice). Both representations are always
// treated as sorted and duplicate-free by the kernel.
type Candidates struct {
	// Dense, when true, means the candidate set is the contiguous range
	// [Base, Base+Count). When false, Ids holds the materialized,
	// strictly ascending identifier list.
	Dense bool
	Base  int64
	Count int64
	Ids   []int64
}

// NewDenseCandidates builds a dense candidate run [base, base+count).
func NewDenseCandidates(base, count int64) *Candidates {
	return &Candidates{Dense: true, Base: base, Count: count}
}

// NewCandidates builds a materialized candidate list from ids, which must
// already be strictly ascending; it is not copied or re-sorted. Returns
// ErrCandidatesUnsorted if ids is not strictly ascending.
func NewCandidates(ids []int64) (*Candidates, error) {
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return nil, ErrCandidatesUnsorted
		}
	}
	return &Candidates{Ids: ids}, nil
}

// Len returns the number of candidate row identifiers.
func (s *Candidates) Len() int64 {
	if s == nil {
		return 0
	}
	if s.Dense {
		return s.Count
	}
	return int64(len(s.Ids))
}

// At returns the i'th candidate identifier (0 <= i < Len()).
func (s *Candidates) At(i int64) int64 {
	if s.Dense {
		return s.Base + i
	}
	return s.Ids[i]
}

// First returns the smallest candidate identifier. Len() must be > 0.
func (s *Candidates) First() int64 { return s.At(0) }

// Last returns the largest candidate identifier. Len() must be > 0.
func (s *Candidates) Last() int64 { return s.At(s.Len() - 1) }

// Contains reports whether o is present in the candidate set, via
// arithmetic for the dense representation or binary search for the
// materialized one.
func (s *Candidates) Contains(o int64) bool {
	if s == nil {
		return true // no candidate restriction means everything qualifies
	}
	if s.Dense {
		return o >= s.Base && o < s.Base+s.Count
	}
	i := sort.Search(len(s.Ids), func(i int) bool { return s.Ids[i] >= o })
	return i < len(s.Ids) && s.Ids[i] == o
}

// LowerBound returns the index of the first candidate >= o (len(Ids)-style
// index; for Dense sets it returns the position within the conceptual
// Count-length sequence, clamped to [0, Count]).
func (s *Candidates) LowerBound(o int64) int64 {
	if s.Dense {
		switch {
		case o <= s.Base:
			return 0
		case o >= s.Base+s.Count:
			return s.Count
		default:
			return o - s.Base
		}
	}
	return int64(sort.Search(len(s.Ids), func(i int) bool { return s.Ids[i] >= o }))
}

// UpperBound returns the index of the first candidate > o.
func (s *Candidates) UpperBound(o int64) int64 {
	if s.Dense {
		switch {
		case o < s.Base:
			return 0
		case o >= s.Base+s.Count-1:
			return s.Count
		default:
			return o - s.Base + 1
		}
	}
	return int64(sort.Search(len(s.Ids), func(i int) bool { return s.Ids[i] > o }))
}

// Slice returns the sub-range of candidates with index in [lo, hi),
// materialized as a plain []int64. Used by the dense/sorted emitter to
// intersect an identifier interval against S.
func (s *Candidates) Slice(lo, hi int64) []int64 {
	if lo < 0 {
		lo = 0
	}
	if hi > s.Len() {
		hi = s.Len()
	}
	if lo >= hi {
		return nil
	}
	if s.Dense {
		out := make([]int64, hi-lo)
		for i := range out {
			out[i] = s.Base + lo + int64(i)
		}
		return out
	}
	return s.Ids[lo:hi]
}
