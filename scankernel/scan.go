// SPDX-License-Identifier: MIT
package scankernel

import (
	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/imprint"
	"github.com/colkit/rangeselect/predicate"
)

// Scan evaluates pred against col, honoring an optional candidate
// restriction and an optional imprint index, and returns matching row
// identifiers in ascending order. cap0 seeds the result buffer's initial
// capacity (the dispatcher's upper-bound/size estimate); a non-positive
// cap0 starts from zero.
//
// Which of the four outer-loop shapes below runs is decided once, from
// whether cands and imp are nil — never re-decided per row.
func Scan[T column.Numeric](
	col *column.Column[T],
	cands *column.Candidates,
	pred predicate.Canonical[T],
	imp *imprint.Index[T],
	cap0 int64,
) ([]int64, error) {
	if col == nil {
		return nil, ErrColumnNil
	}
	if pred.Empty {
		return nil, nil
	}

	matcher := buildMatcher(pred, col.NonNil)
	buf := make([]int64, 0, max0(cap0))

	switch {
	case cands == nil && imp == nil:
		return scanPlain(col, matcher, buf), nil
	case cands != nil && imp == nil:
		return scanCandidates(col, cands, matcher, buf), nil
	case cands == nil && imp != nil:
		return scanImprint(col, imp, pred, matcher, buf), nil
	default:
		return scanCandidatesImprint(col, cands, imp, pred, matcher, buf), nil
	}
}

func max0(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// scanPlain walks every physical position of col in order.
func scanPlain[T column.Numeric](col *column.Column[T], matcher func(T) bool, buf []int64) []int64 {
	n := col.N
	for p := int64(0); p < n; p++ {
		if matcher(col.At(p)) {
			buf = growIfNeeded(buf, int64(len(buf)), p, n-p)
			buf = append(buf, col.RowID(p))
		}
	}
	return buf
}

// scanCandidates walks the candidate row-identifier list, testing the
// column value at each candidate's physical position.
func scanCandidates[T column.Numeric](col *column.Column[T], cands *column.Candidates, matcher func(T) bool, buf []int64) []int64 {
	total := cands.Len()
	for i := int64(0); i < total; i++ {
		o := cands.At(i)
		p := col.PhysicalOf(o)
		if p < 0 || p >= col.N {
			continue
		}
		if matcher(col.At(p)) {
			buf = growIfNeeded(buf, int64(len(buf)), i, total-i)
			buf = append(buf, o)
		}
	}
	return buf
}

// scanImprint walks col page by page via an imprint Walker, skipping
// pages the mask proves disjoint, copying pages it proves wholly
// contained, and falling back to a per-row test otherwise.
func scanImprint[T column.Numeric](col *column.Column[T], imp *imprint.Index[T], pred predicate.Canonical[T], matcher func(T) bool, buf []int64) []int64 {
	outer, inner := imp.Mask(pred.TL, pred.TH, pred.Anti)
	if pred.Anti && !col.NonNil {
		inner = 0 // a whole-page copy could carry NIL rows an anti predicate excludes
	}
	n := col.N
	w := imprint.NewWalker(imp)

	for {
		phys, length, mask, ok := w.Next()
		if !ok {
			break
		}
		switch {
		case mask&outer == 0:
			// disjoint: nothing in this page can match.
		case mask&^inner == 0:
			for p := phys; p < phys+length; p++ {
				buf = growIfNeeded(buf, int64(len(buf)), p, n-p)
				buf = append(buf, col.RowID(p))
			}
		default:
			for p := phys; p < phys+length; p++ {
				if matcher(col.At(p)) {
					buf = growIfNeeded(buf, int64(len(buf)), p, n-p)
					buf = append(buf, col.RowID(p))
				}
			}
		}
	}
	return buf
}

// scanCandidatesImprint walks col page by page, but within each
// non-skipped page only visits the candidates whose row identifiers fall
// in that page's range.
func scanCandidatesImprint[T column.Numeric](
	col *column.Column[T],
	cands *column.Candidates,
	imp *imprint.Index[T],
	pred predicate.Canonical[T],
	matcher func(T) bool,
	buf []int64,
) []int64 {
	outer, inner := imp.Mask(pred.TL, pred.TH, pred.Anti)
	if pred.Anti && !col.NonNil {
		inner = 0 // a whole-page copy could carry NIL rows an anti predicate excludes
	}
	total := cands.Len()
	w := imprint.NewWalker(imp)

	for {
		phys, length, mask, ok := w.Next()
		if !ok {
			break
		}
		if mask&outer == 0 {
			continue
		}

		idLo := col.RowID(phys)
		idHi := col.RowID(phys + length)
		loIdx := cands.LowerBound(idLo)
		hiIdx := cands.LowerBound(idHi)
		page := cands.Slice(loIdx, hiIdx)

		whole := mask&^inner == 0
		for i, o := range page {
			if whole {
				buf = growIfNeeded(buf, int64(len(buf)), loIdx+int64(i), total-(loIdx+int64(i)))
				buf = append(buf, o)
				continue
			}
			p := col.PhysicalOf(o)
			if matcher(col.At(p)) {
				buf = growIfNeeded(buf, int64(len(buf)), loIdx+int64(i), total-(loIdx+int64(i)))
				buf = append(buf, o)
			}
		}
	}
	return buf
}
