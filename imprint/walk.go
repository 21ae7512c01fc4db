// SPDX-License-Identifier: MIT
package imprint

// Walker yields one page at a time from an Index's dictionary, resolving
// run-length compression transparently. It is deliberately a two-level
// iterator — dictionary entry, then page within that entry's run — and
// goes no further: a caller needing to test individual rows of a page
// iterates them itself, at its own cursor, rather than have Walker flatten
// that into a single combined loop.
type Walker[T any] struct {
	dict    []DictEntry
	imps    []uint64
	pageLen int64
	n       int64

	entry      int
	withinRun  uint32
	impsCursor int
	phys       int64
}

// NewWalker returns a Walker positioned before the first page of idx.
func NewWalker[T any](idx *Index[T]) *Walker[T] {
	return &Walker[T]{
		dict:    idx.Dict,
		imps:    idx.Imps,
		pageLen: idx.PageLen,
		n:       idx.N,
	}
}

// Next advances to the next page and reports its physical start position,
// row length, and mask. ok is false once every page has been visited.
func (w *Walker[T]) Next() (phys int64, length int64, mask uint64, ok bool) {
	if w.entry >= len(w.dict) {
		return 0, 0, 0, false
	}

	e := w.dict[w.entry]
	if e.Repeat {
		mask = w.imps[w.impsCursor]
	} else {
		mask = w.imps[w.impsCursor]
		w.impsCursor++
	}

	phys = w.phys
	length = w.pageLen
	if phys+length > w.n {
		length = w.n - phys
	}
	w.phys += length

	w.withinRun++
	if w.withinRun >= e.Count {
		if e.Repeat {
			w.impsCursor++
		}
		w.entry++
		w.withinRun = 0
	}

	return phys, length, mask, true
}
