// SPDX-License-Identifier: MIT
package predicate

import "github.com/colkit/rangeselect/column"

// Normalize rewrites p into canonical closed-range form, given whether the
// target column is known to contain no NIL values (columnNonNil). It never
// fails for well-formed predicates; every statically-empty case is
// reported via Canonical.Empty rather than an error.
//
// Rules applied, in order (kernel specification §4.1):
//
//  1. lval/hval are derived from whether TL/TH are non-nil pointers.
//     A missing bound is substituted with the type's minimum/maximum
//     non-NIL value.
//  2. p.Equi forces a point predicate: th := tl. Requires LI && HI, else
//     Empty (a point predicate open on either side can never match).
//  3. equi && column is NonNil && TL == NilOf[T]() => Empty (a NIL
//     literal can never match a column asserted to hold no NILs).
//  4. For non-equi, non-anti predicates, exclusive bounds are shifted
//     inward one step (prev/next) so every bound becomes inclusive. An
//     overflowing step (no valid value further in that direction) forces
//     Empty.
//  5. A non-equi anti predicate excludes the core [tl,th] it would
//     otherwise select, so its bounds describe that core's OPEN edge
//     instead: an inclusive edge (or a missing one, vacuously inclusive)
//     steps outward via prev/next. A step that runs off the type's
//     ceiling means the high side excludes nothing, so the predicate
//     degenerates into a plain range driven by the low bound alone (and
//     symmetrically the reserved NIL sentinel already gives the low side
//     a free "excludes nothing" value, so no matching degenerate case
//     exists there).
//  6. lval && hval && tl > th => Empty.
func Normalize[T column.Numeric](p Predicate[T], columnNonNil bool) (Canonical[T], error) {
	lval := p.TL != nil
	hval := p.TH != nil

	tl := minNonNil[T]()
	if lval {
		tl = *p.TL
	}
	th := maxNonNil[T]()
	if hval {
		th = *p.TH
	}

	if p.Equi {
		th = tl
		if !(p.LI && p.HI) {
			return Canonical[T]{Empty: true}, nil
		}
		if columnNonNil && column.IsNil(tl) {
			return Canonical[T]{Empty: true}, nil
		}
	} else if p.Anti {
		return normalizeAnti(p, tl, th, lval, hval)
	} else {
		if lval && !p.LI {
			var overflow bool
			tl, overflow = next(tl)
			if overflow {
				return Canonical[T]{Empty: true}, nil
			}
		}
		if hval && !p.HI {
			var underflow bool
			th, underflow = prev(th)
			if underflow {
				return Canonical[T]{Empty: true}, nil
			}
		}
	}

	if lval && hval && tl > th {
		return Canonical[T]{Empty: true}, nil
	}

	return Canonical[T]{
		TL:   tl,
		TH:   th,
		LI:   !p.Anti,
		HI:   !p.Anti,
		Equi: p.Equi,
		Anti: p.Anti,
	}, nil
}

// normalizeAnti handles the non-equi anti branch of Normalize: tl/th here
// are already defaulted to the type's non-NIL min/max for a missing bound,
// but not yet shifted.
func normalizeAnti[T column.Numeric](p Predicate[T], tl, th T, lval, hval bool) (Canonical[T], error) {
	if !lval && !hval {
		// No constraint at all: the core is every non-NIL value, and an
		// anti predicate never selects NIL, so nothing survives.
		return Canonical[T]{Empty: true}, nil
	}

	origTL := tl

	if !lval || p.LI {
		var underflow bool
		tl, underflow = prev(tl)
		if underflow {
			return Canonical[T]{Empty: true}, nil
		}
	}

	if !hval || p.HI {
		var overflow bool
		th, overflow = next(th)
		if overflow {
			newTH := origTL
			if p.LI {
				var underflow bool
				newTH, underflow = prev(origTL)
				if underflow {
					return Canonical[T]{Empty: true}, nil
				}
			}
			newTL := minNonNil[T]()
			if newTL > newTH {
				return Canonical[T]{Empty: true}, nil
			}
			return Canonical[T]{TL: newTL, TH: newTH, LI: true, HI: true}, nil
		}
	}

	return Canonical[T]{TL: tl, TH: th, Anti: true}, nil
}
