// SPDX-License-Identifier: MIT
package predicate

import "github.com/colkit/rangeselect/column"

// Predicate is the caller-facing range predicate over column values of
// kind T. TL and TH are nilable: a nil pointer means the bound is absent
// (−∞ for TL, +∞ for TH); a non-nil pointer whose value equals
// column.NilOf[T]() means the bound is the literal NIL sentinel.
//
// Equi requests a point predicate on TL, ignoring TH entirely. The
// top-level kernel.Select convenience wrapper sets Equi automatically
// when its caller omits TH and sets at least one of LI/HI, per the
// kernel entry point's documented shorthand; ThetaSelect always sets
// Equi explicitly from its operator table instead of relying on that
// shorthand, since several of its mappings (>, >=) legitimately omit TH
// without meaning "equi".
type Predicate[T column.Numeric] struct {
	TL *T
	TH *T

	// LI, HI are the low/high inclusivity flags.
	LI, HI bool

	// Equi forces a point predicate on TL regardless of TH.
	Equi bool

	// Anti requests the complement of the range, with NIL rows always
	// excluded (per the kernel specification's anti-select definition).
	Anti bool
}

// Canonical is the normalized output of Normalize: a closed range [TL,TH]
// (Empty marks a statically-known-empty result instead), with the
// outward-facing inclusivity collapsed into Anti per the invariant
// LI == HI == !Anti.
type Canonical[T column.Numeric] struct {
	TL, TH T
	LI, HI bool
	Equi   bool
	Anti   bool
	Empty  bool
}
