// SPDX-License-Identifier: MIT
// Package predicate implements the range normalizer (the kernel
// specification's component C1): it rewrites the 8-dimensional predicate
// space (low bound, high bound, low-inclusive, high-inclusive, low-valid,
// high-valid, equi, anti) into a canonical closed-range form that every
// downstream strategy (dense positional, sorted binary search, hash probe,
// imprint-pruned scan) can consume without re-deriving inclusivity.
//
// What
//
//   - Predicate[T] is the caller-facing, possibly-open predicate: TL and
//     TH are both optional, nilable pointers, because "no bound on this
//     side" (−∞/+∞) must be distinguishable from "bound against the
//     literal NIL sentinel value".
//   - Canonical[T] is the normalized output: TL <= TH, LI == HI == !Anti,
//     or Empty == true for any of the degenerate early-exit patterns the
//     specification enumerates.
//
// Why
//
//	For integer kinds, exclusive bounds are rewritten to inclusive ones by
//	stepping the boundary value: x < v is the same predicate as x <= prev(v),
//	and x > v the same as x >= next(v). For floating-point kinds, prev/next
//	are the adjacent representable value toward −∞/+∞ (math.Nextafter).
//	Doing this once, here, means C3/C4/C5 never need to branch on
//	inclusivity flags again — only on Anti and Equi.
//
// Failure
//
//	Normalize never returns a non-nil error: every degenerate pattern is
//	represented as Canonical.Empty rather than an error.
package predicate
