// SPDX-License-Identifier: MIT
// Package result implements the range-select kernel's output container
// and finalizer (kernel specification component C7): the three result
// representations a strategy may produce, and the pass that sets the
// sorted/key/dense flags and collapses a representation into its densest
// equivalent form when possible.
//
// What
//
//   - Result holds row identifiers in one of three shapes: a dense
//     (base, count) run, a concatenation of two ascending dense ranges
//     (the shape an anti predicate naturally produces against a dense or
//     sorted column), or a materialized array (the shape a scan or hash
//     probe naturally produces).
//   - Finalize marks every Result sorted and key (every kernel strategy is
//     required to emit identifiers in ascending, duplicate-free order),
//     then virtualizes: a materialized array that turns out to be
//     contiguous is rewritten to dense form and its backing array
//     discarded; a two-range result whose interior gap has zero length is
//     collapsed to a single dense range the same way.
//
// Why
//
//	A dense (base, count) pair costs 16 bytes regardless of how many rows
//	it represents; a materialized array costs 8 bytes per row. Recognizing
//	after the fact that a scan happened to produce a contiguous run is
//	strictly better than never checking.
//
// Grounding
//
//	Virtualization here mirrors the teacher's own finalize-after-build
//	passes — e.g. matrix construction settling on a flag (symmetric,
//	zero-diagonal) once the data is in, rather than tracking it
//	incrementally during construction.
package result
