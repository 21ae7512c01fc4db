// SPDX-License-Identifier: MIT
// Package hashindex implements the hash collaborator consumed by the
// dispatcher's equality path (kernel specification component C4): an
// idempotent, synchronous build of a value -> physical-position multimap,
// and a probe operation the dispatcher intersects against any candidate
// list.
//
// What
//
//   - Build materializes a hash index over a column's values, bucketed by
//     a Go built-in hash of the value's bit pattern. It caches the result
//     on column.Column.HashIndex, so repeated calls for the same column
//     are free after the first (idempotent, per the collaborator
//     interface in the kernel specification's §6).
//   - Probe returns every physical position whose value equals v.
//
// Why
//
//	A hash probe turns an O(N) equality scan into an O(1)-amortized
//	lookup, which the dispatcher's cost model (see package dispatch)
//	weighs against scan cost using a deterministic selectivity estimate
//	before committing to building one.
//
// Grounding
//
//	Structured the way the teacher library derives a read-only view from
//	core.Graph (matrix.NewAdjacencyMatrix): a pure function from an
//	immutable source to a derived index, with its own sentinel errors and
//	doc-driven usage examples — adapted here from a vertex/edge adjacency
//	view to a value/physical-position view.
package hashindex
