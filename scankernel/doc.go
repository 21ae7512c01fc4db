// SPDX-License-Identifier: MIT
// Package scankernel implements the type-monomorphized linear scan
// (kernel specification component C5): the fallback strategy used when
// neither dense positional arithmetic, sorted binary search, nor a hash
// probe applies, with an optional imprint-pruned sub-path.
//
// What
//
//   - Scan walks a column's physical positions (or, if a candidate list
//     is given, the candidate list's row identifiers), testing each value
//     against a canonical predicate and appending matches to a growing
//     result buffer.
//   - When an imprint index is supplied, Scan walks pages instead of rows:
//     pages the predicate's mask proves disjoint from are skipped
//     entirely, pages it proves wholly contained are copied without a
//     per-row test, and only the remainder get the row-by-row test.
//   - The four decision axes the specification calls out — whether
//     candidates are present, whether an imprint index is present,
//     whether the predicate is anti, whether the column is known non-nil
//     — are all resolved once, before any loop starts. No iteration of
//     the hot loop branches on them again.
//
// Why
//
//	A linear scan's only lever is how much per-row work it avoids; moving
//	every branch that doesn't change per-row is the difference between an
//	auto-vectorizable loop and one that isn't.
//
// Grounding
//
//	The decision-axes-outside-the-loop discipline mirrors the teacher's
//	own BFS/DFS traversal kernels, which resolve their visitor and filter
//	hooks once before entering the traversal loop rather than dispatching
//	on configuration per step.
package scankernel
