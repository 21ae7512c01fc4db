// SPDX-License-Identifier: MIT
// Package imprint implements the bitmap-per-page pruning collaborator
// consumed by the scan kernel's imprint-pruned path (kernel specification
// component C6): a K-bit representative-value histogram over fixed-size
// pages of a column, letting the scan skip or whole-copy pages without a
// per-row test.
//
// What
//
//   - Build partitions a column's value domain into K bins (K in
//     {8,16,32,64}) using quantile boundaries of the column's sorted
//     values, then computes one K-bit mask per page: bit b is set iff the
//     page contains a value falling in bin b. The page mask sequence is
//     run-length compressed into a dictionary, since real columns are
//     frequently sorted or low-cardinality and produce long runs of
//     identical masks.
//   - Mask maps a predicate's [tl, th] range to an outer mask (candidate
//     pages: may contain a match) and an inner mask (pages whose every
//     value is certain to match), via binary search on the bin boundaries.
//   - Walker exposes the dictionary-run and page-within-run levels of
//     iteration explicitly, one page at a time, so a scan kernel can
//     classify and advance by page without the caller ever materializing
//     the decompressed per-page mask array. The third level — row within a
//     page that needs a per-row test — belongs to the scan kernel itself;
//     Walker stops at the page boundary on purpose.
//
// Why
//
//	Most pages in a realistic column either wholly satisfy a range
//	predicate or wholly miss it; testing every row of such a page is pure
//	waste. The imprint turns that per-row cost into a handful of bitwise
//	tests per page, at the cost of a small, lazily-built auxiliary index.
//
// Grounding
//
//	The page/run iteration here generalizes the teacher's gridgraph
//	component grouping — which walks a grid collecting runs of cells
//	sharing a value — from a 2-D grid of cells to a 1-D sequence of page
//	masks; the derived-index-over-an-immutable-source structure otherwise
//	follows matrix.NewAdjacencyMatrix, as in hashindex.
package imprint
