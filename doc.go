// Package rangeselect implements the range-select kernel of a
// column-oriented analytical engine: given one column, an optional sorted
// candidate row-identifier list, and a range predicate, it returns the
// matching row identifiers in ascending order, in whichever of three
// representations (dense run, two-range, or materialized list) is
// cheapest to produce.
//
// The hard part is not the public API — it is picking the right
// algorithm for a given column's shape and a given predicate's form, and
// specializing that algorithm's inner loop per primitive type instead of
// paying for a virtual comparator on every row. Four strategies exist:
//
//	dense    — positional arithmetic against an identity column, no value
//	           ever read
//	sorted   — binary search against a sorted or reverse-sorted column
//	hash     — a hash probe, for a rare equality lookup on a persistent
//	           column
//	scan     — a linear pass, optionally pruned page-by-page by a bitmap
//	           imprint index
//
// Surrounding functionality — column storage itself, query planning, and
// every relational operator other than range-select — is out of scope;
// this module consumes a column as a collaborator with the narrow
// interface kernel.Select and kernel.ThetaSelect expose.
//
// Package layout:
//
//	column/     — the Column[T]/Candidates data model and the NIL sentinel
//	              convention
//	predicate/  — the range normalizer: caller-facing Predicate[T] to
//	              canonical closed-range form
//	hashindex/  — the hash collaborator: value-to-position multimap and probe
//	imprint/    — the bitmap-per-page collaborator: quantile-binned masks
//	              and a page-boundary walker
//	scankernel/ — the typed linear scan, branch-before-the-loop on
//	              candidates/imprint/anti/nonnil
//	dispatch/   — the strategy chooser, selectivity estimator, and
//	              dense/sorted emitters
//	result/     — the three-shape result container and its finalizer
//	kernel/     — Select and ThetaSelect, the two calls a caller makes
//
//	go get github.com/colkit/rangeselect
package rangeselect
