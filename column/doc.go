// SPDX-License-Identifier: MIT
// Package column defines the fundamental read-only data model consumed by
// the range-select kernel: a single-type column of values (B) and an
// optional sorted candidate row-id list (S).
//
// What
//
//   - Column[T] is a logical array of values of one primitive kind T,
//     described by an element count N and a head base identifier H0 such
//     that the logical row identifier of physical position p is H0+p.
//   - A Column carries flags the dispatcher consults to pick a strategy:
//     Sorted, RevSorted, Dense (values equal H0+offset, i.e. a void/identity
//     column), NonNil (no sentinel present), Key (values unique), and
//     Persistent (backed by storage durable enough to amortize building a
//     hash or imprint index against).
//   - Candidates is an optional sorted ascending row-id list, either dense
//     (base+count) or materialized ([]int64).
//
// Why
//
//   - Every strategy in the dispatcher (dense positional, sorted binary
//     search, hash probe, imprint-pruned scan) reads the same narrow set of
//     fields; centralizing them here keeps the kernel's collaborators
//     (hashindex, imprint, scankernel, dispatch) agnostic of how a column
//     is actually stored upstream.
//
// Offset design
//
//	The reference engine carries a signed physical-to-logical pointer
//	offset. This package represents that as a pair instead: H0 (the
//	logical base for physical position 0) plus, for slice views, an
//	optional Parent column and ParentOffset recording provenance. Row-id
//	arithmetic is always o = H0 + p for p the 0-based position within
//	Data — no raw pointer arithmetic is required.
//
// NIL
//
//	NIL is the per-type reserved sentinel (see NilOf / IsNil): the type's
//	minimum representable value for integer kinds, NaN for floating-point
//	kinds. A Column with NonNil=true asserts no element equals NilOf[T]().
package column
