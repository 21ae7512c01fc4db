// SPDX-License-Identifier: MIT
// Package kernel is the top-level entry point of the range-select kernel:
// Select and ThetaSelect wire the normalizer, strategy dispatcher,
// dense/sorted emitter, hash probe, typed scan kernel, and result
// finalizer into the two public calls a caller actually makes.
//
// What
//
//   - Select normalizes a caller's Predicate (C1), picks a strategy (C2),
//     and delegates to the dense emitter, sorted emitter, hash probe, or
//     scan kernel (C3/C4/C5, optionally pruned by an imprint index, C6),
//     finalizing whatever representation the chosen path produced (C7).
//   - ThetaSelect adapts a single value and a comparison operator string
//     into the Predicate Select expects, per the operator mapping table
//     the kernel specification fixes.
//   - Options expose the collaborator hooks the specification's
//     concurrency model calls for: a caller may hand in an
//     already-built hash or imprint index (skipping a lazy build) or a
//     trace.Sink to observe strategy/collaborator-build decisions.
//
// Why
//
//	No single algorithm answers every column shape well, so the actual
//	work is picking the right one from cheap metadata and producing its
//	answer in whichever representation is cheapest to materialize — the
//	point of every other package in this module. kernel is the thin
//	seam that composes them in the fixed order the specification
//	requires and exposes nothing else.
//
// Grounding
//
//	Mirrors the teacher's dijkstra.Dijkstra: the one exported entry
//	point of a package whose real work lives in smaller collaborators
//	(here: predicate, dispatch, hashindex, imprint, scankernel, result),
//	resolving functional options once up front and then delegating.
package kernel
