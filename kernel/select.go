// SPDX-License-Identifier: MIT
package kernel

import (
	"fmt"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/dispatch"
	"github.com/colkit/rangeselect/hashindex"
	"github.com/colkit/rangeselect/imprint"
	"github.com/colkit/rangeselect/internal/trace"
	"github.com/colkit/rangeselect/predicate"
	"github.com/colkit/rangeselect/result"
	"github.com/colkit/rangeselect/scankernel"
)

// Select answers p against col, restricted to cands if non-nil, choosing
// among the dense, sorted, hash, and scan strategies per the
// specification's fixed priority order and returning the answer in
// whichever representation is cheapest (dense run, two-range, or a
// materialized identifier list).
//
// A predicate that is statically empty (e.g. tl > th after normalization)
// is a success, not an error: it returns a properly-shaped empty result.
//
// Per the specification's boundary table, a one-sided predicate with no
// TH, Equi left unset, and at least one of LI/HI set is shorthand for an
// equi-select on TL: Select derives Equi in that case before normalizing.
// ThetaSelect builds its own Equi/Anti/LI/HI combinations explicitly
// (including ">" and ">="
// predicates that are one-sided without being equi) and so bypasses this
// derivation by calling selectNormalized directly.
func Select[T column.Numeric](col *column.Column[T], cands *column.Candidates, p predicate.Predicate[T], opts ...Option) (*result.Result, error) {
	if p.TH == nil && p.TL != nil && !p.Equi && (p.LI || p.HI) {
		p.Equi, p.LI, p.HI = true, true, true
	}
	return selectNormalized(col, cands, p, opts...)
}

// selectNormalized is Select's implementation without the TH==nil=>Equi
// shorthand, used directly by callers (ThetaSelect) that already derive
// their own canonical LI/HI/Equi/Anti combination.
func selectNormalized[T column.Numeric](col *column.Column[T], cands *column.Candidates, p predicate.Predicate[T], opts ...Option) (*result.Result, error) {
	if col == nil {
		return nil, fmt.Errorf("%w: column is nil", ErrInvalidArgument)
	}
	if err := validateCandidates(cands); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	canon, err := predicate.Normalize(p, col.NonNil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if canon.Empty {
		res := result.NewDense(0, 0)
		result.Finalize(res)
		return res, nil
	}

	hashIdx, _ := cfg.hashIndex.(*hashindex.Index[T])
	hashAvailable := dispatch.ShouldUseHash(col, canon, hashIdx != nil)
	strategy := dispatch.Choose(col, canon, hashAvailable)
	cfg.trace.Trace(trace.EventStrategyChosen, map[string]any{"strategy": strategy.String()})

	switch strategy {
	case dispatch.StrategyDense:
		return dispatch.EmitDense(col, cands, canon)

	case dispatch.StrategySorted:
		return dispatch.EmitSorted(col, cands, canon)

	case dispatch.StrategyHash:
		if hashIdx == nil {
			hashIdx, err = hashindex.Build(col)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
			}
			cfg.trace.Trace(trace.EventHashBuilt, nil)
		}
		return hashSelect(col, cands, canon, hashIdx)

	default: // dispatch.StrategyScan
		imp, _ := cfg.imprintIndex.(*imprint.Index[T])
		if imp == nil && col.Persistent {
			imp, err = imprint.Build(col, cfg.imprintOpts...)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
			}
			cfg.trace.Trace(trace.EventImprintBuilt, nil)
		}

		_, estimate := dispatch.Bounds(col, cands, canon)
		ids, err := scankernel.Scan(col, cands, canon, imp, estimate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
		}
		res := result.NewMaterialized(ids)
		result.Finalize(res)
		return res, nil
	}
}

// hashSelect answers an equality predicate via idx, intersecting the
// matching physical positions' row identifiers with cands.
func hashSelect[T column.Numeric](col *column.Column[T], cands *column.Candidates, canon predicate.Canonical[T], idx *hashindex.Index[T]) (*result.Result, error) {
	positions := idx.Probe(canon.TL)
	ids := make([]int64, 0, len(positions))
	for _, p := range positions {
		o := col.RowID(p)
		if cands == nil || cands.Contains(o) {
			ids = append(ids, o)
		}
	}
	res := result.NewMaterialized(ids)
	result.Finalize(res)
	return res, nil
}

// validateCandidates enforces the specification's "S is sorted ascending"
// precondition for a materialized candidate list (a dense one is sorted by
// construction).
func validateCandidates(cands *column.Candidates) error {
	if cands == nil || cands.Dense {
		return nil
	}
	for i := 1; i < len(cands.Ids); i++ {
		if cands.Ids[i] <= cands.Ids[i-1] {
			return fmt.Errorf("%w: candidates must be strictly ascending", ErrInvalidArgument)
		}
	}
	return nil
}
