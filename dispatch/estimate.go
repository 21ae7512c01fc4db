// SPDX-License-Identifier: MIT
package dispatch

import (
	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/predicate"
)

// sampleDelta and sampleBudget are the deterministic pseudo-sample
// parameters from the specification's cost model: three contiguous
// slices totaling sampleBudget rows, anchored at {delta, N/2, N-delta}.
const (
	sampleDelta  = 166
	sampleBudget = 1000
)

// EstimateSelectivity returns the fraction of col's rows the predicate is
// expected to match, using a deterministic pseudo-sample rather than a
// full scan: three contiguous slices of roughly sampleBudget/3 rows each,
// at positions {delta, N/2, N-delta}. Small columns (N <= sampleBudget)
// are sampled in full.
func EstimateSelectivity[T column.Numeric](col *column.Column[T], pred predicate.Canonical[T]) float64 {
	n := col.N
	if n <= 0 {
		return 0
	}

	var sampled, matched int64
	for _, rng := range sampleSlices(n) {
		for p := rng.start; p < rng.start+rng.length; p++ {
			sampled++
			if matches(col.At(p), pred, col.NonNil) {
				matched++
			}
		}
	}
	if sampled == 0 {
		return 0
	}
	return float64(matched) / float64(sampled)
}

type sampleRange struct{ start, length int64 }

// sampleSlices returns the physical-position ranges to sample for a
// column of n rows.
func sampleSlices(n int64) []sampleRange {
	if n <= sampleBudget {
		return []sampleRange{{start: 0, length: n}}
	}

	sliceLen := int64(sampleBudget / 3)
	sizes := [3]int64{sliceLen + (sampleBudget - sliceLen*3), sliceLen, sliceLen}

	starts := [3]int64{
		sampleDelta,
		n/2 - sizes[1]/2,
		n - sampleDelta - sizes[2],
	}

	out := make([]sampleRange, 3)
	for i := 0; i < 3; i++ {
		start := starts[i]
		size := sizes[i]
		if start < 0 {
			start = 0
		}
		if start+size > n {
			start = n - size
		}
		if start < 0 {
			start = 0
			size = n
		}
		out[i] = sampleRange{start: start, length: size}
	}
	return out
}

// matches applies the same closed-range/equi/anti test scankernel's
// per-row scan uses, reimplemented locally so the estimator stays a
// self-contained, allocation-free function over a tiny sample rather than
// pulling in scankernel's loop-shaped API for a single-row test.
func matches[T column.Numeric](v T, pred predicate.Canonical[T], columnNonNil bool) bool {
	switch {
	case pred.Empty:
		return false
	case pred.Equi && pred.Anti:
		return v != pred.TL && (columnNonNil || !column.IsNil(v))
	case pred.Equi:
		return v == pred.TL
	case pred.Anti && !columnNonNil:
		return (v <= pred.TL || v >= pred.TH) && !column.IsNil(v)
	case pred.Anti:
		return v <= pred.TL || v >= pred.TH
	default:
		return pred.TL <= v && v <= pred.TH
	}
}

// ShouldUseHash implements the hash-versus-scan cost trigger: reuse an
// already-built index unconditionally; otherwise require the column be
// persistent, wide enough that a hash fingerprint pays for itself, and a
// sampled selectivity under 1%.
func ShouldUseHash[T column.Numeric](col *column.Column[T], pred predicate.Canonical[T], hashBuilt bool) bool {
	if !pred.Equi {
		return false
	}
	if hashBuilt {
		return true
	}
	if !col.Persistent {
		return false
	}
	const fingerprintBytes = 16
	if column.ElemSize[T]() <= fingerprintBytes/4 {
		return false
	}
	return EstimateSelectivity(col, pred) < 0.01
}

// Bounds computes the upper bound M on the number of matching rows and an
// initial size estimate to seed the result buffer's starting capacity.
func Bounds[T column.Numeric](col *column.Column[T], cands *column.Candidates, pred predicate.Canonical[T]) (m int64, estimate int64) {
	m = col.N
	if cands != nil && cands.Len() < m {
		m = cands.Len()
	}

	bounded := pred.TL != predicate.MinNonNil[T]() && pred.TH != predicate.MaxNonNil[T]()
	if col.Key && !pred.Anti && !pred.Equi && !isFloat[T]() && bounded {
		span := int64(pred.TH) - int64(pred.TL) + 1
		if span >= 0 && span < m {
			m = span
		}
	}
	if m < 0 {
		m = 0
	}

	const defaultEstimate = 1_000_000
	estimate = m
	if estimate <= 0 || estimate > defaultEstimate {
		estimate = defaultEstimate
	}
	return m, estimate
}

func isFloat[T column.Numeric]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}
