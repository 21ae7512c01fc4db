// SPDX-License-Identifier: MIT
package result_test

import (
	"testing"

	"github.com/colkit/rangeselect/result"
	"github.com/stretchr/testify/require"
)

func TestFinalize_DenseStaysdense(t *testing.T) {
	r := result.NewDense(100, 5)
	result.Finalize(r)
	require.Equal(t, result.KindDense, r.Kind)
	require.True(t, r.Sorted)
	require.True(t, r.Key)
	require.True(t, r.Dense)
	require.Equal(t, []int64{100, 101, 102, 103, 104}, r.Ids())
}

func TestFinalize_MaterializedContiguousCollapsesToDense(t *testing.T) {
	r := result.NewMaterialized([]int64{7, 8, 9, 10})
	result.Finalize(r)
	require.Equal(t, result.KindDense, r.Kind)
	require.Equal(t, int64(7), r.Base)
	require.Equal(t, int64(4), r.Count)
	require.Nil(t, r.Extra)
}

func TestFinalize_MaterializedWithGapStaysMaterialized(t *testing.T) {
	r := result.NewMaterialized([]int64{7, 9, 12})
	result.Finalize(r)
	require.Equal(t, result.KindMaterialized, r.Kind)
	require.False(t, r.Dense)
	require.Equal(t, []int64{7, 9, 12}, r.Ids())
}

func TestFinalize_MaterializedEmpty(t *testing.T) {
	r := result.NewMaterialized(nil)
	result.Finalize(r)
	require.Equal(t, result.KindDense, r.Kind)
	require.Equal(t, int64(0), r.Size())
}

func TestFinalize_MaterializedSingleElementCollapses(t *testing.T) {
	r := result.NewMaterialized([]int64{42})
	result.Finalize(r)
	require.Equal(t, result.KindDense, r.Kind)
	require.Equal(t, int64(42), r.Base)
	require.Equal(t, int64(1), r.Count)
}

func TestFinalize_TwoRangeZeroGapCollapses(t *testing.T) {
	r := result.NewTwoRange(result.Range{Base: 0, Count: 5}, result.Range{Base: 5, Count: 3})
	result.Finalize(r)
	require.Equal(t, result.KindDense, r.Kind)
	require.Equal(t, int64(0), r.Base)
	require.Equal(t, int64(8), r.Count)
}

func TestFinalize_TwoRangeWithGapStaysTwoRange(t *testing.T) {
	r := result.NewTwoRange(result.Range{Base: 0, Count: 3}, result.Range{Base: 10, Count: 3})
	result.Finalize(r)
	require.Equal(t, result.KindTwoRange, r.Kind)
	require.False(t, r.Dense)
	require.Equal(t, []int64{0, 1, 2, 10, 11, 12}, r.Ids())
}

func TestFinalize_TwoRangeOneEmptySideCollapses(t *testing.T) {
	r := result.NewTwoRange(result.Range{Base: 0, Count: 0}, result.Range{Base: 50, Count: 4})
	result.Finalize(r)
	require.Equal(t, result.KindDense, r.Kind)
	require.Equal(t, int64(50), r.Base)
	require.Equal(t, int64(4), r.Count)
}

func TestFinalize_TwoRangeBothEmpty(t *testing.T) {
	r := result.NewTwoRange(result.Range{}, result.Range{})
	result.Finalize(r)
	require.Equal(t, result.KindDense, r.Kind)
	require.Equal(t, int64(0), r.Size())
}
