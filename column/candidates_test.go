// SPDX-License-Identifier: MIT
package column_test

import (
	"testing"

	"github.com/colkit/rangeselect/column"
	"github.com/stretchr/testify/require"
)

func TestNewCandidates_RejectsUnsorted(t *testing.T) {
	_, err := column.NewCandidates([]int64{1, 3, 2})
	require.ErrorIs(t, err, column.ErrCandidatesUnsorted)

	_, err = column.NewCandidates([]int64{1, 1, 2})
	require.ErrorIs(t, err, column.ErrCandidatesUnsorted)
}

func TestCandidates_DenseContains(t *testing.T) {
	s := column.NewDenseCandidates(10, 5) // [10,15)
	require.Equal(t, int64(5), s.Len())
	require.True(t, s.Contains(10))
	require.True(t, s.Contains(14))
	require.False(t, s.Contains(15))
	require.False(t, s.Contains(9))
}

func TestCandidates_MaterializedContains(t *testing.T) {
	s, err := column.NewCandidates([]int64{1, 3, 4, 9})
	require.NoError(t, err)
	require.True(t, s.Contains(3))
	require.True(t, s.Contains(9))
	require.False(t, s.Contains(5))
	require.Equal(t, int64(1), s.First())
	require.Equal(t, int64(9), s.Last())
}

func TestCandidates_NilMeansUnrestricted(t *testing.T) {
	var s *column.Candidates
	require.True(t, s.Contains(12345))
	require.Equal(t, int64(0), s.Len())
}

func TestCandidates_BoundsMaterialized(t *testing.T) {
	s, err := column.NewCandidates([]int64{2, 4, 6, 8, 10})
	require.NoError(t, err)

	require.Equal(t, int64(0), s.LowerBound(0))
	require.Equal(t, int64(1), s.LowerBound(4))
	require.Equal(t, int64(2), s.LowerBound(5))
	require.Equal(t, int64(5), s.LowerBound(11))

	require.Equal(t, int64(2), s.UpperBound(4))
	require.Equal(t, int64(5), s.UpperBound(10))
}

func TestCandidates_BoundsDense(t *testing.T) {
	s := column.NewDenseCandidates(100, 10) // [100,110)
	require.Equal(t, int64(0), s.LowerBound(99))
	require.Equal(t, int64(5), s.LowerBound(105))
	require.Equal(t, int64(10), s.LowerBound(200))

	require.Equal(t, int64(10), s.UpperBound(109))
	require.Equal(t, int64(6), s.UpperBound(105))
}

func TestCandidates_Slice(t *testing.T) {
	s, err := column.NewCandidates([]int64{1, 2, 5, 8, 9})
	require.NoError(t, err)
	require.Equal(t, []int64{2, 5, 8}, s.Slice(1, 4))
	require.Nil(t, s.Slice(4, 1))

	d := column.NewDenseCandidates(50, 4)
	require.Equal(t, []int64{51, 52}, d.Slice(1, 3))
}
