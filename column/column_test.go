// SPDX-License-Identifier: MIT
package column_test

import (
	"math"
	"testing"

	"github.com/colkit/rangeselect/column"
	"github.com/stretchr/testify/require"
)

func TestNilOfAndIsNil_Integers(t *testing.T) {
	require.Equal(t, int8(math.MinInt8), column.NilOf[int8]())
	require.True(t, column.IsNil(column.NilOf[int8]()))
	require.False(t, column.IsNil(int8(5)))

	require.Equal(t, int64(math.MinInt64), column.NilOf[int64]())
	require.True(t, column.IsNil(column.NilOf[int64]()))
}

func TestNilOfAndIsNil_Floats(t *testing.T) {
	require.True(t, math.IsNaN(float64(column.NilOf[float64]())))
	require.True(t, column.IsNil(column.NilOf[float64]()))
	require.False(t, column.IsNil(float64(0)))
	require.False(t, column.IsNil(float64(-1)))
}

func TestNewColumn_ValidateLengthMismatch(t *testing.T) {
	c := &column.Column[int32]{Data: []int32{1, 2, 3}, N: 4}
	require.ErrorIs(t, c.Validate(), column.ErrDataLengthMismatch)
}

func TestNewColumn_ValidateOK(t *testing.T) {
	c := column.NewColumn([]int32{10, 20, 30}, 100)
	require.NoError(t, c.Validate())
	require.Equal(t, int64(3), c.N)
	require.Equal(t, int64(100), c.RowID(0))
	require.Equal(t, int64(102), c.RowID(2))
	require.Equal(t, int64(2), c.PhysicalOf(102))
}

func TestDenseColumn_AtIsIdentity(t *testing.T) {
	c := column.NewDenseColumn[int64](1000, 5)
	require.NoError(t, c.Validate())
	for p := int64(0); p < 5; p++ {
		require.Equal(t, int64(1000)+p, c.At(p))
	}
	require.True(t, c.Sorted)
	require.True(t, c.NonNil)
	require.True(t, c.Key)
}

func TestView_InheritsFlagsAndSharesData(t *testing.T) {
	parent := column.NewColumn([]int32{1, 2, 3, 4, 5}, 0)
	parent.Sorted = true
	parent.Key = true
	parent.NonNil = true

	v, err := column.View(parent, 1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), v.N)
	require.Equal(t, int64(1), v.H0)
	require.True(t, v.Sorted)
	require.True(t, v.Key)
	require.Same(t, parent, v.Parent)
	require.Equal(t, int64(1), v.ParentOffset)

	// shares backing array
	parent.Data[1] = 99
	require.Equal(t, int32(99), v.At(0))
}

func TestView_OutOfRange(t *testing.T) {
	parent := column.NewColumn([]int32{1, 2, 3}, 0)
	_, err := column.View(parent, 2, 5)
	require.ErrorIs(t, err, column.ErrViewOutOfRange)

	_, err = column.View[int32](nil, 0, 1)
	require.ErrorIs(t, err, column.ErrParentNil)
}

func TestView_OfDenseColumn(t *testing.T) {
	parent := column.NewDenseColumn[int64](500, 10)
	v, err := column.View(parent, 2, 3)
	require.NoError(t, err)
	require.True(t, v.Dense)
	require.Nil(t, v.Data)
	require.Equal(t, int64(502), v.At(0))
}
