// SPDX-License-Identifier: MIT
package column

// NewColumn constructs a materialized Column from data, with logical head
// base h0. Flags default to false; set them on the returned Column as
// appropriate for the caller's storage layer (the kernel trusts them as
// given — it never infers sortedness or uniqueness by scanning).
func NewColumn[T Numeric](data []T, h0 int64) *Column[T] {
	return &Column[T]{
		Data: data,
		N:    int64(len(data)),
		H0:   h0,
	}
}

// NewDenseColumn constructs a dense identity column of count n starting at
// logical head base h0: its value at position p is always h0+p. Dense
// columns are implicitly Sorted, NonNil, and Key.
func NewDenseColumn[T Numeric](h0, n int64) *Column[T] {
	return &Column[T]{
		N:      n,
		H0:     h0,
		Dense:  true,
		Sorted: true,
		NonNil: true,
		Key:    true,
	}
}

// Validate checks the structural invariants Column construction does not
// otherwise enforce: non-negative count, and (for materialized columns) a
// Data slice whose length matches N.
func (c *Column[T]) Validate() error {
	if c.N < 0 {
		return ErrNonPositiveCount
	}
	if !c.Dense && int64(len(c.Data)) != c.N {
		return ErrDataLengthMismatch
	}
	return nil
}

// View returns a new Column describing the sub-range [offset, offset+n) of
// parent, in physical positions. The view shares parent's underlying Data
// (no copy) and inherits Sorted/RevSorted/NonNil/Key/Persistent, since a
// contiguous slice of a sorted, unique, non-nil column is itself sorted,
// unique, and non-nil. Dense is likewise inherited, since a slice of an
// identity sequence is itself an identity sequence with a shifted head.
func View[T Numeric](parent *Column[T], offset, n int64) (*Column[T], error) {
	if parent == nil {
		return nil, ErrParentNil
	}
	if offset < 0 || n < 0 || offset+n > parent.N {
		return nil, ErrViewOutOfRange
	}

	v := &Column[T]{
		N:          n,
		H0:         parent.H0 + offset,
		Sorted:     parent.Sorted,
		RevSorted:  parent.RevSorted,
		Dense:      parent.Dense,
		NonNil:     parent.NonNil,
		Key:        parent.Key,
		Persistent: parent.Persistent,

		Parent:       parent,
		ParentOffset: offset,
	}
	if !parent.Dense {
		v.Data = parent.Data[offset : offset+n]
	}
	return v, nil
}
