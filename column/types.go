// SPDX-License-Identifier: MIT
package column

// Column is a logical array of N values of primitive kind T. The logical
// row identifier of physical position p is H0+p.
//
// A Dense column stores no materialized values at all: by definition its
// value at position p equals H0+p (a "void" identity column in storage
// terms), so Data is nil and reads are answered by arithmetic alone. A
// non-dense column stores its values in Data, len(Data) == N.
type Column[T Numeric] struct {
	// Data holds materialized values; nil when Dense is true.
	Data []T
	// N is the element count.
	N int64
	// H0 is the logical row identifier of physical position 0.
	H0 int64

	// Sorted indicates Data is ascending (ignored/irrelevant when Dense).
	Sorted bool
	// RevSorted indicates Data is descending.
	RevSorted bool
	// Dense indicates values are the identity sequence H0+offset.
	Dense bool
	// NonNil indicates no element equals NilOf[T]().
	NonNil bool
	// Key indicates all elements are distinct.
	Key bool
	// Persistent indicates the column is backed by storage durable
	// enough that the dispatcher may consider amortizing a hash or
	// imprint index build against it (§4.2, §4.5).
	Persistent bool

	// Parent, if non-nil, is the column this Column is a slice view of.
	// ParentOffset is the physical position within Parent at which this
	// view begins. Both fields are provenance metadata only: row-id
	// arithmetic on the view itself never needs to consult Parent.
	Parent       *Column[T]
	ParentOffset int64

	// HashIndex and ImprintIndex cache a lazily-built collaborator index
	// for this column (§5: "the kernel may, at dispatcher level, lazily
	// trigger construction of a hash or imprint index on B; those
	// constructions... mutate B's index fields under the caller's write
	// lock"). They are untyped here so that column does not import the
	// hashindex/imprint packages (which themselves depend on column);
	// those packages type-assert to their own concrete *Index[T] on
	// read and write here directly. The caller's write lock, not an
	// internal mutex, protects concurrent construction per §5.
	HashIndex    any
	ImprintIndex any
}

// At returns the value at physical position p (0 <= p < N).
func (c *Column[T]) At(p int64) T {
	if c.Dense {
		return T(c.H0) + T(p)
	}
	return c.Data[p]
}

// RowID returns the logical row identifier of physical position p.
func (c *Column[T]) RowID(p int64) int64 {
	return c.H0 + p
}

// PhysicalOf returns the physical position of logical row identifier o,
// the inverse of RowID. It does not validate that o lies within range.
func (c *Column[T]) PhysicalOf(o int64) int64 {
	return o - c.H0
}
