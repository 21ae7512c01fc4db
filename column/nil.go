// SPDX-License-Identifier: MIT
package column

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of primitive kinds the kernel specializes over: the
// signed and floating-point widths named in §3 of the kernel specification
// (i8/i16/i32/i64/f32/f64, plus identifier columns which are int64 under
// the hood). Unsigned integer kinds are included for free via
// constraints.Integer so that row-identifier arithmetic (which is
// naturally unsigned in some storage engines) type-checks against the same
// scan kernels without a second generic family.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// NilOf returns the reserved per-type sentinel value representing "no
// value" for T, per the kernel specification's NIL convention: the type's
// minimum representable value for integer kinds, NaN for floating-point
// kinds.
func NilOf[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.NaN())).(T)
	case float64:
		return any(math.NaN()).(T)
	default:
		return minOf[T]()
	}
}

// IsNil reports whether v equals the reserved NIL sentinel for T. NaN
// comparison is handled specially since NaN != NaN under Go's ==.
func IsNil[T Numeric](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return x != x
	case float64:
		return x != x
	default:
		return v == minOf[T]()
	}
}

// minOf returns the minimum representable value of an integer kind T.
// Unsigned kinds have no usable negative sentinel, so their reserved
// minimum is defined as 0 — identifier/unsigned columns that want a NIL
// representation should reserve 0 by convention, mirroring how void/oid
// columns in the reference engine treat oid_nil.
func minOf[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(math.MinInt8)).(T)
	case int16:
		return any(int16(math.MinInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T)
	case int:
		return any(math.MinInt).(T)
	default:
		return zero // unsigned kinds: reserved minimum is 0
	}
}
