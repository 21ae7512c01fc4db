// SPDX-License-Identifier: MIT
package predicate

import (
	"math"

	"github.com/colkit/rangeselect/column"
)

// isFloat reports whether T is a floating-point kind.
func isFloat[T column.Numeric]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// minNonNil returns the smallest value T may legitimately hold once the
// reserved NIL sentinel is excluded: NilOf[T]()+1 for integer kinds
// (since NilOf is the minimum representable value), or -Inf for floats
// (NaN is not ordered, so it never participates in range math directly).
func minNonNil[T column.Numeric]() T {
	if isFloat[T]() {
		var zero T
		switch any(zero).(type) {
		case float32:
			return any(float32(math.Inf(-1))).(T)
		default:
			return any(math.Inf(-1)).(T)
		}
	}
	return column.NilOf[T]() + 1
}

// MinNonNil exports minNonNil for collaborators (scankernel's matcher
// construction) that need to recognize an unbounded-low canonical bound
// without re-deriving the type's non-NIL minimum themselves.
func MinNonNil[T column.Numeric]() T { return minNonNil[T]() }

// MaxNonNil exports maxNonNil for the same reason, on the upper bound.
func MaxNonNil[T column.Numeric]() T { return maxNonNil[T]() }

// maxNonNil returns the largest value T may hold.
func maxNonNil[T column.Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.Inf(1))).(T)
	case float64:
		return any(math.Inf(1)).(T)
	case int8:
		return any(int8(math.MaxInt8)).(T)
	case int16:
		return any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case int:
		return any(math.MaxInt).(T)
	case uint8:
		return any(uint8(math.MaxUint8)).(T)
	case uint16:
		return any(uint16(math.MaxUint16)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(math.MaxUint64)).(T)
	default:
		return zero
	}
}

// next returns the next representable value strictly greater than v,
// toward +∞, and whether that step overflowed (v was already the maximum
// representable value, meaning "x > v" is unsatisfiable).
func next[T column.Numeric](v T) (T, bool) {
	if isFloat[T]() {
		switch x := any(v).(type) {
		case float32:
			return any(math.Nextafter32(x, float32(math.Inf(1)))).(T), false
		default:
			return any(math.Nextafter(any(v).(float64), math.Inf(1))).(T), false
		}
	}
	if v == maxNonNil[T]() {
		return v, true
	}
	return v + 1, false
}

// prev returns the next representable value strictly less than v, toward
// −∞, and whether that step underflowed into the reserved NIL sentinel
// (meaning "x < v" is unsatisfiable by any valid, non-NIL value).
func prev[T column.Numeric](v T) (T, bool) {
	if isFloat[T]() {
		switch x := any(v).(type) {
		case float32:
			return any(math.Nextafter32(x, float32(math.Inf(-1)))).(T), false
		default:
			return any(math.Nextafter(any(v).(float64), math.Inf(-1))).(T), false
		}
	}
	if v <= column.NilOf[T]() {
		return v, true
	}
	return v - 1, false
}
