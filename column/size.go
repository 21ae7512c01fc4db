// SPDX-License-Identifier: MIT
package column

// ElemSize returns sizeof(T) in bytes for every primitive kind Numeric
// admits. Shared by any collaborator that needs to reason about storage
// width — imprint's page-length arithmetic, the dispatcher's hash-versus
// -scan cost model.
func ElemSize[T Numeric]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64, int, uint:
		return 8
	default:
		return 8
	}
}
