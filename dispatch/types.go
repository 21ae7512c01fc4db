// SPDX-License-Identifier: MIT
package dispatch

// Strategy identifies which algorithm answers a given call.
type Strategy int

const (
	// StrategyDense answers via positional arithmetic against a dense,
	// non-nil column: no value ever needs to be read.
	StrategyDense Strategy = iota
	// StrategySorted answers via binary search against a sorted or
	// reverse-sorted column.
	StrategySorted
	// StrategyHash answers an equality predicate via a hash probe.
	StrategyHash
	// StrategyScan answers via a linear scan, optionally imprint-pruned.
	StrategyScan
)

// String renders s for diagnostics and trace events.
func (s Strategy) String() string {
	switch s {
	case StrategyDense:
		return "dense"
	case StrategySorted:
		return "sorted"
	case StrategyHash:
		return "hash"
	case StrategyScan:
		return "scan"
	default:
		return "unknown"
	}
}
