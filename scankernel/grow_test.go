// SPDX-License-Identifier: MIT
package scankernel

import "testing"

func TestGrowCapacity_FollowsSelectivityProjection(t *testing.T) {
	// cnt=10 matches out of seen=100 rows scanned; remaining=9000 rows left.
	// inc = 10*9000/100*1.1 + 1024 = 990 + 1024 = 2014 (below remaining)
	got := growCapacity(100, 10, 100, 9000)
	want := int64(100 + 2014)
	if got != want {
		t.Fatalf("growCapacity = %d, want %d", got, want)
	}
}

func TestGrowCapacity_CapsAtCapacityPlusRemaining(t *testing.T) {
	// A huge projected increment must not exceed capacity+remaining.
	got := growCapacity(10, 1_000_000, 1, 5)
	want := int64(10 + 5)
	if got != want {
		t.Fatalf("growCapacity = %d, want %d", got, want)
	}
}

func TestGrowCapacity_NoRemainingIsNoop(t *testing.T) {
	got := growCapacity(50, 5, 10, 0)
	if got != 50 {
		t.Fatalf("growCapacity = %d, want 50 (no remaining rows)", got)
	}
}

func TestGrowIfNeeded_GrowsOnlyWhenFull(t *testing.T) {
	buf := make([]int64, 3, 3)
	grown := growIfNeeded(buf, 3, 3, 7)
	if cap(grown) <= cap(buf) {
		t.Fatalf("expected capacity growth, got cap=%d from cap=%d", cap(grown), cap(buf))
	}
	if len(grown) != len(buf) {
		t.Fatalf("growIfNeeded must preserve length, got %d want %d", len(grown), len(buf))
	}

	roomy := make([]int64, 1, 10)
	same := growIfNeeded(roomy, 1, 1, 9)
	if cap(same) != cap(roomy) {
		t.Fatalf("growIfNeeded should not grow when room remains")
	}
}
