package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeline_Append_ContiguousSamePID_Coalesces(t *testing.T) {
	// GIVEN a timeline ending with an interval for pid 1
	tl := &Timeline{}
	tl.Append(1, 0, 2)

	// WHEN a contiguous slice for the same pid is appended
	tl.Append(1, 2, 3)

	// THEN the last interval is extended instead of opening a new one
	if tl.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (coalesced)", tl.Len())
	}
	assert.Equal(t, Interval{PID: 1, Start: 0, End: 3}, tl.Intervals()[0])
}

func TestTimeline_Append_DifferentPID_OpensNewInterval(t *testing.T) {
	tl := &Timeline{}
	tl.Append(1, 0, 2)
	tl.Append(2, 2, 4)

	assert.Equal(t, 2, tl.Len())
	assert.Equal(t, []Interval{{PID: 1, Start: 0, End: 2}, {PID: 2, Start: 2, End: 4}}, tl.Intervals())
}

func TestTimeline_Append_GapSamePID_OpensNewInterval(t *testing.T) {
	// GIVEN an interval for pid 1 ending at 2
	tl := &Timeline{}
	tl.Append(1, 0, 2)

	// WHEN the same pid runs again after an idle gap
	tl.Append(1, 5, 6)

	// THEN the gap stays implicit between two intervals
	assert.Equal(t, 2, tl.Len())
	assert.Equal(t, int64(3), tl.IdleTime())
}

func TestTimeline_BusySpanIdle_Accounting(t *testing.T) {
	tl := &Timeline{}
	tl.Append(1, 0, 4)
	tl.Append(2, 6, 9)

	assert.Equal(t, int64(7), tl.BusyTime())
	assert.Equal(t, int64(2), tl.IdleTime())
	assert.Equal(t, int64(9), tl.Span())
}

func TestTimeline_Empty_ZeroValues(t *testing.T) {
	tl := &Timeline{}

	assert.Equal(t, 0, tl.Len())
	assert.Equal(t, int64(0), tl.BusyTime())
	assert.Equal(t, int64(0), tl.IdleTime())
	assert.Equal(t, int64(0), tl.Span())
}

func TestTimeline_Append_Overlap_Panics(t *testing.T) {
	// Overlapping execution is a policy bug and must fail loudly.
	tl := &Timeline{}
	tl.Append(1, 0, 4)

	assert.Panics(t, func() { tl.Append(2, 3, 5) })
}

func TestTimeline_Append_EmptyInterval_Panics(t *testing.T) {
	tl := &Timeline{}

	assert.Panics(t, func() { tl.Append(1, 2, 2) })
}

func TestTimeline_String_ListsIntervals(t *testing.T) {
	tl := &Timeline{}
	tl.Append(1, 0, 4)
	tl.Append(2, 4, 7)

	assert.Equal(t, "[P1[0,4) P2[4,7)]", tl.String())
}
