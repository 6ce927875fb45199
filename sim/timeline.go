// Implements the Timeline, the ordered record of CPU allocation intervals
// (Gantt data) produced by a policy run. Appends coalesce contiguous
// intervals of the same process so non-preemptive runs yield exactly one
// interval per process and preemptive runs yield the minimal number.

package sim

import (
	"fmt"
	"strings"
)

// Interval is a single CPU allocation slice on the timeline.
type Interval struct {
	PID   int   `json:"pid" yaml:"pid"`
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end" yaml:"end"`
}

// Timeline is an ordered sequence of non-overlapping intervals.
// Gaps between consecutive intervals are idle CPU time, represented
// implicitly. The active policy owns the timeline during a run; consumers
// receive it read-only.
type Timeline struct {
	intervals []Interval
}

// Append records that pid held the CPU over [start, end). If the slice is
// contiguous with the last interval for the same pid, the last interval is
// extended instead of opening a new one.
func (tl *Timeline) Append(pid int, start, end int64) {
	if start >= end {
		panic(fmt.Sprintf("Append: empty interval [%d, %d) for pid %d", start, end, pid))
	}
	if n := len(tl.intervals); n > 0 {
		last := &tl.intervals[n-1]
		if start < last.End {
			panic(fmt.Sprintf("Append: interval [%d, %d) overlaps previous end %d", start, end, last.End))
		}
		if last.PID == pid && last.End == start {
			last.End = end
			return
		}
	}
	tl.intervals = append(tl.intervals, Interval{PID: pid, Start: start, End: end})
}

// Len returns the number of coalesced intervals.
func (tl *Timeline) Len() int {
	return len(tl.intervals)
}

// Intervals returns the recorded intervals for iteration.
// The returned slice is the timeline's internal storage -- callers MUST NOT
// append to or modify it.
func (tl *Timeline) Intervals() []Interval {
	return tl.intervals
}

// BusyTime returns the total CPU time covered by intervals.
func (tl *Timeline) BusyTime() int64 {
	var busy int64
	for _, iv := range tl.intervals {
		busy += iv.End - iv.Start
	}
	return busy
}

// IdleTime returns the total length of gaps between consecutive intervals.
func (tl *Timeline) IdleTime() int64 {
	var idle int64
	for i := 1; i < len(tl.intervals); i++ {
		idle += tl.intervals[i].Start - tl.intervals[i-1].End
	}
	return idle
}

// Span returns the end of the last interval, or 0 for an empty timeline.
func (tl *Timeline) Span() int64 {
	if len(tl.intervals) == 0 {
		return 0
	}
	return tl.intervals[len(tl.intervals)-1].End
}

func (tl *Timeline) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, iv := range tl.intervals {
		sb.WriteString(fmt.Sprintf("P%d[%d,%d)", iv.PID, iv.Start, iv.End))
		if i < len(tl.intervals)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
