// Shared run loops for the selection-keyed policies. SJF and Priority differ
// only in the key their decision points minimize over, so both variants of
// each are expressed as a key function plugged into one of two engines:
// runToCompletion (non-preemptive, burst-grained clock) and runUnitStepped
// (preemptive, unit-grained clock with a working copy of the process set).

package sim

import "github.com/sirupsen/logrus"

// selectionKey orders the ready set at a decision point.
// Returning true means a should run before b.
type selectionKey func(a, b *Process) bool

// pickReady returns the minimum-key process among those that have arrived by
// now and are not yet completed, or nil if the ready set is empty.
func pickReady(procs []*Process, now int64, less selectionKey) *Process {
	var best *Process
	for _, p := range procs {
		if p.ArrivalTime > now || p.IsCompleted() {
			continue
		}
		if best == nil || less(p, best) {
			best = p
		}
	}
	return best
}

// runToCompletion is the non-preemptive engine: at each decision point the
// minimum-key ready process runs its full burst. An empty ready set advances
// the clock by one idle unit.
// TODO: jump directly to the next arrival instead of stepping idle time;
// observable behavior is identical but the loop is O(total_time).
func runToCompletion(name string, procs []*Process, less selectionKey) *Timeline {
	resetAll(procs)
	tl := &Timeline{}
	var clock int64

	for completed := 0; completed < len(procs); {
		p := pickReady(procs, clock, less)
		if p == nil {
			clock++
			continue
		}
		p.markDispatched(clock)
		p.State = StateRunning

		start := clock
		clock += p.Execute(p.BurstTime)
		tl.Append(p.PID, start, clock)
		p.finalize(clock)
		completed++
		logrus.Debugf("[t=%07d] %s: finished pid %d", clock, name, p.PID)
	}
	return tl
}

// runUnitStepped is the preemptive engine: the ready set is re-evaluated at
// every time unit and the minimum-key process executes exactly one unit.
// The run operates on working copies; results are merged back into the
// caller-visible records only once the whole set has completed.
func runUnitStepped(name string, procs []*Process, less selectionKey) *Timeline {
	resetAll(procs)
	working := cloneAll(procs)
	tl := &Timeline{}
	var clock int64

	for completed := 0; completed < len(working); {
		p := pickReady(working, clock, less)
		if p == nil {
			clock++
			continue
		}
		// Response time is fixed on the first ever selection, not on
		// every re-selection after preemption.
		p.markDispatched(clock)
		p.State = StateRunning

		p.Execute(1)
		tl.Append(p.PID, clock, clock+1)
		clock++

		if p.IsCompleted() {
			p.finalize(clock)
			completed++
			logrus.Debugf("[t=%07d] %s: finished pid %d", clock, name, p.PID)
		} else {
			p.State = StateReady
		}
	}

	mergeAll(procs, working)
	return tl
}
