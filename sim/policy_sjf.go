package sim

// SJFPolicy implements Shortest-Job-First scheduling. The non-preemptive
// variant picks the minimum (burst_time, arrival_time, pid) ready process at
// each decision point and runs it to completion. The preemptive variant
// (Shortest-Remaining-Time-First) re-evaluates (remaining_time,
// arrival_time, pid) at every time unit.
// Warning: under continuous short arrivals, long jobs can starve. That is
// inherent to the algorithm, not a defect.
type SJFPolicy struct {
	Preemptive bool
}

func (s *SJFPolicy) Name() string {
	if s.Preemptive {
		return AlgorithmSJFPreemptive
	}
	return AlgorithmSJF
}

func (s *SJFPolicy) Schedule(procs []*Process) *Timeline {
	if s.Preemptive {
		return runUnitStepped(s.Name(), procs, byRemainingTime)
	}
	return runToCompletion(s.Name(), procs, byBurstTime)
}

func byBurstTime(a, b *Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}

func byRemainingTime(a, b *Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}
