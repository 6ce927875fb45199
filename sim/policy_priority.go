package sim

// PriorityPolicy implements priority scheduling; a lower Priority value wins.
// Structure mirrors SJFPolicy exactly, with (priority, arrival_time, pid) as
// the selection key instead of burst/remaining time.
type PriorityPolicy struct {
	Preemptive bool
}

func (p *PriorityPolicy) Name() string {
	if p.Preemptive {
		return AlgorithmPriorityPreemptive
	}
	return AlgorithmPriority
}

func (p *PriorityPolicy) Schedule(procs []*Process) *Timeline {
	if p.Preemptive {
		return runUnitStepped(p.Name(), procs, byPriority)
	}
	return runToCompletion(p.Name(), procs, byPriority)
}

func byPriority(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}
