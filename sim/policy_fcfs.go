package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// FCFSPolicy implements First-Come-First-Served scheduling.
// Processes run to completion in (arrival_time, pid) order; the clock jumps
// forward to the next arrival when the CPU would otherwise sit idle.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Name() string { return AlgorithmFCFS }

func (f *FCFSPolicy) Schedule(procs []*Process) *Timeline {
	resetAll(procs)
	tl := &Timeline{}
	var clock int64

	order := make([]*Process, len(procs))
	copy(order, procs)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].ArrivalTime != order[j].ArrivalTime {
			return order[i].ArrivalTime < order[j].ArrivalTime
		}
		return order[i].PID < order[j].PID
	})

	for _, p := range order {
		if clock < p.ArrivalTime {
			clock = p.ArrivalTime
		}
		p.markDispatched(clock)
		p.State = StateRunning

		start := clock
		clock += p.Execute(p.BurstTime)
		tl.Append(p.PID, start, clock)
		p.finalize(clock)
		logrus.Debugf("[t=%07d] fcfs: finished pid %d", clock, p.PID)
	}
	return tl
}
