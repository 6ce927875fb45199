package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// readyQueue is the explicit FIFO ready queue used by Round Robin.
type readyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the ready queue.
func (rq *readyQueue) Enqueue(p *Process) {
	rq.queue = append(rq.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *readyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue = rq.queue[1:]
	return p
}

// Len returns the number of processes in the queue.
func (rq *readyQueue) Len() int {
	return len(rq.queue)
}

// RoundRobinPolicy implements Round Robin scheduling with a fixed quantum.
// The defining fairness rule: processes that arrive while a slice executes
// are appended to the ready queue before the preempted process is
// re-appended, so newcomers always get their first slice ahead of a process
// returning from the CPU.
type RoundRobinPolicy struct {
	Quantum int64
}

func (r *RoundRobinPolicy) Name() string { return AlgorithmRoundRobin }

func (r *RoundRobinPolicy) Schedule(procs []*Process) *Timeline {
	resetAll(procs)
	working := cloneAll(procs)
	tl := &Timeline{}
	var clock int64

	arrivals := make([]*Process, len(working))
	copy(arrivals, working)
	sort.SliceStable(arrivals, func(i, j int) bool {
		if arrivals[i].ArrivalTime != arrivals[j].ArrivalTime {
			return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime
		}
		return arrivals[i].PID < arrivals[j].PID
	})

	rq := &readyQueue{}
	next := 0 // index of the next not-yet-admitted arrival
	admit := func(now int64) {
		for next < len(arrivals) && arrivals[next].ArrivalTime <= now {
			arrivals[next].State = StateReady
			rq.Enqueue(arrivals[next])
			next++
		}
	}

	for completed := 0; completed < len(working); {
		admit(clock)
		p := rq.Dequeue()
		if p == nil {
			clock++
			continue
		}
		p.markDispatched(clock)
		p.State = StateRunning

		start := clock
		clock += p.Execute(min(r.Quantum, p.RemainingTime))
		tl.Append(p.PID, start, clock)

		// Arrivals during the slice enter the queue ahead of the
		// preempted process.
		admit(clock)

		if p.IsCompleted() {
			p.finalize(clock)
			completed++
			logrus.Debugf("[t=%07d] round_robin: finished pid %d", clock, p.PID)
		} else {
			p.State = StateReady
			rq.Enqueue(p)
		}
	}

	mergeAll(procs, working)
	return tl
}
