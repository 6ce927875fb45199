// Defines the Process record that models an individual process in the simulation.
// Tracks static inputs (arrival, burst, priority) and simulation-derived state
// (remaining time, lifecycle state, dispatch/completion timestamps).

package sim

import (
	"errors"
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "NEW"
	StateReady      ProcessState = "READY"
	StateRunning    ProcessState = "RUNNING"
	StateTerminated ProcessState = "TERMINATED"
)

// ErrInvalidProcess marks a process record that violates the data model
// (non-positive pid, negative arrival, burst below one unit).
var ErrInvalidProcess = errors.New("invalid process")

// Process models a single process's lifecycle in the simulation.
// Static inputs are set at construction; derived fields are mutated only by
// the active policy during a run and are final once State is StateTerminated.
type Process struct {
	PID         int   // Unique caller-assigned identifier (positive)
	ArrivalTime int64 // Time the process enters the system (>= 0)
	BurstTime   int64 // Total CPU units required (>= 1)
	Priority    int   // Lower value = higher priority; 0 means unspecified/equal

	RemainingTime int64        // CPU units still required; 0 <= RemainingTime <= BurstTime
	State         ProcessState // NEW, READY, RUNNING, TERMINATED (WAITING unused in this core)

	Started      bool  // Tracks whether StartTime has been set
	StartTime    int64 // First dispatch time; meaningful only when Started
	ResponseTime int64 // StartTime - ArrivalTime; meaningful only when Started

	CompletionTime int64 // Time RemainingTime reached zero
	TurnaroundTime int64 // CompletionTime - ArrivalTime
	WaitingTime    int64 // TurnaroundTime - BurstTime
}

// NewProcess creates a process in the NEW state with its full burst remaining.
func NewProcess(pid int, arrival, burst int64, priority int) *Process {
	return &Process{
		PID:           pid,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		Priority:      priority,
		RemainingTime: burst,
		State:         StateNew,
	}
}

// Validate checks the static inputs against the data model.
// Derived fields are not checked; they are owned by the running policy.
func (p *Process) Validate() error {
	if p.PID < 1 {
		return fmt.Errorf("%w: pid %d must be positive", ErrInvalidProcess, p.PID)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: pid %d arrival_time %d must be >= 0", ErrInvalidProcess, p.PID, p.ArrivalTime)
	}
	if p.BurstTime < 1 {
		return fmt.Errorf("%w: pid %d burst_time %d must be >= 1", ErrInvalidProcess, p.PID, p.BurstTime)
	}
	return nil
}

// Execute consumes up to units of CPU time. Valid only while RUNNING;
// calls in any other state consume nothing. Transitions to TERMINATED when
// the remaining time reaches zero. Returns the units actually consumed.
func (p *Process) Execute(units int64) int64 {
	if p.State != StateRunning {
		return 0
	}
	executed := min(units, p.RemainingTime)
	p.RemainingTime -= executed
	if p.RemainingTime == 0 {
		p.State = StateTerminated
	}
	return executed
}

// IsCompleted reports whether the process has finished all its CPU time.
func (p *Process) IsCompleted() bool {
	return p.RemainingTime == 0 || p.State == StateTerminated
}

// Reset restores all derived fields to their initial values so the same
// process list can be re-simulated under a different policy.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.State = StateNew
	p.Started = false
	p.StartTime = 0
	p.ResponseTime = 0
	p.CompletionTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
}

// markDispatched records the first dispatch time. Subsequent dispatches
// (preemptive re-selections) leave StartTime and ResponseTime untouched.
func (p *Process) markDispatched(now int64) {
	if p.Started {
		return
	}
	p.Started = true
	p.StartTime = now
	p.ResponseTime = now - p.ArrivalTime
}

// finalize stamps the completion metrics. The terminated invariant
// (RemainingTime == 0) must already hold.
func (p *Process) finalize(now int64) {
	p.CompletionTime = now
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.State = StateTerminated
}

// clone returns an independent copy for policies that run on a working set.
func (p *Process) clone() *Process {
	c := *p
	return &c
}

// mergeFrom copies the derived state of a working copy back into the
// caller-visible record after a successful run.
func (p *Process) mergeFrom(c *Process) {
	p.RemainingTime = c.RemainingTime
	p.State = c.State
	p.Started = c.Started
	p.StartTime = c.StartTime
	p.ResponseTime = c.ResponseTime
	p.CompletionTime = c.CompletionTime
	p.TurnaroundTime = c.TurnaroundTime
	p.WaitingTime = c.WaitingTime
}

// String returns a human-readable representation of a Process.
func (p *Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Arrival: %d, Burst: %d, Priority: %d, State: %s)",
		p.PID, p.ArrivalTime, p.BurstTime, p.Priority, p.State)
}
