package sim

import (
	"errors"
	"fmt"
)

// Policy runs one scheduling algorithm over a process set.
// Schedule resets every process, simulates the full run, populates each
// record's derived fields, and returns the execution timeline. Runs are
// deterministic and idempotent: scheduling the same set twice yields an
// identical timeline and identical per-process results.
type Policy interface {
	Name() string
	Schedule(procs []*Process) *Timeline
}

// Algorithm names accepted by NewPolicy.
const (
	AlgorithmFCFS               = "fcfs"
	AlgorithmSJF                = "sjf"
	AlgorithmSJFPreemptive      = "sjf_preemptive"
	AlgorithmRoundRobin         = "round_robin"
	AlgorithmPriority           = "priority"
	AlgorithmPriorityPreemptive = "priority_preemptive"
)

// DefaultQuantum is the Round Robin time slice used when the caller does not
// specify one.
const DefaultQuantum int64 = 4

// ValidAlgorithms is the set of recognized algorithm names.
// Shared by validation and NewPolicy to avoid duplication.
var ValidAlgorithms = map[string]bool{
	AlgorithmFCFS:               true,
	AlgorithmSJF:                true,
	AlgorithmSJFPreemptive:      true,
	AlgorithmRoundRobin:         true,
	AlgorithmPriority:           true,
	AlgorithmPriorityPreemptive: true,
}

// Algorithms lists the recognized algorithm names in a stable order,
// for help text and comparison runs.
func Algorithms() []string {
	return []string{
		AlgorithmFCFS,
		AlgorithmSJF,
		AlgorithmSJFPreemptive,
		AlgorithmRoundRobin,
		AlgorithmPriority,
		AlgorithmPriorityPreemptive,
	}
}

// Configuration errors surfaced at construction time.
var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrInvalidQuantum   = errors.New("invalid quantum")
)

// NewPolicy creates a Policy by algorithm name. The quantum applies only to
// Round Robin and must be >= 1 there; other algorithms ignore it.
func NewPolicy(name string, quantum int64) (Policy, error) {
	if !ValidAlgorithms[name] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	switch name {
	case AlgorithmFCFS:
		return &FCFSPolicy{}, nil
	case AlgorithmSJF:
		return &SJFPolicy{}, nil
	case AlgorithmSJFPreemptive:
		return &SJFPolicy{Preemptive: true}, nil
	case AlgorithmRoundRobin:
		if quantum < 1 {
			return nil, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidQuantum, quantum)
		}
		return &RoundRobinPolicy{Quantum: quantum}, nil
	case AlgorithmPriority:
		return &PriorityPolicy{}, nil
	case AlgorithmPriorityPreemptive:
		return &PriorityPolicy{Preemptive: true}, nil
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", name))
	}
}

// resetAll restores every process to its initial derived state so a policy
// run is idempotent regardless of what ran before.
func resetAll(procs []*Process) {
	for _, p := range procs {
		p.Reset()
	}
}

// cloneAll returns independent working copies in input order.
// Unit-stepped and quantum-stepped policies mutate the copies while the run
// is in flight and merge results back only on successful completion.
func cloneAll(procs []*Process) []*Process {
	copies := make([]*Process, len(procs))
	for i, p := range procs {
		copies[i] = p.clone()
	}
	return copies
}

// mergeAll copies derived state from working copies back into the
// caller-visible records.
func mergeAll(procs, copies []*Process) {
	for i, p := range procs {
		p.mergeFrom(copies[i])
	}
}
