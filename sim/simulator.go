// sim/simulator.go
package sim

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Simulator is the facade front ends talk to: it binds an algorithm chosen
// by name to an accumulated process set and produces a full Result per run.
// A Simulator is single-threaded; one run owns its clock and timeline, and a
// process record must never be shared between two concurrently executing
// runs.
type Simulator struct {
	policy Policy
	procs  []*Process
}

// Result is the complete output of one run: the per-process projection, the
// coalesced timeline, and the rounded summary.
type Result struct {
	Algorithm  string          `json:"algorithm" yaml:"algorithm"`
	PerProcess []ProcessDetail `json:"per_process" yaml:"per_process"`
	Timeline   []Interval      `json:"timeline" yaml:"timeline"`
	Summary    Summary         `json:"summary" yaml:"summary"`
}

// NewSimulator creates a simulator for the named algorithm.
// A quantum of 0 means unspecified and selects DefaultQuantum; it only
// matters for Round Robin. Unknown names and quantum < 0 fail immediately:
// configuration errors are fatal to the run, never retried.
func NewSimulator(algorithm string, quantum int64) (*Simulator, error) {
	if quantum == 0 {
		quantum = DefaultQuantum
	}
	policy, err := NewPolicy(algorithm, quantum)
	if err != nil {
		return nil, err
	}
	return &Simulator{policy: policy}, nil
}

// AddProcess validates and accumulates a single process record.
// An invalid record is rejected without touching the accumulated set.
// Duplicate pids are not rejected; ranking between them is undefined.
func (s *Simulator) AddProcess(p *Process) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.procs = append(s.procs, p)
	return nil
}

// AddProcesses accumulates a batch of records. Each invalid record is
// rejected individually; valid records in the same batch are still added.
// The returned error joins every per-record rejection.
func (s *Simulator) AddProcesses(procs []*Process) error {
	var errs []error
	for _, p := range procs {
		if err := s.AddProcess(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Processes returns the accumulated caller-visible records. After a run
// their derived fields hold that run's results; callers must not mutate
// them while presenting.
func (s *Simulator) Processes() []*Process {
	return s.procs
}

// Run executes the policy over the accumulated set and aggregates metrics.
// An empty set yields an empty timeline and zero-valued metrics, not an
// error: comparing algorithms over a not-yet-configured set is expected.
// Run is idempotent; the policy resets every record before simulating.
func (s *Simulator) Run() *Result {
	logrus.Infof("starting %s run over %d processes", s.policy.Name(), len(s.procs))
	timeline := s.policy.Schedule(s.procs)
	m := NewMetrics(s.procs, timeline)
	logrus.Infof("finished %s run: makespan %d units", s.policy.Name(), m.TotalTime())
	return &Result{
		Algorithm:  s.policy.Name(),
		PerProcess: m.ProcessDetails(),
		Timeline:   timeline.Intervals(),
		Summary:    m.Summary(),
	}
}
