package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec describes a process set, loadable from a YAML file.
// Algorithm and quantum are optional defaults the CLI can override;
// empty string / zero mean "not set".
type WorkloadSpec struct {
	Algorithm string            `yaml:"algorithm"`
	Quantum   int64             `yaml:"quantum"`
	Processes []WorkloadProcess `yaml:"processes"`
}

// WorkloadProcess is one process entry in a workload spec.
type WorkloadProcess struct {
	PID         int   `yaml:"pid"`
	ArrivalTime int64 `yaml:"arrival_time"`
	BurstTime   int64 `yaml:"burst_time"`
	Priority    int   `yaml:"priority"`
}

// LoadWorkload reads and parses a YAML workload spec file.
func LoadWorkload(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks the algorithm name, quantum range, and every process entry.
func (w *WorkloadSpec) Validate() error {
	if w.Algorithm != "" && !ValidAlgorithms[w.Algorithm] {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, w.Algorithm)
	}
	if w.Quantum < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantum, w.Quantum)
	}
	for i, wp := range w.Processes {
		if err := wp.build().Validate(); err != nil {
			return fmt.Errorf("process %d: %w", i, err)
		}
	}
	return nil
}

// Build materializes the spec's entries as fresh Process records.
func (w *WorkloadSpec) Build() []*Process {
	procs := make([]*Process, 0, len(w.Processes))
	for _, wp := range w.Processes {
		procs = append(procs, wp.build())
	}
	return procs
}

func (wp WorkloadProcess) build() *Process {
	return NewProcess(wp.PID, wp.ArrivalTime, wp.BurstTime, wp.Priority)
}
