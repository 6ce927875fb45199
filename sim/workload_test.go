package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing spec: %v", err)
	}
	return path
}

func TestLoadWorkload_ValidSpec_Parses(t *testing.T) {
	// GIVEN a YAML workload spec with defaults and two processes
	path := writeSpec(t, `
algorithm: round_robin
quantum: 2
processes:
  - pid: 1
    arrival_time: 0
    burst_time: 5
  - pid: 2
    arrival_time: 1
    burst_time: 3
    priority: 1
`)

	// WHEN it is loaded
	spec, err := LoadWorkload(path)

	// THEN defaults and entries are populated
	assert.NoError(t, err)
	assert.Equal(t, AlgorithmRoundRobin, spec.Algorithm)
	assert.Equal(t, int64(2), spec.Quantum)
	assert.Len(t, spec.Processes, 2)
	assert.NoError(t, spec.Validate())
}

func TestLoadWorkload_MissingFile_Fails(t *testing.T) {
	spec, err := LoadWorkload(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Nil(t, spec)
	assert.Error(t, err)
}

func TestLoadWorkload_MalformedYAML_Fails(t *testing.T) {
	path := writeSpec(t, "processes: [pid: 1")

	spec, err := LoadWorkload(path)

	assert.Nil(t, spec)
	assert.Error(t, err)
}

func TestWorkloadSpec_Validate_UnknownAlgorithm(t *testing.T) {
	spec := &WorkloadSpec{Algorithm: "mlfq"}

	assert.ErrorIs(t, spec.Validate(), ErrUnknownAlgorithm)
}

func TestWorkloadSpec_Validate_BadProcessEntry(t *testing.T) {
	spec := &WorkloadSpec{
		Processes: []WorkloadProcess{{PID: 1, ArrivalTime: 0, BurstTime: 0}},
	}

	assert.ErrorIs(t, spec.Validate(), ErrInvalidProcess)
}

func TestWorkloadSpec_Validate_EmptyDefaultsAllowed(t *testing.T) {
	// No algorithm/quantum in the file is fine; the CLI supplies them.
	spec := &WorkloadSpec{Processes: []WorkloadProcess{{PID: 1, BurstTime: 1}}}

	assert.NoError(t, spec.Validate())
}

func TestWorkloadSpec_Build_MaterializesFreshRecords(t *testing.T) {
	spec := &WorkloadSpec{
		Processes: []WorkloadProcess{
			{PID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
			{PID: 2, ArrivalTime: 3, BurstTime: 1},
		},
	}

	procs := spec.Build()

	assert.Len(t, procs, 2)
	assert.Equal(t, StateNew, procs[0].State)
	assert.Equal(t, int64(5), procs[0].RemainingTime)
	assert.Equal(t, 2, procs[0].Priority)

	// building twice yields independent records
	again := spec.Build()
	again[0].State = StateTerminated
	assert.Equal(t, StateNew, procs[0].State)
}
