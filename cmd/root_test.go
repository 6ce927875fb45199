package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procsim/procsim/sim"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range []string{"run", "compare", "serve"} {
		assert.True(t, registered[name], "subcommand %q not registered", name)
	}
}

func TestSimulate_RunsWorkloadSpec(t *testing.T) {
	spec := &sim.WorkloadSpec{
		Processes: []sim.WorkloadProcess{
			{PID: 1, ArrivalTime: 0, BurstTime: 4},
			{PID: 2, ArrivalTime: 1, BurstTime: 3},
			{PID: 3, ArrivalTime: 2, BurstTime: 1},
		},
	}

	res := simulate(sim.AlgorithmFCFS, 0, spec)

	assert.Equal(t, int64(8), res.Summary.TotalTime)
	assert.Len(t, res.Timeline, 3)
}
