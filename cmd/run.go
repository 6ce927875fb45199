package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
)

var (
	runWorkloadPath string // Path to the workload YAML spec
	runAlgorithm    string // Algorithm name; overrides the spec's default
	runQuantum      int64  // Round Robin quantum; overrides the spec's default
)

// runCmd executes one algorithm over a workload and prints the report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		spec := loadWorkload(runWorkloadPath)

		algorithm := runAlgorithm
		if algorithm == "" {
			algorithm = spec.Algorithm
		}
		if algorithm == "" {
			logrus.Fatalf("No algorithm given: set --algorithm or the spec's algorithm field (one of %v)", sim.Algorithms())
		}
		quantum := runQuantum
		if quantum == 0 {
			quantum = spec.Quantum
		}

		res := simulate(algorithm, quantum, spec)
		if chart := sim.RenderGantt(res.Timeline); chart != "" {
			fmt.Println(chart)
		}
		fmt.Print(sim.RenderReport(res))
	},
}

func init() {
	runCmd.Flags().StringVar(&runWorkloadPath, "workload", "", "Path to workload YAML spec")
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "", "Scheduling algorithm name")
	runCmd.Flags().Int64Var(&runQuantum, "quantum", 0, "Round Robin quantum (default 4)")
	_ = runCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(runCmd)
}

// loadWorkload loads and validates a workload spec, fatally on any error.
func loadWorkload(path string) *sim.WorkloadSpec {
	spec, err := sim.LoadWorkload(path)
	if err != nil {
		logrus.Fatalf("Failed to load workload: %v", err)
	}
	if err := spec.Validate(); err != nil {
		logrus.Fatalf("Invalid workload: %v", err)
	}
	return spec
}

// simulate builds a simulator for the algorithm, feeds it the workload's
// processes, and runs it.
func simulate(algorithm string, quantum int64, spec *sim.WorkloadSpec) *sim.Result {
	s, err := sim.NewSimulator(algorithm, quantum)
	if err != nil {
		logrus.Fatalf("Configuration error: %v", err)
	}
	if err := s.AddProcesses(spec.Build()); err != nil {
		logrus.Fatalf("Rejected process records: %v", err)
	}
	return s.Run()
}
