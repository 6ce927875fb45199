package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
)

var (
	compareWorkloadPath string
	compareQuantum      int64
)

// compareCmd runs every algorithm over the same workload and prints one
// summary row per algorithm.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all scheduling algorithms over one workload",
	Run: func(cmd *cobra.Command, args []string) {
		spec := loadWorkload(compareWorkloadPath)
		quantum := compareQuantum
		if quantum == 0 {
			quantum = spec.Quantum
		}

		results := make([]*sim.Result, 0, len(sim.Algorithms()))
		for _, algorithm := range sim.Algorithms() {
			results = append(results, simulate(algorithm, quantum, spec))
		}
		fmt.Print(sim.RenderComparison(results))
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareWorkloadPath, "workload", "", "Path to workload YAML spec")
	compareCmd.Flags().Int64Var(&compareQuantum, "quantum", 0, "Round Robin quantum (default 4)")
	_ = compareCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(compareCmd)
}
