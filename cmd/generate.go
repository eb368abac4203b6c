package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grocery-sim/grocery-sim/sim"
)

var (
	// CLI flags for the generate command
	genCustomers   int     // number of arrivals to generate
	genRate        float64 // mean arrivals per second
	genMaxItems    int     // max items per basket
	genMaxItemTime int64   // max seconds per item
	genSeed        int64   // RNG seed for reproducible logs
	genOut         string  // output path, "-" for stdout
)

// generateCmd emits a synthetic event log that run can consume.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic event log with Poisson arrivals",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sim.WorkloadConfig{
			Customers:   genCustomers,
			Rate:        genRate,
			MaxItems:    genMaxItems,
			MaxItemTime: genMaxItemTime,
			Seed:        genSeed,
		}

		out := os.Stdout
		if genOut != "-" {
			f, err := os.Create(genOut)
			if err != nil {
				logrus.Fatalf("Unable to create output file: %v", err)
			}
			defer f.Close()
			out = f
		}

		if err := sim.GenerateEventLog(out, cfg); err != nil {
			logrus.Fatalf("Unable to generate event log: %v", err)
		}
	},
}

func init() {
	generateCmd.Flags().IntVar(&genCustomers, "customers", 100, "number of customer arrivals")
	generateCmd.Flags().Float64Var(&genRate, "rate", 0.5, "mean arrivals per second")
	generateCmd.Flags().IntVar(&genMaxItems, "max-items", 10, "max items per basket")
	generateCmd.Flags().Int64Var(&genMaxItemTime, "max-item-time", 10, "max seconds per item")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "RNG seed")
	generateCmd.Flags().StringVar(&genOut, "out", "-", "output file (- for stdout)")

	rootCmd.AddCommand(generateCmd)
}
