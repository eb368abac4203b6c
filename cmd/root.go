package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grocery-sim/grocery-sim/sim"
	"github.com/grocery-sim/grocery-sim/sim/trace"
)

var (
	// CLI flags for the run command
	configPath string // store configuration file (JSON or YAML)
	eventsPath string // event log file driving the run
	logLevel   string // log verbosity level
	traceDB    string // optional SQLite file for per-customer checkout traces
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "grocery-sim",
	Short: "Discrete-event simulator for grocery store checkout areas",
}

// runCmd executes a simulation from a store config and an event log.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a checkout simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := sim.LoadStoreConfig(configPath)
		if err != nil {
			logrus.Fatalf("Unable to load store config: %v", err)
		}

		f, err := os.Open(eventsPath)
		if err != nil {
			logrus.Fatalf("Unable to open event log: %v", err)
		}
		defer f.Close()

		events, err := sim.ReadEventLog(f)
		if err != nil {
			logrus.Fatalf("Unable to parse event log: %v", err)
		}
		if err := checkLineIndices(events, cfg.NumLines()); err != nil {
			logrus.Fatalf("Invalid event log: %v", err)
		}

		logrus.Infof("Starting simulation: %d regular, %d express, %d self-serve lines, capacity %d, %d initial events",
			cfg.RegularCount, cfg.ExpressCount, cfg.SelfServeCount, cfg.LineCapacity, len(events))

		s := sim.NewSimulation(cfg)

		var recorder *trace.Recorder
		if traceDB != "" {
			recorder, err = trace.NewRecorder(traceDB)
			if err != nil {
				logrus.Fatalf("Unable to open trace database: %v", err)
			}
			defer recorder.Close()
			s.SetObserver(&traceObserver{recorder: recorder})
			logrus.Infof("Recording checkout traces to %s (run %s)", traceDB, recorder.RunID())
		}

		s.Run(events)
		s.Stats.Print()

		if recorder != nil {
			if err := recorder.RecordSummary(s.Stats.NumCustomers, s.Stats.TotalTime, s.Stats.MaxWait); err != nil {
				logrus.Fatalf("Unable to record run summary: %v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// checkLineIndices rejects Close commands naming lines the store does not
// have. Catching this at the boundary keeps the core free of defensive
// index checks.
func checkLineIndices(events []sim.Event, numLines int) error {
	for _, ev := range events {
		if closeEv, ok := ev.(*sim.CloseLineEvent); ok && closeEv.Line >= numLines {
			return fmt.Errorf("Close names line %d but the store has %d lines", closeEv.Line, numLines)
		}
	}
	return nil
}

// traceObserver bridges the simulation's checkout hook to the SQLite
// recorder. Record errors abort the run; a half-written trace is worse than
// a loud failure.
type traceObserver struct {
	recorder *trace.Recorder
}

func (o *traceObserver) ObserveCheckout(c *sim.Customer, line int) {
	err := o.recorder.Record(trace.CheckoutRecord{
		Customer:    c.Name,
		Line:        line,
		NumItems:    c.NumItems(),
		ServiceTime: c.ItemTime(),
		ArrivalTime: c.ArrivalTime,
		Checkout:    c.CheckoutTime,
		Wait:        c.Wait(),
	})
	if err != nil {
		logrus.Fatalf("Unable to record checkout trace: %v", err)
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "store configuration file (JSON or YAML)")
	runCmd.Flags().StringVar(&eventsPath, "events", "", "event log file")
	runCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	runCmd.Flags().StringVar(&traceDB, "trace-db", "", "SQLite file to record per-customer checkout traces")
	_ = runCmd.MarkFlagRequired("config")
	_ = runCmd.MarkFlagRequired("events")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
