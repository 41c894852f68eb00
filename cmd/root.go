package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JayArr001/warehouse-sim/warehouse"
	"github.com/JayArr001/warehouse-sim/warehouse/workload"
)

var (
	// CLI flags for the queue and run shape
	capacity     int    // Bounded buffer capacity
	orders       int    // Number of orders to generate and fulfill
	queueKind    string // Queue implementation: monitor or channel
	seed         int64  // Seed for random order generation
	logLevel     string // Log verbosity level
	workloadFile string // Optional YAML order-generation spec

	// CLI flags for fulfillment pacing
	baseLatency    time.Duration // Fixed simulated cost per order
	perUnitLatency time.Duration // Simulated cost per quantity unit
	producerGap    time.Duration // Fixed delay between enqueues
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "warehouse-sim",
	Short: "Bounded producer/consumer simulator for warehouse order fulfillment",
}

// runCmd executes one fulfillment run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the order fulfillment simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if capacity <= 0 {
			logrus.Fatalf("Queue capacity must be positive, got %d", capacity)
		}
		if orders <= 0 {
			logrus.Fatalf("Order count must be positive, got %d", orders)
		}
		if !warehouse.IsValidQueueKind(queueKind) {
			logrus.Fatalf("Unknown queue kind %q; valid: monitor, channel", queueKind)
		}

		// Resolve the order-generation spec: YAML file if given,
		// otherwise the built-in catalog. An explicit --seed wins over
		// the spec's seed.
		spec := workload.DefaultWorkloadSpec()
		if workloadFile != "" {
			spec, err = workload.LoadWorkloadSpec(workloadFile)
			if err != nil {
				logrus.Fatalf("Unable to load workload spec: %v", err)
			}
		}
		if cmd.Flags().Changed("seed") {
			spec.Seed = seed
		}

		batch, err := workload.GenerateOrders(spec, orders)
		if err != nil {
			logrus.Fatalf("Unable to generate orders: %v", err)
		}

		// Log configuration
		logrus.Infof("Starting run: %d orders through a capacity-%d %s queue, seed=%d",
			orders, capacity, queueKind, spec.Seed)

		startTime := time.Now() // Get current time (start)

		// Initialize and run the simulation
		s := warehouse.NewSimulation(warehouse.SimConfig{
			QueueKind: queueKind,
			Capacity:  capacity,
			Target:    orders,
			Orders:    batch,
			Model:     warehouse.LinearModel{Base: baseLatency, PerUnit: perUnitLatency},
			Gap:       producerGap,
		})
		if err := s.Run(); err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		s.Metrics().Print()

		logrus.Infof("Run complete in %v.", time.Since(startTime).Round(time.Millisecond))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().IntVar(&capacity, "capacity", 3, "Bounded queue capacity")
	runCmd.Flags().IntVar(&orders, "orders", 15, "Number of orders to generate and fulfill")
	runCmd.Flags().StringVar(&queueKind, "queue", warehouse.QueueMonitor, "Queue implementation (monitor, channel)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random order generation")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&workloadFile, "workload", "", "Path to a YAML order-generation spec")

	// Fulfillment pacing
	runCmd.Flags().DurationVar(&baseLatency, "base-latency", 100*time.Millisecond, "Fixed simulated cost per order")
	runCmd.Flags().DurationVar(&perUnitLatency, "per-unit-latency", 20*time.Millisecond, "Simulated cost per quantity unit")
	runCmd.Flags().DurationVar(&producerGap, "producer-gap", 0, "Fixed delay between enqueues")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
