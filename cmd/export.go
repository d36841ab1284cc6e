package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/epi-sim/epi-sim/sim"
)

var exportFormat string // Output format: csv or yaml

// exportCmd runs a batch and writes the trajectory dataset to stdout for
// piping into downstream training pipelines.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run a simulation batch and write the dataset to stdout",
	Long:  "Run a simulation batch and write the resulting trajectories to stdout, as long-format CSV rows (one per timestep) or as a YAML document.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := buildConfig()
		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Unable to build simulator: %v", err)
		}

		trajectories, err := s.Run()
		if err != nil {
			logrus.Fatalf("Batch failed: %v", err)
		}

		switch exportFormat {
		case "csv":
			if err := sim.WriteCSV(os.Stdout, trajectories); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
		case "yaml":
			out, err := yaml.Marshal(trajectories)
			if err != nil {
				logrus.Fatalf("YAML export failed: %v", err)
			}
			if _, err := os.Stdout.Write(out); err != nil {
				logrus.Fatalf("YAML export failed: %v", err)
			}
		default:
			logrus.Fatalf("Unknown export format %q; valid: csv, yaml", exportFormat)
		}
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format (csv, yaml)")
}
