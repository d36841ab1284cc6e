package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epi-sim/epi-sim/sim"
)

var (
	// CLI flags for batch parameterization
	seed           int64   // Seed for the partitioned RNG
	logLevel       string  // Log verbosity level
	scenarioPath   string  // Optional YAML scenario file (overrides flags)
	numSimulations int     // Replicates per epidemic slot
	numEpidemics   int     // Epidemic slots per replicate
	gamma          float64 // Per-timestep recovery probability
	popSize        int     // Total population per epidemic
	fracEstimate   float64 // Assumed observed fraction for total estimates
	maxCurveSteps  int     // SIR recursion step cap

	// CLI flags for beta generation
	betaGenType      string // Beta generator type
	numPredictive    int    // Predictive covariate count (many_covariates)
	numNotPredictive int    // Non-predictive covariate count (many_covariates)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "epi-sim",
	Short: "Stochastic SIR epidemic-curve simulator for forecasting datasets",
}

// buildConfig assembles a ScenarioConfig from the scenario file if one was
// given, otherwise from CLI flags.
func buildConfig() sim.ScenarioConfig {
	if scenarioPath != "" {
		spec, err := sim.LoadScenarioSpec(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		return spec.ToConfig()
	}

	cfg := sim.NewScenarioConfig(seed, numSimulations, numEpidemics, betaSpecFromFlags())
	cfg.Gamma = gamma
	cfg.PopSize = popSize
	cfg.FracEstimateOfTotal = fracEstimate
	cfg.MaxCurveSteps = maxCurveSteps
	return cfg
}

func betaSpecFromFlags() sim.BetaSpec {
	spec := sim.BetaSpec{Type: betaGenType}
	if betaGenType == sim.BetaTypeManyCovariates {
		spec.Params = map[string]float64{
			"num_predictive":     float64(numPredictive),
			"num_not_predictive": float64(numNotPredictive),
		}
	}
	return spec
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes a batch using parameters from CLI flags or a scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation batch and print summary statistics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := buildConfig()
		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Unable to build simulator: %v", err)
		}

		logrus.Infof("Starting batch: %d simulations x %d epidemics, pop_size=%d, gamma=%v, beta generator=%q",
			cfg.NumSimulations, cfg.NumEpidemics, cfg.PopSize, cfg.Gamma, cfg.Beta.Type)

		startTime := time.Now()
		trajectories, err := s.Run()
		if err != nil {
			logrus.Fatalf("Batch failed: %v", err)
		}

		summary := sim.Summarize(trajectories)
		logrus.Infof("Batch complete in %v: %d trajectories, mean total=%.1f, median total=%.1f, mean observed fraction=%.2f, durations %d-%d steps, %d sub-threshold",
			time.Since(startTime), summary.Trajectories, summary.MeanTotalInfections,
			summary.MedianTotalInfections, summary.MeanObservedFraction,
			summary.MinDuration, summary.MaxDuration, summary.SubThreshold)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addBatchFlags registers the shared batch parameterization flags.
func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic trajectory generation")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides batch flags)")

	cmd.Flags().IntVar(&numSimulations, "num-simulations", 1, "Number of simulation replicates")
	cmd.Flags().IntVar(&numEpidemics, "num-epidemics", 10, "Number of epidemic slots per replicate")
	cmd.Flags().Float64Var(&gamma, "gamma", sim.DefaultGamma, "Per-timestep recovery probability")
	cmd.Flags().IntVar(&popSize, "pop-size", sim.DefaultPopSize, "Population size per epidemic")
	cmd.Flags().Float64Var(&fracEstimate, "frac-estimate-of-total", sim.DefaultFracEstimateOfTotal, "Assumed observed fraction used to rescale observed totals")
	cmd.Flags().IntVar(&maxCurveSteps, "max-curve-steps", sim.DefaultMaxCurveSteps, "Step cap for a single epidemic curve")

	cmd.Flags().StringVar(&betaGenType, "beta-generator", sim.BetaTypeSingleRandomCovariate, "Beta generator type (single_random_covariate, effect_modification, many_covariates)")
	cmd.Flags().IntVar(&numPredictive, "num-predictive", 1, "Predictive covariate count (many_covariates only)")
	cmd.Flags().IntVar(&numNotPredictive, "num-not-predictive", 0, "Non-predictive covariate count (many_covariates only)")
}

// init sets up CLI flags and subcommands
func init() {
	addBatchFlags(runCmd)
	addBatchFlags(exportCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exportCmd)
}
