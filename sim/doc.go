// Package sim implements a discrete-time stochastic SIR epidemic simulator
// that produces batches of disease trajectories for forecasting research.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - curve.go: the stochastic SIR recursion producing one complete epidemic curve
//   - window.go: fadeout rejection sampling and observation-window truncation
//   - simulator.go: the batch orchestrator composing generators into trajectories
//
// # Architecture
//
// A batch run is parameterized by a ScenarioConfig (config.go), typically
// loaded from a YAML ScenarioSpec (scenario.go). Per-epidemic transmission
// rates come from a BetaGenerator (beta.go); three built-in strategies map
// covariates to beta. All randomness flows through a PartitionedRNG (rng.go)
// so that beta generation, observation targets, and epidemic draws use
// isolated deterministic streams derived from a single seed.
//
// The output is a flat ordered slice of DiseaseTrajectory records
// (trajectory.go), pure data with no behavior. summary.go aggregates
// statistics over a finished batch and export.go flattens it to CSV for
// downstream training pipelines.
package sim
