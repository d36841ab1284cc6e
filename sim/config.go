package sim

import "fmt"

// Batch-wide defaults.
const (
	DefaultGamma               = 0.33
	DefaultPopSize             = 10000
	DefaultFracEstimateOfTotal = 0.5
)

// Per-slot observation targets are drawn from U(MinPercentInfected, MaxPercentInfected).
const (
	MinPercentInfected = 0.05
	MaxPercentInfected = 1.0
)

// ScenarioConfig groups all parameters of one batch run.
type ScenarioConfig struct {
	Seed           int64 // master seed for the partitioned RNG
	NumSimulations int   // replicates per epidemic slot
	NumEpidemics   int   // epidemic slots per replicate

	Gamma               float64 // per-timestep recovery probability (default 0.33)
	PopSize             int     // total population (default 10000)
	FracEstimateOfTotal float64 // assumed observed fraction for total estimates (default 0.5)
	MaxCurveSteps       int     // SIR recursion cap (default DefaultMaxCurveSteps)

	Beta BetaSpec // transmission-rate generator selection
}

// NewScenarioConfig returns a ScenarioConfig with batch defaults applied.
func NewScenarioConfig(seed int64, numSimulations, numEpidemics int, beta BetaSpec) ScenarioConfig {
	return ScenarioConfig{
		Seed:                seed,
		NumSimulations:      numSimulations,
		NumEpidemics:        numEpidemics,
		Gamma:               DefaultGamma,
		PopSize:             DefaultPopSize,
		FracEstimateOfTotal: DefaultFracEstimateOfTotal,
		MaxCurveSteps:       DefaultMaxCurveSteps,
		Beta:                beta,
	}
}

// Validate checks that all fields are inside their documented domains.
func (c *ScenarioConfig) Validate() error {
	if c.NumSimulations <= 0 {
		return fmt.Errorf("num_simulations must be positive, got %d", c.NumSimulations)
	}
	if c.NumEpidemics <= 0 {
		return fmt.Errorf("num_epidemics must be positive, got %d", c.NumEpidemics)
	}
	if c.Gamma <= 0 || c.Gamma >= 1 {
		return fmt.Errorf("gamma must be in (0, 1), got %f", c.Gamma)
	}
	if c.PopSize <= 0 {
		return fmt.Errorf("pop_size must be positive, got %d", c.PopSize)
	}
	if c.FracEstimateOfTotal <= 0 || c.FracEstimateOfTotal > 1 {
		return fmt.Errorf("frac_estimate_of_total must be in (0, 1], got %f", c.FracEstimateOfTotal)
	}
	if c.MaxCurveSteps < 0 {
		return fmt.Errorf("max_curve_steps must be non-negative, got %d", c.MaxCurveSteps)
	}
	if _, err := NewBetaGenerator(c.Beta); err != nil {
		return err
	}
	return nil
}
