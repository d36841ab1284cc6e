package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioSpec is the YAML form of a batch parameterization.
// Loaded via LoadScenarioSpec(path); zero-valued optional fields fall back
// to the batch defaults when converted with ToConfig.
type ScenarioSpec struct {
	Seed           int64 `yaml:"seed"`
	NumSimulations int   `yaml:"num_simulations"`
	NumEpidemics   int   `yaml:"num_epidemics"`

	Gamma               float64 `yaml:"gamma,omitempty"`
	PopSize             int     `yaml:"pop_size,omitempty"`
	FracEstimateOfTotal float64 `yaml:"frac_estimate_of_total,omitempty"`
	MaxCurveSteps       int     `yaml:"max_curve_steps,omitempty"`

	Beta BetaSpec `yaml:"beta"`
}

// LoadScenarioSpec reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	var spec ScenarioSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec: %w", err)
	}
	return &spec, nil
}

// ToConfig converts the spec into a ScenarioConfig, filling defaults for
// omitted optional fields. The result still needs Validate before use.
func (s *ScenarioSpec) ToConfig() ScenarioConfig {
	cfg := NewScenarioConfig(s.Seed, s.NumSimulations, s.NumEpidemics, s.Beta)
	if s.Gamma != 0 {
		cfg.Gamma = s.Gamma
	}
	if s.PopSize != 0 {
		cfg.PopSize = s.PopSize
	}
	if s.FracEstimateOfTotal != 0 {
		cfg.FracEstimateOfTotal = s.FracEstimateOfTotal
	}
	if s.MaxCurveSteps != 0 {
		cfg.MaxCurveSteps = s.MaxCurveSteps
	}
	return cfg
}
