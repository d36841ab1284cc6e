package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioSpec(t *testing.T) {
	path := writeScenarioFile(t, `
seed: 42
num_simulations: 3
num_epidemics: 7
gamma: 0.25
pop_size: 5000
frac_estimate_of_total: 0.4
beta:
  type: many_covariates
  params:
    num_predictive: 2
    num_not_predictive: 1
`)

	spec, err := LoadScenarioSpec(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), spec.Seed)
	assert.Equal(t, 3, spec.NumSimulations)
	assert.Equal(t, 7, spec.NumEpidemics)
	assert.Equal(t, 0.25, spec.Gamma)
	assert.Equal(t, 5000, spec.PopSize)
	assert.Equal(t, 0.4, spec.FracEstimateOfTotal)
	assert.Equal(t, BetaTypeManyCovariates, spec.Beta.Type)
	assert.Equal(t, 2.0, spec.Beta.Params["num_predictive"])
}

func TestLoadScenarioSpec_RejectsUnknownKeys(t *testing.T) {
	path := writeScenarioFile(t, `
seed: 1
num_simulatons: 3
num_epidemics: 7
`)

	_, err := LoadScenarioSpec(path)
	assert.ErrorContains(t, err, "parsing scenario spec")
}

func TestLoadScenarioSpec_MissingFile(t *testing.T) {
	_, err := LoadScenarioSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading scenario spec")
}

func TestScenarioSpec_ToConfigAppliesDefaults(t *testing.T) {
	spec := &ScenarioSpec{
		Seed:           9,
		NumSimulations: 2,
		NumEpidemics:   4,
		Beta:           BetaSpec{Type: BetaTypeSingleRandomCovariate},
	}

	cfg := spec.ToConfig()
	assert.Equal(t, DefaultGamma, cfg.Gamma)
	assert.Equal(t, DefaultPopSize, cfg.PopSize)
	assert.Equal(t, DefaultFracEstimateOfTotal, cfg.FracEstimateOfTotal)
	assert.Equal(t, DefaultMaxCurveSteps, cfg.MaxCurveSteps)
	assert.NoError(t, cfg.Validate())
}

func TestScenarioSpec_ToConfigKeepsExplicitValues(t *testing.T) {
	spec := &ScenarioSpec{
		Seed:                9,
		NumSimulations:      2,
		NumEpidemics:        4,
		Gamma:               0.5,
		PopSize:             200,
		FracEstimateOfTotal: 0.9,
		MaxCurveSteps:       777,
		Beta:                BetaSpec{Type: BetaTypeEffectModification},
	}

	cfg := spec.ToConfig()
	assert.Equal(t, 0.5, cfg.Gamma)
	assert.Equal(t, 200, cfg.PopSize)
	assert.Equal(t, 0.9, cfg.FracEstimateOfTotal)
	assert.Equal(t, 777, cfg.MaxCurveSteps)
}

func TestScenarioSpec_EndToEnd(t *testing.T) {
	path := writeScenarioFile(t, `
seed: 11
num_simulations: 2
num_epidemics: 2
pop_size: 1000
beta:
  type: single_random_covariate
`)

	spec, err := LoadScenarioSpec(path)
	require.NoError(t, err)

	s, err := NewSimulator(spec.ToConfig())
	require.NoError(t, err)

	trajectories, err := s.Run()
	require.NoError(t, err)
	assert.Len(t, trajectories, 4)
}
