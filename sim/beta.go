package sim

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// BetaGenerator produces per-epidemic transmission rates together with the
// covariates and weights that explain them.
//
// Generate returns beta of length numEpidemics, a covariate matrix v of
// shape (numCovariates, numEpidemics), and a weight vector alpha of length
// numCovariates (possibly empty when the effect is not linear in the
// covariates). Implementations are pure apart from draws on rng.
type BetaGenerator interface {
	Generate(numEpidemics int, rng *rand.Rand) (beta []float64, v [][]float64, alpha []float64)
}

// SingleRandomCovariate draws one U[0,1] covariate per epidemic with unit
// weight and maps it through beta = 0.4 * exp(alpha . v).
type SingleRandomCovariate struct{}

func (SingleRandomCovariate) Generate(numEpidemics int, rng *rand.Rand) ([]float64, [][]float64, []float64) {
	v := [][]float64{make([]float64, numEpidemics)}
	for k := 0; k < numEpidemics; k++ {
		v[0][k] = Uniform(rng, 0.0, 1.0)
	}
	alpha := []float64{1.0}

	beta := make([]float64, numEpidemics)
	for k := 0; k < numEpidemics; k++ {
		beta[k] = 0.4 * math.Exp(dotColumn(alpha, v, k))
	}
	return beta, v, alpha
}

// EffectModification draws two Bernoulli(0.5) covariates per epidemic
// (high-density, wears-mask) and applies a multiplicative interaction:
// beta = exp(ln 1.5 + ln 2 * 1[highDensity && !wearsMask]).
// The interaction is baked into the formula, so alpha is empty.
type EffectModification struct{}

func (EffectModification) Generate(numEpidemics int, rng *rand.Rand) ([]float64, [][]float64, []float64) {
	v := [][]float64{make([]float64, numEpidemics), make([]float64, numEpidemics)}
	for c := 0; c < 2; c++ {
		for k := 0; k < numEpidemics; k++ {
			v[c][k] = float64(Bernoulli(rng, 0.5))
		}
	}

	beta := make([]float64, numEpidemics)
	for k := 0; k < numEpidemics; k++ {
		effect := 0.0
		if v[0][k] == 1 && v[1][k] == 0 {
			effect = math.Log(2.0)
		}
		beta[k] = math.Exp(math.Log(1.5) + effect)
	}
	return beta, v, []float64{}
}

// ManyCovariates draws NumPredictive+NumNotPredictive U[-1,1] covariates per
// epidemic. The first NumPredictive covariates carry weight 1, the rest 0;
// beta = 1 + exp(alpha . v).
type ManyCovariates struct {
	NumPredictive    int
	NumNotPredictive int
}

func (g ManyCovariates) Generate(numEpidemics int, rng *rand.Rand) ([]float64, [][]float64, []float64) {
	numCov := g.NumPredictive + g.NumNotPredictive
	v := make([][]float64, numCov)
	for c := 0; c < numCov; c++ {
		v[c] = make([]float64, numEpidemics)
		for k := 0; k < numEpidemics; k++ {
			v[c][k] = Uniform(rng, -1.0, 1.0)
		}
	}

	alpha := make([]float64, numCov)
	for c := 0; c < g.NumPredictive; c++ {
		alpha[c] = 1.0
	}

	beta := make([]float64, numEpidemics)
	for k := 0; k < numEpidemics; k++ {
		beta[k] = 1 + math.Exp(dotColumn(alpha, v, k))
	}
	return beta, v, alpha
}

// dotColumn computes alpha . v[:, k].
func dotColumn(alpha []float64, v [][]float64, k int) float64 {
	sum := 0.0
	for c := range alpha {
		sum += alpha[c] * v[c][k]
	}
	return sum
}

// vColumn extracts column k of v as the covariate vector of one epidemic.
func vColumn(v [][]float64, k int) []float64 {
	col := make([]float64, len(v))
	for c := range v {
		col[c] = v[c][k]
	}
	return col
}

// Valid beta generator types.
const (
	BetaTypeSingleRandomCovariate = "single_random_covariate"
	BetaTypeEffectModification    = "effect_modification"
	BetaTypeManyCovariates        = "many_covariates"
)

// BetaSpec selects a BetaGenerator and its parameters.
// Loaded from the scenario YAML or populated from CLI flags.
type BetaSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("beta generator requires parameter %q", k)
		}
	}
	return nil
}

// NewBetaGenerator creates a BetaGenerator from a BetaSpec.
func NewBetaGenerator(spec BetaSpec) (BetaGenerator, error) {
	switch spec.Type {
	case BetaTypeSingleRandomCovariate:
		return SingleRandomCovariate{}, nil

	case BetaTypeEffectModification:
		return EffectModification{}, nil

	case BetaTypeManyCovariates:
		if err := requireParam(spec.Params, "num_predictive", "num_not_predictive"); err != nil {
			return nil, err
		}
		numPred := int(spec.Params["num_predictive"])
		numNotPred := int(spec.Params["num_not_predictive"])
		if numPred < 0 || numNotPred < 0 {
			return nil, fmt.Errorf("covariate counts must be non-negative, got num_predictive=%d num_not_predictive=%d", numPred, numNotPred)
		}
		return ManyCovariates{NumPredictive: numPred, NumNotPredictive: numNotPred}, nil

	default:
		return nil, fmt.Errorf("unknown beta generator type %q; valid: %s, %s, %s",
			spec.Type, BetaTypeSingleRandomCovariate, BetaTypeEffectModification, BetaTypeManyCovariates)
	}
}
