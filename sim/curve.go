package sim

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// DefaultMaxCurveSteps bounds the SIR recursion. Recovery empties the
// infected pool with probability 1 for gamma > 0, but pathological
// parameter combinations would otherwise loop forever.
const DefaultMaxCurveSteps = 100000

// ErrEpidemicDidNotTerminate reports a curve that exceeded the step cap
// with infected individuals remaining.
var ErrEpidemicDidNotTerminate = errors.New("epidemic did not terminate within step cap")

// sirState holds the three compartment counts of one epidemic in progress.
// The invariant susceptible+infected+recovered == popSize holds after every
// step.
type sirState struct {
	popSize     int
	susceptible int
	infected    int
	recovered   int
}

// newSIRState seeds an epidemic with exactly one infected individual.
func newSIRState(popSize int) *sirState {
	return &sirState{
		popSize:     popSize,
		susceptible: popSize - 1,
		infected:    1,
		recovered:   0,
	}
}

// step advances the epidemic by one timestep and returns the number of new
// infections drawn for that step.
func (st *sirState) step(beta, gamma float64, rng *rand.Rand) int {
	fracInfected := float64(st.infected) / float64(st.popSize)
	pInfect := 1 - math.Exp(-beta*fracInfected)
	newInfections := Binomial(rng, st.susceptible, pInfect)

	pRecover := 1 - math.Exp(-gamma)
	newRecoveries := Binomial(rng, st.infected, pRecover)

	st.infected += newInfections - newRecoveries
	st.recovered += newRecoveries
	st.susceptible -= newInfections
	return newInfections
}

// validateSIRParams fails fast on out-of-domain inputs, which the recursion
// itself does not guard against.
func validateSIRParams(popSize int, beta, gamma float64) error {
	if popSize <= 0 {
		return fmt.Errorf("pop_size must be positive, got %d", popSize)
	}
	if beta < 0 || math.IsInf(beta, 0) || math.IsNaN(beta) {
		return fmt.Errorf("beta must be finite and non-negative, got %f", beta)
	}
	if gamma < 0 || gamma > 1 || math.IsNaN(gamma) {
		return fmt.Errorf("gamma must be in [0, 1], got %f", gamma)
	}
	return nil
}

// GroundTruthCurve generates one complete epidemic realization as the
// sequence of new-infection counts per timestep. The epidemic starts with a
// single case at time 0 (the leading 1 in the output) and runs until no
// infected individuals remain.
//
// maxSteps caps the recursion; 0 means DefaultMaxCurveSteps. Exceeding the
// cap returns the partial curve wrapped in ErrEpidemicDidNotTerminate.
func GroundTruthCurve(popSize int, beta, gamma float64, maxSteps int, rng *rand.Rand) ([]int, error) {
	if err := validateSIRParams(popSize, beta, gamma); err != nil {
		return nil, err
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxCurveSteps
	}

	st := newSIRState(popSize)
	curve := []int{st.infected}

	for steps := 0; st.infected > 0; steps++ {
		if steps >= maxSteps {
			return curve, fmt.Errorf("pop_size=%d beta=%f gamma=%f after %d steps: %w",
				popSize, beta, gamma, maxSteps, ErrEpidemicDidNotTerminate)
		}
		curve = append(curve, st.step(beta, gamma, rng))
	}
	return curve, nil
}
