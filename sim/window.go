package sim

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	// FadeoutThreshold is the minimum total infection count a curve must
	// reach; realizations below it are stochastic fadeouts that carry no
	// usable beta signal and are rejected.
	FadeoutThreshold = 10

	// MaxFadeoutAttempts caps the rejection-sampling loop.
	MaxFadeoutAttempts = 5000

	// MinObservedSteps floors the observation window length.
	MinObservedSteps = 2
)

// FadeoutError reports that rejection sampling exhausted MaxFadeoutAttempts
// without reaching FadeoutThreshold. It is recoverable: the accompanying
// curves are the last (sub-threshold) realization and remain usable.
type FadeoutError struct {
	Attempts        int
	TotalInfections int
}

func (e *FadeoutError) Error() string {
	return fmt.Sprintf("fadeout threshold not reached: %d total infections after %d attempts (want >= %d)",
		e.TotalInfections, e.Attempts, FadeoutThreshold)
}

// ObservedCurve generates a complete epidemic realization and truncates it
// to the window an observer would have seen once percentInfected of the
// eventual total had occurred.
//
// Curves totalling fewer than FadeoutThreshold infections are resampled, up
// to MaxFadeoutAttempts. On exhaustion the last curve is returned together
// with a *FadeoutError; callers may log and proceed.
//
// The observed window always spans at least MinObservedSteps timesteps and
// never exceeds the ground-truth length.
func ObservedCurve(percentInfected float64, popSize int, beta, gamma float64, maxSteps int, rng *rand.Rand) (observed, groundTruth []int, err error) {
	if percentInfected < 0 || percentInfected >= 1 {
		return nil, nil, fmt.Errorf("percent_infected must be in [0, 1), got %f", percentInfected)
	}

	total := 0
	attempts := 0
	for total < FadeoutThreshold && attempts < MaxFadeoutAttempts {
		groundTruth, err = GroundTruthCurve(popSize, beta, gamma, maxSteps, rng)
		if err != nil {
			return nil, nil, err
		}
		total = sumInts(groundTruth)
		attempts++
	}
	if total < FadeoutThreshold {
		err = &FadeoutError{Attempts: attempts, TotalInfections: total}
	}

	targetSize := float64(total) * percentInfected

	// Observation stops at the last timestep whose running cumulative count
	// is still below the target, floored so the window is never shorter
	// than MinObservedSteps.
	currentTime := MinObservedSteps
	cumulative := 0
	for i, n := range groundTruth {
		cumulative += n
		if float64(cumulative) < targetSize && i > currentTime {
			currentTime = i
		}
	}
	if currentTime > len(groundTruth) {
		currentTime = len(groundTruth)
	}

	observed = groundTruth[:currentTime]
	return observed, groundTruth, err
}
