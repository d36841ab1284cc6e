package sim

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservedCurve_WindowBounds(t *testing.T) {
	rng := newTestRNG(30)
	for i := 0; i < 50; i++ {
		observed, groundTruth, err := ObservedCurve(0.5, 10000, 0.5, 0.33, 0, rng)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(observed), MinObservedSteps)
		assert.LessOrEqual(t, len(observed), len(groundTruth))
		assert.Equal(t, groundTruth[:len(observed)], observed, "observed must be a prefix of ground truth")
	}
}

func TestObservedCurve_FadeoutRejection(t *testing.T) {
	rng := newTestRNG(31)
	for i := 0; i < 50; i++ {
		_, groundTruth, err := ObservedCurve(0.5, 10000, 0.5, 0.33, 0, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sumInts(groundTruth), FadeoutThreshold)
	}
}

func TestObservedCurve_TinyTargetFlooredAtTwoSteps(t *testing.T) {
	rng := newTestRNG(32)
	observed, _, err := ObservedCurve(0.0, 10000, 0.5, 0.33, 0, rng)
	require.NoError(t, err)
	assert.Equal(t, MinObservedSteps, len(observed))
}

func TestObservedCurve_FadeoutCapExhaustion(t *testing.T) {
	// beta=0 means the seed case never spreads: every curve totals 1, so
	// all MaxFadeoutAttempts are spent and the last curve is kept.
	rng := newTestRNG(33)
	observed, groundTruth, err := ObservedCurve(0.5, 100, 0.0, 0.9, 0, rng)

	var fe *FadeoutError
	require.True(t, errors.As(err, &fe), "want *FadeoutError, got %v", err)
	assert.Equal(t, MaxFadeoutAttempts, fe.Attempts)
	assert.Less(t, fe.TotalInfections, FadeoutThreshold)

	// The sub-threshold result is still usable.
	assert.NotEmpty(t, groundTruth)
	assert.GreaterOrEqual(t, len(observed), MinObservedSteps)
	assert.LessOrEqual(t, len(observed), len(groundTruth))
}

func TestObservedCurve_PercentInfectedValidation(t *testing.T) {
	rng := newTestRNG(34)

	_, _, err := ObservedCurve(1.0, 100, 0.5, 0.33, 0, rng)
	assert.ErrorContains(t, err, "percent_infected")

	_, _, err = ObservedCurve(-0.1, 100, 0.5, 0.33, 0, rng)
	assert.ErrorContains(t, err, "percent_infected")
}

func TestObservedCurve_OutbreakSizeSanity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping outbreak-size sweep in short mode")
	}

	// pop_size=10000, beta=0.5, gamma=0.33: R0 ~ 1.5, so the median final
	// size of non-fadeout realizations should be a substantial outbreak.
	rng := newTestRNG(35)
	totals := make([]float64, 0, 300)
	for i := 0; i < 300; i++ {
		_, groundTruth, err := ObservedCurve(0.5, 10000, 0.5, 0.33, 0, rng)
		require.NoError(t, err)

		total := sumInts(groundTruth)
		require.GreaterOrEqual(t, total, FadeoutThreshold)
		totals = append(totals, float64(total))
	}

	sort.Float64s(totals)
	median := totals[len(totals)/2]
	assert.Greater(t, median, 500.0, "median outbreak implausibly small")
	assert.LessOrEqual(t, median, 10000.0, "median outbreak exceeds population")
}
