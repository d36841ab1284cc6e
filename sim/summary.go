package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// BatchSummary aggregates statistics over a finished batch.
type BatchSummary struct {
	Trajectories int
	SubThreshold int // trajectories whose true total is below FadeoutThreshold

	MeanTotalInfections   float64
	MedianTotalInfections float64
	MeanObservedFraction  float64 // mean of len(observed)/len(ground truth)

	MinDuration int // shortest ground-truth curve, in timesteps
	MaxDuration int
}

// Summarize computes aggregate statistics over a trajectory batch.
// Safe for nil or empty batches (returns zero-value fields).
func Summarize(trajectories []DiseaseTrajectory) *BatchSummary {
	summary := &BatchSummary{}
	if len(trajectories) == 0 {
		return summary
	}

	summary.Trajectories = len(trajectories)
	summary.MinDuration = len(trajectories[0].GroundTruthInfectionsOverTime)

	totals := make([]float64, 0, len(trajectories))
	observedFractionSum := 0.0
	for _, tr := range trajectories {
		totals = append(totals, float64(tr.TotalInfections))
		if tr.TotalInfections < FadeoutThreshold {
			summary.SubThreshold++
		}

		duration := len(tr.GroundTruthInfectionsOverTime)
		if duration < summary.MinDuration {
			summary.MinDuration = duration
		}
		if duration > summary.MaxDuration {
			summary.MaxDuration = duration
		}
		if duration > 0 {
			observedFractionSum += float64(len(tr.NumNewInfectionsOverTime)) / float64(duration)
		}
	}

	summary.MeanTotalInfections = stat.Mean(totals, nil)
	sort.Float64s(totals)
	summary.MedianTotalInfections = stat.Quantile(0.5, stat.Empirical, totals, nil)
	summary.MeanObservedFraction = observedFractionSum / float64(len(trajectories))

	return summary
}
