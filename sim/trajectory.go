package sim

// EpidemicMetadata describes one epidemic slot of a batch. It is shared,
// unchanged, across every simulation replicate of that slot.
type EpidemicMetadata struct {
	// NumEpidemics is the number of epidemic slots in the owning batch.
	NumEpidemics int
	// EpidemicID identifies this slot within the batch, 0-indexed.
	EpidemicID int
	// FracEstimateOfTotal is the assumed fraction of the full epidemic
	// already observed; observed totals are rescaled by it to estimate
	// the true total.
	FracEstimateOfTotal float64
	// PercentInfected is the target fraction of eventual total infections
	// that defines the observation cutoff.
	PercentInfected float64
	// PopSize is the total population.
	PopSize int
	// Beta is the per-epidemic transmission rate.
	Beta float64
	// Gamma is the per-timestep recovery probability parameter.
	Gamma float64
}

// DiseaseTrajectory is one simulated epidemic: the observed ("to date")
// prefix, the complete ground truth, and the covariates that generated its
// transmission rate. Immutable once constructed.
type DiseaseTrajectory struct {
	// UniqueID is globally unique within a batch, assigned sequentially
	// from 0 in generation order.
	UniqueID         int
	SimulationNumber int
	EpidemicNumber   int

	// NumNewInfectionsOverTime is the observed new-infection series,
	// truncated at the observation cutoff.
	NumNewInfectionsOverTime []int
	// T indexes the observed series, 0..len-1.
	T []int
	// CumulativeInfectionsOverTime is the non-predictive running total:
	// entry i counts infections strictly before day i.
	CumulativeInfectionsOverTime []int

	// Ground-truth counterparts covering the complete epidemic.
	GroundTruthInfectionsOverTime           []int
	GroundTruthT                            []int
	GroundTruthCumulativeInfectionsOverTime []int

	// EstimatedInfections is the observed total rescaled by the metadata's
	// FracEstimateOfTotal.
	EstimatedInfections float64
	// TotalInfections is the true final total of the ground-truth curve.
	TotalInfections int

	// V holds this epidemic's covariate values; Alpha the covariate
	// weights shared across the batch.
	V     []float64
	Alpha []float64

	Metadata EpidemicMetadata
}

// NonPredictiveCumulative returns the running totals of series where entry i
// sums the counts strictly before day i: entry 0 is 0 and the current day's
// count is always excluded.
func NonPredictiveCumulative(series []int) []int {
	out := make([]int, len(series))
	sum := 0
	for i, n := range series {
		out[i] = sum
		sum += n
	}
	return out
}

// timeIndex returns 0..n-1.
func timeIndex(n int) []int {
	t := make([]int, n)
	for i := range t {
		t[i] = i
	}
	return t
}

// sumInts totals a count series.
func sumInts(series []int) int {
	sum := 0
	for _, n := range series {
		sum += n
	}
	return sum
}
