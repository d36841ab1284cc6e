package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the long-format column layout consumed by downstream
// training pipelines: one row per ground-truth timestep per trajectory.
var csvHeader = []string{
	"unique_id", "simulation", "epidemic", "t",
	"new_infections", "cumulative_infections", "observed",
	"beta", "gamma", "pop_size", "percent_infected",
	"estimated_infections", "total_infections",
}

// WriteCSV flattens trajectories into long-format CSV rows on w.
// Each ground-truth timestep becomes one row; the observed column is 1 for
// timesteps inside the observation window. Cumulative counts are the
// non-predictive running totals (strictly prior days).
func WriteCSV(w io.Writer, trajectories []DiseaseTrajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, tr := range trajectories {
		observedLen := len(tr.NumNewInfectionsOverTime)
		for t, n := range tr.GroundTruthInfectionsOverTime {
			observed := "0"
			if t < observedLen {
				observed = "1"
			}
			row := []string{
				strconv.Itoa(tr.UniqueID),
				strconv.Itoa(tr.SimulationNumber),
				strconv.Itoa(tr.EpidemicNumber),
				strconv.Itoa(t),
				strconv.Itoa(n),
				strconv.Itoa(tr.GroundTruthCumulativeInfectionsOverTime[t]),
				observed,
				formatFloat(tr.Metadata.Beta),
				formatFloat(tr.Metadata.Gamma),
				strconv.Itoa(tr.Metadata.PopSize),
				formatFloat(tr.Metadata.PercentInfected),
				formatFloat(tr.EstimatedInfections),
				strconv.Itoa(tr.TotalInfections),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing CSV row for trajectory %d: %w", tr.UniqueID, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
