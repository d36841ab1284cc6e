package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator orchestrates one batch: num_simulations replicates of
// num_epidemics epidemic slots, sharing covariates and observation targets
// across replicates so that replicates differ only stochastically.
type Simulator struct {
	Config ScenarioConfig

	rng *PartitionedRNG
	gen BetaGenerator

	// FadeoutFallthroughs counts trajectories kept despite exhausting the
	// rejection-sampling cap. Populated by Run.
	FadeoutFallthroughs int
}

// NewSimulator validates cfg and prepares a Simulator.
func NewSimulator(cfg ScenarioConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario config: %w", err)
	}
	gen, err := NewBetaGenerator(cfg.Beta)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		Config: cfg,
		rng:    NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		gen:    gen,
	}, nil
}

// Run generates the full batch and returns the flat ordered trajectory
// sequence (simulation-major, epidemic-minor). Deterministic given the
// configured seed: two runs with identical configs produce identical output.
func (s *Simulator) Run() ([]DiseaseTrajectory, error) {
	cfg := s.Config

	// Covariates, betas, and observation targets are drawn once and held
	// fixed for every replicate.
	beta, v, alpha := s.gen.Generate(cfg.NumEpidemics, s.rng.ForSubsystem(SubsystemBeta))

	windowRNG := s.rng.ForSubsystem(SubsystemWindow)
	percentInfected := make([]float64, cfg.NumEpidemics)
	for k := range percentInfected {
		percentInfected[k] = Uniform(windowRNG, MinPercentInfected, MaxPercentInfected)
	}

	metadata := make([]EpidemicMetadata, cfg.NumEpidemics)
	for k := range metadata {
		metadata[k] = EpidemicMetadata{
			NumEpidemics:        cfg.NumEpidemics,
			EpidemicID:          k,
			FracEstimateOfTotal: cfg.FracEstimateOfTotal,
			PercentInfected:     percentInfected[k],
			PopSize:             cfg.PopSize,
			Beta:                beta[k],
			Gamma:               cfg.Gamma,
		}
	}

	epidemicRNG := s.rng.ForSubsystem(SubsystemEpidemic)
	trajectories := make([]DiseaseTrajectory, 0, cfg.NumSimulations*cfg.NumEpidemics)

	uniqueID := 0
	for j := 0; j < cfg.NumSimulations; j++ {
		for k := 0; k < cfg.NumEpidemics; k++ {
			md := metadata[k]
			observed, groundTruth, err := ObservedCurve(
				md.PercentInfected, md.PopSize, md.Beta, md.Gamma, cfg.MaxCurveSteps, epidemicRNG)
			if err != nil {
				var fe *FadeoutError
				if !errors.As(err, &fe) {
					return nil, fmt.Errorf("simulation %d epidemic %d: %w", j, k, err)
				}
				s.FadeoutFallthroughs++
				logrus.Warnf("simulation %d epidemic %d: %v; keeping sub-threshold curve", j, k, fe)
			}

			trajectories = append(trajectories, DiseaseTrajectory{
				UniqueID:                                uniqueID,
				SimulationNumber:                        j,
				EpidemicNumber:                          k,
				NumNewInfectionsOverTime:                observed,
				T:                                       timeIndex(len(observed)),
				CumulativeInfectionsOverTime:            NonPredictiveCumulative(observed),
				GroundTruthInfectionsOverTime:           groundTruth,
				GroundTruthT:                            timeIndex(len(groundTruth)),
				GroundTruthCumulativeInfectionsOverTime: NonPredictiveCumulative(groundTruth),
				EstimatedInfections:                     float64(sumInts(observed)) / md.FracEstimateOfTotal,
				TotalInfections:                         sumInts(groundTruth),
				V:                                       vColumn(v, k),
				Alpha:                                   alpha,
				Metadata:                                md,
			})
			uniqueID++

			logrus.Debugf("trajectory %d: simulation=%d epidemic=%d observed=%d/%d steps total=%d",
				uniqueID-1, j, k, len(observed), len(groundTruth), sumInts(groundTruth))
		}
	}

	logrus.Infof("generated %d trajectories (%d simulations x %d epidemics, %d fadeout fallthroughs)",
		len(trajectories), cfg.NumSimulations, cfg.NumEpidemics, s.FadeoutFallthroughs)
	return trajectories, nil
}
