package sim

import (
	"hash/fnv"

	"golang.org/x/exp/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible batch run.
// Two runs with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical trajectory sequences.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemEpidemic is the RNG subsystem for epidemic curve draws
	// (binomial infection and recovery counts). Uses the master seed
	// directly so --seed maps onto the curve stream.
	SubsystemEpidemic = "epidemic"

	// SubsystemBeta is the RNG subsystem for covariate and beta generation.
	SubsystemBeta = "beta"

	// SubsystemWindow is the RNG subsystem for per-epidemic observation
	// targets (percent-infected draws).
	SubsystemWindow = "window"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemEpidemic: uses the master seed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Isolation means adding draws in one subsystem (say, a new covariate in the
// beta generator) does not shift the sequence any other subsystem sees.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemEpidemic {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(uint64(derivedSeed)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
