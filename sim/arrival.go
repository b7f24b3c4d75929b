package sim

import "math/rand"

// VoterGenerator lazily produces the day's time-ordered arrival
// sequence for a precinct. Randomness comes from an explicitly seeded
// generator instance, never from global state, so the same seed always
// reproduces the same sequence.
//
// Per candidate voter it draws three values in fixed order: an
// exponential inter-arrival gap, an exponential voting duration, and a
// Bernoulli impatience flag. Changing the draw order would change the
// entire downstream sequence for a given seed.
type VoterGenerator struct {
	cfg         PrecinctConfig
	rng         *rand.Rand
	currentTime float64
	produced    int
	done        bool
}

// NewVoterGenerator creates a generator for cfg seeded with seed.
func NewVoterGenerator(cfg PrecinctConfig, seed int64) *VoterGenerator {
	return &VoterGenerator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next arriving voter, or nil once the sequence is
// exhausted. Generation stops after cfg.NumVoters voters, or when a
// candidate's cumulative arrival time first exceeds closing time; that
// candidate is discarded.
func (g *VoterGenerator) Next() *Voter {
	if g.done || g.produced >= g.cfg.NumVoters {
		g.done = true
		return nil
	}
	gap := g.rng.ExpFloat64() / g.cfg.ArrivalRate
	duration := g.rng.ExpFloat64() / g.cfg.VotingDurationRate
	impatient := g.rng.Float64() < g.cfg.ImpatienceProb

	g.currentTime += gap
	if g.currentTime > g.cfg.ClosingTime() {
		g.done = true
		return nil
	}
	g.produced++
	return &Voter{
		ArrivalTime:    g.currentTime,
		VotingDuration: duration,
		IsImpatient:    impatient,
	}
}

// GenerateVoters materializes the full arrival sequence for a seed.
func GenerateVoters(cfg PrecinctConfig, seed int64) []*Voter {
	g := NewVoterGenerator(cfg, seed)
	voters := make([]*Voter, 0, cfg.NumVoters)
	for v := g.Next(); v != nil; v = g.Next() {
		voters = append(voters, v)
	}
	return voters
}
