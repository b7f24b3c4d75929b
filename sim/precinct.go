package sim

import "github.com/sirupsen/logrus"

// PrecinctConfig holds the immutable parameters of one polling
// location. Rates are per minute; ImpatienceProb is the probability
// that a generated voter is impatient.
type PrecinctConfig struct {
	Name               string
	HoursOpen          int
	NumVoters          int
	ArrivalRate        float64
	VotingDurationRate float64
	ImpatienceProb     float64
}

// ClosingTime returns the poll-closing time in minutes after opening.
func (c PrecinctConfig) ClosingTime() float64 {
	return float64(c.HoursOpen) * 60
}

// Precinct simulates election day for one polling location.
type Precinct struct {
	Config PrecinctConfig
}

// NewPrecinct creates a Precinct from its configuration.
func NewPrecinct(cfg PrecinctConfig) *Precinct {
	return &Precinct{Config: cfg}
}

// Simulate runs one election day with the given seed, booth pool, and
// impatience threshold (the wait, in minutes, beyond which an
// impatient voter abandons the line). It returns every generated
// voter, voted or not, in arrival order.
//
// Each run needs a fresh pool; the pool is mutated in place.
func (p *Precinct) Simulate(seed int64, booths *BoothPool, impatienceThreshold float64) []*Voter {
	voters := GenerateVoters(p.Config, seed)
	logrus.Debugf("precinct %s: simulating %d arrivals with %d booths, threshold %.1f",
		p.Config.Name, len(voters), booths.Capacity(), impatienceThreshold)
	return simulateArrivals(voters, booths, impatienceThreshold)
}

// simulateArrivals drives the admission state machine over a
// time-ordered arrival sequence, single pass, no backtracking. The
// outcome list has the same length and order as the input.
func simulateArrivals(voters []*Voter, booths *BoothPool, impatienceThreshold float64) []*Voter {
	outcomes := make([]*Voter, 0, len(voters))
	for _, v := range voters {
		placeVoter(v, booths, impatienceThreshold)
		outcomes = append(outcomes, v)
	}
	return outcomes
}

// placeVoter decides one arrival: admit immediately, wait, or leave
// unvoted. Time advances only through the arrival times processed
// here. Booths are never proactively vacated; a stale occupant is
// discovered, and evicted one per admission decision, exactly when a
// new arrival needs the slot.
func placeVoter(v *Voter, booths *BoothPool, impatienceThreshold float64) {
	if booths.Available() {
		v.beginVoting(v.ArrivalTime)
		booths.Admit(v)
		logrus.Debugf("<< arrival at %.2f: admitted immediately", v.ArrivalTime)
		return
	}

	nextFree := booths.NextFreeTime()
	if v.ArrivalTime > nextFree {
		// The earliest occupant already left before this voter
		// arrived; the vacancy is only discovered now.
		booths.ReleaseEarliest()
		v.beginVoting(v.ArrivalTime)
		booths.Admit(v)
		logrus.Debugf("<< arrival at %.2f: admitted into stale booth free since %.2f", v.ArrivalTime, nextFree)
		return
	}

	wait := nextFree - v.ArrivalTime
	if wait > impatienceThreshold && v.IsImpatient {
		logrus.Debugf("<< arrival at %.2f: left unvoted, refused a %.2f minute wait", v.ArrivalTime, wait)
		return
	}

	booths.ReleaseEarliest()
	v.beginVoting(nextFree)
	booths.Admit(v)
	logrus.Debugf("<< arrival at %.2f: waited %.2f minutes", v.ArrivalTime, wait)
}
