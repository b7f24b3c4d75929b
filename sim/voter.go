package sim

import "fmt"

// Voter represents one ballot-casting attempt.
//
// StartTime and DepartureTime are nil until the voter is admitted to a
// booth. They are set exactly once, together, and always satisfy
// DepartureTime == StartTime + VotingDuration. A voter who leaves
// without voting keeps both nil and HasVoted false.
type Voter struct {
	ArrivalTime    float64 // minutes since polls opened
	VotingDuration float64 // minutes needed once admitted
	IsImpatient    bool
	StartTime      *float64
	DepartureTime  *float64
	HasVoted       bool
}

// beginVoting admits the voter to a booth at startTime, fixing both
// timestamps and marking the vote cast. Only the simulation engine
// calls this.
func (v *Voter) beginVoting(startTime float64) {
	departure := startTime + v.VotingDuration
	v.StartTime = &startTime
	v.DepartureTime = &departure
	v.HasVoted = true
}

func (v *Voter) String() string {
	if !v.HasVoted {
		return fmt.Sprintf("Voter(arrival=%.2f, duration=%.2f, impatient=%t, left unvoted)",
			v.ArrivalTime, v.VotingDuration, v.IsImpatient)
	}
	return fmt.Sprintf("Voter(arrival=%.2f, duration=%.2f, impatient=%t, start=%.2f, departure=%.2f)",
		v.ArrivalTime, v.VotingDuration, v.IsImpatient, *v.StartTime, *v.DepartureTime)
}
