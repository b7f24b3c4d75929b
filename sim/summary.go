// Aggregates one simulation's outcome list into the statistics the CLI
// reports: how many voted, how many walked away, and when the day
// effectively ended.

package sim

// Summary aggregates the outcome list of one simulation run.
type Summary struct {
	TotalVoters        int     // length of the outcome list
	Voted              int     // voters with a cast ballot
	LeftUnvoted        int     // voters who abandoned the line
	LastDeparture      float64 // departure time of the last voter who voted
	AnyoneVoted        bool    // false when every arrival left unvoted
	LastArrivalUnvoted bool    // the final arrival of the day left without voting
}

// Summarize reduces a simulation outcome list to its Summary.
func Summarize(outcomes []*Voter) Summary {
	s := Summary{TotalVoters: len(outcomes)}
	for _, v := range outcomes {
		if v.HasVoted {
			s.Voted++
		} else {
			s.LeftUnvoted++
		}
	}

	// The last arrival might have left unvoted; scan backwards for the
	// latest actual departure.
	for i := len(outcomes) - 1; i >= 0; i-- {
		if outcomes[i].DepartureTime != nil {
			s.LastDeparture = *outcomes[i].DepartureTime
			s.AnyoneVoted = true
			break
		}
	}
	if n := len(outcomes); n > 0 && !outcomes[n-1].HasVoted {
		s.LastArrivalUnvoted = true
	}
	return s
}
