package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// ErrNoConvergence is returned when a parameter search exhausts its
// iteration budget on some trial without every voter voting.
var ErrNoConvergence = errors.New("search did not converge")

// maxSearchIterations bounds the per-trial convergence loops. The
// searches rely on monotonicity (more patience, or more booths, never
// loses voters), which holds for well-formed configurations; the cap
// keeps degenerate ones from looping forever. Variable so tests can
// shrink it.
var maxSearchIterations = 10000

// FindImpatienceThreshold estimates how patient voters must be, given
// numBooths booths, for everyone to vote. Each trial i reseeds the
// precinct with seed+i and raises the threshold in steps of 10 starting
// from 1, re-running the full simulation with a fresh pool each time,
// until the outcome shows every voter voted. The per-trial thresholds
// reduce to their lower median.
//
// numTrials must be positive; a non-positive value panics.
func FindImpatienceThreshold(seed int64, p *Precinct, numBooths, numTrials int) (int, error) {
	if numTrials <= 0 {
		panic("FindImpatienceThreshold: numTrials must be positive")
	}

	thresholds := make([]int, 0, numTrials)
	for i := 0; i < numTrials; i++ {
		trialSeed := seed + int64(i)
		threshold := -9
		converged := false
		for iter := 0; iter < maxSearchIterations; iter++ {
			threshold += 10
			outcomes := p.Simulate(trialSeed, NewBoothPool(numBooths), float64(threshold))
			if allVoted(outcomes) {
				converged = true
				break
			}
		}
		if !converged {
			return 0, fmt.Errorf("impatience threshold search, trial %d with %d booths: %w",
				i, numBooths, ErrNoConvergence)
		}
		logrus.Debugf("trial %d converged at threshold %d", i, threshold)
		thresholds = append(thresholds, threshold)
	}
	return lowerMedian(thresholds), nil
}

// FindBoothsNeeded estimates how many booths the precinct needs, at a
// fixed impatience threshold, for everyone to vote. Same structure as
// FindImpatienceThreshold: per trial, grow the booth count from 1
// until a run converges, then take the lower median across trials.
//
// numTrials must be positive; a non-positive value panics.
func FindBoothsNeeded(seed int64, p *Precinct, impatienceThreshold float64, numTrials int) (int, error) {
	if numTrials <= 0 {
		panic("FindBoothsNeeded: numTrials must be positive")
	}

	boothCounts := make([]int, 0, numTrials)
	for i := 0; i < numTrials; i++ {
		trialSeed := seed + int64(i)
		numBooths := 0
		converged := false
		for iter := 0; iter < maxSearchIterations; iter++ {
			numBooths++
			outcomes := p.Simulate(trialSeed, NewBoothPool(numBooths), impatienceThreshold)
			if allVoted(outcomes) {
				converged = true
				break
			}
		}
		if !converged {
			return 0, fmt.Errorf("booth count search, trial %d at threshold %.1f: %w",
				i, impatienceThreshold, ErrNoConvergence)
		}
		logrus.Debugf("trial %d converged at %d booths", i, numBooths)
		boothCounts = append(boothCounts, numBooths)
	}
	return lowerMedian(boothCounts), nil
}

func allVoted(outcomes []*Voter) bool {
	for _, v := range outcomes {
		if !v.HasVoted {
			return false
		}
	}
	return true
}

// lowerMedian returns the element at sorted index len/2: the lower
// middle value, never an interpolated average.
func lowerMedian(values []int) int {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}
