package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wideOpenConfig keeps closing time far away so the NumVoters bound,
// not the clock, ends generation.
func wideOpenConfig(numVoters int) PrecinctConfig {
	return PrecinctConfig{
		Name:               "test",
		HoursOpen:          10000,
		NumVoters:          numVoters,
		ArrivalRate:        1.0,
		VotingDurationRate: 0.2,
		ImpatienceProb:     0.3,
	}
}

func TestVoterGenerator_SameSeed_IdenticalSequence(t *testing.T) {
	// GIVEN one configuration and one seed
	cfg := wideOpenConfig(200)

	// WHEN the sequence is generated twice
	first := GenerateVoters(cfg, 42)
	second := GenerateVoters(cfg, 42)

	// THEN the two sequences match voter for voter
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ArrivalTime, second[i].ArrivalTime, "arrival %d", i)
		assert.Equal(t, first[i].VotingDuration, second[i].VotingDuration, "duration %d", i)
		assert.Equal(t, first[i].IsImpatient, second[i].IsImpatient, "impatience %d", i)
	}
}

func TestVoterGenerator_DifferentSeeds_DifferentSequences(t *testing.T) {
	cfg := wideOpenConfig(50)
	first := GenerateVoters(cfg, 1)
	second := GenerateVoters(cfg, 2)

	require.NotEmpty(t, first)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first[0].ArrivalTime, second[0].ArrivalTime)
}

func TestVoterGenerator_ArrivalsStrictlyIncreasing(t *testing.T) {
	voters := GenerateVoters(wideOpenConfig(500), 7)

	require.NotEmpty(t, voters)
	assert.Greater(t, voters[0].ArrivalTime, 0.0)
	for i := 1; i < len(voters); i++ {
		if voters[i].ArrivalTime <= voters[i-1].ArrivalTime {
			t.Fatalf("arrival %d at %.4f not after arrival %d at %.4f",
				i, voters[i].ArrivalTime, i-1, voters[i-1].ArrivalTime)
		}
	}
}

func TestVoterGenerator_StopsAtNumVoters(t *testing.T) {
	voters := GenerateVoters(wideOpenConfig(25), 11)
	assert.Len(t, voters, 25)
}

func TestVoterGenerator_StopsAtClosingTime(t *testing.T) {
	// GIVEN polls open 1 hour with far more candidates than fit
	cfg := PrecinctConfig{
		Name:               "test",
		HoursOpen:          1,
		NumVoters:          100000,
		ArrivalRate:        0.5,
		VotingDurationRate: 0.1,
		ImpatienceProb:     0.1,
	}

	// WHEN the sequence is generated
	voters := GenerateVoters(cfg, 3)

	// THEN every arrival is within the hour and the sequence is finite
	require.NotEmpty(t, voters)
	assert.Less(t, len(voters), 100000)
	for _, v := range voters {
		assert.LessOrEqual(t, v.ArrivalTime, cfg.ClosingTime())
	}

	// AND the generator stays exhausted
	g := NewVoterGenerator(cfg, 3)
	for i := 0; i < len(voters); i++ {
		require.NotNil(t, g.Next())
	}
	assert.Nil(t, g.Next())
	assert.Nil(t, g.Next())
}

func TestVoterGenerator_MeanGap_MatchesArrivalRate(t *testing.T) {
	// GIVEN a rate of 1 arrival per minute
	cfg := wideOpenConfig(10000)
	voters := GenerateVoters(cfg, 42)
	require.Len(t, voters, 10000)

	// WHEN the mean inter-arrival gap is measured
	meanGap := voters[len(voters)-1].ArrivalTime / float64(len(voters))

	// THEN it is ≈ 1/rate = 1 minute (within 5%)
	if math.Abs(meanGap-1.0) > 0.05 {
		t.Errorf("mean gap = %.4f min, want ≈ 1.0 min (within 5%%)", meanGap)
	}
}

func TestVoterGenerator_MeanDuration_MatchesRate(t *testing.T) {
	// GIVEN a voting duration rate of 0.2 (mean 5 minutes)
	cfg := wideOpenConfig(10000)
	voters := GenerateVoters(cfg, 42)

	sum := 0.0
	for _, v := range voters {
		sum += v.VotingDuration
	}
	mean := sum / float64(len(voters))

	if math.Abs(mean-5.0)/5.0 > 0.05 {
		t.Errorf("mean duration = %.4f min, want ≈ 5.0 min (within 5%%)", mean)
	}
}

func TestVoterGenerator_ImpatientFraction_MatchesProb(t *testing.T) {
	// GIVEN an impatience probability of 0.3
	cfg := wideOpenConfig(10000)
	voters := GenerateVoters(cfg, 42)

	impatient := 0
	for _, v := range voters {
		if v.IsImpatient {
			impatient++
		}
	}
	fraction := float64(impatient) / float64(len(voters))

	if math.Abs(fraction-0.3) > 0.02 {
		t.Errorf("impatient fraction = %.4f, want ≈ 0.3 (within 0.02)", fraction)
	}
}
