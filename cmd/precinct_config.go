package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/polling-sim/polling-sim/sim"
)

// Define struct for YAML
type PrecinctFile struct {
	Seed     int64 `yaml:"seed"`
	Precinct struct {
		Name               string  `yaml:"name"`
		HoursOpen          int     `yaml:"hours_open"`
		NumVoters          int     `yaml:"num_voters"`
		ArrivalRate        float64 `yaml:"arrival_rate"`
		VotingDurationRate float64 `yaml:"voting_duration_rate"`
		ImpatienceProb     float64 `yaml:"impatience_prob"`
	} `yaml:"precinct"`
}

// LoadPrecinct reads a precinct YAML file and returns the precinct
// configuration and the simulation seed it carries.
func LoadPrecinct(path string) (sim.PrecinctConfig, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.PrecinctConfig{}, 0, fmt.Errorf("read precinct file: %w", err)
	}

	var pf PrecinctFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return sim.PrecinctConfig{}, 0, fmt.Errorf("parse precinct file %s: %w", path, err)
	}

	cfg := sim.PrecinctConfig{
		Name:               pf.Precinct.Name,
		HoursOpen:          pf.Precinct.HoursOpen,
		NumVoters:          pf.Precinct.NumVoters,
		ArrivalRate:        pf.Precinct.ArrivalRate,
		VotingDurationRate: pf.Precinct.VotingDurationRate,
		ImpatienceProb:     pf.Precinct.ImpatienceProb,
	}
	if err := validatePrecinct(cfg); err != nil {
		return sim.PrecinctConfig{}, 0, fmt.Errorf("precinct file %s: %w", path, err)
	}
	return cfg, pf.Seed, nil
}

func validatePrecinct(cfg sim.PrecinctConfig) error {
	switch {
	case cfg.HoursOpen <= 0:
		return fmt.Errorf("hours_open must be positive, got %d", cfg.HoursOpen)
	case cfg.NumVoters < 0:
		return fmt.Errorf("num_voters must be non-negative, got %d", cfg.NumVoters)
	case cfg.ArrivalRate <= 0:
		return fmt.Errorf("arrival_rate must be positive, got %v", cfg.ArrivalRate)
	case cfg.VotingDurationRate <= 0:
		return fmt.Errorf("voting_duration_rate must be positive, got %v", cfg.VotingDurationRate)
	case cfg.ImpatienceProb < 0 || cfg.ImpatienceProb > 1:
		return fmt.Errorf("impatience_prob must be in [0, 1], got %v", cfg.ImpatienceProb)
	}
	return nil
}
