package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/polling-sim/polling-sim/sim"
)

var (
	// CLI flags for the simulation
	seed                int64   // Seed override for voter generation
	numBooths           int     // Number of voting booths in the precinct's bank
	impatienceThreshold float64 // Minutes an impatient voter will wait (inclusive)
	logLevel            string  // Log verbosity level

	// CLI flags selecting what to report
	printVoters   bool // Print the per-voter outcome table
	findThreshold bool // Search for the impatience threshold instead of one run
	findNumBooths bool // Search for the booth count instead of one run
	numTrials     int  // Number of trials for the searches
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "polling-sim",
	Short: "Discrete-event simulator for polling places",
}

// simulateCmd runs one election day, or one of the parameter searches,
// for the precinct described by the given file.
var simulateCmd = &cobra.Command{
	Use:   "simulate PRECINCT_FILE",
	Short: "Simulate election day for a precinct",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, fileSeed, err := LoadPrecinct(args[0])
		if err != nil {
			logrus.Fatalf("Unable to load precinct: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			fileSeed = seed
		}
		precinct := sim.NewPrecinct(cfg)

		switch {
		case findThreshold:
			threshold, err := sim.FindImpatienceThreshold(fileSeed, precinct, numBooths, numTrials)
			if err != nil {
				logrus.Fatalf("Threshold search failed: %v", err)
			}
			fmt.Printf("Given %d booths, an impatience threshold of %d"+
				" would be appropriate for Precinct %s\n", numBooths, threshold, cfg.Name)
		case findNumBooths:
			needed, err := sim.FindBoothsNeeded(fileSeed, precinct, impatienceThreshold, numTrials)
			if err != nil {
				logrus.Fatalf("Booth count search failed: %v", err)
			}
			fmt.Printf("Given an impatience threshold of %v, provisioning %d"+
				" booth(s) would be appropriate for Precinct %s\n", impatienceThreshold, needed, cfg.Name)
		case printVoters:
			outcomes := precinct.Simulate(fileSeed, sim.NewBoothPool(numBooths), impatienceThreshold)
			printVoterTable(outcomes)
		default:
			outcomes := precinct.Simulate(fileSeed, sim.NewBoothPool(numBooths), impatienceThreshold)
			printSummary(cfg, outcomes)
		}
	},
}

// printVoterTable writes one line per arrival, in arrival order.
func printVoterTable(outcomes []*sim.Voter) {
	fmt.Printf("%12s  %8s  %9s  %9s  %9s  %5s\n",
		"Arrival Time", "Duration", "Start", "Departure", "Impatient", "Voted")
	for _, v := range outcomes {
		start, departure := "None", "None"
		if v.HasVoted {
			start = fmt.Sprintf("%9.2f", *v.StartTime)
			departure = fmt.Sprintf("%9.2f", *v.DepartureTime)
		}
		fmt.Printf("%12.2f  %8.2f  %9s  %9s  %9t  %5t\n",
			v.ArrivalTime, v.VotingDuration, start, departure, v.IsImpatient, v.HasVoted)
	}
}

// printSummary reports the day in the aggregate.
func printSummary(cfg sim.PrecinctConfig, outcomes []*sim.Voter) {
	s := sim.Summarize(outcomes)
	fmt.Println("Precinct", cfg.Name)
	fmt.Printf("- %d voters voted\n", s.Voted)
	if s.AnyoneVoted {
		fmt.Printf("- Polls closed at %v and last voter departed at %.2f.\n",
			cfg.ClosingTime(), s.LastDeparture)
	}
	if s.LeftUnvoted > 0 {
		fmt.Printf("- %d voters left without voting\n", s.LeftUnvoted)
		if s.LastArrivalUnvoted {
			fmt.Println("  including the last person to arrive at the polls")
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	simulateCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for voter generation (overrides the precinct file's seed)")
	simulateCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	simulateCmd.Flags().IntVar(&numBooths, "num-booths", 1, "Number of voting booths to use")
	simulateCmd.Flags().Float64Var(&impatienceThreshold, "impatience-threshold", 1000, "The impatience threshold (minutes)")

	simulateCmd.Flags().BoolVar(&printVoters, "print-voters", false, "Print one line per voter instead of the summary")
	simulateCmd.Flags().BoolVar(&findThreshold, "find-threshold", false, "Search for the impatience threshold at which everyone votes")
	simulateCmd.Flags().BoolVar(&findNumBooths, "find-num-booths", false, "Search for the number of booths needed for everyone to vote")
	simulateCmd.Flags().IntVar(&numTrials, "num-trials", 100, "Number of trials for the searches")

	// Attach `simulate` as a subcommand to `root`
	rootCmd.AddCommand(simulateCmd)
}
