package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagBoard bool
	flagReset bool
	flagRuns  int
)

var progressCmd = &cobra.Command{
	Use:   "progress [profile]",
	Short: "Show progress and recent runs",
	Long: `Display the highest level reached, totals and the most recent runs of
a profile (default: local).

Examples:
  maze progress
  maze progress ada --runs 20
  maze progress --board
  maze progress ada --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagBoard, "board", false, "Browse all profiles interactively")
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the profile's progress and runs")
	progressCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of recent runs to show")
	progressCmd.MarkFlagsMutuallyExclusive("board", "reset")
}

func runProgress(_ *cobra.Command, args []string) error {
	profile := storage.DefaultProfile
	if len(args) > 0 {
		profile = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening progress database: %w", err)
	}
	defer store.Close()

	if flagBoard {
		cfg := runtimeConfig()
		_, err := tui.RunProgressBoard(store, profile, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if flagReset {
		if err := store.ClearProfile(profile); err != nil {
			return err
		}
		fmt.Printf("Progress of %s cleared.\n", profile)
		return nil
	}

	stats, err := store.ProfileStats(profile)
	if err != nil {
		return fmt.Errorf("error retrieving progress: %w", err)
	}
	runs, err := store.RecentRuns(profile, flagRuns)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("Progress - %s\n", profile)
	fmt.Println()

	if stats.Runs == 0 && stats.HighestLevel == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'maze play' to start!")
		return nil
	}

	fmt.Printf("  Highest level:  %d\n", stats.HighestLevel)
	fmt.Printf("  Runs:           %d (%d cleared, %d lost)\n", stats.Runs, stats.Cleared, stats.GameOvers)
	fmt.Printf("  Pickups:        %d\n", stats.Pickups)
	fmt.Printf("  Hazard hits:    %d\n", stats.Hazards)
	fmt.Printf("  Time played:    %s\n", stats.PlayTime)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-5s  %-10s  %-7s  %-7s  %-8s  %s\n", "Level", "Outcome", "Pickups", "Hits", "Time", "Date")
	fmt.Printf("  %-5s  %-10s  %-7s  %-7s  %-8s  %s\n", "-----", "-------", "-------", "----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-10s  %-7d  %-7d  %-8s  %s\n",
			r.Level, r.Outcome, r.Pickups, r.Hazards, r.Duration, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
