package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var flagMenuProfile string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the maze with a menu",
	Long: `Start the maze in interactive menu mode.

Continue from the highest level reached, start a new game, pick a level or
look at your progress. Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Progress
  Q            - Quit

Examples:
  maze menu
  maze menu --profile ada
  maze menu --fps 60`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuProfile, "profile", storage.DefaultProfile, "Progress profile name")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		return err
	}
	lvls, err := loadLevels()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(tui.SessionOptions{
		Config:  gameCfg,
		Levels:  lvls,
		Runtime: runtimeConfig(),
		Store:   store,
		Profile: flagMenuProfile,
		Bell:    os.Stdout,
		Logger:  logger,
	})
}
