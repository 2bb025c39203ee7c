package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagLevel      int
	flagResume     bool
	flagSelect     bool
	flagDifficulty string
	flagProfile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze",
	Long: `Start playing from level 1, or from another level.

Controls:
  Arrows/WASD  - Roll
  Space        - Stop rolling (or tap)
  Enter        - Tap to start / continue
  R            - Replay the level (past level 1)
  Mouse        - Click the on-screen pad
  ?            - Help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ball, longer hazard cooldown
  normal - Default speed, difficulty grows with the level
  hard   - Faster ball from the start
  fixed  - No progression

Examples:
  maze play
  maze play --resume
  maze play --level 3 --difficulty hard
  maze play --select --profile ada`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-N)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Start at the highest level reached")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the starting level from a menu")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	playCmd.MarkFlagsMutuallyExclusive("level", "resume", "select")
}

func runPlay(_ *cobra.Command, _ []string) error {
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
	cfg := runtimeConfig()

	// Open progress storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var progress *storage.Profile
	highest := 1
	if store != nil {
		progress = store.Progress(flagProfile)
		if lvl, err := progress.HighestLevelReached(); err == nil && lvl > 0 {
			highest = lvl
		}
	}

	start := 1
	switch {
	case flagLevel > 0:
		if flagLevel > len(lvls) {
			return fmt.Errorf("level %d does not exist (have %d)", flagLevel, len(lvls))
		}
		start = flagLevel
	case flagResume:
		start = min(highest, len(lvls))
	case flagSelect:
		selection, err := tui.RunLevelSelector(lvls, highest, cfg)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if selection == nil {
			return nil
		}
		start = selection.Level
	}

	opts := tui.GameOptions{
		Config:     gameCfg,
		Levels:     lvls,
		StartLevel: start,
		Seed:       cfg.Seed,
		Bell:       os.Stdout,
		Logger:     logger,
	}
	if progress != nil {
		opts.Progress = progress
		opts.Runs = progress
	}
	game, err := tui.NewGame(opts)
	if err != nil {
		return err
	}
	logger.Info("game started", "profile", flagProfile, "level", start, "levels", len(lvls))

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("game ended", "level", game.Controller.Level(), "phase", game.Controller.Phase())
	return nil
}
