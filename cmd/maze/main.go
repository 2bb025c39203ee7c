// maze is a tilt-and-roll maze runner for the terminal.
//
// Usage:
//
//	maze play                - Play from level 1 (or --resume, --level, --select)
//	maze menu                - Start the menu to continue, pick levels or view progress
//	maze levels              - List the levels
//	maze progress [profile]  - Show the highest level reached and recent runs
//	maze serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible particles
//	--db <path>          - Set database path (default: ~/.maze/progress.db)
//	--config <path>      - Use a custom game config YAML
//	--levels <dir>       - Load levels from a directory instead of the bundled set
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
//	--mono               - Use the grayscale theme
//
// Every global flag except --seed and --levels can also be set through a
// MAZE_* environment variable; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

const defaultDBPath = "~/.maze/progress.db"

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
	flagMono      bool

	// envSettings holds the MAZE_* variables read before every command.
	envSettings config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - roll a ball through terminal mazes",
	Long: `Maze is a terminal maze runner: roll the ball past hazards, collect
pickups and reach the goal of every level.

Available commands:
  play      - Play directly
  menu      - Interactive menu
  levels    - Show all levels
  progress  - View progress and run history
  serve     - Start SSH server for remote play

Examples:
  maze play
  maze play --resume
  maze menu
  maze serve --ssh :2222
  maze progress`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: bundled levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.maze/maze.log for play, stderr for serve)")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the grayscale theme")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnv fills every flag the user did not set from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	envSettings = e

	flags := cmd.Flags()
	if !flags.Changed("fps") && e.FPS > 0 {
		flagFPS = e.FPS
	}
	if !flags.Changed("db") && e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if !flags.Changed("log-level") && e.LogLevel != "" {
		flagLogLevel = e.LogLevel
	}
	if !flags.Changed("log-file") && e.LogFile != "" {
		flagLogFile = e.LogFile
	}
	if !flags.Changed("mono") && e.Mono {
		flagMono = true
	}
	if flagMono {
		tui.SetTheme(tui.MonochromeTheme())
	}
	return nil
}
