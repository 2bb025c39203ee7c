package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/world/levels"
)

// newLogger builds the process logger. Output goes to path when set,
// otherwise to fallback; a nil fallback means ~/.maze/maze.log, since the
// game owns the terminal while it runs.
func newLogger(path string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if path == "" && fallback == nil {
		path = "~/.maze/maze.log"
	}
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "maze",
		Level:           level,
	})
	return logger, closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// loadGameConfig loads the game config and applies a difficulty preset.
func loadGameConfig(difficulty string) (config.MazeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.MazeConfig{}, err
	}
	if difficulty == "" {
		return cfg, nil
	}
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.MazeConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// loadLevels loads the levels from --levels or the bundled set.
func loadLevels() ([]levels.Level, error) {
	loader := levels.Bundled()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot load levels: %w", err)
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return lvls, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
