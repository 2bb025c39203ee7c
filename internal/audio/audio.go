// Package audio plays the maze runner's sound cues. A terminal has no mixer,
// so a cue is announced to sinks (the HUD ticker) and can ring the terminal
// bell; when a sound directory is configured only cues whose files exist
// are kept.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
)

// ErrUnknownCue is returned by Play for a cue the bank does not hold.
var ErrUnknownCue = errors.New("audio: unknown cue")

// Sink receives every cue that plays.
type Sink interface {
	Cue(name string)
}

// Options wires a bank to its outputs.
type Options struct {
	Logger *log.Logger
	Bell   io.Writer // receives BEL when the config asks for the bell
	Sinks  []Sink
}

// Bank holds the playable cues.
type Bank struct {
	enabled bool
	bell    io.Writer
	sinks   []Sink
	cues    map[string]string // name → file
	music   string
	played  map[string]int
}

// NewBank builds a bank from config. Cues whose file is missing from the
// configured directory are skipped with a warning.
func NewBank(cfg config.AudioConfig, opts Options) *Bank {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Bank{
		enabled: cfg.Enabled,
		sinks:   opts.Sinks,
		cues:    make(map[string]string),
		played:  make(map[string]int),
	}
	if cfg.Bell {
		b.bell = opts.Bell
	}

	dir := expandHome(cfg.Dir)
	for name, file := range cfg.Cues {
		path, ok := resolve(dir, file)
		if !ok {
			logger.Warn("skipping sound cue", "cue", name, "path", path)
			continue
		}
		b.cues[name] = path
	}
	if cfg.Music != "" {
		if path, ok := resolve(dir, cfg.Music); ok {
			b.music = path
		} else {
			logger.Warn("skipping background music", "path", path)
		}
	}
	return b
}

// resolve joins a cue file onto dir and checks it exists. Without a
// directory the file name is kept as is.
func resolve(dir, file string) (string, bool) {
	if dir == "" {
		return file, true
	}
	path := filepath.Join(dir, file)
	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Play announces a cue. A disabled bank accepts every cue silently.
func (b *Bank) Play(cue string) error {
	if !b.enabled {
		return nil
	}
	if _, ok := b.cues[cue]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCue, cue)
	}
	b.played[cue]++
	for _, s := range b.sinks {
		s.Cue(cue)
	}
	if b.bell != nil {
		if _, err := io.WriteString(b.bell, "\a"); err != nil {
			return fmt.Errorf("audio: ring bell: %w", err)
		}
	}
	return nil
}

// AddSink attaches another receiver.
func (b *Bank) AddSink(s Sink) {
	b.sinks = append(b.sinks, s)
}

// Cues returns the playable cue names, sorted.
func (b *Bank) Cues() []string {
	names := make([]string, 0, len(b.cues))
	for name := range b.cues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// File returns the sound file behind a cue.
func (b *Bank) File(cue string) (string, bool) {
	path, ok := b.cues[cue]
	return path, ok
}

// Music returns the background track, if one is available.
func (b *Bank) Music() (string, bool) {
	return b.music, b.music != ""
}

// Played returns how many times a cue has played.
func (b *Bank) Played(cue string) int {
	return b.played[cue]
}
