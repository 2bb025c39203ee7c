package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/audio"
	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/hud"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world"
	"github.com/vovakirdan/tui-maze/internal/world/levels"
)

// GameOptions configures one play session.
type GameOptions struct {
	Config     config.MazeConfig
	Levels     []levels.Level
	StartLevel int
	Seed       int64

	Progress maze.Progress    // optional
	Runs     maze.RunRecorder // optional
	Bell     io.Writer        // terminal bell target, optional
	Logger   *log.Logger      // optional
}

// Game wires the gameplay rules to the terminal scene, HUD and audio.
type Game struct {
	World      *world.World
	HUD        *hud.HUD
	Audio      *audio.Bank
	Controller *maze.Controller
}

// NewGame builds a session and shows the first prompt.
func NewGame(opts GameOptions) (*Game, error) {
	if len(opts.Levels) == 0 {
		return nil, fmt.Errorf("tui: no levels to play")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	difficulty := config.NewDifficultyManager(opts.Config.Difficulty)
	w := world.New(opts.Levels, world.Options{
		Physics:    opts.Config.Physics,
		Effects:    opts.Config.Effects,
		Difficulty: difficulty,
		Seed:       opts.Seed,
	})
	h := hud.New()
	bank := audio.NewBank(opts.Config.Audio, audio.Options{
		Logger: logger,
		Bell:   opts.Bell,
		Sinks:  []audio.Sink{h},
	})
	if track, ok := bank.Music(); ok {
		logger.Info("background music", "track", track)
	}

	mopts := maze.OptionsFromConfig(opts.Config)
	mopts.LevelCount = min(mopts.LevelCount, w.LevelCount())
	mopts.StartLevel = opts.StartLevel
	mopts.Difficulty = difficulty

	ctrl := maze.NewController(maze.Collaborators{
		Scene:    w,
		HUD:      h,
		Audio:    bank,
		Haptics:  h,
		Progress: opts.Progress,
		Runs:     opts.Runs,
		Logger:   logger,
	}, mopts)
	if err := ctrl.Begin(); err != nil {
		return nil, err
	}

	return &Game{World: w, HUD: h, Audio: bank, Controller: ctrl}, nil
}

// Step advances one frame: physics first, then the contacts it produced,
// then timers and cameras.
func (g *Game) Step(dt time.Duration) {
	g.World.Step(dt)
	for _, c := range g.World.Contacts() {
		g.Controller.HandleContact(c)
	}
	g.Controller.Tick(dt)
	g.HUD.Advance(dt)
}

// Input forwards one input event to the rules.
func (g *Game) Input(ev core.InputEvent) error {
	return g.Controller.HandleInput(ev)
}

// Area returns the part of the screen the maze and HUD use; the last row
// holds the status line.
func (g *Game) Area(s *core.Screen) core.Rect {
	return core.NewRect(0, 0, s.Width(), max(s.Height()-1, 0))
}

// Render draws the scene, the overlay and the status line.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	area := g.Area(s)
	g.World.Render(s, area)
	g.HUD.Render(s, area)
	s.DrawTextColored(0, s.Height()-1, g.Status(), core.ColorGray)
}

// Status returns the one-line session summary.
func (g *Game) Status() string {
	c := g.Controller
	name := ""
	if lvl := g.World.Level(); lvl != nil {
		name = lvl.Name
	}
	return fmt.Sprintf(" Level %d/%d %s | %s | life %d", c.Level(), c.LevelCount(), name, c.Phase(), c.Life())
}
