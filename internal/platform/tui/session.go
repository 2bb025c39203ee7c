package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/storage"
	"github.com/vovakirdan/tui-maze/internal/world/levels"
)

// SessionOptions configures a menu-driven session.
type SessionOptions struct {
	Config  config.MazeConfig
	Levels  []levels.Level
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional; nil plays without saving progress
	Profile string
	Bell    io.Writer
	Logger  *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLevels
	screenGame
	screenProgress
)

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model for SSH sessions and the interactive launcher.
type SessionModel struct {
	opts     SessionOptions
	config   core.RuntimeConfig
	progress *storage.Profile
	screen   sessionScreen
	menu     MenuModel
	levels   LevelMenuModel
	board    ProgressBoardModel
	game     *Model
	err      error
	quitting bool
}

// NewSessionModel creates a new session model showing the main menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}
	m := SessionModel{opts: opts, config: opts.Runtime}
	if opts.Store != nil {
		m.progress = opts.Store.Progress(opts.Profile)
	}
	m.menu = NewMenuModel(opts.Profile, m.highest(), m.config)
	return m
}

// highest returns the highest level reached, at least 1.
func (m SessionModel) highest() int {
	if m.progress == nil {
		return 1
	}
	level, err := m.progress.HighestLevelReached()
	if err != nil {
		m.opts.Logger.Warn("could not read progress", "profile", m.opts.Profile, "err", err)
		return 1
	}
	return core.Clamp(level, 1, max(len(m.opts.Levels), 1))
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenLevels:
		return m.updateLevels(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenProgress:
		return m.updateProgress(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates on the main menu.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil // stale tick from a finished game
	}
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	switch selected.Choice {
	case MenuContinue:
		return m.startGame(m.highest())
	case MenuNewGame:
		return m.startGame(1)
	case MenuSelectLevel:
		m.levels = NewLevelMenuModel(m.opts.Levels, m.highest(), m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLevels
		return m, m.levels.Init()
	case MenuProgress:
		var source ProgressSource
		if m.opts.Store != nil {
			source = m.opts.Store
		}
		m.board = NewProgressBoardModel(source, m.opts.Profile, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenProgress
		return m, m.board.Init()
	}
	return m, nil
}

// updateLevels handles updates on the level picker.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if lm, ok := newLevels.(LevelMenuModel); ok {
		m.levels = lm
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.WantsBack():
		return m.backToMenu()
	}
	if sel := m.levels.Selected(); sel != nil {
		return m.startGame(sel.Level)
	}
	return m, cmd
}

// updateProgress handles updates on the progress board.
func (m SessionModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if bm, ok := newBoard.(ProgressBoardModel); ok {
		m.board = bm
	}

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// updateGame handles updates while a maze is being played.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}
	return m, cmd
}

// startGame builds a fresh game at level and switches to it.
func (m SessionModel) startGame(level int) (tea.Model, tea.Cmd) {
	opts := GameOptions{
		Config:     m.opts.Config,
		Levels:     m.opts.Levels,
		StartLevel: level,
		Seed:       m.config.Seed,
		Bell:       m.opts.Bell,
		Logger:     m.opts.Logger,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if m.progress != nil {
		opts.Progress = m.progress
		opts.Runs = m.progress
	}

	game, err := NewGame(opts)
	if err != nil {
		m.opts.Logger.Error("could not start game", "level", level, "err", err)
		m.err = err
		return m.backToMenu()
	}
	m.opts.Logger.Info("game started", "profile", m.opts.Profile, "level", level)

	model := NewModel(game, m.config, m.opts.Logger)
	m.game = &model
	m.screen = screenGame
	return m, model.Init()
}

// backToMenu rebuilds the main menu with fresh progress.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Profile, m.highest(), m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenLevels:
		return m.levels.View()
	case screenGame:
		return m.game.View()
	case screenProgress:
		return m.board.View()
	}
	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(m.menu.theme.MenuItemLocked.Render(m.err.Error()), m.config.ScreenW)
	}
	return view
}

// Err returns the last error that sent the session back to the menu.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the interactive menu-driven session in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
