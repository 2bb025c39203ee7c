package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// PlayKeyMap defines the key bindings while a maze is on screen.
type PlayKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Tap        key.Binding
	Replay     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Stop, k.Tap, k.Replay, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Stop, k.Tap, k.Replay},
		{k.Screenshot, k.Help, k.Back, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑↓←→/wasd", "roll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "roll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "roll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "roll right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "stop"),
		),
		Tap: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "tap"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay level"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PlayAction is a non-gameplay request from the keyboard.
type PlayAction int

const (
	PlayActionNone PlayAction = iota
	PlayActionInput
	PlayActionScreenshot
	PlayActionHelp
	PlayActionBack
	PlayActionQuit
)

// KeyMapper translates Bubble Tea key messages to maze input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys PlayKeyMap
	held core.Control
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultPlayKeyMap()}
}

// Keys returns the bindings for help rendering.
func (km *KeyMapper) Keys() PlayKeyMap {
	return km.keys
}

// MapKey translates a key message. Terminals report no key releases, so a
// direction key rolls until space stops it; any other key is a tap.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.InputEvent, PlayAction) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.InputEvent{}, PlayActionQuit
	case key.Matches(msg, k.Back):
		return core.InputEvent{}, PlayActionBack
	case key.Matches(msg, k.Screenshot):
		return core.InputEvent{}, PlayActionScreenshot
	case key.Matches(msg, k.Help):
		return core.InputEvent{}, PlayActionHelp
	case key.Matches(msg, k.Up):
		return km.press(core.ControlUp), PlayActionInput
	case key.Matches(msg, k.Down):
		return km.press(core.ControlDown), PlayActionInput
	case key.Matches(msg, k.Left):
		return km.press(core.ControlLeft), PlayActionInput
	case key.Matches(msg, k.Right):
		return km.press(core.ControlRight), PlayActionInput
	case key.Matches(msg, k.Stop):
		if km.held == core.ControlNone {
			return core.Tap(), PlayActionInput
		}
		c := km.held
		km.held = core.ControlNone
		return core.Release(c), PlayActionInput
	case key.Matches(msg, k.Replay):
		return core.Press(core.ControlReplay), PlayActionInput
	}
	return core.Tap(), PlayActionInput
}

func (km *KeyMapper) press(c core.Control) core.InputEvent {
	km.held = c
	return core.Press(c)
}

// Reset forgets the held direction.
func (km *KeyMapper) Reset() {
	km.held = core.ControlNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionProgress
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionProgress
	}

	return MenuActionNone
}
