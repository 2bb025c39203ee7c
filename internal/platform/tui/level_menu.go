package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/world/levels"
)

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level int // 1-N
}

// LevelMenuModel is the level picker. Levels past the highest one reached
// are shown but cannot be picked.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	levelNames   []string
	unlocked     int
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel creates a level selection model. unlocked is the
// highest level that may be picked; 0 unlocks only the first.
func NewLevelMenuModel(lvls []levels.Level, unlocked, width, height int) LevelMenuModel {
	names := make([]string, len(lvls))
	for i, l := range lvls {
		names[i] = l.Name
	}

	return LevelMenuModel{
		cursor:     0,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		levelNames: names,
		unlocked:   core.Clamp(unlocked, 1, max(len(names), 1)),
		choosing:   true,
		theme:      CurrentTheme(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levelNames) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		level := m.unlocked // "Continue" entry
		if m.cursor > 0 {
			level = m.cursor
		}
		if level > m.unlocked || len(m.levelNames) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{Level: level}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visibleItems := max(m.height-10, 3) // Account for header and footer

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visibleItems {
		m.scrollOffset = m.cursor - visibleItems + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("M A Z E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	visibleItems := max(m.height-10, 3)

	if m.scrollOffset == 0 {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if m.cursor == 0 {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := style.Render(fmt.Sprintf("%sContinue from level %d", cursor, m.unlocked))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	startIdx := max(m.scrollOffset-1, 0)
	endIdx := min(startIdx+visibleItems, len(m.levelNames))

	for i := startIdx; i < endIdx; i++ {
		item := i + 1 // Account for the "Continue" entry
		cursor := "  "
		style := m.theme.MenuItemNormal
		suffix := ""
		if item > m.unlocked {
			style = m.theme.MenuItemLocked
			suffix = "  (locked)"
		}
		if item == m.cursor {
			cursor = "> "
			if item <= m.unlocked {
				style = m.theme.MenuItemActive
			}
		}

		line := style.Render(fmt.Sprintf("%s%2d. %s%s", cursor, item, m.levelNames[i], suffix))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if startIdx > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.levelNames) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selection and returns the selection, or
// nil when the user backed out.
func RunLevelSelector(lvls []levels.Level, unlocked int, cfg core.RuntimeConfig) (*LevelSelection, error) {
	model := NewLevelMenuModel(lvls, unlocked, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
