package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Progress board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show profile sidebar
	sidebarWidth       = 20  // Width of profile sidebar
	maxRuns            = 100 // Max runs to load
)

// ProgressSource is the read side of the progress store.
type ProgressSource interface {
	Profiles() ([]string, error)
	RecentRuns(profile string, limit int) ([]storage.Run, error)
	ProfileStats(profile string) (*storage.ProfileStats, error)
}

// ProgressKeyMap defines the key bindings for the progress board.
type ProgressKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextProfile key.Binding
	PrevProfile key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextProfile, k.PrevProfile, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextProfile, k.PrevProfile},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextProfile: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next profile"),
		),
		PrevProfile: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev profile"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressBoardModel shows recent runs and totals per profile.
type ProgressBoardModel struct {
	source      ProgressSource
	profiles    []string
	cursor      int
	runs        []storage.Run
	stats       *storage.ProfileStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProgressBoardModel creates a progress board opened on profile.
func NewProgressBoardModel(source ProgressSource, profile string, width, height int) ProgressBoardModel {
	m := ProgressBoardModel{
		source:      source,
		keys:        DefaultProgressKeyMap(),
		help:        help.New(),
		theme:       CurrentTheme(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if source != nil {
		profiles, err := source.Profiles()
		if err != nil {
			m.loadErr = err
		}
		m.profiles = profiles
	}
	if profile != "" && !slices.Contains(m.profiles, profile) {
		m.profiles = append(m.profiles, profile)
		slices.Sort(m.profiles)
	}
	m.cursor = max(slices.Index(m.profiles, profile), 0)

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates the runs table sized to the window.
func (m *ProgressBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Outcome", Width: 10},
		{Title: "Pickups", Width: 8},
		{Title: "Hits", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if tableWidth > 60 {
		columns[5].Width = min(tableWidth-48, 18)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and totals for the selected profile.
func (m *ProgressBoardModel) load() {
	m.runs = nil
	m.stats = nil
	if m.source == nil || len(m.profiles) == 0 {
		m.updateTableRows()
		return
	}

	profile := m.profiles[m.cursor]
	runs, err := m.source.RecentRuns(profile, maxRuns)
	if err != nil {
		m.loadErr = err
	} else {
		m.runs = runs
	}
	stats, err := m.source.ProfileStats(profile)
	if err != nil {
		m.loadErr = err
	} else {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows fills the table with the loaded runs.
func (m *ProgressBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Level),
			string(r.Outcome),
			fmt.Sprintf("%d", r.Pickups),
			fmt.Sprintf("%d", r.Hazards),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the progress board.
func (m ProgressBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress board.
func (m ProgressBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextProfile):
			if len(m.profiles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.profiles)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevProfile):
			if len(m.profiles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.profiles)) % len(m.profiles)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress board.
func (m ProgressBoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "PROGRESS"
	if p := m.Profile(); p != "" {
		title = fmt.Sprintf("PROGRESS - %s", p)
	}
	b.WriteString(centerText(m.theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := m.theme.BoardBorder
	body := lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), "", m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", boxStyle.Render(body)))
	} else {
		b.WriteString(centerText(boxStyle.Render(body), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ProgressBoardModel) renderSidebar() string {
	sidebarStyle := m.theme.BoardBorder.Width(sidebarWidth)

	var sidebar strings.Builder
	sidebar.WriteString("Profiles\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.profiles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := p
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderStats renders the totals line for the selected profile.
func (m ProgressBoardModel) renderStats() string {
	if m.stats == nil {
		return ""
	}
	s := m.stats
	stat := func(label string, value any) string {
		return m.theme.StatLabel.Render(label+" ") + m.theme.StatValue.Render(fmt.Sprint(value))
	}
	return strings.Join([]string{
		stat("Highest", s.HighestLevel),
		stat("Runs", s.Runs),
		stat("Cleared", s.Cleared),
		stat("Lost", s.GameOvers),
		stat("Played", formatDuration(s.PlayTime)),
	}, "   ")
}

// renderTableContent renders the table or empty message.
func (m ProgressBoardModel) renderTableContent() string {
	emptyStyle := m.theme.BoardEmpty
	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not load progress:\n%v", m.loadErr))
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nFinish a level to see it here!")
	}

	return m.table.View()
}

// Profile returns the profile being shown.
func (m ProgressBoardModel) Profile() string {
	if len(m.profiles) == 0 {
		return ""
	}
	return m.profiles[m.cursor]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProgressBoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressBoardModel) IsQuitting() bool {
	return m.quitting
}

// RunProgressBoard runs the progress screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunProgressBoard(source ProgressSource, profile string, width, height int) (goBack bool, err error) {
	model := NewProgressBoardModel(source, profile, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProgressBoardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
