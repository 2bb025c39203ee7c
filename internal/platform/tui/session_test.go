package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		Config:  config.DefaultMazeConfig(),
		Levels:  bundledLevels(t),
		Runtime: testRuntime,
		Store:   store,
		Profile: "ada",
	})
}

func sessionKey(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestMenuItems(t *testing.T) {
	fresh := NewMenuModel("ada", 1, testRuntime)
	if fresh.items[0].Choice != MenuNewGame {
		t.Errorf("first item = %v, expected new game for a fresh profile", fresh.items[0].Title)
	}

	returning := NewMenuModel("ada", 3, testRuntime)
	if returning.items[0].Choice != MenuContinue || !strings.Contains(returning.items[0].Title, "level 3") {
		t.Errorf("first item = %q, expected continue at level 3", returning.items[0].Title)
	}

	var m tea.Model = returning
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.(MenuModel).Selected(); sel == nil || sel.Choice != MenuNewGame {
		t.Errorf("Selected() = %+v, expected new game", sel)
	}
}

func TestSessionNewGameAndBack(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "maze.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestSession(t, store)
	if !strings.Contains(m.View(), "Welcome, ada") {
		t.Error("menu should greet the profile")
	}

	m, cmd := sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // New game
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("screen = %v, expected game with a tick command", m.screen)
	}
	game := m.game.Game()
	if game.Controller.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", game.Controller.Level())
	}

	// Tap to start and replay is unavailable on level 1; stepping must not panic
	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionKey(t, m, TickMsg(time.Now()))
	if game.Controller.Phase() != maze.PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", game.Controller.Phase())
	}

	m, cmd = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after esc", m.screen)
	}
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Error("leaving a game should not end the session")
		}
	}

	// Stale ticks are dropped by the menu
	m, cmd = sessionKey(t, m, TickMsg(time.Now()))
	if cmd != nil || m.screen != screenMenu {
		t.Error("menu should ignore ticks")
	}
}

func TestSessionContinueFromProgress(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "maze.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.RecordHighestLevel("ada", 3)

	m := newTestSession(t, store)
	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // Continue (level 3)
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if got := m.game.Game().Controller.Level(); got != 3 {
		t.Errorf("Level() = %d, expected 3", got)
	}
}

func TestSessionLevelPicker(t *testing.T) {
	m := newTestSession(t, nil)

	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // Select level
	if m.screen != screenLevels {
		t.Fatalf("screen = %v, expected level picker", m.screen)
	}

	// Without a store only level 1 is unlocked; picking level 2 is refused
	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenLevels {
		t.Errorf("screen = %v, locked level should not start", m.screen)
	}
	if !strings.Contains(m.View(), "(locked)") {
		t.Error("locked levels should be marked")
	}

	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game.Game().Controller.Level() != 1 {
		t.Errorf("expected level 1 to start, screen = %v", m.screen)
	}
}

func TestSessionProgressBoard(t *testing.T) {
	m := newTestSession(t, nil)

	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenProgress {
		t.Fatalf("screen = %v, expected progress board", m.screen)
	}
	if !strings.Contains(m.View(), "PROGRESS - ada") {
		t.Error("board should show the session profile")
	}

	m, _ = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after esc", m.screen)
	}

	_, cmd := sessionKey(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q should quit the session")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

type fakeSource struct {
	runs  map[string][]storage.Run
	stats map[string]*storage.ProfileStats
	err   error
}

func (f fakeSource) Profiles() ([]string, error) {
	return []string{"ada", "bob"}, f.err
}

func (f fakeSource) RecentRuns(profile string, limit int) ([]storage.Run, error) {
	return f.runs[profile], f.err
}

func (f fakeSource) ProfileStats(profile string) (*storage.ProfileStats, error) {
	if s, ok := f.stats[profile]; ok {
		return s, f.err
	}
	return &storage.ProfileStats{Profile: profile}, f.err
}

func TestProgressBoard(t *testing.T) {
	src := fakeSource{
		runs: map[string][]storage.Run{
			"bob": {
				{Level: 2, Outcome: maze.OutcomeCleared, Pickups: 3, Duration: 75 * time.Second, CreatedAt: time.Now()},
				{Level: 2, Outcome: maze.OutcomeFell, Hazards: 1, Duration: 10 * time.Second, CreatedAt: time.Now()},
			},
		},
		stats: map[string]*storage.ProfileStats{
			"bob": {Profile: "bob", HighestLevel: 2, Runs: 2, Cleared: 1, GameOvers: 1, PlayTime: 85 * time.Second},
		},
	}

	var m tea.Model = NewProgressBoardModel(src, "bob", 100, 30)
	board := m.(ProgressBoardModel)
	if board.Profile() != "bob" {
		t.Fatalf("Profile() = %q, expected bob", board.Profile())
	}
	if rows := board.table.Rows(); len(rows) != 2 || rows[0][1] != "cleared" || rows[0][4] != "1:15" {
		t.Errorf("rows = %v", rows)
	}
	if v := board.View(); !strings.Contains(v, "Highest") || !strings.Contains(v, "1:25") {
		t.Error("stats missing from view")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	board = m.(ProgressBoardModel)
	if board.Profile() != "ada" || len(board.table.Rows()) != 0 {
		t.Errorf("after tab: profile %q with %d rows", board.Profile(), len(board.table.Rows()))
	}
	if !strings.Contains(board.View(), "No runs recorded yet") {
		t.Error("empty profile should show the placeholder")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.(ProgressBoardModel).Profile() != "bob" {
		t.Error("shift+tab should go back to bob")
	}
}

func TestProgressBoardLoadError(t *testing.T) {
	board := NewProgressBoardModel(fakeSource{err: errors.New("disk gone")}, "ada", 60, 20)
	if !strings.Contains(board.View(), "disk gone") {
		t.Error("load error should be shown")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{61*time.Second + 600*time.Millisecond, "1:02"},
		{12 * time.Minute, "12:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
