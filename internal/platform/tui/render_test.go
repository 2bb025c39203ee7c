package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestCellStyles(t *testing.T) {
	tests := []struct {
		name  string
		gray  bool
		color core.Color
		want  lipgloss.TerminalColor
	}{
		{"hazard", false, core.ColorHazard, lipgloss.Color("9")},
		{"floor", false, core.ColorFloor, lipgloss.Color("238")},
		{"default", false, core.ColorDefault, lipgloss.NoColor{}},
		{"gray hazard", true, core.ColorHazard, lipgloss.Color("15")},
		{"gray gate", true, core.ColorGate, lipgloss.Color("7")},
		{"gray wall", true, core.ColorWall, lipgloss.Color("245")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCellStyles(tt.gray).Style(tt.color).GetForeground()
			if got != tt.want {
				t.Errorf("foreground = %v, expected %v", got, tt.want)
			}
		})
	}

	if got := NewCellStyles(false).Style(core.Color(200)).GetForeground(); got != (lipgloss.NoColor{}) {
		t.Errorf("unknown slot foreground = %v, expected none", got)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "##", core.ColorWall)
	s.SetColored(3, 0, 'o', core.ColorPickup)
	s.DrawText(0, 1, "maze")

	for _, th := range []Theme{DefaultTheme(), MonochromeTheme()} {
		SetTheme(th)
		lines := strings.Split(RenderScreen(s), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, expected 2", len(lines))
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w != 8 {
				t.Errorf("line %d width = %d, expected 8", i, w)
			}
		}
	}
	SetTheme(DefaultTheme())
}
