package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// CellStyles maps palette slots to the styles used to draw them.
type CellStyles map[core.Color]lipgloss.Style

// NewCellStyles builds a style per palette slot. With gray set every slot
// is drawn in its grayscale counterpart.
func NewCellStyles(gray bool) CellStyles {
	styles := make(CellStyles)
	for _, c := range core.Colors() {
		slot := c
		if gray {
			slot = c.Gray()
		}
		style := lipgloss.NewStyle()
		if code := slot.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// Style returns the style for c, or the plain style for unknown slots.
func (cs CellStyles) Style(c core.Color) lipgloss.Style {
	if style, ok := cs[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string using the
// current theme. Runs of same-colored cells share one style.
func RenderScreen(s *core.Screen) string {
	return renderCells(s, CurrentTheme().Cells)
}

func renderCells(s *core.Screen, styles CellStyles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styles.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
