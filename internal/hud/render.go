package hud

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Heart glyphs by fill.
const (
	HeartFull  = '♥'
	HeartFaint = '♡'
)

// Render draws the overlay into area.
func (h *HUD) Render(s *core.Screen, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	if h.Flashing() {
		h.drawFlash(s, area)
	}
	if h.barVisible {
		h.drawHearts(s, area.X+1, area.Y)
	}
	h.drawTicker(s, area)
	if h.labelVisible && h.label != "" {
		h.drawLabel(s, area)
	}
	for _, b := range h.Buttons(area) {
		h.drawButton(s, b)
	}
}

func (h *HUD) drawHearts(s *core.Screen, x, y int) {
	animating := h.now < h.animUntil
	for i, slot := range h.hearts {
		if !slot.Visible {
			continue
		}
		glyph, color := heartStyle(slot.Fill)
		if animating && i == h.animated {
			color = core.ColorBrightWhite
		}
		s.SetColored(x+i*2, y, glyph, color)
	}
}

// heartStyle picks a glyph and colour for a slot fill.
func heartStyle(fill float64) (rune, core.Color) {
	switch {
	case fill >= 1:
		return HeartFull, core.ColorBrightRed
	case fill >= 0.5:
		return HeartFull, core.ColorRed
	default:
		return HeartFaint, core.ColorRed
	}
}

func (h *HUD) drawLabel(s *core.Screen, area core.Rect) {
	color := core.ColorBrightWhite
	if h.labelPulses() && (h.now/(LabelPulsePeriod/2))%2 == 1 {
		color = core.ColorGray
	}
	x := area.X + (area.W-textWidth(h.label))/2
	y := area.Y + area.H/3
	s.DrawTextColored(max(x, area.X), y, h.label, color)
}

func (h *HUD) drawButton(s *core.Screen, b Button) {
	color := core.ColorWhite
	if b.Control == h.held {
		color = core.ColorBrightCyan
	}
	if h.pulses[b.Control] && (h.now/(ControlPulsePeriod/2))%2 == 0 {
		color = core.ColorBrightYellow
	}
	s.SetColored(b.Rect.X, b.Rect.Y, '[', color)
	s.SetColored(b.Rect.X+1, b.Rect.Y, b.Glyph, color)
	s.SetColored(b.Rect.X+2, b.Rect.Y, ']', color)
}

func (h *HUD) drawTicker(s *core.Screen, area core.Rect) {
	for i, e := range h.ticker {
		text := "♪ " + e.cue
		x := area.Right() - textWidth(text) - 1
		s.DrawTextColored(max(x, area.X), area.Y+1+i, text, core.ColorCyan)
	}
}

func (h *HUD) drawFlash(s *core.Screen, area core.Rect) {
	s.DrawHLine(area.X, area.Y, area.W, '▀', core.ColorBrightRed)
	s.DrawHLine(area.X, area.Bottom()-1, area.W, '▄', core.ColorBrightRed)
}

var _ maze.HUD = (*HUD)(nil)
var _ maze.Haptics = (*HUD)(nil)
