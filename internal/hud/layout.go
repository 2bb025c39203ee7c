package hud

import "github.com/vovakirdan/tui-maze/internal/core"

// Button is one clickable control on screen.
type Button struct {
	Control core.Control
	Rect    core.Rect
	Glyph   rune
}

const buttonWidth = 3

// Buttons returns the visible buttons laid out in area. The direction pad
// sits in the bottom-left corner and the replay button bottom-right.
func (h *HUD) Buttons(area core.Rect) []Button {
	var out []Button
	top := area.Bottom() - 3
	if top < area.Y {
		return nil
	}

	if h.controller {
		x := area.X + 1
		out = append(out,
			Button{core.ControlUp, core.NewRect(x+buttonWidth, top, buttonWidth, 1), '▲'},
			Button{core.ControlLeft, core.NewRect(x, top+1, buttonWidth, 1), '◀'},
			Button{core.ControlRight, core.NewRect(x+2*buttonWidth, top+1, buttonWidth, 1), '▶'},
			Button{core.ControlDown, core.NewRect(x+buttonWidth, top+2, buttonWidth, 1), '▼'},
		)
	}
	if h.replay {
		out = append(out, Button{core.ControlReplay, core.NewRect(area.Right()-buttonWidth-1, top+1, buttonWidth, 1), '↻'})
	}
	return out
}

// HitTest returns the button under a screen position.
func (h *HUD) HitTest(area core.Rect, x, y int) (core.Control, bool) {
	for _, b := range h.Buttons(area) {
		if b.Rect.Contains(x, y) {
			return b.Control, true
		}
	}
	return core.ControlNone, false
}

// PointerDown turns a click into input: a button press, or a plain tap
// anywhere else.
func (h *HUD) PointerDown(area core.Rect, x, y int) core.InputEvent {
	c, ok := h.HitTest(area, x, y)
	if !ok {
		return core.Tap()
	}
	if c.IsDirection() {
		h.held = c
	}
	return core.Press(c)
}

// PointerUp releases the button held by the last click, if any.
func (h *HUD) PointerUp() (core.InputEvent, bool) {
	if h.held == core.ControlNone {
		return core.InputEvent{}, false
	}
	c := h.held
	h.held = core.ControlNone
	return core.Release(c), true
}
