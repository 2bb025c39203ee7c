// Package hud is the 2D overlay of the maze runner: the message label, the
// health bar, the on-screen controller and the replay button. It keeps
// retained state that the gameplay rules mutate and draws it on top of the
// scene each frame.
package hud

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Animation timings.
const (
	LabelPulsePeriod   = time.Second
	HeartAnimDuration  = 400 * time.Millisecond
	ControlPulsePeriod = 500 * time.Millisecond
	TickerDuration     = 1500 * time.Millisecond
	FlashDuration      = 150 * time.Millisecond
	tickerSize         = 3
)

type tickerEntry struct {
	cue   string
	until time.Duration
}

// HUD holds everything drawn over the scene.
type HUD struct {
	now time.Duration

	label        string
	labelVisible bool

	hearts     [maze.SlotCount]maze.HeartSlot
	animated   int
	animUntil  time.Duration
	barVisible bool

	controller bool
	replay     bool
	pulses     map[core.Control]bool
	held       core.Control

	ticker     []tickerEntry
	flashUntil time.Duration
}

// New creates a HUD with everything hidden and full hearts.
func New() *HUD {
	return &HUD{
		hearts:   maze.HeartFills(maze.MaxLife),
		animated: -1,
		pulses:   make(map[core.Control]bool),
	}
}

// Advance moves the HUD animations forward.
func (h *HUD) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	h.now += dt

	live := h.ticker[:0]
	for _, e := range h.ticker {
		if e.until > h.now {
			live = append(live, e)
		}
	}
	h.ticker = live
}

// SetHearts replaces the health bar. animated is the slot to highlight,
// or -1 for none.
func (h *HUD) SetHearts(slots [maze.SlotCount]maze.HeartSlot, animated int) {
	h.hearts = slots
	h.animated = animated
	if animated >= 0 {
		h.animUntil = h.now + HeartAnimDuration
	}
}

// SetHealthBarVisible shows or hides the health bar.
func (h *HUD) SetHealthBarVisible(visible bool) {
	h.barVisible = visible
}

// Hearts returns the health bar as last pushed.
func (h *HUD) Hearts() [maze.SlotCount]maze.HeartSlot {
	return h.hearts
}

// HealthBarVisible reports whether the bar is shown.
func (h *HUD) HealthBarVisible() bool {
	return h.barVisible
}

// SetLabel changes the message text.
func (h *HUD) SetLabel(text string) {
	h.label = text
}

// ShowLabel shows the message.
func (h *HUD) ShowLabel() {
	h.labelVisible = true
}

// HideLabel hides the message.
func (h *HUD) HideLabel() {
	h.labelVisible = false
}

// Label returns the message text and whether it is shown.
func (h *HUD) Label() (string, bool) {
	return h.label, h.labelVisible
}

// labelPulses reports whether the label animates. The tutorial banner
// stays still.
func (h *HUD) labelPulses() bool {
	return h.label != maze.PromptTutorial
}

// PulseControl starts highlighting a controller button.
func (h *HUD) PulseControl(c core.Control) {
	h.pulses[c] = true
}

// ClearPulse stops highlighting a controller button.
func (h *HUD) ClearPulse(c core.Control) {
	delete(h.pulses, c)
}

// Pulsing reports whether a controller button is highlighted.
func (h *HUD) Pulsing(c core.Control) bool {
	return h.pulses[c]
}

// ShowController shows the direction pad.
func (h *HUD) ShowController() {
	h.controller = true
}

// HideController hides the direction pad and drops any held button.
func (h *HUD) HideController() {
	h.controller = false
	h.held = core.ControlNone
}

// ControllerVisible reports whether the direction pad is shown.
func (h *HUD) ControllerVisible() bool {
	return h.controller
}

// ShowReplayButton shows the replay button.
func (h *HUD) ShowReplayButton() {
	h.replay = true
}

// HideReplayButton hides the replay button.
func (h *HUD) HideReplayButton() {
	h.replay = false
}

// ReplayVisible reports whether the replay button is shown.
func (h *HUD) ReplayVisible() bool {
	return h.replay
}

// Vibrate flashes the screen border.
func (h *HUD) Vibrate() {
	h.flashUntil = h.now + FlashDuration
}

// Flashing reports whether the hurt flash is on.
func (h *HUD) Flashing() bool {
	return h.now < h.flashUntil
}

// Cue shows a played sound cue in the ticker.
func (h *HUD) Cue(name string) {
	h.ticker = append(h.ticker, tickerEntry{cue: name, until: h.now + TickerDuration})
	if len(h.ticker) > tickerSize {
		h.ticker = h.ticker[len(h.ticker)-tickerSize:]
	}
}

// Ticker returns the cues still on screen, oldest first.
func (h *HUD) Ticker() []string {
	out := make([]string, len(h.ticker))
	for i, e := range h.ticker {
		out[i] = e.cue
	}
	return out
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
