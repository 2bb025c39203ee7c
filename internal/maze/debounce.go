package maze

import "time"

// DefaultDebounce is how long one touch suppresses further contacts.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer collapses a burst of contacts into one effect. Arm opens a
// window during which Ready is false; the window closes on its own when
// the clock passes it.
type Debouncer struct {
	clock  Clock
	window time.Duration
	until  time.Duration
	armed  bool
}

// NewDebouncer creates a debouncer with the given window.
func NewDebouncer(clock Clock, window time.Duration) *Debouncer {
	return &Debouncer{clock: clock, window: window}
}

// Ready reports whether a new contact may produce an effect.
func (d *Debouncer) Ready() bool {
	if d.armed && d.clock.Now() >= d.until {
		d.armed = false
	}
	return !d.armed
}

// Arm opens a new window starting now.
func (d *Debouncer) Arm() {
	d.armed = true
	d.until = d.clock.Now() + d.window
}

// Armed reports whether a window is open.
func (d *Debouncer) Armed() bool {
	return !d.Ready()
}

// Reset closes any open window.
func (d *Debouncer) Reset() {
	d.armed = false
}
