package maze

// Health bar dimensions.
const (
	MaxLife      = 9
	HazardDamage = 3
	SlotCount    = 3
	UnitsPerSlot = MaxLife / SlotCount
	FillStep     = 0.35 // opacity lost per life unit within a slot
)

// fillByUnits maps the units held by a slot to its opacity.
// Each unit lost removes one FillStep; an empty slot is hidden.
var fillByUnits = [UnitsPerSlot + 1]float64{0, 0.3, 0.65, 1.0}

// HeartSlot is one heart of the health bar.
type HeartSlot struct {
	Visible bool
	Fill    float64
}

// HeartFills derives the three heart slots from a life total.
// Slot i holds life units 3i+1 through 3i+3.
func HeartFills(life int) [SlotCount]HeartSlot {
	var slots [SlotCount]HeartSlot
	for i := range slots {
		units := life - i*UnitsPerSlot
		if units < 0 {
			units = 0
		}
		if units > UnitsPerSlot {
			units = UnitsPerSlot
		}
		slots[i] = HeartSlot{Visible: units > 0, Fill: fillByUnits[units]}
	}
	return slots
}

// healSlot picks the slot that animates when a unit is gained.
func healSlot(before int) int {
	switch {
	case before >= 6:
		return 2
	case before >= 3:
		return 1
	default:
		return 0
	}
}

// damageSlot picks the slot that animates when a unit is lost.
func damageSlot(before int) int {
	switch {
	case before > 6:
		return 2
	case before > 3:
		return 1
	default:
		return 0
	}
}

// HealthTracker owns the life total and pushes the derived hearts to the
// display on every change.
type HealthTracker struct {
	life    int
	visible bool
	display HeartDisplay
}

// NewHealthTracker creates a tracker at full health with the bar hidden.
func NewHealthTracker(display HeartDisplay) *HealthTracker {
	return &HealthTracker{life: MaxLife, display: display}
}

// Life returns the current life total.
func (h *HealthTracker) Life() int {
	return h.life
}

// Visible reports whether the bar is shown.
func (h *HealthTracker) Visible() bool {
	return h.visible
}

// Hearts returns the slots derived from the current life total.
func (h *HealthTracker) Hearts() [SlotCount]HeartSlot {
	return HeartFills(h.life)
}

// ApplyPickup gains one unit. It returns false when already at MaxLife.
func (h *HealthTracker) ApplyPickup() bool {
	if h.life >= MaxLife {
		return false
	}
	slot := healSlot(h.life)
	h.life++
	h.display.SetHearts(HeartFills(h.life), slot)
	return true
}

// ApplyHazard loses HazardDamage units one at a time. It returns true when
// the total reached zero during this call; no unit is taken below zero.
func (h *HealthTracker) ApplyHazard() (exhausted bool) {
	for range HazardDamage {
		if h.life == 0 {
			return false
		}
		slot := damageSlot(h.life)
		h.life--
		h.display.SetHearts(HeartFills(h.life), slot)
		if h.life == 0 {
			return true
		}
	}
	return false
}

// Reset restores full health and hides the bar.
func (h *HealthTracker) Reset() {
	h.life = MaxLife
	h.display.SetHearts(HeartFills(h.life), -1)
	h.SetVisible(false)
}

// SetVisible shows or hides the whole bar. The life total is unaffected.
func (h *HealthTracker) SetVisible(visible bool) {
	h.visible = visible
	h.display.SetHealthBarVisible(visible)
}
