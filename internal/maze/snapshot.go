package maze

import "time"

// Snapshot is a read-only view of the session used by tests and the
// status line.
type Snapshot struct {
	Phase         Phase
	Level         int
	LevelCount    int
	Life          int
	Hearts        [SlotCount]HeartSlot
	HealthVisible bool
	Tutorial      TutorialStep
	DebounceArmed bool
	PendingTimers int
	Pickups       int
	Hazards       int
	Elapsed       time.Duration
	ConsumedGates int
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:         c.phase,
		Level:         c.level,
		LevelCount:    c.opts.LevelCount,
		Life:          c.health.Life(),
		Hearts:        c.health.Hearts(),
		HealthVisible: c.health.Visible(),
		Tutorial:      c.tutorial.Step(),
		DebounceArmed: c.resolver.debounce.Armed(),
		PendingTimers: c.sched.Pending(),
		Pickups:       c.cur.pickups,
		Hazards:       c.cur.hazards,
		Elapsed:       c.clock.Now(),
		ConsumedGates: len(c.resolver.gates),
	}
}
