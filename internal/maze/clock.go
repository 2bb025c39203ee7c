package maze

import (
	"sort"
	"time"
)

// Clock reports monotonic time since the session started.
type Clock interface {
	Now() time.Duration
}

// SimClock is a Clock advanced explicitly by the game loop.
type SimClock struct {
	now time.Duration
}

// Now returns the accumulated time.
func (c *SimClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward. Negative steps are ignored.
func (c *SimClock) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}
}

type timer struct {
	due time.Duration
	seq int
	fn  func()
}

// Scheduler runs callbacks once the clock passes their due time.
// Callbacks run from Run, on the caller's goroutine.
type Scheduler struct {
	clock  Clock
	timers []timer
	seq    int
}

// NewScheduler creates a scheduler reading time from clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run d from now.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.timers = append(s.timers, timer{due: s.clock.Now() + d, seq: s.seq, fn: fn})
}

// Run fires every due timer in due order. Timers scheduled by a callback
// wait for the next Run.
func (s *Scheduler) Run() {
	now := s.clock.Now()
	var due, rest []timer
	for _, t := range s.timers {
		if t.due <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	if len(due) == 0 {
		return
	}
	s.timers = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of timers not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Clear drops every pending timer.
func (s *Scheduler) Clear() {
	s.timers = nil
}
