package maze

import (
	"reflect"
	"testing"
	"time"
)

func TestDebouncerWindow(t *testing.T) {
	clock := &SimClock{}
	d := NewDebouncer(clock, 200*time.Millisecond)

	if !d.Ready() {
		t.Fatal("fresh debouncer should be ready")
	}
	d.Arm()
	if d.Ready() {
		t.Error("Ready() right after Arm should be false")
	}
	clock.Advance(199 * time.Millisecond)
	if d.Ready() {
		t.Error("Ready() inside the window should be false")
	}
	clock.Advance(time.Millisecond)
	if !d.Ready() {
		t.Error("Ready() at the end of the window should be true")
	}

	d.Arm()
	d.Reset()
	if d.Armed() {
		t.Error("Reset should close the window")
	}
}

func TestSimClockIgnoresNegative(t *testing.T) {
	clock := &SimClock{}
	clock.Advance(time.Second)
	clock.Advance(-time.Hour)
	if clock.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", clock.Now())
	}
}

func TestSchedulerOrder(t *testing.T) {
	clock := &SimClock{}
	s := NewScheduler(clock)
	var fired []string

	s.After(3*time.Second, func() { fired = append(fired, "c") })
	s.After(time.Second, func() { fired = append(fired, "a") })
	s.After(time.Second, func() { fired = append(fired, "b") })

	clock.Advance(500 * time.Millisecond)
	s.Run()
	if len(fired) != 0 {
		t.Fatalf("fired early: %v", fired)
	}

	clock.Advance(5 * time.Second)
	s.Run()
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(fired, want) {
		t.Errorf("fired = %v, expected %v", fired, want)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerNestedAndClear(t *testing.T) {
	clock := &SimClock{}
	s := NewScheduler(clock)
	count := 0

	s.After(0, func() {
		count++
		s.After(0, func() { count++ })
	})
	s.Run()
	if count != 1 || s.Pending() != 1 {
		t.Fatalf("count = %d pending = %d, expected nested timer to wait", count, s.Pending())
	}
	s.Run()
	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}

	s.After(time.Second, func() { count++ })
	s.Clear()
	clock.Advance(time.Hour)
	s.Run()
	if count != 2 {
		t.Errorf("cleared timer fired")
	}
}
