package maze

import (
	"math/rand"
	"testing"
)

type heartSink struct {
	hearts   [SlotCount]HeartSlot
	animated []int
	visible  bool
}

func (s *heartSink) SetHearts(slots [SlotCount]HeartSlot, animated int) {
	s.hearts = slots
	s.animated = append(s.animated, animated)
}

func (s *heartSink) SetHealthBarVisible(v bool) { s.visible = v }

func TestHeartFills(t *testing.T) {
	tests := []struct {
		life int
		want [SlotCount]float64
	}{
		{9, [3]float64{1.0, 1.0, 1.0}},
		{8, [3]float64{1.0, 1.0, 0.65}},
		{7, [3]float64{1.0, 1.0, 0.3}},
		{6, [3]float64{1.0, 1.0, 0}},
		{4, [3]float64{1.0, 0.3, 0}},
		{2, [3]float64{0.65, 0, 0}},
		{0, [3]float64{0, 0, 0}},
	}
	for _, tt := range tests {
		slots := HeartFills(tt.life)
		for i, s := range slots {
			if s.Fill != tt.want[i] {
				t.Errorf("HeartFills(%d)[%d].Fill = %v, expected %v", tt.life, i, s.Fill, tt.want[i])
			}
			if s.Visible != (tt.want[i] > 0) {
				t.Errorf("HeartFills(%d)[%d].Visible = %v", tt.life, i, s.Visible)
			}
		}
	}
}

func TestApplyPickupSlotSelection(t *testing.T) {
	tests := []struct {
		before int
		slot   int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{8, 2},
	}
	for _, tt := range tests {
		sink := &heartSink{}
		h := NewHealthTracker(sink)
		h.life = tt.before
		if !h.ApplyPickup() {
			t.Fatalf("ApplyPickup() at %d returned false", tt.before)
		}
		if got := sink.animated[len(sink.animated)-1]; got != tt.slot {
			t.Errorf("pickup at %d animated slot %d, expected %d", tt.before, got, tt.slot)
		}
		if h.Life() != tt.before+1 {
			t.Errorf("Life() = %d, expected %d", h.Life(), tt.before+1)
		}
	}
}

func TestApplyPickupAtMax(t *testing.T) {
	sink := &heartSink{}
	h := NewHealthTracker(sink)
	if h.ApplyPickup() {
		t.Error("ApplyPickup() at max should report no change")
	}
	if h.Life() != MaxLife || len(sink.animated) != 0 {
		t.Errorf("Life() = %d, pushes = %d; expected untouched", h.Life(), len(sink.animated))
	}
}

func TestApplyHazardSlotSelection(t *testing.T) {
	tests := []struct {
		before int
		slots  []int
	}{
		{9, []int{2, 2, 2}},
		{7, []int{2, 1, 1}},
		{6, []int{1, 1, 1}},
		{4, []int{1, 0, 0}},
		{3, []int{0, 0, 0}},
	}
	for _, tt := range tests {
		sink := &heartSink{}
		h := NewHealthTracker(sink)
		h.life = tt.before
		h.ApplyHazard()
		if len(sink.animated) != len(tt.slots) {
			t.Fatalf("hazard at %d pushed %d updates, expected %d", tt.before, len(sink.animated), len(tt.slots))
		}
		for i, want := range tt.slots {
			if sink.animated[i] != want {
				t.Errorf("hazard at %d unit %d animated slot %d, expected %d", tt.before, i, sink.animated[i], want)
			}
		}
	}
}

func TestApplyHazardExhaustion(t *testing.T) {
	tests := []struct {
		before    int
		after     int
		exhausted bool
	}{
		{9, 6, false},
		{4, 1, false},
		{3, 0, true},
		{1, 0, true},
		{0, 0, false},
	}
	for _, tt := range tests {
		sink := &heartSink{}
		h := NewHealthTracker(sink)
		h.life = tt.before
		if got := h.ApplyHazard(); got != tt.exhausted {
			t.Errorf("ApplyHazard() at %d = %v, expected %v", tt.before, got, tt.exhausted)
		}
		if h.Life() != tt.after {
			t.Errorf("Life() after hazard at %d = %d, expected %d", tt.before, h.Life(), tt.after)
		}
	}

	// from 1 only one unit is taken
	sink := &heartSink{}
	h := NewHealthTracker(sink)
	h.life = 1
	h.ApplyHazard()
	if len(sink.animated) != 1 {
		t.Errorf("hazard at 1 pushed %d updates, expected 1", len(sink.animated))
	}
}

func TestHealthStaysDerived(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sink := &heartSink{}
	h := NewHealthTracker(sink)

	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0:
			h.ApplyHazard()
		case 1:
			h.Reset()
		default:
			h.ApplyPickup()
		}
		if h.Life() < 0 || h.Life() > MaxLife {
			t.Fatalf("step %d: Life() = %d out of range", i, h.Life())
		}
		if h.Hearts() != HeartFills(h.Life()) {
			t.Fatalf("step %d: hearts drifted from life %d", i, h.Life())
		}
		if len(sink.animated) > 0 && sink.hearts != HeartFills(h.Life()) {
			t.Fatalf("step %d: display shows %+v for life %d", i, sink.hearts, h.Life())
		}
	}
}

func TestHealthResetAndVisibility(t *testing.T) {
	sink := &heartSink{}
	h := NewHealthTracker(sink)
	h.SetVisible(true)
	h.ApplyHazard()

	h.Reset()
	if h.Life() != MaxLife {
		t.Errorf("Life() after Reset = %d, expected %d", h.Life(), MaxLife)
	}
	if h.Visible() || sink.visible {
		t.Error("Reset should hide the bar")
	}
	if sink.hearts != HeartFills(MaxLife) {
		t.Errorf("Reset pushed %+v, expected full hearts", sink.hearts)
	}

	h.ApplyHazard()
	h.SetVisible(true)
	if h.Life() != 6 {
		t.Errorf("SetVisible changed life to %d", h.Life())
	}
}
