package maze

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestTutorialSequence(t *testing.T) {
	hud := newFakeHUD()
	seq := NewTutorialSequencer(hud)

	steps := []TutorialStep{
		TutorialSecondPrompt,
		TutorialAwaitingGoal,
		TutorialGoalReached,
		TutorialDone,
	}
	for _, want := range steps {
		if !seq.Advance() {
			t.Fatalf("Advance() from %v returned false", seq.Step())
		}
		if seq.Step() != want {
			t.Fatalf("Step() = %v, expected %v", seq.Step(), want)
		}
	}

	wantCues := []string{"pulse:right", "clear:right", "pulse:down", "clear:down"}
	if !reflect.DeepEqual(hud.cueLog, wantCues) {
		t.Errorf("cues = %v, expected %v", hud.cueLog, wantCues)
	}
	if len(hud.pulsing) != 0 {
		t.Errorf("controls still pulsing after tutorial: %v", hud.pulsing)
	}
	if hud.label != PromptTutorialFinish || !hud.labelShown {
		t.Errorf("label = %q shown=%v, expected finish prompt", hud.label, hud.labelShown)
	}
}

func TestTutorialDoneIsFinal(t *testing.T) {
	hud := newFakeHUD()
	seq := NewTutorialSequencer(hud)
	for seq.Advance() {
	}
	cues := len(hud.cueLog)

	for range 3 {
		if seq.Advance() {
			t.Error("Advance() after Done returned true")
		}
	}
	if seq.Step() != TutorialDone || len(hud.cueLog) != cues {
		t.Errorf("Step() = %v, cues %d -> %d; expected no change", seq.Step(), cues, len(hud.cueLog))
	}
}

func TestTutorialPulsesOneControlAtATime(t *testing.T) {
	hud := newFakeHUD()
	seq := NewTutorialSequencer(hud)

	seq.Advance()
	if !hud.pulsing[core.ControlRight] || len(hud.pulsing) != 1 {
		t.Errorf("after first prompt pulsing = %v, expected right only", hud.pulsing)
	}
	seq.Advance()
	if !hud.pulsing[core.ControlDown] || len(hud.pulsing) != 1 {
		t.Errorf("after second prompt pulsing = %v, expected down only", hud.pulsing)
	}
}

func TestTutorialRestoreOnlyMovesForward(t *testing.T) {
	seq := NewTutorialSequencer(newFakeHUD())
	seq.Restore(TutorialAwaitingGoal)
	seq.Restore(TutorialFirstPrompt)
	if seq.Step() != TutorialAwaitingGoal {
		t.Errorf("Step() = %v, expected awaiting_goal", seq.Step())
	}
}
