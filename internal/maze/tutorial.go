package maze

import "github.com/vovakirdan/tui-maze/internal/core"

// TutorialStep is the progress of the level-1 onboarding.
type TutorialStep int

const (
	TutorialFirstPrompt TutorialStep = iota
	TutorialSecondPrompt
	TutorialAwaitingGoal
	TutorialGoalReached
	TutorialDone
)

func (s TutorialStep) String() string {
	switch s {
	case TutorialFirstPrompt:
		return "first_prompt"
	case TutorialSecondPrompt:
		return "second_prompt"
	case TutorialAwaitingGoal:
		return "awaiting_goal"
	case TutorialGoalReached:
		return "goal_reached"
	case TutorialDone:
		return "done"
	default:
		return "unknown"
	}
}

// TutorialSequencer walks the tutorial forward one step at a time.
// It never skips or goes back; Advance after Done does nothing.
type TutorialSequencer struct {
	step TutorialStep
	cues TutorialCues
}

// NewTutorialSequencer starts a tutorial at its first prompt.
func NewTutorialSequencer(cues TutorialCues) *TutorialSequencer {
	return &TutorialSequencer{step: TutorialFirstPrompt, cues: cues}
}

// Step returns the current step.
func (t *TutorialSequencer) Step() TutorialStep {
	return t.step
}

// Done reports whether the tutorial finished.
func (t *TutorialSequencer) Done() bool {
	return t.step == TutorialDone
}

// Advance moves to the next step and runs its HUD cues.
// It returns false when the tutorial is already done.
func (t *TutorialSequencer) Advance() bool {
	switch t.step {
	case TutorialFirstPrompt:
		t.cues.PulseControl(core.ControlRight)
	case TutorialSecondPrompt:
		t.cues.ClearPulse(core.ControlRight)
		t.cues.PulseControl(core.ControlDown)
	case TutorialAwaitingGoal:
		t.cues.ClearPulse(core.ControlDown)
	case TutorialGoalReached:
		t.cues.SetLabel(PromptTutorialFinish)
		t.cues.ShowLabel()
	default:
		return false
	}
	t.step++
	return true
}

// Restore sets the step directly, for resuming a session. Steps only move
// forward; an earlier step is ignored.
func (t *TutorialSequencer) Restore(step TutorialStep) {
	if step > t.step && step <= TutorialDone {
		t.step = step
	}
}
