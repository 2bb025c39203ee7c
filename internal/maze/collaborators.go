package maze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// CameraMode selects which camera the scene renders through.
type CameraMode int

const (
	CameraOrbit  CameraMode = iota // idle view circling the level
	CameraFollow                   // tracks the player while playing
)

func (m CameraMode) String() string {
	if m == CameraFollow {
		return "follow"
	}
	return "orbit"
}

// LevelRefs names the scene nodes the rules need after a level load.
type LevelRefs struct {
	Player        string
	Floor         string
	Goal          string
	OrbitCamera   string
	FollowCamera  string
	TutorialGates []string
}

// Validate reports the first required reference that is missing.
func (r LevelRefs) Validate() error {
	required := []struct {
		name, id string
	}{
		{"player", r.Player},
		{"floor", r.Floor},
		{"goal", r.Goal},
		{"orbit camera", r.OrbitCamera},
		{"follow camera", r.FollowCamera},
	}
	for _, ref := range required {
		if ref.id == "" {
			return fmt.Errorf("%w: %s", ErrMissingReference, ref.name)
		}
	}
	return nil
}

// Scene is the world the player moves through.
type Scene interface {
	// LoadLevel replaces the current level and returns its named nodes.
	LoadLevel(level int) (LevelRefs, error)
	RemoveNode(id string)
	SetOpacity(id string, opacity float64)
	PlayerPosition() core.Vec3
	ResetPlayer()
	Roll(dir core.Control)
	StopPlayer()
	PulsePlayer()
	UseCamera(mode CameraMode)
	RotateOrbit(radians float64)
	FollowPlayer(pos core.Vec3)
	SpawnEffect(name string, at core.Vec3) error
}

// HeartDisplay receives the derived health bar.
// animated is the slot that changed, or -1 when every slot was redrawn.
type HeartDisplay interface {
	SetHearts(slots [SlotCount]HeartSlot, animated int)
	SetHealthBarVisible(visible bool)
}

// TutorialCues is the part of the HUD the tutorial drives.
type TutorialCues interface {
	PulseControl(c core.Control)
	ClearPulse(c core.Control)
	SetLabel(text string)
	ShowLabel()
}

// HUD is the 2D overlay drawn on top of the scene.
type HUD interface {
	HeartDisplay
	TutorialCues
	HideLabel()
	ShowController()
	HideController()
	ShowReplayButton()
	HideReplayButton()
}

// Audio plays named sound cues.
type Audio interface {
	Play(cue string) error
}

// Haptics gives physical feedback when the player is hurt.
type Haptics interface {
	Vibrate()
}

// Progress persists the highest level the player has entered.
type Progress interface {
	HighestLevelReached() (int, error)
	RecordHighestLevelReached(level int) error
}

// Outcome describes how a play phase ended.
type Outcome string

const (
	OutcomeCleared   Outcome = "cleared"
	OutcomeCompleted Outcome = "completed"
	OutcomeTutorial  Outcome = "tutorial"
	OutcomeGameOver  Outcome = "game_over"
	OutcomeFell      Outcome = "fell"
	OutcomeReplay    Outcome = "replay"
)

// RunResult summarizes one play phase.
type RunResult struct {
	Level    int
	Outcome  Outcome
	Pickups  int
	Hazards  int
	Duration time.Duration
}

// RunRecorder stores finished runs. It is optional.
type RunRecorder interface {
	RecordRun(r RunResult) error
}
