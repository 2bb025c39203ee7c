package maze

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
)

type fakeScene struct {
	refs    map[int]LevelRefs
	loadErr error
	loads   []int
	removed []string
	opacity map[string]float64
	pos     core.Vec3
	resets  int
	rolls   []core.Control
	stops   int
	pulses  int
	camera  CameraMode
	orbit   float64
	follows int
	effects []string
	fxErr   error
}

func newFakeScene() *fakeScene {
	return &fakeScene{refs: make(map[int]LevelRefs), opacity: make(map[string]float64)}
}

func stockRefs(level int) LevelRefs {
	refs := LevelRefs{
		Player:       "player",
		Floor:        "floor",
		Goal:         "goal",
		OrbitCamera:  "orbit",
		FollowCamera: "follow",
	}
	if level == 1 {
		refs.TutorialGates = []string{"gate1", "gate2"}
	}
	return refs
}

func (s *fakeScene) LoadLevel(level int) (LevelRefs, error) {
	s.loads = append(s.loads, level)
	if s.loadErr != nil {
		return LevelRefs{}, s.loadErr
	}
	if refs, ok := s.refs[level]; ok {
		return refs, nil
	}
	return stockRefs(level), nil
}

func (s *fakeScene) RemoveNode(id string)                  { s.removed = append(s.removed, id) }
func (s *fakeScene) SetOpacity(id string, opacity float64) { s.opacity[id] = opacity }
func (s *fakeScene) PlayerPosition() core.Vec3             { return s.pos }
func (s *fakeScene) ResetPlayer()                          { s.resets++; s.pos = core.Vec3{} }
func (s *fakeScene) Roll(dir core.Control)                 { s.rolls = append(s.rolls, dir) }
func (s *fakeScene) StopPlayer()                           { s.stops++ }
func (s *fakeScene) PulsePlayer()                          { s.pulses++ }
func (s *fakeScene) UseCamera(mode CameraMode)             { s.camera = mode }
func (s *fakeScene) RotateOrbit(radians float64)           { s.orbit += radians }
func (s *fakeScene) FollowPlayer(pos core.Vec3)            { s.follows++ }

func (s *fakeScene) SpawnEffect(name string, at core.Vec3) error {
	if s.fxErr != nil {
		return s.fxErr
	}
	s.effects = append(s.effects, name)
	return nil
}

type fakeHUD struct {
	label      string
	labelShown bool
	controller bool
	replay     bool
	barVisible bool
	hearts     [SlotCount]HeartSlot
	animated   []int
	pulsing    map[core.Control]bool
	cueLog     []string
}

func newFakeHUD() *fakeHUD {
	return &fakeHUD{pulsing: make(map[core.Control]bool)}
}

func (h *fakeHUD) SetHearts(slots [SlotCount]HeartSlot, animated int) {
	h.hearts = slots
	h.animated = append(h.animated, animated)
}
func (h *fakeHUD) SetHealthBarVisible(v bool) { h.barVisible = v }
func (h *fakeHUD) SetLabel(text string)       { h.label = text }
func (h *fakeHUD) ShowLabel()                 { h.labelShown = true }
func (h *fakeHUD) HideLabel()                 { h.labelShown = false }
func (h *fakeHUD) ShowController()            { h.controller = true }
func (h *fakeHUD) HideController()            { h.controller = false }
func (h *fakeHUD) ShowReplayButton()          { h.replay = true }
func (h *fakeHUD) HideReplayButton()          { h.replay = false }

func (h *fakeHUD) PulseControl(c core.Control) {
	h.pulsing[c] = true
	h.cueLog = append(h.cueLog, "pulse:"+c.String())
}

func (h *fakeHUD) ClearPulse(c core.Control) {
	delete(h.pulsing, c)
	h.cueLog = append(h.cueLog, "clear:"+c.String())
}

var errNoSound = errors.New("no such cue")

type fakeAudio struct {
	played []string
	fail   bool
}

func (a *fakeAudio) Play(cue string) error {
	if a.fail {
		return fmt.Errorf("%w: %s", errNoSound, cue)
	}
	a.played = append(a.played, cue)
	return nil
}

func (a *fakeAudio) count(cue string) int {
	n := 0
	for _, p := range a.played {
		if p == cue {
			n++
		}
	}
	return n
}

type fakeHaptics struct{ buzzes int }

func (h *fakeHaptics) Vibrate() { h.buzzes++ }

type fakeProgress struct {
	best     int
	recorded []int
}

func (p *fakeProgress) HighestLevelReached() (int, error) {
	if p.best == 0 {
		return 1, nil
	}
	return p.best, nil
}

func (p *fakeProgress) RecordHighestLevelReached(level int) error {
	p.best = level
	p.recorded = append(p.recorded, level)
	return nil
}

type fakeRuns struct{ runs []RunResult }

func (r *fakeRuns) RecordRun(res RunResult) error {
	r.runs = append(r.runs, res)
	return nil
}

// rig bundles a controller with its fakes.
type rig struct {
	ctrl     *Controller
	scene    *fakeScene
	hud      *fakeHUD
	audio    *fakeAudio
	haptics  *fakeHaptics
	progress *fakeProgress
	runs     *fakeRuns
}

func newRig(startLevel int) *rig {
	r := &rig{
		scene:    newFakeScene(),
		hud:      newFakeHUD(),
		audio:    &fakeAudio{},
		haptics:  &fakeHaptics{},
		progress: &fakeProgress{},
		runs:     &fakeRuns{},
	}
	opts := DefaultOptions()
	opts.StartLevel = startLevel
	r.ctrl = NewController(Collaborators{
		Scene:    r.scene,
		HUD:      r.hud,
		Audio:    r.audio,
		Haptics:  r.haptics,
		Progress: r.progress,
		Runs:     r.runs,
	}, opts)
	return r
}

// playing returns a rig at startLevel that has begun and been tapped.
func playing(startLevel int) *rig {
	r := newRig(startLevel)
	if err := r.ctrl.Begin(); err != nil {
		panic(err)
	}
	if err := r.ctrl.HandleInput(core.Tap()); err != nil {
		panic(err)
	}
	return r
}

// wait lets the debounce window pass.
func (r *rig) wait() {
	r.ctrl.Tick(DefaultDebounce + time.Millisecond)
}

func touch(node string, cat Category) Contact {
	return Contact{
		A: Body{Node: "player", Category: CategoryPlayer, Opacity: 1},
		B: Body{Node: node, Category: cat, Opacity: 1},
	}
}
