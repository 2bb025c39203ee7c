package world

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world/levels"
	"github.com/vovakirdan/tui-maze/internal/world/levels/formats"
)

const frame = 33 * time.Millisecond

func testLevel(t *testing.T, layout string) levels.Level {
	t.Helper()
	parsed, err := formats.ParseLayout(layout)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	return levels.Level{Level: parsed}
}

func testWorld(t *testing.T, layouts ...string) *World {
	t.Helper()
	var lvls []levels.Level
	for _, l := range layouts {
		lvls = append(lvls, testLevel(t, l))
	}
	cfg := config.DefaultMazeConfig()
	return New(lvls, Options{Physics: cfg.Physics, Effects: cfg.Effects, Seed: 1})
}

// run steps the world until cond holds or the frame budget runs out.
func run(w *World, frames int, cond func() bool) []maze.Contact {
	var all []maze.Contact
	for range frames {
		w.Step(frame)
		all = append(all, w.Contacts()...)
		if cond != nil && cond() {
			break
		}
	}
	return all
}

func TestLoadLevelRefs(t *testing.T) {
	w := testWorld(t, "#####\n#PCCG#\n#####", "####\n#P.#\n####")

	refs, err := w.LoadLevel(1)
	if err != nil {
		t.Fatalf("LoadLevel(1) error = %v", err)
	}
	if err := refs.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if w.LevelNumber() != 1 {
		t.Errorf("LevelNumber() = %d, expected 1", w.LevelNumber())
	}
	if refs.Goal != "goal-1" {
		t.Errorf("Goal = %q, expected goal-1", refs.Goal)
	}
	if len(refs.TutorialGates) != 2 {
		t.Errorf("TutorialGates = %v, expected 2", refs.TutorialGates)
	}

	// a level without a goal yields a missing reference
	refs, err = w.LoadLevel(2)
	if err != nil {
		t.Fatalf("LoadLevel(2) error = %v", err)
	}
	if err := refs.Validate(); !errors.Is(err, maze.ErrMissingReference) {
		t.Errorf("Validate() = %v, expected ErrMissingReference", err)
	}

	if _, err := w.LoadLevel(3); err == nil {
		t.Error("LoadLevel(3) should fail")
	}
}

func TestRollIntoWallEmitsOneContactPerCell(t *testing.T) {
	w := testWorld(t, "#####\n#P.G#\n#####")
	w.LoadLevel(1)

	w.Roll(core.ControlUp)
	contacts := run(w, 30, nil)

	walls := 0
	for _, c := range contacts {
		if c.B.Category == maze.CategoryWall {
			walls++
		}
	}
	if walls != 1 {
		t.Errorf("wall contacts = %d, expected 1 for a head-on bump", walls)
	}
	if w.player.vel != (core.Vec3{}) {
		t.Errorf("velocity after wall = %+v, expected stopped", w.player.vel)
	}
	if w.PlayerPosition().Z < 1 {
		t.Errorf("player entered the wall: %+v", w.PlayerPosition())
	}
}

func TestEnteringObjectEmitsBurst(t *testing.T) {
	w := testWorld(t, "######\n#P.oG#\n######")
	w.LoadLevel(1)

	w.Roll(core.ControlRight)
	contacts := run(w, 60, func() bool { return w.PlayerPosition().X > 3.2 })

	pickups := 0
	for _, c := range contacts {
		if c.B.Node == "pickup-1" {
			pickups++
			if c.A.Category != maze.CategoryPlayer {
				t.Errorf("contact A = %+v, expected player", c.A)
			}
		}
	}
	if pickups != 2 {
		t.Errorf("pickup contacts = %d, expected a burst of 2", pickups)
	}
}

func TestRemovedNodeIsNotTouched(t *testing.T) {
	w := testWorld(t, "######\n#P.oG#\n######")
	w.LoadLevel(1)
	w.RemoveNode("pickup-1")

	w.Roll(core.ControlRight)
	for _, c := range run(w, 60, nil) {
		if c.B.Node == "pickup-1" {
			t.Fatal("removed pickup produced a contact")
		}
	}
}

func TestOpacityCarriedOnContact(t *testing.T) {
	w := testWorld(t, "######\n#P.XG#\n######")
	w.LoadLevel(1)
	w.SetOpacity("hazard-1", maze.FadedOpacity)

	w.Roll(core.ControlRight)
	for _, c := range run(w, 60, nil) {
		if c.B.Node == "hazard-1" && c.B.Active() {
			t.Fatalf("faded hazard reported as active: %+v", c.B)
		}
	}
}

func TestFallingThroughHole(t *testing.T) {
	w := testWorld(t, "#####\n#P. G\n#####")
	w.LoadLevel(1)

	w.Roll(core.ControlRight)
	run(w, 200, func() bool { return w.PlayerPosition().Y < -8 })

	if !w.Falling() {
		t.Fatal("player should be falling")
	}
	if w.PlayerPosition().Y >= -8 {
		t.Errorf("Y = %v, expected below -8", w.PlayerPosition().Y)
	}

	w.ResetPlayer()
	if w.Falling() || w.PlayerPosition() != core.V3(1.5, 0, 1.5) {
		t.Errorf("ResetPlayer left %+v falling=%v", w.PlayerPosition(), w.Falling())
	}
}

func TestStopPlayer(t *testing.T) {
	w := testWorld(t, "#######\n#P...G#\n#######")
	w.LoadLevel(1)
	w.Roll(core.ControlRight)
	w.Step(frame)
	w.StopPlayer()
	x := w.PlayerPosition().X
	w.Step(frame)
	if w.PlayerPosition().X != x {
		t.Errorf("player moved after StopPlayer")
	}
}

func TestDifficultySpeedsUpLaterLevels(t *testing.T) {
	layout := "#######\n#P...G#\n#######"
	lvls := []levels.Level{testLevel(t, layout), testLevel(t, layout)}
	cfg := config.DefaultMazeConfig()
	w := New(lvls, Options{
		Physics: cfg.Physics,
		Difficulty: config.NewDifficultyManager(config.DifficultyConfig{
			Enabled:     true,
			Progression: config.ProgressionConfig{Type: "level", MaxAt: 2},
			Scaling:     config.ScalingConfig{SpeedMultiplier: 1.0},
		}),
	})

	w.LoadLevel(1)
	slow := w.speed
	w.LoadLevel(2)
	if w.speed != slow*2 {
		t.Errorf("level 2 speed = %v, expected %v", w.speed, slow*2)
	}
}

func TestSpawnEffect(t *testing.T) {
	w := testWorld(t, "####\n#PG#\n####")
	w.LoadLevel(1)

	if err := w.SpawnEffect(config.EffectPickupBurst, core.V3(1, 0, 1)); err != nil {
		t.Fatalf("SpawnEffect() error = %v", err)
	}
	if w.ParticleCount() != 6 {
		t.Errorf("ParticleCount() = %d, expected 6", w.ParticleCount())
	}
	w.Step(time.Second)
	if w.ParticleCount() != 0 {
		t.Errorf("particles alive after their lifetime: %d", w.ParticleCount())
	}

	err := w.SpawnEffect("confetti", core.Vec3{})
	if !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("SpawnEffect(confetti) error = %v, expected ErrUnknownEffect", err)
	}
}

func TestCameraAndPulse(t *testing.T) {
	w := testWorld(t, "####\n#PG#\n####")
	w.LoadLevel(1)

	if w.CameraMode() != maze.CameraOrbit {
		t.Errorf("CameraMode() = %v after load, expected orbit", w.CameraMode())
	}
	w.RotateOrbit(0.5)
	w.RotateOrbit(0.5)
	if w.OrbitAngle() != 1.0 {
		t.Errorf("OrbitAngle() = %v", w.OrbitAngle())
	}

	w.PulsePlayer()
	if w.PlayerOpacity() >= maze.FullOpacity {
		t.Error("player should be translucent while pulsing")
	}
	w.Step(time.Second)
	if w.PlayerOpacity() != maze.FullOpacity {
		t.Error("pulse should wear off")
	}
}

func TestRender(t *testing.T) {
	w := testWorld(t, "#####\n#PoG#\n#####")
	w.LoadLevel(1)

	s := core.NewScreen(20, 5)
	w.Render(s, core.NewRect(0, 0, 20, 5))
	out := s.String()
	for _, glyph := range []rune{WallChar, PlayerChar, PickupChar, GoalChar} {
		if !strings.ContainsRune(out, glyph) {
			t.Errorf("render missing %q:\n%s", glyph, out)
		}
	}
	if s.GetCell(19, 0).Rune != CompassRune(0) {
		t.Errorf("orbit view should draw the compass, got %q", s.GetCell(19, 0).Rune)
	}

	w.UseCamera(maze.CameraFollow)
	w.FollowPlayer(w.PlayerPosition())
	s.Clear()
	w.Render(s, core.NewRect(0, 0, 20, 5))
	// follow view centers the player
	if s.GetCell(10, 2).Rune != PlayerChar {
		t.Errorf("follow view center = %q, expected player:\n%s", s.GetCell(10, 2).Rune, s.String())
	}
}

func TestCompassRune(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '↑'},
		{1.5708, '→'},
		{3.1416, '↓'},
		{-1.5708, '←'},
		{6.2832, '↑'},
	}
	for _, tt := range tests {
		if got := CompassRune(tt.angle); got != tt.want {
			t.Errorf("CompassRune(%v) = %q, expected %q", tt.angle, got, tt.want)
		}
	}
}

func TestWorldImplementsScene(t *testing.T) {
	var _ maze.Scene = (*World)(nil)
}
