package maze

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// Category is the collision tag carried by every scene body.
type Category uint32

const (
	CategoryPlayer       Category = 1 << iota // 1
	CategoryWall                              // 2
	CategoryPickup                            // 4
	CategoryHazard                            // 8
	CategoryGoal                              // 16
	CategoryTutorialGate                      // 32
	CategoryFloor                             // 64
)

// Opacity levels used for the hazard cooldown.
const (
	ActiveOpacity = 0.2 // bodies at or below this do not trigger
	FadedOpacity  = 0.1
	FullOpacity   = 1.0
)

// DefaultHazardCooldown is how long a hazard stays faded after a hit.
const DefaultHazardCooldown = 5 * time.Second

// EncounterKind classifies what the player touched.
type EncounterKind int

const (
	EncounterNone EncounterKind = iota
	EncounterPickup
	EncounterHazard
	EncounterGoal
	EncounterTutorialGate
	EncounterWall
)

func (k EncounterKind) String() string {
	switch k {
	case EncounterPickup:
		return "pickup"
	case EncounterHazard:
		return "hazard"
	case EncounterGoal:
		return "goal"
	case EncounterTutorialGate:
		return "tutorial_gate"
	case EncounterWall:
		return "wall"
	default:
		return "none"
	}
}

// Classify maps a body category to an encounter.
func Classify(c Category) EncounterKind {
	switch c {
	case CategoryPickup:
		return EncounterPickup
	case CategoryHazard:
		return EncounterHazard
	case CategoryGoal:
		return EncounterGoal
	case CategoryTutorialGate:
		return EncounterTutorialGate
	case CategoryWall:
		return EncounterWall
	default:
		return EncounterNone
	}
}

// Body is one side of a contact.
type Body struct {
	Node     string
	Category Category
	Opacity  float64
	Position core.Vec3
}

// Active reports whether the body is solid enough to trigger an effect.
func (b Body) Active() bool {
	return b.Opacity > ActiveOpacity
}

// Contact is a contact-begin event between two bodies.
type Contact struct {
	A, B  Body
	Point core.Vec3
}

// Other returns the body that is not the player, or false when the player
// is not part of the contact.
func (c Contact) Other() (Body, bool) {
	switch {
	case c.A.Category == CategoryPlayer:
		return c.B, true
	case c.B.Category == CategoryPlayer:
		return c.A, true
	default:
		return Body{}, false
	}
}

// flow is the part of the Controller the resolver drives.
type flow interface {
	Phase() Phase
	Level() int
	LevelCount() int
	hazardCooldown() time.Duration
	levelCleared()
	allLevelsCleared()
	lifeExhausted()
	countPickup()
	countHazard()
}

// Resolver turns contacts into gameplay effects, one per debounce window.
type Resolver struct {
	flow     flow
	scene    Scene
	haptics  Haptics
	fx       *effects
	health   *HealthTracker
	tutorial *TutorialSequencer
	sched    *Scheduler
	debounce *Debouncer
	gates    map[string]bool
	logger   *log.Logger
}

// Resolve applies the effect of one contact and returns what it was.
// It returns EncounterNone when the contact produced no effect.
func (r *Resolver) Resolve(c Contact) EncounterKind {
	if r.flow.Phase() != PhasePlaying {
		r.logger.Debug("contact ignored", "phase", r.flow.Phase())
		return EncounterNone
	}
	other, ok := c.Other()
	if !ok || !other.Active() {
		return EncounterNone
	}
	kind := Classify(other.Category)
	if kind == EncounterNone {
		return EncounterNone
	}
	if !r.debounce.Ready() {
		return EncounterNone
	}
	if !r.apply(kind, other, c.Point) {
		return EncounterNone
	}
	r.debounce.Arm()
	r.logger.Debug("encounter", "kind", kind, "node", other.Node, "life", r.health.Life())
	return kind
}

func (r *Resolver) apply(kind EncounterKind, other Body, at core.Vec3) bool {
	switch kind {
	case EncounterPickup:
		r.fx.spawn(config.EffectPickupBurst, at)
		r.scene.RemoveNode(other.Node)
		r.health.ApplyPickup()
		r.flow.countPickup()
		r.fx.play(config.CuePowerUp)

	case EncounterHazard:
		node := other.Node
		r.scene.SetOpacity(node, FadedOpacity)
		r.sched.After(r.flow.hazardCooldown(), func() {
			r.scene.SetOpacity(node, FullOpacity)
		})
		r.fx.spawn(config.EffectHazardAura, at)
		r.haptics.Vibrate()
		r.scene.PulsePlayer()
		exhausted := r.health.ApplyHazard()
		r.flow.countHazard()
		r.fx.play(config.CuePowerDown)
		if exhausted {
			r.flow.lifeExhausted()
		}

	case EncounterGoal:
		r.fx.play(config.CueLevelUp)
		r.scene.RemoveNode(other.Node)
		level := r.flow.Level()
		switch {
		case level == 1 && r.tutorial.Step() == TutorialAwaitingGoal:
			r.tutorial.Advance()
		case level < r.flow.LevelCount():
			r.flow.levelCleared()
		default:
			r.flow.allLevelsCleared()
		}

	case EncounterTutorialGate:
		if r.flow.Level() != 1 || r.gates[other.Node] {
			return false
		}
		r.gates[other.Node] = true
		r.scene.RemoveNode(other.Node)
		// a gate left behind after the prompts only opens
		if r.tutorial.Step() <= TutorialSecondPrompt {
			r.tutorial.Advance()
		}

	case EncounterWall:
		r.fx.play(config.CueWallCrash)

	default:
		return false
	}
	return true
}

// resetLevel forgets per-level state after a level load.
func (r *Resolver) resetLevel() {
	r.gates = make(map[string]bool)
	r.debounce.Reset()
	r.sched.Clear()
}

// effects plays cues and spawns particles, logging each failing name once.
type effects struct {
	audio  Audio
	scene  Scene
	logger *log.Logger
	failed map[string]bool
}

func (e *effects) play(cue string) {
	if err := e.audio.Play(cue); err != nil {
		e.warnOnce("cue:"+cue, "sound cue skipped", "cue", cue, "err", err)
	}
}

func (e *effects) spawn(name string, at core.Vec3) {
	if err := e.scene.SpawnEffect(name, at); err != nil {
		e.warnOnce("effect:"+name, "effect skipped", "effect", name, "err", err)
	}
}

func (e *effects) warnOnce(key string, msg string, kv ...any) {
	if e.failed[key] {
		return
	}
	e.failed[key] = true
	e.logger.Warn(msg, kv...)
}
