// Package world is the terminal scene of the maze runner: a top-down grid
// with a rolling player, placed objects, particles and two cameras. It
// implements maze.Scene and reports contacts for the gameplay rules.
package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world/levels"
	"github.com/vovakirdan/tui-maze/internal/world/levels/formats"
)

// Fixed node names.
const (
	NodePlayer       = "player"
	NodeFloor        = "floor"
	NodeOrbitCamera  = "orbit-camera"
	NodeFollowCamera = "follow-camera"
)

const pulseDuration = 600 * time.Millisecond

// Node is a placed object that the player can touch.
type Node struct {
	ID       string
	Category maze.Category
	At       formats.Point
	Opacity  float64
	Removed  bool
}

// Center returns the middle of the node's cell.
func (n *Node) Center() core.Vec3 {
	return core.V3(float64(n.At.X)+0.5, 0, float64(n.At.Z)+0.5)
}

type player struct {
	pos        core.Vec3
	vel        core.Vec3
	falling    bool
	pulseUntil time.Duration
}

type camera struct {
	mode   maze.CameraMode
	angle  float64
	anchor core.Vec3
}

// Options configures a World.
type Options struct {
	Physics    config.PhysicsConfig
	Effects    map[string]config.EffectConfig
	Difficulty *config.DifficultyManager
	Seed       int64
}

// World holds the loaded level and everything moving in it.
type World struct {
	opts   Options
	levels []levels.Level
	rng    *rand.Rand

	now      time.Duration
	levelNum int
	level    *levels.Level
	nodes    map[string]*Node
	byCell   map[formats.Point]*Node
	speed    float64

	player    player
	camera    camera
	particles []particle

	pending     []maze.Contact
	entityTouch map[string]int
	wallTouch   map[formats.Point]bool
}

// New creates a world over an ordered level list. Level numbers start at 1.
func New(lvls []levels.Level, opts Options) *World {
	if opts.Physics.PlayerRadius <= 0 || opts.Physics.PlayerRadius >= 0.5 {
		opts.Physics.PlayerRadius = 0.4
	}
	return &World{
		opts:        opts,
		levels:      lvls,
		rng:         rand.New(rand.NewSource(opts.Seed)),
		nodes:       make(map[string]*Node),
		byCell:      make(map[formats.Point]*Node),
		entityTouch: make(map[string]int),
		wallTouch:   make(map[formats.Point]bool),
	}
}

// LevelCount returns how many levels the world can load.
func (w *World) LevelCount() int {
	return len(w.levels)
}

// LoadLevel replaces the current level.
func (w *World) LoadLevel(n int) (maze.LevelRefs, error) {
	if n < 1 || n > len(w.levels) {
		return maze.LevelRefs{}, fmt.Errorf("world: no level %d (have %d)", n, len(w.levels))
	}
	lvl := &w.levels[n-1]

	w.levelNum = n
	w.level = lvl
	w.nodes = make(map[string]*Node)
	w.byCell = make(map[formats.Point]*Node)
	w.particles = nil
	w.speed = w.opts.Physics.RollSpeed
	if w.opts.Difficulty != nil {
		w.speed = w.opts.Difficulty.Speed(w.opts.Physics.RollSpeed, n)
	}

	refs := maze.LevelRefs{
		Player:       NodePlayer,
		Floor:        NodeFloor,
		OrbitCamera:  NodeOrbitCamera,
		FollowCamera: NodeFollowCamera,
	}
	counts := make(map[formats.EntityKind]int)
	for _, e := range lvl.Entities {
		counts[e.Kind]++
		node := &Node{
			ID:       fmt.Sprintf("%s-%d", e.Kind, counts[e.Kind]),
			Category: categoryOf(e.Kind),
			At:       e.At,
			Opacity:  maze.FullOpacity,
		}
		w.nodes[node.ID] = node
		w.byCell[e.At] = node

		switch e.Kind {
		case formats.EntityGoal:
			if refs.Goal == "" {
				refs.Goal = node.ID
			}
		case formats.EntityGate:
			refs.TutorialGates = append(refs.TutorialGates, node.ID)
		}
	}

	w.ResetPlayer()
	w.camera = camera{mode: maze.CameraOrbit, anchor: w.player.pos}
	return refs, nil
}

func categoryOf(k formats.EntityKind) maze.Category {
	switch k {
	case formats.EntityPickup:
		return maze.CategoryPickup
	case formats.EntityHazard:
		return maze.CategoryHazard
	case formats.EntityGoal:
		return maze.CategoryGoal
	case formats.EntityGate:
		return maze.CategoryTutorialGate
	}
	return maze.CategoryFloor
}

// Level returns the loaded level, or nil.
func (w *World) Level() *levels.Level {
	return w.level
}

// LevelNumber returns the loaded level number.
func (w *World) LevelNumber() int {
	return w.levelNum
}

// Node looks up a placed object.
func (w *World) Node(id string) (*Node, bool) {
	n, ok := w.nodes[id]
	return n, ok
}

// RemoveNode takes an object out of the level for good.
func (w *World) RemoveNode(id string) {
	if n, ok := w.nodes[id]; ok {
		n.Removed = true
		delete(w.entityTouch, id)
	}
}

// SetOpacity changes how solid an object is.
func (w *World) SetOpacity(id string, opacity float64) {
	if n, ok := w.nodes[id]; ok {
		n.Opacity = core.ClampF(opacity, 0, 1)
	}
}

// PlayerPosition returns the player's position; Y drops below 0 while falling.
func (w *World) PlayerPosition() core.Vec3 {
	return w.player.pos
}

// Falling reports whether the player left the floor.
func (w *World) Falling() bool {
	return w.player.falling
}

// ResetPlayer puts the player back on the start cell at rest.
func (w *World) ResetPlayer() {
	start := formats.Point{}
	if w.level != nil {
		start = w.level.Start
	}
	w.player = player{pos: core.V3(float64(start.X)+0.5, 0, float64(start.Z)+0.5)}
	w.pending = nil
	clear(w.entityTouch)
	clear(w.wallTouch)
}

// Roll sets the player moving in a direction.
func (w *World) Roll(dir core.Control) {
	if w.player.falling {
		return
	}
	var v core.Vec3
	switch dir {
	case core.ControlUp:
		v.Z = -w.speed
	case core.ControlDown:
		v.Z = w.speed
	case core.ControlLeft:
		v.X = -w.speed
	case core.ControlRight:
		v.X = w.speed
	default:
		return
	}
	w.player.vel = v
}

// StopPlayer halts horizontal movement.
func (w *World) StopPlayer() {
	w.player.vel.X = 0
	w.player.vel.Z = 0
}

// PulsePlayer makes the player briefly transparent.
func (w *World) PulsePlayer() {
	w.player.pulseUntil = w.now + pulseDuration
}

// PlayerOpacity returns the player's current opacity.
func (w *World) PlayerOpacity() float64 {
	if w.now < w.player.pulseUntil {
		return 0.3
	}
	return maze.FullOpacity
}

// UseCamera switches between the orbit and follow cameras.
func (w *World) UseCamera(mode maze.CameraMode) {
	w.camera.mode = mode
}

// CameraMode returns the active camera.
func (w *World) CameraMode() maze.CameraMode {
	return w.camera.mode
}

// RotateOrbit turns the idle camera.
func (w *World) RotateOrbit(radians float64) {
	w.camera.angle += radians
}

// OrbitAngle returns the idle camera heading in radians.
func (w *World) OrbitAngle() float64 {
	return w.camera.angle
}

// FollowPlayer re-anchors the follow camera.
func (w *World) FollowPlayer(pos core.Vec3) {
	w.camera.anchor = pos
}

// Contacts returns and clears the contacts collected since the last call.
func (w *World) Contacts() []maze.Contact {
	out := w.pending
	w.pending = nil
	return out
}
