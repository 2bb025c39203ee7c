package world

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world/levels/formats"
)

// maxStep bounds one integration step so a slow frame cannot tunnel
// through a wall.
const maxStep = 100 * time.Millisecond

// Step advances the simulation by dt.
func (w *World) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	w.now += dt
	w.stepParticles(dt)
	if w.level == nil {
		return
	}

	for dt > 0 {
		step := min(dt, maxStep)
		w.integrate(step.Seconds())
		dt -= step
	}
}

func (w *World) integrate(secs float64) {
	p := &w.player
	if p.falling {
		p.vel.Y -= w.opts.Physics.Gravity * secs
		p.pos.Y += p.vel.Y * secs
		return
	}

	hits := make(map[formats.Point]bool)
	w.moveAxis(&p.pos.X, &p.vel.X, secs, hits)
	w.moveAxis(&p.pos.Z, &p.vel.Z, secs, hits)
	w.touchWalls(hits)
	w.touchEntities()

	x, z := p.pos.Cell()
	if w.level.Tile(x, z) == formats.TileHole {
		p.falling = true
		p.vel = core.Vec3{}
		clear(w.entityTouch)
		clear(w.wallTouch)
	}
}

// moveAxis moves along one axis and undoes the move if it would push the
// player's footprint into a wall.
func (w *World) moveAxis(coord, vel *float64, secs float64, hits map[formats.Point]bool) {
	if *vel == 0 {
		return
	}
	prev := *coord
	*coord += *vel * secs

	blocked := false
	for _, c := range w.footprint() {
		if w.level.Tile(c.X, c.Z) == formats.TileWall {
			hits[c] = true
			blocked = true
		}
	}
	if blocked {
		*coord = prev
		*vel = 0
	}
}

// footprint returns the cells under the four corners of the player's
// bounding square. Corners can share a cell.
func (w *World) footprint() [4]formats.Point {
	r := w.opts.Physics.PlayerRadius
	pos := w.player.pos
	var out [4]formats.Point
	i := 0
	for _, dx := range []float64{-r, r} {
		for _, dz := range []float64{-r, r} {
			out[i] = formats.Point{
				X: int(math.Floor(pos.X + dx)),
				Z: int(math.Floor(pos.Z + dz)),
			}
			i++
		}
	}
	return out
}

func (w *World) playerBody() maze.Body {
	return maze.Body{
		Node:     NodePlayer,
		Category: maze.CategoryPlayer,
		Opacity:  w.PlayerOpacity(),
		Position: w.player.pos,
	}
}

// touchWalls reports a contact for each wall cell bumped this step that
// was not already being bumped.
func (w *World) touchWalls(hits map[formats.Point]bool) {
	for c := range hits {
		if w.wallTouch[c] {
			continue
		}
		at := core.V3(float64(c.X)+0.5, 0, float64(c.Z)+0.5)
		w.pending = append(w.pending, maze.Contact{
			A:     w.playerBody(),
			B:     maze.Body{Node: wallID(c), Category: maze.CategoryWall, Opacity: maze.FullOpacity, Position: at},
			Point: at,
		})
	}
	w.wallTouch = hits
}

// touchEntities reports one contact per footprint corner that newly
// entered an object's cell, so entering diagonally or edge-on yields a
// burst of contacts for one touch.
func (w *World) touchEntities() {
	corners := make(map[string]int)
	for _, c := range w.footprint() {
		if n, ok := w.byCell[c]; ok && !n.Removed {
			corners[n.ID]++
		}
	}
	for id, count := range corners {
		n := w.nodes[id]
		for range count - w.entityTouch[id] {
			w.pending = append(w.pending, maze.Contact{
				A:     w.playerBody(),
				B:     maze.Body{Node: n.ID, Category: n.Category, Opacity: n.Opacity, Position: n.Center()},
				Point: n.Center(),
			})
		}
	}
	w.entityTouch = corners
}

func wallID(c formats.Point) string {
	return fmt.Sprintf("wall-%d-%d", c.X, c.Z)
}
