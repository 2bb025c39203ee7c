package world

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world/levels/formats"
)

// Terminal cells are about twice as tall as wide, so one maze cell spans
// two columns.
const cellWidth = 2

// Visual characters for rendering
const (
	WallChar    = '█'
	FloorChar   = '·'
	PlayerChar  = '●'
	GoalChar    = '◆'
	PickupChar  = '♥'
	HazardChar  = '✖'
	FadedChar   = '×'
	GateChar    = '▒'
	FallingChar = '•'
)

var compass = []rune("↑↗→↘↓↙←↖")

// Render draws the level into area. The orbit camera centers the whole
// map and shows a compass; the follow camera centers on its anchor.
func (w *World) Render(s *core.Screen, area core.Rect) {
	if w.level == nil || area.W < cellWidth || area.H < 1 {
		return
	}
	cols := area.W / cellWidth
	viewX, viewZ := w.viewOrigin(cols, area.H)

	for row := 0; row < area.H; row++ {
		for col := 0; col < cols; col++ {
			cx, cz := viewX+col, viewZ+row
			sx, sy := area.X+col*cellWidth, area.Y+row
			w.drawCell(s, sx, sy, formats.Point{X: cx, Z: cz})
		}
	}

	for _, p := range w.particles {
		x, z := p.pos.Cell()
		if sx, sy, ok := toScreen(area, viewX, viewZ, cols, x, z); ok {
			s.SetColored(sx+1, sy, p.glyph, p.color)
		}
	}

	w.drawPlayer(s, area, viewX, viewZ, cols)

	if w.camera.mode == maze.CameraOrbit {
		s.SetColored(area.Right()-1, area.Y, CompassRune(w.camera.angle), core.ColorCyan)
	}
}

func (w *World) viewOrigin(cols, rows int) (int, int) {
	if w.camera.mode == maze.CameraFollow {
		ax, az := w.camera.anchor.Cell()
		return ax - cols/2, az - rows/2
	}
	return (w.level.Width - cols) / 2, (w.level.Height - rows) / 2
}

func toScreen(area core.Rect, viewX, viewZ, cols, x, z int) (int, int, bool) {
	col, row := x-viewX, z-viewZ
	if col < 0 || col >= cols || row < 0 || row >= area.H {
		return 0, 0, false
	}
	return area.X + col*cellWidth, area.Y + row, true
}

func (w *World) drawCell(s *core.Screen, sx, sy int, c formats.Point) {
	switch w.level.Tile(c.X, c.Z) {
	case formats.TileWall:
		s.SetColored(sx, sy, WallChar, core.ColorWall)
		s.SetColored(sx+1, sy, WallChar, core.ColorWall)
		return
	case formats.TileHole:
		s.Set(sx, sy, ' ')
		s.Set(sx+1, sy, ' ')
		return
	}

	s.Set(sx+1, sy, ' ')
	n, ok := w.byCell[c]
	if !ok || n.Removed {
		s.SetColored(sx, sy, FloorChar, core.ColorFloor)
		return
	}
	switch n.Category {
	case maze.CategoryGoal:
		s.SetColored(sx, sy, GoalChar, core.ColorGoal)
	case maze.CategoryPickup:
		s.SetColored(sx, sy, PickupChar, core.ColorPickup)
	case maze.CategoryHazard:
		if n.Opacity > maze.ActiveOpacity {
			s.SetColored(sx, sy, HazardChar, core.ColorHazard)
		} else {
			s.SetColored(sx, sy, FadedChar, core.ColorFaded)
		}
	case maze.CategoryTutorialGate:
		s.SetColored(sx, sy, GateChar, core.ColorGate)
		s.SetColored(sx+1, sy, GateChar, core.ColorGate)
	}
}

func (w *World) drawPlayer(s *core.Screen, area core.Rect, viewX, viewZ, cols int) {
	p := w.player
	if p.falling && p.pos.Y < -2 {
		return
	}
	x, z := p.pos.Cell()
	sx, sy, ok := toScreen(area, viewX, viewZ, cols, x, z)
	if !ok {
		return
	}
	glyph, color := PlayerChar, core.ColorPlayer
	if p.falling {
		glyph = FallingChar
	}
	if w.PlayerOpacity() < maze.FullOpacity {
		color = core.ColorGray
	}
	s.SetColored(sx, sy, glyph, color)
}

// CompassRune returns the arrow closest to a heading in radians.
func CompassRune(angle float64) rune {
	step := math.Pi / 4
	i := int(math.Round(angle/step)) % len(compass)
	if i < 0 {
		i += len(compass)
	}
	return compass[i]
}
