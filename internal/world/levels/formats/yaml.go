// Package formats provides level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tile is the ground type of one maze cell.
type Tile uint8

const (
	TileHole Tile = iota
	TileFloor
	TileWall
)

// EntityKind is an object placed on a floor cell.
type EntityKind uint8

const (
	EntityPickup EntityKind = iota
	EntityHazard
	EntityGoal
	EntityGate
)

func (k EntityKind) String() string {
	switch k {
	case EntityPickup:
		return "pickup"
	case EntityHazard:
		return "hazard"
	case EntityGoal:
		return "goal"
	case EntityGate:
		return "gate"
	default:
		return "unknown"
	}
}

// Point is a cell position: X is the column, Z the row.
type Point struct {
	X, Z int
}

// Entity is one placed object.
type Entity struct {
	Kind EntityKind
	At   Point
}

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Order    int               `yaml:"order"`
	Layout   string            `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Order    int
	Width    int
	Height   int
	Tiles    [][]Tile // [row][column]
	Start    Point
	Entities []Entity
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	level, err := ParseLayout(yl.Layout)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}
	level.ID = yl.ID
	level.Name = yl.Name
	level.Order = yl.Order
	level.Metadata = yl.Metadata
	if level.Name == "" {
		level.Name = yl.ID
	}
	return level, nil
}

// ParseLayout reads an ASCII maze.
//
//	#  wall        .  floor       (space) hole
//	P  start       G  goal        o  pickup
//	X  hazard      C  tutorial gate
//
// Rows shorter than the widest row are padded with holes.
func ParseLayout(layout string) (Level, error) {
	lines := strings.Split(strings.Trim(layout, "\n"), "\n")
	var lvl Level
	for _, line := range lines {
		lvl.Width = max(lvl.Width, len([]rune(strings.TrimRight(line, "\r"))))
	}
	lvl.Height = len(lines)
	if lvl.Width == 0 {
		return Level{}, fmt.Errorf("empty layout")
	}

	starts := 0
	lvl.Tiles = make([][]Tile, lvl.Height)
	for z, line := range lines {
		lvl.Tiles[z] = make([]Tile, lvl.Width)
		for x, r := range []rune(strings.TrimRight(line, "\r")) {
			at := Point{X: x, Z: z}
			tile := TileFloor
			switch r {
			case ' ':
				tile = TileHole
			case '#':
				tile = TileWall
			case '.':
			case 'P':
				lvl.Start = at
				starts++
			case 'G':
				lvl.Entities = append(lvl.Entities, Entity{Kind: EntityGoal, At: at})
			case 'o':
				lvl.Entities = append(lvl.Entities, Entity{Kind: EntityPickup, At: at})
			case 'X':
				lvl.Entities = append(lvl.Entities, Entity{Kind: EntityHazard, At: at})
			case 'C':
				lvl.Entities = append(lvl.Entities, Entity{Kind: EntityGate, At: at})
			default:
				return Level{}, fmt.Errorf("unknown tile %q at %d,%d", r, x, z)
			}
			lvl.Tiles[z][x] = tile
		}
	}
	if starts != 1 {
		return Level{}, fmt.Errorf("layout needs exactly one start, found %d", starts)
	}
	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
