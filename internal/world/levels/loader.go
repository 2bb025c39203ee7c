// Package levels provides maze level loading from a directory or from the
// levels bundled with the binary.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/world/levels/formats"
)

//go:embed data/*.yaml
var bundled embed.FS

// Level represents a complete level definition.
type Level struct {
	formats.Level
	FilePath string
}

// Tile returns the ground at a cell. Cells outside the map are holes.
func (l *Level) Tile(x, z int) formats.Tile {
	if z < 0 || z >= l.Height || x < 0 || x >= l.Width {
		return formats.TileHole
	}
	return l.Tiles[z][x]
}

// Count returns how many entities of a kind the level places.
func (l *Level) Count(kind formats.EntityKind) int {
	n := 0
	for _, e := range l.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader reading a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Bundled returns a loader over the levels compiled into the binary.
func Bundled() *Loader {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return &Loader{fsys: sub, root: "bundled"}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by order, then ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading levels from %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return Level{Level: parsed, FilePath: p}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
