package formats

import (
	"strings"
	"testing"
)

func TestParseLayout(t *testing.T) {
	lvl, err := ParseLayout("#####\n#PoX#\n#C G\n####")
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	if lvl.Width != 5 || lvl.Height != 4 {
		t.Errorf("expected 5x4, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Start != (Point{X: 1, Z: 1}) {
		t.Errorf("Start = %+v", lvl.Start)
	}
	if lvl.Tiles[2][2] != TileHole {
		t.Error("space should be a hole")
	}
	// short rows are padded with holes
	if lvl.Tiles[2][4] != TileHole || lvl.Tiles[3][4] != TileHole {
		t.Error("padding should be holes")
	}
	if lvl.Tiles[1][2] != TileFloor {
		t.Error("objects stand on floor")
	}

	want := []Entity{
		{Kind: EntityPickup, At: Point{X: 2, Z: 1}},
		{Kind: EntityHazard, At: Point{X: 3, Z: 1}},
		{Kind: EntityGate, At: Point{X: 1, Z: 2}},
		{Kind: EntityGoal, At: Point{X: 3, Z: 2}},
	}
	if len(lvl.Entities) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(lvl.Entities))
	}
	for i := range want {
		if lvl.Entities[i] != want[i] {
			t.Errorf("entity %d = %+v, expected %+v", i, lvl.Entities[i], want[i])
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		errMsg string
	}{
		{"empty", "\n\n", "empty"},
		{"no start", "#..#", "exactly one start"},
		{"two starts", "#PP#", "exactly one start"},
		{"unknown tile", "#P?#", "unknown tile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.layout)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ParseLayout(%q) error = %v, expected %q", tt.layout, err, tt.errMsg)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: intro\norder: 3\nlayout: |\n  #PG#\nmetadata:\n  hint: go right\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "intro" || lvl.Name != "intro" || lvl.Order != 3 {
		t.Errorf("unexpected header: %+v", lvl)
	}
	if lvl.Metadata["hint"] != "go right" {
		t.Errorf("Metadata = %v", lvl.Metadata)
	}

	if _, err := ParseYAML([]byte("layout: |\n  #P#\n")); err == nil {
		t.Error("expected error for missing id")
	}
	if _, err := ParseYAML([]byte("id: [")); err == nil {
		t.Error("expected error for bad yaml")
	}
}

func TestEntityKindString(t *testing.T) {
	if EntityGate.String() != "gate" || EntityKind(99).String() != "unknown" {
		t.Error("unexpected entity names")
	}
}
