package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardCoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	def := DefaultMazeConfig()

	if cfg.Rules != def.Rules {
		t.Errorf("Rules = %+v, expected %+v", cfg.Rules, def.Rules)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("Physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Camera != def.Camera {
		t.Errorf("Camera = %+v, expected %+v", cfg.Camera, def.Camera)
	}
	for _, cue := range []string{CueWallCrash, CuePowerDown, CueLevelUp, CuePowerUp, CueGameOver} {
		if cfg.Audio.Cues[cue] == "" {
			t.Errorf("embedded config has no file for cue %s", cue)
		}
	}
	if cfg.Effects[EffectPickupBurst].Lifetime != 600*time.Millisecond {
		t.Errorf("pickup-burst lifetime = %v", cfg.Effects[EffectPickupBurst].Lifetime)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	data := "rules:\n  level_count: 6\n  debounce: 50ms\nphysics:\n  roll_speed: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rules.LevelCount != 6 {
		t.Errorf("LevelCount = %d, expected 6", cfg.Rules.LevelCount)
	}
	if cfg.Rules.Debounce != 50*time.Millisecond {
		t.Errorf("Debounce = %v, expected 50ms", cfg.Rules.Debounce)
	}
	if cfg.Physics.RollSpeed != 2.5 {
		t.Errorf("RollSpeed = %v, expected 2.5", cfg.Physics.RollSpeed)
	}
	// untouched sections keep their defaults
	if cfg.Rules.HazardCooldown != 5*time.Second {
		t.Errorf("HazardCooldown = %v, expected default 5s", cfg.Rules.HazardCooldown)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	zero := filepath.Join(dir, "zero.yaml")
	os.WriteFile(bad, []byte("rules: [unclosed"), 0o644)
	os.WriteFile(zero, []byte("rules:\n  level_count: 0\n"), 0o644)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"invalid yaml", bad, "failed to parse config"},
		{"no levels", zero, "level_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%s) error = %v, expected it to mention %q", tt.name, err, tt.want)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultMazeConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Physics.RollSpeed != 3.0 {
		t.Errorf("easy RollSpeed = %v, expected 3.0", cfg.Physics.RollSpeed)
	}
	if cfg.Rules.HazardCooldown != 7500*time.Millisecond {
		t.Errorf("easy HazardCooldown = %v, expected 7.5s", cfg.Rules.HazardCooldown)
	}

	cfg = DefaultMazeConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
}
