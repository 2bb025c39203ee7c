// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management for the maze runner.
package config

import "time"

// MazeConfig contains all configuration for the maze runner.
type MazeConfig struct {
	Rules      RulesConfig             `yaml:"rules"`
	Physics    PhysicsConfig           `yaml:"physics"`
	Camera     CameraConfig            `yaml:"camera"`
	Audio      AudioConfig             `yaml:"audio"`
	Effects    map[string]EffectConfig `yaml:"effects"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
}

// RulesConfig defines gameplay timing and level progression.
type RulesConfig struct {
	LevelCount     int           `yaml:"level_count"`
	Debounce       time.Duration `yaml:"debounce"`        // contact debounce window
	HazardCooldown time.Duration `yaml:"hazard_cooldown"` // how long a touched hazard stays faded
	FallThreshold  float64       `yaml:"fall_threshold"`  // player height that ends the run
}

// PhysicsConfig defines player movement in grid cells.
type PhysicsConfig struct {
	RollSpeed    float64 `yaml:"roll_speed"` // cells per second
	Gravity      float64 `yaml:"gravity"`
	PlayerRadius float64 `yaml:"player_radius"`
}

// CameraConfig defines the orbit and follow camera behavior.
type CameraConfig struct {
	OrbitStep      float64 `yaml:"orbit_step"` // radians per tick while waiting to start
	ViewportWidth  int     `yaml:"viewport_width"`
	ViewportHeight int     `yaml:"viewport_height"`
}

// AudioConfig maps cue names to sound files.
type AudioConfig struct {
	Enabled bool              `yaml:"enabled"`
	Bell    bool              `yaml:"bell"` // ring the terminal bell on every cue
	Dir     string            `yaml:"dir"`
	Music   string            `yaml:"music"`
	Cues    map[string]string `yaml:"cues"`
}

// EffectConfig describes a short-lived particle burst.
type EffectConfig struct {
	Glyphs    string        `yaml:"glyphs"`
	Particles int           `yaml:"particles"`
	Spread    float64       `yaml:"spread"`
	Lifetime  time.Duration `yaml:"lifetime"`
}

// DifficultyConfig defines how the game gets harder across levels.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to roll speed at max difficulty
	CooldownReduction float64 `yaml:"cooldown_reduction"` // fraction of hazard cooldown removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
