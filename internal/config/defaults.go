package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// Sound cue names used by the gameplay layer.
const (
	CueWallCrash = "WallCrash"
	CuePowerDown = "PowerDown"
	CueLevelUp   = "LevelUp"
	CuePowerUp   = "PowerUp"
	CueGameOver  = "GameOver"
)

// Effect names used by the gameplay layer.
const (
	EffectPickupBurst = "pickup-burst"
	EffectHazardAura  = "hazard-aura"
)

// DefaultMazeConfig returns the hard-coded maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Rules: RulesConfig{
			LevelCount:     4,
			Debounce:       200 * time.Millisecond,
			HazardCooldown: 5 * time.Second,
			FallThreshold:  -8.0,
		},
		Physics: PhysicsConfig{
			RollSpeed:    4.0,
			Gravity:      9.8,
			PlayerRadius: 0.4,
		},
		Camera: CameraConfig{
			OrbitStep:      0.002,
			ViewportWidth:  40,
			ViewportHeight: 16,
		},
		Audio: AudioConfig{
			Enabled: true,
			Cues: map[string]string{
				CueWallCrash: "WallCrash.wav",
				CuePowerDown: "PowerDown.wav",
				CueLevelUp:   "LevelUp.wav",
				CuePowerUp:   "PowerUp.wav",
				CueGameOver:  "GameOver.wav",
			},
		},
		Effects: map[string]EffectConfig{
			EffectPickupBurst: {Glyphs: "*+.", Particles: 6, Spread: 1.5, Lifetime: 600 * time.Millisecond},
			EffectHazardAura:  {Glyphs: "~", Particles: 4, Spread: 1.0, Lifetime: 400 * time.Millisecond},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				CooldownReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
