package config

import (
	"math"
	"time"
)

// DifficultyManager derives per-level parameters from the difficulty config.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "level"
}

// Level returns the difficulty (0.0 to 1.0) for a game level.
// Level 1 plays at the initial difficulty and MaxAt plays at 1.0.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	span := float64(d.cfg.Progression.MaxAt - 1)
	if span <= 0 {
		return 1.0
	}
	progress := clampF(float64(gameLevel-1)/span, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the roll speed for a game level.
func (d *DifficultyManager) Speed(baseSpeed float64, gameLevel int) float64 {
	return baseSpeed * (1.0 + d.Level(gameLevel)*d.cfg.Scaling.SpeedMultiplier)
}

// Cooldown returns how long a touched hazard stays faded on a game level.
func (d *DifficultyManager) Cooldown(base time.Duration, gameLevel int) time.Duration {
	reduction := clampF(d.Level(gameLevel)*d.cfg.Scaling.CooldownReduction, 0.0, 0.9)
	return time.Duration(float64(base) * (1.0 - reduction))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
