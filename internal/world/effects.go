package world

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// ErrUnknownEffect is returned when an effect name has no configuration.
var ErrUnknownEffect = errors.New("world: unknown effect")

type particle struct {
	pos   core.Vec3
	vel   core.Vec3
	glyph rune
	color core.Color
	ttl   time.Duration
}

// SpawnEffect starts a particle burst at a point.
func (w *World) SpawnEffect(name string, at core.Vec3) error {
	cfg, ok := w.opts.Effects[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}
	glyphs := []rune(cfg.Glyphs)
	if len(glyphs) == 0 {
		glyphs = []rune{'*'}
	}

	color := effectColor(name)
	for i := range cfg.Particles {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := cfg.Spread * (0.5 + w.rng.Float64()/2)
		w.particles = append(w.particles, particle{
			pos:   at,
			vel:   core.V3(math.Cos(angle)*speed, 0, math.Sin(angle)*speed),
			glyph: glyphs[i%len(glyphs)],
			color: color,
			ttl:   cfg.Lifetime,
		})
	}
	return nil
}

func effectColor(name string) core.Color {
	switch name {
	case config.EffectPickupBurst:
		return core.ColorBrightYellow
	case config.EffectHazardAura:
		return core.ColorHazard
	default:
		return core.ColorWhite
	}
}

// stepParticles moves live particles and drops expired ones.
func (w *World) stepParticles(dt time.Duration) {
	live := w.particles[:0]
	for _, p := range w.particles {
		p.ttl -= dt
		if p.ttl <= 0 {
			continue
		}
		p.pos = p.pos.Add(p.vel.Scale(dt.Seconds()))
		live = append(live, p)
	}
	w.particles = live
}

// ParticleCount returns the number of live particles.
func (w *World) ParticleCount() int {
	return len(w.particles)
}
