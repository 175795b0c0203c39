package config

import (
	"math"

	"github.com/vovakirdan/flick-arena/internal/sim"
)

// Scaling is how a preset bends authored level data.
type Scaling struct {
	Density  float64 // multiplies bullet density, so enemies fire more often
	Cooldown float64 // multiplies the flick cooldown
}

// ScalingForPreset returns the multipliers for a difficulty preset.
func ScalingForPreset(preset DifficultyPreset) Scaling {
	switch preset {
	case DifficultyEasy:
		return Scaling{Density: 0.75, Cooldown: 0.8}
	case DifficultyHard:
		return Scaling{Density: 1.3, Cooldown: 1.25}
	default:
		return Scaling{Density: 1, Cooldown: 1}
	}
}

// ApplyPreset returns copies of levels with the preset applied.
// The input slice is not modified.
func ApplyPreset(levels []sim.Level, preset DifficultyPreset) []sim.Level {
	out := make([]sim.Level, len(levels))
	copy(out, levels)
	if IsFixedPreset(preset) {
		return out
	}

	sc := ScalingForPreset(preset)
	for i := range out {
		density := out[i].BulletDensity
		if density <= 0 {
			density = 1
		}
		out[i].BulletDensity = density * sc.Density
		out[i].FlickCooldown = math.Max(0, out[i].FlickCooldown*sc.Cooldown)
	}
	return out
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
