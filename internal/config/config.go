// Package config provides YAML-based settings loading and difficulty
// presets for the flick arena.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/flick-arena/internal/sim"
)

// Settings contains everything a player can tune without rebuilding.
type Settings struct {
	Tuning     sim.Tuning       `yaml:"tuning"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InputConfig defines how mouse drags become impulses.
type InputConfig struct {
	ImpulseScale float64 `yaml:"impulse_scale"` // impulse per world unit dragged
	MinDrag      float64 `yaml:"min_drag"`      // shorter drags are ignored, in world units
}

// AudioConfig defines the event sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyConfig selects the preset applied to every level pack.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset keeps level data as authored.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Normalize clamps out-of-range values in place.
func (s *Settings) Normalize() {
	s.Audio.Volume = clampF(s.Audio.Volume, 0, 1)
	if s.Audio.SampleRate <= 0 {
		s.Audio.SampleRate = DefaultSettings().Audio.SampleRate
	}
	if s.Input.ImpulseScale <= 0 {
		s.Input.ImpulseScale = DefaultSettings().Input.ImpulseScale
	}
	if s.Input.MinDrag < 0 {
		s.Input.MinDrag = 0
	}
	if s.Tuning.MaxFrameDelta <= 0 {
		s.Tuning.MaxFrameDelta = sim.DefaultTuning().MaxFrameDelta
	}
	if p, err := ParsePreset(string(s.Difficulty.Preset)); err == nil {
		s.Difficulty.Preset = p
	} else {
		s.Difficulty.Preset = DifficultyNormal
	}
}
