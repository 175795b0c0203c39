package config

import (
	_ "embed"

	"github.com/vovakirdan/flick-arena/internal/sim"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded settings used when no YAML is found.
func DefaultSettings() Settings {
	return Settings{
		Tuning: sim.DefaultTuning(),
		Input: InputConfig{
			ImpulseScale: 8,
			MinDrag:      4,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
