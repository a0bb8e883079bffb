package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Types:  6,
		},
		Palette: []TokenStyle{
			{Name: "ruby", Symbol: "◆", Color: "bright_red"},
			{Name: "emerald", Symbol: "●", Color: "bright_green"},
			{Name: "topaz", Symbol: "▲", Color: "bright_yellow"},
			{Name: "sapphire", Symbol: "■", Color: "bright_blue"},
			{Name: "amethyst", Symbol: "★", Color: "bright_magenta"},
			{Name: "pearl", Symbol: "♥", Color: "bright_white"},
			{Name: "amber", Symbol: "♣", Color: "orange"},
		},
		Gameplay: GameplayConfig{
			Moves:     30,
			ComboTime: 2.0,
			Hints:     true,
		},
		Animation: AnimationConfig{
			Enabled:      true,
			SwapDuration: 0.15,
			FallDuration: 0.2,
			ExitDuration: 0.25,
			SpawnOffset:  2,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     -1.0,
			SampleRate: 48000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ComboTimeReduction: 1.0,
			},
		},
	}
}
