// Package config loads the YAML game configuration and applies
// difficulty presets.
package config

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Match3Config contains all configuration for the match-3 modes.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Palette    []TokenStyle     `yaml:"palette"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Animation  AnimationConfig  `yaml:"animation"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Types  int `yaml:"types"` // Palette entries in play, taken from the front
}

// TokenStyle is how one token type looks on screen.
type TokenStyle struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Color  string `yaml:"color"`
}

// GameplayConfig defines scoring and the move budget.
type GameplayConfig struct {
	Moves     int     `yaml:"moves"`      // Move budget in classic mode
	ComboTime float64 `yaml:"combo_time"` // Seconds before the combo resets
	Hints     bool    `yaml:"hints"`
}

// AnimationConfig defines token motion timing, in seconds.
type AnimationConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SwapDuration float64 `yaml:"swap_duration"`
	FallDuration float64 `yaml:"fall_duration"`
	ExitDuration float64 `yaml:"exit_duration"`
	SpawnOffset  int     `yaml:"spawn_offset"` // Rows above the board new tokens fall from
}

// AudioConfig defines sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Base-2 gain; 0 is unchanged, -1 is half
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyConfig defines how the combo window tightens as the score grows.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ComboTimeReduction float64 `yaml:"combo_time_reduction"` // Seconds cut from the combo window at max difficulty
}

// ActivePalette returns the styles of the token types in play.
func (c Match3Config) ActivePalette() []TokenStyle {
	n := core.Clamp(c.Board.Types, 0, len(c.Palette))
	return c.Palette[:n]
}

// Symbols returns the rune drawn for each active token type.
func (c Match3Config) Symbols() []rune {
	palette := c.ActivePalette()
	symbols := make([]rune, len(palette))
	for i, p := range palette {
		symbols[i], _ = utf8.DecodeRuneInString(p.Symbol)
	}
	return symbols
}

// Colors returns the color of each active token type.
// Unknown color names fall back to the default color.
func (c Match3Config) Colors() []core.Color {
	palette := c.ActivePalette()
	colors := make([]core.Color, len(palette))
	for i, p := range palette {
		colors[i], _ = core.ParseColor(p.Color)
	}
	return colors
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
