package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	minBoardSide = 2
	maxBoardSide = 32
	minTypes     = 3
)

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is validated.
func LoadMatch3(customPath string) (Match3Config, error) {
	cfg, err := loadMatch3(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadMatch3(customPath string) (Match3Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMatch3Config(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMatch3(data)
		if err != nil {
			return DefaultMatch3Config(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMatch3(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "match3.yaml")); err == nil {
		if cfg, err := parseMatch3(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMatch3(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseMatch3(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultMatch3Config(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// Validate checks the configuration and reports every problem found.
func (c Match3Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format+": %w", append(args, ErrInvalid)...))
	}

	if c.Board.Width < minBoardSide || c.Board.Width > maxBoardSide {
		bad("board width %d outside [%d, %d]", c.Board.Width, minBoardSide, maxBoardSide)
	}
	if c.Board.Height < minBoardSide || c.Board.Height > maxBoardSide {
		bad("board height %d outside [%d, %d]", c.Board.Height, minBoardSide, maxBoardSide)
	}
	if c.Board.Types < minTypes || c.Board.Types > len(c.Palette) {
		bad("board types %d outside [%d, %d]", c.Board.Types, minTypes, len(c.Palette))
	}

	names := make(map[string]bool, len(c.Palette))
	for i, p := range c.Palette {
		name := strings.TrimSpace(p.Name)
		switch {
		case name == "":
			bad("palette entry %d has no name", i)
		case names[name]:
			bad("palette name %q used twice", name)
		}
		names[name] = true
		if utf8.RuneCountInString(p.Symbol) != 1 {
			bad("palette %q symbol %q must be a single character", name, p.Symbol)
		}
		if _, ok := core.ParseColor(p.Color); !ok {
			bad("palette %q has unknown color %q", name, p.Color)
		}
	}

	if c.Gameplay.Moves < 1 {
		bad("gameplay moves %d must be positive", c.Gameplay.Moves)
	}
	if c.Gameplay.ComboTime <= 0 {
		bad("gameplay combo_time %.2f must be positive", c.Gameplay.ComboTime)
	}

	if c.Animation.Enabled {
		for name, d := range map[string]float64{
			"swap_duration": c.Animation.SwapDuration,
			"fall_duration": c.Animation.FallDuration,
			"exit_duration": c.Animation.ExitDuration,
		} {
			if d <= 0 {
				bad("animation %s %.2f must be positive", name, d)
			}
		}
		if c.Animation.SpawnOffset < 0 {
			bad("animation spawn_offset %d must not be negative", c.Animation.SpawnOffset)
		}
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		bad("audio sample_rate %d must be positive", c.Audio.SampleRate)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		bad("difficulty progression type %q", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}

// ParsePreset converts a flag value to a difficulty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// Fewer token types make matches more frequent, so easy uses fewer.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Board.Types = 5
		cfg.Gameplay.Moves = 40
	case DifficultyNormal:
		cfg.Board.Types = 6
		cfg.Gameplay.Moves = 30
	case DifficultyHard:
		cfg.Board.Types = 7
		cfg.Gameplay.Moves = 20
	}
	cfg.Board.Types = core.Clamp(cfg.Board.Types, 0, len(cfg.Palette))
}
