package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultMatch3Config().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	cfg, err := parseMatch3(defaultMatch3YAML)
	if err != nil {
		t.Fatalf("parse embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("embedded yaml = %+v\nexpected %+v", cfg, DefaultMatch3Config())
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match3.yaml")
	data := []byte("board:\n  width: 10\n  height: 9\n  types: 6\ngameplay:\n  moves: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 9 || cfg.Gameplay.Moves != 12 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Palette) != 7 || cfg.Gameplay.ComboTime != 2.0 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch3(broken); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  types: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch3(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadMatch3(invalid) error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Match3Config)
	}{
		{"board too narrow", func(c *Match3Config) { c.Board.Width = 1 }},
		{"board too tall", func(c *Match3Config) { c.Board.Height = 99 }},
		{"two types", func(c *Match3Config) { c.Board.Types = 2 }},
		{"more types than palette", func(c *Match3Config) { c.Board.Types = 8 }},
		{"duplicate name", func(c *Match3Config) { c.Palette[1].Name = "ruby" }},
		{"empty name", func(c *Match3Config) { c.Palette[0].Name = " " }},
		{"long symbol", func(c *Match3Config) { c.Palette[2].Symbol = "ab" }},
		{"unknown color", func(c *Match3Config) { c.Palette[3].Color = "chartreuse" }},
		{"no moves", func(c *Match3Config) { c.Gameplay.Moves = 0 }},
		{"zero combo time", func(c *Match3Config) { c.Gameplay.ComboTime = 0 }},
		{"zero swap duration", func(c *Match3Config) { c.Animation.SwapDuration = 0 }},
		{"audio without rate", func(c *Match3Config) {
			c.Audio.Enabled = true
			c.Audio.SampleRate = 0
		}},
		{"unknown progression", func(c *Match3Config) { c.Difficulty.Progression.Type = "level" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateSkipsDisabledSections(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Animation.Enabled = false
	cfg.Animation.SwapDuration = 0
	cfg.Audio.SampleRate = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, disabled sections should not be checked", err)
	}
}

func TestActivePalette(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Board.Types = 3

	if got := len(cfg.ActivePalette()); got != 3 {
		t.Fatalf("len(ActivePalette()) = %d, expected 3", got)
	}
	symbols := cfg.Symbols()
	if symbols[0] != '◆' || symbols[2] != '▲' {
		t.Errorf("Symbols() = %q", symbols)
	}
	if len(cfg.Colors()) != 3 {
		t.Errorf("len(Colors()) = %d, expected 3", len(cfg.Colors()))
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		types, moves int
		enabled      bool
		initialLevel float64
	}{
		{DifficultyEasy, 5, 40, true, 0.0},
		{DifficultyNormal, 6, 30, true, 0.3},
		{DifficultyHard, 7, 20, true, 0.7},
		{DifficultyFixed, 6, 30, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, tc.preset)

			if cfg.Board.Types != tc.types || cfg.Gameplay.Moves != tc.moves {
				t.Errorf("types=%d moves=%d, expected %d and %d", cfg.Board.Types, cfg.Gameplay.Moves, tc.types, tc.moves)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("difficulty enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestApplyPresetClampsToPalette(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Palette = cfg.Palette[:5]
	ApplyMatch3Preset(&cfg, DifficultyHard)

	if cfg.Board.Types != 5 {
		t.Errorf("Types = %d, expected clamp to 5", cfg.Board.Types)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "Normal", "HARD", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q): %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyComboWindow(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{ComboTimeReduction: 1.0},
	}

	tests := []struct {
		name     string
		score    int
		expected float64
	}{
		{"start", 0, 2.0},
		{"halfway", 50, 1.5},
		{"max", 100, 1.0},
		{"past max", 400, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(cfg)
			if got := d.ComboWindow(2.0, tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("ComboWindow() = %v, expected %v", got, tc.expected)
			}
		})
	}

	t.Run("floor", func(t *testing.T) {
		harsh := cfg
		harsh.Scaling.ComboTimeReduction = 5
		if got := NewDifficultyManager(harsh).ComboWindow(2.0, 100, 0); got != minComboWindow {
			t.Errorf("ComboWindow() = %v, expected floor %v", got, minComboWindow)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		d := NewDifficultyManager(cfg)
		d.SetEnabled(false)
		d.SetInitialLevel(0.5)
		if got := d.ComboWindow(2.0, 100, 0); math.Abs(got-1.5) > 1e-9 {
			t.Errorf("ComboWindow() = %v, expected 1.5 from the initial level", got)
		}
	})

	t.Run("time progression", func(t *testing.T) {
		timed := cfg
		timed.Progression.Type = "time"
		d := NewDifficultyManager(timed)
		if got := d.ComboWindow(2.0, 0, 50); math.Abs(got-1.5) > 1e-9 {
			t.Errorf("ComboWindow() = %v, expected 1.5 halfway through", got)
		}
	})
}
