package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/audio"
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// newLogger builds the command logger writing to w at --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// tuiLogger logs to ~/.match3/match3.log so records never tear the
// alternate screen. The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	discard := func() {}
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), discard
	}
	dir := filepath.Join(home, ".match3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "match3.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), discard
	}
	logger, err := newLogger(f, "match3")
	if err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return log.New(io.Discard), discard
	}
	return logger, func() { f.Close() }
}

// loadGameConfig loads --config and applies a difficulty preset when one is given.
func loadGameConfig(preset string) (config.Match3Config, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset == "" {
		return cfg, nil
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplyMatch3Preset(&cfg, p)
	return cfg, cfg.Validate()
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// observable is implemented by modes that publish engine events.
type observable interface {
	Observe(o match3.Observer)
}

// attachAudio plays sound cues for the game's engine events when audio is
// enabled. The returned func releases the speaker.
func attachAudio(game registry.Game, cfg config.AudioConfig, logger *log.Logger) func() {
	if !cfg.Enabled {
		return func() {}
	}
	obs, ok := game.(observable)
	if !ok {
		return func() {}
	}
	player := audio.NewPlayer(cfg, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return func() {}
	}
	obs.Observe(player)
	return player.Close
}
