package match3

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

// ErrStuck is returned when a board deadlocks again after every refill.
var ErrStuck = errors.New("match3: board keeps deadlocking")

// maxDeadlockStreak bounds consecutive ResolveAll refills without a move.
const maxDeadlockStreak = 32

// SimConfig describes a headless run.
type SimConfig struct {
	Game  config.Match3Config
	Seed  int64
	Moves int // Swaps to play before stopping

	// MoveSeconds is the thinking time charged to the combo timer between
	// two swaps. Zero keeps the combo alive for the whole run.
	MoveSeconds float64

	Logger *log.Logger
}

// SimReport summarizes a headless run.
type SimReport struct {
	Moves         int
	Rejected      int
	Score         int
	Resolutions   int
	MaxChain      int
	MaxCombo      int
	Deadlocks     int
	FillExhausted int
	Board         [][]match3.TokenType
}

// Simulate plays cfg.Moves greedy swaps on a board driven by the instant
// mover. Each swap is the first move the scanner offers; deadlocks are
// answered with ResolveAll like in the interactive game.
func Simulate(ctx context.Context, cfg SimConfig) (SimReport, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	board := cfg.Game.Board

	session, err := match3.NewSession(match3.Config{
		Width:       board.Width,
		Height:      board.Height,
		PaletteSize: board.Types,
		Seed:        cfg.Seed,
		Logger:      logger,
	})
	if err != nil {
		return SimReport{}, err
	}

	scorer := NewScorer(cfg.Game.Gameplay.ComboTime, config.NewDifficultyManager(cfg.Game.Difficulty))
	var rep SimReport
	deadlocked := false
	session.Subscribe(match3.ObserverFunc(func(e match3.Event) {
		switch ev := e.(type) {
		case match3.ResolutionRequested:
			scorer.Resolve(ev.Match.Count(), ev.Chain)
			rep.Resolutions++
		case match3.SwapRejected:
			rep.Rejected++
		case match3.DeadlockReached:
			rep.Deadlocks++
			deadlocked = true
		case match3.FillExhausted:
			rep.FillExhausted++
		}
	}))

	if err := session.Start(); err != nil && !errors.Is(err, match3.ErrFillExhausted) {
		return rep, err
	}
	ctrl := session.Controller()
	if err := ctrl.Settle(ctx); err != nil {
		return rep, err
	}

	streak := 0
	for rep.Moves < cfg.Moves {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		at, dir, ok := session.Scanner().Hint()
		if deadlocked || !ok {
			deadlocked = false
			streak++
			if streak > maxDeadlockStreak {
				return rep, ErrStuck
			}
			if err := ctrl.ResolveAll(); err != nil {
				return rep, err
			}
			if err := ctrl.Settle(ctx); err != nil {
				return rep, err
			}
			continue
		}

		if err := ctrl.TrySwap(at, at.Add(dir.Delta())); err != nil {
			return rep, err
		}
		if err := ctrl.Settle(ctx); err != nil {
			return rep, err
		}
		rep.Moves++
		streak = 0
		scorer.Tick(cfg.MoveSeconds)
		logger.Debug("simulated move", "move", rep.Moves, "at", at, "dir", dir, "chain", ctrl.LastChain())
	}

	rep.Score = scorer.Score()
	rep.MaxChain = scorer.MaxChain()
	rep.MaxCombo = scorer.MaxCombo()
	rep.Board = session.Grid().Types()
	return rep, nil
}
