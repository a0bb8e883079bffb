package match3

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := SimConfig{Game: config.DefaultMatch3Config(), Seed: 2024, Moves: 25, MoveSeconds: 1}

	a, err := Simulate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	b, err := Simulate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
}

func TestSimulatePlaysGreedyMoves(t *testing.T) {
	cfg := SimConfig{Game: config.DefaultMatch3Config(), Seed: 7, Moves: 20, MoveSeconds: 1}

	rep, err := Simulate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if rep.Moves != 20 {
		t.Errorf("Moves = %d, expected 20", rep.Moves)
	}
	if rep.Rejected != 0 {
		t.Errorf("Rejected = %d, hinted swaps always match", rep.Rejected)
	}
	if rep.Resolutions < rep.Moves {
		t.Errorf("Resolutions = %d, expected at least one per move", rep.Resolutions)
	}
	// Every swap resolves at least three tokens.
	if rep.Score < 9*rep.Moves {
		t.Errorf("Score = %d, expected at least %d", rep.Score, 9*rep.Moves)
	}
	if rep.MaxChain < 1 {
		t.Errorf("MaxChain = %d", rep.MaxChain)
	}

	board := cfg.Game.Board
	if len(rep.Board) != board.Height || len(rep.Board[0]) != board.Width {
		t.Errorf("board is %dx%d, expected %dx%d", len(rep.Board[0]), len(rep.Board), board.Width, board.Height)
	}
}

func TestSimulateStuckBoard(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Board = config.BoardConfig{Width: 2, Height: 2, Types: 3}

	rep, err := Simulate(context.Background(), SimConfig{Game: cfg, Seed: 1, Moves: 3})
	if !errors.Is(err, ErrStuck) {
		t.Fatalf("Simulate() error = %v, expected ErrStuck", err)
	}
	if rep.Moves != 0 {
		t.Errorf("Moves = %d, a 2x2 board has none", rep.Moves)
	}
	if rep.Deadlocks == 0 {
		t.Error("deadlocks should have been reported")
	}
}

func TestSimulateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, SimConfig{Game: config.DefaultMatch3Config(), Seed: 1, Moves: 5})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Simulate() error = %v, expected context.Canceled", err)
	}
}
