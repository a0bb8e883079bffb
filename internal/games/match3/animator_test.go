package match3

import (
	"context"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

func testAnimation() config.AnimationConfig {
	return config.AnimationConfig{
		Enabled:      true,
		SwapDuration: 0.2,
		FallDuration: 0.2,
		ExitDuration: 0.2,
		SpawnOffset:  2,
	}
}

func newToken(t *testing.T) *match3.Token {
	t.Helper()
	pool, err := match3.NewPool(3, 1, nil, nil)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	return pool.Get()
}

func TestAnimatorMoveFinishesAfterDuration(t *testing.T) {
	a := NewAnimator(testAnimation(), 4, 4)
	tok := newToken(t)

	m := a.Move(tok, match3.C(1, 0))
	if tok.Idle() || m.Settled() {
		t.Fatal("moving token should be in transit")
	}

	a.Update(0.15)
	x, _, _ := a.Position(tok)
	if m.Settled() {
		t.Fatal("motion finished before its duration")
	}
	if x <= 0 || x >= 1 {
		t.Errorf("x = %v halfway through, expected between 0 and 1", x)
	}

	a.Update(0.15)
	if !m.Settled() || !tok.Idle() {
		t.Fatal("motion should be finished")
	}
	x, y, ok := a.Position(tok)
	if !ok || x != 1 || y != 0 {
		t.Errorf("Position() = (%v, %v, %v), expected (1, 0, true)", x, y, ok)
	}
	if a.Busy() {
		t.Error("animator should be idle")
	}
}

func TestAnimatorSpawnStartsAboveBoard(t *testing.T) {
	a := NewAnimator(testAnimation(), 4, 4)
	tok := newToken(t)

	a.Spawn(tok, match3.C(2, 1))
	x, y, _ := a.Position(tok)
	if x != 2 || y != 7 {
		t.Errorf("spawn starts at (%v, %v), expected (2, 7)", x, y)
	}
}

func TestAnimatorExit(t *testing.T) {
	a := NewAnimator(testAnimation(), 4, 4)
	tok := newToken(t)

	m := a.Exit(tok)
	if got := a.Exiting(); len(got) != 1 || got[0] != tok {
		t.Errorf("Exiting() = %v, expected the exiting token", got)
	}

	a.Update(1)
	if !m.Settled() {
		t.Fatal("exit should be finished")
	}
	if _, _, ok := a.Position(tok); ok {
		t.Error("exited token should no longer have a position")
	}
	if len(a.Exiting()) != 0 {
		t.Error("Exiting() should be empty")
	}
}

func TestAnimatorZeroDurationIsInstant(t *testing.T) {
	cfg := testAnimation()
	cfg.SwapDuration = 0
	a := NewAnimator(cfg, 4, 4)
	tok := newToken(t)

	if m := a.Move(tok, match3.C(0, 1)); !m.Settled() {
		t.Error("zero duration move should finish at once")
	}
}

func TestAnimatorInstantMoveReplacesFlight(t *testing.T) {
	cfg := testAnimation()
	cfg.SwapDuration = 0
	cfg.FallDuration = 1
	a := NewAnimator(cfg, 4, 4)
	tok := newToken(t)

	spawn := a.Spawn(tok, match3.C(0, 0))
	a.Update(0.1)

	move := a.Move(tok, match3.C(1, 0))
	if !spawn.Settled() || !move.Settled() {
		t.Fatalf("spawn settled=%v, move settled=%v, expected both", spawn.Settled(), move.Settled())
	}

	a.Update(0.1)
	x, y, ok := a.Position(tok)
	if !ok || x != 1 || y != 0 {
		t.Errorf("Position() = (%v, %v, %v), expected (1, 0, true)", x, y, ok)
	}
	if a.Busy() {
		t.Error("animator should be idle")
	}
}

func TestAnimatorResetFinishesMotions(t *testing.T) {
	a := NewAnimator(testAnimation(), 4, 4)
	tok := newToken(t)

	m := a.Move(tok, match3.C(1, 0))
	a.Reset()
	if !m.Settled() || !tok.Idle() {
		t.Error("Reset should finish running motions")
	}
	if a.Busy() {
		t.Error("animator should be idle after Reset")
	}
}

// The animator only changes timing, so a session driven by it ends up with
// the same board as one using the instant mover.
func TestAnimatorMatchesInstantMover(t *testing.T) {
	newSession := func(mover match3.Mover) *match3.Session {
		s, err := match3.NewSession(match3.Config{
			Width: 6, Height: 6, PaletteSize: 5, Seed: 99, Mover: mover,
		})
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		if err := s.Start(); err != nil {
			t.Fatalf("Start: %v", err)
		}
		return s
	}

	instant := newSession(nil)
	anim := NewAnimator(testAnimation(), 6, 6)
	animated := newSession(anim)

	settleAnimated := func() {
		ctrl := animated.Controller()
		for i := 0; i < 10000 && ctrl.Busy(); i++ {
			anim.Update(0.05)
			ctrl.Step()
		}
		if ctrl.Busy() {
			t.Fatal("animated session did not settle")
		}
	}
	settleInstant := func() {
		if err := instant.Controller().Settle(context.Background()); err != nil {
			t.Fatalf("Settle: %v", err)
		}
	}

	settleInstant()
	settleAnimated()

	for move := 0; move < 15; move++ {
		if !reflect.DeepEqual(instant.Grid().Types(), animated.Grid().Types()) {
			t.Fatalf("boards differ after %d moves", move)
		}
		at, dir, ok := instant.Scanner().Hint()
		if !ok {
			break
		}
		to := at.Add(dir.Delta())
		if err := instant.Controller().TrySwap(at, to); err != nil {
			t.Fatalf("instant TrySwap: %v", err)
		}
		if err := animated.Controller().TrySwap(at, to); err != nil {
			t.Fatalf("animated TrySwap: %v", err)
		}
		settleInstant()
		settleAnimated()
	}

	if !reflect.DeepEqual(instant.Grid().Types(), animated.Grid().Types()) {
		t.Error("boards differ after the last move")
	}
	if instant.Pool().Available() != animated.Pool().Available() {
		t.Errorf("pool sizes differ: %d vs %d", instant.Pool().Available(), animated.Pool().Available())
	}
}
