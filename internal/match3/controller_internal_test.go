package match3

import (
	"math/rand"
	"testing"
)

func TestCollapseLeavesNoGapBelowTokens(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for round := 0; round < 50; round++ {
		s, err := NewSession(Config{Width: 6, Height: 7, PaletteSize: 5, Seed: int64(round)})
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		if err := s.Start(); err != nil {
			t.Fatalf("Start: %v", err)
		}
		g := s.Grid()

		// Punch random holes, keeping the tokens out of the pool like a
		// resolution would until the exit motions finish.
		for i := 0; i < 12; i++ {
			c := C(rng.Intn(g.Width()), rng.Intn(g.Height()))
			if !g.IsEmpty(c) {
				_, _ = g.Remove(c)
			}
		}
		before := columnCounts(g)

		ctrl := s.Controller()
		ctrl.pending.reset()
		ctrl.collapse()

		after := columnCounts(g)
		for x := range before {
			if before[x] != after[x] {
				t.Errorf("round %d column %d: %d tokens before collapse, %d after", round, x, before[x], after[x])
			}
		}
		for x := 0; x < g.Width(); x++ {
			for y := 0; y < g.Height(); y++ {
				if g.IsEmpty(C(x, y)) {
					continue
				}
				if y > 0 && g.IsEmpty(C(x, y-1)) {
					t.Errorf("round %d: gap below %v", round, C(x, y))
				}
				if got := g.Get(C(x, y)).Pos(); got != C(x, y) {
					t.Errorf("round %d: token at %v records %v", round, C(x, y), got)
				}
			}
		}
		if ctrl.State() != StateCollapsing {
			t.Errorf("State() = %v, expected collapsing", ctrl.State())
		}
	}
}

func TestCollapseSkipsTokensInTransit(t *testing.T) {
	s, _ := NewSession(Config{Width: 1, Height: 4, PaletteSize: 3})
	if err := s.Load([][]TokenType{{2}, {1}, {e}, {e}}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	g := s.Grid()
	moving := g.Get(C(0, 2))
	moving.idle = false

	s.Controller().collapse()

	if g.Get(C(0, 0)) == nil || g.Get(C(0, 0)).Type() != 2 {
		t.Errorf("bottom cell should take the idle token from the top, got %v", g.Get(C(0, 0)))
	}
	if g.Get(C(0, 2)) != moving {
		t.Error("token in transit must stay where it is")
	}
}

func TestReclaimReturnsExitedTokens(t *testing.T) {
	s, _ := NewSession(Config{Width: 3, Height: 1, PaletteSize: 3, PoolCapacity: 3})
	if err := s.Load([][]TokenType{{0, 0, 0}}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctrl := s.Controller()
	ctrl.chain = 1
	ctrl.resolve(ctrl.finder.FindAll())

	if s.Grid().Count() != 0 {
		t.Fatalf("resolved tokens still on the grid: %d", s.Grid().Count())
	}
	if s.Pool().Available() != 0 {
		t.Fatalf("Available() = %d before reclaim, expected 0", s.Pool().Available())
	}
	ctrl.reclaim()
	if s.Pool().Available() != 3 {
		t.Errorf("Available() = %d after reclaim, expected 3", s.Pool().Available())
	}
	if len(ctrl.exiting) != 0 {
		t.Errorf("%d exits still tracked", len(ctrl.exiting))
	}
}

func columnCounts(g *Grid) []int {
	counts := make([]int, g.Width())
	g.Each(func(c Coord, tok *Token) {
		if tok != nil {
			counts[c.X]++
		}
	})
	return counts
}
