package match3_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// swapMatches swaps t with its neighbour in direction d, runs the finder on
// both tokens and swaps back. It reports whether t itself matched and
// whether either token did.
func swapMatches(s *match3.Session, t *match3.Token, d match3.Dir) (own, either bool) {
	g := s.Grid()
	from := t.Pos()
	to := from.Add(d.Delta())
	other := g.Get(to)
	if other == nil {
		return false, false
	}
	_ = g.Swap(from, to)
	own = s.Finder().Find(t) != nil
	either = own || s.Finder().Find(other) != nil
	_ = g.Swap(from, to)
	return own, either
}

func randomStableBoard(t *testing.T, rng *rand.Rand, w, h, palette int) *match3.Session {
	t.Helper()
	for {
		rows := make([][]match3.TokenType, h)
		for i := range rows {
			rows[i] = make([]match3.TokenType, w)
			for x := range rows[i] {
				rows[i][x] = match3.TokenType(rng.Intn(palette))
			}
		}
		s, _ := newLoadedSession(t, palette, rows)
		if len(s.Finder().FindAll()) == 0 {
			return s
		}
	}
}

func TestScannerAgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sizes := []struct{ w, h, palette int }{
		{3, 3, 3},
		{4, 4, 3},
		{5, 3, 3},
		{3, 5, 3},
		{6, 6, 4},
	}

	for _, size := range sizes {
		for round := 0; round < 200; round++ {
			s := randomStableBoard(t, rng, size.w, size.h, size.palette)
			scanner := s.Scanner()

			movable, swaps := 0, 0
			s.Grid().Each(func(c match3.Coord, tok *match3.Token) {
				canMove := false
				for _, d := range match3.Dirs {
					own, either := swapMatches(s, tok, d)
					if got := scanner.CanMove(tok, d); got != own {
						t.Errorf("%dx%d round %d: CanMove(%v, %v) = %v, brute force %v",
							size.w, size.h, round, c, d, got, own)
					}
					canMove = canMove || own
					if either {
						swaps++
					}
				}
				if canMove {
					movable++
				}
			})

			if got := scanner.Count(); got != movable {
				t.Errorf("%dx%d round %d: Count() = %d, brute force %d",
					size.w, size.h, round, got, movable)
			}
			if (scanner.Count() == 0) != (swaps == 0) {
				t.Errorf("%dx%d round %d: Count() = %d but %d swaps match",
					size.w, size.h, round, scanner.Count(), swaps)
			}
		}
	}
}

func TestScannerHint(t *testing.T) {
	s, _ := newLoadedSession(t, 4, fourInRow)

	at, dir, ok := s.Scanner().Hint()
	if !ok {
		t.Fatal("Hint() found nothing on a board with a move")
	}
	tok := s.Grid().Get(at)
	if !s.Scanner().CanMove(tok, dir) {
		t.Errorf("Hint() = %v %v, which CanMove rejects", at, dir)
	}
	if at != match3.C(3, 0) || dir != match3.DirLeft {
		t.Errorf("Hint() = %v %v, expected (3,0) Left", at, dir)
	}
}

func TestScannerIgnoresTokensInTransit(t *testing.T) {
	s, _ := newLoadedSession(t, 4, fourInRow)
	if n := s.Scanner().Count(); n != 2 {
		t.Fatalf("Count() = %d, expected 2", n)
	}

	// Both moves on this board need the 0 at (1,0).
	mot := match3.StartMotion(s.Grid().Get(match3.C(1, 0)))
	defer mot.Finish()
	if n := s.Scanner().Count(); n != 0 {
		t.Errorf("Count() = %d with (1,0) in transit, expected 0", n)
	}
	if at, dir, ok := s.Scanner().Hint(); ok {
		t.Errorf("Hint() = %v %v with (1,0) in transit", at, dir)
	}
}
