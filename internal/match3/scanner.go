package match3

// Scanner looks for swaps that would produce a match.
type Scanner struct {
	grid *Grid
}

// NewScanner creates a scanner over g.
func NewScanner(g *Grid) *Scanner {
	return &Scanner{grid: g}
}

// Count returns the number of idle tokens that have at least one
// match-producing swap. Zero means the board is deadlocked.
func (s *Scanner) Count() int {
	count := 0
	s.grid.Each(func(_ Coord, t *Token) {
		if t == nil || !t.idle {
			return
		}
		for _, d := range Dirs {
			if s.CanMove(t, d) {
				count++
				return
			}
		}
	})
	return count
}

// Hint returns the first token position and direction whose swap produces a
// match, scanning bottom row first.
func (s *Scanner) Hint() (Coord, Dir, bool) {
	var (
		at    Coord
		dir   Dir
		found bool
	)
	s.grid.Each(func(c Coord, t *Token) {
		if found || t == nil || !t.idle {
			return
		}
		for _, d := range Dirs {
			if s.CanMove(t, d) {
				at, dir, found = c, d, true
				return
			}
		}
	})
	return at, dir, found
}

// CanMove reports whether swapping t one step in direction d lines it up
// with two same-typed idle tokens around its destination.
func (s *Scanner) CanMove(t *Token, d Dir) bool {
	step := d.Delta()
	dest := t.pos.Add(step)
	if other := s.grid.Get(dest); other == nil || !other.idle {
		return false
	}

	cw := clockwise(step)
	ccw := counterClockwise(step)
	return s.potential(t, t.pos.Add(step.Scale(2)), t.pos.Add(step.Scale(3))) ||
		s.potential(t, dest.Add(cw), dest.Add(cw.Scale(2))) ||
		s.potential(t, dest.Add(cw), dest.Add(ccw)) ||
		s.potential(t, dest.Add(ccw), dest.Add(ccw.Scale(2)))
}

func (s *Scanner) potential(t *Token, p1, p2 Coord) bool {
	return s.sameIdle(t, p1) && s.sameIdle(t, p2)
}

func (s *Scanner) sameIdle(t *Token, c Coord) bool {
	other := s.grid.Get(c)
	return other != nil && other.idle && other.typ == t.typ
}
