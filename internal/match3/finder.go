package match3

// Finder detects matches on a grid.
type Finder struct {
	grid *Grid
}

// NewFinder creates a finder over g.
func NewFinder(g *Grid) *Finder {
	return &Finder{grid: g}
}

// Find returns the match-tree headed by seed, or nil when seed does not
// take part in a run of at least three.
//
// The horizontal run through seed is collected first; if long enough, each of
// its members is probed vertically for branches, and accepted branches are
// probed horizontally again, so L, T, plus and larger clusters come out as a
// single match. The vertical run through seed follows the same way.
func (f *Finder) Find(seed *Token) *Match {
	return f.find(seed, nil)
}

// FindAll scans the whole board, bottom row first, and returns every match.
// Tokens claimed by an earlier match act as boundaries for later ones, so no
// token is listed twice across the result.
func (f *Finder) FindAll() []*Match {
	var matches []*Match
	claimed := make(map[*Token]bool)

	f.grid.Each(func(_ Coord, t *Token) {
		if t == nil || !t.idle || claimed[t] {
			return
		}
		m := f.find(t, claimed)
		if m == nil {
			return
		}
		for _, member := range m.members {
			claimed[member] = true
		}
		matches = append(matches, m)
	})

	return matches
}

func (f *Finder) find(seed *Token, claimed map[*Token]bool) *Match {
	if seed == nil || f.grid.Get(seed.pos) != seed {
		return nil
	}

	tree := newMatch(seed)

	horizontal := f.run(tree, seed, Horizontal, claimed)
	if horizontal.Count() > 1 {
		tree.merge(horizontal)
		f.branches(tree, horizontal, Vertical, claimed)
	}

	vertical := f.run(tree, seed, Vertical, claimed)
	if vertical.Count() > 1 {
		tree.merge(vertical)
		f.branches(tree, vertical, Horizontal, claimed)
	}

	if tree.Count() <= 1 {
		return nil
	}
	return tree
}

// branches probes every listed member of branch along axis and merges each
// run of three or more into tree, recursing on the perpendicular axis.
func (f *Finder) branches(tree, branch *Match, axis Orientation, claimed map[*Token]bool) {
	for _, t := range branch.members {
		next := f.run(tree, t, axis, claimed)
		if next.Count() > 1 {
			tree.merge(next)
			f.branches(tree, next, axis.perpendicular(), claimed)
		}
	}
}

// run collects the same-typed idle tokens on both sides of from along axis.
// from itself is not included.
func (f *Finder) run(tree *Match, from *Token, axis Orientation, claimed map[*Token]bool) *Match {
	m := newMatch(nil)
	m.orientation = axis

	back, fwd := axis.steps()
	f.walk(tree, m, from, back, claimed)
	f.walk(tree, m, from, fwd, claimed)
	return m
}

func (f *Finder) walk(tree, m *Match, from *Token, step Coord, claimed map[*Token]bool) {
	for pos := from.pos.Add(step); ; pos = pos.Add(step) {
		next := f.grid.Get(pos)
		if next == nil || !next.idle || next.typ != from.typ || claimed[next] {
			return
		}
		if tree.Contains(next) {
			m.addUnlisted()
		} else {
			m.add(next)
		}
	}
}

// WouldMatch reports whether t already lines up with two same-typed
// neighbours on either axis. Used while filling, so it ignores the idle flag
// and does not follow branches.
func (f *Finder) WouldMatch(t *Token) bool {
	for _, axis := range [2]Orientation{Horizontal, Vertical} {
		back, fwd := axis.steps()
		if f.countSame(t, back)+f.countSame(t, fwd) >= 2 {
			return true
		}
	}
	return false
}

func (f *Finder) countSame(t *Token, step Coord) int {
	count := 0
	for pos := t.pos.Add(step); ; pos = pos.Add(step) {
		next := f.grid.Get(pos)
		if next == nil || next.typ != t.typ {
			return count
		}
		count++
	}
}
