package match3

import "fmt"

// Grid is the fixed-size board of token cells.
// Cells are stored in row-major order starting at the bottom row:
// index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []*Token
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("match3: invalid grid size %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]*Token, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Get returns the token at c, or nil if the cell is empty or out of bounds.
func (g *Grid) Get(c Coord) *Token {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[g.index(c)]
}

// IsEmpty reports whether the cell holds no token.
// Out-of-bounds cells are reported as empty.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.Get(c) == nil
}

// Put places t into the empty cell c and records c as its position.
func (g *Grid) Put(t *Token, c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("match3: put %v: %w", c, ErrOutOfBounds)
	}
	if g.cells[g.index(c)] != nil {
		return fmt.Errorf("match3: put %v: %w", c, ErrCellOccupied)
	}
	if g.Get(t.pos) == t {
		return fmt.Errorf("match3: put %v at %v: %w", t, c, ErrTokenPlaced)
	}
	g.cells[g.index(c)] = t
	t.pos = c
	return nil
}

// Remove empties the cell and returns its former occupant.
func (g *Grid) Remove(c Coord) (*Token, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("match3: remove %v: %w", c, ErrOutOfBounds)
	}
	t := g.cells[g.index(c)]
	if t == nil {
		return nil, fmt.Errorf("match3: remove %v: %w", c, ErrCellEmpty)
	}
	g.cells[g.index(c)] = nil
	return t, nil
}

// Swap exchanges the occupants of a and b together with their recorded
// positions. Either cell may be empty.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("match3: swap %v <-> %v: %w", a, b, ErrOutOfBounds)
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
	if t := g.cells[ia]; t != nil {
		t.pos = a
	}
	if t := g.cells[ib]; t != nil {
		t.pos = b
	}
	return nil
}

// MoveItemTo relocates the occupant of from into the empty cell to.
func (g *Grid) MoveItemTo(from, to Coord) error {
	if !g.InBounds(from) || !g.InBounds(to) {
		return fmt.Errorf("match3: move %v -> %v: %w", from, to, ErrOutOfBounds)
	}
	t := g.cells[g.index(from)]
	if t == nil {
		return fmt.Errorf("match3: move %v -> %v: %w", from, to, ErrCellEmpty)
	}
	if g.cells[g.index(to)] != nil {
		return fmt.Errorf("match3: move %v -> %v: %w", from, to, ErrCellOccupied)
	}
	g.cells[g.index(from)] = nil
	g.cells[g.index(to)] = t
	t.pos = to
	return nil
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	count := 0
	for _, t := range g.cells {
		if t != nil {
			count++
		}
	}
	return count
}

// Each calls fn for every cell, bottom row first, left to right.
// t is nil for empty cells.
func (g *Grid) Each(fn func(c Coord, t *Token)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := C(x, y)
			fn(c, g.cells[g.index(c)])
		}
	}
}

// Types returns a snapshot of the board as token types, indexed [y][x]
// with row 0 at the bottom. Empty cells hold NoType.
func (g *Grid) Types() [][]TokenType {
	rows := make([][]TokenType, g.height)
	for y := range rows {
		rows[y] = make([]TokenType, g.width)
		for x := range rows[y] {
			rows[y][x] = NoType
			if t := g.cells[g.index(C(x, y))]; t != nil {
				rows[y][x] = t.typ
			}
		}
	}
	return rows
}
