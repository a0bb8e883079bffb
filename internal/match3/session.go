package match3

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Config describes a board.
type Config struct {
	Width       int
	Height      int
	PaletteSize int

	// PoolCapacity defaults to twice the number of cells.
	PoolCapacity int

	Seed   int64
	Logger *log.Logger
	Mover  Mover
}

// Session owns one board and every engine component working on it.
type Session struct {
	grid       *Grid
	pool       *Pool
	finder     *Finder
	scanner    *Scanner
	controller *Controller
}

// NewSession builds the grid, pool, finder, scanner and controller for cfg.
// The board starts empty; call Start to fill it.
func NewSession(cfg Config) (*Session, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	capacity := cfg.PoolCapacity
	if capacity == 0 {
		capacity = 2 * cfg.Width * cfg.Height
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	pool, err := NewPool(cfg.PaletteSize, capacity, rng, cfg.Logger)
	if err != nil {
		return nil, err
	}

	controller := NewController(grid, pool, cfg.Mover, cfg.Logger)
	return &Session{
		grid:       grid,
		pool:       pool,
		finder:     controller.finder,
		scanner:    controller.scanner,
		controller: controller,
	}, nil
}

// Grid returns the board.
func (s *Session) Grid() *Grid { return s.grid }

// Pool returns the token pool.
func (s *Session) Pool() *Pool { return s.pool }

// Finder returns the match finder.
func (s *Session) Finder() *Finder { return s.finder }

// Scanner returns the move scanner.
func (s *Session) Scanner() *Scanner { return s.scanner }

// Controller returns the cascade controller.
func (s *Session) Controller() *Controller { return s.controller }

// Subscribe registers an observer for controller events.
func (s *Session) Subscribe(o Observer) {
	s.controller.Subscribe(o)
}

// Start fills the empty board without initial matches.
// The controller must then be stepped until it settles.
func (s *Session) Start() error {
	return s.controller.Populate(false)
}

// Load replaces the board with a fixed layout. rows[0] is the top row, so
// the literal reads the way the board is drawn. NoType leaves a cell empty.
// No motions are started and no events are emitted.
func (s *Session) Load(rows [][]TokenType) error {
	if s.controller.Busy() {
		return fmt.Errorf("match3: load: %w", ErrBusy)
	}
	if len(rows) != s.grid.height {
		return fmt.Errorf("match3: load: got %d rows, want %d", len(rows), s.grid.height)
	}
	for i, row := range rows {
		if len(row) != s.grid.width {
			return fmt.Errorf("match3: load: row %d has %d cells, want %d", i, len(row), s.grid.width)
		}
		for x, typ := range row {
			if typ != NoType && (typ < 0 || int(typ) >= s.pool.palette) {
				return fmt.Errorf("match3: load: row %d cell %d has type %d: %w", i, x, typ, ErrUnknownType)
			}
		}
	}

	s.grid.Each(func(c Coord, t *Token) {
		if t != nil {
			s.grid.cells[s.grid.index(c)] = nil
			s.pool.Return(t)
		}
	})

	for i, row := range rows {
		y := s.grid.height - 1 - i
		for x, typ := range row {
			if typ == NoType {
				continue
			}
			t := s.pool.Get()
			if err := s.pool.Change(t, typ); err != nil {
				s.pool.Return(t)
				return err
			}
			if err := s.grid.Put(t, C(x, y)); err != nil {
				s.pool.Return(t)
				return err
			}
		}
	}
	return nil
}
