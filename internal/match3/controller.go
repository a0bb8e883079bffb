package match3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// State is the phase of the cascade state machine.
type State uint8

const (
	StateIdle State = iota
	StateSwapping
	StateReverting
	StateResolving
	StateCollapsing
	StateRepopulating
	StateScanning
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateReverting:
		return "reverting"
	case StateResolving:
		return "resolving"
	case StateCollapsing:
		return "collapsing"
	case StateRepopulating:
		return "repopulating"
	case StateScanning:
		return "scanning"
	default:
		return "unknown"
	}
}

// Controller runs the swap, resolve, collapse, refill and rescan cycle.
//
// It is advanced by Step, normally once per frame. Every phase starts its
// token motions through the Mover and the next phase runs only after all of
// them have finished.
type Controller struct {
	grid      *Grid
	pool      *Pool
	finder    *Finder
	scanner   *Scanner
	mover     Mover
	logger    *log.Logger
	observers []Observer

	state   State
	pending motionGroup
	exiting []*Motion
	swapped [2]*Token

	chain     int
	lastChain int
	lastMoves int
}

// NewController creates an idle controller over grid and pool.
// A nil mover completes motions instantly; a nil logger discards output.
func NewController(grid *Grid, pool *Pool, mover Mover, logger *log.Logger) *Controller {
	if mover == nil {
		mover = InstantMover{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		grid:    grid,
		pool:    pool,
		finder:  NewFinder(grid),
		scanner: NewScanner(grid),
		mover:   mover,
		logger:  logger,
	}
}

// Subscribe registers an observer for controller events.
func (c *Controller) Subscribe(o Observer) {
	c.observers = append(c.observers, o)
}

// SetMover replaces the motion collaborator. Motions already started are
// still waited on.
func (c *Controller) SetMover(m Mover) {
	if m == nil {
		m = InstantMover{}
	}
	c.mover = m
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// Busy reports whether a swap or cascade is in progress.
func (c *Controller) Busy() bool {
	return c.state != StateIdle
}

// Chain returns the current cascade round, 0 while idle.
func (c *Controller) Chain() int {
	return c.chain
}

// LastChain returns the number of cascade rounds of the last settled cascade.
func (c *Controller) LastChain() int {
	return c.lastChain
}

// LastMoves returns the move count computed when the board last settled.
func (c *Controller) LastMoves() int {
	return c.lastMoves
}

// TrySwap starts swapping the tokens at a and b. The outcome is reported
// through events once the swap motions have finished.
func (c *Controller) TrySwap(a, b Coord) error {
	if c.state != StateIdle {
		return fmt.Errorf("match3: swap %v <-> %v: %w", a, b, ErrBusy)
	}
	if !c.grid.InBounds(a) || !c.grid.InBounds(b) {
		return fmt.Errorf("match3: swap %v <-> %v: %w", a, b, ErrOutOfBounds)
	}
	if !a.Adjacent(b) {
		return fmt.Errorf("match3: swap %v <-> %v: %w", a, b, ErrNotAdjacent)
	}
	ta, tb := c.grid.Get(a), c.grid.Get(b)
	if ta == nil || tb == nil {
		return fmt.Errorf("match3: swap %v <-> %v: %w", a, b, ErrCellEmpty)
	}
	if !ta.idle || !tb.idle {
		return fmt.Errorf("match3: swap %v <-> %v: %w", a, b, ErrTokenBusy)
	}

	if err := c.grid.Swap(a, b); err != nil {
		return err
	}
	c.swapped = [2]*Token{ta, tb}
	c.pending.add(c.mover.Move(ta, b))
	c.pending.add(c.mover.Move(tb, a))
	c.setState(StateSwapping)
	return nil
}

// ResolveAll resolves every idle token on the board as a single match and
// runs the usual cascade afterwards.
func (c *Controller) ResolveAll() error {
	if c.state != StateIdle {
		return fmt.Errorf("match3: resolve all: %w", ErrBusy)
	}
	m := newMatch(nil)
	c.grid.Each(func(_ Coord, t *Token) {
		if t != nil && t.idle {
			m.add(t)
		}
	})
	if m.Count() == 0 {
		return nil
	}
	c.chain = 1
	c.resolve([]*Match{m})
	return nil
}

// Populate fills every empty cell, bottom row first. Unless allowMatches is
// set, each new token is cycled through the palette until it does not form a
// run of three. When no type avoids a run the cell is filled anyway and the
// returned error wraps ErrFillExhausted; the board is complete either way.
func (c *Controller) Populate(allowMatches bool) error {
	if c.state != StateIdle {
		return fmt.Errorf("match3: populate: %w", ErrBusy)
	}
	c.chain = 0
	return c.fill(allowMatches)
}

// Step advances the state machine by at most one phase.
func (c *Controller) Step() {
	c.reclaim()
	if !c.pending.settled() {
		return
	}
	c.pending.reset()

	switch c.state {
	case StateSwapping:
		c.finishSwap()
	case StateReverting:
		c.chain = 0
		c.rescan()
	case StateResolving:
		c.collapse()
	case StateCollapsing:
		if err := c.fill(false); err != nil {
			c.logger.Warn("refill could not avoid matches", "err", err)
		}
	case StateRepopulating:
		c.rescan()
	}
}

// Settle steps the controller until it is idle, blocking on pending motions.
// The mover must finish its motions from another goroutine, or instantly.
func (c *Controller) Settle(ctx context.Context) error {
	for c.state != StateIdle {
		if err := c.pending.wait(ctx); err != nil {
			return err
		}
		c.Step()
	}
	c.reclaim()
	return nil
}

func (c *Controller) finishSwap() {
	ta, tb := c.swapped[0], c.swapped[1]
	c.swapped = [2]*Token{}

	ma := c.finder.Find(ta)
	mb := c.finder.Find(tb)
	if ma != nil && mb != nil && ma.overlaps(mb) {
		mb = nil
	}

	if ma == nil && mb == nil {
		a, b := tb.pos, ta.pos
		if err := c.grid.Swap(a, b); err != nil {
			c.logger.Error("revert swap", "err", err)
		}
		c.pending.add(c.mover.Move(ta, ta.pos))
		c.pending.add(c.mover.Move(tb, tb.pos))
		c.notify(SwapRejected{A: a, B: b})
		c.setState(StateReverting)
		return
	}

	c.notify(SwapAccepted{A: tb.pos, B: ta.pos})
	var matches []*Match
	for _, m := range [2]*Match{ma, mb} {
		if m != nil {
			matches = append(matches, m)
		}
	}
	c.chain = 1
	c.resolve(matches)
}

// resolve announces the matches, takes their tokens off the grid and starts
// their exit motions. Tokens go back to the pool once those finish.
func (c *Controller) resolve(matches []*Match) {
	for _, m := range matches {
		m.freeze()
		c.logger.Debug("resolving", "chain", c.chain, "match", m)
		c.notify(ResolutionRequested{Match: m, Chain: c.chain})
		for _, t := range m.members {
			if _, err := c.grid.Remove(t.pos); err != nil {
				c.logger.Error("remove resolved token", "token", t, "err", err)
				continue
			}
			mot := c.mover.Exit(t)
			c.pending.add(mot)
			c.exiting = append(c.exiting, mot)
		}
	}
	c.setState(StateResolving)
}

func (c *Controller) reclaim() {
	kept := c.exiting[:0]
	for _, m := range c.exiting {
		if m.Settled() {
			c.pool.Return(m.Token())
		} else {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(c.exiting); i++ {
		c.exiting[i] = nil
	}
	c.exiting = kept
}

// collapse pulls tokens down so that no empty cell sits below an idle token.
// Each column is walked bottom to top and every empty cell takes the nearest
// idle occupant above it.
func (c *Controller) collapse() {
	for x := 0; x < c.grid.width; x++ {
		for y := 0; y < c.grid.height; y++ {
			to := C(x, y)
			if !c.grid.IsEmpty(to) {
				continue
			}
			from, ok := c.nearestIdleAbove(to)
			if !ok {
				break
			}
			if err := c.grid.MoveItemTo(from, to); err != nil {
				c.logger.Error("collapse", "err", err)
				continue
			}
			t := c.grid.Get(to)
			c.pending.add(c.mover.Move(t, to))
		}
	}
	c.setState(StateCollapsing)
}

func (c *Controller) nearestIdleAbove(to Coord) (Coord, bool) {
	for y := to.Y + 1; y < c.grid.height; y++ {
		from := C(to.X, y)
		if t := c.grid.Get(from); t != nil && t.idle {
			return from, true
		}
	}
	return Coord{}, false
}

func (c *Controller) fill(allowMatches bool) error {
	var errs []error
	for y := 0; y < c.grid.height; y++ {
		for x := 0; x < c.grid.width; x++ {
			at := C(x, y)
			if !c.grid.IsEmpty(at) {
				continue
			}
			t := c.pool.Get()
			if err := c.grid.Put(t, at); err != nil {
				c.pool.Return(t)
				errs = append(errs, err)
				continue
			}
			if !allowMatches && !c.avoidMatch(t) {
				c.logger.Warn("no type avoids a match", "at", at, "type", t.typ)
				c.notify(FillExhausted{At: at, Type: t.typ})
				errs = append(errs, fmt.Errorf("match3: fill %v: %w", at, ErrFillExhausted))
			}
			c.pending.add(c.mover.Spawn(t, at))
		}
	}
	c.setState(StateRepopulating)
	return errors.Join(errs...)
}

// avoidMatch cycles t through the palette until it no longer forms a run.
// It reports false when every type was tried; t then keeps the type it
// started with.
func (c *Controller) avoidMatch(t *Token) bool {
	start := t.typ
	for c.finder.WouldMatch(t) {
		if c.pool.NextType(t) == start {
			return false
		}
	}
	return true
}

func (c *Controller) rescan() {
	c.setState(StateScanning)
	matches := c.finder.FindAll()
	if len(matches) == 0 {
		c.settle()
		return
	}
	c.chain++
	c.resolve(matches)
}

func (c *Controller) settle() {
	c.setState(StateIdle)
	chains := c.chain
	c.chain = 0
	c.lastChain = chains
	c.lastMoves = c.scanner.Count()

	c.notify(CascadeSettled{Chains: chains, Moves: c.lastMoves})
	if c.lastMoves == 0 {
		c.logger.Debug("deadlock reached")
		c.notify(DeadlockReached{})
	}
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.logger.Debug("state", "from", c.state, "to", s)
	c.state = s
}

func (c *Controller) notify(e Event) {
	for _, o := range c.observers {
		o.Notify(e)
	}
}
