package match3

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

// point is a drawn position in board cells, Y up like the grid.
type point struct {
	X, Y float32
}

// flight is one token's running animation.
type flight struct {
	motion *match3.Motion
	x, y   *gween.Tween
	exit   bool
}

// Animator moves tokens between cells with tweens. It implements
// match3.Mover; the engine waits on the returned motions, which finish
// in Update once both axes reach their target.
type Animator struct {
	swap, fall, exit float32
	spawnOffset      int

	width, height int

	flights   map[*match3.Token]*flight
	positions map[*match3.Token]point
}

// NewAnimator creates an animator for a width x height board.
func NewAnimator(cfg config.AnimationConfig, width, height int) *Animator {
	return &Animator{
		swap:        float32(cfg.SwapDuration),
		fall:        float32(cfg.FallDuration),
		exit:        float32(cfg.ExitDuration),
		spawnOffset: cfg.SpawnOffset,
		width:       width,
		height:      height,
		flights:     make(map[*match3.Token]*flight),
		positions:   make(map[*match3.Token]point),
	}
}

// Move slides t from where it is drawn to the cell at to.
// Sideways and single-step moves use the swap timing, longer drops fall.
func (a *Animator) Move(t *match3.Token, to match3.Coord) *match3.Motion {
	from, ok := a.positions[t]
	if !ok {
		from = cellPoint(t.Pos())
	}
	target := cellPoint(to)

	duration, easing := a.swap, ease.OutQuad
	if target.X == from.X && from.Y-target.Y > 1 {
		duration, easing = a.fall, ease.InQuad
	}
	return a.start(t, from, target, duration, easing, false)
}

// Spawn drops t into the cell at to from above the board.
func (a *Animator) Spawn(t *match3.Token, to match3.Coord) *match3.Motion {
	target := cellPoint(to)
	from := point{X: target.X, Y: target.Y + float32(a.height+a.spawnOffset)}
	return a.start(t, from, target, a.fall, ease.InQuad, false)
}

// Exit flies t to the collection point right of the board.
func (a *Animator) Exit(t *match3.Token) *match3.Motion {
	from, ok := a.positions[t]
	if !ok {
		from = cellPoint(t.Pos())
	}
	target := point{X: float32(a.width + 1), Y: float32(a.height - 1)}
	return a.start(t, from, target, a.exit, ease.InQuad, true)
}

func (a *Animator) start(t *match3.Token, from, to point, duration float32, easing ease.TweenFunc, exit bool) *match3.Motion {
	if old, ok := a.flights[t]; ok {
		old.motion.Finish()
		delete(a.flights, t)
	}

	m := match3.StartMotion(t)
	a.positions[t] = from
	if duration <= 0 {
		a.positions[t] = to
		a.land(t, exit)
		m.Finish()
		return m
	}

	a.flights[t] = &flight{
		motion: m,
		x:      gween.New(from.X, to.X, duration, easing),
		y:      gween.New(from.Y, to.Y, duration, easing),
		exit:   exit,
	}
	return m
}

// Update advances every flight by dt seconds and finishes the motions
// that arrived.
func (a *Animator) Update(dt float64) {
	for t, f := range a.flights {
		x, doneX := f.x.Update(float32(dt))
		y, doneY := f.y.Update(float32(dt))
		a.positions[t] = point{X: x, Y: y}
		if doneX && doneY {
			delete(a.flights, t)
			a.land(t, f.exit)
			f.motion.Finish()
		}
	}
}

func (a *Animator) land(t *match3.Token, exit bool) {
	if exit {
		delete(a.positions, t)
	}
}

// Position returns where t is drawn, in board cells.
// ok is false for tokens the animator has never moved.
func (a *Animator) Position(t *match3.Token) (x, y float32, ok bool) {
	p, ok := a.positions[t]
	return p.X, p.Y, ok
}

// Exiting returns the tokens flying off the board.
func (a *Animator) Exiting() []*match3.Token {
	var tokens []*match3.Token
	for t, f := range a.flights {
		if f.exit {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Busy reports whether any flight is still running.
func (a *Animator) Busy() bool {
	return len(a.flights) > 0
}

// Reset drops every flight. Their motions are finished so nothing waits
// on them.
func (a *Animator) Reset() {
	for t, f := range a.flights {
		f.motion.Finish()
		delete(a.flights, t)
	}
	a.positions = make(map[*match3.Token]point)
}

func cellPoint(c match3.Coord) point {
	return point{X: float32(c.X), Y: float32(c.Y)}
}
