// Package match3 is the playable match-3 mode built on the resolution
// engine: cursor and swap input, scoring, move budget, token animation and
// the board renderer.
package match3

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const (
	hintSeconds    = 1.5
	messageSeconds = 2.0
)

// Game implements the match-3 puzzle.
type Game struct {
	mode   Mode
	cfg    config.Match3Config
	logger *log.Logger
	tick   uint64
	dt     float64

	session  *match3.Session
	animator *Animator
	scorer   *Scorer

	observers []match3.Observer

	cursor    match3.Coord
	selected  bool
	movesLeft int
	lastChain int

	hintAt    match3.Coord
	hintDir   match3.Dir
	hintTicks int

	message      string
	messageTicks int

	// deadlocked is set by DeadlockReached and answered with ResolveAll
	// once the controller is idle.
	deadlocked bool

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	selectedConfig = config.DefaultMatch3Config()
	logger         = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.Match3Config) {
	selectedConfig = cfg
}

// SetLogger sets the logger handed to new games and their engine.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a classic mode game with a move budget.
func New() *Game {
	return &Game{
		mode:   ModeClassic,
		cfg:    selectedConfig,
		logger: logger,
	}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{
		mode:   ModeEndless,
		cfg:    selectedConfig,
		logger: logger,
	}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "match3_endless"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Configure replaces the configuration of this game. It takes effect on
// the next Reset. The SSH server uses it so sessions never share settings.
func (g *Game) Configure(cfg config.Match3Config) {
	g.cfg = cfg
}

// Resize adapts the game to a new screen size without restarting it.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Observe registers an observer for engine events. It survives Reset.
func (g *Game) Observe(o match3.Observer) {
	g.observers = append(g.observers, o)
	if g.session != nil {
		g.session.Subscribe(o)
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.dt = cfg.TickSeconds()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.selected = false
	g.deadlocked = false
	g.lastChain = 0
	g.hintTicks = 0
	g.message = ""
	g.messageTicks = 0

	g.movesLeft = -1
	if g.mode == ModeClassic {
		g.movesLeft = g.cfg.Gameplay.Moves
	}

	board := g.cfg.Board
	g.cursor = match3.C(board.Width/2, board.Height/2)

	var mover match3.Mover
	g.animator = nil
	if g.cfg.Animation.Enabled {
		g.animator = NewAnimator(g.cfg.Animation, board.Width, board.Height)
		mover = g.animator
	}

	difficulty := config.NewDifficultyManager(g.cfg.Difficulty)
	g.scorer = NewScorer(g.cfg.Gameplay.ComboTime, difficulty)

	session, err := match3.NewSession(match3.Config{
		Width:       board.Width,
		Height:      board.Height,
		PaletteSize: board.Types,
		Seed:        cfg.Seed,
		Logger:      g.logger,
		Mover:       mover,
	})
	if err != nil {
		// Validated configs never get here.
		g.logger.Error("failed to create board", "err", err)
		g.session = nil
		g.gameOver = true
		return
	}
	g.session = session
	session.Subscribe(match3.ObserverFunc(g.notify))
	for _, o := range g.observers {
		session.Subscribe(o)
	}

	if err := session.Start(); err != nil {
		g.logger.Warn("initial fill left matches", "err", err)
	}

	g.checkScreenSize()
}

// Session returns the engine session of the current board.
func (g *Game) Session() *match3.Session {
	return g.session
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	g.tooSmall = g.screenW < max(w, minHUDWidth) || g.screenH < h+hudHeight+1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.animator != nil {
		g.animator.Update(g.dt)
	}
	g.scorer.Tick(g.dt)
	g.handleInput(in)

	ctrl := g.session.Controller()
	ctrl.Step()

	if g.deadlocked && !ctrl.Busy() {
		g.deadlocked = false
		if err := ctrl.ResolveAll(); err != nil {
			g.logger.Warn("resolve all failed", "err", err)
		}
	}

	if g.mode == ModeClassic && g.movesLeft == 0 && !ctrl.Busy() && !g.deadlocked {
		g.gameOver = true
		g.logger.Info("game over", "score", g.scorer.Score(), "max_chain", g.scorer.MaxChain())
	}

	if g.hintTicks > 0 {
		g.hintTicks--
	}
	if g.messageTicks > 0 {
		g.messageTicks--
	}

	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor, toggles the selection and requests swaps.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionConfirm) {
		g.selected = !g.selected
	}

	var dir match3.Dir
	switch {
	case in.Has(core.ActionUp):
		dir = match3.DirUp
	case in.Has(core.ActionDown):
		dir = match3.DirDown
	case in.Has(core.ActionLeft):
		dir = match3.DirLeft
	case in.Has(core.ActionRight):
		dir = match3.DirRight
	default:
		return
	}

	if g.selected {
		g.trySwap(dir)
		return
	}
	g.moveCursor(dir)
}

func (g *Game) moveCursor(dir match3.Dir) {
	next := g.cursor.Add(dir.Delta())
	next.X = core.Clamp(next.X, 0, g.cfg.Board.Width-1)
	next.Y = core.Clamp(next.Y, 0, g.cfg.Board.Height-1)
	g.cursor = next
}

// trySwap swaps the selected token with its neighbour in dir.
// A busy board keeps the selection so the player can retry.
func (g *Game) trySwap(dir match3.Dir) {
	if g.mode == ModeClassic && g.movesLeft == 0 {
		return
	}
	to := g.cursor.Add(dir.Delta())
	err := g.session.Controller().TrySwap(g.cursor, to)
	switch {
	case err == nil:
		g.selected = false
		g.hintTicks = 0
	case errors.Is(err, match3.ErrBusy), errors.Is(err, match3.ErrTokenBusy):
	default:
		g.selected = false
		g.logger.Debug("swap refused", "from", g.cursor, "to", to, "err", err)
	}
}

// showHint flashes a move found by the scanner.
func (g *Game) showHint() {
	if !g.cfg.Gameplay.Hints {
		return
	}
	at, dir, ok := g.session.Scanner().Hint()
	if !ok {
		return
	}
	g.hintAt, g.hintDir = at, dir
	g.hintTicks = g.secondsToTicks(hintSeconds)
}

// notify reacts to engine events.
func (g *Game) notify(e match3.Event) {
	switch ev := e.(type) {
	case match3.ResolutionRequested:
		points := g.scorer.Resolve(ev.Match.Count(), ev.Chain)
		g.logger.Debug("match resolved", "count", ev.Match.Count(), "chain", ev.Chain, "points", points)
	case match3.SwapAccepted:
		if g.movesLeft > 0 {
			g.movesLeft--
		}
	case match3.SwapRejected:
		g.say("No match")
	case match3.CascadeSettled:
		g.lastChain = ev.Chains
		if ev.Chains > 1 {
			g.say(chainMessage(ev.Chains))
		}
	case match3.DeadlockReached:
		g.deadlocked = true
		g.say("No moves left! Clearing the board")
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = g.secondsToTicks(messageSeconds)
}

func (g *Game) secondsToTicks(s float64) int {
	if g.dt <= 0 {
		return 1
	}
	return max(1, int(s/g.dt))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		MovesLeft: g.movesLeft,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
	}
	if g.scorer != nil {
		st.Score = g.scorer.Score()
		st.MaxChain = g.scorer.MaxChain()
		st.MaxCombo = g.scorer.MaxCombo()
	}
	return st
}
