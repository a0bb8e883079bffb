package match3

import "github.com/vovakirdan/tui-match3/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "classic" or "endless"
	Score     int
	MovesLeft int // -1 in endless mode
	Combo     int
	Chain     int // Chains of the last settled cascade
	MaxChain  int
	MaxCombo  int
	Board     [][]match3.TokenType // Bottom row first
	Cursor    match3.Coord
	Selected  bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.session != nil && g.session.Controller().Busy():
		state = StateResolving
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		MovesLeft: g.movesLeft,
		Chain:     g.lastChain,
		Cursor:    g.cursor,
		Selected:  g.selected,
		State:     state,
	}
	if g.scorer != nil {
		snap.Score = g.scorer.Score()
		snap.Combo = g.scorer.Combo()
		snap.MaxChain = g.scorer.MaxChain()
		snap.MaxCombo = g.scorer.MaxCombo()
	}
	if g.session != nil {
		snap.Board = g.session.Grid().Types()
	}
	return snap
}
