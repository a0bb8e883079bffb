package match3

import (
	"math"

	"github.com/vovakirdan/tui-match3/internal/config"
)

// minComboTime is the shortest combo window however long the combo gets.
const minComboTime = 0.25

// Scorer turns resolved matches into points.
// Each resolution raises the combo multiplier; the combo drops back to
// zero when no resolution happens within the combo window, which
// narrows as the combo grows and as difficulty rises.
type Scorer struct {
	baseWindow float64
	difficulty *config.DifficultyManager

	score     int
	combo     int
	comboLeft float64
	maxCombo  int
	maxChain  int
	ticks     int
}

// NewScorer creates a scorer with a combo window of comboTime seconds.
// difficulty may be nil for a fixed window.
func NewScorer(comboTime float64, difficulty *config.DifficultyManager) *Scorer {
	return &Scorer{
		baseWindow: comboTime,
		difficulty: difficulty,
	}
}

// Resolve scores a match of count tokens resolved at the given chain depth
// and returns the points awarded.
func (s *Scorer) Resolve(count, chain int) int {
	s.combo++
	s.maxCombo = max(s.maxCombo, s.combo)
	s.maxChain = max(s.maxChain, chain)

	points := count * count * s.combo
	s.score += points
	s.comboLeft = s.window()
	return points
}

// window returns the combo timeout for the current combo.
func (s *Scorer) window() float64 {
	base := s.baseWindow
	if s.difficulty != nil {
		base = s.difficulty.ComboWindow(base, s.score, s.ticks)
	}
	w := base - math.Log(float64(s.combo))/2
	return math.Max(w, minComboTime)
}

// Tick advances the combo timer by dt seconds.
func (s *Scorer) Tick(dt float64) {
	s.ticks++
	if s.combo == 0 {
		return
	}
	s.comboLeft -= dt
	if s.comboLeft <= 0 {
		s.combo = 0
		s.comboLeft = 0
	}
}

// Score returns the total points.
func (s *Scorer) Score() int { return s.score }

// Combo returns the current combo multiplier, 0 when no combo is running.
func (s *Scorer) Combo() int { return s.combo }

// ComboLeft returns the seconds left before the combo resets.
func (s *Scorer) ComboLeft() float64 { return s.comboLeft }

// MaxCombo returns the highest combo reached.
func (s *Scorer) MaxCombo() int { return s.maxCombo }

// MaxChain returns the longest cascade chain seen.
func (s *Scorer) MaxChain() int { return s.maxChain }
