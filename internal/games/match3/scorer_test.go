package match3

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
)

func TestScorerPoints(t *testing.T) {
	s := NewScorer(2.0, nil)

	tests := []struct {
		count, chain int
		points       int
	}{
		{3, 1, 9},  // combo 1
		{4, 2, 32}, // combo 2
		{5, 3, 75}, // combo 3
	}
	total := 0
	for _, tc := range tests {
		if got := s.Resolve(tc.count, tc.chain); got != tc.points {
			t.Errorf("Resolve(%d, %d) = %d, expected %d", tc.count, tc.chain, got, tc.points)
		}
		total += tc.points
	}

	if s.Score() != total {
		t.Errorf("Score() = %d, expected %d", s.Score(), total)
	}
	if s.MaxChain() != 3 || s.MaxCombo() != 3 {
		t.Errorf("MaxChain() = %d, MaxCombo() = %d, expected 3 and 3", s.MaxChain(), s.MaxCombo())
	}
}

func TestScorerComboExpires(t *testing.T) {
	s := NewScorer(2.0, nil)

	s.Resolve(3, 1)
	if s.ComboLeft() != 2.0 {
		t.Errorf("ComboLeft() = %v, expected the full window for combo 1", s.ComboLeft())
	}
	s.Resolve(3, 1)
	if s.ComboLeft() >= 2.0 {
		t.Errorf("ComboLeft() = %v, expected the window to shrink with the combo", s.ComboLeft())
	}

	s.Tick(1.0)
	if s.Combo() != 2 {
		t.Fatalf("Combo() = %d after 1s, expected 2", s.Combo())
	}
	s.Tick(1.0)
	if s.Combo() != 0 {
		t.Errorf("Combo() = %d after the window closed, expected 0", s.Combo())
	}
	if s.MaxCombo() != 2 {
		t.Errorf("MaxCombo() = %d, expected 2", s.MaxCombo())
	}
}

func TestScorerWindowFloor(t *testing.T) {
	s := NewScorer(0.3, nil)
	for i := 0; i < 10; i++ {
		s.Resolve(3, 1)
	}
	if s.ComboLeft() != minComboTime {
		t.Errorf("ComboLeft() = %v, expected the floor %v", s.ComboLeft(), minComboTime)
	}
}

func TestScorerDifficultyShrinksWindow(t *testing.T) {
	dm := config.NewDifficultyManager(config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     config.ScalingConfig{ComboTimeReduction: 1.0},
	})
	s := NewScorer(2.0, dm)

	s.Resolve(10, 1)
	if s.ComboLeft() != 1.0 {
		t.Errorf("ComboLeft() = %v at max difficulty, expected 1.0", s.ComboLeft())
	}
}
