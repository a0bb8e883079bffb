package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

func newTestMenu(t *testing.T) MenuModel {
	t.Helper()
	if !registry.Exists("fake") {
		registry.Register("fake", func() registry.Game { return &fakeGame{overAfter: 1} })
	}
	return NewMenuModel(nil, testRuntime())
}

func sendMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuListsModes(t *testing.T) {
	m := newTestMenu(t)
	if !strings.Contains(m.View(), "Fake") {
		t.Error("menu should list registered modes")
	}
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %v, expected normal by default", m.Difficulty())
	}
}

func TestMenuDifficulty(t *testing.T) {
	m := newTestMenu(t)

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %v, expected hard to be the last preset", m.Difficulty())
	}
	if !strings.Contains(m.View(), "[hard]") {
		t.Error("view should bracket the current preset")
	}

	m = sendMenu(m, runeKey("a"), runeKey("a"), runeKey("a"))
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %v, expected easy to be the first preset", m.Difficulty())
	}
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu(t)
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit || res.WantsScoreboard {
		t.Fatalf("Result() = %+v, expected a selection", res)
	}
	if !registry.Exists(res.GameID) {
		t.Errorf("selected %q, expected a registered mode", res.GameID)
	}
	if res.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %v", res.Difficulty)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(newTestMenu(t), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = sendMenu(newTestMenu(t), runeKey("q"))
	if !m.Result().Quit {
		t.Error("q should quit the menu")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected two spaces of padding", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() = %q, expected text unchanged", got)
	}
}
