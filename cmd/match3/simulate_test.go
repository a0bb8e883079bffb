package main

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

func TestFormatBoard(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	rows := [][]match3.TokenType{
		{0, 1, 2}, // bottom
		{match3.NoType, 3, 0},
	}

	want := ". ■ ◆\n◆ ● ▲\n"
	if got := formatBoard(rows, cfg); got != want {
		t.Errorf("formatBoard() = %q, expected %q", got, want)
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}
