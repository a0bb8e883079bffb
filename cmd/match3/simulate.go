package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	gamematch3 "github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

var (
	flagMoves     int
	flagThink     float64
	flagShowBoard bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play greedy moves headless and print a report",
	Long: `Run a board without a terminal UI. Every move is the first swap the
move scanner finds; deadlocks are cleared with a full-board resolve, as in
the game. Useful to compare configs and difficulty presets.

Examples:
  match3 simulate
  match3 simulate --moves 500 --seed 42
  match3 simulate --difficulty hard --board`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 100, "Number of swaps to play")
	simulateCmd.Flags().Float64Var(&flagThink, "think", 1.0, "Seconds between swaps charged to the combo timer")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().BoolVar(&flagShowBoard, "board", false, "Print the final board")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "match3-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := gamematch3.Simulate(ctx, gamematch3.SimConfig{
		Game:        gameCfg,
		Seed:        flagSeed,
		Moves:       flagMoves,
		MoveSeconds: flagThink,
		Logger:      logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board := gameCfg.Board
	fmt.Printf("Board:          %dx%d, %d types, seed %d\n", board.Width, board.Height, board.Types, flagSeed)
	fmt.Printf("Moves:          %d\n", rep.Moves)
	fmt.Printf("Score:          %d\n", rep.Score)
	fmt.Printf("Resolutions:    %d\n", rep.Resolutions)
	fmt.Printf("Longest chain:  %d\n", rep.MaxChain)
	fmt.Printf("Best combo:     x%d\n", rep.MaxCombo)
	fmt.Printf("Deadlocks:      %d\n", rep.Deadlocks)
	if rep.FillExhausted > 0 {
		fmt.Printf("Forced fills:   %d\n", rep.FillExhausted)
	}
	if rep.Moves > 0 {
		fmt.Printf("Points/move:    %.1f\n", float64(rep.Score)/float64(rep.Moves))
	}

	if flagShowBoard && rep.Board != nil {
		fmt.Println()
		fmt.Print(formatBoard(rep.Board, gameCfg))
	}
}

// formatBoard draws a type snapshot with the palette symbols, top row first.
func formatBoard(rows [][]match3.TokenType, cfg config.Match3Config) string {
	symbols := cfg.Symbols()
	var b strings.Builder
	for y := len(rows) - 1; y >= 0; y-- {
		for x, t := range rows[y] {
			if x > 0 {
				b.WriteByte(' ')
			}
			if t == match3.NoType || int(t) >= len(symbols) {
				b.WriteByte('.')
				continue
			}
			b.WriteRune(symbols[t])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
