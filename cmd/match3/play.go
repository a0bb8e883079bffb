package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gamematch3 "github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Select a token; an arrow then swaps it
  H/?          - Show a hint
  P            - Pause
  R            - Restart (after game over)
  Esc          - Back (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five token types, 40 moves
  normal - Six token types, 30 moves
  hard   - Seven token types, 20 moves
  fixed  - Config as written, no combo window progression

Examples:
  match3 play match3
  match3 play match3 --difficulty hard
  match3 play match3_endless --sound
  match3 play match3 --config ./my-match3.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides the config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 modes' to see available modes.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("sound") {
		gameCfg.Audio.Enabled = flagSound
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	gamematch3.SetConfig(gameCfg)
	gamematch3.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	stopAudio := attachAudio(game, gameCfg.Audio, logger)
	defer stopAudio()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
