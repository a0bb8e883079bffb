// match3 is a terminal match-3 puzzle with a cascade resolution engine.
//
// Usage:
//
//	match3 modes              - List available modes
//	match3 play <mode>        - Play a mode
//	match3 menu               - Start menu to pick modes interactively
//	match3 scores [mode]      - Show high scores
//	match3 simulate           - Play greedy moves headless and print a report
//	match3 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Use a custom match3.yaml
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - A swap-and-cascade puzzle in your terminal",
	Long: `Match-3 is a terminal puzzle: swap neighbouring tokens to line up three
or more of a kind, then watch the board collapse and refill into cascades.

Available commands:
  modes     - Show all available modes
  play      - Play a specific mode directly
  menu      - Interactive mode picker
  scores    - View high scores
  simulate  - Run a headless greedy player
  serve     - Start SSH server for remote play

Examples:
  match3 modes
  match3 play match3
  match3 menu
  match3 simulate --moves 200 --seed 42
  match3 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}
