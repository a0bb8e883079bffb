package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode, or for every mode when none
is given.

Examples:
  match3 scores
  match3 scores match3
  match3 scores match3_endless --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	modes := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'match3 modes' to see available modes.")
			os.Exit(1)
		}
		title, _ := registry.Title(args[0])
		modes = []registry.GameInfo{{ID: args[0], Title: title}}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for i, m := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, m); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, mode registry.GameInfo) error {
	scores, err := store.TopScores(mode.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", mode.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", mode.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Chain", "Combo", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %-5d  %s\n",
			i+1, e.Score, e.MaxChain, e.MaxCombo, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Longest chain: %d  Best combo: x%d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestChain, stats.BestCombo)
	return nil
}
