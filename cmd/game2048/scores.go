package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nghiafl1/game2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode: classic (default), versus or autoplay.
The versus view also shows your record against the computer.

Examples:
  game2048 scores
  game2048 scores versus
  game2048 scores autoplay --limit 5
  game2048 scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := storage.ModeClassic
	if len(args) == 1 {
		mode = args[0]
	}

	switch mode {
	case storage.ModeClassic, storage.ModeVersus, storage.ModeAutoplay:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Modes: classic, versus, autoplay.")
		os.Exit(1)
	}

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared %s scores.\n", mode)
		return
	}

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %s\n", "Rank", "Score", "Max Tile", "Size", "Date")
		fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %s\n", "----", "-----", "--------", "----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			size := fmt.Sprintf("%dx%d", entry.GridSize, entry.GridSize)
			fmt.Printf("  %-4d  %-10d  %-8d  %-5s  %s\n", i+1, entry.Score, entry.MaxTile, size, dateStr)
		}

		if stats, err := store.Stats(mode); err == nil {
			fmt.Println()
			fmt.Printf("Games: %d  Best: %d  Best tile: %d  Average: %.0f\n",
				stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
		}
	}

	if mode == storage.ModeVersus {
		printVersusHistory(store)
	}
}

func printVersusHistory(store *storage.Store) {
	rec, err := store.Record()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving record: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Printf("Record vs computer: %d wins, %d losses, %d draws\n", rec.Wins, rec.Losses, rec.Draws)

	matches, err := store.RecentVersusMatches(5)
	if err != nil || len(matches) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent matches:")
	for _, m := range matches {
		result := "draw"
		switch m.Winner {
		case "human":
			result = "won"
		case "ai":
			result = "lost"
		}
		fmt.Printf("  %s  %-4s  %6d - %-6d  %s, %ds\n",
			m.CreatedAt.Format("2006-01-02 15:04"), result, m.HumanScore, m.AIScore, m.Difficulty, m.Duration)
	}
}
