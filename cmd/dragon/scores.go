package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs.

By default an interactive table is shown; --plain prints to stdout.

Examples:
  dragon scores
  dragon scores --plain --limit 5
  dragon scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores to stdout instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("no scores database configured (--db)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(dragon.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, dragon.ID, cfg.Screen.Title, width, height)
	}

	return printScores(store, cfg.Screen.Title)
}

// printScores writes the best runs as a plain table.
func printScores(store *storage.Store, title string) error {
	scores, err := store.TopScores(dragon.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dragon play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-16s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-16s  %s\n", i+1, entry.Score, entry.Player, dateStr)
	}

	stats, err := store.Stats(dragon.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Last played: %s\n",
		stats.Best, stats.Runs, stats.Average, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
