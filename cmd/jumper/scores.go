package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/momentum-jumper/internal/platform/tui"
	"github.com/vovakirdan/momentum-jumper/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresBrowse bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs and the stored best score.

Examples:
  jumper scores
  jumper scores --limit 25
  jumper scores --browse
  jumper scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open a scrollable table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs and the best score")
}

func runScores(_ *cobra.Command, _ []string) error {
	const gameID = "jumper"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}
	stats, err := store.GetStats(gameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	if flagScoresBrowse {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			return errors.New("--browse needs a terminal")
		}
		return tui.RunScoreboard(runs, stats, width, height)
	}

	fmt.Println("Best Runs - Momentum Jumper")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, r.Score, int(r.Difficulty)+1, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d  (%d runs, avg %.1f)\n", stats.Best, stats.Runs, stats.AvgScore)
	return nil
}
