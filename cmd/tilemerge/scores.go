package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/games/t2048"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagAll         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs (or every run with --all) and aggregate statistics.

Examples:
  tilemerge scores
  tilemerge scores --all
  tilemerge scores --interactive
  tilemerge scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every run instead of the top 10")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(t2048.GameID); err != nil {
			return err
		}
		fmt.Println("Recorded runs cleared.")
		return nil
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, t2048.GameID, width, height)
	}

	var runs []storage.Run
	if flagAll {
		runs, err = store.AllRuns(t2048.GameID)
	} else {
		runs, err = store.TopRuns(t2048.GameID, 10)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve runs: %w", err)
	}

	title := t2048.GameID
	if info, ok := registry.Lookup(t2048.GameID); ok {
		title = info.Title
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tilemerge play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Max", "Moves", "Slide", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "---", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %-7s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, r.Slide, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(t2048.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	return nil
}
