package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/autoplay"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded automated runs",
	Long: `Display the games recorded by 'tetris bench --record', newest first.

On a terminal the runs open in a scrollable table; use --plain (or pipe
the output) for text.

Examples:
  tetris runs
  tetris runs --plain --limit 20`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of opening the table view")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		_, err := tui.RunRuns(store, autoplay.GameID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	runs, err := store.RecentRuns(autoplay.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded runs - %s\n", autoplay.GameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tetris bench --record' to record some.")
		return nil
	}

	fmt.Printf("  %-16s  %-20s  %-8s  %-6s  %-6s  %-5s  %s\n", "Date", "Seed", "Score", "Lines", "Pieces", "Level", "End")
	fmt.Printf("  %-16s  %-20s  %-8s  %-6s  %-6s  %-5s  %s\n", "----", "----", "-----", "-----", "------", "-----", "---")

	for _, r := range runs {
		end := "capped"
		if r.GameOver {
			end = "game over"
		}
		fmt.Printf("  %-16s  %-20d  %-8d  %-6d  %-6d  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Seed, r.Score, r.Lines, r.Pieces, r.Level, end)
	}

	sum, err := store.Summarize(autoplay.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Avg score: %.1f  Avg lines: %.1f  Avg pieces: %.1f\n",
		sum.Runs, sum.BestScore, sum.AvgScore, sum.AvgLines, sum.AvgPieces)
	return nil
}
