package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/autoplay"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagGames     int
	flagMaxPieces int
	flagRecord    bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run headless automated games",
	Long: `Play games with the automated player and no UI, as fast as possible.

Each game uses seed, seed+1, ... so a benchmark is reproducible with --seed.
A game ends at its first game over or when it reaches the piece cap.
With --record every game is appended to the run log (see 'tetris runs').

Examples:
  tetris bench
  tetris bench --games 50 --seed 1
  tetris bench --max-pieces 0 --record`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	benchCmd.Flags().IntVar(&flagMaxPieces, "max-pieces", -1, "Piece cap per game (0 = none, -1 = from settings)")
	benchCmd.Flags().BoolVar(&flagRecord, "record", false, "Record each game in the run log")
}

func runBench(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cfg := autoplay.Config{
		Games:     flagGames,
		Seed:      flagSeed,
		MaxPieces: settings.Autoplay.MaxPieces,
		Settings:  settings,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if flagMaxPieces >= 0 {
		cfg.MaxPieces = flagMaxPieces
	}

	var rec autoplay.Recorder
	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("open run log: %w", err)
		}
		defer store.Close()
		rec = runRecorder(store, logger)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("starting bench", "games", cfg.Games, "seed", cfg.Seed, "max_pieces", cfg.MaxPieces)
	results, err := autoplay.Run(ctx, cfg, logger, rec)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("bench interrupted", "completed", len(results))
	case err != nil:
		return err
	}

	t := autoplay.Summarize(results)
	logger.Info("bench finished",
		"games", t.Games,
		"game_overs", t.GameOvers,
		"best_score", t.BestScore,
		"avg_score", fmt.Sprintf("%.1f", t.AvgScore),
		"avg_lines", fmt.Sprintf("%.1f", t.AvgLines),
		"avg_pieces", fmt.Sprintf("%.1f", t.AvgPieces),
	)
	return nil
}

// runRecorder appends finished games to the run log.
func runRecorder(store *storage.Store, logger *log.Logger) autoplay.Recorder {
	return autoplay.RecorderFunc(func(r autoplay.Result) error {
		id, err := store.SaveRun(storage.Run{
			GameID:   autoplay.GameID,
			Seed:     r.Seed,
			Pieces:   r.Stats.PiecesPlaced,
			Lines:    r.Stats.Lines,
			Score:    r.Stats.Score,
			Level:    r.Stats.Level,
			GameOver: r.GameOver,
			Duration: r.Duration,
		})
		if err != nil {
			return err
		}
		logger.Debug("recorded run", "id", id)
		return nil
	})
}
