// Package autoplay runs headless games driven entirely by the automated
// player, for benchmarking the placement heuristic.
package autoplay

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// GameID identifies automated runs in the run log.
const GameID = "tetris_ai"

// Config describes a benchmark.
type Config struct {
	Games     int   // Number of games to play
	Seed      int64 // Seed of the first game; game i uses Seed+i
	MaxPieces int   // Stop a game after this many pieces, 0 = until game over
	Settings  config.TetrisConfig
}

// Result is the outcome of one automated game.
type Result struct {
	Seed     int64
	Stats    tetris.Stats
	GameOver bool // False when the piece cap stopped the game
	Duration time.Duration
}

// Recorder receives every finished game, e.g. to persist it.
type Recorder interface {
	Record(r Result) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(r Result) error

// Record calls f(r).
func (f RecorderFunc) Record(r Result) error {
	return f(r)
}

// Play runs one automated game until the first game over or the piece cap.
// ctx is checked between pieces.
func Play(ctx context.Context, seed int64, settings config.TetrisConfig, maxPieces int) (Result, error) {
	session := tetris.NewSession(
		tetris.WithBoardSize(settings.Board.Width, settings.Board.Height),
		tetris.WithSeed(seed),
		tetris.WithRules(tetris.Rules{
			LinePoints:     settings.Scoring.LinePoints,
			LevelThreshold: settings.Scoring.LevelThreshold,
		}),
		tetris.WithAutomatedPlay(true),
	)

	start := time.Now()
	res := Result{Seed: seed}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		step := session.Tick(tetris.ModeAutomated)
		if step.GameOver {
			res.Stats = step.Final
			res.GameOver = true
			break
		}
		if maxPieces > 0 && session.Stats().PiecesPlaced >= maxPieces {
			res.Stats = session.Stats()
			break
		}
	}
	res.Duration = time.Since(start)
	return res, nil
}

// Run plays cfg.Games games one after another, logging each result and
// handing it to rec when rec is non-nil.
func Run(ctx context.Context, cfg Config, logger *log.Logger, rec Recorder) ([]Result, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("autoplay: games must be positive, got %d", cfg.Games)
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("autoplay: %w", err)
	}

	results := make([]Result, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + int64(i)
		res, err := Play(ctx, seed, cfg.Settings, cfg.MaxPieces)
		if err != nil {
			return results, fmt.Errorf("autoplay: game %d: %w", i+1, err)
		}

		logger.Info("game finished",
			"game", i+1,
			"seed", seed,
			"score", res.Stats.Score,
			"lines", res.Stats.Lines,
			"pieces", res.Stats.PiecesPlaced,
			"level", res.Stats.Level,
			"game_over", res.GameOver,
			"duration", res.Duration.Round(time.Millisecond),
		)

		if rec != nil {
			if err := rec.Record(res); err != nil {
				logger.Warn("could not record run", "seed", seed, "error", err)
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// Totals aggregates a set of results.
type Totals struct {
	Games     int
	GameOvers int
	BestScore int
	AvgScore  float64
	AvgLines  float64
	AvgPieces float64
}

// Summarize aggregates results.
func Summarize(results []Result) Totals {
	t := Totals{Games: len(results)}
	if t.Games == 0 {
		return t
	}
	var score, lines, pieces int
	for _, r := range results {
		if r.GameOver {
			t.GameOvers++
		}
		t.BestScore = max(t.BestScore, r.Stats.Score)
		score += r.Stats.Score
		lines += r.Stats.Lines
		pieces += r.Stats.PiecesPlaced
	}
	n := float64(t.Games)
	t.AvgScore = float64(score) / n
	t.AvgLines = float64(lines) / n
	t.AvgPieces = float64(pieces) / n
	return t
}
