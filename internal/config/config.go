// Package config provides YAML-based game configuration loading for the
// tetris platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all tunable settings of the game.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Autoplay AutoplayConfig `yaml:"autoplay"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity schedule.
type TimingConfig struct {
	// BaseIntervalMS is the tick interval at level 1. Level L ticks every
	// BaseIntervalMS/L milliseconds.
	BaseIntervalMS int `yaml:"base_interval_ms"`
}

// ScoringConfig defines points and level thresholds.
type ScoringConfig struct {
	LinePoints     int `yaml:"line_points"`
	LevelThreshold int `yaml:"level_threshold"`
}

// AutoplayConfig defines defaults for the automated player.
type AutoplayConfig struct {
	StartEnabled bool `yaml:"start_enabled"`
	MaxPieces    int  `yaml:"max_pieces"` // Piece cap per benchmark game, 0 = unlimited
}

// BaseInterval returns the level-1 tick interval.
func (c TetrisConfig) BaseInterval() time.Duration {
	return time.Duration(c.Timing.BaseIntervalMS) * time.Millisecond
}

// Validate reports settings the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width must be at least 4, got %d", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height must be at least 4, got %d", c.Board.Height))
	}
	if c.Timing.BaseIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.base_interval_ms must be positive, got %d", c.Timing.BaseIntervalMS))
	}
	if c.Scoring.LinePoints <= 0 {
		errs = append(errs, fmt.Errorf("scoring.line_points must be positive, got %d", c.Scoring.LinePoints))
	}
	if c.Scoring.LevelThreshold <= 0 {
		errs = append(errs, fmt.Errorf("scoring.level_threshold must be positive, got %d", c.Scoring.LevelThreshold))
	}
	if c.Autoplay.MaxPieces < 0 {
		errs = append(errs, fmt.Errorf("autoplay.max_pieces must not be negative, got %d", c.Autoplay.MaxPieces))
	}
	return errors.Join(errs...)
}
