package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseIntervalMS: 1000,
		},
		Scoring: ScoringConfig{
			LinePoints:     100,
			LevelThreshold: 1000,
		},
		Autoplay: AutoplayConfig{
			StartEnabled: false,
			MaxPieces:    5000,
		},
	}
}
