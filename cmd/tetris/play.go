package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var flagAI bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tetris).

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Space            - Hard drop
  Tab              - Toggle the automated player
  P/Esc            - Pause
  R                - Restart
  ?                - More keys
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play tetris_ai
  tetris play --ai --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAI, "ai", false, "Start with the automated player on")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagAI {
		gameID = "tetris_ai"
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see available modes", gameID)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	return playGame(gameID, settings, runtimeConfig())
}

// playGame creates, configures and runs one game until the user quits.
func playGame(gameID string, settings config.TetrisConfig, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(settings); err != nil {
			return fmt.Errorf("configure %s: %w", gameID, err)
		}
	}

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	return nil
}
