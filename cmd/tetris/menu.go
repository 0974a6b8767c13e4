package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/autoplay"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab to browse
recorded automated runs. Quitting a game returns to the menu.

Examples:
  tetris menu
  tetris menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// The menu works without a run log; the runs view then shows it empty.
	var runs tui.RunSource
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log", "path", flagDBPath, "error", err)
	} else {
		defer store.Close()
		runs = store
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsRuns {
			goBack, err := tui.RunRuns(runs, autoplay.GameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playGame(res.GameID, settings, cfg); err != nil {
			logger.Error("game failed", "mode", res.GameID, "error", err)
		}
	}
}
