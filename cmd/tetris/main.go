// tetris is a terminal falling-block puzzle with a built-in automated player.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play a mode (default: tetris)
//	tetris menu              - Start menu to pick a mode interactively
//	tetris bench             - Run headless automated games
//	tetris runs              - Show recorded automated runs
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible piece order
//	--db <path>      - Set run log path (default: ~/.tetris/runs.db)
//	--config <path>  - Use a custom settings YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with an automated player",
	Long: `Tetris is a terminal falling-block puzzle. Press Tab at any time to
hand the game to the automated player and back.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  bench    - Run headless automated games
  runs     - View recorded automated runs

Examples:
  tetris play
  tetris play --ai
  tetris bench --games 20 --record
  tetris runs`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/runs.db", "Path to the run log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom settings YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger returns the CLI logger.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
}

// loadSettings loads the settings YAML named by --config or found on the
// default search path.
func loadSettings() (config.TetrisConfig, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// runtimeConfig builds the platform config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
