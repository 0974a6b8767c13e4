package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// gameOverBannerDuration is how long the game over message stays up.
const gameOverBannerDuration = 2 * time.Second

// LevelInterval returns the engine tick interval at a level: base/level.
func LevelInterval(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return base / time.Duration(level)
}

// Game adapts a Session to the platform's fixed-rate frame loop. It is the
// scheduler (one engine tick every LevelInterval) and the input adapter
// (actions become manual moves, or are dropped during automated play).
type Game struct {
	startAutomated bool
	settings       config.TetrisConfig
	session        *Session
	tickRate       int

	// frames counts platform frames since the last engine tick. Zeroing it
	// cancels the pending tick.
	frames int

	paused       bool
	gameOver     bool // Set for the single frame on which a game ended
	bannerFrames int
	lastGame     Stats
	gamesPlayed  int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game that starts under manual control.
func New() *Game {
	return &Game{settings: config.DefaultTetrisConfig()}
}

// NewAutomated creates a game that starts with the automated player on.
func NewAutomated() *Game {
	return &Game{settings: config.DefaultTetrisConfig(), startAutomated: true}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_ai", func() registry.Game {
		return NewAutomated()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.startAutomated {
		return "tetris_ai"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.startAutomated {
		return "Tetris (Automated)"
	}
	return "Tetris"
}

// Configure applies loaded settings. Takes effect on the next Reset.
func (g *Game) Configure(cfg config.TetrisConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.settings = cfg
	if cfg.Autoplay.StartEnabled {
		g.startAutomated = true
	}
	return nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.session = NewSession(
		WithBoardSize(g.settings.Board.Width, g.settings.Board.Height),
		WithSeed(cfg.Seed),
		WithRules(Rules{
			LinePoints:     g.settings.Scoring.LinePoints,
			LevelThreshold: g.settings.Scoring.LevelThreshold,
		}),
		WithAutomatedPlay(g.startAutomated),
	)

	g.frames = 0
	g.paused = false
	g.gameOver = false
	g.bannerFrames = 0
	g.lastGame = Stats{}
	g.gamesPlayed = 0

	g.checkScreenSize()
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Session exposes the underlying engine.
func (g *Game) Session() *Session {
	return g.session
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.settings.Board.Width, g.settings.Board.Height)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// framesPerTick converts the level interval to platform frames, at least 1.
func (g *Game) framesPerTick() int {
	interval := LevelInterval(g.settings.BaseInterval(), g.session.Level())
	n := int(interval * time.Duration(g.tickRate) / time.Second)
	return max(n, 1)
}

// restartTimer cancels the pending engine tick and starts a fresh interval.
func (g *Game) restartTimer() {
	g.frames = 0
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.gameOver = false
	if g.bannerFrames > 0 {
		g.bannerFrames--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		g.apply(a)
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	if g.frames >= g.framesPerTick() {
		g.frames = 0
		g.observe(g.session.Tick(g.session.Mode()))
	}

	return core.StepResult{State: g.State()}
}

// apply routes one input action to the session.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.paused = !g.paused
		return
	case core.ActionRestart:
		g.session.Reset()
		g.paused = false
		g.restartTimer()
		return
	case core.ActionToggleAI:
		g.session.ToggleAutomatedPlay()
		g.restartTimer()
		return
	}

	if g.paused {
		return
	}

	switch a {
	case core.ActionLeft:
		g.session.MoveHorizontal(Left)
	case core.ActionRight:
		g.session.MoveHorizontal(Right)
	case core.ActionSoftDrop:
		g.session.SoftDrop()
	case core.ActionRotate:
		g.session.Rotate()
	case core.ActionHardDrop:
		g.observe(g.session.HardDrop())
	}
}

// observe records the outcome of an engine tick.
func (g *Game) observe(res StepResult) {
	if !res.GameOver {
		return
	}
	g.gameOver = true
	g.gamesPlayed++
	g.lastGame = res.Final
	g.bannerFrames = int(gameOverBannerDuration * time.Duration(g.tickRate) / time.Second)
	g.restartTimer()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		Level:     g.session.Level(),
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
		Automated: g.session.Automated(),
	}
}

// LastGame returns the final stats of the most recent finished game and
// whether any game has finished yet.
func (g *Game) LastGame() (Stats, bool) {
	return g.lastGame, g.gamesPlayed > 0
}
