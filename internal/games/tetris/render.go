package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2  // Each board cell is drawn two characters wide
	panelGap   = 2  // Space between the board frame and the side panel
	panelWidth = 16 // Width of the side panel
)

// layoutSize returns the screen size needed for a board of w×h cells.
func layoutSize(w, h int) (int, int) {
	return w*cellWidth + 2 + panelGap + panelWidth, h + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	boardW, boardH := len(snap.Board[0]), len(snap.Board)
	totalW, totalH := layoutSize(boardW, boardH)
	originX := (g.screenW - totalW) / 2
	originY := (g.screenH - totalH) / 2

	frame := core.NewRect(originX, originY, boardW*cellWidth+2, boardH+2)
	dst.DrawBox(frame)
	renderBoard(dst, snap, frame.X+1, frame.Y+1)

	g.renderPanel(dst, snap, frame.Right()+panelGap, frame.Y)
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws settled cells and the falling piece.
func renderBoard(dst *core.Screen, snap Snapshot, x0, y0 int) {
	for y, row := range snap.Board {
		for x, c := range row {
			drawCell(dst, x0+x*cellWidth, y0+y, c)
		}
	}
	for _, p := range snap.Current.Cells(snap.Current.X, snap.Current.Y) {
		drawCell(dst, x0+p.X*cellWidth, y0+p.Y, snap.Current.Color)
	}
}

func drawCell(dst *core.Screen, x, y int, c core.Color) {
	if c == Empty {
		dst.DrawTextColored(x, y, " .", core.ColorGray)
		return
	}
	dst.DrawTextColored(x, y, "[]", c)
}

// renderPanel draws the HUD and the next-piece preview.
func (g *Game) renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawText(x, y, "TETRIS")
	dst.DrawText(x, y+2, fmt.Sprintf("Score: %d", snap.Stats.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Level: %d", snap.Stats.Level))
	dst.DrawText(x, y+4, fmt.Sprintf("Lines: %d", snap.Stats.Lines))

	mode, modeColor := "Manual", core.ColorWhite
	if snap.Automated {
		mode, modeColor = "AI", core.ColorGreen
	}
	dst.DrawText(x, y+6, "Mode:")
	dst.DrawTextColored(x+6, y+6, mode, modeColor)

	dst.DrawText(x, y+8, "Next:")
	next := snap.Next
	for _, p := range next.Cells(0, 0) {
		drawCell(dst, x+p.X*cellWidth, y+9+p.Y, next.Color)
	}

	if last, ok := g.LastGame(); ok {
		dst.DrawText(x, y+13, fmt.Sprintf("Last: %d", last.Score))
		dst.DrawText(x, y+14, fmt.Sprintf("Games: %d", g.gamesPlayed))
	}
}

// renderOverlays draws pause and game over banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	midY := frame.Y + frame.H/2
	switch {
	case g.paused:
		drawBanner(dst, frame, midY, "PAUSED")
	case g.bannerFrames > 0:
		drawBanner(dst, frame, midY-1, "GAME OVER")
		drawBanner(dst, frame, midY, fmt.Sprintf("Score %d", g.lastGame.Score))
	}
}

func drawBanner(dst *core.Screen, frame core.Rect, y int, text string) {
	x := frame.X + (frame.W-len(text))/2
	dst.DrawTextColored(x, y, text, core.ColorYellow)
}
