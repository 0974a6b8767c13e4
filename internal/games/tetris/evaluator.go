package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Weights scales each board feature in the placement score.
type Weights struct {
	LandingHeight float64
	RowsCleared   float64
	Holes         float64
	Bumpiness     float64
}

// DefaultWeights are the fixed weights of the automated player.
var DefaultWeights = Weights{
	LandingHeight: 0.5,
	RowsCleared:   0.7,
	Holes:         -0.9,
	Bumpiness:     -0.2,
}

// Features are the raw measurements of a board after a hypothetical merge.
type Features struct {
	// LandingY is the row index the piece came to rest at. It is the raw
	// index, so deeper placements score higher with a positive weight.
	LandingY    int
	RowsCleared int
	Holes       int
	Bumpiness   int
}

// Measure extracts the features of board, on which a piece landed at row
// landingY and has been merged but no lines have been cleared yet.
func Measure(board *Board, landingY int) Features {
	return Features{
		LandingY:    landingY,
		RowsCleared: board.FullRowCount(),
		Holes:       Holes(board),
		Bumpiness:   Bumpiness(board),
	}
}

// Score returns the weighted sum of f.
func (w Weights) Score(f Features) float64 {
	return float64(f.LandingY)*w.LandingHeight +
		float64(f.RowsCleared)*w.RowsCleared +
		float64(f.Holes)*w.Holes +
		float64(f.Bumpiness)*w.Bumpiness
}

// Evaluate scores a hypothetical board with DefaultWeights.
func Evaluate(board *Board, landingY int) float64 {
	return DefaultWeights.Score(Measure(board, landingY))
}

// Holes counts empty cells that have a filled cell anywhere above them in
// the same column.
func Holes(board *Board) int {
	holes := 0
	for x := 0; x < board.Width(); x++ {
		covered := false
		for y := 0; y < board.Height(); y++ {
			switch {
			case board.Cell(x, y) != Empty:
				covered = true
			case covered:
				holes++
			}
		}
	}
	return holes
}

// Bumpiness sums the absolute height differences of adjacent columns.
func Bumpiness(board *Board) int {
	heights := board.ColumnHeights()
	sum := 0
	for x := 1; x < len(heights); x++ {
		sum += core.Abs(heights[x] - heights[x-1])
	}
	return sum
}
