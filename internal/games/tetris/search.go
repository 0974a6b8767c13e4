package tetris

import "math"

// Move is a placement chosen by the search: how many clockwise turns to
// apply to the piece and the column offset to drop it from.
type Move struct {
	Rotation int
	X        int
	Score    float64
}

// BestMove enumerates every rotation (0-3) and every start column where the
// rotated piece is valid at row 0, simulates a hard drop on a scratch copy
// of board, and returns the placement with the highest Evaluate score.
// Ties go to the first candidate in rotation-then-column order. ok is false
// when no placement is legal. Neither board nor p is modified.
func BestMove(board *Board, p Piece) (best Move, ok bool) {
	best.Score = math.Inf(-1)

	candidate := p.Clone()
	for rotation := 0; rotation < 4; rotation++ {
		if rotation > 0 {
			candidate = candidate.Rotated()
		}

		half := candidate.Shape.Width() / 2
		for x := -half; x < board.Width()-half; x++ {
			if !board.IsValidPlacement(candidate, x, 0) {
				continue
			}

			candidate.X = x
			candidate.Y = dropRow(board, candidate, x, 0)

			scratch := board.Clone()
			scratch.Merge(candidate)

			score := Evaluate(scratch, candidate.Y)
			if score > best.Score {
				best = Move{Rotation: rotation, X: x, Score: score}
				ok = true
			}
		}
	}

	return best, ok
}

// dropRow returns the lowest row reachable by moving p straight down from
// (x, y) on board.
func dropRow(board *Board, p Piece, x, y int) int {
	for board.IsValidPlacement(p, x, y+1) {
		y++
	}
	return y
}
