package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a tetromino in a specific orientation at a board offset.
// The same type serves the live falling piece and the hypothetical pieces
// used by the move search; Clone before mutating a shared one.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// NewPiece creates a piece of the given kind in spawn position:
// horizontally centered on a board of the given width, at row 0.
func NewPiece(kind Kind, boardWidth int) Piece {
	shape := kind.Shape()
	return Piece{
		Kind:  kind,
		Shape: shape,
		Color: kind.Color(),
		X:     boardWidth/2 - shape.Width()/2,
		Y:     0,
	}
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Rotated returns a copy of p turned clockwise, keeping its offset.
func (p Piece) Rotated() Piece {
	p.Shape = Rotate(p.Shape)
	return p
}

// Cells returns the absolute board coordinates of the occupied cells
// when the piece sits at (x, y).
func (p Piece) Cells(x, y int) []Point {
	cells := make([]Point, 0, 4)
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				cells = append(cells, Point{X: x + dx, Y: y + dy})
			}
		}
	}
	return cells
}

// Point is a board coordinate; Y grows downward.
type Point struct {
	X, Y int
}
