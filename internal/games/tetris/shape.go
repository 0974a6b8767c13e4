// Package tetris implements a falling-block puzzle engine with a greedy
// automated player. Session holds all game state; Game adapts it to the
// platform's fixed-rate frame loop.
package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every tetromino kind in table order.
var Kinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

var kindNames = [...]string{"I", "J", "L", "O", "S", "T", "Z"}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

// Shape is an occupancy matrix indexed [row][col].
type Shape [][]bool

// shapeTable holds the spawn orientation of each kind. Never mutated:
// callers get copies through Kind.Shape.
var shapeTable = [...]Shape{
	KindI: parseShape("####"),
	KindJ: parseShape("#..", "###"),
	KindL: parseShape("..#", "###"),
	KindO: parseShape("##", "##"),
	KindS: parseShape(".##", "##."),
	KindT: parseShape(".#.", "###"),
	KindZ: parseShape("##.", ".##"),
}

var kindColors = [...]core.Color{
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorYellow,
	KindS: core.ColorGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
}

// Shape returns a fresh copy of the kind's spawn orientation.
func (k Kind) Shape() Shape {
	return shapeTable[k].Clone()
}

// Color returns the fixed display color of the kind.
func (k Kind) Color() core.Color {
	return kindColors[k]
}

// parseShape builds a shape from rows where '#' marks an occupied cell.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]bool(nil), s[y]...)
	}
	return c
}

// Equal reports whether both shapes have the same extents and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Occupied returns the number of occupied cells.
func (s Shape) Occupied() int {
	n := 0
	for _, row := range s {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

// String renders the shape with '#' and '.', one row per line.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Rotate returns the shape turned 90 degrees clockwise: row i of the result
// is column i of s read bottom to top. A W×H shape becomes H×W.
func Rotate(s Shape) Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for i := 0; i < w; i++ {
		r[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			r[i][j] = s[h-1-j][i]
		}
	}
	return r
}
