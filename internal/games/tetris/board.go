package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Empty marks a cell with nothing settled in it.
const Empty = core.ColorDefault

// Board is the fixed-size grid of settled cells, indexed [row][col] with
// row 0 at the top. Dimensions never change after creation.
type Board struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]core.Color, height)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// NewBoardFromRows builds a board from text rows, top row first.
// '.' is empty, a tetromino letter settles in that kind's color and any
// other rune settles in gray. All rows must have the same length.
func NewBoardFromRows(rows ...string) *Board {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	b := NewBoard(width, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			b.cells[y][x] = cellColor(ch)
		}
	}
	return b
}

func cellColor(ch rune) core.Color {
	if ch == '.' {
		return Empty
	}
	for _, k := range Kinds {
		if k.String() == string(ch) {
			return k.Color()
		}
	}
	return core.ColorGray
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Cell returns the color at (x, y), or Empty when out of bounds.
func (b *Board) Cell(x, y int) core.Color {
	if !b.inBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsValidPlacement reports whether every occupied cell of p, offset by
// (x, y), lies inside the board on an empty cell. Unoccupied shape cells
// are unconstrained and may hang outside the board or over settled cells.
func (b *Board) IsValidPlacement(p Piece, x, y int) bool {
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			ax, ay := x+dx, y+dy
			if !b.inBounds(ax, ay) || b.cells[ay][ax] != Empty {
				return false
			}
		}
	}
	return true
}

// Merge writes p's color into every cell it occupies at its own offset.
// No bounds checking: only merge pieces that pass IsValidPlacement.
func (b *Board) Merge(p Piece) {
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				b.cells[p.Y+dy][p.X+dx] = p.Color
			}
		}
	}
}

// ClearFullLines removes every full row, shifting the rows above it down
// and inserting an empty row at the top. The scan runs bottom to top and
// re-examines an index after clearing it, so stacked full rows are all
// removed in one call. Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		removed := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		clear(removed)
		b.cells[0] = removed
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// FullRowCount returns the number of full rows without clearing them.
func (b *Board) FullRowCount() int {
	n := 0
	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			n++
		}
	}
	return n
}

// ColumnHeights returns, per column, height minus the row index of its
// topmost filled cell; 0 for an empty column.
func (b *Board) ColumnHeights() []int {
	heights := make([]int, b.width)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.cells[y][x] != Empty {
				heights[x] = b.height - y
				break
			}
		}
	}
	return heights
}

// FilledCells returns the number of non-empty cells.
func (b *Board) FilledCells() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy sharing no rows with b.
func (b *Board) Clone() *Board {
	c := &Board{width: b.width, height: b.height}
	c.cells = make([][]core.Color, b.height)
	for y, row := range b.cells {
		c.cells[y] = append([]core.Color(nil), row...)
	}
	return c
}

// Rows returns a copy of the grid for read-only consumers.
func (b *Board) Rows() [][]core.Color {
	return b.Clone().cells
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.cells {
		clear(row)
	}
}

// String renders the board with '.' for empty and '#' for filled cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
