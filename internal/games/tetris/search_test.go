package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMoveEmptyBoardPicksFirstColumn(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 10)

	move, ok := BestMove(b, p)

	require.True(t, ok)
	assert.Equal(t, 0, move.Rotation)
	assert.Equal(t, 0, move.X)
	// Lands on row 18 next to one empty neighbour column.
	assert.InDelta(t, 18*0.5-2*0.2, move.Score, 1e-9)
}

func TestBestMoveFillsWell(t *testing.T) {
	b := NewBoardFromRows(
		"....",
		"....",
		"###.",
		"###.",
		"###.",
		"###.",
	)
	p := NewPiece(KindI, 4)

	move, ok := BestMove(b, p)

	require.True(t, ok)
	assert.Equal(t, 1, move.Rotation)
	assert.Equal(t, 3, move.X)
	assert.InDelta(t, 2*0.5+4*0.7, move.Score, 1e-9)
}

func TestBestMoveDoesNotMutate(t *testing.T) {
	b := NewBoardFromRows(
		"......",
		"......",
		"#..#..",
		"##.##.",
	)
	p := NewPiece(KindT, 6)
	boardBefore := b.String()
	pieceBefore := p.Clone()

	_, ok := BestMove(b, p)

	require.True(t, ok)
	assert.Equal(t, boardBefore, b.String())
	assert.Equal(t, pieceBefore, p)
}

func TestBestMoveNoLegalPlacement(t *testing.T) {
	b := NewBoard(1, 5)
	p := NewPiece(KindO, 1)

	_, ok := BestMove(b, p)

	assert.False(t, ok)
}

func TestBestMoveMatchesEvaluate(t *testing.T) {
	b := NewBoardFromRows(
		".....",
		".....",
		"#....",
		"##.#.",
	)
	p := NewPiece(KindL, 5)

	move, ok := BestMove(b, p)
	require.True(t, ok)

	placed := p.Clone()
	for i := 0; i < move.Rotation; i++ {
		placed = placed.Rotated()
	}
	placed.X = move.X
	placed.Y = dropRow(b, placed, placed.X, 0)
	scratch := b.Clone()
	scratch.Merge(placed)

	assert.InDelta(t, Evaluate(scratch, placed.Y), move.Score, 1e-9)
}

func TestDropRow(t *testing.T) {
	b := NewBoardFromRows(
		"....",
		"....",
		"....",
		".#..",
	)
	o := NewPiece(KindO, 4)

	assert.Equal(t, 1, dropRow(b, o, 1, 0))
	assert.Equal(t, 2, dropRow(b, o, 2, 0))
	assert.Equal(t, 2, dropRow(b, o, 2, 2))
}
