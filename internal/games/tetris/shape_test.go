package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindShapes(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := kind.Shape()
			assert.Equal(t, 4, s.Occupied())
			assert.NotEqual(t, Empty, kind.Color())
		})
	}

	assert.Equal(t, "####", KindI.Shape().String())
	assert.Equal(t, "#..\n###", KindJ.Shape().String())
	assert.Equal(t, ".#.\n###", KindT.Shape().String())
	assert.Equal(t, "?", Kind(42).String())
}

func TestKindShapeReturnsCopy(t *testing.T) {
	s := KindO.Shape()
	s[0][0] = false

	assert.True(t, KindO.Shape()[0][0])
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := kind.Shape()
			r := Rotate(Rotate(Rotate(Rotate(s))))
			assert.True(t, r.Equal(s), "got\n%s\nexpected\n%s", r, s)
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindI, "#\n#\n#\n#"},
		{KindJ, "##\n#.\n#."},
		{KindL, "#.\n#.\n##"},
		{KindO, "##\n##"},
		{KindS, "#.\n##\n.#"},
		{KindT, "#.\n##\n#."},
		{KindZ, ".#\n##\n#."},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := tt.kind.Shape()
			r := Rotate(s)

			require.Equal(t, s.Width(), r.Height())
			require.Equal(t, s.Height(), r.Width())
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	s := KindL.Shape()
	_ = Rotate(s)

	assert.True(t, s.Equal(KindL.Shape()))
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, parseShape("#.", ".#").Equal(parseShape("#.", ".#")))
	assert.False(t, parseShape("#.", ".#").Equal(parseShape("#.", "#.")))
	assert.False(t, parseShape("##").Equal(parseShape("#", "#")))
	assert.Equal(t, 0, Shape(nil).Width())
}

func TestNewPieceSpawnsCentered(t *testing.T) {
	tests := []struct {
		kind  Kind
		width int
		wantX int
	}{
		{KindO, 10, 4},
		{KindI, 10, 3},
		{KindT, 10, 4},
		{KindO, 4, 1},
		{KindJ, 4, 1},
	}

	for _, tt := range tests {
		p := NewPiece(tt.kind, tt.width)
		assert.Equal(t, tt.wantX, p.X, "%s on width %d", tt.kind, tt.width)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, tt.kind.Color(), p.Color)
	}
}

func TestPieceCloneAndRotated(t *testing.T) {
	p := NewPiece(KindS, 10)
	c := p.Clone()
	c.Shape[0][0] = true
	assert.False(t, p.Shape[0][0], "clone shares shape memory")

	r := p.Rotated()
	assert.Equal(t, p.X, r.X)
	assert.Equal(t, p.Y, r.Y)
	assert.Equal(t, "#.\n##\n.#", r.Shape.String())
	assert.Equal(t, ".##\n##.", p.Shape.String())
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(KindT, 10)

	assert.Equal(t, []Point{{5, 2}, {4, 3}, {5, 3}, {6, 3}}, p.Cells(4, 2))
}

func TestSequenceSourceCycles(t *testing.T) {
	src := NewSequenceSource(KindI, KindO)

	got := []Kind{src.Next(), src.Next(), src.Next()}
	assert.Equal(t, []Kind{KindI, KindO, KindI}, got)

	assert.Equal(t, KindO, NewSequenceSource().Next())
}

func TestRandomSourceIsSeeded(t *testing.T) {
	a, b := NewRandomSource(42), NewRandomSource(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}
