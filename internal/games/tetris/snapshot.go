package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot is a read-only copy of a session, for rendering and for
// determinism checks.
type Snapshot struct {
	Board     [][]core.Color
	Current   Piece
	Next      Piece
	Stats     Stats
	Automated bool
}

// Snapshot captures the session state. The result shares no memory with s.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:     s.board.Rows(),
		Current:   s.current.Clone(),
		Next:      s.next.Clone(),
		Stats:     s.stats,
		Automated: s.automated,
	}
}
