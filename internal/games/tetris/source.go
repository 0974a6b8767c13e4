package tetris

import "math/rand"

// PieceSource supplies the kind of every spawned piece.
type PieceSource interface {
	Next() Kind
}

// RandomSource draws kinds uniformly at random.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a seeded uniform source.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen kind.
func (r *RandomSource) Next() Kind {
	return Kinds[r.rng.Intn(len(Kinds))]
}

// SequenceSource replays a fixed list of kinds, starting over when exhausted.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource creates a source cycling through kinds.
// An empty list yields KindO forever.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		kinds = []Kind{KindO}
	}
	return &SequenceSource{kinds: kinds}
}

// Next returns the next kind in the sequence.
func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
