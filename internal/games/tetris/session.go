package tetris

import "time"

// Mode selects which driver a scheduler tick runs.
type Mode int

const (
	ModeGravity   Mode = iota // One gravity step of the falling piece
	ModeAutomated             // Search, place and lock the falling piece
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeAutomated {
		return "automated"
	}
	return "gravity"
}

// Direction is a horizontal shift.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Rules holds the scoring constants.
type Rules struct {
	LinePoints     int // Points per cleared line, multiplied by level
	LevelThreshold int // Level L ends once score reaches L*LevelThreshold
}

// DefaultRules returns the standard scoring constants.
func DefaultRules() Rules {
	return Rules{LinePoints: 100, LevelThreshold: 1000}
}

// Stats summarizes a game in progress.
type Stats struct {
	Score        int
	Level        int
	Lines        int
	PiecesPlaced int
}

// StepResult describes what a tick did.
type StepResult struct {
	Landed       bool // The piece merged into the board
	LinesCleared int
	ScoreGained  int
	LeveledUp    bool
	// GameOver is set when the next piece could not spawn. The session has
	// already been reset; Final holds the stats of the game that ended.
	GameOver bool
	Final    Stats
}

// Session is one player's complete game state. It holds no timers: an
// external scheduler calls Tick (or Step) and the input layer calls the
// manual moves. Not safe for concurrent use.
type Session struct {
	board     *Board
	source    PieceSource
	rules     Rules
	current   Piece
	next      Piece
	stats     Stats
	automated bool
}

// Option configures a Session.
type Option func(*Session)

// WithBoardSize sets the playfield dimensions.
func WithBoardSize(width, height int) Option {
	return func(s *Session) {
		s.board = NewBoard(width, height)
	}
}

// WithBoard starts the session on an existing board (used for fixtures).
func WithBoard(b *Board) Option {
	return func(s *Session) {
		s.board = b
	}
}

// WithSource sets where spawned piece kinds come from.
func WithSource(src PieceSource) Option {
	return func(s *Session) {
		s.source = src
	}
}

// WithSeed uses a seeded uniform random source.
func WithSeed(seed int64) Option {
	return WithSource(NewRandomSource(seed))
}

// WithRules overrides the scoring constants.
func WithRules(r Rules) Option {
	return func(s *Session) {
		s.rules = r
	}
}

// WithAutomatedPlay sets the initial automated-play flag.
func WithAutomatedPlay(enabled bool) Option {
	return func(s *Session) {
		s.automated = enabled
	}
}

// NewSession creates a session with the current and next pieces spawned,
// score 0 and level 1.
func NewSession(opts ...Option) *Session {
	s := &Session{rules: DefaultRules()}
	for _, opt := range opts {
		opt(s)
	}
	if s.board == nil {
		s.board = NewBoard(DefaultWidth, DefaultHeight)
	}
	if s.source == nil {
		s.source = NewRandomSource(time.Now().UnixNano())
	}
	s.stats = Stats{Level: 1}
	s.current = s.spawn()
	s.next = s.spawn()
	return s
}

// Reset starts a new game on the same session: empty board, score 0,
// level 1 and a fresh current/next pair. The automated-play flag is kept.
func (s *Session) Reset() {
	s.board.Reset()
	s.stats = Stats{Level: 1}
	s.current = s.spawn()
	s.next = s.spawn()
}

func (s *Session) spawn() Piece {
	return NewPiece(s.source.Next(), s.board.Width())
}

// Board returns the live board. Callers must treat it as read-only.
func (s *Session) Board() *Board { return s.board }

// Current returns a copy of the falling piece.
func (s *Session) Current() Piece { return s.current.Clone() }

// Next returns a copy of the queued piece.
func (s *Session) Next() Piece { return s.next.Clone() }

// Score returns the current score.
func (s *Session) Score() int { return s.stats.Score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.stats.Level }

// Stats returns the running totals of the current game.
func (s *Session) Stats() Stats { return s.stats }

// Automated reports whether the automated player is driving.
func (s *Session) Automated() bool { return s.automated }

// SetAutomatedPlay switches between manual and automated play.
func (s *Session) SetAutomatedPlay(enabled bool) {
	s.automated = enabled
}

// ToggleAutomatedPlay flips the automated-play flag and returns the new value.
func (s *Session) ToggleAutomatedPlay() bool {
	s.automated = !s.automated
	return s.automated
}

// Mode returns the driver a scheduler should tick with.
func (s *Session) Mode() Mode {
	if s.automated {
		return ModeAutomated
	}
	return ModeGravity
}

// Tick runs one scheduler tick in the given mode.
func (s *Session) Tick(mode Mode) StepResult {
	if mode == ModeAutomated {
		return s.AutoMove()
	}
	return s.Step()
}

// Step is one gravity tick. The falling piece moves down a row if it can;
// otherwise it is merged, full lines are cleared and scored, and the queued
// piece takes its place. If that piece cannot be placed at its spawn cell
// the game is over and the session resets itself.
func (s *Session) Step() StepResult {
	if s.valid(s.current, s.current.X, s.current.Y+1) {
		s.current.Y++
		return StepResult{}
	}
	return s.land()
}

func (s *Session) land() StepResult {
	s.board.Merge(s.current)
	s.stats.PiecesPlaced++

	res := StepResult{Landed: true}
	res.LinesCleared = s.board.ClearFullLines()
	if res.LinesCleared > 0 {
		res.ScoreGained = res.LinesCleared * s.rules.LinePoints * s.stats.Level
		s.stats.Score += res.ScoreGained
		s.stats.Lines += res.LinesCleared
		if s.stats.Score >= s.stats.Level*s.rules.LevelThreshold {
			s.stats.Level++
			res.LeveledUp = true
		}
	}

	s.current = s.next
	s.next = s.spawn()

	if !s.valid(s.current, s.current.X, s.current.Y) {
		res.GameOver = true
		res.Final = s.stats
		s.Reset()
	}
	return res
}

func (s *Session) valid(p Piece, x, y int) bool {
	return s.board.IsValidPlacement(p, x, y)
}

// MoveHorizontal shifts the falling piece one column if the new position
// is valid. Ignored during automated play.
func (s *Session) MoveHorizontal(dir Direction) bool {
	if s.automated {
		return false
	}
	x := s.current.X + int(dir)
	if !s.valid(s.current, x, s.current.Y) {
		return false
	}
	s.current.X = x
	return true
}

// SoftDrop moves the falling piece down one row if it can. It never locks
// the piece. Ignored during automated play.
func (s *Session) SoftDrop() bool {
	if s.automated {
		return false
	}
	if !s.valid(s.current, s.current.X, s.current.Y+1) {
		return false
	}
	s.current.Y++
	return true
}

// HardDrop moves the falling piece as far down as it goes and locks it with
// an immediate Step. Ignored during automated play.
func (s *Session) HardDrop() StepResult {
	if s.automated {
		return StepResult{}
	}
	s.dropCurrent()
	return s.Step()
}

func (s *Session) dropCurrent() {
	s.current.Y = dropRow(s.board, s.current, s.current.X, s.current.Y)
}

// Rotate turns the falling piece clockwise in place, keeping the rotation
// only if the result is valid at the same offset. Ignored during automated
// play.
func (s *Session) Rotate() bool {
	if s.automated {
		return false
	}
	rotated := s.current.Rotated()
	if !s.valid(rotated, rotated.X, rotated.Y) {
		return false
	}
	s.current = rotated
	return true
}

// AutoMove is the automated player's tick: it asks BestMove for a
// placement, applies it to the falling piece when that placement is valid
// where the piece currently is, then drops and locks the piece.
// Does nothing when automated play is off.
func (s *Session) AutoMove() StepResult {
	if !s.automated {
		return StepResult{}
	}

	if move, ok := BestMove(s.board, s.current); ok {
		placed := s.current.Clone()
		for i := 0; i < move.Rotation; i++ {
			placed = placed.Rotated()
		}
		placed.X = move.X
		if s.valid(placed, placed.X, placed.Y) {
			s.current = placed
		}
	}

	s.dropCurrent()
	return s.Step()
}
