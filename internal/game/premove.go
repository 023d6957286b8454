package game

// Session turns a stream of "select adjacent cell" inputs for one
// piece into queued directions on the board. Each accepted target is
// interpreted relative to the piece's projected position (where it
// will be after the steps queued so far), not where it currently sits.
//
// The session ends itself when the board's premove cap is reached; the
// caller ends it early with End on an explicit confirm/stay input.
type Session struct {
	board     *Board
	pieceID   int
	projected Position
	depth     int
	active    bool
}

// NewSession creates an idle session bound to a board.
func NewSession(b *Board) *Session {
	return &Session{board: b}
}

// Begin opens an input session for the given piece. Any previous
// session state is discarded.
func (s *Session) Begin(pieceID int) error {
	pc, ok := s.board.Piece(pieceID)
	if !ok {
		return ErrNoSuchPiece
	}
	s.pieceID = pieceID
	s.projected = pc.Pos
	s.depth = 0
	s.active = true
	return nil
}

// Active reports whether a session is open.
func (s *Session) Active() bool { return s.active }

// Depth returns how many directions this session has queued so far.
func (s *Session) Depth() int { return s.depth }

// Projected returns the piece's hypothetical position after all
// queued steps.
func (s *Session) Projected() Position { return s.projected }

// Target records a step toward the selected cell. The cell must be
// in bounds and adjacent to the projected position; rejected input
// leaves all prior state unchanged.
func (s *Session) Target(pos Position) error {
	if !s.active {
		return ErrNoActiveSession
	}
	if s.depth >= s.board.PremoveCap() {
		return ErrQueueFull
	}
	if !s.board.InBounds(pos) {
		return ErrOutOfBounds
	}
	dir, ok := DirectionBetween(s.projected, pos)
	if !ok {
		return ErrNotAdjacent
	}
	if err := s.board.SetQueuedDirection(s.pieceID, dir); err != nil {
		return err
	}
	s.projected = pos
	s.depth++
	if s.depth >= s.board.PremoveCap() {
		s.End()
	}
	return nil
}

// End closes the session, keeping whatever was queued.
func (s *Session) End() {
	s.active = false
}
