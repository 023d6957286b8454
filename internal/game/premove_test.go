package game

import "testing"

func TestSessionBeginRequiresPiece(t *testing.T) {
	b := NewBoard(3)
	s := NewSession(b)
	if err := s.Begin(7); err != ErrNoSuchPiece {
		t.Fatalf("got %v, want ErrNoSuchPiece", err)
	}
	if err := s.Target(Position{0, 0}); err != ErrNoActiveSession {
		t.Fatalf("target without session: got %v", err)
	}
}

func TestSessionQueuesRelativeToProjectedPosition(t *testing.T) {
	b := NewBoard(4) // cap 2
	pc := mustPlace(t, b, 0, 0, TeamA)
	s := NewSession(b)
	if err := s.Begin(pc.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := s.Target(Position{0, 1}); err != nil {
		t.Fatalf("first target: %v", err)
	}
	if s.Projected() != (Position{0, 1}) {
		t.Fatalf("projected = %v", s.Projected())
	}
	// The second click is adjacent to the projected cell, not to the
	// piece's actual position.
	if err := s.Target(Position{1, 2}); err != nil {
		t.Fatalf("second target: %v", err)
	}

	qs := b.QueuedPremoves(TeamA)
	if len(qs) != 1 {
		t.Fatalf("queues = %+v", qs)
	}
	want := []Direction{DirRight, DirDownRight}
	if len(qs[0].Directions) != 2 || qs[0].Directions[0] != want[0] || qs[0].Directions[1] != want[1] {
		t.Fatalf("directions = %v, want %v", qs[0].Directions, want)
	}
	if pc.Pos != (Position{0, 0}) {
		t.Fatal("queuing must not move the piece")
	}
}

func TestSessionRejectsBadTargets(t *testing.T) {
	b := NewBoard(4)
	pc := mustPlace(t, b, 1, 1, TeamA)
	s := NewSession(b)
	if err := s.Begin(pc.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := s.Target(Position{3, 3}); err != ErrNotAdjacent {
		t.Fatalf("non-adjacent: got %v", err)
	}
	if err := s.Target(Position{1, 1}); err != ErrNotAdjacent {
		t.Fatalf("same cell: got %v", err)
	}
	if err := s.Target(Position{-1, 1}); err != ErrOutOfBounds {
		t.Fatalf("out of bounds: got %v", err)
	}
	// Rejected input leaves prior state untouched.
	if s.Depth() != 0 || b.QueueDepth(pc.ID) != 0 {
		t.Fatalf("state changed on rejection: depth=%d queue=%d", s.Depth(), b.QueueDepth(pc.ID))
	}
}

func TestSessionEndsAtCap(t *testing.T) {
	b := NewBoard(4) // cap 2
	pc := mustPlace(t, b, 0, 0, TeamA)
	s := NewSession(b)
	if err := s.Begin(pc.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := s.Target(Position{0, 1}); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if !s.Active() {
		t.Fatal("session ended early")
	}
	if err := s.Target(Position{0, 2}); err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if s.Active() {
		t.Fatal("session must end at the cap")
	}
	if err := s.Target(Position{0, 3}); err != ErrNoActiveSession {
		t.Fatalf("after cap: got %v", err)
	}
	if b.QueueDepth(pc.ID) != 2 {
		t.Fatalf("queue depth = %d", b.QueueDepth(pc.ID))
	}
}

func TestSessionEndKeepsQueued(t *testing.T) {
	b := NewBoard(5) // cap 3
	pc := mustPlace(t, b, 2, 2, TeamA)
	s := NewSession(b)
	if err := s.Begin(pc.ID); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.Target(Position{2, 3}); err != nil {
		t.Fatalf("target: %v", err)
	}
	s.End()
	if s.Active() {
		t.Fatal("still active after End")
	}
	if b.QueueDepth(pc.ID) != 1 {
		t.Fatalf("queue depth = %d, want 1", b.QueueDepth(pc.ID))
	}
}
