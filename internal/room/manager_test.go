package room

import (
	"errors"
	"testing"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/config"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/game"
)

type fakeStore struct {
	rooms map[string]*Room
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: map[string]*Room{}}
}

func (s *fakeStore) GetRoom(code string) (*Room, bool) {
	r, ok := s.rooms[code]
	return r, ok
}

func (s *fakeStore) SaveRoom(r *Room) { s.rooms[r.Code] = r }

type nopHub struct{}

func (nopHub) Broadcast(string, string, interface{}) {}

func newTestManager(size int) *Manager {
	return NewManager(newFakeStore(), config.Config{BoardSize: size}, nopHub{})
}

func startedRoom(t *testing.T, m *Manager) (*Room, *Player, *Player) {
	t.Helper()
	r := m.CreateRoom("alice")
	_, pb, err := m.Join(r.Code, "bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	return r, &r.Players[0], pb
}

func TestCreateRoomAndJoin(t *testing.T) {
	m := newTestManager(3)
	r := m.CreateRoom("alice")
	if len(r.Code) != 6 {
		t.Fatalf("room code %q", r.Code)
	}
	if r.Status != StatusLobby || r.Players[0].Team != game.TeamA {
		t.Fatalf("room = %+v", r)
	}

	_, pb, err := m.Join(r.Code, "bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if pb.Team != game.TeamB || r.Status != StatusPlaying {
		t.Fatalf("after join: player=%+v status=%s", pb, r.Status)
	}

	if _, _, err := m.Join(r.Code, "carol"); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("third join: got %v", err)
	}
	if _, _, err := m.Join("NOPE42", "dave"); err == nil {
		t.Fatal("joining a missing room must fail")
	}
}

func TestTakeTurnGuards(t *testing.T) {
	m := newTestManager(3)
	r := m.CreateRoom("alice")
	alice := r.Players[0]

	if _, err := m.TakeTurn(r, alice.ID, 0, 0, nil); !errors.Is(err, ErrNotPlaying) {
		t.Fatalf("lobby turn: got %v", err)
	}

	r2, _, bob := startedRoom(t, m)
	if _, err := m.TakeTurn(r2, bob.ID, 0, 0, nil); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("out of turn: got %v", err)
	}
	if _, err := m.TakeTurn(r2, "ghost", 0, 0, nil); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("unknown player: got %v", err)
	}
}

func TestTakeTurnPlacesResolvesAndAdvances(t *testing.T) {
	m := newTestManager(3)
	r, alice, bob := startedRoom(t, m)

	res, err := m.TakeTurn(r, alice.ID, 0, 0, []game.Position{{Row: 0, Col: 1}})
	if err != nil {
		t.Fatalf("turn: %v", err)
	}
	if len(res.Moves) != 1 {
		t.Fatalf("result = %+v", res)
	}
	pc, ok := r.Board.PieceAt(game.Position{Row: 0, Col: 1})
	if !ok || pc.Team != game.TeamA {
		t.Fatal("piece should have stepped to (0,1) during resolution")
	}
	if r.TurnCount != 1 {
		t.Fatalf("turn count = %d", r.TurnCount)
	}

	if _, err := m.TakeTurn(r, alice.ID, 2, 2, nil); !errors.Is(err, ErrNotYourTurn) {
		t.Fatal("turn must have passed to bob")
	}
	if _, err := m.TakeTurn(r, bob.ID, 2, 2, nil); err != nil {
		t.Fatalf("bob's turn: %v", err)
	}
}

func TestTakeTurnRejectsTooManyPremoves(t *testing.T) {
	m := newTestManager(3) // cap 1
	r, alice, _ := startedRoom(t, m)
	_, err := m.TakeTurn(r, alice.ID, 0, 0, []game.Position{{Row: 0, Col: 1}, {Row: 0, Col: 2}})
	if !errors.Is(err, ErrTooManySteps) {
		t.Fatalf("got %v", err)
	}
	if r.Board.IsOccupied(game.Position{Row: 0, Col: 0}) {
		t.Fatal("nothing should have been placed")
	}
}

func TestTakeTurnRollsBackOnBadPremove(t *testing.T) {
	m := newTestManager(3)
	r, alice, _ := startedRoom(t, m)

	_, err := m.TakeTurn(r, alice.ID, 0, 0, []game.Position{{Row: 2, Col: 2}})
	if !errors.Is(err, game.ErrNotAdjacent) {
		t.Fatalf("got %v", err)
	}
	if r.Board.IsOccupied(game.Position{Row: 0, Col: 0}) {
		t.Fatal("placement must be rolled back on a rejected premove")
	}
	if r.TurnCount != 0 {
		t.Fatal("a failed turn must not advance the game")
	}

	// The same player retries with valid input.
	if _, err := m.TakeTurn(r, alice.ID, 0, 0, nil); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestTakeTurnDetectsWin(t *testing.T) {
	m := newTestManager(3)
	r, alice, bob := startedRoom(t, m)

	turns := []struct {
		player *Player
		row    int
		col    int
	}{
		{alice, 0, 0},
		{bob, 1, 0},
		{alice, 0, 1},
		{bob, 1, 1},
		{alice, 0, 2}, // completes the top row
	}
	for _, tt := range turns {
		if _, err := m.TakeTurn(r, tt.player.ID, tt.row, tt.col, nil); err != nil {
			t.Fatalf("turn (%d,%d): %v", tt.row, tt.col, err)
		}
	}

	if r.Status != StatusFinished {
		t.Fatalf("status = %s", r.Status)
	}
	if r.WinnerID == nil || *r.WinnerID != alice.ID {
		t.Fatalf("winner = %v", r.WinnerID)
	}
	if len(r.WinCells) != 3 {
		t.Fatalf("winning cells = %v", r.WinCells)
	}
	if _, err := m.TakeTurn(r, bob.ID, 2, 2, nil); !errors.Is(err, ErrNotPlaying) {
		t.Fatal("finished room must reject turns")
	}
}

func TestResetClearsBoardAndOutcome(t *testing.T) {
	m := newTestManager(3)
	r, alice, _ := startedRoom(t, m)
	if _, err := m.TakeTurn(r, alice.ID, 1, 1, nil); err != nil {
		t.Fatalf("turn: %v", err)
	}

	m.Reset(r)

	if len(r.Board.Pieces()) != 0 || r.TurnCount != 0 || r.TurnIdx != 0 {
		t.Fatalf("room not reset: %+v", r)
	}
	if r.Status != StatusPlaying {
		t.Fatalf("status = %s, want playing with both players present", r.Status)
	}
	if r.LastResult != nil || r.WinnerID != nil || r.Draw {
		t.Fatal("outcome fields must be cleared")
	}
}
