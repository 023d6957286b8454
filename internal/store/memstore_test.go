package store

import (
	"testing"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/room"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	m := NewMemoryStore()
	if _, ok := m.GetRoom("ABCDEF"); ok {
		t.Fatal("empty store returned a room")
	}

	r := &room.Room{Code: "ABCDEF"}
	m.SaveRoom(r)

	got, ok := m.GetRoom("ABCDEF")
	if !ok || got != r {
		t.Fatalf("got %+v, ok=%v", got, ok)
	}

	// Saving again with the same code replaces the entry.
	r2 := &room.Room{Code: "ABCDEF"}
	m.SaveRoom(r2)
	if got, _ := m.GetRoom("ABCDEF"); got != r2 {
		t.Fatal("save did not replace the room")
	}
}
