package room

import (
	"math/rand"
	"time"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/game"
)

// Room statuses.
const (
	StatusLobby    = "lobby"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

type Player struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Team game.Team `json:"team"`
}

// Room is one match: a board, up to two players and the turn state.
type Room struct {
	Code       string                 `json:"code"`
	Board      *game.Board            `json:"board"`
	Players    []Player               `json:"players"`
	TurnIdx    int                    `json:"turnIdx"`
	TurnCount  int                    `json:"turnCount"`
	WinnerID   *string                `json:"winnerId,omitempty"`
	WinCells   []game.Position        `json:"winCells,omitempty"`
	Draw       bool                   `json:"draw"`
	Status     string                 `json:"status"`
	CreatedAt  time.Time              `json:"createdAt"`
	LastResult *game.ResolutionResult `json:"lastResult,omitempty"`
}

// Store abstracts room persistence.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
