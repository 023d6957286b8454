package http

import "github.com/Matthewweb42/Tic-Tac-Move/internal/game"

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest represents the payload for /join-room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// TurnRequest represents one full turn: the placement cell plus the
// premove targets clicked for the new piece, in order. Each target is
// adjacent to the piece's projected position after the prior targets.
type TurnRequest struct {
	RoomCode string          `json:"roomCode"`
	PlayerID string          `json:"playerId"`
	Row      int             `json:"row"`
	Col      int             `json:"col"`
	Premoves []game.Position `json:"premoves"`
}

// ResetRequest represents the payload for /reset.
type ResetRequest struct {
	RoomCode string `json:"roomCode"`
}
