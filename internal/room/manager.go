package room

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/config"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/game"
)

var (
	ErrRoomFull     = errors.New("room already has two players")
	ErrNotPlaying   = errors.New("room is not in a playing state")
	ErrNotYourTurn  = errors.New("not your turn or player invalid")
	ErrTooManySteps = errors.New("too many premove targets")
)

// Manager is the turn sequencer: it owns room lifecycle and drives the
// engine (placement, premove session, resolution, win check) for each
// turn.
type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// CreateRoom opens a lobby with the creator as team A.
func (m *Manager) CreateRoom(creatorName string) *Room {
	r := &Room{
		Code:      randCode(6),
		Board:     game.NewBoard(m.cfg.BoardSize),
		Status:    StatusLobby,
		CreatedAt: time.Now(),
		Players: []Player{
			{ID: uuid.NewString(), Name: creatorName, Team: game.TeamA},
		},
	}
	m.store.SaveRoom(r)
	return r
}

// Join adds the second player as team B and starts the match.
func (m *Manager) Join(code, name string) (*Room, *Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, errors.New("room not found")
	}
	if len(r.Players) >= 2 {
		return nil, nil, ErrRoomFull
	}
	p := Player{ID: uuid.NewString(), Name: name, Team: game.TeamB}
	r.Players = append(r.Players, p)
	r.Status = StatusPlaying
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "player-joined", map[string]interface{}{
		"room": r,
	})
	return r, &r.Players[len(r.Players)-1], nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) currentPlayer(r *Room) *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return &r.Players[r.TurnIdx%len(r.Players)]
}

// TakeTurn runs one full turn for a player: place a piece, queue its
// premoves via an input session, resolve the player's team and settle
// win/draw. Premove targets are board cells, each adjacent to the
// piece's projected position.
func (m *Manager) TakeTurn(r *Room, playerID string, row, col int, premoves []game.Position) (*game.ResolutionResult, error) {
	if r.Status != StatusPlaying {
		return nil, ErrNotPlaying
	}
	cp := m.currentPlayer(r)
	if cp == nil || cp.ID != playerID {
		return nil, ErrNotYourTurn
	}
	if len(premoves) > r.Board.PremoveCap() {
		return nil, ErrTooManySteps
	}

	r.Board.ClearJustPlaced(cp.Team)
	pc, err := r.Board.PlacePiece(row, col, r.TurnCount, cp.Team)
	if err != nil {
		return nil, err
	}

	session := game.NewSession(r.Board)
	if err := session.Begin(pc.ID); err != nil {
		return nil, err
	}
	for _, target := range premoves {
		if err := session.Target(target); err != nil {
			// Reject the whole turn; the placement is rolled back so
			// the caller can retry with valid input.
			r.Board.RemovePiece(pc.ID)
			return nil, fmt.Errorf("premove to (%d,%d): %w", target.Row, target.Col, err)
		}
	}
	session.End()

	res := game.Resolve(r.Board, cp.Team)
	r.LastResult = &res
	r.TurnCount++

	if win := game.CheckForWin(r.Board); win.IsWin {
		m.finishWithWinner(r, win)
	} else if r.Board.IsFull() && len(r.Board.QueuedPremoves(game.TeamNone)) == 0 {
		r.Draw = true
		r.Status = StatusFinished
		m.hub.Broadcast(r.Code, "game-over", map[string]interface{}{
			"draw": true,
			"room": r,
		})
	} else {
		r.TurnIdx = (r.TurnIdx + 1) % len(r.Players)
	}

	m.hub.Broadcast(r.Code, "turn-resolved", map[string]interface{}{
		"playerId": playerID,
		"result":   res,
		"room":     r,
	})
	m.store.SaveRoom(r)
	return &res, nil
}

func (m *Manager) finishWithWinner(r *Room, win game.WinResult) {
	for i := range r.Players {
		if r.Players[i].Team == win.Winner {
			id := r.Players[i].ID
			r.WinnerID = &id
			break
		}
	}
	r.WinCells = win.Cells
	r.Status = StatusFinished
	log.Printf("room %s: team %s wins", r.Code, win.Winner)
	m.hub.Broadcast(r.Code, "game-over", map[string]interface{}{
		"winner":   r.WinnerID,
		"winCells": r.WinCells,
		"room":     r,
	})
}

// Reset clears the board and turn state for a rematch, keeping the
// players.
func (m *Manager) Reset(r *Room) {
	r.Board.Reset()
	r.TurnIdx = 0
	r.TurnCount = 0
	r.WinnerID = nil
	r.WinCells = nil
	r.Draw = false
	r.LastResult = nil
	if len(r.Players) == 2 {
		r.Status = StatusPlaying
	} else {
		r.Status = StatusLobby
	}
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "room-reset", map[string]interface{}{"room": r})
}
