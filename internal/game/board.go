package game

import (
	"encoding/json"
	"sort"
)

const (
	// MinBoardSize is the smallest playable board.
	MinBoardSize = 3
	// DefaultBoardSize matches the classic three-in-a-row grid.
	DefaultBoardSize = 3
)

// Board owns the grid, every piece on it and every pending premove
// queue. It holds no resolution logic; the resolver mutates it through
// the operations below.
//
// The grid and the id index are only ever written by register,
// commitMoves and RemovePiece, which keeps the two views in sync.
type Board struct {
	size   int
	cells  [][]*Piece
	pieces map[int]*Piece
	queues map[int]*PremoveQueue
	nextID int
}

// NewBoard creates an empty size×size board. Sizes below the minimum
// fall back to the default.
func NewBoard(size int) *Board {
	if size < MinBoardSize {
		size = DefaultBoardSize
	}
	b := &Board{size: size}
	b.Reset()
	return b
}

// Reset clears all pieces and queues and restarts the id counter.
func (b *Board) Reset() {
	b.cells = make([][]*Piece, b.size)
	for i := range b.cells {
		b.cells[i] = make([]*Piece, b.size)
	}
	b.pieces = make(map[int]*Piece)
	b.queues = make(map[int]*PremoveQueue)
	b.nextID = 1
}

func (b *Board) Size() int { return b.size }

// PremoveCap is the maximum queued steps per piece for this board.
func (b *Board) PremoveCap() int { return b.size - 2 }

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

func (b *Board) IsOccupied(p Position) bool {
	return b.InBounds(p) && b.cells[p.Row][p.Col] != nil
}

// PieceAt returns the piece occupying a cell, if any.
func (b *Board) PieceAt(p Position) (*Piece, bool) {
	if !b.InBounds(p) {
		return nil, false
	}
	pc := b.cells[p.Row][p.Col]
	return pc, pc != nil
}

// Piece looks a piece up by id.
func (b *Board) Piece(id int) (*Piece, bool) {
	pc, ok := b.pieces[id]
	return pc, ok
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	return len(b.pieces) == b.size*b.size
}

// Pieces returns all pieces in ascending id order.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, len(b.pieces))
	for _, pc := range b.pieces {
		out = append(out, pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PlacePiece creates a new piece at (row, col). Fails if the cell is
// out of bounds or occupied.
func (b *Board) PlacePiece(row, col, turn int, team Team) (*Piece, error) {
	pos := Position{Row: row, Col: col}
	if !b.InBounds(pos) {
		return nil, ErrOutOfBounds
	}
	if b.cells[row][col] != nil {
		return nil, ErrCellOccupied
	}
	pc := &Piece{
		ID:           b.nextID,
		Team:         team,
		Pos:          pos,
		JustPlaced:   true,
		PlacedOnTurn: turn,
	}
	b.nextID++
	b.register(pc)
	return pc, nil
}

func (b *Board) register(pc *Piece) {
	b.pieces[pc.ID] = pc
	b.cells[pc.Pos.Row][pc.Pos.Col] = pc
}

// MovePiece unconditionally relocates a piece. The caller guarantees
// the destination cell is free.
func (b *Board) MovePiece(id int, to Position) error {
	if _, ok := b.pieces[id]; !ok {
		return ErrNoSuchPiece
	}
	b.commitMoves([]pieceMove{{id: id, to: to}})
	return nil
}

// pieceMove is a committed relocation, used so a batch of simultaneous
// moves (swaps, rotation chains) lands atomically.
type pieceMove struct {
	id int
	to Position
}

// commitMoves applies a batch of relocations: every mover is lifted
// off the grid first, then set down at its destination. This is the
// only write path for the grid besides register and RemovePiece.
func (b *Board) commitMoves(moves []pieceMove) {
	for _, mv := range moves {
		pc, ok := b.pieces[mv.id]
		if !ok {
			continue
		}
		if b.cells[pc.Pos.Row][pc.Pos.Col] == pc {
			b.cells[pc.Pos.Row][pc.Pos.Col] = nil
		}
	}
	for _, mv := range moves {
		pc, ok := b.pieces[mv.id]
		if !ok {
			continue
		}
		pc.Pos = mv.to
		b.cells[mv.to.Row][mv.to.Col] = pc
	}
}

// RemovePiece deletes a piece from the grid and the id index, and
// discards any premove queue it still had.
func (b *Board) RemovePiece(id int) {
	pc, ok := b.pieces[id]
	if !ok {
		return
	}
	if b.cells[pc.Pos.Row][pc.Pos.Col] == pc {
		b.cells[pc.Pos.Row][pc.Pos.Col] = nil
	}
	delete(b.pieces, id)
	delete(b.queues, id)
}

// SetQueuedDirection appends a direction to a piece's premove queue,
// creating the queue if absent. DirNone clears the whole queue.
func (b *Board) SetQueuedDirection(id int, d Direction) error {
	pc, ok := b.pieces[id]
	if !ok {
		return ErrNoSuchPiece
	}
	if d == DirNone {
		delete(b.queues, id)
		return nil
	}
	q, ok := b.queues[id]
	if !ok {
		q = &PremoveQueue{PieceID: id, Source: pc.Pos}
		b.queues[id] = q
	}
	q.Directions = append(q.Directions, d)
	return nil
}

// QueuedDirection returns the front of a piece's queue, or DirNone.
func (b *Board) QueuedDirection(id int) Direction {
	q, ok := b.queues[id]
	if !ok || len(q.Directions) == 0 {
		return DirNone
	}
	return q.Directions[0]
}

// QueueDepth returns the number of steps still queued for a piece.
func (b *Board) QueueDepth(id int) int {
	q, ok := b.queues[id]
	if !ok {
		return 0
	}
	return len(q.Directions)
}

// DequeueConsumedMove drops the front of a piece's queue after a
// resolution pass consumed it. An emptied queue is deleted; otherwise
// its cached source is refreshed to the piece's current cell.
func (b *Board) DequeueConsumedMove(id int) {
	q, ok := b.queues[id]
	if !ok {
		return
	}
	if len(q.Directions) > 0 {
		q.Directions = q.Directions[1:]
	}
	if len(q.Directions) == 0 {
		delete(b.queues, id)
		return
	}
	if pc, ok := b.pieces[id]; ok {
		q.Source = pc.Pos
	}
}

// QueuedPremoves returns the pending queues for one team, in
// ascending piece id order. TeamNone selects every queued piece.
func (b *Board) QueuedPremoves(team Team) []*PremoveQueue {
	out := make([]*PremoveQueue, 0, len(b.queues))
	for id, q := range b.queues {
		pc, ok := b.pieces[id]
		if !ok {
			continue
		}
		if team != TeamNone && pc.Team != team {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PieceID < out[j].PieceID })
	return out
}

// ClearJustPlaced drops the transient placement flag for a team's
// pieces, called by the turn sequencer when the team acts again.
func (b *Board) ClearJustPlaced(team Team) {
	for _, pc := range b.pieces {
		if team == TeamNone || pc.Team == team {
			pc.JustPlaced = false
		}
	}
}

// Snapshot is the serializable view of a board.
type Snapshot struct {
	Size   int            `json:"size"`
	Pieces []Piece        `json:"pieces"`
	Queues []PremoveQueue `json:"queues"`
}

// Snapshot copies the board into its serializable form.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Size:   b.size,
		Pieces: make([]Piece, 0, len(b.pieces)),
		Queues: make([]PremoveQueue, 0, len(b.queues)),
	}
	for _, pc := range b.Pieces() {
		snap.Pieces = append(snap.Pieces, *pc)
	}
	for _, q := range b.QueuedPremoves(TeamNone) {
		cp := *q
		cp.Directions = append([]Direction(nil), q.Directions...)
		snap.Queues = append(snap.Queues, cp)
	}
	return snap
}

// MarshalJSON serializes the board as its snapshot so rooms can embed
// a *Board directly in API payloads.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Snapshot())
}
