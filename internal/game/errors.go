package game

import "errors"

var (
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrNoSuchPiece     = errors.New("no such piece")
	ErrNoActiveSession = errors.New("no active premove session")
	ErrNotAdjacent     = errors.New("target not adjacent to projected position")
	ErrQueueFull       = errors.New("premove queue full")
)
