package game

// Team identifies which side a piece belongs to. TeamNone marks an
// unowned cell and is never assigned to a placed piece.
type Team int

const (
	TeamNone Team = iota
	TeamA
	TeamB
)

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return "none"
	}
}

// Direction is a single-step movement intent. DirNone means "stay".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

// dirOffsets maps each direction to its (Δrow, Δcol). Adding a
// direction only needs a table entry here and a name below.
var dirOffsets = [...]Position{
	DirNone:      {0, 0},
	DirUp:        {-1, 0},
	DirUpRight:   {-1, 1},
	DirRight:     {0, 1},
	DirDownRight: {1, 1},
	DirDown:      {1, 0},
	DirDownLeft:  {1, -1},
	DirLeft:      {0, -1},
	DirUpLeft:    {-1, -1},
}

var dirNames = [...]string{
	DirNone:      "none",
	DirUp:        "up",
	DirUpRight:   "up-right",
	DirRight:     "right",
	DirDownRight: "down-right",
	DirDown:      "down",
	DirDownLeft:  "down-left",
	DirLeft:      "left",
	DirUpLeft:    "up-left",
}

// Offset returns the (Δrow, Δcol) step for the direction.
func (d Direction) Offset() Position {
	if d < 0 || int(d) >= len(dirOffsets) {
		return Position{}
	}
	return dirOffsets[d]
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(dirNames) {
		return "invalid"
	}
	return dirNames[d]
}

// DirectionBetween maps a one-step delta between two cells to a
// direction. Returns false if the cells are not adjacent (or equal).
func DirectionBetween(from, to Position) (Direction, bool) {
	delta := Position{Row: to.Row - from.Row, Col: to.Col - from.Col}
	for d, off := range dirOffsets {
		if Direction(d) == DirNone {
			continue
		}
		if off == delta {
			return Direction(d), true
		}
	}
	return DirNone, false
}

// Position is a 0-indexed (row, col) cell coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the position shifted by the given offset.
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Piece is a single marker on the board. Team is fixed at creation;
// Pos is updated only by the board's move path.
type Piece struct {
	ID           int      `json:"id"`
	Team         Team     `json:"team"`
	Pos          Position `json:"pos"`
	JustPlaced   bool     `json:"justPlaced"`
	PlacedOnTurn int      `json:"placedOnTurn"`
}

// PremoveQueue holds a piece's pending single-step moves in FIFO
// order. Source caches where the piece sits before its next step.
type PremoveQueue struct {
	PieceID    int         `json:"pieceId"`
	Directions []Direction `json:"directions"`
	Source     Position    `json:"source"`
}
