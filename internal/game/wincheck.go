package game

// WinResult is the outcome of a full-board win scan.
type WinResult struct {
	IsWin  bool       `json:"isWin"`
	Winner Team       `json:"winner"`
	Cells  []Position `json:"cells,omitempty"`
}

// CheckForWin scans every row, every column and both full diagonals
// for an N-length run of one team. Pure read; called by the turn
// sequencer after each resolution settles.
func CheckForWin(b *Board) WinResult {
	n := b.Size()

	lines := make([][]Position, 0, 2*n+2)
	for r := 0; r < n; r++ {
		line := make([]Position, n)
		for c := 0; c < n; c++ {
			line[c] = Position{Row: r, Col: c}
		}
		lines = append(lines, line)
	}
	for c := 0; c < n; c++ {
		line := make([]Position, n)
		for r := 0; r < n; r++ {
			line[r] = Position{Row: r, Col: c}
		}
		lines = append(lines, line)
	}
	diag := make([]Position, n)
	anti := make([]Position, n)
	for i := 0; i < n; i++ {
		diag[i] = Position{Row: i, Col: i}
		anti[i] = Position{Row: i, Col: n - 1 - i}
	}
	lines = append(lines, diag, anti)

	for _, line := range lines {
		if team, ok := uniformTeam(b, line); ok {
			return WinResult{IsWin: true, Winner: team, Cells: line}
		}
	}
	return WinResult{}
}

func uniformTeam(b *Board, line []Position) (Team, bool) {
	first, ok := b.PieceAt(line[0])
	if !ok {
		return TeamNone, false
	}
	for _, pos := range line[1:] {
		pc, ok := b.PieceAt(pos)
		if !ok || pc.Team != first.Team {
			return TeamNone, false
		}
	}
	return first.Team, true
}
