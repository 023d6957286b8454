package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/Matthewweb42/Tic-Tac-Move/internal/config"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/game"
)

// Hotseat terminal client: both players share the keyboard. Each turn
// is place -> queue premoves -> resolve, driving the engine directly.
func main() {
	cfg := config.Load()
	board := game.NewBoard(cfg.BoardSize)
	reader := bufio.NewReader(os.Stdin)
	profile := termenv.ColorProfile()

	team := game.TeamA
	turn := 0
	fmt.Printf("Tic-Tac-Move %dx%d — coordinates are 1-based \"row col\", q quits\n", board.Size(), board.Size())

	for {
		printBoard(board, profile)
		fmt.Printf("\nTurn %d: team %s\n", turn+1, teamLabel(team, profile))

		pc := placePrompt(board, reader, team, turn)
		if pc == nil {
			return
		}
		queuePrompt(board, reader, pc)

		res := game.Resolve(board, team)
		printResult(res)

		if win := game.CheckForWin(board); win.IsWin {
			printBoard(board, profile)
			fmt.Printf("\nTeam %s wins on line %v\n", teamLabel(win.Winner, profile), win.Cells)
			return
		}
		if board.IsFull() && len(board.QueuedPremoves(game.TeamNone)) == 0 {
			printBoard(board, profile)
			fmt.Println("\nBoard full, no moves queued: draw.")
			return
		}

		turn++
		if team == game.TeamA {
			team = game.TeamB
		} else {
			team = game.TeamA
		}
	}
}

func placePrompt(board *game.Board, reader *bufio.Reader, team game.Team, turn int) *game.Piece {
	for {
		fmt.Print("place> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "q" {
			return nil
		}
		row, col, ok := parseCell(line)
		if !ok {
			fmt.Println("Format: row col (e.g. 1 2)")
			continue
		}
		pc, err := board.PlacePiece(row, col, turn, team)
		if err != nil {
			fmt.Println("Cannot place there:", err)
			continue
		}
		return pc
	}
}

func queuePrompt(board *game.Board, reader *bufio.Reader, pc *game.Piece) {
	limit := board.PremoveCap()
	if limit <= 0 {
		return
	}
	session := game.NewSession(board)
	if err := session.Begin(pc.ID); err != nil {
		return
	}
	fmt.Printf("Queue up to %d step(s) for piece %d: target cell or \"done\"\n", limit, pc.ID)
	for session.Active() {
		fmt.Printf("premove %d> ", session.Depth()+1)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "done" || line == "" {
			session.End()
			break
		}
		row, col, ok := parseCell(line)
		if !ok {
			fmt.Println("Format: row col, or done")
			continue
		}
		if err := session.Target(game.Position{Row: row, Col: col}); err != nil {
			fmt.Println("Rejected:", err)
		}
	}
}

func parseCell(line string) (row, col int, ok bool) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return 0, 0, false
	}
	r, err1 := strconv.Atoi(parts[0])
	c, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return r - 1, c - 1, true
}

func printResult(res game.ResolutionResult) {
	if res.Empty() {
		fmt.Println("Nothing to resolve.")
		return
	}
	for _, sw := range res.Swaps {
		fmt.Printf("Swap: pieces %d and %d exchanged cells\n", sw.A, sw.B)
	}
	for _, mv := range res.Moves {
		fmt.Printf("Piece %d moved %s to (%d,%d)\n", mv.PieceID, mv.Direction, mv.To.Row+1, mv.To.Col+1)
	}
	for _, mv := range res.Blocked {
		fmt.Printf("Piece %d blocked moving %s\n", mv.PieceID, mv.Direction)
	}
	if len(res.DestroyedIDs) > 0 {
		fmt.Printf("Destroyed in collisions: %v\n", res.DestroyedIDs)
	}
}

func teamLabel(t game.Team, profile termenv.Profile) string {
	return termenv.String(t.String()).Foreground(teamColor(t, profile)).String()
}

func teamColor(t game.Team, profile termenv.Profile) termenv.Color {
	switch t {
	case game.TeamA:
		return profile.Color("1") // red
	case game.TeamB:
		return profile.Color("2") // green
	default:
		return profile.Color("7")
	}
}

func printBoard(b *game.Board, profile termenv.Profile) {
	n := b.Size()
	fmt.Print("\n   ")
	for c := 0; c < n; c++ {
		fmt.Printf("%d ", c+1)
	}
	fmt.Println()
	for r := 0; r < n; r++ {
		fmt.Printf("%2d ", r+1)
		for c := 0; c < n; c++ {
			pc, ok := b.PieceAt(game.Position{Row: r, Col: c})
			if !ok {
				fmt.Print(". ")
				continue
			}
			mark := termenv.String(pc.Team.String()).
				Foreground(teamColor(pc.Team, profile))
			fmt.Printf("%s ", mark)
		}
		fmt.Println()
	}
}
