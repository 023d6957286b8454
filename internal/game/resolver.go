package game

import "sort"

// MoveOutcome records one piece's attempted step in a resolution pass.
type MoveOutcome struct {
	PieceID   int       `json:"pieceId"`
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Direction Direction `json:"direction"`
}

// SwapPair names two pieces that exchanged cells. A is always the
// lower id.
type SwapPair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// ResolutionResult is the full outcome of one resolution pass. The
// animation layer replays it; it must not be used to mutate the board.
type ResolutionResult struct {
	Moves        []MoveOutcome `json:"moves"`
	Blocked      []MoveOutcome `json:"blocked"`
	DestroyedIDs []int         `json:"destroyedIds"`
	Swaps        []SwapPair    `json:"swaps"`
}

// Empty reports whether the pass touched nothing.
func (r ResolutionResult) Empty() bool {
	return len(r.Moves) == 0 && len(r.Blocked) == 0 &&
		len(r.DestroyedIDs) == 0 && len(r.Swaps) == 0
}

// Resolve consumes one queued step per eligible piece and mutates the
// board into the next consistent state. The team parameter restricts
// which pieces act; TeamNone resolves every queued piece so both
// sides move simultaneously.
//
// Conflicts are judged in a fixed order that encodes the game rules:
// edge blocks, then swaps (privileged, always succeed), then
// collisions (symmetric, all claimants destroyed), then stationary
// blocks. Changing this order changes game semantics.
func Resolve(b *Board, team Team) ResolutionResult {
	res := ResolutionResult{
		Moves:        []MoveOutcome{},
		Blocked:      []MoveOutcome{},
		DestroyedIDs: []int{},
		Swaps:        []SwapPair{},
	}

	// Gather intentions from queue fronts. consumed tracks every
	// piece whose front entry this pass uses up, blocked or not.
	intents := make(map[int]MoveOutcome)
	var order []int
	var consumed []int
	for _, q := range b.QueuedPremoves(team) {
		pc, ok := b.Piece(q.PieceID)
		if !ok {
			continue // stale queue entry, skip
		}
		dir := b.QueuedDirection(pc.ID)
		consumed = append(consumed, pc.ID)
		if dir == DirNone {
			continue
		}
		intents[pc.ID] = MoveOutcome{
			PieceID:   pc.ID,
			From:      pc.Pos,
			To:        pc.Pos.Add(dir.Offset()),
			Direction: dir,
		}
		order = append(order, pc.ID)
	}
	sort.Ints(order)

	// Edge blocks.
	for _, id := range order {
		it, ok := intents[id]
		if !ok {
			continue
		}
		if !b.InBounds(it.To) {
			res.Blocked = append(res.Blocked, it)
			delete(intents, id)
		}
	}

	// Swap detection. Mutual targets exchange cells unconditionally,
	// bypassing the collision and stationary checks below. A piece has
	// one target, so pairs are disjoint; ascending id keeps the output
	// deterministic.
	var swapMoves []pieceMove
	for _, idA := range order {
		a, ok := intents[idA]
		if !ok {
			continue
		}
		for _, idB := range order {
			if idB <= idA {
				continue
			}
			bi, ok := intents[idB]
			if !ok {
				continue
			}
			if a.To == bi.From && bi.To == a.From {
				res.Swaps = append(res.Swaps, SwapPair{A: idA, B: idB})
				res.Moves = append(res.Moves, a, bi)
				swapMoves = append(swapMoves,
					pieceMove{id: idA, to: a.To},
					pieceMove{id: idB, to: bi.To})
				delete(intents, idA)
				delete(intents, idB)
				break
			}
		}
	}

	// Collisions: every cell claimed by two or more remaining
	// intentions destroys all claimants, friend and foe alike.
	claims := make(map[Position][]int)
	for _, id := range order {
		if it, ok := intents[id]; ok {
			claims[it.To] = append(claims[it.To], id)
		}
	}
	for _, id := range order {
		it, ok := intents[id]
		if !ok {
			continue
		}
		if len(claims[it.To]) >= 2 {
			res.DestroyedIDs = append(res.DestroyedIDs, id)
			delete(intents, id)
		}
	}

	// Stationary blocks. A target held by a piece that is not moving
	// this pass blocks the mover; a target being vacated by a
	// remaining intention does not. Swap cells count as held: the
	// partner refills them, so a third mover targeting one is blocked.
	// Each block removes a mover from the moving set, so re-check
	// until no new block appears (a blocked piece blocks its own
	// followers in turn).
	for {
		blockedAny := false
		for _, id := range order {
			it, ok := intents[id]
			if !ok {
				continue
			}
			occ, occupied := b.PieceAt(it.To)
			if !occupied {
				continue
			}
			if _, occMoving := intents[occ.ID]; occMoving {
				continue
			}
			res.Blocked = append(res.Blocked, it)
			delete(intents, id)
			blockedAny = true
		}
		if !blockedAny {
			break
		}
	}

	// Execute. Swaps first, then the surviving single moves as one
	// batch (their targets are empty or vacated by another mover in
	// the same batch), then drop the destroyed pieces.
	b.commitMoves(swapMoves)
	var singles []pieceMove
	for _, id := range order {
		it, ok := intents[id]
		if !ok {
			continue
		}
		singles = append(singles, pieceMove{id: id, to: it.To})
		res.Moves = append(res.Moves, it)
	}
	b.commitMoves(singles)
	for _, id := range res.DestroyedIDs {
		b.RemovePiece(id)
	}

	// Queue bookkeeping: every gathered piece used up its front
	// entry; destroyed pieces lost their queue with the piece.
	for _, id := range consumed {
		if _, ok := b.Piece(id); !ok {
			continue
		}
		b.DequeueConsumedMove(id)
	}
	return res
}
