package game

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

var edgeNeighbors = [4]Cell{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var cornerNeighbors = [4]Cell{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// IsTerminal reports whether the game has ended: four consecutive passes, or
// every color has placed its whole inventory.
func (gs *GameState) IsTerminal() bool {
	if gs.ConsecutivePasses >= NumPlayers {
		return true
	}
	for _, remaining := range gs.Remaining {
		if remaining != 0 {
			return false
		}
	}
	return true
}

// IsLegal checks a placement for the current player, in order: piece
// availability, bounds and emptiness of every cell, the first-move corner
// rule, then the edge/corner contact rules. The first violation decides;
// nil means legal. Pass is legal whenever the game is not over.
func (gs *GameState) IsLegal(m Move) error {
	if gs.IsTerminal() {
		return ErrTerminalState
	}
	if m.Pass {
		return nil
	}

	color := gs.CurrentPlayer
	if !gs.Remaining[color].Has(m.Piece) {
		return ErrPieceUnavailable
	}

	placed := m.Cells()
	for _, c := range placed {
		if !inBounds(c) {
			return ErrOutOfBounds
		}
		if gs.Board[c.Row][c.Col] != Empty {
			return ErrCellOccupied
		}
	}

	// First move: covering the color's corner fully substitutes for the
	// contact rules.
	if gs.MovesMade[color] == 0 {
		corner := startingCorners[color]
		for _, c := range placed {
			if c == corner {
				return nil
			}
		}
		return fmt.Errorf("%w: first move must cover corner (%d,%d)",
			ErrIllegalMove, corner.Row, corner.Col)
	}

	cornerContact := false
	for _, c := range placed {
		for _, d := range edgeNeighbors {
			n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if inBounds(n) && gs.Board[n.Row][n.Col] == int8(color) {
				return fmt.Errorf("%w: edge contact with own color at (%d,%d)",
					ErrIllegalMove, n.Row, n.Col)
			}
		}
		for _, d := range cornerNeighbors {
			n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if inBounds(n) && gs.Board[n.Row][n.Col] == int8(color) {
				cornerContact = true
			}
		}
	}
	if !cornerContact {
		return fmt.Errorf("%w: no corner contact with own color", ErrIllegalMove)
	}
	return nil
}

// LegalMoves enumerates every legal placement for the current player. An
// empty result means the only legal action is a pass. The enumeration is a
// pure function of the state; candidate tests only read it, so pieces are
// checked in parallel, each worker filling its own slot of the result table.
func (gs *GameState) LegalMoves() ([]Move, error) {
	if gs.IsTerminal() {
		return nil, ErrTerminalState
	}

	var byPiece [NumPieces][]Move
	var g errgroup.Group
	for _, id := range gs.Remaining[gs.CurrentPlayer].Pieces() {
		id := id
		g.Go(func() error {
			byPiece[id] = gs.placementsOf(id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var moves []Move
	for _, ms := range byPiece {
		moves = append(moves, ms...)
	}
	return moves, nil
}

// placementsOf collects the legal placements of one piece: every orientation,
// every offset whose bounding box fits the board.
func (gs *GameState) placementsOf(id PieceID) []Move {
	var moves []Move
	for _, orientation := range Orientations(id) {
		maxRow, maxCol := orientation.Bounds()
		for row := 0; row+maxRow < BoardSize; row++ {
			for col := 0; col+maxCol < BoardSize; col++ {
				m := Move{Piece: id, Row: row, Col: col, Orientation: orientation}
				if gs.IsLegal(m) == nil {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// Play applies a move and returns the successor state, leaving the receiver
// untouched. The move must be legal; applying an unvalidated illegal move is
// a caller defect and is rejected loudly rather than corrected.
func (gs *GameState) Play(m Move) (*GameState, error) {
	if err := gs.IsLegal(m); err != nil {
		return nil, err
	}

	next := gs.Copy()
	if m.Pass {
		next.ConsecutivePasses++
	} else {
		color := next.CurrentPlayer
		for _, c := range m.Cells() {
			next.Board[c.Row][c.Col] = int8(color)
		}
		next.Remaining[color] = next.Remaining[color].Remove(m.Piece)
		next.MovesMade[color]++
		next.ConsecutivePasses = 0
	}
	next.CurrentPlayer = (next.CurrentPlayer + 1) % NumPlayers
	return next, nil
}

// FinalScores returns each color's score: the negative cell count of its
// unplaced pieces. No end-game bonuses are modeled.
func (gs *GameState) FinalScores() [NumPlayers]int {
	var scores [NumPlayers]int
	for color, remaining := range gs.Remaining {
		scores[color] = -remaining.CellSum()
	}
	return scores
}
