package searcher

import (
	"fmt"

	"blokus/game"
)

// ActionKind tags the two action variants.
type ActionKind uint8

const (
	// ActionPass is the pass action.
	ActionPass ActionKind = iota
	// ActionPlace is the placement of a piece.
	ActionPlace
)

// Action keys a search-tree edge: a pass, or the Placement-th legal
// placement of a piece. Placement indices are relative to the enumeration
// order at the node that expanded the edge.
type Action struct {
	Kind      ActionKind
	Piece     game.PieceID
	Placement int
}

// PassAction is the edge for a pass move.
var PassAction = Action{Kind: ActionPass}

func (a Action) String() string {
	if a.Kind == ActionPass {
		return "pass"
	}
	return fmt.Sprintf("place(%d,%d)", a.Piece, a.Placement)
}
