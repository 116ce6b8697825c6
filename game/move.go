package game

import "fmt"

// Move is a pure value: either a pass or the placement of one orientation of
// one piece at a board offset. Applying a move never mutates the state it was
// generated against.
type Move struct {
	Pass        bool    `json:"pass,omitempty"`
	Piece       PieceID `json:"piece"`
	Row         int     `json:"row"`
	Col         int     `json:"col"`
	Orientation Shape   `json:"orientation,omitempty"`
}

// PassMove is the only non-placement move.
var PassMove = Move{Pass: true}

// Cells returns the absolute board cells the placement occupies.
func (m Move) Cells() []Cell {
	if m.Pass {
		return nil
	}
	out := make([]Cell, len(m.Orientation))
	for i, c := range m.Orientation {
		out[i] = Cell{Row: c.Row + m.Row, Col: c.Col + m.Col}
	}
	return out
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return fmt.Sprintf("piece %d at (%d,%d)", m.Piece, m.Row, m.Col)
}
