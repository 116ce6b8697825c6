package game

// BoardSize is the side length of the square board.
const BoardSize = 20

// NumPlayers is the number of colors; Blokus is always four-handed here.
const NumPlayers = 4

// Empty marks an unowned board cell.
const Empty int8 = -1

// startingCorners assigns each color its first-move corner, indexed by color.
var startingCorners = [NumPlayers]Cell{
	{0, 0},
	{0, BoardSize - 1},
	{BoardSize - 1, 0},
	{BoardSize - 1, BoardSize - 1},
}

// StartingCorner returns the corner cell the given color's first placement
// must cover.
func StartingCorner(color int) Cell {
	return startingCorners[color]
}

// GameState is the authoritative game snapshot. It is value-like: Play
// returns a fresh copy, so holders of earlier states never observe
// interference. All fields are exported for the evaluator wire encoding.
type GameState struct {
	Board             [BoardSize][BoardSize]int8 `json:"board"`
	Remaining         [NumPlayers]PieceSet       `json:"remaining"`
	CurrentPlayer     int                        `json:"currentPlayer"`
	MovesMade         [NumPlayers]int            `json:"movesMade"`
	ConsecutivePasses int                        `json:"consecutivePasses"`
}

// NewGameState returns the initial state: empty board, full inventories,
// color 0 to move.
func NewGameState() *GameState {
	gs := &GameState{}
	for r := range gs.Board {
		for c := range gs.Board[r] {
			gs.Board[r][c] = Empty
		}
	}
	for color := range gs.Remaining {
		gs.Remaining[color] = FullPieceSet
	}
	return gs
}

// Copy returns an independent snapshot. Every field is an array or scalar,
// so a value copy is a structural copy.
func (gs *GameState) Copy() *GameState {
	cp := *gs
	return &cp
}

// Owner returns the color occupying the cell, or Empty.
func (gs *GameState) Owner(c Cell) int8 {
	return gs.Board[c.Row][c.Col]
}

func inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}
