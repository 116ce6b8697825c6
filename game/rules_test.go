package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// placement builds a move from a piece's canonical shape.
func placement(id PieceID, row, col int) Move {
	return Move{Piece: id, Row: row, Col: col, Orientation: ShapeOf(id)}
}

func TestIsLegalFirstMove(t *testing.T) {
	t.Run("first move must cover the color's corner", func(t *testing.T) {
		gs := NewGameState()
		err := gs.IsLegal(placement(0, 5, 5))
		require.ErrorIs(t, err, ErrIllegalMove)

		require.NoError(t, gs.IsLegal(placement(0, 0, 0)),
			"monomino on the corner should be legal")
	})

	t.Run("each color has its own corner", func(t *testing.T) {
		gs := NewGameState()
		gs.CurrentPlayer = 1
		require.Error(t, gs.IsLegal(placement(0, 0, 0)),
			"color 1 must not start at color 0's corner")
		require.NoError(t, gs.IsLegal(placement(0, 0, BoardSize-1)))
	})

	t.Run("piece must be available", func(t *testing.T) {
		gs := NewGameState()
		gs.Remaining[0] = gs.Remaining[0].Remove(0)
		require.ErrorIs(t, gs.IsLegal(placement(0, 0, 0)), ErrPieceUnavailable)
	})

	t.Run("placement must stay on the board", func(t *testing.T) {
		gs := NewGameState()
		err := gs.IsLegal(placement(1, 0, BoardSize-1)) // domino sticking out
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("placement cells must be empty", func(t *testing.T) {
		gs := NewGameState()
		gs.Board[0][0] = 3
		require.ErrorIs(t, gs.IsLegal(placement(0, 0, 0)), ErrCellOccupied)
	})
}

func TestIsLegalContactRules(t *testing.T) {
	// Color 0 already placed its monomino on the corner.
	withFirstMove := func() *GameState {
		gs := NewGameState()
		gs.Board[0][0] = 0
		gs.Remaining[0] = gs.Remaining[0].Remove(0)
		gs.MovesMade[0] = 1
		return gs
	}

	t.Run("edge contact with own color rejects", func(t *testing.T) {
		gs := withFirstMove()
		err := gs.IsLegal(placement(1, 0, 1)) // domino at (0,1)(0,2) touches (0,0)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("diagonal-only contact accepts", func(t *testing.T) {
		gs := withFirstMove()
		require.NoError(t, gs.IsLegal(placement(1, 1, 1)),
			"domino at (1,1)(1,2) touches (0,0) only diagonally")
	})

	t.Run("no contact with own color rejects", func(t *testing.T) {
		gs := withFirstMove()
		require.ErrorIs(t, gs.IsLegal(placement(1, 5, 5)), ErrIllegalMove)
	})

	t.Run("edge contact with another color is fine", func(t *testing.T) {
		gs := withFirstMove()
		gs.Board[2][2] = 1 // opponent square next to the candidate
		require.NoError(t, gs.IsLegal(placement(1, 1, 1)))
	})
}

func TestPlay(t *testing.T) {
	t.Run("placement updates board, inventory, counters", func(t *testing.T) {
		gs := NewGameState()
		next, err := gs.Play(placement(0, 0, 0))
		require.NoError(t, err)

		require.Equal(t, int8(0), next.Owner(Cell{0, 0}))
		require.False(t, next.Remaining[0].Has(0))
		require.Equal(t, 1, next.MovesMade[0])
		require.Equal(t, 1, next.CurrentPlayer)
		require.Zero(t, next.ConsecutivePasses)
	})

	t.Run("play never mutates the prior state", func(t *testing.T) {
		gs := NewGameState()
		before := *gs
		_, err := gs.Play(placement(0, 0, 0))
		require.NoError(t, err)
		require.Equal(t, before, *gs)
	})

	t.Run("pass advances the turn and the pass counter", func(t *testing.T) {
		gs := NewGameState()
		next, err := gs.Play(PassMove)
		require.NoError(t, err)
		require.Equal(t, 1, next.ConsecutivePasses)
		require.Equal(t, 1, next.CurrentPlayer)
		require.Equal(t, FullPieceSet, next.Remaining[0])
	})

	t.Run("placement resets the pass counter", func(t *testing.T) {
		gs := NewGameState()
		gs.ConsecutivePasses = 3
		next, err := gs.Play(placement(0, 0, 0))
		require.NoError(t, err)
		require.Zero(t, next.ConsecutivePasses)
	})

	t.Run("illegal move is rejected, not corrected", func(t *testing.T) {
		gs := NewGameState()
		next, err := gs.Play(placement(0, 5, 5))
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Nil(t, next)
	})

	t.Run("current player cycles 0,1,2,3 over any ply mix", func(t *testing.T) {
		gs := NewGameState()
		corners := []Move{
			placement(0, 0, 0),
			placement(0, 0, BoardSize-1),
		}
		var err error
		for i, move := range []Move{corners[0], corners[1], PassMove, PassMove} {
			require.Equal(t, i%NumPlayers, gs.CurrentPlayer)
			gs, err = gs.Play(move)
			require.NoError(t, err)
		}
		require.Equal(t, 0, gs.CurrentPlayer)
	})
}

func TestTerminal(t *testing.T) {
	t.Run("four consecutive passes end the game", func(t *testing.T) {
		gs := NewGameState()
		var err error
		for i := 0; i < NumPlayers; i++ {
			require.False(t, gs.IsTerminal(), "pass %d should not end the game", i)
			gs, err = gs.Play(PassMove)
			require.NoError(t, err)
		}
		require.True(t, gs.IsTerminal())
	})

	t.Run("exhausted inventories end the game", func(t *testing.T) {
		gs := NewGameState()
		for color := range gs.Remaining {
			gs.Remaining[color] = 0
		}
		require.True(t, gs.IsTerminal())
	})

	t.Run("terminal state rejects further operations", func(t *testing.T) {
		gs := NewGameState()
		gs.ConsecutivePasses = NumPlayers

		_, err := gs.LegalMoves()
		require.ErrorIs(t, err, ErrTerminalState)

		_, err = gs.Play(PassMove)
		require.ErrorIs(t, err, ErrTerminalState)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("first-move enumeration covers only the corner", func(t *testing.T) {
		gs := NewGameState()
		moves, err := gs.LegalMoves()
		require.NoError(t, err)
		require.NotEmpty(t, moves)

		corner := StartingCorner(0)
		for _, m := range moves {
			require.Contains(t, m.Cells(), corner,
				"every first move must cover the corner")
			require.NoError(t, gs.IsLegal(m))
		}
	})

	t.Run("monomino has exactly one opening placement", func(t *testing.T) {
		gs := NewGameState()
		moves, err := gs.LegalMoves()
		require.NoError(t, err)

		count := 0
		for _, m := range moves {
			if m.Piece == 0 {
				count++
			}
		}
		require.Equal(t, 1, count)
	})

	t.Run("blocked player has no placements", func(t *testing.T) {
		gs := NewGameState()
		// Only the monomino left and its corner region walled off by another
		// color.
		gs.Remaining[0] = 1 // just piece 0
		gs.Board[0][0] = 1
		gs.Board[0][1] = 1
		gs.Board[1][0] = 1
		gs.Board[1][1] = 1

		moves, err := gs.LegalMoves()
		require.NoError(t, err)
		require.Empty(t, moves, "pass is the only action left")
	})
}

func TestFinalScores(t *testing.T) {
	gs := NewGameState()
	gs.Remaining[2] = 1 << 10 // only the I pentomino, 5 cells

	scores := gs.FinalScores()
	require.Equal(t, -5, scores[2])
	require.Equal(t, -TotalPieceCells, scores[0])
	require.Equal(t, -TotalPieceCells, scores[1])
	require.Equal(t, -TotalPieceCells, scores[3])
}
