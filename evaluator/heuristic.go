package evaluator

import (
	"context"
	"math"

	"blokus/game"
)

// Heuristic evaluates without a network: the prior weight of a piece grows
// with its cell count (placing large pieces early is the standard Blokus
// heuristic), and the value compares the current player's leftover cells to
// the other colors' average.
type Heuristic struct{}

// Evaluate implements Evaluator.
func (Heuristic) Evaluate(_ context.Context, state *game.GameState) (Prediction, error) {
	var p Prediction
	for id := game.PieceID(0); id < game.NumPieces; id++ {
		p.Priors[id] = float64(game.CellCount(id))
	}
	// Passing is always a last resort for the heuristic.
	p.Priors[PassIndex] = -1

	p.Value = relativeStanding(state)
	return p, nil
}

// relativeStanding scores the current player's leftover cells against the
// other colors' average, scaled into [-1, 1]. Fewer leftover cells than the
// field is a positive outcome.
func relativeStanding(state *game.GameState) float64 {
	mine := float64(state.Remaining[state.CurrentPlayer].CellSum())
	others := 0.0
	for color, remaining := range state.Remaining {
		if color != state.CurrentPlayer {
			others += float64(remaining.CellSum())
		}
	}
	others /= game.NumPlayers - 1

	v := (others - mine) / game.TotalPieceCells
	return math.Max(-1, math.Min(1, v))
}
