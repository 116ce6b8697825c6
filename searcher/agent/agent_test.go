package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"blokus/evaluator"
	"blokus/game"
	"blokus/searcher"
)

// monominoState hands every color only the monomino, keeping the search tree
// to a pass edge and a single placement per node.
func monominoState() *game.GameState {
	gs := game.NewGameState()
	for color := range gs.Remaining {
		gs.Remaining[color] = 1
	}
	return gs
}

func TestAdjustTemperature(t *testing.T) {
	var dist [evaluator.NumActions]float64
	dist[3] = 0.6
	dist[7] = 0.3
	dist[evaluator.PassIndex] = 0.1

	t.Run("temperature one leaves the distribution alone", func(t *testing.T) {
		out := adjustTemperature(dist, 1.0)
		require.InDelta(t, 0.6, out[3], 1e-9)
		require.InDelta(t, 0.3, out[7], 1e-9)
		require.InDelta(t, 0.1, out[evaluator.PassIndex], 1e-9)
	})

	t.Run("near-zero temperature collapses onto the mode", func(t *testing.T) {
		out := adjustTemperature(dist, 0)
		require.Equal(t, 1.0, out[3])
		require.Zero(t, out[7])
		require.Zero(t, out[evaluator.PassIndex])
	})

	t.Run("low temperature sharpens, high temperature flattens", func(t *testing.T) {
		sharp := adjustTemperature(dist, 0.5)
		require.Greater(t, sharp[3], dist[3])

		flat := adjustTemperature(dist, 4.0)
		require.Less(t, flat[3], dist[3])
		require.Greater(t, flat[evaluator.PassIndex], dist[evaluator.PassIndex])
	})
}

func TestBestPlacement(t *testing.T) {
	policy := searcher.Policy{
		{Action: searcher.Action{Kind: searcher.ActionPlace, Piece: 4, Placement: 0}, Visits: 2},
		{Action: searcher.Action{Kind: searcher.ActionPlace, Piece: 4, Placement: 1}, Visits: 7},
		{Action: searcher.Action{Kind: searcher.ActionPlace, Piece: 9, Placement: 0}, Visits: 5},
		{Action: searcher.PassAction, Visits: 1},
	}

	t.Run("picks the sampled piece's most-visited placement", func(t *testing.T) {
		best, ok := bestPlacement(policy, 4)
		require.True(t, ok)
		require.Equal(t, 1, best.Action.Placement)
		require.Equal(t, 7, best.Visits)
	})

	t.Run("pass slot maps to the pass edge", func(t *testing.T) {
		best, ok := bestPlacement(policy, evaluator.PassIndex)
		require.True(t, ok)
		require.Equal(t, searcher.PassAction, best.Action)
	})

	t.Run("unsearched piece reports not found", func(t *testing.T) {
		_, ok := bestPlacement(policy, 15)
		require.False(t, ok)
	})
}

func TestEvaluationAgent(t *testing.T) {
	mcts := searcher.NewMCTS(evaluator.Heuristic{}, searcher.WithSimulations(30))
	a := NewEvaluationAgent(mcts)
	state := monominoState()

	decision, err := a.FindMove(context.Background(), state)
	require.NoError(t, err)
	require.NoError(t, state.IsLegal(decision.Move))

	// The lone placement carries almost all the prior mass, so it must
	// out-visit the pass edge.
	require.False(t, decision.Move.Pass)
	require.Greater(t, decision.Policy[0], decision.Policy[evaluator.PassIndex])

	sum := 0.0
	for _, p := range decision.Policy {
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestTrainingAgentPlaysLegalMoves(t *testing.T) {
	mcts := searcher.NewMCTS(evaluator.Uniform{}, searcher.WithSimulations(20))
	a := NewTrainingAgent(mcts, 1.0, 7)

	state := game.NewGameState()
	for ply := 0; ply < 4; ply++ {
		decision, err := a.FindMove(context.Background(), state)
		require.NoError(t, err)
		require.NoError(t, state.IsLegal(decision.Move))

		next, err := state.Play(decision.Move)
		require.NoError(t, err)
		state = next
	}
	require.Zero(t, state.CurrentPlayer, "four plies cycle back to the first color")
}

func TestTrainingAgentCommitsModeAtZeroTemperature(t *testing.T) {
	mcts := searcher.NewMCTS(evaluator.Heuristic{}, searcher.WithSimulations(25))
	a := NewTrainingAgent(mcts, 0, 1)

	decision, err := a.FindMove(context.Background(), monominoState())
	require.NoError(t, err)

	mode := 0
	for i, p := range decision.Policy {
		if p > decision.Policy[mode] {
			mode = i
		}
	}
	if mode == evaluator.PassIndex {
		require.Equal(t, searcher.ActionPass, decision.Action.Kind)
	} else {
		require.Equal(t, searcher.ActionPlace, decision.Action.Kind)
		require.Equal(t, mode, int(decision.Action.Piece))
	}
}
