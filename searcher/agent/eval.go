package agent

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"blokus/game"
	"blokus/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent for actual game play during
// evaluation: it always commits the most-visited root action.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, state *game.GameState) (Decision, error) {
	policy, metrics, err := a.mcts.Search(ctx, state)
	if err != nil {
		return Decision{}, err
	}
	if len(policy) == 0 {
		return Decision{}, fmt.Errorf("search produced no actions")
	}

	best := lo.MaxBy(policy, func(a, b searcher.ActionStat) bool {
		return a.Visits > b.Visits
	})
	a.mcts.Advance(best.Action)

	return Decision{
		Action:  best.Action,
		Move:    best.Move,
		Policy:  policy.PieceDistribution(),
		Metrics: metrics,
	}, nil
}
