package agent

import (
	"context"

	"blokus/evaluator"
	"blokus/game"
	"blokus/searcher"
)

// Decision is the outcome of one searched ply.
type Decision struct {
	// Action is the chosen root edge; Move is the concrete move it stands
	// for.
	Action searcher.Action
	Move   game.Move
	// Policy is the searched visit distribution over piece ids plus pass,
	// the training target for this position.
	Policy [evaluator.NumActions]float64
	// Metrics reports search performance, if collected.
	Metrics searcher.SearchMetrics
}

// Agent picks a ply from a searched position.
type Agent interface {
	FindMove(ctx context.Context, state *game.GameState) (Decision, error)
}
