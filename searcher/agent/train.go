package agent

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"blokus/evaluator"
	"blokus/game"
	"blokus/searcher"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play during training: it samples
// a piece id (or pass) from the temperature-adjusted visit distribution, then
// commits that piece's most-visited placement.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(ctx context.Context, state *game.GameState) (Decision, error) {
	policy, metrics, err := a.mcts.Search(ctx, state)
	if err != nil {
		return Decision{}, err
	}
	if len(policy) == 0 {
		return Decision{}, fmt.Errorf("search produced no actions")
	}

	target := policy.PieceDistribution()
	dist := adjustTemperature(target, a.temperature)
	slot := a.sample(dist)

	best, ok := bestPlacement(policy, slot)
	if !ok {
		return Decision{}, fmt.Errorf("sampled action %d has no searched child", slot)
	}
	a.mcts.Advance(best.Action)

	return Decision{
		Action:  best.Action,
		Move:    best.Move,
		Policy:  target,
		Metrics: metrics,
	}, nil
}

// adjustTemperature raises each visit fraction to 1/temperature and
// renormalizes. A near-zero temperature collapses onto the most-visited
// slot.
func adjustTemperature(dist [evaluator.NumActions]float64, temperature float64) [evaluator.NumActions]float64 {
	if temperature <= 1e-8 {
		maxIdx := 0
		for i, p := range dist {
			if p > dist[maxIdx] {
				maxIdx = i
			}
		}
		var out [evaluator.NumActions]float64
		out[maxIdx] = 1
		return out
	}

	exponent := 1 / temperature
	sum := 0.0
	var out [evaluator.NumActions]float64
	for i, p := range dist {
		out[i] = math.Pow(p, exponent)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func (a *trainingAgent) sample(dist [evaluator.NumActions]float64) int {
	sampled := a.rng.Float64()
	cumulative := 0.0
	last := 0
	for i, p := range dist {
		if p == 0 {
			continue
		}
		last = i
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return last // Rounding-error fallback
}

// bestPlacement returns the most-visited root edge for the sampled slot:
// the pass edge for the pass slot, otherwise the sampled piece's
// most-visited placement.
func bestPlacement(policy searcher.Policy, slot int) (searcher.ActionStat, bool) {
	var best searcher.ActionStat
	found := false
	for _, stat := range policy {
		if slot == evaluator.PassIndex {
			if stat.Action.Kind != searcher.ActionPass {
				continue
			}
		} else if stat.Action.Kind != searcher.ActionPlace ||
			int(stat.Action.Piece) != slot {
			continue
		}
		if !found || stat.Visits > best.Visits {
			best = stat
			found = true
		}
	}
	return best, found
}
