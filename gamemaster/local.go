// Package gamemaster drives complete self-play games and collects the
// trajectories the training loop learns from.
package gamemaster

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"blokus/game"
	"blokus/searcher"
	"blokus/searcher/agent"
)

// Trajectory is the labeled record of one finished self-play game.
type Trajectory struct {
	Samples     []Sample
	MoveMetrics []searcher.SearchMetrics
	Scores      [game.NumPlayers]int
	Plies       int
	Final       *game.GameState
}

// LocalGame plays one four-color game with a single agent acting for every
// color, sharing one search tree across plies.
type LocalGame struct {
	agent    agent.Agent
	maxPlies int

	// start overrides the opening position; nil means a fresh game.
	start func() *game.GameState
}

// NewLocalGame returns a self-play driver. maxPlies caps runaway games; zero
// means no cap.
func NewLocalGame(a agent.Agent, maxPlies int) *LocalGame {
	return &LocalGame{agent: a, maxPlies: maxPlies}
}

// Run plays a game to termination (or the ply cap) and returns the labeled
// trajectory. Each ply contributes one sample: the pre-move state, the
// searched piece-level policy, and the acting color; after the game every
// sample is labeled with its color's final score scaled into the value
// range.
func (g *LocalGame) Run(ctx context.Context) (*Trajectory, error) {
	start := g.start
	if start == nil {
		start = game.NewGameState
	}
	state := start()
	var samples []Sample
	var moveMetrics []searcher.SearchMetrics
	plies := 0

	for !state.IsTerminal() {
		if g.maxPlies > 0 && plies >= g.maxPlies {
			log.Warn().Int("plies", plies).Msg("self-play game hit ply cap")
			break
		}

		decision, err := g.agent.FindMove(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", plies, err)
		}

		samples = append(samples, Sample{
			State:  state,
			Policy: decision.Policy,
			Player: state.CurrentPlayer,
		})
		moveMetrics = append(moveMetrics, decision.Metrics)

		next, err := state.Play(decision.Move)
		if err != nil {
			return nil, fmt.Errorf("ply %d: apply searched move %v: %w",
				plies, decision.Move, err)
		}

		log.Debug().
			Int("ply", plies).
			Int("player", state.CurrentPlayer).
			Stringer("move", decision.Move).
			Int64("simulations", decision.Metrics.Simulations).
			Msg("ply committed")

		state = next
		plies++
	}

	scores := state.FinalScores()
	for i := range samples {
		samples[i].Value = float64(scores[samples[i].Player]) / game.TotalPieceCells
	}

	return &Trajectory{
		Samples:     samples,
		MoveMetrics: moveMetrics,
		Scores:      scores,
		Plies:       plies,
		Final:       state,
	}, nil
}
