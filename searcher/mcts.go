// Package searcher implements prior-guided Monte Carlo tree search over the
// Blokus rules engine. Selection follows PUCT, expansion consults an external
// evaluator for piece-level priors, and backup adds the evaluated scalar to
// every ancestor unchanged. Propagating one scalar without perspective
// rotation is a known simplification for a four-player, non-zero-sum game,
// carried over deliberately; a sound alternative would back up per-color
// value vectors and compare component-wise during selection.
package searcher

import (
	"context"
	"fmt"

	"blokus/evaluator"
	"blokus/game"
)

// Option configures an MCTS.
type Option func(*MCTS)

// MCTS runs a fixed budget of simulations from a reusable root. The
// simulation loop is sequential: each selection path depends on the
// statistics of every earlier backup.
type MCTS struct {
	simulations      int
	cPuct            float64
	priorTemperature float64
	evaluate         evaluator.Evaluator
	metrics          MetricsCollector
	root             *node
}

// WithSimulations sets the per-move simulation budget.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

// WithCPuct sets the exploration constant in the PUCT score.
func WithCPuct(cPuct float64) Option {
	return func(m *MCTS) {
		if cPuct > 0 {
			m.cPuct = cPuct
		}
	}
}

// WithPriorTemperature sets the softmax sharpness applied to raw evaluator
// priors during expansion.
func WithPriorTemperature(temperature float64) Option {
	return func(m *MCTS) {
		if temperature >= 0 {
			m.priorTemperature = temperature
		}
	}
}

// WithMetrics installs a metrics collector.
func WithMetrics(collector MetricsCollector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// NewMCTS returns a searcher using the given evaluator.
func NewMCTS(eval evaluator.Evaluator, options ...Option) *MCTS {
	if eval == nil {
		panic("searcher: evaluator is required")
	}
	m := &MCTS{ // Default values
		simulations:      50,
		cPuct:            1.0,
		priorTemperature: 1.0,
		evaluate:         eval,
		metrics:          NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ActionStat is one root edge after a search: the action, the concrete move
// it stands for, and its accumulated statistics.
type ActionStat struct {
	Action Action
	Move   game.Move
	Visits int
	Prior  float64
	Value  float64
}

// Policy is the root statistics of a finished search.
type Policy []ActionStat

// PieceDistribution folds the policy into visit fractions over the 21 piece
// ids plus pass, the shape the training loop stores as its policy target.
func (p Policy) PieceDistribution() [evaluator.NumActions]float64 {
	var dist [evaluator.NumActions]float64
	total := 0
	for _, stat := range p {
		total += stat.Visits
	}
	if total == 0 {
		return dist
	}
	for _, stat := range p {
		i := int(stat.Action.Piece)
		if stat.Action.Kind == ActionPass {
			i = evaluator.PassIndex
		}
		dist[i] += float64(stat.Visits) / float64(total)
	}
	return dist
}

// Search runs the configured simulation budget from the given state and
// returns the root's visit policy. The tree persists between calls: if the
// state matches a subtree kept by Advance, its statistics are reused.
func (m *MCTS) Search(ctx context.Context, state *game.GameState) (Policy, SearchMetrics, error) {
	m.metrics.Start()

	if m.root == nil || *m.root.state != *state {
		m.root = newNode(nil, PassAction, game.PassMove, state.Copy())
		m.metrics.SetTreeReused(false)
	} else {
		m.metrics.SetTreeReused(true)
	}

	// The root is expanded up front so every simulation backs up through
	// exactly one root child.
	if !m.root.expanded && !m.root.state.IsTerminal() {
		pred, err := m.evaluateState(ctx, m.root.state)
		if err != nil {
			return nil, m.metrics.Complete(), err
		}
		if err := m.expand(m.root, pred); err != nil {
			return nil, m.metrics.Complete(), err
		}
	}

	for i := 0; i < m.simulations; i++ {
		if err := m.simulate(ctx); err != nil {
			return nil, m.metrics.Complete(), err
		}
		m.metrics.AddSimulation()
	}

	return m.policy(), m.metrics.Complete(), nil
}

// simulate runs one select-expand-evaluate-backup cycle from the root.
func (m *MCTS) simulate(ctx context.Context) error {
	leaf := m.root
	for leaf.expanded && len(leaf.children) > 0 {
		leaf = leaf.bestChild(m.cPuct)
	}

	var value float64
	if leaf.state.IsTerminal() {
		// Terminal states are never expanded; score them directly.
		value = terminalValue(leaf.state)
	} else {
		pred, err := m.evaluateState(ctx, leaf.state)
		if err != nil {
			return err
		}
		if err := m.expand(leaf, pred); err != nil {
			return err
		}
		value = pred.Value
	}

	leaf.backup(value)
	return nil
}

// expand populates a node's children from the legal moves, splitting each
// piece's masked prior weight evenly across that piece's placements. A pass
// child is created whenever pass carries prior weight, and unconditionally
// when no placement exists so selection always has an edge to descend.
func (m *MCTS) expand(n *node, pred evaluator.Prediction) error {
	moves, err := n.state.LegalMoves()
	if err != nil {
		return err
	}

	priors := evaluator.MaskPriors(pred.Priors,
		n.state.Remaining[n.state.CurrentPlayer], m.priorTemperature)

	byPiece := map[game.PieceID][]game.Move{}
	for _, move := range moves {
		byPiece[move.Piece] = append(byPiece[move.Piece], move)
	}

	n.children = make(map[Action]*node, len(moves)+1)
	n.priors = make(map[Action]float64, len(moves)+1)

	for piece, placements := range byPiece {
		split := priors[piece] / float64(len(placements))
		for i, move := range placements {
			child, err := n.state.Play(move)
			if err != nil {
				// A generated move failed to apply: a defect in candidate
				// generation, never a legitimate outcome.
				return fmt.Errorf("expand: apply enumerated move %v: %w", move, err)
			}
			action := Action{Kind: ActionPlace, Piece: piece, Placement: i}
			n.children[action] = newNode(n, action, move, child)
			n.priors[action] = split
		}
	}

	passPrior := priors[evaluator.PassIndex]
	if passPrior > 0 || len(moves) == 0 {
		if len(moves) == 0 && passPrior == 0 {
			passPrior = 1
		}
		child, err := n.state.Play(game.PassMove)
		if err != nil {
			return fmt.Errorf("expand: apply pass: %w", err)
		}
		n.children[PassAction] = newNode(n, PassAction, game.PassMove, child)
		n.priors[PassAction] = passPrior
	}

	n.expanded = true
	return nil
}

func (m *MCTS) evaluateState(ctx context.Context, state *game.GameState) (evaluator.Prediction, error) {
	pred, err := m.evaluate.Evaluate(ctx, state)
	if err != nil {
		return evaluator.Prediction{}, fmt.Errorf("evaluate state: %w", err)
	}
	m.metrics.AddEvaluatorCall()
	return pred, nil
}

// terminalValue scores a finished game for the color to move in it, scaled
// by a full inventory's cell count so it stays within the evaluator's value
// range.
func terminalValue(state *game.GameState) float64 {
	scores := state.FinalScores()
	return float64(scores[state.CurrentPlayer]) / game.TotalPieceCells
}

func (m *MCTS) policy() Policy {
	policy := make(Policy, 0, len(m.root.children))
	for action, child := range m.root.children {
		policy = append(policy, ActionStat{
			Action: action,
			Move:   child.move,
			Visits: child.visits,
			Prior:  m.root.priors[action],
			Value:  child.meanValue(),
		})
	}
	return policy
}

// Advance commits a real ply: the played child becomes the new root and the
// rest of the old tree is discarded. An action the tree never expanded
// resets the tree.
func (m *MCTS) Advance(action Action) {
	if m.root == nil {
		return
	}
	child, ok := m.root.children[action]
	if !ok {
		m.root = nil
		return
	}
	child.detach()
	m.root = child
}
