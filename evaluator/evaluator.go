// Package evaluator defines the contract between the search engine and the
// external position evaluator, plus the local implementations used for
// testing and for play without a neural backend. Encoding a state into
// whatever tensor form a backend wants is the backend's concern; the core
// only ships a state and reads back priors and a value.
package evaluator

import (
	"context"

	"blokus/game"
)

// PassIndex is the slot of the pass action in a prior vector: 21 piece
// weights followed by one pass weight.
const PassIndex = game.NumPieces

// NumActions is the length of a prior vector.
const NumActions = game.NumPieces + 1

// Prediction is an evaluator response: one raw prior weight per piece id
// plus pass, and a scalar value estimate in roughly [-1, 1] from the current
// player's perspective. Priors are unmasked and unnormalized; the search
// engine masks them to legal actions before use.
type Prediction struct {
	Priors [NumActions]float64 `json:"priors"`
	Value  float64             `json:"value"`
}

// Evaluator turns a game state into a Prediction. Implementations may batch,
// run on accelerated hardware, or call out over the network, so evaluation
// takes a context and may block.
type Evaluator interface {
	Evaluate(ctx context.Context, state *game.GameState) (Prediction, error)
}

// Uniform is a deterministic stub: equal raw weight on every action and a
// zero value estimate. Masking a zero logit vector yields a uniform
// distribution over the legal actions.
type Uniform struct{}

// Evaluate implements Evaluator.
func (Uniform) Evaluate(context.Context, *game.GameState) (Prediction, error) {
	return Prediction{}, nil
}
