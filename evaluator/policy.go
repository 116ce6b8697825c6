package evaluator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"blokus/game"
)

// argmaxTemperature is the sharpness below which the softmax degrades to a
// deterministic argmax.
const argmaxTemperature = 1e-8

// MaskPriors converts raw prior weights into a probability distribution over
// the current player's legal piece ids plus pass. Illegal entries carry zero
// mass regardless of raw weight. Temperature controls softmax sharpness; at
// or near zero the single highest-weighted legal action gets probability 1.
// An empty legal set collapses to pass without any normalization.
func MaskPriors(raw [NumActions]float64, legal game.PieceSet, temperature float64) [NumActions]float64 {
	var out [NumActions]float64
	if legal == 0 {
		out[PassIndex] = 1
		return out
	}

	masked := make([]float64, NumActions)
	for i := range masked {
		masked[i] = math.Inf(-1)
	}
	for _, id := range legal.Pieces() {
		masked[id] = raw[id]
	}
	masked[PassIndex] = raw[PassIndex]

	if temperature <= argmaxTemperature {
		out[floats.MaxIdx(masked)] = 1
		return out
	}

	max := floats.Max(masked)
	exps := make([]float64, NumActions)
	for i, v := range masked {
		if math.IsInf(v, -1) {
			continue
		}
		exps[i] = math.Exp((v - max) / temperature)
	}
	floats.Scale(1/floats.Sum(exps), exps)
	copy(out[:], exps)
	return out
}
