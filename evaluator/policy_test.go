package evaluator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"blokus/game"
)

func TestMaskPriors(t *testing.T) {
	t.Run("illegal pieces carry zero mass", func(t *testing.T) {
		var raw [NumActions]float64
		raw[3] = 10 // high weight on a piece the player no longer holds

		legal := game.PieceSet(1<<0 | 1<<1)
		dist := MaskPriors(raw, legal, 1.0)

		require.Zero(t, dist[3])
		require.Positive(t, dist[0])
		require.Positive(t, dist[1])
		require.Positive(t, dist[PassIndex], "pass is always a legal action")

		sum := 0.0
		for _, p := range dist {
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("zero temperature degrades to argmax", func(t *testing.T) {
		var raw [NumActions]float64
		raw[2] = 1
		raw[5] = 3
		raw[7] = 2

		legal := game.PieceSet(1<<2 | 1<<5 | 1<<7)
		dist := MaskPriors(raw, legal, 0)

		require.Equal(t, 1.0, dist[5])
		for i, p := range dist {
			if i != 5 {
				require.Zero(t, p, "index %d", i)
			}
		}
	})

	t.Run("argmax ignores illegal maxima", func(t *testing.T) {
		var raw [NumActions]float64
		raw[4] = 100 // illegal
		raw[6] = 1

		dist := MaskPriors(raw, game.PieceSet(1<<6), 0)
		require.Equal(t, 1.0, dist[6])
	})

	t.Run("empty legal set collapses to pass", func(t *testing.T) {
		var raw [NumActions]float64
		raw[0] = 5

		dist := MaskPriors(raw, 0, 1.0)
		require.Equal(t, 1.0, dist[PassIndex])
		for i := 0; i < PassIndex; i++ {
			require.Zero(t, dist[i])
		}
	})

	t.Run("uniform logits give uniform legal mass", func(t *testing.T) {
		var raw [NumActions]float64
		legal := game.PieceSet(1<<0 | 1<<9)

		dist := MaskPriors(raw, legal, 1.0)
		require.InDelta(t, 1.0/3, dist[0], 1e-9)
		require.InDelta(t, 1.0/3, dist[9], 1e-9)
		require.InDelta(t, 1.0/3, dist[PassIndex], 1e-9)
	})
}
