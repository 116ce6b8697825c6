package gamemaster

import (
	"fmt"

	"lukechampine.com/frand"

	"blokus/evaluator"
	"blokus/game"
)

// Sample is one training example: a position, the searched policy target
// over piece ids plus pass, the color that acted, and (after the game) that
// color's scaled final score.
type Sample struct {
	State  *game.GameState
	Policy [evaluator.NumActions]float64
	Player int
	Value  float64
}

// ReplayBuffer is a bounded FIFO of training samples. It is not safe for
// concurrent use; each self-play worker should feed it from one goroutine.
type ReplayBuffer struct {
	maxSize int
	samples []Sample
}

// NewReplayBuffer returns a buffer that keeps at most maxSize samples,
// evicting the oldest first.
func NewReplayBuffer(maxSize int) *ReplayBuffer {
	if maxSize <= 0 {
		panic("replay buffer size must be positive")
	}
	return &ReplayBuffer{maxSize: maxSize}
}

// Push appends samples, evicting from the front once over capacity.
func (b *ReplayBuffer) Push(samples []Sample) {
	b.samples = append(b.samples, samples...)
	if over := len(b.samples) - b.maxSize; over > 0 {
		b.samples = append(b.samples[:0:0], b.samples[over:]...)
	}
}

// Sample returns batchSize samples drawn uniformly without replacement.
func (b *ReplayBuffer) Sample(batchSize int) ([]Sample, error) {
	if batchSize > len(b.samples) {
		return nil, fmt.Errorf("batch size %d exceeds buffer size %d",
			batchSize, len(b.samples))
	}
	indices := frand.Perm(len(b.samples))[:batchSize]
	batch := make([]Sample, batchSize)
	for i, idx := range indices {
		batch[i] = b.samples[idx]
	}
	return batch, nil
}

// Len returns the number of buffered samples.
func (b *ReplayBuffer) Len() int {
	return len(b.samples)
}
