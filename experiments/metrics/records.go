// Package metrics holds the record types and CSV writer for self-play
// experiment runs.
package metrics

import (
	"time"

	"blokus/game"
	"blokus/searcher"
)

// MoveRecord is one searched ply of one game.
type MoveRecord struct {
	Game   int
	Ply    int
	Player int
	searcher.SearchMetrics
}

// GameRecord summarizes one self-play game.
type GameRecord struct {
	ID        int
	Plies     int
	Scores    [game.NumPlayers]int
	StartTime time.Time
	Duration  time.Duration
}
