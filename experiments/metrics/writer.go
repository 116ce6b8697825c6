package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records under a timestamped run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the run directory under baseDir and returns a writer
// for it.
func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{baseDir: dir}, nil
}

// Dir returns the run directory.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteGameRecords writes game_records.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "plies", "score0", "score1", "score2", "score3",
			"start_time", "duration"},
		len(records),
		func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.ID),
				strconv.Itoa(r.Plies),
				strconv.Itoa(r.Scores[0]),
				strconv.Itoa(r.Scores[1]),
				strconv.Itoa(r.Scores[2]),
				strconv.Itoa(r.Scores[3]),
				r.StartTime.Format(time.RFC3339),
				r.Duration.String(),
			}
		})
}

// WriteMoveRecords writes move_records.csv.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeCSV("move_records.csv",
		[]string{"game", "ply", "player", "duration", "simulations",
			"evaluator_calls", "tree_reused"},
		len(records),
		func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.Game),
				strconv.Itoa(r.Ply),
				strconv.Itoa(r.Player),
				r.Duration.String(),
				strconv.FormatInt(r.Simulations, 10),
				strconv.FormatInt(r.EvaluatorCalls, 10),
				strconv.FormatBool(r.TreeReused),
			}
		})
}

func (w *Writer) writeCSV(name string, header []string, n int, row func(int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
