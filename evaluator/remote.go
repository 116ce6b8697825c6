package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v4"

	"blokus/game"
)

// Remote calls a neural evaluation backend over HTTP. The backend receives
// the full game state as JSON and answers with a Prediction. Transient
// transport failures are retried; a still-failing backend surfaces as an
// error to the search caller, which decides whether to degrade.
type Remote struct {
	baseURL string
	client  *http.Client
	retries uint
}

// NewRemote returns a Remote evaluator for the given backend base URL.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		retries: 3,
	}
}

// Evaluate implements Evaluator.
func (r *Remote) Evaluate(ctx context.Context, state *game.GameState) (Prediction, error) {
	body, err := json.Marshal(state)
	if err != nil {
		return Prediction{}, fmt.Errorf("encode state: %w", err)
	}

	var pred Prediction
	err = retry.Do(
		func() error {
			return r.post(ctx, body, &pred)
		},
		retry.Attempts(r.retries),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return Prediction{}, fmt.Errorf("evaluator backend: %w", err)
	}
	return pred, nil
}

func (r *Remote) post(ctx context.Context, body []byte, pred *Prediction) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		r.baseURL+"/evaluate", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, msg)
	}
	return json.NewDecoder(resp.Body).Decode(pred)
}
