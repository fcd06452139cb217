package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Notifier posts fetch completion events to the API server so it can
// invalidate caches and push updates to connected clients.
type Notifier struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewNotifier returns nil when baseURL is empty; a nil Notifier skips
// all notifications.
func NewNotifier(baseURL, token string) *Notifier {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	return &Notifier{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		token:   token,
	}
}

type completedPayload struct {
	TaskID      string   `json:"task_id"`
	Source      string   `json:"source"`
	Skills      []string `json:"skills"`
	Inserted    int      `json:"inserted"`
	CompletedAt string   `json:"completed_at"`
}

func (n *Notifier) NotifyCompleted(ctx context.Context, source string, skills []string, inserted int) error {
	if n == nil {
		return nil
	}

	payload := completedPayload{
		TaskID:      uuid.NewString(),
		Source:      source,
		Skills:      skills,
		Inserted:    inserted,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/api/v1/internal/fetch-completed", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Token", n.token)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify completed: unexpected status %d", resp.StatusCode)
	}
	return nil
}
