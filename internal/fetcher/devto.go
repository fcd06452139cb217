package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"career-compass/internal/repository"
)

type DevtoFetcher struct {
	client  *http.Client
	apiBase string
}

func NewDevtoFetcher() *DevtoFetcher {
	return &DevtoFetcher{
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		apiBase: "https://dev.to",
	}
}

func (f *DevtoFetcher) Name() string { return "devto" }

type devtoArticle struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	URL                string   `json:"url"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
	TagList            []string `json:"tag_list"`
	PublishedAt        *string  `json:"published_at"`
}

func (f *DevtoFetcher) Fetch(ctx context.Context, skill string, limit int) ([]repository.LearningResourceUpsert, error) {
	if f == nil || f.client == nil {
		return nil, fmt.Errorf("nil fetcher")
	}
	if limit <= 0 {
		limit = 20
	}

	tag := devtoTag(skill)
	if tag == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/api/articles?tag=%s&per_page=%d", strings.TrimRight(f.apiBase, "/"), tag, limit)
	body, err := httpGetWithRetry(ctx, f.client, url, 3)
	if err != nil {
		return nil, err
	}

	var articles []devtoArticle
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, err
	}

	out := make([]repository.LearningResourceUpsert, 0, len(articles))
	for _, a := range articles {
		if strings.TrimSpace(a.URL) == "" || strings.TrimSpace(a.Title) == "" {
			continue
		}
		out = append(out, repository.LearningResourceUpsert{
			SkillName: skill,
			Name:      a.Title,
			Type:      "article",
			URL:       a.URL,
			Source:    "devto",
		})
	}
	return out, nil
}

// devtoTag collapses a skill name onto dev.to's tag format, which allows
// only lowercase letters and digits.
func devtoTag(skill string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(skill)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func httpGetWithRetry(ctx context.Context, client *http.Client, url string, attempts int) ([]byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var body []byte
	var lastErr error
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "CareerCompassFetcher/0.1")
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
			continue
		}
		func() {
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("status %d", resp.StatusCode)
				return
			}
			b, err := readAllLimit(resp.Body, 5<<20)
			if err != nil {
				lastErr = err
				return
			}
			lastErr = nil
			body = b
		}()
		if lastErr == nil {
			return body, nil
		}
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	return nil, lastErr
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}
