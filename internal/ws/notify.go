package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type ResourcesUpdatedEvent struct {
	Type      string   `json:"type"`
	Source    string   `json:"source"`
	Skills    []string `json:"skills"`
	Inserted  int      `json:"inserted"`
	Timestamp string   `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyResourcesUpdated(source string, skills []string, inserted int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
	}
	if len(cleaned) == 0 {
		return
	}

	evt := ResourcesUpdatedEvent{
		Type:      "resources_updated",
		Source:    source,
		Skills:    cleaned,
		Inserted:  inserted,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
