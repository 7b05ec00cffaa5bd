package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded state-change event, written by the worker as it
// drains the event topics.
type Entry struct {
	ID         uuid.UUID      `json:"id"`
	Topic      string         `json:"topic"`
	EventType  string         `json:"event_type"`
	Payload    map[string]any `json:"payload"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	List(ctx context.Context, limit int) ([]Entry, error)
}
