package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aaguilard28/cv-areli/internal/domain/audit"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// RecordUseCase turns a raw event message from one of the state topics into
// a persisted audit entry. Run by the worker binary.
type RecordUseCase struct {
	repo   audit.Repository
	logger logger.Logger
}

func NewRecordUseCase(repo audit.Repository, log logger.Logger) *RecordUseCase {
	return &RecordUseCase{repo: repo, logger: log}
}

func (uc *RecordUseCase) Execute(ctx context.Context, topic string, value []byte) error {
	var payload map[string]any
	if err := json.Unmarshal(value, &payload); err != nil {
		return fmt.Errorf("unparsable event payload: %w", err)
	}

	eventType, _ := payload["event_type"].(string)
	occurredAt := time.Now().UTC()
	if raw, ok := payload["occurred_at"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			occurredAt = parsed
		}
	}

	entry := &audit.Entry{
		ID:         uuid.New(),
		Topic:      topic,
		EventType:  eventType,
		Payload:    payload,
		OccurredAt: occurredAt,
	}
	return uc.repo.Save(ctx, entry)
}

// ListUseCase exposes the recorded trail to the admin API.
type ListUseCase struct {
	repo audit.Repository
}

func NewListUseCase(repo audit.Repository) *ListUseCase {
	return &ListUseCase{repo: repo}
}

func (uc *ListUseCase) Execute(ctx context.Context, limit int) ([]audit.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.repo.List(ctx, limit)
}
