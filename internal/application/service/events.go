package service

import (
	"context"
	"time"
)

// Event types emitted on the version stream.
const (
	EventVersionCreated  = "version.created"
	EventVersionUpdated  = "version.updated"
	EventVersionSwitched = "version.switched"
	EventVersionDeleted  = "version.deleted"
)

// Event types emitted on the config stream.
const (
	EventSectionToggled   = "section.toggled"
	EventSectionReordered = "section.reordered"
	EventSectionAdded     = "section.added"
	EventThemeChanged     = "theme.changed"
	EventSnapshotImported = "snapshot.imported"
)

type StateEvent struct {
	EventType  string         `json:"event_type"`
	VersionID  string         `json:"version_id,omitempty"`
	Name       string         `json:"name,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// EventPublisher pushes state-change notifications to interested consumers
// (the audit worker, the presentation layer's theme listener). Publishing is
// best-effort; the engine never fails a command over a publish error.
type EventPublisher interface {
	PublishVersionEvent(ctx context.Context, evt StateEvent) error
	PublishConfigEvent(ctx context.Context, evt StateEvent) error
}
