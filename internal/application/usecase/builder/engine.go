package builder

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// Engine owns the authoritative in-memory application state and mediates
// every mutation. Commands serialize on one mutex, so each runs to completion
// against a consistent state; the in-memory state is updated first and stays
// authoritative for the session even when the follow-up write fails.
type Engine struct {
	mu sync.Mutex

	versions []cv.Version
	activeID string
	sections []section.Config
	themeID  string

	versionRepo cv.Repository
	sectionRepo section.Repository
	themeRepo   theme.Repository
	events      service.EventPublisher
	logger      logger.Logger
}

// State is an immutable snapshot of the application state, returned by every
// command for re-render. Mutating a State never affects the engine.
type State struct {
	ActiveVersionID string           `json:"activeVersionId"`
	Versions        []cv.Version     `json:"versions"`
	Sections        []section.Config `json:"sections"`
	Theme           string           `json:"theme"`
}

// NewEngine wires the engine; events may be nil when no broker is configured.
func NewEngine(
	versionRepo cv.Repository,
	sectionRepo section.Repository,
	themeRepo theme.Repository,
	events service.EventPublisher,
	log logger.Logger,
) *Engine {
	return &Engine{
		versionRepo: versionRepo,
		sectionRepo: sectionRepo,
		themeRepo:   themeRepo,
		events:      events,
		logger:      log,
	}
}

// Bootstrap loads all aggregates and establishes the startup invariants:
// a dangling active pointer is re-pointed at the first version, and an empty
// version set gets a default general version which becomes active.
func (e *Engine) Bootstrap(ctx context.Context) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.versions = e.versionRepo.Versions(ctx)
	e.activeID = e.versionRepo.ActiveVersionID(ctx)
	e.sections = section.Normalize(e.sectionRepo.Sections(ctx))
	e.themeID = e.themeRepo.CurrentTheme(ctx)

	if _, ok := theme.Lookup(e.themeID); !ok {
		e.themeID = theme.DefaultID
	}

	if len(e.versions) == 0 {
		now := time.Now().UTC()
		def := cv.Version{
			ID:        cv.NewVersionID(),
			Name:      cv.DefaultVersionName,
			Type:      cv.TypeGeneral,
			Data:      cv.PlaceholderDocument(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		e.versions = []cv.Version{def}
		e.activeID = def.ID
		e.persistVersions(ctx)
		e.persistActiveID(ctx)
		e.logger.Info("Bootstrapped default version", zap.String("version_id", def.ID))
	} else if !e.hasVersion(e.activeID) {
		e.activeID = e.versions[0].ID
		e.persistActiveID(ctx)
		e.logger.Warn("Active version pointer was dangling, promoted first version",
			zap.String("version_id", e.activeID))
	}

	return e.snapshotLocked()
}

// Reload re-reads every aggregate from storage, discarding in-memory state.
// Used after a snapshot import so that imported data becomes live.
func (e *Engine) Reload(ctx context.Context) State {
	return e.Bootstrap(ctx)
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// ActiveVersion returns a copy of the active version, if any.
func (e *Engine) ActiveVersion() (cv.Version, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, v := range e.versions {
		if v.ID == e.activeID {
			return v.Clone(), true
		}
	}
	return cv.Version{}, false
}

// EnabledSections returns the enabled sections in render order.
func (e *Engine) EnabledSections() []section.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]section.Config, 0, len(e.sections))
	for _, s := range section.Sorted(e.sections) {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func (e *Engine) snapshotLocked() State {
	versions := make([]cv.Version, len(e.versions))
	for i, v := range e.versions {
		versions[i] = v.Clone()
	}
	return State{
		ActiveVersionID: e.activeID,
		Versions:        versions,
		Sections:        append([]section.Config(nil), e.sections...),
		Theme:           e.themeID,
	}
}

func (e *Engine) hasVersion(id string) bool {
	if id == "" {
		return false
	}
	for _, v := range e.versions {
		if v.ID == id {
			return true
		}
	}
	return false
}

// Persistence is best-effort: a failed write is logged and the in-memory
// state remains the source of truth. There is no automatic retry.

func (e *Engine) persistVersions(ctx context.Context) {
	if err := e.versionRepo.SaveVersions(ctx, e.versions); err != nil {
		e.logger.Warn("Failed to persist version set", zap.Error(err))
	}
}

func (e *Engine) persistActiveID(ctx context.Context) {
	if err := e.versionRepo.SaveActiveVersionID(ctx, e.activeID); err != nil {
		e.logger.Warn("Failed to persist active version id", zap.Error(err))
	}
}

func (e *Engine) persistSections(ctx context.Context) {
	if err := e.sectionRepo.SaveSections(ctx, e.sections); err != nil {
		e.logger.Warn("Failed to persist sections config", zap.Error(err))
	}
}

func (e *Engine) persistTheme(ctx context.Context) {
	if err := e.themeRepo.SaveCurrentTheme(ctx, e.themeID); err != nil {
		e.logger.Warn("Failed to persist theme selection", zap.Error(err))
	}
}

const publishTimeout = 5 * time.Second

func (e *Engine) emitVersionEvent(evt service.StateEvent) {
	if e.events == nil {
		return
	}
	evt.OccurredAt = time.Now().UTC()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := e.events.PublishVersionEvent(ctx, evt); err != nil {
			e.logger.Warn("Failed to publish version event",
				zap.String("event_type", evt.EventType), zap.Error(err))
		}
	}()
}

func (e *Engine) emitConfigEvent(evt service.StateEvent) {
	if e.events == nil {
		return
	}
	evt.OccurredAt = time.Now().UTC()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := e.events.PublishConfigEvent(ctx, evt); err != nil {
			e.logger.Warn("Failed to publish config event",
				zap.String("event_type", evt.EventType), zap.Error(err))
		}
	}()
}
