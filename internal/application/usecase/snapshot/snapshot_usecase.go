package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/aaguilard28/cv-areli/adapters/persistence"
	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// Snapshot is the single portable document spanning all aggregates.
// Round-tripping export then import reproduces an identical application
// state except for exportedAt.
type Snapshot struct {
	Versions         []cv.Version     `json:"versions"`
	CurrentVersionID *string          `json:"currentVersionId"`
	SectionsConfig   []section.Config `json:"sectionsConfig"`
	CurrentTheme     string           `json:"currentTheme"`
	ExportedAt       string           `json:"exportedAt"`
}

type UseCase struct {
	kv          persistence.KVStore
	versionRepo cv.Repository
	sectionRepo section.Repository
	themeRepo   themeReader
	engine      *builder.Engine
	events      service.EventPublisher
	strict      bool
	logger      logger.Logger
}

type themeReader interface {
	CurrentTheme(ctx context.Context) string
}

func NewUseCase(
	kv persistence.KVStore,
	versionRepo cv.Repository,
	sectionRepo section.Repository,
	themeRepo themeReader,
	engine *builder.Engine,
	events service.EventPublisher,
	strict bool,
	log logger.Logger,
) *UseCase {
	return &UseCase{
		kv:          kv,
		versionRepo: versionRepo,
		sectionRepo: sectionRepo,
		themeRepo:   themeRepo,
		engine:      engine,
		events:      events,
		strict:      strict,
		logger:      log,
	}
}

// Export assembles the snapshot from fresh storage reads, not from the
// engine's in-memory state, so it reflects exactly what is on disk.
func (uc *UseCase) Export(ctx context.Context) ([]byte, error) {
	snap := Snapshot{
		Versions:       uc.versionRepo.Versions(ctx),
		SectionsConfig: uc.sectionRepo.Sections(ctx),
		CurrentTheme:   uc.themeRepo.CurrentTheme(ctx),
		ExportedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if id := uc.versionRepo.ActiveVersionID(ctx); id != "" {
		snap.CurrentVersionID = &id
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to serialize snapshot", err)
	}
	return raw, nil
}

// rawSnapshot keeps the aggregate fields as raw bytes so that a parsable
// snapshot is applied field-by-field without shape validation; a field that
// turns out to be malformed is handled by the defaulting readers on the next
// load.
type rawSnapshot struct {
	Versions         json.RawMessage `json:"versions"`
	CurrentVersionID *string         `json:"currentVersionId"`
	SectionsConfig   json.RawMessage `json:"sectionsConfig"`
	CurrentTheme     *string         `json:"currentTheme"`
}

// Import applies a snapshot. Unparsable input fails with zero writes.
// Parsable input updates each of the four aggregates independently, only if
// present, so partial snapshots are accepted. Afterwards the engine state is
// reloaded from storage; import never merges into live state directly.
func (uc *UseCase) Import(ctx context.Context, raw []byte) (builder.State, error) {
	var snap rawSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return uc.engine.State(), apperror.NewInvalidInput("snapshot is not valid JSON", err)
	}

	if uc.strict {
		if err := validateSnapshotShape(raw); err != nil {
			return uc.engine.State(), err
		}
	}

	applied := 0
	if fieldPresent(snap.Versions) {
		uc.writeKey(ctx, persistence.KeyVersions, snap.Versions)
		applied++
	}
	if snap.CurrentVersionID != nil && *snap.CurrentVersionID != "" {
		uc.writeKey(ctx, persistence.KeyCurrentVersion, []byte(*snap.CurrentVersionID))
		applied++
	}
	if fieldPresent(snap.SectionsConfig) {
		uc.writeKey(ctx, persistence.KeySections, snap.SectionsConfig)
		applied++
	}
	if snap.CurrentTheme != nil && *snap.CurrentTheme != "" {
		uc.writeKey(ctx, persistence.KeyTheme, []byte(*snap.CurrentTheme))
		applied++
	}

	state := uc.engine.Reload(ctx)

	if uc.events != nil {
		evt := service.StateEvent{
			EventType:  service.EventSnapshotImported,
			OccurredAt: time.Now().UTC(),
			Extra:      map[string]any{"fields_applied": applied},
		}
		if err := uc.events.PublishConfigEvent(ctx, evt); err != nil {
			uc.logger.Warn("Failed to publish import event", zap.Error(err))
		}
	}

	return state, nil
}

func (uc *UseCase) writeKey(ctx context.Context, key string, value []byte) {
	if err := uc.kv.Set(ctx, key, value); err != nil {
		uc.logger.Warn("Failed to write imported aggregate",
			zap.String("key", key), zap.Error(err))
	}
}

func fieldPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
