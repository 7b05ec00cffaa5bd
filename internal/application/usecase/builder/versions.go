package builder

import (
	"context"
	"time"

	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
)

// CreateVersion appends a new version and makes it active. When baseData is
// nil the placeholder document is used. Name validation is the caller's
// responsibility; the engine accepts whatever it is given.
func (e *Engine) CreateVersion(ctx context.Context, name string, vtype cv.VersionType, baseData *cv.Document) (cv.Version, State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	data := cv.PlaceholderDocument()
	if baseData != nil {
		data = baseData.Clone()
	}

	now := time.Now().UTC()
	version := cv.Version{
		ID:        cv.NewVersionID(),
		Name:      name,
		Type:      vtype,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	e.versions = append(e.versions, version)
	e.activeID = version.ID
	e.persistVersions(ctx)
	e.persistActiveID(ctx)

	e.emitVersionEvent(service.StateEvent{
		EventType: service.EventVersionCreated,
		VersionID: version.ID,
		Name:      version.Name,
	})

	return version.Clone(), e.snapshotLocked()
}

// UpdateActiveVersion shallow-merges the patch into the active version's
// document and bumps updatedAt. Without an active version it is a no-op.
func (e *Engine) UpdateActiveVersion(ctx context.Context, patch cv.DocumentPatch) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.versions {
		if e.versions[i].ID != e.activeID {
			continue
		}
		e.versions[i].Data.Apply(patch)
		e.versions[i].UpdatedAt = time.Now().UTC()
		e.persistVersions(ctx)

		e.emitVersionEvent(service.StateEvent{
			EventType: service.EventVersionUpdated,
			VersionID: e.versions[i].ID,
			Name:      e.versions[i].Name,
		})
		break
	}

	return e.snapshotLocked()
}

// SwitchVersion makes id the active version. An unknown id is silently
// ignored.
func (e *Engine) SwitchVersion(ctx context.Context, id string) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasVersion(id) || id == e.activeID {
		return e.snapshotLocked()
	}

	e.activeID = id
	e.persistActiveID(ctx)

	e.emitVersionEvent(service.StateEvent{
		EventType: service.EventVersionSwitched,
		VersionID: id,
	})

	return e.snapshotLocked()
}

// DeleteVersion removes the version with id. Deleting the active version
// promotes the first remaining version, or clears the pointer when the set
// becomes empty. Deleting the last version is permitted; no replacement is
// auto-created until the next Bootstrap. An unknown id is silently ignored.
func (e *Engine) DeleteVersion(ctx context.Context, id string) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasVersion(id) {
		return e.snapshotLocked()
	}

	remaining := make([]cv.Version, 0, len(e.versions)-1)
	var removed cv.Version
	for _, v := range e.versions {
		if v.ID == id {
			removed = v
			continue
		}
		remaining = append(remaining, v)
	}
	e.versions = remaining

	if e.activeID == id {
		if len(e.versions) > 0 {
			e.activeID = e.versions[0].ID
		} else {
			e.activeID = ""
		}
		e.persistActiveID(ctx)
	}
	e.persistVersions(ctx)

	e.emitVersionEvent(service.StateEvent{
		EventType: service.EventVersionDeleted,
		VersionID: removed.ID,
		Name:      removed.Name,
	})

	return e.snapshotLocked()
}

// DuplicateVersion creates a copy of the version with id, named
// "<name> (copy)", same type, same document. The copy becomes active.
func (e *Engine) DuplicateVersion(ctx context.Context, id string) (cv.Version, State, bool) {
	e.mu.Lock()
	var source *cv.Version
	for i := range e.versions {
		if e.versions[i].ID == id {
			source = &e.versions[i]
			break
		}
	}
	if source == nil {
		state := e.snapshotLocked()
		e.mu.Unlock()
		return cv.Version{}, state, false
	}

	name := source.Name + " (copy)"
	vtype := source.Type
	data := source.Data.Clone()
	e.mu.Unlock()

	version, state := e.CreateVersion(ctx, name, vtype, &data)
	return version, state, true
}
