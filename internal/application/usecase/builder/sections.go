package builder

import (
	"context"

	"github.com/google/uuid"

	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
)

func newSectionID() string {
	return uuid.NewString()
}

// ToggleSection flips the enabled flag of the matching section. Order values
// are untouched. An unknown id is silently ignored.
func (e *Engine) ToggleSection(ctx context.Context, id string) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.sections {
		if e.sections[i].ID != id {
			continue
		}
		e.sections[i].Enabled = !e.sections[i].Enabled
		e.persistSections(ctx)

		e.emitConfigEvent(service.StateEvent{
			EventType: service.EventSectionToggled,
			Extra: map[string]any{
				"section_id": id,
				"enabled":    e.sections[i].Enabled,
			},
		})
		break
	}

	return e.snapshotLocked()
}

// ReorderSections moves the section at fromIndex to toIndex. Indices are
// positions in the order-sorted view. Out-of-range indices are silently
// ignored. The resulting list is renormalized to order values 1..N.
func (e *Engine) ReorderSections(ctx context.Context, fromIndex, toIndex int) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	sorted := section.Sorted(e.sections)
	n := len(sorted)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return e.snapshotLocked()
	}

	moved := sorted[fromIndex]
	sorted = append(sorted[:fromIndex], sorted[fromIndex+1:]...)
	sorted = append(sorted[:toIndex], append([]section.Config{moved}, sorted[toIndex:]...)...)

	for i := range sorted {
		sorted[i].Order = i + 1
	}
	e.sections = sorted
	e.persistSections(ctx)

	e.emitConfigEvent(service.StateEvent{
		EventType: service.EventSectionReordered,
		Extra: map[string]any{
			"section_id": moved.ID,
			"from":       fromIndex,
			"to":         toIndex,
		},
	})

	return e.snapshotLocked()
}

// AddCustomSection appends a user-defined section, enabled, at the end of the
// order. The generated id carries the custom prefix so it can never collide
// with a system section id.
func (e *Engine) AddCustomSection(ctx context.Context, title string) (section.Config, State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := section.Config{
		ID:      section.CustomIDPrefix + newSectionID(),
		Title:   title,
		Enabled: true,
		Order:   len(e.sections) + 1,
	}
	e.sections = section.Normalize(append(e.sections, added))
	for _, s := range e.sections {
		if s.ID == added.ID {
			added = s
			break
		}
	}
	e.persistSections(ctx)

	e.emitConfigEvent(service.StateEvent{
		EventType: service.EventSectionAdded,
		Extra: map[string]any{
			"section_id": added.ID,
			"title":      added.Title,
		},
	})

	return added, e.snapshotLocked()
}
