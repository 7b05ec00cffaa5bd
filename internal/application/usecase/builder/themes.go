package builder

import (
	"context"

	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
)

// Themes returns the fixed theme registry.
func (e *Engine) Themes() []theme.Config {
	return theme.All()
}

// ChangeTheme selects a registry theme and announces the applied palette plus
// the dark flag on the config stream, which is how the presentation layer
// learns to restyle itself. An unknown id is rejected.
func (e *Engine) ChangeTheme(ctx context.Context, id string, dark bool) (State, error) {
	selected, ok := theme.Lookup(id)
	if !ok {
		return e.State(), apperror.NewInvalidInput("unknown theme id: "+id, nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.themeID = selected.ID
	e.persistTheme(ctx)

	e.emitConfigEvent(service.StateEvent{
		EventType: service.EventThemeChanged,
		Extra: map[string]any{
			"theme_id": selected.ID,
			"colors":   selected.Colors,
			"dark":     dark,
		},
	})

	return e.snapshotLocked(), nil
}
