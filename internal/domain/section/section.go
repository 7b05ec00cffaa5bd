package section

import (
	"context"
	"sort"
	"strings"
)

// CustomIDPrefix namespaces ids of user-created sections so they can never
// collide with the fixed system section ids.
const CustomIDPrefix = "custom_"

// Config is the visibility and ordering metadata for one rendered section of
// the document. Order values form a contiguous 1..N permutation at rest.
type Config struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

// IsCustom reports whether the section was added by the user.
func (c Config) IsCustom() bool {
	return strings.HasPrefix(c.ID, CustomIDPrefix)
}

// Defaults returns the seeded section list of a fresh installation.
func Defaults() []Config {
	return []Config{
		{ID: "perfil", Title: "Perfil Profesional", Enabled: true, Order: 1},
		{ID: "habilidades", Title: "Habilidades Destacadas", Enabled: true, Order: 2},
		{ID: "experiencia", Title: "Experiencia Profesional", Enabled: true, Order: 3},
		{ID: "proyectos", Title: "Proyectos de Innovación y Transformación Digital", Enabled: true, Order: 4},
		{ID: "educacion", Title: "Educación Académica", Enabled: true, Order: 5},
		{ID: "idiomas", Title: "Idiomas", Enabled: true, Order: 6},
		{ID: "contacto", Title: "Contacto", Enabled: true, Order: 7},
	}
}

// Sorted returns a copy of the list ordered by the Order field. Reorder
// indices refer to positions in this view, not to raw slice indices.
func Sorted(sections []Config) []Config {
	out := append([]Config(nil), sections...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Normalize sorts the list and re-assigns each entry's Order to its 1-based
// position, removing any gaps or duplicates a mutation left behind.
func Normalize(sections []Config) []Config {
	out := Sorted(sections)
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// Repository persists the full section list. Loads fall back to Defaults()
// when the stored value is absent or unreadable.
type Repository interface {
	Sections(ctx context.Context) []Config
	SaveSections(ctx context.Context, sections []Config) error
}
