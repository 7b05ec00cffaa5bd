package theme

import "context"

// DefaultID is the theme applied when no selection has been stored.
const DefaultID = "default"

// Colors are the five named tokens a theme contributes to the rendered page.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

// Config is one immutable registry entry. Themes are never created or
// mutated at runtime; only the selected id changes.
type Config struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

var registry = []Config{
	{
		ID:   DefaultID,
		Name: "Profesional Clásico",
		Colors: Colors{
			Primary:    "#1e2a38",
			Secondary:  "#4a688b",
			Accent:     "#ffd700",
			Text:       "#1f2937",
			Background: "#ffffff",
		},
	},
	{
		ID:   "corporate",
		Name: "Corporativo Sobrio",
		Colors: Colors{
			Primary:    "#1f2937",
			Secondary:  "#374151",
			Accent:     "#3b82f6",
			Text:       "#111827",
			Background: "#f9fafb",
		},
	},
	{
		ID:   "tech",
		Name: "Tech Elegante",
		Colors: Colors{
			Primary:    "#0f172a",
			Secondary:  "#1e293b",
			Accent:     "#06d6a0",
			Text:       "#0f172a",
			Background: "#f8fafc",
		},
	},
	{
		ID:   "creative",
		Name: "Creativo Profesional",
		Colors: Colors{
			Primary:    "#581c87",
			Secondary:  "#7c3aed",
			Accent:     "#f59e0b",
			Text:       "#1f2937",
			Background: "#fefefe",
		},
	},
}

// All returns the registry in its fixed order.
func All() []Config {
	return append([]Config(nil), registry...)
}

// Lookup resolves a registry id.
func Lookup(id string) (Config, bool) {
	for _, t := range registry {
		if t.ID == id {
			return t, true
		}
	}
	return Config{}, false
}

// Repository persists the selected theme id. Loads fall back to DefaultID
// when nothing valid is stored.
type Repository interface {
	CurrentTheme(ctx context.Context) string
	SaveCurrentTheme(ctx context.Context, id string) error
}
