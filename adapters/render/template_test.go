package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
)

func testVersion() cv.Version {
	now := time.Now().UTC()
	return cv.Version{
		ID:        cv.NewVersionID(),
		Name:      "Versión de prueba",
		Type:      cv.TypeGeneral,
		Data:      cv.PlaceholderDocument(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDocumentHTML_InlinesThemePalette(t *testing.T) {
	tech, _ := theme.Lookup("tech")

	html, err := DocumentHTML(testVersion(), section.Defaults(), tech)
	require.NoError(t, err)

	assert.Contains(t, html, "--theme-accent: #06d6a0")
	assert.Contains(t, html, "--theme-primary: #0f172a")
	assert.Contains(t, html, "Versión de prueba")
}

func TestDocumentHTML_RendersOnlyGivenSections(t *testing.T) {
	def, _ := theme.Lookup(theme.DefaultID)
	only := []section.Config{
		{ID: "idiomas", Title: "Idiomas", Enabled: true, Order: 1},
	}

	html, err := DocumentHTML(testVersion(), only, def)
	require.NoError(t, err)

	assert.Contains(t, html, `<section id="idiomas">`)
	assert.NotContains(t, html, `<section id="perfil">`)
	assert.NotContains(t, html, `<section id="contacto">`)
	assert.Contains(t, html, "Español")
}

func TestDocumentHTML_EscapesUserContent(t *testing.T) {
	def, _ := theme.Lookup(theme.DefaultID)
	version := testVersion()
	version.Data.Profile = []cv.ProfileItem{{Text: `<script>alert("x")</script>`}}

	html, err := DocumentHTML(version, section.Defaults(), def)
	require.NoError(t, err)

	assert.False(t, strings.Contains(html, `<script>alert`))
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestDocumentHTML_SkillTooltipsAsDetails(t *testing.T) {
	def, _ := theme.Lookup(theme.DefaultID)

	html, err := DocumentHTML(testVersion(), section.Defaults(), def)
	require.NoError(t, err)

	assert.Contains(t, html, "<details>")
	assert.Contains(t, html, "<summary>Liderazgo</summary>")
}
