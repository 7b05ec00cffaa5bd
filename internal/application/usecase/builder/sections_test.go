package builder

import (
	"context"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaguilard28/cv-areli/internal/domain/section"
)

func sectionIDs(sections []section.Config) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

func (s *EngineTestSuite) Test_ToggleSection_FlipsEnabledOnly() {
	ctx := context.Background()
	before := s.engine.State().Sections

	after := s.engine.ToggleSection(ctx, "habilidades").Sections
	for i, sec := range after {
		if sec.ID == "habilidades" {
			assert.False(s.T(), sec.Enabled)
		} else {
			assert.Equal(s.T(), before[i].Enabled, sec.Enabled)
		}
		assert.Equal(s.T(), before[i].Order, sec.Order)
	}

	// A second toggle restores the original flag.
	again := s.engine.ToggleSection(ctx, "habilidades").Sections
	assert.Equal(s.T(), before, again)
}

func (s *EngineTestSuite) Test_ToggleSection_UnknownID_IsNoOp() {
	ctx := context.Background()
	before := s.engine.State().Sections
	after := s.engine.ToggleSection(ctx, "ghost").Sections
	assert.Equal(s.T(), before, after)
}

func (s *EngineTestSuite) Test_ReorderSections_MovesAndRenumbers() {
	ctx := context.Background()

	state := s.engine.ReorderSections(ctx, 0, 2)
	sorted := section.Sorted(state.Sections)

	assert.Equal(s.T(),
		[]string{"habilidades", "experiencia", "perfil", "proyectos", "educacion", "idiomas", "contacto"},
		sectionIDs(sorted))
	for i, sec := range sorted {
		assert.Equal(s.T(), i+1, sec.Order)
	}
}

func (s *EngineTestSuite) Test_ReorderSections_OutOfRange_IsNoOp() {
	ctx := context.Background()
	before := s.engine.State().Sections

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {7, 0}, {0, 7}} {
		after := s.engine.ReorderSections(ctx, idx[0], idx[1]).Sections
		assert.Equal(s.T(), before, after)
	}
}

func (s *EngineTestSuite) Test_AddCustomSection() {
	ctx := context.Background()

	added, state := s.engine.AddCustomSection(ctx, "Referencias")

	assert.True(s.T(), strings.HasPrefix(added.ID, section.CustomIDPrefix))
	assert.True(s.T(), added.Enabled)
	assert.Equal(s.T(), "Referencias", added.Title)
	assert.Equal(s.T(), 8, added.Order)

	require.Len(s.T(), state.Sections, 8)
	sorted := section.Sorted(state.Sections)
	assert.Equal(s.T(), added.ID, sorted[len(sorted)-1].ID)
}

func (s *EngineTestSuite) Test_AddCustomSection_IDsNeverCollide() {
	ctx := context.Background()
	a, _ := s.engine.AddCustomSection(ctx, "Uno")
	b, _ := s.engine.AddCustomSection(ctx, "Dos")
	assert.NotEqual(s.T(), a.ID, b.ID)
	assert.Equal(s.T(), 9, b.Order)
}
