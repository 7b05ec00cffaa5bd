package builder

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aaguilard28/cv-areli/adapters/persistence"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type EngineTestSuite struct {
	suite.Suite
	kv     persistence.KVStore
	engine *Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.kv = persistence.NewMemoryKV()
	s.engine = s.newEngine()
	s.engine.Bootstrap(context.Background())
}

func (s *EngineTestSuite) newEngine() *Engine {
	log := logger.NewNop()
	return NewEngine(
		persistence.NewVersionRepo(s.kv, log),
		persistence.NewSectionRepo(s.kv, log),
		persistence.NewThemeRepo(s.kv, log),
		nil,
		log,
	)
}

func (s *EngineTestSuite) Test_Bootstrap_EmptyStore_CreatesDefaultVersion() {
	state := s.engine.State()

	require.Len(s.T(), state.Versions, 1)
	def := state.Versions[0]
	assert.Equal(s.T(), cv.DefaultVersionName, def.Name)
	assert.Equal(s.T(), cv.TypeGeneral, def.Type)
	assert.Equal(s.T(), def.ID, state.ActiveVersionID)
	assert.Len(s.T(), state.Sections, 7)
	assert.Equal(s.T(), theme.DefaultID, state.Theme)
}

func (s *EngineTestSuite) Test_Bootstrap_DanglingActivePointer_PromotesFirst() {
	ctx := context.Background()
	first := s.engine.State().Versions[0]

	require.NoError(s.T(), s.kv.Set(ctx, persistence.KeyCurrentVersion, []byte("no-such-version")))

	state := s.newEngine().Bootstrap(ctx)
	assert.Equal(s.T(), first.ID, state.ActiveVersionID)
}

func (s *EngineTestSuite) Test_Bootstrap_UnknownTheme_FallsBackToDefault() {
	ctx := context.Background()
	require.NoError(s.T(), s.kv.Set(ctx, persistence.KeyTheme, []byte("neon")))

	state := s.newEngine().Bootstrap(ctx)
	assert.Equal(s.T(), theme.DefaultID, state.Theme)
}

func (s *EngineTestSuite) Test_CreateVersion_BecomesActive() {
	ctx := context.Background()
	created, state := s.engine.CreateVersion(ctx, "Comercial Q3", cv.TypeCommercial, nil)

	assert.NotEmpty(s.T(), created.ID)
	assert.Equal(s.T(), created.ID, state.ActiveVersionID)
	assert.Len(s.T(), state.Versions, 2)
	// Without base data the placeholder template is used.
	assert.Equal(s.T(), cv.PlaceholderDocument().Contact.Email, created.Data.Contact.Email)
}

func (s *EngineTestSuite) Test_CreateVersion_FromBase_ClonesData() {
	ctx := context.Background()
	base := cv.PlaceholderDocument()
	base.Contact.Email = "base@example.com"

	created, _ := s.engine.CreateVersion(ctx, "Derivada", cv.TypeTech, &base)
	assert.Equal(s.T(), "base@example.com", created.Data.Contact.Email)

	// The created version owns its own copy.
	base.Contact.Email = "mutated@example.com"
	active, ok := s.engine.ActiveVersion()
	require.True(s.T(), ok)
	assert.Equal(s.T(), "base@example.com", active.Data.Contact.Email)
}

func (s *EngineTestSuite) Test_CreateVersion_IDsAreUnique() {
	ctx := context.Background()
	seen := map[string]bool{s.engine.State().Versions[0].ID: true}
	for i := 0; i < 10; i++ {
		created, _ := s.engine.CreateVersion(ctx, "v", cv.TypeGeneral, nil)
		assert.False(s.T(), seen[created.ID])
		seen[created.ID] = true
	}
}

func (s *EngineTestSuite) Test_UpdateActiveVersion_MergesAndBumpsUpdatedAt() {
	ctx := context.Background()
	before, _ := s.engine.ActiveVersion()

	email := cv.ContactInfo{Email: "nuevo@example.com"}
	time.Sleep(5 * time.Millisecond)
	state := s.engine.UpdateActiveVersion(ctx, cv.DocumentPatch{Contact: &email})

	after := state.Versions[0]
	assert.Equal(s.T(), "nuevo@example.com", after.Data.Contact.Email)
	// Only the patched field changed.
	assert.Equal(s.T(), before.Data.Profile, after.Data.Profile)
	assert.True(s.T(), after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(s.T(), before.CreatedAt, after.CreatedAt)
}

func (s *EngineTestSuite) Test_SwitchVersion_UnknownID_IsNoOp() {
	ctx := context.Background()
	before := s.engine.State()
	after := s.engine.SwitchVersion(ctx, "ghost")
	assert.Equal(s.T(), before.ActiveVersionID, after.ActiveVersionID)
}

func (s *EngineTestSuite) Test_SwitchVersion_ChangesActivePointer() {
	ctx := context.Background()
	first := s.engine.State().Versions[0]
	second, _ := s.engine.CreateVersion(ctx, "Otra", cv.TypeGeneral, nil)

	state := s.engine.SwitchVersion(ctx, first.ID)
	assert.Equal(s.T(), first.ID, state.ActiveVersionID)

	state = s.engine.SwitchVersion(ctx, second.ID)
	assert.Equal(s.T(), second.ID, state.ActiveVersionID)
}

func (s *EngineTestSuite) Test_DeleteVersion_UnknownID_IsNoOp() {
	ctx := context.Background()
	before := s.engine.State()
	after := s.engine.DeleteVersion(ctx, "ghost")
	assert.Len(s.T(), after.Versions, len(before.Versions))
}

func (s *EngineTestSuite) Test_DeleteActiveVersion_PromotesFirstRemaining() {
	ctx := context.Background()
	first := s.engine.State().Versions[0]
	second, _ := s.engine.CreateVersion(ctx, "B", cv.TypeGeneral, nil)
	third, _ := s.engine.CreateVersion(ctx, "C", cv.TypeGeneral, nil)

	state := s.engine.DeleteVersion(ctx, third.ID)
	require.Len(s.T(), state.Versions, 2)
	assert.Equal(s.T(), first.ID, state.ActiveVersionID)

	state = s.engine.SwitchVersion(ctx, second.ID)
	state = s.engine.DeleteVersion(ctx, first.ID)
	// Deleting an inactive version leaves the pointer alone.
	assert.Equal(s.T(), second.ID, state.ActiveVersionID)
}

func (s *EngineTestSuite) Test_DeleteLastVersion_ClearsActivePointer() {
	ctx := context.Background()
	only := s.engine.State().Versions[0]

	state := s.engine.DeleteVersion(ctx, only.ID)
	assert.Empty(s.T(), state.Versions)
	assert.Empty(s.T(), state.ActiveVersionID)

	// The next bootstrap re-seeds the default version.
	state = s.newEngine().Bootstrap(ctx)
	require.Len(s.T(), state.Versions, 1)
	assert.Equal(s.T(), cv.DefaultVersionName, state.Versions[0].Name)
}

func (s *EngineTestSuite) Test_DuplicateVersion() {
	ctx := context.Background()
	source := s.engine.State().Versions[0]

	copyV, state, ok := s.engine.DuplicateVersion(ctx, source.ID)
	require.True(s.T(), ok)
	assert.Equal(s.T(), source.Name+" (copy)", copyV.Name)
	assert.Equal(s.T(), source.Type, copyV.Type)
	assert.NotEqual(s.T(), source.ID, copyV.ID)
	assert.Equal(s.T(), copyV.ID, state.ActiveVersionID)

	_, _, ok = s.engine.DuplicateVersion(ctx, "ghost")
	assert.False(s.T(), ok)
}

func (s *EngineTestSuite) Test_StateSurvivesReload() {
	ctx := context.Background()
	created, _ := s.engine.CreateVersion(ctx, "Persistida", cv.TypeAcademic, nil)
	s.engine.ToggleSection(ctx, "idiomas")
	_, err := s.engine.ChangeTheme(ctx, "creative", false)
	require.NoError(s.T(), err)

	state := s.newEngine().Bootstrap(ctx)
	assert.Equal(s.T(), created.ID, state.ActiveVersionID)
	assert.Len(s.T(), state.Versions, 2)
	assert.Equal(s.T(), "creative", state.Theme)
	for _, sec := range state.Sections {
		if sec.ID == "idiomas" {
			assert.False(s.T(), sec.Enabled)
		}
	}
}

func (s *EngineTestSuite) Test_State_ReturnsDeepCopies() {
	state := s.engine.State()
	state.Versions[0].Name = "mutated"
	state.Sections[0].Title = "mutated"

	fresh := s.engine.State()
	assert.NotEqual(s.T(), "mutated", fresh.Versions[0].Name)
	assert.NotEqual(s.T(), "mutated", fresh.Sections[0].Title)
}

func (s *EngineTestSuite) Test_EnabledSections_FiltersDisabled() {
	ctx := context.Background()
	s.engine.ToggleSection(ctx, "contacto")

	enabled := s.engine.EnabledSections()
	assert.Len(s.T(), enabled, 6)
	for _, sec := range enabled {
		assert.NotEqual(s.T(), "contacto", sec.ID)
	}
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func TestEngine_Bootstrap_NormalizesStoredOrderGaps(t *testing.T) {
	kv := persistence.NewMemoryKV()
	log := logger.NewNop()
	ctx := context.Background()

	stored := []section.Config{
		{ID: "perfil", Title: "Perfil", Enabled: true, Order: 3},
		{ID: "contacto", Title: "Contacto", Enabled: true, Order: 7},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, persistence.KeySections, raw))

	engine := NewEngine(
		persistence.NewVersionRepo(kv, log),
		persistence.NewSectionRepo(kv, log),
		persistence.NewThemeRepo(kv, log),
		nil,
		log,
	)
	state := engine.Bootstrap(ctx)

	require.Len(t, state.Sections, 2)
	assert.Equal(t, 1, state.Sections[0].Order)
	assert.Equal(t, 2, state.Sections[1].Order)
	assert.Equal(t, "perfil", state.Sections[0].ID)
}
