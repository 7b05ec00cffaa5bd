package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aaguilard28/cv-areli/adapters/persistence"
	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	snapshotUC "github.com/aaguilard28/cv-areli/internal/application/usecase/snapshot"
	"github.com/aaguilard28/cv-areli/internal/config"
	"github.com/aaguilard28/cv-areli/pkg/auth"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

const (
	testOwnerEmail = "owner@example.com"
	testOwnerPass  = "api_test_password_123"
)

type APITestSuite struct {
	suite.Suite
	Router *gin.Engine
	engine *builder.Engine
	token  string
}

func (s *APITestSuite) SetupTest() {
	appLogger := logger.NewNop()
	kv := persistence.NewMemoryKV()

	versionRepo := persistence.NewVersionRepo(kv, appLogger)
	sectionRepo := persistence.NewSectionRepo(kv, appLogger)
	themeRepo := persistence.NewThemeRepo(kv, appLogger)

	s.engine = builder.NewEngine(versionRepo, sectionRepo, themeRepo, nil, appLogger)
	s.engine.Bootstrap(context.Background())

	snapshots := snapshotUC.NewUseCase(kv, versionRepo, sectionRepo, themeRepo, s.engine, nil, false, appLogger)

	hash, err := auth.HashPassword(testOwnerPass)
	require.NoError(s.T(), err)

	cfg := config.Config{}
	cfg.Auth.JWTSecret = "api-test-secret"
	cfg.Auth.TokenLifespan = time.Hour
	cfg.Auth.OwnerEmail = testOwnerEmail
	cfg.Auth.OwnerPasswordHash = hash

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	s.token, err = jwtSvc.GenerateToken(testOwnerEmail)
	require.NoError(s.T(), err)

	authHandler := NewAuthHandler(cfg, jwtSvc, appLogger)
	versionHandler := NewVersionHandler(s.engine, appLogger)
	sectionHandler := NewSectionHandler(s.engine, appLogger)
	themeHandler := NewThemeHandler(s.engine, appLogger)
	snapshotHandler := NewSnapshotHandler(snapshots, appLogger)
	publicHandler := NewPublicHandler(s.engine, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(AuthMiddleware(jwtSvc))
			{
				adminPrivate.GET("/state", versionHandler.GetState)
				adminPrivate.POST("/versions", versionHandler.CreateVersion)
				adminPrivate.PATCH("/versions/active", versionHandler.UpdateActiveVersion)
				adminPrivate.POST("/versions/:id/activate", versionHandler.SwitchVersion)
				adminPrivate.POST("/versions/:id/duplicate", versionHandler.DuplicateVersion)
				adminPrivate.DELETE("/versions/:id", versionHandler.DeleteVersion)
				adminPrivate.POST("/sections", sectionHandler.AddCustomSection)
				adminPrivate.POST("/sections/:id/toggle", sectionHandler.ToggleSection)
				adminPrivate.PUT("/sections/order", sectionHandler.ReorderSections)
				adminPrivate.GET("/themes", themeHandler.ListThemes)
				adminPrivate.PUT("/theme", themeHandler.SelectTheme)
				adminPrivate.GET("/snapshot", snapshotHandler.Export)
				adminPrivate.POST("/snapshot", snapshotHandler.Import)
			}
		}
		api.GET("/cv", publicHandler.GetCV)
	}
	s.Router = router
}

func (s *APITestSuite) request(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) Test_Login() {
	w := s.request(http.MethodPost, "/api/admin/auth/login",
		gin.H{"email": testOwnerEmail, "password": testOwnerPass}, false)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(s.T(), resp.AccessToken)
}

func (s *APITestSuite) Test_Login_WrongPassword() {
	w := s.request(http.MethodPost, "/api/admin/auth/login",
		gin.H{"email": testOwnerEmail, "password": "nope"}, false)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) Test_ProtectedRoutes_RequireToken() {
	w := s.request(http.MethodGet, "/api/admin/state", nil, false)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) Test_GetState() {
	w := s.request(http.MethodGet, "/api/admin/state", nil, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var state StateDTO
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &state))
	assert.Len(s.T(), state.Versions, 1)
	assert.Equal(s.T(), state.Versions[0].ID, state.ActiveVersionID)
	assert.Len(s.T(), state.Sections, 7)
	assert.Equal(s.T(), "default", state.Theme)
}

func (s *APITestSuite) Test_CreateVersion() {
	w := s.request(http.MethodPost, "/api/admin/versions",
		gin.H{"name": "Comercial", "type": "comercial"}, true)
	require.Equal(s.T(), http.StatusCreated, w.Code)

	var resp VersionResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "Comercial", resp.Version.Name)
	assert.Equal(s.T(), resp.Version.ID, resp.State.ActiveVersionID)
	assert.Len(s.T(), resp.State.Versions, 2)
}

func (s *APITestSuite) Test_CreateVersion_RejectsBadRequests() {
	for name, body := range map[string]gin.H{
		"empty name":   {"name": "", "type": "general"},
		"missing name": {"type": "general"},
		"bad type":     {"name": "x", "type": "commercial"},
	} {
		w := s.request(http.MethodPost, "/api/admin/versions", body, true)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, name)
	}
}

func (s *APITestSuite) Test_CreateVersion_FromUnknownBase() {
	w := s.request(http.MethodPost, "/api/admin/versions",
		gin.H{"name": "x", "type": "general", "baseVersionId": "ghost"}, true)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APITestSuite) Test_UpdateActiveVersion_PartialPatch() {
	w := s.request(http.MethodPatch, "/api/admin/versions/active",
		gin.H{"contact": gin.H{"email": "patched@example.com", "phone": "1", "linkedin": "l"}}, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var state StateDTO
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(s.T(), "patched@example.com", state.Versions[0].Data.Contact.Email)
	// Unpatched fields keep their values.
	assert.NotEmpty(s.T(), state.Versions[0].Data.Profile)
}

func (s *APITestSuite) Test_SwitchAndDelete_UnknownIDs_ReturnStateNotError() {
	w := s.request(http.MethodPost, "/api/admin/versions/ghost/activate", nil, true)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/api/admin/versions/ghost", nil, true)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *APITestSuite) Test_DuplicateVersion() {
	source := s.engine.State().Versions[0]

	w := s.request(http.MethodPost, "/api/admin/versions/"+source.ID+"/duplicate", nil, true)
	require.Equal(s.T(), http.StatusCreated, w.Code)

	var resp VersionResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), source.Name+" (copy)", resp.Version.Name)

	w = s.request(http.MethodPost, "/api/admin/versions/ghost/duplicate", nil, true)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APITestSuite) Test_SectionRoutes() {
	w := s.request(http.MethodPost, "/api/admin/sections/perfil/toggle", nil, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodPut, "/api/admin/sections/order",
		gin.H{"fromIndex": 0, "toIndex": 3}, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	// fromIndex 0 must bind even though it is a zero value.
	var state StateDTO
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(s.T(), 7, len(state.Sections))

	w = s.request(http.MethodPut, "/api/admin/sections/order", gin.H{"fromIndex": 0}, true)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/api/admin/sections", gin.H{"title": "Referencias"}, true)
	assert.Equal(s.T(), http.StatusCreated, w.Code)
}

func (s *APITestSuite) Test_ThemeRoutes() {
	w := s.request(http.MethodGet, "/api/admin/themes", nil, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var list ThemeListResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(s.T(), list.Themes, 4)
	assert.Equal(s.T(), "default", list.Current)

	w = s.request(http.MethodPut, "/api/admin/theme", gin.H{"id": "tech"}, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodPut, "/api/admin/theme", gin.H{"id": "neon"}, true)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) Test_SnapshotRoundTripOverHTTP() {
	w := s.request(http.MethodGet, "/api/admin/snapshot", nil, true)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Contains(s.T(), w.Header().Get("Content-Disposition"), "cv-backup.json")
	exported := w.Body.Bytes()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/snapshot", bytes.NewReader(exported))
	req.Header.Set("Authorization", "Bearer "+s.token)
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodPost, "/api/admin/snapshot", nil, true)
	// An empty body is not a parsable snapshot.
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) Test_PublicCV_NeedsNoAuth() {
	w := s.request(http.MethodGet, "/api/cv", nil, false)
	require.Equal(s.T(), http.StatusOK, w.Code)

	var resp PublicCVResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(s.T(), resp.Version)
	assert.Len(s.T(), resp.Sections, 7)
	assert.Equal(s.T(), "default", resp.Theme.ID)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
