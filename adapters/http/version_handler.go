package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type VersionHandler struct {
	engine *builder.Engine
	logger logger.Logger
}

func NewVersionHandler(engine *builder.Engine, log logger.Logger) *VersionHandler {
	return &VersionHandler{engine: engine, logger: log}
}

func (h *VersionHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, ToStateDTO(h.engine.State()))
}

// CreateVersion makes a new version, optionally seeded from an existing one.
// Name emptiness is rejected here, at the boundary; the engine itself does
// not validate names.
func (h *VersionHandler) CreateVersion(c *gin.Context) {
	var req CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for version create", err))
		return
	}

	var baseData *cv.Document
	if req.BaseVersionID != "" {
		found := false
		for _, v := range h.engine.State().Versions {
			if v.ID == req.BaseVersionID {
				data := v.Data.Clone()
				baseData = &data
				found = true
				break
			}
		}
		if !found {
			c.Error(apperror.NewNotFound("version", req.BaseVersionID))
			return
		}
	}

	version, state := h.engine.CreateVersion(c.Request.Context(), req.Name, cv.VersionType(req.Type), baseData)
	c.JSON(http.StatusCreated, VersionResponse{Version: version, State: ToStateDTO(state)})
}

// UpdateActiveVersion shallow-merges a partial document into the active
// version.
func (h *VersionHandler) UpdateActiveVersion(c *gin.Context) {
	var patch cv.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for document update", err))
		return
	}

	state := h.engine.UpdateActiveVersion(c.Request.Context(), patch)
	c.JSON(http.StatusOK, ToStateDTO(state))
}

// SwitchVersion activates the referenced version. An unknown id leaves the
// state untouched; the response is the (unchanged) state, not an error.
func (h *VersionHandler) SwitchVersion(c *gin.Context) {
	state := h.engine.SwitchVersion(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, ToStateDTO(state))
}

// DeleteVersion removes the referenced version; unknown ids are ignored.
func (h *VersionHandler) DeleteVersion(c *gin.Context) {
	state := h.engine.DeleteVersion(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, ToStateDTO(state))
}

func (h *VersionHandler) DuplicateVersion(c *gin.Context) {
	id := c.Param("id")
	version, state, ok := h.engine.DuplicateVersion(c.Request.Context(), id)
	if !ok {
		c.Error(apperror.NewNotFound("version", id))
		return
	}
	c.JSON(http.StatusCreated, VersionResponse{Version: version, State: ToStateDTO(state)})
}
