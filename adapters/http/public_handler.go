package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// PublicHandler is the read-only surface for the renderer: the active
// document, the enabled sections in order and the selected theme. There is no
// write path back into the engine from here.
type PublicHandler struct {
	engine *builder.Engine
	logger logger.Logger
}

func NewPublicHandler(engine *builder.Engine, log logger.Logger) *PublicHandler {
	return &PublicHandler{engine: engine, logger: log}
}

func (h *PublicHandler) GetCV(c *gin.Context) {
	resp := PublicCVResponse{
		Sections: h.engine.EnabledSections(),
	}

	if version, ok := h.engine.ActiveVersion(); ok {
		resp.Version = &version
	}

	selected, ok := theme.Lookup(h.engine.State().Theme)
	if !ok {
		selected, _ = theme.Lookup(theme.DefaultID)
	}
	resp.Theme = selected

	c.JSON(http.StatusOK, resp)
}
