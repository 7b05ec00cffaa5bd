package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type ThemeHandler struct {
	engine *builder.Engine
	logger logger.Logger
}

func NewThemeHandler(engine *builder.Engine, log logger.Logger) *ThemeHandler {
	return &ThemeHandler{engine: engine, logger: log}
}

func (h *ThemeHandler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeListResponse{
		Themes:  h.engine.Themes(),
		Current: h.engine.State().Theme,
	})
}

func (h *ThemeHandler) SelectTheme(c *gin.Context) {
	var req SelectThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for theme select", err))
		return
	}

	state, err := h.engine.ChangeTheme(c.Request.Context(), req.ID, req.Dark)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToStateDTO(state))
}
