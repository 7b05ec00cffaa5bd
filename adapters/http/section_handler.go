package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type SectionHandler struct {
	engine *builder.Engine
	logger logger.Logger
}

func NewSectionHandler(engine *builder.Engine, log logger.Logger) *SectionHandler {
	return &SectionHandler{engine: engine, logger: log}
}

func (h *SectionHandler) ToggleSection(c *gin.Context) {
	state := h.engine.ToggleSection(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, ToStateDTO(state))
}

func (h *SectionHandler) ReorderSections(c *gin.Context) {
	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for section reorder", err))
		return
	}

	state := h.engine.ReorderSections(c.Request.Context(), *req.FromIndex, *req.ToIndex)
	c.JSON(http.StatusOK, ToStateDTO(state))
}

func (h *SectionHandler) AddCustomSection(c *gin.Context) {
	var req AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for section add", err))
		return
	}

	added, state := h.engine.AddCustomSection(c.Request.Context(), req.Title)
	c.JSON(http.StatusCreated, gin.H{
		"section": added,
		"state":   ToStateDTO(state),
	})
}
