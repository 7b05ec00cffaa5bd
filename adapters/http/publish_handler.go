package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/publish"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type PublishHandler struct {
	publishUseCase *publish.UseCase
	logger         logger.Logger
}

func NewPublishHandler(uc *publish.UseCase, log logger.Logger) *PublishHandler {
	return &PublishHandler{publishUseCase: uc, logger: log}
}

// Publish captures the active version as a PDF and uploads it, returning the
// public URL.
func (h *PublishHandler) Publish(c *gin.Context) {
	output, err := h.publishUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":        output.URL,
		"version_id": output.VersionID,
	})
}
