package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/rewrite"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type RewriteHandler struct {
	rewriteUseCase *rewrite.UseCase
	logger         logger.Logger
}

func NewRewriteHandler(uc *rewrite.UseCase, log logger.Logger) *RewriteHandler {
	return &RewriteHandler{rewriteUseCase: uc, logger: log}
}

// Rewrite improves one piece of text. On any failure the client keeps its
// original text; the response is a single error message, never a partial
// rewrite.
func (h *RewriteHandler) Rewrite(c *gin.Context) {
	var req RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for rewrite", err))
		return
	}

	output, err := h.rewriteUseCase.Execute(c.Request.Context(), rewrite.Input{
		Text:        req.Text,
		VersionType: cv.VersionType(req.VersionType),
		FieldType:   rewrite.FieldType(req.FieldType),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, RewriteResponse{
		OriginalText:  output.OriginalText,
		RewrittenText: output.RewrittenText,
	})
}
