package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auditUC "github.com/aaguilard28/cv-areli/internal/application/usecase/audit"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type AuditHandler struct {
	listUseCase *auditUC.ListUseCase
	logger      logger.Logger
}

func NewAuditHandler(uc *auditUC.ListUseCase, log logger.Logger) *AuditHandler {
	return &AuditHandler{listUseCase: uc, logger: log}
}

func (h *AuditHandler) ListEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.listUseCase.Execute(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
