package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/backup"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type BackupHandler struct {
	backups *backup.BackupUseCase
	logger  logger.Logger
}

func NewBackupHandler(uc *backup.BackupUseCase, log logger.Logger) *BackupHandler {
	return &BackupHandler{backups: uc, logger: log}
}

func (h *BackupHandler) CreateBackup(c *gin.Context) {
	out, err := h.backups.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": out.URL})
}
