package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaguilard28/cv-areli/internal/application/usecase/snapshot"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

type SnapshotHandler struct {
	snapshots *snapshot.UseCase
	logger    logger.Logger
}

func NewSnapshotHandler(uc *snapshot.UseCase, log logger.Logger) *SnapshotHandler {
	return &SnapshotHandler{snapshots: uc, logger: log}
}

func (h *SnapshotHandler) Export(c *gin.Context) {
	raw, err := h.snapshots.Export(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cv-backup.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *SnapshotHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read snapshot body", err))
		return
	}

	state, err := h.snapshots.Import(c.Request.Context(), raw)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToStateDTO(state))
}
