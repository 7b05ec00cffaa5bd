package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/application/usecase/snapshot"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// BackupUseCase ships a snapshot export to the upload target, giving the
// owner an off-site copy without downloading the file by hand.
type BackupUseCase struct {
	snapshots *snapshot.UseCase
	uploader  service.Uploader
	logger    logger.Logger
}

func NewBackupUseCase(snapshots *snapshot.UseCase, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		snapshots: snapshots,
		uploader:  uploader,
		logger:    log,
	}
}

type Output struct {
	URL      string
	PublicID string
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*Output, error) {
	raw, err := uc.snapshots.Export(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	folder := "cv/backups"
	publicID := fmt.Sprintf("snapshot-%s", timestamp)

	url, err := uc.uploader.Upload(ctx, bytes.NewReader(raw), folder, publicID)
	if err != nil {
		return nil, apperror.NewCollaborator("No se pudo subir la copia de seguridad.", err)
	}

	uc.logger.Info("Snapshot backup uploaded",
		zap.String("url", url),
		zap.String("public_id", publicID),
	)

	return &Output{URL: url, PublicID: folder + "/" + publicID}, nil
}
