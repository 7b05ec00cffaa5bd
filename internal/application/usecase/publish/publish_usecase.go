package publish

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aaguilard28/cv-areli/adapters/render"
	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/application/usecase/builder"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// UseCase captures the active version as a PDF and uploads it, storing the
// resulting URL back into the document's contact block.
type UseCase struct {
	engine   *builder.Engine
	renderer service.Renderer
	uploader service.Uploader
	logger   logger.Logger
}

func NewUseCase(engine *builder.Engine, renderer service.Renderer, uploader service.Uploader, log logger.Logger) *UseCase {
	return &UseCase{
		engine:   engine,
		renderer: renderer,
		uploader: uploader,
		logger:   log,
	}
}

type Output struct {
	URL       string
	VersionID string
}

func (uc *UseCase) Execute(ctx context.Context) (*Output, error) {
	version, ok := uc.engine.ActiveVersion()
	if !ok {
		return nil, apperror.NewNotFound("active version", "none")
	}

	selected, _ := theme.Lookup(uc.engine.State().Theme)
	html, err := render.DocumentHTML(version, uc.engine.EnabledSections(), selected)
	if err != nil {
		return nil, apperror.NewCollaborator("No se pudo generar el documento para captura.", err)
	}

	pdf, err := uc.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, apperror.NewCollaborator("La captura del CV a PDF falló.", err)
	}

	publicID := fmt.Sprintf("%s-%s", version.ID, time.Now().UTC().Format("2006-01-02_15-04-05"))
	url, err := uc.uploader.Upload(ctx, bytes.NewReader(pdf), "cv/exports", publicID)
	if err != nil {
		return nil, apperror.NewCollaborator("No se pudo publicar el PDF generado.", err)
	}

	// The published URL becomes the document's external CV link.
	contact := version.Data.Contact
	contact.CVUrl = url
	uc.engine.UpdateActiveVersion(ctx, cv.DocumentPatch{Contact: &contact})

	uc.logger.Info("Published CV PDF",
		zap.String("version_id", version.ID),
		zap.String("url", url),
	)

	return &Output{URL: url, VersionID: version.ID}, nil
}
