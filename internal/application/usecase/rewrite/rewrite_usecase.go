package rewrite

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaguilard28/cv-areli/internal/application/service"
	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/pkg/apperror"
	"github.com/aaguilard28/cv-areli/pkg/logger"
)

// UseCase improves a single piece of CV text for a given version type and
// field. It is stateless with respect to the engine: a failed rewrite leaves
// the caller holding the original text, nothing else changes.
type UseCase struct {
	llm    service.LLMService
	logger logger.Logger
}

func NewUseCase(llm service.LLMService, log logger.Logger) *UseCase {
	return &UseCase{llm: llm, logger: log}
}

type Input struct {
	Text        string
	VersionType cv.VersionType
	FieldType   FieldType
}

type Output struct {
	OriginalText  string
	RewrittenText string
}

func (uc *UseCase) Execute(ctx context.Context, input Input) (*Output, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewInvalidInput("text must not be empty", nil)
	}
	if !input.VersionType.Valid() {
		return nil, apperror.NewInvalidInput("unknown version type: "+string(input.VersionType), nil)
	}
	if !input.FieldType.Valid() {
		return nil, apperror.NewInvalidInput("unknown field type: "+string(input.FieldType), nil)
	}

	instruction := prompts[input.VersionType][input.FieldType]
	prompt := fmt.Sprintf("%s\n\nResponde únicamente con el texto mejorado, sin comentarios adicionales.\n\nTexto original:\n%s",
		instruction, input.Text)

	rewritten, err := uc.llm.GenerateChatResponse(ctx, prompt)
	if err != nil {
		return nil, apperror.NewCollaborator("No se pudo mejorar el texto, el texto original se mantiene.", err)
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return nil, apperror.NewCollaborator("No se pudo mejorar el texto, el texto original se mantiene.", nil)
	}

	return &Output{
		OriginalText:  input.Text,
		RewrittenText: rewritten,
	}, nil
}
