package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/consent/dto"
	"lifeline/internal/domain/consent"
	"lifeline/internal/shared/logger"
)

type GetActiveDocumentUseCase struct {
	documentRepo consent.DocumentRepository
	renderer     MarkdownRenderer
	logger       logger.Interface
}

func NewGetActiveDocumentUseCase(
	documentRepo consent.DocumentRepository,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *GetActiveDocumentUseCase {
	return &GetActiveDocumentUseCase{
		documentRepo: documentRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

// Execute returns the active agreement with its sanitized HTML rendering.
// The raw text and checksum travel with it so the client can prove which
// exact text was shown.
func (uc *GetActiveDocumentUseCase) Execute(ctx context.Context) (*dto.DocumentDTO, error) {
	doc, err := uc.documentRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get active consent document", "error", err)
		return nil, fmt.Errorf("failed to get active consent document: %w", err)
	}
	if doc == nil {
		return nil, consent.ErrNoActiveDocument
	}

	html, err := uc.renderer.ToHTMLSanitized(doc.Text())
	if err != nil {
		uc.logger.Errorw("failed to render consent document", "version", doc.Version(), "error", err)
		return nil, fmt.Errorf("failed to render consent document: %w", err)
	}

	return dto.DocumentToDTO(doc, html), nil
}
