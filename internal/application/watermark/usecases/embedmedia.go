package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/watermark"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/logger"
)

type EmbedMediaCommand struct {
	Media      []byte
	EmbedToken string
}

type EmbedMediaUseCase struct {
	watermarkRepo watermark.Repository
	embedder      watermark.Embedder
	logger        logger.Interface
}

func NewEmbedMediaUseCase(
	watermarkRepo watermark.Repository,
	embedder watermark.Embedder,
	logger logger.Interface,
) *EmbedMediaUseCase {
	return &EmbedMediaUseCase{
		watermarkRepo: watermarkRepo,
		embedder:      embedder,
		logger:        logger,
	}
}

// Execute marks media bytes with an already issued token. A failed embed is
// an error, never a passthrough: serving unmarked protected media defeats
// the whole issuance log.
func (uc *EmbedMediaUseCase) Execute(ctx context.Context, cmd EmbedMediaCommand) ([]byte, error) {
	if len(cmd.Media) == 0 {
		return nil, errors.NewInvalidInputError("media is required")
	}

	issuance, err := uc.watermarkRepo.GetByEmbedToken(ctx, cmd.EmbedToken)
	if err != nil {
		uc.logger.Errorw("failed to resolve embed token", "error", err)
		return nil, fmt.Errorf("failed to resolve embed token: %w", err)
	}
	if issuance == nil {
		return nil, errors.NewInvalidInputError("unknown embed token")
	}

	marked, err := uc.embedder.Embed(cmd.Media, issuance.EmbedToken(), issuance.Kind())
	if err != nil {
		uc.logger.Errorw("failed to embed watermark",
			"content_id", issuance.ContentID(),
			"viewer_id", issuance.ViewerID(),
			"error", err,
		)
		return nil, fmt.Errorf("failed to embed watermark: %w", err)
	}

	return marked, nil
}
