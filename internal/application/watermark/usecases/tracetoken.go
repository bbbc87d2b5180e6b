package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/watermark/dto"
	"lifeline/internal/domain/watermark"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/logger"
)

type TraceTokenUseCase struct {
	watermarkRepo watermark.Repository
	logger        logger.Interface
}

func NewTraceTokenUseCase(
	watermarkRepo watermark.Repository,
	logger logger.Interface,
) *TraceTokenUseCase {
	return &TraceTokenUseCase{
		watermarkRepo: watermarkRepo,
		logger:        logger,
	}
}

// Execute resolves an embed token recovered from leaked media back to the
// single issuance that produced it. An unknown token is a normal negative
// result; the token may come from another platform entirely.
func (uc *TraceTokenUseCase) Execute(ctx context.Context, embedToken string) (*dto.TraceResultDTO, error) {
	if embedToken == "" {
		return nil, errors.NewInvalidInputError("embed token is required")
	}

	issuance, err := uc.watermarkRepo.GetByEmbedToken(ctx, embedToken)
	if err != nil {
		uc.logger.Errorw("failed to trace embed token", "error", err)
		return nil, fmt.Errorf("failed to trace embed token: %w", err)
	}
	if issuance == nil {
		return &dto.TraceResultDTO{Found: false}, nil
	}

	uc.logger.Infow("embed token traced",
		"content_id", issuance.ContentID(),
		"viewer_id", issuance.ViewerID(),
		"issued_at", issuance.IssuedAt(),
	)
	return &dto.TraceResultDTO{Found: true, Issuance: dto.IssuanceToDTO(issuance)}, nil
}
