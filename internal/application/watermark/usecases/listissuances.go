package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/watermark"
	"lifeline/internal/shared/logger"
)

type ListIssuancesUseCase struct {
	watermarkRepo watermark.Repository
	logger        logger.Interface
}

func NewListIssuancesUseCase(
	watermarkRepo watermark.Repository,
	logger logger.Interface,
) *ListIssuancesUseCase {
	return &ListIssuancesUseCase{
		watermarkRepo: watermarkRepo,
		logger:        logger,
	}
}

func (uc *ListIssuancesUseCase) Execute(ctx context.Context, contentID string, page, pageSize int) ([]*watermark.Issuance, int64, error) {
	issuances, total, err := uc.watermarkRepo.ListByContent(ctx, contentID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list issuances", "content_id", contentID, "error", err)
		return nil, 0, fmt.Errorf("failed to list issuances: %w", err)
	}

	return issuances, total, nil
}
