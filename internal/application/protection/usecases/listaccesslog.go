package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/protection"
	"lifeline/internal/shared/logger"
)

type ListAccessLogUseCase struct {
	accessLogRepo protection.AccessLogRepository
	logger        logger.Interface
}

func NewListAccessLogUseCase(
	accessLogRepo protection.AccessLogRepository,
	logger logger.Interface,
) *ListAccessLogUseCase {
	return &ListAccessLogUseCase{
		accessLogRepo: accessLogRepo,
		logger:        logger,
	}
}

func (uc *ListAccessLogUseCase) Execute(ctx context.Context, contentID string, page, pageSize int) ([]*protection.AccessEntry, int64, error) {
	entries, total, err := uc.accessLogRepo.ListByContent(ctx, contentID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list access log", "content_id", contentID, "error", err)
		return nil, 0, fmt.Errorf("failed to list access log: %w", err)
	}

	return entries, total, nil
}
