package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/violation"
	"lifeline/internal/shared/logger"
)

type ListViolationsUseCase struct {
	violationRepo violation.Repository
	logger        logger.Interface
}

func NewListViolationsUseCase(
	violationRepo violation.Repository,
	logger logger.Interface,
) *ListViolationsUseCase {
	return &ListViolationsUseCase{
		violationRepo: violationRepo,
		logger:        logger,
	}
}

func (uc *ListViolationsUseCase) Execute(ctx context.Context, subscriberID uint, page, pageSize int) ([]*violation.Record, int64, error) {
	records, total, err := uc.violationRepo.ListBySubscriber(ctx, subscriberID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list violations", "subscriber_id", subscriberID, "error", err)
		return nil, 0, fmt.Errorf("failed to list violations: %w", err)
	}

	return records, total, nil
}
