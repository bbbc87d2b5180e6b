package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/violation/dto"
	"lifeline/internal/domain/violation"
	"lifeline/internal/shared/logger"
)

type GetViolationStatusUseCase struct {
	violationRepo  violation.Repository
	violationLimit int64
	logger         logger.Interface
}

func NewGetViolationStatusUseCase(
	violationRepo violation.Repository,
	violationLimit int64,
	logger logger.Interface,
) *GetViolationStatusUseCase {
	return &GetViolationStatusUseCase{
		violationRepo:  violationRepo,
		violationLimit: violationLimit,
		logger:         logger,
	}
}

// Execute derives the subscriber's enforcement state from the historical
// count. The state is computed, never stored, so it can only move toward
// enforcement as the append-only count grows.
func (uc *GetViolationStatusUseCase) Execute(ctx context.Context, subscriberID uint) (*dto.ViolationStatusDTO, error) {
	total, err := uc.violationRepo.CountBySubscriber(ctx, subscriberID)
	if err != nil {
		uc.logger.Errorw("failed to count violations", "subscriber_id", subscriberID, "error", err)
		return nil, fmt.Errorf("failed to count violations: %w", err)
	}

	var state string
	switch violation.Evaluate(total, uc.violationLimit) {
	case violation.DecisionEnforce:
		state = "enforced"
	case violation.DecisionWarn:
		state = "warned"
	default:
		state = "ok"
	}

	return &dto.ViolationStatusDTO{
		SubscriberID: subscriberID,
		Total:        total,
		State:        state,
	}, nil
}
