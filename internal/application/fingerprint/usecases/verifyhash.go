package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/fingerprint/dto"
	"lifeline/internal/domain/fingerprint"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/logger"
)

type VerifyHashUseCase struct {
	fingerprintRepo fingerprint.Repository
	logger          logger.Interface
}

func NewVerifyHashUseCase(
	fingerprintRepo fingerprint.Repository,
	logger logger.Interface,
) *VerifyHashUseCase {
	return &VerifyHashUseCase{
		fingerprintRepo: fingerprintRepo,
		logger:          logger,
	}
}

// Execute answers a public verification query. An unknown hash yields
// Found=false; only a malformed hash or a storage failure is an error.
func (uc *VerifyHashUseCase) Execute(ctx context.Context, hash string) (*dto.VerifyResultDTO, error) {
	if !fingerprint.IsValidHash(hash) {
		return nil, errors.NewInvalidInputError("hash must be a hex-encoded SHA-256 digest")
	}

	fp, err := uc.fingerprintRepo.GetByHash(ctx, hash)
	if err != nil {
		uc.logger.Errorw("failed to look up hash", "error", err)
		return nil, fmt.Errorf("failed to look up hash: %w", err)
	}
	if fp == nil {
		return &dto.VerifyResultDTO{Found: false}, nil
	}

	recordedAt := fp.RecordedAt()
	return &dto.VerifyResultDTO{
		Found:           true,
		Anchored:        fp.Anchored(),
		AnchorReference: fp.AnchorReference(),
		RecordedAt:      &recordedAt,
	}, nil
}
