package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/consent"
	"lifeline/internal/shared/logger"
)

type ListSignaturesUseCase struct {
	signatureRepo consent.SignatureRepository
	logger        logger.Interface
}

func NewListSignaturesUseCase(
	signatureRepo consent.SignatureRepository,
	logger logger.Interface,
) *ListSignaturesUseCase {
	return &ListSignaturesUseCase{
		signatureRepo: signatureRepo,
		logger:        logger,
	}
}

func (uc *ListSignaturesUseCase) Execute(ctx context.Context, userID uint) ([]*consent.Signature, error) {
	sigs, err := uc.signatureRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list signatures", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list signatures: %w", err)
	}

	return sigs, nil
}
