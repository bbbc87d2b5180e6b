package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/fingerprint"
	"lifeline/internal/shared/logger"
)

type GetBadgeUseCase struct {
	fingerprintRepo fingerprint.Repository
	network         string
	logger          logger.Interface
}

func NewGetBadgeUseCase(
	fingerprintRepo fingerprint.Repository,
	network string,
	logger logger.Interface,
) *GetBadgeUseCase {
	return &GetBadgeUseCase{
		fingerprintRepo: fingerprintRepo,
		network:         network,
		logger:          logger,
	}
}

// Execute returns the trust badge for the content's active fingerprint, or
// nil when the content is unknown or its anchor is not yet confirmed.
func (uc *GetBadgeUseCase) Execute(ctx context.Context, contentID string) (*fingerprint.TrustBadge, error) {
	fp, err := uc.fingerprintRepo.GetActiveByContentID(ctx, contentID)
	if err != nil {
		uc.logger.Errorw("failed to get fingerprint for badge", "content_id", contentID, "error", err)
		return nil, fmt.Errorf("failed to get fingerprint: %w", err)
	}

	return fingerprint.BadgeFor(fp, uc.network), nil
}
