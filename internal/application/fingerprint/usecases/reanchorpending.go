package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/fingerprint/ledger"
	"lifeline/internal/domain/fingerprint"
	"lifeline/internal/shared/logger"
)

const defaultReanchorBatchSize = 50

type ReanchorPendingResult struct {
	Attempted int
	Anchored  int
}

// ReanchorPendingUseCase retries the external anchor for fingerprints that
// were persisted while the ledger was unavailable.
type ReanchorPendingUseCase struct {
	fingerprintRepo fingerprint.Repository
	anchorClient    ledger.AnchorClient
	batchSize       int
	logger          logger.Interface
}

func NewReanchorPendingUseCase(
	fingerprintRepo fingerprint.Repository,
	anchorClient ledger.AnchorClient,
	logger logger.Interface,
) *ReanchorPendingUseCase {
	return &ReanchorPendingUseCase{
		fingerprintRepo: fingerprintRepo,
		anchorClient:    anchorClient,
		batchSize:       defaultReanchorBatchSize,
		logger:          logger,
	}
}

func (uc *ReanchorPendingUseCase) Execute(ctx context.Context) (*ReanchorPendingResult, error) {
	pending, err := uc.fingerprintRepo.ListUnanchored(ctx, uc.batchSize)
	if err != nil {
		uc.logger.Errorw("failed to list unanchored fingerprints", "error", err)
		return nil, fmt.Errorf("failed to list unanchored fingerprints: %w", err)
	}

	result := &ReanchorPendingResult{Attempted: len(pending)}

	for _, fp := range pending {
		receipt, err := uc.anchorClient.Anchor(ctx, fp.Hash())
		if err != nil {
			uc.logger.Warnw("re-anchor attempt failed", "content_id", fp.ContentID(), "error", err)
			continue
		}

		if err := fp.ConfirmAnchor(receipt.Reference, receipt.AnchoredAt); err != nil {
			uc.logger.Warnw("fingerprint no longer anchorable", "content_id", fp.ContentID(), "error", err)
			continue
		}
		if err := uc.fingerprintRepo.ConfirmAnchor(ctx, fp); err != nil {
			uc.logger.Errorw("failed to persist re-anchor", "content_id", fp.ContentID(), "error", err)
			continue
		}

		result.Anchored++
	}

	uc.logger.Infow("re-anchor pass finished", "attempted", result.Attempted, "anchored", result.Anchored)
	return result, nil
}
