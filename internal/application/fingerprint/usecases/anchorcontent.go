package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/fingerprint/ledger"
	"lifeline/internal/domain/fingerprint"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/id"
	"lifeline/internal/shared/logger"
)

type AnchorContentCommand struct {
	ContentID string
	Content   []byte
}

type AnchorContentUseCase struct {
	fingerprintRepo fingerprint.Repository
	anchorClient    ledger.AnchorClient
	logger          logger.Interface
}

func NewAnchorContentUseCase(
	fingerprintRepo fingerprint.Repository,
	anchorClient ledger.AnchorClient,
	logger logger.Interface,
) *AnchorContentUseCase {
	return &AnchorContentUseCase{
		fingerprintRepo: fingerprintRepo,
		anchorClient:    anchorClient,
		logger:          logger,
	}
}

// Execute fingerprints the content and registers it. The fingerprint is
// persisted before the external anchor is attempted; a ledger outage leaves
// a valid unanchored fingerprint behind, picked up later by the re-anchor
// pass, instead of losing the provenance record.
func (uc *AnchorContentUseCase) Execute(ctx context.Context, cmd AnchorContentCommand) (*fingerprint.ContentFingerprint, error) {
	if cmd.ContentID == "" {
		return nil, fmt.Errorf("content ID is required")
	}

	hash, err := fingerprint.ComputeFingerprint(cmd.Content)
	if err != nil {
		return nil, err
	}

	existing, err := uc.fingerprintRepo.GetActiveByContentID(ctx, cmd.ContentID)
	if err != nil {
		uc.logger.Errorw("failed to check existing fingerprint", "content_id", cmd.ContentID, "error", err)
		return nil, fmt.Errorf("failed to check existing fingerprint: %w", err)
	}
	if existing != nil {
		if existing.Hash() == hash {
			// Same bytes re-anchored; the existing record stays canonical.
			return existing, nil
		}
		if err := uc.fingerprintRepo.SupersedeByContentID(ctx, cmd.ContentID); err != nil {
			uc.logger.Errorw("failed to supersede previous fingerprint", "content_id", cmd.ContentID, "error", err)
			return nil, fmt.Errorf("failed to supersede previous fingerprint: %w", err)
		}
	}

	sid, err := id.GenerateWithPrefix(id.PrefixFingerprint, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fingerprint SID: %w", err)
	}

	fp, err := fingerprint.NewContentFingerprint(sid, cmd.ContentID, hash, biztime.NowUTC())
	if err != nil {
		return nil, err
	}

	if err := uc.fingerprintRepo.Create(ctx, fp); err != nil {
		return nil, fmt.Errorf("failed to persist fingerprint: %w", err)
	}

	receipt, err := uc.anchorClient.Anchor(ctx, hash)
	if err != nil {
		uc.logger.Warnw("ledger anchor failed, fingerprint kept unanchored",
			"content_id", cmd.ContentID,
			"error", err,
		)
		return fp, nil
	}

	if err := fp.ConfirmAnchor(receipt.Reference, receipt.AnchoredAt); err != nil {
		return nil, err
	}
	if err := uc.fingerprintRepo.ConfirmAnchor(ctx, fp); err != nil {
		uc.logger.Errorw("failed to persist anchor confirmation", "content_id", cmd.ContentID, "error", err)
		return nil, fmt.Errorf("failed to persist anchor confirmation: %w", err)
	}

	uc.logger.Infow("content anchored",
		"content_id", cmd.ContentID,
		"reference", receipt.Reference,
		"network", receipt.Network,
	)
	return fp, nil
}
