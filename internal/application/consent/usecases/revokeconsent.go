package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/consent"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/logger"
)

type RevokeConsentCommand struct {
	UserID          uint
	DocumentVersion int
	Reason          string
}

type RevokeConsentUseCase struct {
	signatureRepo consent.SignatureRepository
	notifier      AccountNotifier
	logger        logger.Interface
}

func NewRevokeConsentUseCase(
	signatureRepo consent.SignatureRepository,
	notifier AccountNotifier,
	logger logger.Interface,
) *RevokeConsentUseCase {
	return &RevokeConsentUseCase{
		signatureRepo: signatureRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

// Execute revokes the user's valid signature for the given version. The row
// is kept as history; revocation is never undone except by a new signature.
func (uc *RevokeConsentUseCase) Execute(ctx context.Context, cmd RevokeConsentCommand) (*consent.Signature, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewInvalidInputError("user ID is required")
	}
	if cmd.Reason == "" {
		return nil, errors.NewInvalidInputError("revoke reason is required")
	}

	sig, err := uc.signatureRepo.GetValidByUserAndVersion(ctx, cmd.UserID, cmd.DocumentVersion)
	if err != nil {
		uc.logger.Errorw("failed to look up consent signature", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to look up consent signature: %w", err)
	}
	if sig == nil {
		return nil, consent.ErrSignatureNotFound
	}

	if err := sig.Revoke(cmd.Reason, biztime.NowUTC()); err != nil {
		return nil, err
	}

	if err := uc.signatureRepo.UpdateRevocation(ctx, sig); err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to persist revocation: %v", err))
	}

	if err := uc.notifier.ConsentRevoked(ctx, cmd.UserID, cmd.DocumentVersion); err != nil {
		uc.logger.Warnw("failed to notify account service of revocation", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("consent revoked", "user_id", cmd.UserID, "document_version", cmd.DocumentVersion)
	return sig, nil
}
