package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/consent"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/id"
	"lifeline/internal/shared/logger"
)

type SignConsentCommand struct {
	UserID                  uint
	DocumentVersion         int
	DocumentChecksum        string
	TimeSpentReadingSeconds int
	ScrolledToBottom        bool
	BiometricProof          string
}

type SignConsentUseCase struct {
	documentRepo  consent.DocumentRepository
	signatureRepo consent.SignatureRepository
	verifier      BiometricVerifier
	notifier      AccountNotifier
	logger        logger.Interface
}

func NewSignConsentUseCase(
	documentRepo consent.DocumentRepository,
	signatureRepo consent.SignatureRepository,
	verifier BiometricVerifier,
	notifier AccountNotifier,
	logger logger.Interface,
) *SignConsentUseCase {
	return &SignConsentUseCase{
		documentRepo:  documentRepo,
		signatureRepo: signatureRepo,
		verifier:      verifier,
		notifier:      notifier,
		logger:        logger,
	}
}

// Execute records a signature after every precondition holds. A failed
// attempt leaves no record; only a fully satisfied attestation is persisted.
// The checksum echo pins the signature to the exact text the client showed,
// failing the attempt when the active document changed mid-read.
func (uc *SignConsentUseCase) Execute(ctx context.Context, cmd SignConsentCommand) (*consent.Signature, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewInvalidInputError("user ID is required")
	}

	doc, err := uc.documentRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get active consent document", "error", err)
		return nil, fmt.Errorf("failed to get active consent document: %w", err)
	}
	if doc == nil {
		return nil, consent.ErrNoActiveDocument
	}

	if cmd.DocumentVersion != doc.Version() || cmd.DocumentChecksum != doc.Checksum() {
		return nil, errors.NewInvalidInputError("agreement version is no longer current, re-read required")
	}

	// Identity is established before reading metrics are judged, so an
	// attempt failing both reports the biometric gap first.
	if cmd.BiometricProof == "" {
		return nil, consent.ErrBiometricRequired
	}
	verified, err := uc.verifier.Verify(ctx, cmd.UserID, cmd.BiometricProof)
	if err != nil {
		uc.logger.Errorw("biometric verification unavailable", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("biometric verification unavailable: %w", err)
	}
	if !verified {
		return nil, consent.ErrBiometricRequired
	}

	metrics := consent.ReadingMetrics{
		TimeSpentReadingSeconds: cmd.TimeSpentReadingSeconds,
		ScrolledToBottom:        cmd.ScrolledToBottom,
	}
	if err := doc.CheckReading(metrics); err != nil {
		return nil, err
	}

	sid, err := id.GenerateWithPrefix(id.PrefixConsent, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signature SID: %w", err)
	}

	sig, err := consent.NewSignature(sid, cmd.UserID, doc, metrics, biztime.NowUTC())
	if err != nil {
		return nil, err
	}

	if err := uc.signatureRepo.Create(ctx, sig); err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to persist signature: %v", err))
	}

	if err := uc.notifier.ConsentSatisfied(ctx, cmd.UserID, doc.Version()); err != nil {
		uc.logger.Warnw("failed to notify account service of consent", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("consent signed", "user_id", cmd.UserID, "document_version", doc.Version())
	return sig, nil
}
