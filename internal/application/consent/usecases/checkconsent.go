package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/consent/dto"
	"lifeline/internal/domain/consent"
	"lifeline/internal/shared/logger"
)

type CheckConsentUseCase struct {
	documentRepo  consent.DocumentRepository
	signatureRepo consent.SignatureRepository
	logger        logger.Interface
}

func NewCheckConsentUseCase(
	documentRepo consent.DocumentRepository,
	signatureRepo consent.SignatureRepository,
	logger logger.Interface,
) *CheckConsentUseCase {
	return &CheckConsentUseCase{
		documentRepo:  documentRepo,
		signatureRepo: signatureRepo,
		logger:        logger,
	}
}

// Execute reports whether the user holds valid consent for the active
// document version. A signature for an older version does not count;
// advancing the version implicitly invalidates all prior consent.
func (uc *CheckConsentUseCase) Execute(ctx context.Context, userID uint) (*dto.ConsentStatusDTO, error) {
	doc, err := uc.documentRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get active consent document", "error", err)
		return nil, fmt.Errorf("failed to get active consent document: %w", err)
	}
	if doc == nil {
		// No governing document means nothing can be consented to; fail closed.
		return &dto.ConsentStatusDTO{Valid: false}, nil
	}

	sig, err := uc.signatureRepo.GetValidByUserAndVersion(ctx, userID, doc.Version())
	if err != nil {
		uc.logger.Errorw("failed to look up consent signature", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to look up consent signature: %w", err)
	}
	if sig == nil || !sig.SatisfiesVersion(doc.Version()) {
		return &dto.ConsentStatusDTO{Valid: false, DocumentVersion: doc.Version()}, nil
	}

	signedAt := sig.SignedAt()
	return &dto.ConsentStatusDTO{
		Valid:           true,
		DocumentVersion: doc.Version(),
		SignedAt:        &signedAt,
	}, nil
}
