package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/protection/dto"
	watermarkusecases "lifeline/internal/application/watermark/usecases"
	"lifeline/internal/domain/protection"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/id"
	"lifeline/internal/shared/logger"
)

type RequestAccessCommand struct {
	UserID    uint
	ContentID string
}

type RequestAccessUseCase struct {
	consentChecker ConsentChecker
	issuer         WatermarkIssuer
	accessLogRepo  protection.AccessLogRepository
	watermarkKind  string
	logger         logger.Interface
}

func NewRequestAccessUseCase(
	consentChecker ConsentChecker,
	issuer WatermarkIssuer,
	accessLogRepo protection.AccessLogRepository,
	watermarkKind string,
	logger logger.Interface,
) *RequestAccessUseCase {
	return &RequestAccessUseCase{
		consentChecker: consentChecker,
		issuer:         issuer,
		accessLogRepo:  accessLogRepo,
		watermarkKind:  watermarkKind,
		logger:         logger,
	}
}

// Execute is the composed gate in front of protected content. Consent is
// checked first and fails closed; only then is a watermark minted and the
// grant logged. The access-log write carries the same durability requirement
// as violations, so a failed write denies the grant rather than serving
// content with no audit trail.
func (uc *RequestAccessUseCase) Execute(ctx context.Context, cmd RequestAccessCommand) (*dto.AccessGrantDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewInvalidInputError("user ID is required")
	}
	if cmd.ContentID == "" {
		return nil, errors.NewInvalidInputError("content ID is required")
	}

	status, err := uc.consentChecker.Execute(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check consent", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to check consent: %w", err)
	}
	if !status.Valid {
		uc.logger.Infow("access denied, consent missing", "user_id", cmd.UserID, "content_id", cmd.ContentID)
		return nil, errors.NewConsentRequiredError()
	}

	issuance, err := uc.issuer.Execute(ctx, watermarkusecases.IssueWatermarkCommand{
		ContentID: cmd.ContentID,
		ViewerID:  cmd.UserID,
		Kind:      uc.watermarkKind,
	})
	if err != nil {
		return nil, err
	}

	sid, err := id.GenerateWithPrefix(id.PrefixAccessLog, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access entry SID: %w", err)
	}

	grantedAt := biztime.NowUTC()
	entry, err := protection.NewAccessEntry(sid, cmd.UserID, cmd.ContentID, issuance.SID(), grantedAt)
	if err != nil {
		return nil, err
	}

	if err := uc.accessLogRepo.Create(ctx, entry); err != nil {
		uc.logger.Errorw("failed to write access log, denying grant", "user_id", cmd.UserID, "content_id", cmd.ContentID, "error", err)
		return nil, errors.NewStorageError(fmt.Sprintf("failed to write access log: %v", err))
	}

	uc.logger.Infow("protected access granted",
		"user_id", cmd.UserID,
		"content_id", cmd.ContentID,
		"watermark_sid", issuance.SID(),
	)

	return &dto.AccessGrantDTO{
		Granted:        true,
		ContentID:      cmd.ContentID,
		WatermarkSID:   issuance.SID(),
		WatermarkToken: issuance.EmbedToken(),
		WatermarkKind:  issuance.Kind().String(),
		GrantedAt:      grantedAt,
	}, nil
}
