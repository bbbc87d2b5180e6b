package usecases

import (
	"context"

	consentdto "lifeline/internal/application/consent/dto"
	watermarkusecases "lifeline/internal/application/watermark/usecases"
	"lifeline/internal/domain/watermark"
)

// ConsentChecker answers whether a user holds valid consent for the active
// agreement version.
type ConsentChecker interface {
	Execute(ctx context.Context, userID uint) (*consentdto.ConsentStatusDTO, error)
}

// WatermarkIssuer mints a watermark issuance for a viewer-content pair.
type WatermarkIssuer interface {
	Execute(ctx context.Context, cmd watermarkusecases.IssueWatermarkCommand) (*watermark.Issuance, error)
}
