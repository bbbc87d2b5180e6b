package handlers

import (
	"context"

	fpdto "lifeline/internal/application/fingerprint/dto"
	"lifeline/internal/application/fingerprint/usecases"
	"lifeline/internal/domain/fingerprint"
)

// Use case interfaces for TrustHandler

type anchorContentUseCase interface {
	Execute(ctx context.Context, cmd usecases.AnchorContentCommand) (*fingerprint.ContentFingerprint, error)
}

type verifyHashUseCase interface {
	Execute(ctx context.Context, hash string) (*fpdto.VerifyResultDTO, error)
}

type getBadgeUseCase interface {
	Execute(ctx context.Context, contentID string) (*fingerprint.TrustBadge, error)
}

type reanchorPendingUseCase interface {
	Execute(ctx context.Context) (*usecases.ReanchorPendingResult, error)
}
