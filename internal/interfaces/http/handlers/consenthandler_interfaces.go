package handlers

import (
	"context"

	consentdto "lifeline/internal/application/consent/dto"
	"lifeline/internal/application/consent/usecases"
	"lifeline/internal/domain/consent"
)

// Use case interfaces for ConsentHandler

type getActiveDocumentUseCase interface {
	Execute(ctx context.Context) (*consentdto.DocumentDTO, error)
}

type signConsentUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignConsentCommand) (*consent.Signature, error)
}

type checkConsentUseCase interface {
	Execute(ctx context.Context, userID uint) (*consentdto.ConsentStatusDTO, error)
}

type revokeConsentUseCase interface {
	Execute(ctx context.Context, cmd usecases.RevokeConsentCommand) (*consent.Signature, error)
}

type listSignaturesUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*consent.Signature, error)
}
