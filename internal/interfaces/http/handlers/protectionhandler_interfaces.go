package handlers

import (
	"context"

	protdto "lifeline/internal/application/protection/dto"
	"lifeline/internal/application/protection/usecases"
	"lifeline/internal/domain/protection"
)

// Use case interfaces for ProtectionHandler

type requestAccessUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestAccessCommand) (*protdto.AccessGrantDTO, error)
}

type listAccessLogUseCase interface {
	Execute(ctx context.Context, contentID string, page, pageSize int) ([]*protection.AccessEntry, int64, error)
}
