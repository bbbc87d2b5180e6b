package handlers

import (
	"context"

	viodto "lifeline/internal/application/violation/dto"
	"lifeline/internal/application/violation/usecases"
	"lifeline/internal/domain/violation"
)

// Use case interfaces for ViolationHandler

type reportCaptureUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReportCaptureCommand) (*viodto.ReportResultDTO, error)
}

type getViolationStatusUseCase interface {
	Execute(ctx context.Context, subscriberID uint) (*viodto.ViolationStatusDTO, error)
}

type listViolationsUseCase interface {
	Execute(ctx context.Context, subscriberID uint, page, pageSize int) ([]*violation.Record, int64, error)
}
