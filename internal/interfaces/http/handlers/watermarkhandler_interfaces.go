package handlers

import (
	"context"

	wmdto "lifeline/internal/application/watermark/dto"
	"lifeline/internal/application/watermark/usecases"
	"lifeline/internal/domain/watermark"
)

// Use case interfaces for WatermarkHandler

type issueWatermarkUseCase interface {
	Execute(ctx context.Context, cmd usecases.IssueWatermarkCommand) (*watermark.Issuance, error)
}

type listIssuancesUseCase interface {
	Execute(ctx context.Context, contentID string, page, pageSize int) ([]*watermark.Issuance, int64, error)
}

type traceTokenUseCase interface {
	Execute(ctx context.Context, embedToken string) (*wmdto.TraceResultDTO, error)
}

type embedMediaUseCase interface {
	Execute(ctx context.Context, cmd usecases.EmbedMediaCommand) ([]byte, error)
}
