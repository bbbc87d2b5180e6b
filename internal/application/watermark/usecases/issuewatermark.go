package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lifeline/internal/domain/watermark"
	vo "lifeline/internal/domain/watermark/valueobjects"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/id"
	"lifeline/internal/shared/logger"
)

type IssueWatermarkCommand struct {
	ContentID string
	ViewerID  uint
	Kind      string
}

type IssueWatermarkUseCase struct {
	watermarkRepo  watermark.Repository
	tokenGenerator watermark.TokenGenerator
	logger         logger.Interface
}

func NewIssueWatermarkUseCase(
	watermarkRepo watermark.Repository,
	tokenGenerator watermark.TokenGenerator,
	logger logger.Interface,
) *IssueWatermarkUseCase {
	return &IssueWatermarkUseCase{
		watermarkRepo:  watermarkRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Execute mints one issuance for a viewer-content pair. Every call produces
// a fresh token; repeated access by the same viewer yields distinct
// issuances so a leak narrows to one access, not one viewer.
func (uc *IssueWatermarkUseCase) Execute(ctx context.Context, cmd IssueWatermarkCommand) (*watermark.Issuance, error) {
	if cmd.ContentID == "" {
		return nil, errors.NewInvalidInputError("content ID is required")
	}
	if cmd.ViewerID == 0 {
		return nil, errors.NewInvalidInputError("viewer ID is required")
	}

	kind, err := vo.NewKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewInvalidInputError(err.Error())
	}

	issuedAt := biztime.NowUTC()

	embedToken, err := uc.tokenGenerator.Generate(cmd.ContentID, cmd.ViewerID, issuedAt)
	if err != nil {
		uc.logger.Errorw("failed to generate embed token", "content_id", cmd.ContentID, "error", err)
		return nil, fmt.Errorf("failed to generate embed token: %w", err)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixWatermark, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate issuance SID: %w", err)
	}

	issuance, err := watermark.NewIssuance(sid, uuid.New().String(), cmd.ContentID, cmd.ViewerID, embedToken, kind, issuedAt)
	if err != nil {
		return nil, err
	}

	if err := uc.watermarkRepo.Create(ctx, issuance); err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to persist issuance: %v", err))
	}

	return issuance, nil
}
