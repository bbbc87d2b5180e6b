package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/domain/consent"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/logger"
)

type EnsureDocumentCommand struct {
	Text               string
	MinimumReadSeconds int
}

type EnsureDocumentUseCase struct {
	documentRepo consent.DocumentRepository
	logger       logger.Interface
}

func NewEnsureDocumentUseCase(
	documentRepo consent.DocumentRepository,
	logger logger.Interface,
) *EnsureDocumentUseCase {
	return &EnsureDocumentUseCase{
		documentRepo: documentRepo,
		logger:       logger,
	}
}

// Execute reconciles the configured agreement text with the stored versions
// at startup. Unchanged text is a no-op; changed text activates a new
// version, which silently invalidates every signature of older versions.
func (uc *EnsureDocumentUseCase) Execute(ctx context.Context, cmd EnsureDocumentCommand) (*consent.Document, error) {
	if cmd.Text == "" {
		return nil, fmt.Errorf("agreement text is required")
	}

	active, err := uc.documentRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get active consent document", "error", err)
		return nil, fmt.Errorf("failed to get active consent document: %w", err)
	}

	checksum := consent.ChecksumText(cmd.Text)
	if active != nil && active.Checksum() == checksum {
		return active, nil
	}

	version := 1
	if active != nil {
		version = active.Version() + 1
	}

	doc, err := consent.NewDocument(version, cmd.Text, cmd.MinimumReadSeconds, biztime.NowUTC())
	if err != nil {
		return nil, err
	}

	if err := uc.documentRepo.CreateAndActivate(ctx, doc); err != nil {
		uc.logger.Errorw("failed to activate consent document", "version", version, "error", err)
		return nil, fmt.Errorf("failed to activate consent document: %w", err)
	}

	uc.logger.Infow("consent document activated", "version", version, "checksum", checksum)
	return doc, nil
}
