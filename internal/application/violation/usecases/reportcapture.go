package usecases

import (
	"context"
	"fmt"

	"lifeline/internal/application/violation/dto"
	"lifeline/internal/domain/violation"
	vo "lifeline/internal/domain/violation/valueobjects"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/errors"
	"lifeline/internal/shared/id"
	"lifeline/internal/shared/logger"
)

type ReportCaptureCommand struct {
	SubscriberID uint
	CreatorID    uint
	ContentID    string
	Kind         string
}

type ReportCaptureUseCase struct {
	violationRepo  violation.Repository
	notifier       EnforcementNotifier
	opsMailer      OpsMailer
	violationLimit int64
	logger         logger.Interface
}

func NewReportCaptureUseCase(
	violationRepo violation.Repository,
	notifier EnforcementNotifier,
	opsMailer OpsMailer,
	violationLimit int64,
	logger logger.Interface,
) *ReportCaptureUseCase {
	return &ReportCaptureUseCase{
		violationRepo:  violationRepo,
		notifier:       notifier,
		opsMailer:      opsMailer,
		violationLimit: violationLimit,
		logger:         logger,
	}
}

// Execute appends the violation and evaluates the strike policy against the
// total that includes this very event. The record write is durable before
// any decision is made; a storage failure surfaces to the reporter so the
// event can be retried instead of silently vanishing from the audit trail.
func (uc *ReportCaptureUseCase) Execute(ctx context.Context, cmd ReportCaptureCommand) (*dto.ReportResultDTO, error) {
	kind, err := vo.NewCaptureKind(cmd.Kind)
	if err != nil {
		return nil, errors.NewInvalidInputError(err.Error())
	}

	sid, err := id.GenerateWithPrefix(id.PrefixViolation, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate violation SID: %w", err)
	}

	record, err := violation.NewRecord(sid, cmd.SubscriberID, cmd.CreatorID, cmd.ContentID, kind, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewInvalidInputError(err.Error())
	}

	total, err := uc.violationRepo.CreateAndCount(ctx, record)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to record violation: %v", err))
	}

	decision := violation.Evaluate(total, uc.violationLimit)

	switch decision {
	case violation.DecisionWarn:
		record.MarkWarningIssued()
		if err := uc.violationRepo.MarkWarningIssued(ctx, record.ID()); err != nil {
			uc.logger.Errorw("failed to mark warning issued", "record_id", record.ID(), "error", err)
		}
		if err := uc.opsMailer.SendWarningNotice(cmd.SubscriberID, cmd.ContentID, total); err != nil {
			uc.logger.Warnw("failed to send warning notice", "subscriber_id", cmd.SubscriberID, "error", err)
		}
	case violation.DecisionEnforce:
		if err := uc.notifier.EnforcementTriggered(ctx, cmd.SubscriberID, cmd.ContentID, total); err != nil {
			uc.logger.Errorw("failed to signal enforcement", "subscriber_id", cmd.SubscriberID, "error", err)
		}
		if err := uc.opsMailer.SendEnforcementNotice(cmd.SubscriberID, cmd.ContentID, total); err != nil {
			uc.logger.Warnw("failed to send enforcement notice", "subscriber_id", cmd.SubscriberID, "error", err)
		}
	}

	uc.logger.Infow("capture reported",
		"subscriber_id", cmd.SubscriberID,
		"content_id", cmd.ContentID,
		"kind", kind.String(),
		"total", total,
		"decision", decision.String(),
	)

	return &dto.ReportResultDTO{
		Record:   dto.RecordToDTO(record),
		Total:    total,
		Decision: decision.String(),
	}, nil
}
