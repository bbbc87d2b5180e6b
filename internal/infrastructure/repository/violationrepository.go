package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifeline/internal/domain/violation"
	"lifeline/internal/infrastructure/persistence/mappers"
	"lifeline/internal/infrastructure/persistence/models"
	"lifeline/internal/shared/db"
	"lifeline/internal/shared/logger"
)

type ViolationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ViolationMapper
	logger logger.Interface
}

func NewViolationRepository(
	db *gorm.DB,
	logger logger.Interface,
) violation.Repository {
	return &ViolationRepositoryImpl{
		db:     db,
		mapper: mappers.NewViolationMapper(),
		logger: logger,
	}
}

// CreateAndCount inserts the record and bumps the per-subscriber counter in
// one transaction. The counter row is the serialization point: the atomic
// increment means two concurrent reports for the same subscriber each see a
// distinct total, so the three-strike threshold cannot be skipped over.
func (r *ViolationRepositoryImpl) CreateAndCount(ctx context.Context, record *violation.Record) (int64, error) {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		r.logger.Errorw("failed to map violation record to model", "error", err)
		return 0, fmt.Errorf("failed to map violation record: %w", err)
	}

	var total int64
	err = db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create violation record: %w", err)
		}

		counter := models.ViolationCounterModel{SubscriberID: record.SubscriberID(), Total: 1}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscriber_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"total": gorm.Expr("total + 1")}),
		}).Create(&counter).Error
		if err != nil {
			return fmt.Errorf("failed to increment violation counter: %w", err)
		}

		var row models.ViolationCounterModel
		if err := tx.Where("subscriber_id = ?", record.SubscriberID()).First(&row).Error; err != nil {
			return fmt.Errorf("failed to read violation counter: %w", err)
		}
		total = row.Total

		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to record violation", "subscriber_id", record.SubscriberID(), "error", err)
		return 0, err
	}

	if err := record.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set violation record ID", "error", err)
		return 0, fmt.Errorf("failed to set violation record ID: %w", err)
	}

	r.logger.Infow("violation recorded",
		"id", model.ID,
		"subscriber_id", model.SubscriberID,
		"content_id", model.ContentID,
		"total", total,
	)
	return total, nil
}

func (r *ViolationRepositoryImpl) CountBySubscriber(ctx context.Context, subscriberID uint) (int64, error) {
	var row models.ViolationCounterModel

	if err := db.GetTxFromContext(ctx, r.db).Where("subscriber_id = ?", subscriberID).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		r.logger.Errorw("failed to count violations", "subscriber_id", subscriberID, "error", err)
		return 0, fmt.Errorf("failed to count violations: %w", err)
	}

	return row.Total, nil
}

func (r *ViolationRepositoryImpl) ListBySubscriber(ctx context.Context, subscriberID uint, page, pageSize int) ([]*violation.Record, int64, error) {
	var modelList []*models.ViolationRecordModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ViolationRecordModel{}).
		Where("subscriber_id = ?", subscriberID)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count violation records", "subscriber_id", subscriberID, "error", err)
		return nil, 0, fmt.Errorf("failed to count violation records: %w", err)
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("detected_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list violation records", "subscriber_id", subscriberID, "error", err)
		return nil, 0, fmt.Errorf("failed to list violation records: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map violation models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map violation records: %w", err)
	}

	return entities, total, nil
}

func (r *ViolationRepositoryImpl) MarkWarningIssued(ctx context.Context, recordID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ViolationRecordModel{}).
		Where("id = ?", recordID).
		Update("warning_issued", true).Error
	if err != nil {
		r.logger.Errorw("failed to mark warning issued", "id", recordID, "error", err)
		return fmt.Errorf("failed to mark warning issued: %w", err)
	}

	return nil
}
