package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lifeline/internal/domain/protection"
	"lifeline/internal/infrastructure/persistence/mappers"
	"lifeline/internal/infrastructure/persistence/models"
	"lifeline/internal/shared/db"
	"lifeline/internal/shared/logger"
)

type AccessLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AccessLogMapper
	logger logger.Interface
}

func NewAccessLogRepository(
	db *gorm.DB,
	logger logger.Interface,
) protection.AccessLogRepository {
	return &AccessLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewAccessLogMapper(),
		logger: logger,
	}
}

func (r *AccessLogRepositoryImpl) Create(ctx context.Context, entry *protection.AccessEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		r.logger.Errorw("failed to map access entry to model", "error", err)
		return fmt.Errorf("failed to map access entry: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create access entry in database", "error", err)
		return fmt.Errorf("failed to create access entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set access entry ID", "error", err)
		return fmt.Errorf("failed to set access entry ID: %w", err)
	}

	return nil
}

func (r *AccessLogRepositoryImpl) ListByContent(ctx context.Context, contentID string, page, pageSize int) ([]*protection.AccessEntry, int64, error) {
	var modelList []*models.AccessLogModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccessLogModel{}).
		Where("content_id = ?", contentID)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count access entries", "content_id", contentID, "error", err)
		return nil, 0, fmt.Errorf("failed to count access entries: %w", err)
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("granted_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list access entries", "content_id", contentID, "error", err)
		return nil, 0, fmt.Errorf("failed to list access entries: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map access entry models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map access entries: %w", err)
	}

	return entities, total, nil
}
