package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lifeline/internal/domain/watermark"
	"lifeline/internal/infrastructure/persistence/mappers"
	"lifeline/internal/infrastructure/persistence/models"
	"lifeline/internal/shared/db"
	"lifeline/internal/shared/logger"
)

type WatermarkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.WatermarkMapper
	logger logger.Interface
}

func NewWatermarkRepository(
	db *gorm.DB,
	logger logger.Interface,
) watermark.Repository {
	return &WatermarkRepositoryImpl{
		db:     db,
		mapper: mappers.NewWatermarkMapper(),
		logger: logger,
	}
}

func (r *WatermarkRepositoryImpl) Create(ctx context.Context, issuance *watermark.Issuance) error {
	model, err := r.mapper.ToModel(issuance)
	if err != nil {
		r.logger.Errorw("failed to map issuance entity to model", "error", err)
		return fmt.Errorf("failed to map issuance entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create issuance in database", "error", err)
		return fmt.Errorf("failed to create issuance: %w", err)
	}

	if err := issuance.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set issuance ID", "error", err)
		return fmt.Errorf("failed to set issuance ID: %w", err)
	}

	r.logger.Infow("watermark issuance created", "id", model.ID, "content_id", model.ContentID, "viewer_id", model.ViewerID)
	return nil
}

func (r *WatermarkRepositoryImpl) GetByEmbedToken(ctx context.Context, embedToken string) (*watermark.Issuance, error) {
	var model models.WatermarkIssuanceModel

	if err := db.GetTxFromContext(ctx, r.db).Where("embed_token = ?", embedToken).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get issuance by embed token", "error", err)
		return nil, fmt.Errorf("failed to get issuance: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map issuance model to entity", "error", err)
		return nil, fmt.Errorf("failed to map issuance: %w", err)
	}

	return entity, nil
}

func (r *WatermarkRepositoryImpl) ListByContent(ctx context.Context, contentID string, page, pageSize int) ([]*watermark.Issuance, int64, error) {
	var modelList []*models.WatermarkIssuanceModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.WatermarkIssuanceModel{}).
		Where("content_id = ?", contentID)

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count issuances", "content_id", contentID, "error", err)
		return nil, 0, fmt.Errorf("failed to count issuances: %w", err)
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("issued_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list issuances", "content_id", contentID, "error", err)
		return nil, 0, fmt.Errorf("failed to list issuances: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map issuance models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map issuances: %w", err)
	}

	return entities, total, nil
}
