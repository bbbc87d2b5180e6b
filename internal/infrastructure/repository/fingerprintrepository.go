package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lifeline/internal/domain/fingerprint"
	"lifeline/internal/infrastructure/persistence/mappers"
	"lifeline/internal/infrastructure/persistence/models"
	"lifeline/internal/shared/db"
	"lifeline/internal/shared/logger"
)

type FingerprintRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FingerprintMapper
	logger logger.Interface
}

func NewFingerprintRepository(
	db *gorm.DB,
	logger logger.Interface,
) fingerprint.Repository {
	return &FingerprintRepositoryImpl{
		db:     db,
		mapper: mappers.NewFingerprintMapper(),
		logger: logger,
	}
}

func (r *FingerprintRepositoryImpl) Create(ctx context.Context, fp *fingerprint.ContentFingerprint) error {
	model, err := r.mapper.ToModel(fp)
	if err != nil {
		r.logger.Errorw("failed to map fingerprint entity to model", "error", err)
		return fmt.Errorf("failed to map fingerprint entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create fingerprint in database", "error", err)
		return fmt.Errorf("failed to create fingerprint: %w", err)
	}

	if err := fp.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set fingerprint ID", "error", err)
		return fmt.Errorf("failed to set fingerprint ID: %w", err)
	}

	r.logger.Infow("fingerprint created", "id", model.ID, "content_id", model.ContentID)
	return nil
}

func (r *FingerprintRepositoryImpl) GetActiveByContentID(ctx context.Context, contentID string) (*fingerprint.ContentFingerprint, error) {
	var model models.ContentFingerprintModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("content_id = ? AND superseded = ?", contentID, false).
		Order("recorded_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get active fingerprint", "content_id", contentID, "error", err)
		return nil, fmt.Errorf("failed to get fingerprint: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map fingerprint model to entity", "content_id", contentID, "error", err)
		return nil, fmt.Errorf("failed to map fingerprint: %w", err)
	}

	return entity, nil
}

func (r *FingerprintRepositoryImpl) GetByHash(ctx context.Context, hash string) (*fingerprint.ContentFingerprint, error) {
	var model models.ContentFingerprintModel

	if err := db.GetTxFromContext(ctx, r.db).Where("hash = ?", hash).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get fingerprint by hash", "error", err)
		return nil, fmt.Errorf("failed to get fingerprint: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map fingerprint model to entity", "error", err)
		return nil, fmt.Errorf("failed to map fingerprint: %w", err)
	}

	return entity, nil
}

func (r *FingerprintRepositoryImpl) ConfirmAnchor(ctx context.Context, fp *fingerprint.ContentFingerprint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContentFingerprintModel{}).
		Where("id = ? AND anchored = ?", fp.ID(), false).
		Updates(map[string]interface{}{
			"anchored":         true,
			"anchor_reference": fp.AnchorReference(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to confirm anchor", "id", fp.ID(), "error", result.Error)
		return fmt.Errorf("failed to confirm anchor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fingerprint.ErrAlreadyAnchored
	}

	r.logger.Infow("fingerprint anchor confirmed", "id", fp.ID(), "content_id", fp.ContentID())
	return nil
}

func (r *FingerprintRepositoryImpl) SupersedeByContentID(ctx context.Context, contentID string) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContentFingerprintModel{}).
		Where("content_id = ? AND superseded = ?", contentID, false).
		Update("superseded", true).Error
	if err != nil {
		r.logger.Errorw("failed to supersede fingerprints", "content_id", contentID, "error", err)
		return fmt.Errorf("failed to supersede fingerprints: %w", err)
	}

	return nil
}

func (r *FingerprintRepositoryImpl) ListUnanchored(ctx context.Context, limit int) ([]*fingerprint.ContentFingerprint, error) {
	var modelList []*models.ContentFingerprintModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("anchored = ? AND superseded = ?", false, false).
		Order("recorded_at ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list unanchored fingerprints", "error", err)
		return nil, fmt.Errorf("failed to list unanchored fingerprints: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map fingerprint models to entities", "error", err)
		return nil, fmt.Errorf("failed to map fingerprints: %w", err)
	}

	return entities, nil
}
